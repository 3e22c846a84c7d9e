package reporter

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"omdb_smoke_testing/internal/config"
	"omdb_smoke_testing/internal/model"

	"github.com/xuri/excelize/v2"
)

const (
	// Excel 相关
	resultsSheet       = "Results"
	minColumn          = 'A'
	maxColumn          = 'E'
	defaultColumnWidth = 24

	// 样式相关
	patternType  = "pattern"
	patternValue = 1
	errorBgColor = "FF5900"
	headerColor  = "D9D9D9"

	separatorWidth = 60
)

// 表头定义
var excelHeaders = []string{"Test", "Expected", "Actual", "Status", "Timestamp"}

type Reporter struct {
	config *config.Config
	out    io.Writer
	log    *slog.Logger
}

func New(cfg *config.Config, out io.Writer, log *slog.Logger) *Reporter {
	if log == nil {
		log = slog.Default()
	}
	return &Reporter{config: cfg, out: out, log: log}
}

// GenerateReport 打印汇总并保存结果。保存失败只打印警告，不中断运行。
func (r *Reporter) GenerateReport(rec *Recorder, duration time.Duration) model.Summary {
	summary := rec.Summarize()
	summary.Duration = duration
	r.printConsoleReport(summary)

	if err := rec.Persist(r.config.ResultsPath); err != nil {
		r.warn("Failed to save results", err)
	} else {
		fmt.Fprintf(r.out, "💾 Results saved to: %s\n", r.config.ResultsPath)
	}

	if r.config.ExcelPath != "" {
		if err := r.generateExcelReport(rec.Results(), summary); err != nil {
			r.warn("Failed to save Excel report", err)
		} else {
			fmt.Fprintf(r.out, "📄 Excel report saved to: %s\n", r.config.ExcelPath)
		}
	}
	return summary
}

func (r *Reporter) warn(msg string, err error) {
	fmt.Fprintf(r.out, "⚠️ %s: %v\n", msg, err)
	r.log.Warn(msg, "error", err)
}

func (r *Reporter) printConsoleReport(s model.Summary) {
	line := strings.Repeat("=", separatorWidth)
	fmt.Fprintf(r.out, "\n%s\n📊 TEST SUMMARY\n%s\n", line, line)
	fmt.Fprintf(r.out, "Total tests: %d\n", s.Total)
	fmt.Fprintf(r.out, "✅ Passed: %d\n", s.Passed)
	fmt.Fprintf(r.out, "❌ Failed: %d\n", s.Failed)
	if rate, ok := s.SuccessRate(); ok {
		fmt.Fprintf(r.out, "📈 Success rate: %.1f%%\n", rate)
	}
	fmt.Fprintf(r.out, "⏱️ Total time: %.2fms\n", float64(s.Duration.Microseconds())/1000)
}

func (r *Reporter) generateExcelReport(results []model.TestResult, s model.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	// 设置列宽
	for col := minColumn; col <= maxColumn; col++ {
		colName := string(col)
		if err := f.SetColWidth(resultsSheet, colName, colName, defaultColumnWidth); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: patternType, Pattern: patternValue, Color: []string{headerColor}},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	// 失败行红色背景
	errorStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: patternType, Pattern: patternValue, Color: []string{errorBgColor}},
	})
	if err != nil {
		return fmt.Errorf("create error style: %w", err)
	}

	// 写入表头
	for i, header := range excelHeaders {
		cell := fmt.Sprintf("%c1", minColumn+i)
		if err := f.SetCellValue(resultsSheet, cell, header); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(resultsSheet, "A1", fmt.Sprintf("%c1", maxColumn), headerStyle); err != nil {
		return err
	}

	// 写入测试结果
	for i, result := range results {
		if err := writeTestResult(f, i+2, result, errorStyle); err != nil {
			return err
		}
	}

	// 写入汇总信息
	if err := writeSummary(f, len(results)+3, s); err != nil {
		return err
	}

	if err := f.SaveAs(r.config.ExcelPath); err != nil {
		return fmt.Errorf("save %s: %w", r.config.ExcelPath, err)
	}
	return nil
}

func writeTestResult(f *excelize.File, row int, result model.TestResult, errorStyle int) error {
	cells := []interface{}{
		result.TestName,
		result.Expected,
		result.Actual,
		string(result.Status),
		result.Timestamp,
	}

	for i, cell := range cells {
		cellName := fmt.Sprintf("%c%d", minColumn+i, row)
		if err := f.SetCellValue(resultsSheet, cellName, cell); err != nil {
			return err
		}
	}

	if result.Status == model.StatusFail {
		first := fmt.Sprintf("%c%d", minColumn, row)
		last := fmt.Sprintf("%c%d", maxColumn, row)
		return f.SetCellStyle(resultsSheet, first, last, errorStyle)
	}
	return nil
}

func writeSummary(f *excelize.File, startRow int, s model.Summary) error {
	lines := []string{
		"Summary",
		fmt.Sprintf("Total tests: %d", s.Total),
		fmt.Sprintf("Passed: %d", s.Passed),
		fmt.Sprintf("Failed: %d", s.Failed),
	}
	if rate, ok := s.SuccessRate(); ok {
		lines = append(lines, fmt.Sprintf("Success rate: %.1f%%", rate))
	}
	lines = append(lines, fmt.Sprintf("Total time: %.2fms", float64(s.Duration.Microseconds())/1000))

	for i, line := range lines {
		if err := f.SetCellValue(resultsSheet, fmt.Sprintf("A%d", startRow+i), line); err != nil {
			return err
		}
	}
	return nil
}
