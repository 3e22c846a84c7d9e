package reporter

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"omdb_smoke_testing/internal/model"
)

// Recorder 按调用顺序保存每一次检查的结果
type Recorder struct {
	results []model.TestResult
	now     func() time.Time
}

func NewRecorder() *Recorder {
	return &Recorder{now: time.Now}
}

func (r *Recorder) Record(testName, expected, actual string, status model.Status) {
	r.results = append(r.results, model.TestResult{
		TestName:  testName,
		Expected:  expected,
		Actual:    actual,
		Status:    status,
		Timestamp: r.now().Format(model.TimestampFormat),
	})
}

// Results 返回结果副本
func (r *Recorder) Results() []model.TestResult {
	out := make([]model.TestResult, len(r.results))
	copy(out, r.results)
	return out
}

func (r *Recorder) Summarize() model.Summary {
	s := model.Summary{Total: len(r.results)}
	for _, result := range r.results {
		if result.Status == model.StatusPass {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// Persist 把全部结果写成带缩进的 JSON 数组，文件已存在时覆盖
func (r *Recorder) Persist(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	results := r.results
	if results == nil {
		results = []model.TestResult{}
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
