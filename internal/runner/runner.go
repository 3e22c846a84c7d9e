package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"omdb_smoke_testing/internal/model"
)

// Executor 执行一次 OMDb 请求
type Executor interface {
	Execute(ctx context.Context, params model.Params) (*model.Envelope, error)
}

// Recorder 保存每一次检查的结果
type Recorder interface {
	Record(testName, expected, actual string, status model.Status)
}

type Runner struct {
	exec          Executor
	rec           Recorder
	out           io.Writer
	log           *slog.Logger
	slowThreshold time.Duration
}

func New(exec Executor, rec Recorder, out io.Writer, log *slog.Logger, slowThreshold time.Duration) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{
		exec:          exec,
		rec:           rec,
		out:           out,
		log:           log,
		slowThreshold: slowThreshold,
	}
}

type scenarioGroup struct {
	title string
	run   func(ctx context.Context)
}

func (r *Runner) groups() []scenarioGroup {
	return []scenarioGroup{
		{"1. BASIC FUNCTIONALITY", r.testBasicFunctionality},
		{"2. MOVIE DETAILS", r.testMovieDetails},
		{"3. ERROR HANDLING", r.testErrorHandling},
		{"4. FILTERS", r.testFilters},
		{"5. PAGINATION", r.testPagination},
		{"6. PERFORMANCE", r.testPerformance},
	}
}

// Run 按固定顺序执行所有场景，任何失败都不会提前结束
func (r *Runner) Run(ctx context.Context) {
	for _, g := range r.groups() {
		line := strings.Repeat("=", 50)
		fmt.Fprintf(r.out, "\n%s\n%s\n%s\n", line, g.title, line)

		start := time.Now()
		g.run(ctx)
		r.log.Debug("scenario group finished", "group", g.title, "duration", time.Since(start))
	}
}

// check 记录一条检查结果并打印结论
func (r *Runner) check(testName string, passed bool, details, expected, actual string) {
	status := model.StatusFail
	if passed {
		status = model.StatusPass
		fmt.Fprintf(r.out, "✅ %s: PASS - %s\n", testName, details)
	} else {
		fmt.Fprintf(r.out, "❌ %s: FAIL - %s\n", testName, details)
	}
	r.rec.Record(testName, expected, actual, status)
}

func (r *Runner) execute(ctx context.Context, params model.Params) (*model.Envelope, error) {
	env, err := r.exec.Execute(ctx, params)
	if err != nil {
		r.log.Warn("request failed", "params", params, "error", err)
	}
	return env, err
}
