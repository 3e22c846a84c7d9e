package model

import "time"

// Params 是场景传给执行器的查询参数，执行器不会修改它
type Params map[string]string

// Clone 返回参数的副本
func (p Params) Clone() Params {
	out := make(Params, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	return out
}

// ResponseKind 表示 OMDb 响应体解码后的形态
type ResponseKind int

const (
	Malformed ResponseKind = iota
	Found
	NotFound
)

func (k ResponseKind) String() string {
	switch k {
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	default:
		return "malformed"
	}
}

// SearchItem 搜索结果中的一条
type SearchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// Response 是解码后的响应体
// Found 时填充 Title/Year/Search，NotFound 时填充 Error
type Response struct {
	Kind         ResponseKind
	Title        string
	Year         string
	Search       []SearchItem
	TotalResults string
	Error        string
}

// Envelope 是一次成功完成的 HTTP 交换
type Envelope struct {
	StatusCode     int
	ResponseTimeMs float64
	Body           Response
}

type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
)

// 测试记录时间戳格式
const TimestampFormat = "2006-01-02 15:04:05"

type TestResult struct {
	TestName  string `json:"test_name"`
	Expected  string `json:"expected"`
	Actual    string `json:"actual"`
	Status    Status `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Summary 汇总一次运行的结果
type Summary struct {
	Total    int
	Passed   int
	Failed   int
	Duration time.Duration
}

// SuccessRate 返回通过率（百分比），没有执行任何测试时 ok 为 false
func (s Summary) SuccessRate() (rate float64, ok bool) {
	if s.Total == 0 {
		return 0, false
	}
	return float64(s.Passed) / float64(s.Total) * 100, true
}
