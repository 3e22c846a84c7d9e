package omdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"omdb_smoke_testing/internal/model"
)

const apiKeyParam = "apikey"

// TransportError 表示请求没有完成一次完整的 JSON 交换：
// 超时、连接失败、读取失败或响应体不是 JSON
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client 对固定的 OMDb 地址发起 GET 请求
type Client struct {
	baseURL *url.URL
	apiKey  string
	client  *http.Client
	logger  *slog.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse omdb url: %w", err)
	}
	return &Client{
		baseURL: parsed,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}, nil
}

// Execute 发送一次请求。只要拿到了 JSON 响应就返回 Envelope，
// 不关心 HTTP 状态码和 Response 字段。
func (c *Client) Execute(ctx context.Context, params model.Params) (*model.Envelope, error) {
	// 在副本上加 API key，不修改调用方的参数
	all := params.Clone()
	all[apiKeyParam] = c.apiKey

	q := url.Values{}
	for k, v := range all {
		q.Set(k, v)
	}
	endpoint := *c.baseURL
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, &TransportError{Op: "build request", Err: c.redact(err)}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug("omdb request failed", "params", params, "error", c.redact(err))
		return nil, &TransportError{Op: "send request", Err: c.redact(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "read response", Err: c.redact(err)}
	}
	elapsed := roundMs(time.Since(start))

	decoded, err := Decode(body)
	if err != nil {
		return nil, &TransportError{Op: "decode response", Err: err}
	}

	c.logger.Debug("omdb request",
		"params", params,
		"status", resp.StatusCode,
		"elapsed_ms", elapsed,
		"kind", decoded.Kind.String(),
	)

	return &model.Envelope{
		StatusCode:     resp.StatusCode,
		ResponseTimeMs: elapsed,
		Body:           decoded,
	}, nil
}

// redact 去掉错误中 URL 携带的 API key
func (c *Client) redact(err error) error {
	var ue *url.Error
	if !errors.As(err, &ue) {
		return err
	}
	if u, perr := url.Parse(ue.URL); perr == nil {
		q := u.Query()
		q.Del(apiKeyParam)
		u.RawQuery = q.Encode()
		ue.URL = u.String()
	} else {
		ue.URL = c.baseURL.String()
	}
	return err
}

// roundMs 毫秒，保留两位小数
func roundMs(d time.Duration) float64 {
	ms := float64(d) / float64(time.Millisecond)
	if ms < 0 {
		ms = 0
	}
	return math.Round(ms*100) / 100
}
