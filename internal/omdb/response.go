package omdb

import (
	"bytes"
	"encoding/json"
	"errors"

	"omdb_smoke_testing/internal/model"
)

var errNotJSON = errors.New("response body is not valid JSON")

// OMDb 的原始响应，搜索和详情共用。
// 除 Response 外的字段逐个宽松解析，单个字段类型不对不影响其它字段。
type rawResponse struct {
	Response     json.RawMessage `json:"Response"`
	Error        json.RawMessage `json:"Error"`
	Title        json.RawMessage `json:"Title"`
	Year         json.RawMessage `json:"Year"`
	Search       json.RawMessage `json:"Search"`
	TotalResults json.RawMessage `json:"totalResults"`
}

type rawSearchItem struct {
	Title  json.RawMessage `json:"Title"`
	Year   json.RawMessage `json:"Year"`
	ImdbID json.RawMessage `json:"imdbID"`
	Type   json.RawMessage `json:"Type"`
	Poster json.RawMessage `json:"Poster"`
}

// Decode 把响应体解析为 Found / NotFound / Malformed。
// 只有不是合法 JSON 时才返回错误。顶层不是对象、Response 不是 "True"/"False"
// 或 Search 不是数组时记为 Malformed。
func Decode(body []byte) (model.Response, error) {
	if !json.Valid(body) {
		return model.Response{}, errNotJSON
	}

	var raw rawResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return model.Response{Kind: model.Malformed}, nil
	}

	switch lenientString(raw.Response) {
	case "True":
		search, ok := decodeSearch(raw.Search)
		if !ok {
			return model.Response{Kind: model.Malformed}, nil
		}
		return model.Response{
			Kind:         model.Found,
			Title:        lenientString(raw.Title),
			Year:         lenientString(raw.Year),
			Search:       search,
			TotalResults: lenientString(raw.TotalResults),
		}, nil
	case "False":
		return model.Response{Kind: model.NotFound, Error: lenientString(raw.Error)}, nil
	default:
		return model.Response{Kind: model.Malformed}, nil
	}
}

func decodeSearch(raw json.RawMessage) ([]model.SearchItem, bool) {
	if isNull(raw) {
		return nil, true
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}

	out := make([]model.SearchItem, 0, len(items))
	for _, item := range items {
		// 不是对象的条目保留为空记录，Type 为空
		var ri rawSearchItem
		_ = json.Unmarshal(item, &ri)
		out = append(out, model.SearchItem{
			Title:  lenientString(ri.Title),
			Year:   lenientString(ri.Year),
			ImdbID: lenientString(ri.ImdbID),
			Type:   lenientString(ri.Type),
			Poster: lenientString(ri.Poster),
		})
	}
	return out, true
}

// lenientString 字符串取原值，数字和布尔取字面量，其它返回空串
func lenientString(raw json.RawMessage) string {
	if isNull(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	trimmed := bytes.TrimSpace(raw)
	switch trimmed[0] {
	case '{', '[':
		return ""
	}
	return string(trimmed)
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
