// Package enrich 元素简介抓取（维基百科 extracts API，分批限速）
package enrich

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrFetch 简介抓取失败（网络错误 / 非 2xx 响应 / 响应体格式异常）
var ErrFetch = errors.New("extract fetch failed")

const defaultTimeout = 30 * time.Second

// PageExtract 单个词条的简介
type PageExtract struct {
	PageID  int    `json:"pageid"`
	Title   string `json:"title"`
	Extract string `json:"extract"`
}

// extracts API 响应体（formatversion=2）
type queryResponse struct {
	Query *struct {
		Pages []PageExtract `json:"pages"`
	} `json:"query"`
}

// Client 维基百科 extracts API 客户端
type Client struct {
	apiURL string
	client *http.Client
}

// NewClient ...
func NewClient(apiURL string) *Client {
	return &Client{
		apiURL: apiURL,
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// QueryExtracts 批量查询词条简介（单次 GET 请求，标题以 | 拼接）
func (c *Client) QueryExtracts(titles []string) ([]PageExtract, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts")
	params.Set("exintro", "true")
	params.Set("exsentences", "5")
	params.Set("explaintext", "true")
	params.Set("format", "json")
	params.Set("formatversion", "2")
	params.Set("titles", strings.Join(titles, "|"))

	resp, err := c.client.Get(c.apiURL + "?" + params.Encode())
	if err != nil {
		return nil, errors.Wrapf(ErrFetch, "request failed: %s", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(ErrFetch, "read response failed: %s", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrFetch, "unexpected status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var queryResp queryResponse
	if err = json.Unmarshal(body, &queryResp); err != nil {
		return nil, errors.Wrapf(ErrFetch, "parse response failed: %s", err)
	}
	if queryResp.Query == nil || queryResp.Query.Pages == nil {
		return nil, errors.Wrapf(ErrFetch, "malformed response body: %s", truncate(string(body), 200))
	}

	return queryResp.Query.Pages, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
