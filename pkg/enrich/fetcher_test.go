package enrich

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elementarium/pkg/catalog"
	"elementarium/pkg/model"
)

// 模拟 extracts API：为每个请求的词条返回 "About <title>" 简介
func newFakeAPIServer(t *testing.T, requestTitles *[][]string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "query", query.Get("action"))
		assert.Equal(t, "extracts", query.Get("prop"))
		assert.Equal(t, "true", query.Get("exintro"))
		assert.Equal(t, "5", query.Get("exsentences"))
		assert.Equal(t, "true", query.Get("explaintext"))
		assert.Equal(t, "json", query.Get("format"))
		assert.Equal(t, "2", query.Get("formatversion"))

		titles := strings.Split(query.Get("titles"), "|")
		*requestTitles = append(*requestTitles, titles)

		pages := make([]PageExtract, 0, len(titles))
		for idx, title := range titles {
			pages = append(pages, PageExtract{PageID: idx + 1, Title: title, Extract: "About " + title})
		}
		resp := map[string]any{"query": map[string]any{"pages": pages}}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestFetchExtracts(t *testing.T) {
	var requestTitles [][]string
	server := newFakeAPIServer(t, &requestTitles)
	defer server.Close()

	entries := catalog.Entries()
	fetcher, err := NewFetcher(NewClient(server.URL), 20, time.Millisecond)
	require.NoError(t, err)

	extracts, err := fetcher.FetchExtracts(entries)
	require.NoError(t, err)

	// 118 个元素，每批 20 个 -> 6 次请求，最后一批 18 个
	require.Len(t, requestTitles, 6)
	for _, titles := range requestTitles[:5] {
		assert.Len(t, titles, 20)
	}
	assert.Len(t, requestTitles[5], 18)

	// 每个元素的词条都有简介
	assert.Len(t, extracts, len(entries))
	for _, e := range entries {
		title := catalog.TitleOf(e.Name)
		assert.Equal(t, "About "+title, extracts[title])
	}
	// 词条标题使用特例映射
	assert.Contains(t, extracts, "Mercury (element)")
}

func TestFetchExtractsBatchPartitioning(t *testing.T) {
	entries := catalog.Entries()

	for _, batchSize := range []int{1, 7, 40, 118, 200} {
		var requestTitles [][]string
		server := newFakeAPIServer(t, &requestTitles)

		fetcher, err := NewFetcher(NewClient(server.URL), batchSize, time.Millisecond)
		require.NoError(t, err)

		_, err = fetcher.FetchExtracts(entries)
		require.NoError(t, err)

		wantBatches := (len(entries) + batchSize - 1) / batchSize
		require.Len(t, requestTitles, wantBatches, "batch size %d", batchSize)

		lastSize := len(entries) - batchSize*(wantBatches-1)
		assert.Len(t, requestTitles[wantBatches-1], lastSize, "batch size %d", batchSize)

		server.Close()
	}
}

func TestNewFetcherInvalidBatchSize(t *testing.T) {
	_, err := NewFetcher(NewClient("http://127.0.0.1"), 0, time.Second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetch))
}

func TestFetchExtractsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	fetcher, err := NewFetcher(NewClient(server.URL), 20, time.Millisecond)
	require.NoError(t, err)

	_, err = fetcher.FetchExtracts(catalog.Entries())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetch))
}

func TestFetchExtractsMalformedBody(t *testing.T) {
	for _, body := range []string{"{}", `{"query": {}}`, "not json at all"} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, body)
		}))

		fetcher, err := NewFetcher(NewClient(server.URL), 20, time.Millisecond)
		require.NoError(t, err)

		_, err = fetcher.FetchExtracts(catalog.Entries())
		require.Error(t, err, "body %q", body)
		assert.True(t, errors.Is(err, ErrFetch), "body %q", body)

		server.Close()
	}
}

// 词条缺失（无简介）不写入映射，交由组装阶段按缺失处理
func TestFetchExtractsSkipEmptyExtract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{"query": map[string]any{"pages": []PageExtract{
			{PageID: 1, Title: "Hydrogen", Extract: "Hydrogen is..."},
			{Title: "Unobtainium", Extract: ""},
		}}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	fetcher, err := NewFetcher(NewClient(server.URL), 20, time.Millisecond)
	require.NoError(t, err)

	extracts, err := fetcher.FetchExtracts([]model.Element{
		{Number: 1, Symbol: "H", Name: "Hydrogen", Col: 0, Row: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Hydrogen": "Hydrogen is..."}, extracts)
}
