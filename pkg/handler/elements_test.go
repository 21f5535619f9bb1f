package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elementarium/pkg/model"
	"elementarium/pkg/storage"
)

// 构造测试用周期表数据：偶数下标为元素，奇数下标为空格，
// 共 count 个元素，分类在 Alkali Metal / Noble Gas 间交替
func initTestElementsData(count int) {
	elements := make(model.ElementRecords, 0, 2*count)
	for idx := 1; idx <= count; idx++ {
		category := model.Category("Alkali Metal")
		if idx%2 == 0 {
			category = "Noble Gas"
		}
		elements = append(elements, &model.ElementRecord{
			Number:   idx,
			Name:     fmt.Sprintf("Element%d", idx),
			Symbol:   fmt.Sprintf("E%d", idx),
			Category: category,
		}, nil)
	}
	storage.ElementsData = &model.ElementsData{
		Categories: []string{"Alkali Metal", "Noble Gas"},
		Elements:   elements,
	}
}

// 与 router.InitRouter 注册的只读路由保持一致
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	apiRg := router.Group("apis")
	apiRg.GET("categories", ListCategories)
	apiRg.GET("elements/grid", GetElementGrid)
	apiRg.GET("elements", ListElements)
	apiRg.GET("elements/:symbol", RetrieveElement)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", path, nil))
	return recorder
}

type listElementsRespData struct {
	Count   int                   `json:"count"`
	Results []model.ElementRecord `json:"results"`
}

func listElements(t *testing.T, router *gin.Engine, query string) listElementsRespData {
	t.Helper()

	recorder := doRequest(t, router, "/apis/elements?"+query)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Data listElementsRespData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	return resp.Data
}

func TestListElementsPagination(t *testing.T) {
	initTestElementsData(25)
	router := newTestRouter()

	// 默认首页（page_size 取下限 10）
	data := listElements(t, router, "")
	assert.Equal(t, 25, data.Count)
	require.Len(t, data.Results, 10)
	assert.Equal(t, "E1", data.Results[0].Symbol)

	// 末页不足一页，只返回剩余部分
	data = listElements(t, router, "page_num=3&page_size=10")
	assert.Equal(t, 25, data.Count)
	require.Len(t, data.Results, 5)
	assert.Equal(t, "E21", data.Results[0].Symbol)

	// 起始位置超出总数，返回空列表
	data = listElements(t, router, "page_num=4&page_size=10")
	assert.Equal(t, 25, data.Count)
	assert.Len(t, data.Results, 0)

	// page_size 超过上限会被截断到 120，单页取全量
	data = listElements(t, router, "page_num=1&page_size=10000")
	assert.Equal(t, 25, data.Count)
	require.Len(t, data.Results, 25)
	assert.Equal(t, "E25", data.Results[24].Symbol)

	// 非法页码按首页处理
	data = listElements(t, router, "page_num=0&page_size=10")
	require.Len(t, data.Results, 10)
	assert.Equal(t, "E1", data.Results[0].Symbol)
}

func TestListElementsFilterByCategory(t *testing.T) {
	initTestElementsData(25)
	router := newTestRouter()

	data := listElements(t, router, "category=Noble+Gas&page_size=120")
	assert.Equal(t, 12, data.Count)
	for _, record := range data.Results {
		assert.Equal(t, model.Category("Noble Gas"), record.Category)
	}
}

func TestGetElementGrid(t *testing.T) {
	initTestElementsData(3)
	router := newTestRouter()

	recorder := doRequest(t, router, "/apis/elements/grid")
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Data model.ElementsAsset `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	// 网格序列保留空格占位，长度与顺序不变
	require.Len(t, resp.Data.Elements, 6)
	assert.Equal(t, "E1", resp.Data.Elements[0].Symbol)
	assert.Nil(t, resp.Data.Elements[1])
}

func TestRetrieveElement(t *testing.T) {
	initTestElementsData(25)
	router := newTestRouter()

	recorder := doRequest(t, router, "/apis/elements/E7")
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Data model.ElementRecord `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "Element7", resp.Data.Name)

	// 未知符号 404
	recorder = doRequest(t, router, "/apis/elements/Zz")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
