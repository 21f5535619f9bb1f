package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"elementarium/pkg/model"
	"elementarium/pkg/storage"
	"elementarium/pkg/utils/ginx"
)

// GetElementGrid 获取完整周期表网格（定长序列，含空格占位，
// 顺序即列优先编码，消费方按位置还原二维布局）
func GetElementGrid(c *gin.Context) {
	ginx.SetResp(c, http.StatusOK, model.ElementsAsset{Elements: storage.ElementsData.Elements})
}

// ListCategories 获取元素分类列表
func ListCategories(c *gin.Context) {
	ginx.SetResp(c, http.StatusOK, storage.ElementsData.Categories)
}

// ListElements 获取元素列表（支持按分类过滤，分页）
func ListElements(c *gin.Context) {
	records := storage.ElementsData.Elements.Compact()
	if category := c.Query("category"); category != "" {
		records = records.FilterByCategory(category)
	}

	pageSize := ginx.GetPageSizeFromQuery(c)
	pageNum := ginx.GetPageNumFromQuery(c)

	start := (pageNum - 1) * pageSize
	if start > len(records) {
		start = len(records)
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}

	ginx.SetResp(c, http.StatusOK, map[string]any{
		"count":   len(records),
		"results": records[start:end],
	})
}

// RetrieveElement 根据符号获取元素详情
func RetrieveElement(c *gin.Context) {
	record := storage.ElementsData.Elements.GetBySymbol(c.Param("symbol"))
	if record == nil {
		ginx.SetErrResp(c, http.StatusNotFound, "element not found")
		return
	}
	ginx.SetResp(c, http.StatusOK, record)
}
