package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"elementarium/pkg/infras/database"
	"elementarium/pkg/infras/translate"
	"elementarium/pkg/model"
	"elementarium/pkg/storage"
	"elementarium/pkg/utils/ginx"
)

// ViewElement 记录元素详情查看
func ViewElement(c *gin.Context) {
	symbol := c.Param("symbol")
	if storage.ElementsData.Elements.GetBySymbol(symbol) == nil {
		ginx.SetErrResp(c, http.StatusNotFound, "element not found")
		return
	}

	clientIP := ginx.GetClientIP(c)
	db := database.Client(c.Request.Context())

	// 添加查看记录（同一 IP 30 分钟内同一元素只统计一次）
	var count int64
	db.Model(&model.ElementViewRecord{}).Where(
		"ip = ? AND symbol = ? AND created_at >= ?",
		clientIP, symbol, time.Now().Add(-30*time.Minute),
	).Count(&count)

	if count != 0 {
		ginx.SetResp(c, http.StatusNoContent, nil)
		return
	}

	record := model.ElementViewRecord{
		IP:        clientIP,
		Symbol:    symbol,
		BaseModel: model.BaseModel{Creator: ginx.GetClientID(c)},
	}
	if err := db.Create(&record).Error; err != nil {
		ginx.SetErrResp(c, http.StatusInternalServerError, err.Error())
		return
	}
	ginx.SetResp(c, http.StatusNoContent, nil)
}

var translateClient = translate.NewClient()

// TranslateTextRequest 翻译请求体（目标语言由界面语言选择显式传入）
type TranslateTextRequest struct {
	Text   string `json:"text" binding:"required"`
	Target string `json:"target" binding:"required"`
}

// TranslateText 调用外部翻译服务翻译文本（元素简介等）
func TranslateText(c *gin.Context) {
	var req TranslateTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.SetErrResp(c, http.StatusBadRequest, err.Error())
		return
	}

	translated, err := translateClient.Translate(c.Request.Context(), req.Text, req.Target)
	if err != nil {
		ginx.SetError(c, err)
		ginx.SetErrResp(c, http.StatusBadGateway, err.Error())
		return
	}
	ginx.SetResp(c, http.StatusOK, map[string]string{
		"target":     req.Target,
		"translated": translated,
	})
}
