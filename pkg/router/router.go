package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"elementarium/pkg/envs"
	"elementarium/pkg/handler"
	"elementarium/pkg/middleware"
	"elementarium/pkg/utils/ginx"
)

func InitRouter() {
	gin.SetMode(envs.GinRunMode)
	router := gin.New()
	_ = router.SetTrustedProxies(nil)

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Cors())
	router.Use(gin.Recovery())

	// 404
	router.NoRoute(func(c *gin.Context) {
		ginx.SetErrResp(c, http.StatusNotFound, "resource not found")
	})

	// api 路由
	{
		apiRg := router.Group("apis")
		// 元素分类列表
		apiRg.GET("categories", handler.ListCategories)
		// 完整周期表网格
		apiRg.GET("elements/grid", handler.GetElementGrid)
		// 元素列表
		apiRg.GET("elements", handler.ListElements)
		// 元素详情
		apiRg.GET("elements/:symbol", handler.RetrieveElement)
		// 记录元素详情查看
		apiRg.POST("elements/:symbol/view", handler.ViewElement)
		// 翻译元素简介
		apiRg.POST("translate", handler.TranslateText)
	}

	if err := router.Run(":" + envs.ServerPort); err != nil {
		panic(fmt.Sprintf("failed to start server: %s", err.Error()))
	}
}
