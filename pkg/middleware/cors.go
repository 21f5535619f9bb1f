package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"elementarium/pkg/envs"
	"elementarium/pkg/utils/ginx"
)

func Cors() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", ginx.RequestIDHeaderKey},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	if envs.AllowedOrigins == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = strings.Split(envs.AllowedOrigins, ",")
	}
	return cors.New(cfg)
}
