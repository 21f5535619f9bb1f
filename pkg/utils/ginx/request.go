package ginx

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"elementarium/pkg/envs"
)

// RequestIDHeaderKey ...
const RequestIDHeaderKey = "X-Request-ID"

// ErrNilRequestBody ...
var ErrNilRequestBody = errors.New("request Body is nil")

// ReadRequestBody will return the body in []byte, without change the origin body
func ReadRequestBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, ErrNilRequestBody
	}

	body, err := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, err
}

// GetClientIP 获取客户端 IP（优先从指定请求头读取）
func GetClientIP(c *gin.Context) string {
	if envs.RealClientIPHeaderKey != "" {
		return c.GetHeader(envs.RealClientIPHeaderKey)
	}
	return c.ClientIP()
}
