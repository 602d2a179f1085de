// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status    string   `json:"status"`
	Providers []string `json:"providers"`
}

// NewHealth returns the /healthz handler listing the configured providers.
// GET answers 200 with a JSON body, HEAD 200 without one, OPTIONS 204.
func NewHealth(providers ...string) gin.HandlerFunc {
	body := HealthResponse{Status: "ok", Providers: append([]string{}, providers...)}
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
		default:
			c.JSON(http.StatusOK, body)
		}
	}
}
