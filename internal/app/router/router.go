package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	historyhandler "stock_history/internal/feature/history/transport/handler"
	"stock_history/internal/platform/http/handler"
)

// NewRouter registers the health check and the history endpoints.
func NewRouter(history *historyhandler.HistoryHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// 導通確認用
	health := handler.NewHealth("yahoo", "stooq")
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	r.OPTIONS("/healthz", health)

	h := r.Group("/history")
	{
		h.GET("/yahoo/:symbol", history.GetYahooHandler)
		h.GET("/stooq/:symbol", history.GetStooqHandler)
	}

	return r
}
