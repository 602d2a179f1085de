// Package handler はhistoryフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stock_history/internal/feature/history/domain"
	"stock_history/internal/feature/history/domain/entity"
	"stock_history/internal/feature/history/transport/http/dto"
	"stock_history/internal/feature/history/usecase"
)

// YahooUsecase はYahooからの時系列取得を抽象化します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type YahooUsecase interface {
	Fetch(ctx context.Context, symbol, startDate, endDate, interval string) (*entity.Series, error)
}

// StooqUsecase はStooqからの日足取得を抽象化します。
type StooqUsecase interface {
	Fetch(ctx context.Context, symbol, startDate, endDate string) (*entity.Series, error)
}

// HistoryHandler は株価履歴のHTTPリクエストを処理します。
type HistoryHandler struct {
	yahoo YahooUsecase
	stooq StooqUsecase
}

// NewHistoryHandler は指定されたusecaseでHistoryHandlerの新しいインスタンスを生成します。
func NewHistoryHandler(yahoo YahooUsecase, stooq StooqUsecase) *HistoryHandler {
	return &HistoryHandler{yahoo: yahoo, stooq: stooq}
}

// GetYahooHandler はYahooの時系列をJSONで返します。
//
// エンドポイント例:
// GET /history/yahoo/:symbol?start=2024-01-02&end=2024-01-05&interval=1d
func (h *HistoryHandler) GetYahooHandler(c *gin.Context) {
	series, err := h.yahoo.Fetch(
		c.Request.Context(),
		c.Param("symbol"),
		c.Query("start"),
		c.Query("end"),
		c.DefaultQuery("interval", usecase.DefaultInterval),
	)
	if err != nil {
		c.JSON(statusFor(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toResponse(series))
}

// GetStooqHandler はStooqの日足をJSONで返します。
//
// エンドポイント例:
// GET /history/stooq/:symbol?start=2024-01-02&end=2024-01-05
func (h *HistoryHandler) GetStooqHandler(c *gin.Context) {
	series, err := h.stooq.Fetch(c.Request.Context(), c.Param("symbol"), c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(statusFor(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toResponse(series))
}

// statusFor はドメインエラーをHTTPステータスに変換します。
func statusFor(err error) int {
	var (
		dateErr *domain.DateParseError
		confErr *domain.ConfigurationError
		respErr *domain.ProviderResponseError
	)
	switch {
	case errors.As(err, &dateErr), errors.As(err, &confErr):
		return http.StatusBadRequest
	case errors.As(err, &respErr) && respErr.NotFound():
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

func toResponse(s *entity.Series) dto.HistoryResponse {
	daily := s.Interval.IsDaily()
	withAdj := s.HasColumn(entity.ColumnAdjClose)

	out := dto.HistoryResponse{
		Symbol:   s.Symbol,
		Source:   string(s.Source),
		Interval: s.Interval.String(),
		Columns:  s.Columns,
		Records:  make([]dto.RecordResponse, 0, len(s.Records)),
	}
	for _, r := range s.Records {
		rr := dto.RecordResponse{
			Date:   formatTime(r.Time, daily),
			Open:   r.Open,
			High:   r.High,
			Low:    r.Low,
			Close:  r.Close,
			Volume: r.Volume,
		}
		if withAdj {
			adj := r.AdjClose
			rr.AdjClose = &adj
		}
		out.Records = append(out.Records, rr)
	}
	return out
}

func formatTime(t time.Time, daily bool) string {
	if daily {
		return t.Format(usecase.DateLayout)
	}
	return t.Format(time.RFC3339)
}
