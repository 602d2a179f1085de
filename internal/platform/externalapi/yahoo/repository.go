package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"stock_history/internal/feature/history/domain"
	"stock_history/internal/feature/history/domain/entity"
	"stock_history/internal/feature/history/usecase"
	"stock_history/internal/platform/externalapi/yahoo/dto"
)

// YahooMarket fetches chart series from the Yahoo Finance chart API.
type YahooMarket struct {
	cfg    Config
	client *http.Client
}

// YahooMarket must satisfy ChartRepository.
var _ usecase.ChartRepository = (*YahooMarket)(nil)

// NewYahooMarket creates a YahooMarket with the given config and HTTP client.
func NewYahooMarket(cfg Config, client *http.Client) *YahooMarket {
	return &YahooMarket{cfg: cfg, client: client}
}

// GetChart requests [start, end) at the given interval and returns the normalized series.
// Day samples are keyed by their exchange calendar date at midnight in start's location.
func (y *YahooMarket) GetChart(ctx context.Context, symbol string, start, end time.Time, interval entity.Interval) (*entity.Series, error) {
	q := url.Values{}
	q.Set("period1", strconv.FormatInt(start.Unix(), 10))
	q.Set("period2", strconv.FormatInt(end.Unix(), 10))
	q.Set("interval", interval.String())

	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", strings.TrimRight(y.cfg.BaseURL, "/"), url.PathEscape(symbol), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &domain.ConfigurationError{Field: "yahoo base url", Value: y.cfg.BaseURL, Reason: err.Error()}
	}
	for k, vs := range y.cfg.Headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	res, err := y.client.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Op: http.MethodGet, URL: u, Err: err}
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &domain.TransportError{Op: "read body", URL: u, Err: err}
	}

	var body dto.ChartResponse
	if err := json.Unmarshal(raw, &body); err != nil || body.Chart == nil {
		if res.StatusCode >= 400 {
			return nil, &domain.ProviderResponseError{StatusCode: res.StatusCode, Description: http.StatusText(res.StatusCode)}
		}
		if err != nil {
			return nil, &domain.SchemaError{Field: "body", Err: err}
		}
	}

	series, err := normalize(&body, res.StatusCode, symbol, interval, start.Location())
	if err != nil {
		return nil, err
	}
	slog.Debug("yahoo chart fetched", "symbol", symbol, "interval", interval.String(), "rows", series.Len())
	return series, nil
}
