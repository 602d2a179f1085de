// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"stock_history/internal/feature/history/usecase"
	"stock_history/internal/platform/cache"
	"stock_history/internal/platform/externalapi/stooq"
	"stock_history/internal/platform/externalapi/yahoo"
	infrahttp "stock_history/internal/platform/http"
)

// Fetchers bundles the two independent history fetchers.
type Fetchers struct {
	Yahoo *usecase.YahooFetcher
	Stooq *usecase.StooqFetcher
}

// NewYahooMarket creates a fully configured YahooMarket with HTTP client.
func NewYahooMarket() *yahoo.YahooMarket {
	cfg := yahoo.LoadConfig()
	return yahoo.NewYahooMarket(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
}

// NewStooqMarket creates a fully configured StooqMarket with HTTP client.
func NewStooqMarket() *stooq.StooqMarket {
	cfg := stooq.LoadConfig()
	return stooq.NewStooqMarket(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
}

// NewFetchers wires both fetchers. When rdb is nil the cache decorators pass every call through.
func NewFetchers(rdb *redis.Client, cfg usecase.Config) *Fetchers {
	ttl := cache.UntilNextRefresh(cache.RefreshHour, cfg.Location, time.Now)
	chart := cache.NewCachingChartRepository(rdb, ttl, NewYahooMarket(), "history:yahoo")
	daily := cache.NewCachingDailyReader(rdb, ttl, NewStooqMarket(), "history:stooq")
	return &Fetchers{
		Yahoo: usecase.NewYahooFetcher(chart, cfg.Location),
		Stooq: usecase.NewStooqFetcher(daily, cfg.Location),
	}
}
