// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_history/internal/feature/history/domain/entity"
	"stock_history/internal/feature/history/usecase"
)

const defaultTTL = 5 * time.Minute

// TTLFunc returns the lifetime of an entry written now.
type TTLFunc func() time.Duration

// FixedTTL returns a TTLFunc that always yields d.
func FixedTTL(d time.Duration) TTLFunc {
	return func() time.Duration { return d }
}

// entryTTL evaluates ttl at write time, falling back to 5 minutes when it is nil or non-positive.
func entryTTL(ttl TTLFunc) time.Duration {
	if ttl == nil {
		return defaultTTL
	}
	if d := ttl(); d > 0 {
		return d
	}
	return defaultTTL
}

// CachingChartRepository decorates a ChartRepository with Redis caching.
// Only successful fetches are stored; a nil client disables caching.
type CachingChartRepository struct {
	inner     usecase.ChartRepository
	rdb       *redis.Client
	ttl       TTLFunc
	namespace string
}

var _ usecase.ChartRepository = (*CachingChartRepository)(nil)

// NewCachingChartRepository decorates a ChartRepository with Redis caching.
// ttl is evaluated on every write; nil or a non-positive result means 5 minutes.
// If namespace is empty, it uses "chart".
func NewCachingChartRepository(rdb *redis.Client, ttl TTLFunc, inner usecase.ChartRepository, namespace string) *CachingChartRepository {
	if namespace == "" {
		namespace = "chart"
	}
	return &CachingChartRepository{inner: inner, rdb: rdb, ttl: ttl, namespace: namespace}
}

// GetChart returns the cached series for the exact request, loading it from the inner repository on a miss.
func (c *CachingChartRepository) GetChart(ctx context.Context, symbol string, start, end time.Time, interval entity.Interval) (*entity.Series, error) {
	if c.rdb == nil {
		return c.inner.GetChart(ctx, symbol, start, end, interval)
	}
	key := cacheKey(c.namespace, symbol, interval.String(), start, end)
	return readThrough(ctx, c.rdb, key, c.ttl, func() (*entity.Series, error) {
		return c.inner.GetChart(ctx, symbol, start, end, interval)
	})
}

// CachingDailyReader decorates a DailyReader with Redis caching.
type CachingDailyReader struct {
	inner     usecase.DailyReader
	rdb       *redis.Client
	ttl       TTLFunc
	namespace string
}

var _ usecase.DailyReader = (*CachingDailyReader)(nil)

// NewCachingDailyReader decorates a DailyReader with Redis caching.
// ttl is evaluated on every write; nil or a non-positive result means 5 minutes.
// If namespace is empty, it uses "daily".
func NewCachingDailyReader(rdb *redis.Client, ttl TTLFunc, inner usecase.DailyReader, namespace string) *CachingDailyReader {
	if namespace == "" {
		namespace = "daily"
	}
	return &CachingDailyReader{inner: inner, rdb: rdb, ttl: ttl, namespace: namespace}
}

// ReadDaily returns the cached table for the exact request, loading it from the inner reader on a miss.
func (c *CachingDailyReader) ReadDaily(ctx context.Context, symbol string, start, end time.Time) (*entity.Series, error) {
	if c.rdb == nil {
		return c.inner.ReadDaily(ctx, symbol, start, end)
	}
	key := cacheKey(c.namespace, symbol, entity.DailyInterval.String(), start, end)
	return readThrough(ctx, c.rdb, key, c.ttl, func() (*entity.Series, error) {
		return c.inner.ReadDaily(ctx, symbol, start, end)
	})
}

// readThrough checks the cache, falls back to load, and stores the result best effort.
func readThrough(ctx context.Context, rdb *redis.Client, key string, ttl TTLFunc, load func() (*entity.Series, error)) (*entity.Series, error) {
	// 1) Check cache
	if b, err := rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Series
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		if err := rdb.Del(ctx, key).Err(); err != nil {
			slog.Warn("failed to delete corrupted cache entry", "key", key, "error", err)
		}
	}

	// 2) Fallback to provider
	out, err := load()
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		if err := rdb.Set(ctx, key, b, entryTTL(ttl)).Err(); err != nil {
			slog.Warn("failed to store cache entry", "key", key, "error", err)
		}
	}
	return out, nil
}

// cacheKey generates a cache key for a specific query.
func cacheKey(namespace, symbol, interval string, start, end time.Time) string {
	return fmt.Sprintf("%s:%s:%s:%d:%d",
		namespace,
		safe(symbol),
		safe(interval),
		start.Unix(),
		end.Unix(),
	)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
