package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"stock_history/internal/app/di"
	"stock_history/internal/app/router"
	historyhandler "stock_history/internal/feature/history/transport/handler"
	"stock_history/internal/feature/history/usecase"
	infraredis "stock_history/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	cfg, err := usecase.LoadConfig()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(context.Background(), infraredis.LoadConfig()); err != nil {
		slog.Warn("Redis unavailable. Running without cache.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	fetchers := di.NewFetchers(rdb, cfg)

	// Handler
	historyH := historyhandler.NewHistoryHandler(fetchers.Yahoo, fetchers.Stooq)

	// ルータ生成
	r := router.NewRouter(historyH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
