package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"stock_history/internal/app/di"
	"stock_history/internal/feature/history/transport/cli"
	"stock_history/internal/feature/history/usecase"
	infraredis "stock_history/internal/platform/redis"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := godotenv.Load(".env"); err != nil {
		slog.Debug(".env not found; using system environment variables")
	}

	cfg, err := usecase.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}

	ctx := context.Background()

	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(ctx, infraredis.LoadConfig()); err == nil {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Warn("failed to close Redis client", "error", err)
			}
		}()
	}

	fetchers := di.NewFetchers(rdb, cfg)
	root := cli.NewRootCommand(fetchers.Yahoo, fetchers.Stooq)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}
