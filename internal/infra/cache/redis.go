// Package cache manages the optional Redis client for the read cache.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Huskyauto/Weightlossapp/config"
)

// NewClient connects to Redis when REDIS_URL is configured. It returns nil
// when Redis is not configured or unreachable; the server runs fine without
// the cache.
func NewClient(cfg *config.RedisConfig) *redis.Client {
	if cfg.URL == "" {
		slog.Info("Redis not configured, response cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.URL,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis connection failed, response cache disabled", "addr", cfg.URL, "error", err)
		_ = client.Close()
		return nil
	}

	slog.Info("Redis connected", "addr", cfg.URL)
	return client
}
