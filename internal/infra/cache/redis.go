// Package cache provides the redis-backed read cache for books.
package cache

import (
	"context"
	"log/slog"

	"bookstore/config"
	"bookstore/internal/domain/lifecycle"
	"bookstore/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient returns nil when no redis address is configured; the book
// cache then falls back to a no-op implementation.
func NewRedisClient(params Params) (*redis.Client, error) {
	if !params.Config.Redis.Enabled() {
		params.Logger.Info("Redis not configured, book cache disabled")

		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
