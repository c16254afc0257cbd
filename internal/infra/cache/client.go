// Package cache provides read-through Redis decorators for the product and
// segment read stores. Offers are never cached: the conflict checker scans
// them and must see fresh data.
package cache

import (
	"context"
	"time"

	"promo-api/internal/pkg/config"
	"promo-api/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Connect opens a Redis client and verifies connectivity.
func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, nil, errs.Wrap(err, "failed to ping redis")
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}
