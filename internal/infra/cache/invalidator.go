package cache

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Invalidator drops cached read views after writes. Deletion failures are
// logged only; the entry expires on its own via TTL.
type Invalidator struct {
	client *redis.Client
}

func NewInvalidator(client *redis.Client) *Invalidator {
	return &Invalidator{client: client}
}

func (i *Invalidator) InvalidateProduct(ctx context.Context, id uuid.UUID) {
	i.drop(ctx, productListKey, productKeyPrefix+id.String())
}

func (i *Invalidator) InvalidateSegment(ctx context.Context, id uuid.UUID) {
	i.drop(ctx, segmentListKey, segmentKeyPrefix+id.String())
}

func (i *Invalidator) drop(ctx context.Context, keys ...string) {
	if err := i.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("cache invalidation failed", "keys", keys, "error", err.Error())
	}
}
