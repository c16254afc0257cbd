package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"promo-api/internal/domain/product"
	"promo-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	productListKey   = "products:all"
	productKeyPrefix = "products:"
)

// ProductReadStore is a read-through cache over another ProductReadStore.
// Cache failures are logged and served from the underlying store.
type ProductReadStore struct {
	inner  queries.ProductReadStore
	client *redis.Client
	ttl    time.Duration
}

func NewProductReadStore(inner queries.ProductReadStore, client *redis.Client, ttl time.Duration) *ProductReadStore {
	return &ProductReadStore{inner: inner, client: client, ttl: ttl}
}

func (s *ProductReadStore) List(ctx context.Context) ([]product.Product, error) {
	if data, err := s.client.Get(ctx, productListKey).Bytes(); err == nil {
		var products []product.Product
		if err := json.Unmarshal(data, &products); err == nil {
			return products, nil
		}
		slog.Warn("discarding corrupt cache entry", "key", productListKey)
	} else if err != redis.Nil {
		slog.Warn("cache read failed", "key", productListKey, "error", err.Error())
	}

	products, err := s.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	s.store(ctx, productListKey, products)
	return products, nil
}

func (s *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	key := productKeyPrefix + id.String()
	if data, err := s.client.Get(ctx, key).Bytes(); err == nil {
		var p product.Product
		if err := json.Unmarshal(data, &p); err == nil {
			return &p, nil
		}
		slog.Warn("discarding corrupt cache entry", "key", key)
	} else if err != redis.Nil {
		slog.Warn("cache read failed", "key", key, "error", err.Error())
	}

	p, err := s.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, p)
	return p, nil
}

func (s *ProductReadStore) store(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		slog.Warn("cache write failed", "key", key, "error", err.Error())
	}
}
