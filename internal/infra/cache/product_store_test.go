//go:build unit

package cache_test

import (
	"context"
	"testing"
	"time"

	"promo-api/internal/domain/product"
	"promo-api/internal/infra"
	"promo-api/internal/infra/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProductStore struct {
	products  map[uuid.UUID]product.Product
	listCalls int
	findCalls int
}

func (s *countingProductStore) List(context.Context) ([]product.Product, error) {
	s.listCalls++
	out := make([]product.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *countingProductStore) FindByID(_ context.Context, id uuid.UUID) (*product.Product, error) {
	s.findCalls++
	p, ok := s.products[id]
	if !ok {
		return nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return &p, nil
}

func newCacheFixture(t *testing.T) (*miniredis.Miniredis, *redis.Client, *countingProductStore, *cache.ProductReadStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	id := uuid.New()
	inner := &countingProductStore{products: map[uuid.UUID]product.Product{
		id: {ID: id, Name: "Big Mac", Category: "Burgers", Price: 5.99},
	}}
	return mr, client, inner, cache.NewProductReadStore(inner, client, time.Minute)
}

func TestProductReadStoreFindByID(t *testing.T) {
	t.Run("second read is served from cache", func(t *testing.T) {
		_, _, inner, store := newCacheFixture(t)
		var id uuid.UUID
		for k := range inner.products {
			id = k
		}

		first, err := store.FindByID(context.Background(), id)
		require.NoError(t, err)
		second, err := store.FindByID(context.Background(), id)
		require.NoError(t, err)

		assert.Equal(t, first.Name, second.Name)
		assert.Equal(t, 1, inner.findCalls)
	})

	t.Run("misses never get cached", func(t *testing.T) {
		_, _, inner, store := newCacheFixture(t)
		unknown := uuid.New()

		_, err := store.FindByID(context.Background(), unknown)
		require.Error(t, err)
		_, err = store.FindByID(context.Background(), unknown)
		require.Error(t, err)
		assert.Equal(t, 2, inner.findCalls)
	})

	t.Run("corrupt entry falls through to the inner store", func(t *testing.T) {
		mr, _, inner, store := newCacheFixture(t)
		var id uuid.UUID
		for k := range inner.products {
			id = k
		}
		require.NoError(t, mr.Set("products:"+id.String(), "{not json"))

		p, err := store.FindByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Big Mac", p.Name)
		assert.Equal(t, 1, inner.findCalls)
	})
}

func TestProductReadStoreList(t *testing.T) {
	t.Run("second list is served from cache", func(t *testing.T) {
		_, _, inner, store := newCacheFixture(t)

		first, err := store.List(context.Background())
		require.NoError(t, err)
		second, err := store.List(context.Background())
		require.NoError(t, err)

		assert.Len(t, second, len(first))
		assert.Equal(t, 1, inner.listCalls)
	})

	t.Run("cached entries expire with the ttl", func(t *testing.T) {
		mr, _, inner, store := newCacheFixture(t)

		_, err := store.List(context.Background())
		require.NoError(t, err)
		mr.FastForward(2 * time.Minute)

		_, err = store.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, inner.listCalls)
	})
}

func TestInvalidator(t *testing.T) {
	mr, client, inner, store := newCacheFixture(t)
	var id uuid.UUID
	for k := range inner.products {
		id = k
	}

	_, err := store.List(context.Background())
	require.NoError(t, err)
	_, err = store.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.True(t, mr.Exists("products:all"))
	require.True(t, mr.Exists("products:"+id.String()))

	cache.NewInvalidator(client).InvalidateProduct(context.Background(), id)

	assert.False(t, mr.Exists("products:all"))
	assert.False(t, mr.Exists("products:"+id.String()))

	_, err = store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, inner.listCalls)
}
