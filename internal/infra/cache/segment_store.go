package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"promo-api/internal/domain/segment"
	"promo-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	segmentListKey   = "segments:all"
	segmentKeyPrefix = "segments:"
)

// SegmentReadStore is a read-through cache over another SegmentReadStore.
type SegmentReadStore struct {
	inner  queries.SegmentReadStore
	client *redis.Client
	ttl    time.Duration
}

func NewSegmentReadStore(inner queries.SegmentReadStore, client *redis.Client, ttl time.Duration) *SegmentReadStore {
	return &SegmentReadStore{inner: inner, client: client, ttl: ttl}
}

func (s *SegmentReadStore) List(ctx context.Context) ([]segment.Segment, error) {
	if data, err := s.client.Get(ctx, segmentListKey).Bytes(); err == nil {
		var segments []segment.Segment
		if err := json.Unmarshal(data, &segments); err == nil {
			return segments, nil
		}
		slog.Warn("discarding corrupt cache entry", "key", segmentListKey)
	} else if err != redis.Nil {
		slog.Warn("cache read failed", "key", segmentListKey, "error", err.Error())
	}

	segments, err := s.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	s.store(ctx, segmentListKey, segments)
	return segments, nil
}

func (s *SegmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*segment.Segment, error) {
	key := segmentKeyPrefix + id.String()
	if data, err := s.client.Get(ctx, key).Bytes(); err == nil {
		var sg segment.Segment
		if err := json.Unmarshal(data, &sg); err == nil {
			return &sg, nil
		}
		slog.Warn("discarding corrupt cache entry", "key", key)
	} else if err != redis.Nil {
		slog.Warn("cache read failed", "key", key, "error", err.Error())
	}

	sg, err := s.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, sg)
	return sg, nil
}

func (s *SegmentReadStore) store(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		slog.Warn("cache write failed", "key", key, "error", err.Error())
	}
}
