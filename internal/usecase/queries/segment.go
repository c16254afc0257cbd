package queries

import (
	"context"

	"promo-api/internal/domain/segment"
	"promo-api/internal/infra"
	"promo-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type SegmentReadStore interface {
	List(ctx context.Context) ([]segment.Segment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*segment.Segment, error)
}

type SegmentQueries interface {
	List(ctx context.Context) ([]segment.Segment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*segment.Segment, error)
}

type segmentQueriesImpl struct {
	repo SegmentReadStore
}

func NewSegmentQueries(repo SegmentReadStore) SegmentQueries {
	return &segmentQueriesImpl{repo: repo}
}

func (q *segmentQueriesImpl) List(ctx context.Context) ([]segment.Segment, error) {
	return q.repo.List(ctx)
}

func (q *segmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*segment.Segment, error) {
	s, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSegmentNotFound
		}
		return nil, err
	}
	return s, nil
}
