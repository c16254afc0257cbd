package queries

import (
	"context"
	"time"

	"promo-api/internal/domain/analytics"
	"promo-api/internal/infra"

	"github.com/google/uuid"
)

type AnalyticsReadStore interface {
	List(ctx context.Context) ([]analytics.Analytics, error)
	FindByOffer(ctx context.Context, offerID uuid.UUID) (*analytics.Analytics, error)
}

// TimeRange bounds the timeFrames returned by analytics reads. A zero range
// disables filtering; the stored counters are never affected.
type TimeRange struct {
	From time.Time
	To   time.Time
}

type AnalyticsQueries interface {
	List(ctx context.Context, tr TimeRange) ([]analytics.Analytics, error)
	// GetByOffer returns a zeroed document when the offer has no stored
	// analytics, mirroring what dashboards expect.
	GetByOffer(ctx context.Context, offerID uuid.UUID, tr TimeRange) (*analytics.Analytics, error)
}

type analyticsQueriesImpl struct {
	repo AnalyticsReadStore
}

func NewAnalyticsQueries(repo AnalyticsReadStore) AnalyticsQueries {
	return &analyticsQueriesImpl{repo: repo}
}

func (q *analyticsQueriesImpl) List(ctx context.Context, tr TimeRange) ([]analytics.Analytics, error) {
	docs, err := q.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		docs[i].TimeFrames = docs[i].FilterTimeFrames(tr.From, tr.To)
	}
	return docs, nil
}

func (q *analyticsQueriesImpl) GetByOffer(ctx context.Context, offerID uuid.UUID, tr TimeRange) (*analytics.Analytics, error) {
	doc, err := q.repo.FindByOffer(ctx, offerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			empty := analytics.Empty(offerID)
			return &empty, nil
		}
		return nil, err
	}
	doc.TimeFrames = doc.FilterTimeFrames(tr.From, tr.To)
	return doc, nil
}
