//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"promo-api/internal/domain/analytics"
	"promo-api/internal/infra"
	"promo-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalyticsStore struct {
	docs []analytics.Analytics
}

func (s *stubAnalyticsStore) List(context.Context) ([]analytics.Analytics, error) {
	out := make([]analytics.Analytics, len(s.docs))
	copy(out, s.docs)
	return out, nil
}

func (s *stubAnalyticsStore) FindByOffer(_ context.Context, offerID uuid.UUID) (*analytics.Analytics, error) {
	for _, d := range s.docs {
		if d.OfferID == offerID {
			found := d
			return &found, nil
		}
	}
	return nil, infra.WrapRepoErr("analytics not found", nil, infra.KindNotFound)
}

func frame(day int, views int64) analytics.TimeFrame {
	return analytics.TimeFrame{
		Date:  time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC),
		Views: views,
	}
}

func TestAnalyticsQueriesGetByOffer(t *testing.T) {
	offerID := uuid.New()
	store := &stubAnalyticsStore{docs: []analytics.Analytics{{
		ID:         uuid.New(),
		OfferID:    offerID,
		Views:      300,
		TimeFrames: []analytics.TimeFrame{frame(1, 10), frame(10, 50), frame(25, 90)},
	}}}
	q := queries.NewAnalyticsQueries(store)

	t.Run("returns stored document without filter", func(t *testing.T) {
		doc, err := q.GetByOffer(context.Background(), offerID, queries.TimeRange{})
		require.NoError(t, err)
		assert.Equal(t, int64(300), doc.Views)
		assert.Len(t, doc.TimeFrames, 3)
	})

	t.Run("filters time frames, counters untouched", func(t *testing.T) {
		tr := queries.TimeRange{
			From: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		}
		doc, err := q.GetByOffer(context.Background(), offerID, tr)
		require.NoError(t, err)
		assert.Equal(t, int64(300), doc.Views)
		require.Len(t, doc.TimeFrames, 1)
		assert.Equal(t, int64(50), doc.TimeFrames[0].Views)
	})

	t.Run("missing document yields a zeroed view", func(t *testing.T) {
		unknown := uuid.New()
		doc, err := q.GetByOffer(context.Background(), unknown, queries.TimeRange{})
		require.NoError(t, err)
		assert.Equal(t, unknown, doc.OfferID)
		assert.Zero(t, doc.Views)
		assert.NotNil(t, doc.TimeFrames)
		assert.Empty(t, doc.TimeFrames)
	})
}

func TestAnalyticsQueriesList(t *testing.T) {
	store := &stubAnalyticsStore{docs: []analytics.Analytics{
		{ID: uuid.New(), OfferID: uuid.New(), TimeFrames: []analytics.TimeFrame{frame(1, 10), frame(20, 40)}},
		{ID: uuid.New(), OfferID: uuid.New(), TimeFrames: []analytics.TimeFrame{frame(22, 70)}},
	}}
	q := queries.NewAnalyticsQueries(store)

	tr := queries.TimeRange{
		From: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	docs, err := q.List(context.Background(), tr)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Len(t, docs[0].TimeFrames, 1)
	assert.Len(t, docs[1].TimeFrames, 1)
}
