//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"promo-api/internal/domain/offer"
	"promo-api/internal/infra"
	"promo-api/internal/pkg/errs"
	"promo-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOfferStore struct {
	offers []offer.Offer
	calls  int
}

func (s *stubOfferStore) List(context.Context) ([]offer.Offer, error) {
	s.calls++
	return s.offers, nil
}

func (s *stubOfferStore) FindByID(_ context.Context, id uuid.UUID) (*offer.Offer, error) {
	for _, o := range s.offers {
		if o.ID == id {
			found := o
			return &found, nil
		}
	}
	return nil, infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
}

func storedOffer(products []uuid.UUID, start, end time.Time) offer.Offer {
	return offer.Offer{
		ID:        uuid.New(),
		Name:      "Stored",
		StartDate: start,
		EndDate:   end,
		Products:  products,
	}
}

func TestOfferQueriesGetByID(t *testing.T) {
	sharedProduct := uuid.New()
	store := &stubOfferStore{offers: []offer.Offer{
		storedOffer([]uuid.UUID{sharedProduct},
			time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)),
	}}
	q := queries.NewOfferQueries(store)

	got, err := q.GetByID(context.Background(), store.offers[0].ID)
	require.NoError(t, err)
	assert.Equal(t, store.offers[0].ID, got.ID)

	_, err = q.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, errs.ErrOfferNotFound)
}

func TestOfferQueriesCheckConflicts(t *testing.T) {
	sharedProduct := uuid.New()
	june := func(day int) time.Time {
		return time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC)
	}
	overlapping := storedOffer([]uuid.UUID{sharedProduct}, june(1), june(30))
	disjoint := storedOffer([]uuid.UUID{sharedProduct}, june(1), june(5))

	t.Run("rejects invalid candidate before touching the store", func(t *testing.T) {
		store := &stubOfferStore{offers: []offer.Offer{overlapping}}
		q := queries.NewOfferQueries(store)

		_, err := q.CheckConflicts(context.Background(), offer.Candidate{
			StartDate: june(10),
			Products:  []uuid.UUID{sharedProduct},
		})
		assert.ErrorIs(t, err, errs.ErrConflictCheckFields)
		assert.Zero(t, store.calls)
	})

	t.Run("returns overlapping offers only", func(t *testing.T) {
		store := &stubOfferStore{offers: []offer.Offer{overlapping, disjoint}}
		q := queries.NewOfferQueries(store)

		conflicts, err := q.CheckConflicts(context.Background(), offer.Candidate{
			StartDate: june(10),
			EndDate:   june(20),
			Products:  []uuid.UUID{sharedProduct},
		})
		require.NoError(t, err)
		require.Len(t, conflicts, 1)
		assert.Equal(t, overlapping.ID, conflicts[0].ID)
	})

	t.Run("excludes the offer being edited", func(t *testing.T) {
		store := &stubOfferStore{offers: []offer.Offer{overlapping}}
		q := queries.NewOfferQueries(store)

		excludeID := overlapping.ID
		conflicts, err := q.CheckConflicts(context.Background(), offer.Candidate{
			ExcludeID: &excludeID,
			StartDate: june(10),
			EndDate:   june(20),
			Products:  []uuid.UUID{sharedProduct},
		})
		require.NoError(t, err)
		assert.Empty(t, conflicts)
		assert.NotNil(t, conflicts)
	})
}
