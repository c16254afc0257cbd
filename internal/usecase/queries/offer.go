package queries

import (
	"context"

	"promo-api/internal/domain/offer"
	"promo-api/internal/infra"
	"promo-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type OfferReadStore interface {
	List(ctx context.Context) ([]offer.Offer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
}

type OfferQueries interface {
	List(ctx context.Context) ([]offer.Offer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
	// CheckConflicts scans every stored offer and returns the ones the
	// candidate conflicts with. Advisory only: it never blocks a write, and
	// the scan is not snapshot-consistent with any write that follows it.
	// The result order is store iteration order and must be treated as
	// unordered.
	CheckConflicts(ctx context.Context, c offer.Candidate) ([]offer.Offer, error)
}

type offerQueriesImpl struct {
	repo OfferReadStore
}

func NewOfferQueries(repo OfferReadStore) OfferQueries {
	return &offerQueriesImpl{repo: repo}
}

func (q *offerQueriesImpl) List(ctx context.Context) ([]offer.Offer, error) {
	return q.repo.List(ctx)
}

func (q *offerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	o, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOfferNotFound
		}
		return nil, err
	}
	return o, nil
}

func (q *offerQueriesImpl) CheckConflicts(ctx context.Context, c offer.Candidate) ([]offer.Offer, error) {
	// Validated before any store access.
	if !c.Valid() {
		return nil, errs.ErrConflictCheckFields
	}
	stored, err := q.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return offer.FindConflicts(c, stored), nil
}
