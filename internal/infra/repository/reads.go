package repository

import (
	"context"

	"promo-api/internal/domain/analytics"
	"promo-api/internal/domain/offer"
	"promo-api/internal/domain/product"
	"promo-api/internal/domain/segment"
	"promo-api/internal/infra"
	"promo-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReads bundles the write-side lookups over one DBTX. Used both
// inside transactions (over pgx.Tx) and standalone (over the pool).
type CommandReads struct {
	offers    *OfferRepository
	products  *ProductRepository
	segments  *SegmentRepository
	analytics *AnalyticsRepository
}

func NewCommandReads(db infra.DBTX) *CommandReads {
	return &CommandReads{
		offers:    NewOfferRepository(db),
		products:  NewProductRepository(db),
		segments:  NewSegmentRepository(db),
		analytics: NewAnalyticsRepository(db),
	}
}

var _ shared.CommandReads = (*CommandReads)(nil)

func (r *CommandReads) OfferByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	return r.offers.FindByID(ctx, id)
}

func (r *CommandReads) AllOffers(ctx context.Context) ([]offer.Offer, error) {
	return r.offers.List(ctx)
}

func (r *CommandReads) ProductByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	return r.products.FindByID(ctx, id)
}

func (r *CommandReads) SegmentByID(ctx context.Context, id uuid.UUID) (*segment.Segment, error) {
	return r.segments.FindByID(ctx, id)
}

func (r *CommandReads) AnalyticsByOffer(ctx context.Context, offerID uuid.UUID) (*analytics.Analytics, error) {
	return r.analytics.FindByOffer(ctx, offerID)
}

func (r *CommandReads) MissingProducts(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	return r.products.Missing(ctx, ids)
}

func (r *CommandReads) MissingSegments(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	return r.segments.Missing(ctx, ids)
}

func (r *CommandReads) OfferReferencesProduct(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.offers.ReferencesProduct(ctx, id)
}

func (r *CommandReads) OfferReferencesSegment(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.offers.ReferencesSegment(ctx, id)
}
