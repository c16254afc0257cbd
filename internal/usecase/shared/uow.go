package shared

import (
	"context"
	"time"

	"promo-api/internal/domain/analytics"
	"promo-api/internal/domain/offer"
	"promo-api/internal/domain/product"
	"promo-api/internal/domain/segment"

	"github.com/google/uuid"
)

// UnitOfWork scopes write operations to a transaction. Only single-document
// writes are atomic on their own; the one multi-document atomic unit in the
// system is the offer delete plus its analytics cascade, which is why Within
// exists at all.
type UnitOfWork interface {
	// Within: full transaction for write operations with transient-failure retry
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: direct access to command-side reads outside a transaction.
	// These reads are NOT snapshot-consistent with a later write: between a
	// reference/guard scan and the decision it informs, a concurrent request
	// may add or remove an offer. That window is an accepted trade-off;
	// callers needing strict correctness must serialize through Within.
	CommandReads() CommandReads
}

type Tx interface {
	Offers() OfferRepository
	Products() ProductRepository
	Segments() SegmentRepository
	Analytics() AnalyticsRepository
	Reads() CommandReads
}

// CommandReads are the write-side lookups: existence checks for referential
// integrity, reference guards before deletes, and the full offer scan the
// conflict checker runs over.
type CommandReads interface {
	OfferByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
	AllOffers(ctx context.Context) ([]offer.Offer, error)
	ProductByID(ctx context.Context, id uuid.UUID) (*product.Product, error)
	SegmentByID(ctx context.Context, id uuid.UUID) (*segment.Segment, error)
	AnalyticsByOffer(ctx context.Context, offerID uuid.UUID) (*analytics.Analytics, error)
	// MissingProducts returns the subset of ids with no stored product.
	MissingProducts(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
	// MissingSegments returns the subset of ids with no stored segment.
	MissingSegments(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
	// OfferReferencesProduct reports whether any offer's products set contains id.
	OfferReferencesProduct(ctx context.Context, id uuid.UUID) (bool, error)
	// OfferReferencesSegment reports whether any offer's segments set contains id.
	OfferReferencesSegment(ctx context.Context, id uuid.UUID) (bool, error)
}

type OfferRepository interface {
	Create(ctx context.Context, d offer.Draft, now time.Time) (*offer.Offer, error)
	Update(ctx context.Context, id uuid.UUID, p offer.Patch, now time.Time) (*offer.Offer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProductRepository interface {
	Create(ctx context.Context, d product.Draft, now time.Time) (*product.Product, error)
	Update(ctx context.Context, id uuid.UUID, p product.Patch, now time.Time) (*product.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SegmentRepository interface {
	Create(ctx context.Context, d segment.Draft, now time.Time) (*segment.Segment, error)
	Update(ctx context.Context, id uuid.UUID, p segment.Patch, now time.Time) (*segment.Segment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AnalyticsRepository interface {
	Create(ctx context.Context, a analytics.Analytics, now time.Time) (*analytics.Analytics, error)
	Update(ctx context.Context, id uuid.UUID, p analytics.Patch, now time.Time) error
	AppendTimeFrame(ctx context.Context, id uuid.UUID, tf analytics.TimeFrame, now time.Time) error
	// DeleteByOffer removes every analytics document for the offer as one
	// statement and returns the number removed.
	DeleteByOffer(ctx context.Context, offerID uuid.UUID) (int64, error)
}

// CacheInvalidator lets write commands drop cached read views after a
// successful mutation. Implementations must never fail the surrounding
// operation over a cache error.
type CacheInvalidator interface {
	InvalidateProduct(ctx context.Context, id uuid.UUID)
	InvalidateSegment(ctx context.Context, id uuid.UUID)
}
