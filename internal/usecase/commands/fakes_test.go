//go:build unit

package commands_test

import (
	"context"
	"time"

	"promo-api/internal/domain/analytics"
	"promo-api/internal/domain/offer"
	"promo-api/internal/domain/product"
	"promo-api/internal/domain/segment"
	"promo-api/internal/infra"
	"promo-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is an in-memory document store backing the fake unit of work.
// Transactions are not simulated: every write applies immediately, which is
// enough to exercise command logic.
type fakeStore struct {
	offers    map[uuid.UUID]offer.Offer
	products  map[uuid.UUID]product.Product
	segments  map[uuid.UUID]segment.Segment
	analytics map[uuid.UUID]analytics.Analytics
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		offers:    make(map[uuid.UUID]offer.Offer),
		products:  make(map[uuid.UUID]product.Product),
		segments:  make(map[uuid.UUID]segment.Segment),
		analytics: make(map[uuid.UUID]analytics.Analytics),
	}
}

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

type fakeUoW struct {
	store *fakeStore
}

func newFakeUoW(store *fakeStore) *fakeUoW {
	return &fakeUoW{store: store}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Offers() shared.OfferRepository        { return &fakeOfferRepo{store: t.store} }
func (t *fakeTx) Products() shared.ProductRepository    { return &fakeProductRepo{store: t.store} }
func (t *fakeTx) Segments() shared.SegmentRepository    { return &fakeSegmentRepo{store: t.store} }
func (t *fakeTx) Analytics() shared.AnalyticsRepository { return &fakeAnalyticsRepo{store: t.store} }
func (t *fakeTx) Reads() shared.CommandReads            { return &fakeReads{store: t.store} }

type fakeReads struct {
	store *fakeStore
}

func (r *fakeReads) OfferByID(_ context.Context, id uuid.UUID) (*offer.Offer, error) {
	o, ok := r.store.offers[id]
	if !ok {
		return nil, notFound("offer")
	}
	return &o, nil
}

func (r *fakeReads) AllOffers(_ context.Context) ([]offer.Offer, error) {
	out := make([]offer.Offer, 0, len(r.store.offers))
	for _, o := range r.store.offers {
		out = append(out, o)
	}
	return out, nil
}

func (r *fakeReads) ProductByID(_ context.Context, id uuid.UUID) (*product.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, notFound("product")
	}
	return &p, nil
}

func (r *fakeReads) SegmentByID(_ context.Context, id uuid.UUID) (*segment.Segment, error) {
	s, ok := r.store.segments[id]
	if !ok {
		return nil, notFound("segment")
	}
	return &s, nil
}

func (r *fakeReads) AnalyticsByOffer(_ context.Context, offerID uuid.UUID) (*analytics.Analytics, error) {
	for _, a := range r.store.analytics {
		if a.OfferID == offerID {
			doc := a
			return &doc, nil
		}
	}
	return nil, notFound("analytics")
}

func (r *fakeReads) MissingProducts(_ context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	var missing []uuid.UUID
	for _, id := range ids {
		if _, ok := r.store.products[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (r *fakeReads) MissingSegments(_ context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	var missing []uuid.UUID
	for _, id := range ids {
		if _, ok := r.store.segments[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (r *fakeReads) OfferReferencesProduct(_ context.Context, id uuid.UUID) (bool, error) {
	for _, o := range r.store.offers {
		for _, p := range o.Products {
			if p == id {
				return true, nil
			}
		}
	}
	return false, nil
}

func (r *fakeReads) OfferReferencesSegment(_ context.Context, id uuid.UUID) (bool, error) {
	for _, o := range r.store.offers {
		for _, s := range o.Segments {
			if s == id {
				return true, nil
			}
		}
	}
	return false, nil
}

type fakeOfferRepo struct {
	store *fakeStore
}

func (r *fakeOfferRepo) Create(_ context.Context, d offer.Draft, now time.Time) (*offer.Offer, error) {
	o := offer.Offer{
		ID:             uuid.New(),
		Name:           d.Name,
		Type:           d.Type,
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		TargetAudience: d.TargetAudience,
		Segments:       d.Segments,
		Products:       d.Products,
		Status:         d.Status,
		CreatedBy:      d.CreatedBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	r.store.offers[o.ID] = o
	return &o, nil
}

func (r *fakeOfferRepo) Update(_ context.Context, id uuid.UUID, p offer.Patch, now time.Time) (*offer.Offer, error) {
	o, ok := r.store.offers[id]
	if !ok {
		return nil, notFound("offer")
	}
	if v, ok := p.Name.Get(); ok {
		o.Name = v
	}
	if v, ok := p.Type.Get(); ok {
		o.Type = v
	}
	if v, ok := p.StartDate.Get(); ok {
		o.StartDate = v
	}
	if v, ok := p.EndDate.Get(); ok {
		o.EndDate = v
	}
	if v, ok := p.TargetAudience.Get(); ok {
		o.TargetAudience = v
	}
	if v, ok := p.Segments.Get(); ok {
		o.Segments = v
	}
	if v, ok := p.Products.Get(); ok {
		o.Products = v
	}
	if v, ok := p.Status.Get(); ok {
		o.Status = v
	}
	o.UpdatedAt = now
	r.store.offers[id] = o
	return &o, nil
}

func (r *fakeOfferRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.offers[id]; !ok {
		return notFound("offer")
	}
	delete(r.store.offers, id)
	return nil
}

type fakeProductRepo struct {
	store *fakeStore
}

func (r *fakeProductRepo) Create(_ context.Context, d product.Draft, now time.Time) (*product.Product, error) {
	p := product.Product{
		ID:         uuid.New(),
		Name:       d.Name,
		Category:   d.Category,
		Price:      d.Price,
		Attributes: d.Attributes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	r.store.products[p.ID] = p
	return &p, nil
}

func (r *fakeProductRepo) Update(_ context.Context, id uuid.UUID, p product.Patch, now time.Time) (*product.Product, error) {
	existing, ok := r.store.products[id]
	if !ok {
		return nil, notFound("product")
	}
	if v, ok := p.Name.Get(); ok {
		existing.Name = v
	}
	if v, ok := p.Category.Get(); ok {
		existing.Category = v
	}
	if v, ok := p.Price.Get(); ok {
		existing.Price = v
	}
	if v, ok := p.Attributes.Get(); ok {
		existing.Attributes = v
	}
	existing.UpdatedAt = now
	r.store.products[id] = existing
	return &existing, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.products[id]; !ok {
		return notFound("product")
	}
	delete(r.store.products, id)
	return nil
}

type fakeSegmentRepo struct {
	store *fakeStore
}

func (r *fakeSegmentRepo) Create(_ context.Context, d segment.Draft, now time.Time) (*segment.Segment, error) {
	s := segment.Segment{
		ID:         uuid.New(),
		Name:       d.Name,
		Criteria:   d.Criteria,
		CreatedBy:  d.CreatedBy,
		Attributes: d.Attributes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	r.store.segments[s.ID] = s
	return &s, nil
}

func (r *fakeSegmentRepo) Update(_ context.Context, id uuid.UUID, p segment.Patch, now time.Time) (*segment.Segment, error) {
	existing, ok := r.store.segments[id]
	if !ok {
		return nil, notFound("segment")
	}
	if v, ok := p.Name.Get(); ok {
		existing.Name = v
	}
	if v, ok := p.Criteria.Get(); ok {
		existing.Criteria = v
	}
	if v, ok := p.Attributes.Get(); ok {
		existing.Attributes = v
	}
	existing.UpdatedAt = now
	r.store.segments[id] = existing
	return &existing, nil
}

func (r *fakeSegmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.segments[id]; !ok {
		return notFound("segment")
	}
	delete(r.store.segments, id)
	return nil
}

type fakeAnalyticsRepo struct {
	store *fakeStore
}

func (r *fakeAnalyticsRepo) Create(_ context.Context, a analytics.Analytics, now time.Time) (*analytics.Analytics, error) {
	a.ID = uuid.New()
	a.CreatedAt = now
	a.UpdatedAt = now
	r.store.analytics[a.ID] = a
	return &a, nil
}

func (r *fakeAnalyticsRepo) Update(_ context.Context, id uuid.UUID, p analytics.Patch, now time.Time) error {
	a, ok := r.store.analytics[id]
	if !ok {
		return notFound("analytics")
	}
	if v, ok := p.Views.Get(); ok {
		a.Views = v
	}
	if v, ok := p.Activations.Get(); ok {
		a.Activations = v
	}
	if v, ok := p.Conversions.Get(); ok {
		a.Conversions = v
	}
	if v, ok := p.Revenue.Get(); ok {
		a.Revenue = v
	}
	a.UpdatedAt = now
	r.store.analytics[id] = a
	return nil
}

func (r *fakeAnalyticsRepo) AppendTimeFrame(_ context.Context, id uuid.UUID, tf analytics.TimeFrame, now time.Time) error {
	a, ok := r.store.analytics[id]
	if !ok {
		return notFound("analytics")
	}
	a.TimeFrames = append(a.TimeFrames, tf)
	a.UpdatedAt = now
	r.store.analytics[id] = a
	return nil
}

func (r *fakeAnalyticsRepo) DeleteByOffer(_ context.Context, offerID uuid.UUID) (int64, error) {
	var n int64
	for id, a := range r.store.analytics {
		if a.OfferID == offerID {
			delete(r.store.analytics, id)
			n++
		}
	}
	return n, nil
}

// fakeInvalidator records invalidation calls.
type fakeInvalidator struct {
	products []uuid.UUID
	segments []uuid.UUID
}

func (f *fakeInvalidator) InvalidateProduct(_ context.Context, id uuid.UUID) {
	f.products = append(f.products, id)
}

func (f *fakeInvalidator) InvalidateSegment(_ context.Context, id uuid.UUID) {
	f.segments = append(f.segments, id)
}
