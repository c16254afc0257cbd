package commands

import (
	"context"

	"promo-api/internal/domain/offer"
	"promo-api/internal/pkg/clock"
	"promo-api/internal/pkg/errs"
	"promo-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type OfferCommands interface {
	Create(ctx context.Context, d offer.Draft) (*offer.Offer, error)
	Update(ctx context.Context, id uuid.UUID, p offer.Patch) (*offer.Offer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type offerCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOfferCommands(uow shared.UnitOfWork, clk clock.Clock) OfferCommands {
	return &offerCommandsImpl{uow: uow, clock: clk}
}

func (uc *offerCommandsImpl) Create(ctx context.Context, d offer.Draft) (*offer.Offer, error) {
	if d.Name == "" || d.Type == "" || d.StartDate.IsZero() || d.EndDate.IsZero() || d.TargetAudience == "" {
		return nil, errs.ErrOfferFieldsMissing
	}
	if d.Status == "" {
		d.Status = offer.StatusInactive
	}

	// Reference validation happens before the write; the scan-to-write
	// window is accepted (see shared.UnitOfWork).
	if err := uc.validateReferences(ctx, d.Products, d.Segments); err != nil {
		return nil, err
	}

	var created *offer.Offer
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, derr := tx.Offers().Create(ctx, d, uc.clock.Now())
		if derr != nil {
			return derr
		}
		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *offerCommandsImpl) Update(ctx context.Context, id uuid.UUID, p offer.Patch) (*offer.Offer, error) {
	if products, ok := p.Products.Get(); ok {
		if err := uc.validateReferences(ctx, products, nil); err != nil {
			return nil, err
		}
	}
	if segments, ok := p.Segments.Get(); ok {
		if err := uc.validateReferences(ctx, nil, segments); err != nil {
			return nil, err
		}
	}

	var updated *offer.Offer
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().OfferByID(ctx, id); derr != nil {
			return derr
		}
		o, derr := tx.Offers().Update(ctx, id, p, uc.clock.Now())
		if derr != nil {
			return derr
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, mapOfferNotFound(err)
	}
	return updated, nil
}

// Delete removes the offer and its analytics documents in one transaction,
// analytics first: if the cascade fails, the offer delete is rolled back and
// never observable.
func (uc *offerCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().OfferByID(ctx, id); derr != nil {
			return derr
		}
		if _, derr := tx.Analytics().DeleteByOffer(ctx, id); derr != nil {
			return derr
		}
		return tx.Offers().Delete(ctx, id)
	})
	return mapOfferNotFound(err)
}

func (uc *offerCommandsImpl) validateReferences(ctx context.Context, products, segments []uuid.UUID) error {
	reads := uc.uow.CommandReads()
	if len(products) > 0 {
		missing, err := reads.MissingProducts(ctx, products)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return errs.ErrUnknownProductRef
		}
	}
	if len(segments) > 0 {
		missing, err := reads.MissingSegments(ctx, segments)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return errs.ErrUnknownSegmentRef
		}
	}
	return nil
}
