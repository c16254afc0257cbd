package commands

import (
	"context"

	"promo-api/internal/domain/segment"
	"promo-api/internal/pkg/clock"
	"promo-api/internal/pkg/errs"
	"promo-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type SegmentCommands interface {
	Create(ctx context.Context, d segment.Draft) (*segment.Segment, error)
	Update(ctx context.Context, id uuid.UUID, p segment.Patch) (*segment.Segment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type segmentCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	inv   shared.CacheInvalidator
}

func NewSegmentCommands(uow shared.UnitOfWork, clk clock.Clock, inv shared.CacheInvalidator) SegmentCommands {
	return &segmentCommandsImpl{uow: uow, clock: clk, inv: inv}
}

func (uc *segmentCommandsImpl) Create(ctx context.Context, d segment.Draft) (*segment.Segment, error) {
	if d.Name == "" || len(d.Criteria) == 0 {
		return nil, errs.ErrSegmentFieldsMissing
	}

	var created *segment.Segment
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, derr := tx.Segments().Create(ctx, d, uc.clock.Now())
		if derr != nil {
			return derr
		}
		created = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.inv.InvalidateSegment(ctx, created.ID)
	return created, nil
}

func (uc *segmentCommandsImpl) Update(ctx context.Context, id uuid.UUID, p segment.Patch) (*segment.Segment, error) {
	var updated *segment.Segment
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().SegmentByID(ctx, id); derr != nil {
			return derr
		}
		s, derr := tx.Segments().Update(ctx, id, p, uc.clock.Now())
		if derr != nil {
			return derr
		}
		updated = s
		return nil
	})
	if err != nil {
		return nil, mapSegmentNotFound(err)
	}
	uc.inv.InvalidateSegment(ctx, id)
	return updated, nil
}

// Delete refuses to remove a segment any offer's segments set still contains.
func (uc *segmentCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().SegmentByID(ctx, id); derr != nil {
			return derr
		}
		referenced, derr := tx.Reads().OfferReferencesSegment(ctx, id)
		if derr != nil {
			return derr
		}
		if referenced {
			return errs.ErrSegmentInUse
		}
		return tx.Segments().Delete(ctx, id)
	})
	if err != nil {
		return mapSegmentNotFound(err)
	}
	uc.inv.InvalidateSegment(ctx, id)
	return nil
}
