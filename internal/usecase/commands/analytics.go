package commands

import (
	"context"

	"promo-api/internal/domain/analytics"
	"promo-api/internal/infra"
	"promo-api/internal/pkg/clock"
	"promo-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type AnalyticsCommands interface {
	// Upsert creates the offer's analytics document if none exists (counters
	// default to zero), otherwise applies a field-level update. A supplied
	// time frame is appended to the document afterwards.
	Upsert(ctx context.Context, offerID uuid.UUID, p analytics.Patch, tf *analytics.TimeFrame) (*analytics.Analytics, error)
}

type analyticsCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAnalyticsCommands(uow shared.UnitOfWork, clk clock.Clock) AnalyticsCommands {
	return &analyticsCommandsImpl{uow: uow, clock: clk}
}

func (uc *analyticsCommandsImpl) Upsert(ctx context.Context, offerID uuid.UUID, p analytics.Patch, tf *analytics.TimeFrame) (*analytics.Analytics, error) {
	var result *analytics.Analytics
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The offer must exist at creation time; it is not re-validated later.
		if _, derr := tx.Reads().OfferByID(ctx, offerID); derr != nil {
			return derr
		}

		now := uc.clock.Now()
		existing, derr := tx.Reads().AnalyticsByOffer(ctx, offerID)
		switch {
		case derr == nil:
			if uerr := tx.Analytics().Update(ctx, existing.ID, p, now); uerr != nil {
				return uerr
			}
		case infra.IsKind(derr, infra.KindNotFound):
			doc := analytics.Analytics{
				OfferID:     offerID,
				Views:       p.Views.Or(0),
				Activations: p.Activations.Or(0),
				Conversions: p.Conversions.Or(0),
				Revenue:     p.Revenue.Or(0),
				TimeFrames:  []analytics.TimeFrame{},
			}
			created, cerr := tx.Analytics().Create(ctx, doc, now)
			if cerr != nil {
				return cerr
			}
			existing = created
		default:
			return derr
		}

		if tf != nil {
			if aerr := tx.Analytics().AppendTimeFrame(ctx, existing.ID, *tf, now); aerr != nil {
				return aerr
			}
		}

		updated, rerr := tx.Reads().AnalyticsByOffer(ctx, offerID)
		if rerr != nil {
			return rerr
		}
		result = updated
		return nil
	})
	if err != nil {
		return nil, mapOfferNotFound(err)
	}
	return result, nil
}
