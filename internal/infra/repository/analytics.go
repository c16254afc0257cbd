package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"promo-api/internal/domain/analytics"
	"promo-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const analyticsColumns = "id, offer_id, views, activations, conversions, revenue, time_frames, created_at, updated_at"

type AnalyticsRepository struct {
	db infra.DBTX
}

func NewAnalyticsRepository(db infra.DBTX) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) List(ctx context.Context) ([]analytics.Analytics, error) {
	rows, err := r.db.Query(ctx, "SELECT "+analyticsColumns+" FROM analytics")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list analytics", err)
	}
	defer rows.Close()

	docs := make([]analytics.Analytics, 0)
	for rows.Next() {
		a, err := scanAnalytics(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan analytics row", err)
		}
		docs = append(docs, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate analytics rows", err)
	}
	return docs, nil
}

// FindByOffer returns the oldest analytics document for the offer. More than
// one document per offer should not happen but is tolerated.
func (r *AnalyticsRepository) FindByOffer(ctx context.Context, offerID uuid.UUID) (*analytics.Analytics, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+analyticsColumns+" FROM analytics WHERE offer_id = $1 ORDER BY created_at LIMIT 1",
		offerID,
	)
	a, err := scanAnalytics(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("analytics not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get analytics by offer", err)
	}
	return a, nil
}

func (r *AnalyticsRepository) Create(ctx context.Context, a analytics.Analytics, now time.Time) (*analytics.Analytics, error) {
	frames := a.TimeFrames
	if frames == nil {
		frames = []analytics.TimeFrame{}
	}
	row := r.db.QueryRow(ctx, `
		INSERT INTO analytics (offer_id, views, activations, conversions, revenue, time_frames, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING `+analyticsColumns,
		a.OfferID, a.Views, a.Activations, a.Conversions, a.Revenue, frames, now,
	)
	created, err := scanAnalytics(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create analytics", err)
	}
	return created, nil
}

func (r *AnalyticsRepository) Update(ctx context.Context, id uuid.UUID, p analytics.Patch, now time.Time) error {
	query, args := buildAnalyticsUpdate(id, p, now)
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update analytics", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("analytics not found", nil, infra.KindNotFound)
	}
	return nil
}

// AppendTimeFrame pushes a snapshot onto the document's time_frames array.
func (r *AnalyticsRepository) AppendTimeFrame(ctx context.Context, id uuid.UUID, tf analytics.TimeFrame, now time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE analytics
		SET time_frames = time_frames || jsonb_build_array($2::jsonb), updated_at = $3
		WHERE id = $1`,
		id, tf, now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append time frame", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("analytics not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AnalyticsRepository) DeleteByOffer(ctx context.Context, offerID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM analytics WHERE offer_id = $1", offerID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete analytics for offer", err)
	}
	return tag.RowsAffected(), nil
}

func buildAnalyticsUpdate(id uuid.UUID, p analytics.Patch, now time.Time) (string, []any) {
	sets := []string{"updated_at = $1"}
	args := []any{now}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if v, ok := p.Views.Get(); ok {
		add("views", v)
	}
	if v, ok := p.Activations.Get(); ok {
		add("activations", v)
	}
	if v, ok := p.Conversions.Get(); ok {
		add("conversions", v)
	}
	if v, ok := p.Revenue.Get(); ok {
		add("revenue", v)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE analytics SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	return query, args
}

func scanAnalytics(row pgx.Row) (*analytics.Analytics, error) {
	var a analytics.Analytics
	err := row.Scan(
		&a.ID, &a.OfferID, &a.Views, &a.Activations, &a.Conversions,
		&a.Revenue, &a.TimeFrames, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if a.TimeFrames == nil {
		a.TimeFrames = []analytics.TimeFrame{}
	}
	return &a, nil
}
