package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"promo-api/internal/domain/offer"
	"promo-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const offerColumns = "id, name, type, start_date, end_date, target_audience, segments, products, status, created_by, created_at, updated_at"

type OfferRepository struct {
	db infra.DBTX
}

func NewOfferRepository(db infra.DBTX) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) List(ctx context.Context) ([]offer.Offer, error) {
	rows, err := r.db.Query(ctx, "SELECT "+offerColumns+" FROM offers")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers", err)
	}
	defer rows.Close()
	return collectOffers(rows)
}

func (r *OfferRepository) FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	row := r.db.QueryRow(ctx, "SELECT "+offerColumns+" FROM offers WHERE id = $1", id)
	o, err := scanOffer(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get offer by id", err)
	}
	return o, nil
}

func (r *OfferRepository) Create(ctx context.Context, d offer.Draft, now time.Time) (*offer.Offer, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO offers (name, type, start_date, end_date, target_audience, segments, products, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING `+offerColumns,
		d.Name, d.Type, d.StartDate, d.EndDate, string(d.TargetAudience),
		uuidSlice(d.Segments), uuidSlice(d.Products), string(d.Status), d.CreatedBy, now,
	)
	o, err := scanOffer(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create offer", err)
	}
	return o, nil
}

func (r *OfferRepository) Update(ctx context.Context, id uuid.UUID, p offer.Patch, now time.Time) (*offer.Offer, error) {
	query, args := buildOfferUpdate(id, p, now)
	row := r.db.QueryRow(ctx, query, args...)
	o, err := scanOffer(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update offer", err)
	}
	return o, nil
}

func (r *OfferRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM offers WHERE id = $1", id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete offer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return nil
}

// ReferencesProduct reports whether any offer's products array contains id.
func (r *OfferRepository) ReferencesProduct(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.referencesIn(ctx, "products", id)
}

// ReferencesSegment reports whether any offer's segments array contains id.
func (r *OfferRepository) ReferencesSegment(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.referencesIn(ctx, "segments", id)
}

func (r *OfferRepository) referencesIn(ctx context.Context, column string, id uuid.UUID) (bool, error) {
	var referenced bool
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM offers WHERE %s @> ARRAY[$1]::uuid[])", column)
	if err := r.db.QueryRow(ctx, query, id).Scan(&referenced); err != nil {
		return false, infra.WrapRepoErr("failed to scan offer references", err)
	}
	return referenced, nil
}

// buildOfferUpdate assembles a SET clause from the patch's supplied fields.
// updated_at is always refreshed, even for an otherwise empty patch.
func buildOfferUpdate(id uuid.UUID, p offer.Patch, now time.Time) (string, []any) {
	sets := []string{"updated_at = $1"}
	args := []any{now}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if v, ok := p.Name.Get(); ok {
		add("name", v)
	}
	if v, ok := p.Type.Get(); ok {
		add("type", v)
	}
	if v, ok := p.StartDate.Get(); ok {
		add("start_date", v)
	}
	if v, ok := p.EndDate.Get(); ok {
		add("end_date", v)
	}
	if v, ok := p.TargetAudience.Get(); ok {
		add("target_audience", string(v))
	}
	if v, ok := p.Segments.Get(); ok {
		add("segments", uuidSlice(v))
	}
	if v, ok := p.Products.Get(); ok {
		add("products", uuidSlice(v))
	}
	if v, ok := p.Status.Get(); ok {
		add("status", string(v))
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE offers SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), offerColumns,
	)
	return query, args
}

func scanOffer(row pgx.Row) (*offer.Offer, error) {
	var o offer.Offer
	var audience, status string
	err := row.Scan(
		&o.ID, &o.Name, &o.Type, &o.StartDate, &o.EndDate, &audience,
		&o.Segments, &o.Products, &status, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.TargetAudience = offer.Audience(audience)
	o.Status = offer.Status(status)
	return &o, nil
}

func collectOffers(rows pgx.Rows) ([]offer.Offer, error) {
	offers := make([]offer.Offer, 0)
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer row", err)
		}
		offers = append(offers, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate offer rows", err)
	}
	return offers, nil
}
