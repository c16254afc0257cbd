package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"promo-api/internal/domain/segment"
	"promo-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const segmentColumns = "id, name, criteria, created_by, attributes, created_at, updated_at"

type SegmentRepository struct {
	db infra.DBTX
}

func NewSegmentRepository(db infra.DBTX) *SegmentRepository {
	return &SegmentRepository{db: db}
}

func (r *SegmentRepository) List(ctx context.Context) ([]segment.Segment, error) {
	rows, err := r.db.Query(ctx, "SELECT "+segmentColumns+" FROM segments")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list segments", err)
	}
	defer rows.Close()

	segments := make([]segment.Segment, 0)
	for rows.Next() {
		s, err := scanSegment(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan segment row", err)
		}
		segments = append(segments, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate segment rows", err)
	}
	return segments, nil
}

func (r *SegmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*segment.Segment, error) {
	row := r.db.QueryRow(ctx, "SELECT "+segmentColumns+" FROM segments WHERE id = $1", id)
	s, err := scanSegment(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("segment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get segment by id", err)
	}
	return s, nil
}

func (r *SegmentRepository) Create(ctx context.Context, d segment.Draft, now time.Time) (*segment.Segment, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO segments (name, criteria, created_by, attributes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING `+segmentColumns,
		d.Name, attributesOrEmpty(d.Criteria), d.CreatedBy, attributesOrEmpty(d.Attributes), now,
	)
	s, err := scanSegment(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create segment", err)
	}
	return s, nil
}

func (r *SegmentRepository) Update(ctx context.Context, id uuid.UUID, p segment.Patch, now time.Time) (*segment.Segment, error) {
	query, args := buildSegmentUpdate(id, p, now)
	row := r.db.QueryRow(ctx, query, args...)
	updated, err := scanSegment(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("segment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update segment", err)
	}
	return updated, nil
}

func (r *SegmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM segments WHERE id = $1", id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete segment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("segment not found", nil, infra.KindNotFound)
	}
	return nil
}

// Missing returns the subset of ids with no matching segment row.
func (r *SegmentRepository) Missing(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx, "SELECT id FROM segments WHERE id = ANY($1)", ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query segment ids", err)
	}
	defer rows.Close()
	return diffMissing(ids, rows)
}

func buildSegmentUpdate(id uuid.UUID, p segment.Patch, now time.Time) (string, []any) {
	sets := []string{"updated_at = $1"}
	args := []any{now}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if v, ok := p.Name.Get(); ok {
		add("name", v)
	}
	if v, ok := p.Criteria.Get(); ok {
		add("criteria", attributesOrEmpty(v))
	}
	if v, ok := p.Attributes.Get(); ok {
		add("attributes", attributesOrEmpty(v))
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE segments SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), segmentColumns,
	)
	return query, args
}

func scanSegment(row pgx.Row) (*segment.Segment, error) {
	var s segment.Segment
	err := row.Scan(&s.ID, &s.Name, &s.Criteria, &s.CreatedBy, &s.Attributes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
