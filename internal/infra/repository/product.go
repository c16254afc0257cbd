package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"promo-api/internal/domain/product"
	"promo-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const productColumns = "id, name, category, price, attributes, created_at, updated_at"

type ProductRepository struct {
	db infra.DBTX
}

func NewProductRepository(db infra.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) List(ctx context.Context) ([]product.Product, error) {
	rows, err := r.db.Query(ctx, "SELECT "+productColumns+" FROM products")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	products := make([]product.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	row := r.db.QueryRow(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", id)
	p, err := scanProduct(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product by id", err)
	}
	return p, nil
}

func (r *ProductRepository) Create(ctx context.Context, d product.Draft, now time.Time) (*product.Product, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO products (name, category, price, attributes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING `+productColumns,
		d.Name, d.Category, d.Price, attributesOrEmpty(d.Attributes), now,
	)
	p, err := scanProduct(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create product", err)
	}
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, id uuid.UUID, p product.Patch, now time.Time) (*product.Product, error) {
	query, args := buildProductUpdate(id, p, now)
	row := r.db.QueryRow(ctx, query, args...)
	updated, err := scanProduct(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update product", err)
	}
	return updated, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

// Missing returns the subset of ids with no matching product row, preserving
// input order.
func (r *ProductRepository) Missing(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx, "SELECT id FROM products WHERE id = ANY($1)", ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query product ids", err)
	}
	defer rows.Close()
	return diffMissing(ids, rows)
}

func buildProductUpdate(id uuid.UUID, p product.Patch, now time.Time) (string, []any) {
	sets := []string{"updated_at = $1"}
	args := []any{now}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if v, ok := p.Name.Get(); ok {
		add("name", v)
	}
	if v, ok := p.Category.Get(); ok {
		add("category", v)
	}
	if v, ok := p.Price.Get(); ok {
		add("price", v)
	}
	if v, ok := p.Attributes.Get(); ok {
		add("attributes", attributesOrEmpty(v))
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE products SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), productColumns,
	)
	return query, args
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Attributes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func attributesOrEmpty(attrs map[string]any) map[string]any {
	if attrs == nil {
		return map[string]any{}
	}
	return attrs
}

func diffMissing(wanted []uuid.UUID, rows pgx.Rows) ([]uuid.UUID, error) {
	found := make(map[uuid.UUID]struct{}, len(wanted))
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan id row", err)
		}
		found[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate id rows", err)
	}

	var missing []uuid.UUID
	for _, id := range wanted {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
