package queries

import (
	"context"

	"promo-api/internal/domain/product"
	"promo-api/internal/infra"
	"promo-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type ProductReadStore interface {
	List(ctx context.Context) ([]product.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error)
}

type ProductQueries interface {
	List(ctx context.Context) ([]product.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*product.Product, error)
}

type productQueriesImpl struct {
	repo ProductReadStore
}

func NewProductQueries(repo ProductReadStore) ProductQueries {
	return &productQueriesImpl{repo: repo}
}

func (q *productQueriesImpl) List(ctx context.Context) ([]product.Product, error) {
	return q.repo.List(ctx)
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	p, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}
