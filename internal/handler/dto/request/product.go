package request

import (
	"promo-api/internal/domain/product"
	"promo-api/internal/pkg/patch"
)

type CreateProductRequest struct {
	Name       string         `json:"name"`
	Category   string         `json:"category"`
	Price      float64        `json:"price"`
	Attributes map[string]any `json:"attributes"`
}

func (r CreateProductRequest) ToDraft() product.Draft {
	return product.Draft{
		Name:       r.Name,
		Category:   r.Category,
		Price:      r.Price,
		Attributes: r.Attributes,
	}
}

type UpdateProductRequest struct {
	Name       *string         `json:"name"`
	Category   *string         `json:"category"`
	Price      *float64        `json:"price"`
	Attributes *map[string]any `json:"attributes"`
}

func (r UpdateProductRequest) ToPatch() product.Patch {
	return product.Patch{
		Name:       patch.FromPtr(r.Name),
		Category:   patch.FromPtr(r.Category),
		Price:      patch.FromPtr(r.Price),
		Attributes: patch.FromPtr(r.Attributes),
	}
}
