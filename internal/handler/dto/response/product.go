package response

import (
	"time"

	"promo-api/internal/domain/product"

	"github.com/google/uuid"
)

type ProductResponse struct {
	ID         uuid.UUID      `json:"id"`
	Name       string         `json:"name"`
	Category   string         `json:"category"`
	Price      float64        `json:"price"`
	Attributes map[string]any `json:"attributes"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

func FromProduct(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Category:   p.Category,
		Price:      p.Price,
		Attributes: p.Attributes,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func FromProducts(products []product.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *FromProduct(&products[i]))
	}
	return out
}
