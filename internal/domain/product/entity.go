package product

import (
	"time"

	"promo-api/internal/pkg/patch"

	"github.com/google/uuid"
)

// Product is a menu item offers can reference. Attributes carries free-form
// vendor fields (sizes, allergens, image URLs, ...) that the backend stores
// without interpreting.
type Product struct {
	ID         uuid.UUID
	Name       string
	Category   string
	Price      float64
	Attributes map[string]any
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Draft struct {
	Name       string
	Category   string
	Price      float64
	Attributes map[string]any
}

type Patch struct {
	Name       patch.Field[string]
	Category   patch.Field[string]
	Price      patch.Field[float64]
	Attributes patch.Field[map[string]any]
}

func (p Patch) IsEmpty() bool {
	return !p.Name.IsSet() && !p.Category.IsSet() && !p.Price.IsSet() && !p.Attributes.IsSet()
}
