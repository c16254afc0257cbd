package segment

import (
	"time"

	"promo-api/internal/pkg/patch"

	"github.com/google/uuid"
)

// Segment is a named customer-targeting criterion set referenced by
// personalized offers. Criteria is an opaque structured filter owned by the
// campaign tooling; the backend stores it verbatim.
type Segment struct {
	ID         uuid.UUID
	Name       string
	Criteria   map[string]any
	CreatedBy  string
	Attributes map[string]any
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Draft struct {
	Name       string
	Criteria   map[string]any
	CreatedBy  string
	Attributes map[string]any
}

type Patch struct {
	Name       patch.Field[string]
	Criteria   patch.Field[map[string]any]
	Attributes patch.Field[map[string]any]
}

func (p Patch) IsEmpty() bool {
	return !p.Name.IsSet() && !p.Criteria.IsSet() && !p.Attributes.IsSet()
}
