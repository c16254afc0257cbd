package offer

import (
	"time"

	"promo-api/internal/pkg/patch"

	"github.com/google/uuid"
)

type Status string

const (
	StatusInactive Status = "Inactive"
	StatusActive   Status = "Active"
)

type Audience string

// AudiencePersonalized is the only audience value with semantics attached:
// segment targeting applies to personalized offers exclusively. Other values
// ("All", "Loyalty", ...) are stored as-is.
const AudiencePersonalized Audience = "Personalized"

// Offer is a time-bounded promotional campaign tied to products and, for
// personalized offers, audience segments. Product and segment references are
// validated when the offer is written, never re-validated afterwards.
type Offer struct {
	ID             uuid.UUID
	Name           string
	Type           string
	StartDate      time.Time
	EndDate        time.Time
	TargetAudience Audience
	Segments       []uuid.UUID
	Products       []uuid.UUID
	Status         Status
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Draft holds the caller-supplied fields of a new offer. The id and the
// created/updated timestamps are always assigned server-side.
type Draft struct {
	Name           string
	Type           string
	StartDate      time.Time
	EndDate        time.Time
	TargetAudience Audience
	Segments       []uuid.UUID
	Products       []uuid.UUID
	Status         Status
	CreatedBy      string
}

// Patch is an explicit field-level update: only set fields change.
type Patch struct {
	Name           patch.Field[string]
	Type           patch.Field[string]
	StartDate      patch.Field[time.Time]
	EndDate        patch.Field[time.Time]
	TargetAudience patch.Field[Audience]
	Segments       patch.Field[[]uuid.UUID]
	Products       patch.Field[[]uuid.UUID]
	Status         patch.Field[Status]
}

func (p Patch) IsEmpty() bool {
	return !p.Name.IsSet() && !p.Type.IsSet() &&
		!p.StartDate.IsSet() && !p.EndDate.IsSet() &&
		!p.TargetAudience.IsSet() && !p.Segments.IsSet() &&
		!p.Products.IsSet() && !p.Status.IsSet()
}
