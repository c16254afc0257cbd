package request

import (
	"promo-api/internal/domain/segment"
	"promo-api/internal/pkg/patch"
)

type CreateSegmentRequest struct {
	Name       string         `json:"name"`
	Criteria   map[string]any `json:"criteria"`
	Attributes map[string]any `json:"attributes"`
}

func (r CreateSegmentRequest) ToDraft(createdBy string) segment.Draft {
	return segment.Draft{
		Name:       r.Name,
		Criteria:   r.Criteria,
		CreatedBy:  createdBy,
		Attributes: r.Attributes,
	}
}

type UpdateSegmentRequest struct {
	Name       *string         `json:"name"`
	Criteria   *map[string]any `json:"criteria"`
	Attributes *map[string]any `json:"attributes"`
}

func (r UpdateSegmentRequest) ToPatch() segment.Patch {
	return segment.Patch{
		Name:       patch.FromPtr(r.Name),
		Criteria:   patch.FromPtr(r.Criteria),
		Attributes: patch.FromPtr(r.Attributes),
	}
}
