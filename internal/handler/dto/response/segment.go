package response

import (
	"time"

	"promo-api/internal/domain/segment"

	"github.com/google/uuid"
)

type SegmentResponse struct {
	ID         uuid.UUID      `json:"id"`
	Name       string         `json:"name"`
	Criteria   map[string]any `json:"criteria"`
	CreatedBy  string         `json:"createdBy"`
	Attributes map[string]any `json:"attributes,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

func FromSegment(s *segment.Segment) *SegmentResponse {
	return &SegmentResponse{
		ID:         s.ID,
		Name:       s.Name,
		Criteria:   s.Criteria,
		CreatedBy:  s.CreatedBy,
		Attributes: s.Attributes,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func FromSegments(segments []segment.Segment) []SegmentResponse {
	out := make([]SegmentResponse, 0, len(segments))
	for i := range segments {
		out = append(out, *FromSegment(&segments[i]))
	}
	return out
}
