package analytics

import (
	"time"

	"promo-api/internal/pkg/patch"

	"github.com/google/uuid"
)

// Analytics aggregates engagement counters for one offer. At most one
// document per offer is expected, but consumers tolerate multiples.
type Analytics struct {
	ID          uuid.UUID
	OfferID     uuid.UUID
	Views       int64
	Activations int64
	Conversions int64
	Revenue     float64
	TimeFrames  []TimeFrame
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TimeFrame is a dated metrics snapshot. TimeFrames are append-only;
// insertion order is the append order.
type TimeFrame struct {
	Date        time.Time `json:"date"`
	Views       int64     `json:"views"`
	Activations int64     `json:"activations"`
	Conversions int64     `json:"conversions"`
	Revenue     float64   `json:"revenue"`
}

// Empty returns a zeroed analytics view for an offer without a stored
// document.
func Empty(offerID uuid.UUID) Analytics {
	return Analytics{
		OfferID:    offerID,
		TimeFrames: []TimeFrame{},
	}
}

type Patch struct {
	Views       patch.Field[int64]
	Activations patch.Field[int64]
	Conversions patch.Field[int64]
	Revenue     patch.Field[float64]
}

// FilterTimeFrames returns only the snapshots dated within [from, to],
// preserving order. Zero bounds disable filtering.
func (a Analytics) FilterTimeFrames(from, to time.Time) []TimeFrame {
	if from.IsZero() || to.IsZero() {
		return a.TimeFrames
	}
	filtered := make([]TimeFrame, 0, len(a.TimeFrames))
	for _, tf := range a.TimeFrames {
		if !tf.Date.Before(from) && !tf.Date.After(to) {
			filtered = append(filtered, tf)
		}
	}
	return filtered
}
