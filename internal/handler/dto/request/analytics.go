package request

import (
	"promo-api/internal/domain/analytics"
	"promo-api/internal/pkg/patch"
)

// UpsertAnalyticsRequest carries counter updates and an optional dated
// snapshot to append. Absent counters are left untouched on an existing
// document and default to zero on a new one.
type UpsertAnalyticsRequest struct {
	Views       *int64            `json:"views"`
	Activations *int64            `json:"activations"`
	Conversions *int64            `json:"conversions"`
	Revenue     *float64          `json:"revenue"`
	TimeFrame   *TimeFrameRequest `json:"timeFrame"`
}

type TimeFrameRequest struct {
	Date        DateTime `json:"date"`
	Views       int64    `json:"views"`
	Activations int64    `json:"activations"`
	Conversions int64    `json:"conversions"`
	Revenue     float64  `json:"revenue"`
}

func (r UpsertAnalyticsRequest) ToPatch() analytics.Patch {
	return analytics.Patch{
		Views:       patch.FromPtr(r.Views),
		Activations: patch.FromPtr(r.Activations),
		Conversions: patch.FromPtr(r.Conversions),
		Revenue:     patch.FromPtr(r.Revenue),
	}
}

func (r UpsertAnalyticsRequest) ToTimeFrame() *analytics.TimeFrame {
	if r.TimeFrame == nil {
		return nil
	}
	return &analytics.TimeFrame{
		Date:        r.TimeFrame.Date.Time,
		Views:       r.TimeFrame.Views,
		Activations: r.TimeFrame.Activations,
		Conversions: r.TimeFrame.Conversions,
		Revenue:     r.TimeFrame.Revenue,
	}
}
