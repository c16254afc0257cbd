package response

import (
	"time"

	"promo-api/internal/domain/analytics"

	"github.com/google/uuid"
)

type AnalyticsResponse struct {
	ID          uuid.UUID           `json:"id,omitempty"`
	OfferID     uuid.UUID           `json:"offerId"`
	Views       int64               `json:"views"`
	Activations int64               `json:"activations"`
	Conversions int64               `json:"conversions"`
	Revenue     float64             `json:"revenue"`
	TimeFrames  []TimeFrameResponse `json:"timeFrames"`
	CreatedAt   *time.Time          `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time          `json:"updatedAt,omitempty"`
}

type TimeFrameResponse struct {
	Date        time.Time `json:"date"`
	Views       int64     `json:"views"`
	Activations int64     `json:"activations"`
	Conversions int64     `json:"conversions"`
	Revenue     float64   `json:"revenue"`
}

func FromAnalytics(a *analytics.Analytics) *AnalyticsResponse {
	resp := &AnalyticsResponse{
		ID:          a.ID,
		OfferID:     a.OfferID,
		Views:       a.Views,
		Activations: a.Activations,
		Conversions: a.Conversions,
		Revenue:     a.Revenue,
		TimeFrames:  fromTimeFrames(a.TimeFrames),
	}
	if !a.CreatedAt.IsZero() {
		resp.CreatedAt = &a.CreatedAt
	}
	if !a.UpdatedAt.IsZero() {
		resp.UpdatedAt = &a.UpdatedAt
	}
	return resp
}

func FromAnalyticsList(docs []analytics.Analytics) []AnalyticsResponse {
	out := make([]AnalyticsResponse, 0, len(docs))
	for i := range docs {
		out = append(out, *FromAnalytics(&docs[i]))
	}
	return out
}

func fromTimeFrames(frames []analytics.TimeFrame) []TimeFrameResponse {
	out := make([]TimeFrameResponse, 0, len(frames))
	for _, tf := range frames {
		out = append(out, TimeFrameResponse{
			Date:        tf.Date,
			Views:       tf.Views,
			Activations: tf.Activations,
			Conversions: tf.Conversions,
			Revenue:     tf.Revenue,
		})
	}
	return out
}
