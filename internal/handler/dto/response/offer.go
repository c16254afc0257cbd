package response

import (
	"time"

	"promo-api/internal/domain/offer"

	"github.com/google/uuid"
)

type OfferResponse struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	Type           string      `json:"type"`
	StartDate      time.Time   `json:"startDate"`
	EndDate        time.Time   `json:"endDate"`
	TargetAudience string      `json:"targetAudience"`
	Segments       []uuid.UUID `json:"segments"`
	Products       []uuid.UUID `json:"products"`
	Status         string      `json:"status"`
	CreatedBy      string      `json:"createdBy"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

func FromOffer(o *offer.Offer) *OfferResponse {
	return &OfferResponse{
		ID:             o.ID,
		Name:           o.Name,
		Type:           o.Type,
		StartDate:      o.StartDate,
		EndDate:        o.EndDate,
		TargetAudience: string(o.TargetAudience),
		Segments:       emptyIfNil(o.Segments),
		Products:       emptyIfNil(o.Products),
		Status:         string(o.Status),
		CreatedBy:      o.CreatedBy,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func FromOffers(offers []offer.Offer) []OfferResponse {
	out := make([]OfferResponse, 0, len(offers))
	for i := range offers {
		out = append(out, *FromOffer(&offers[i]))
	}
	return out
}

func emptyIfNil(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
