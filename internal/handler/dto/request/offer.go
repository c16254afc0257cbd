package request

import (
	"promo-api/internal/domain/offer"
	"promo-api/internal/pkg/patch"

	"github.com/google/uuid"
)

type CreateOfferRequest struct {
	Name           string      `json:"name"`
	Type           string      `json:"type"`
	StartDate      DateTime    `json:"startDate"`
	EndDate        DateTime    `json:"endDate"`
	TargetAudience string      `json:"targetAudience"`
	Segments       []uuid.UUID `json:"segments"`
	Products       []uuid.UUID `json:"products"`
	Status         string      `json:"status"`
}

func (r CreateOfferRequest) ToDraft(createdBy string) offer.Draft {
	return offer.Draft{
		Name:           r.Name,
		Type:           r.Type,
		StartDate:      r.StartDate.Time,
		EndDate:        r.EndDate.Time,
		TargetAudience: offer.Audience(r.TargetAudience),
		Segments:       r.Segments,
		Products:       r.Products,
		Status:         offer.Status(r.Status),
		CreatedBy:      createdBy,
	}
}

type UpdateOfferRequest struct {
	Name           *string      `json:"name"`
	Type           *string      `json:"type"`
	StartDate      *DateTime    `json:"startDate"`
	EndDate        *DateTime    `json:"endDate"`
	TargetAudience *string      `json:"targetAudience"`
	Segments       *[]uuid.UUID `json:"segments"`
	Products       *[]uuid.UUID `json:"products"`
	Status         *string      `json:"status"`
}

func (r UpdateOfferRequest) ToPatch() offer.Patch {
	p := offer.Patch{
		Name:      patch.FromPtr(r.Name),
		Type:      patch.FromPtr(r.Type),
		StartDate: timeField(r.StartDate),
		EndDate:   timeField(r.EndDate),
		Segments:  patch.FromPtr(r.Segments),
		Products:  patch.FromPtr(r.Products),
	}
	if r.TargetAudience != nil {
		p.TargetAudience = patch.Set(offer.Audience(*r.TargetAudience))
	}
	if r.Status != nil {
		p.Status = patch.Set(offer.Status(*r.Status))
	}
	return p
}

// CheckConflictsRequest is the candidate offer shape posted to the conflict
// check. ID, when present, names the offer being edited so it is skipped.
// Clients post whole offer objects here, so the fields the check does not
// evaluate (name, type, status) are bound and ignored rather than rejected
// by the strict JSON decoder.
type CheckConflictsRequest struct {
	ID             *uuid.UUID  `json:"id"`
	Name           string      `json:"name"`
	Type           string      `json:"type"`
	StartDate      *DateTime   `json:"startDate"`
	EndDate        *DateTime   `json:"endDate"`
	TargetAudience string      `json:"targetAudience"`
	Segments       []uuid.UUID `json:"segments"`
	Products       []uuid.UUID `json:"products"`
	Status         string      `json:"status"`
}

func (r CheckConflictsRequest) ToCandidate() offer.Candidate {
	c := offer.Candidate{
		ExcludeID:      r.ID,
		TargetAudience: offer.Audience(r.TargetAudience),
		Segments:       r.Segments,
		Products:       r.Products,
	}
	if r.StartDate != nil {
		c.StartDate = r.StartDate.Time
	}
	if r.EndDate != nil {
		c.EndDate = r.EndDate.Time
	}
	return c
}
