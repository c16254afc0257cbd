package offer

import (
	"time"

	"github.com/google/uuid"
)

// Candidate is an offer shape being checked for conflicts before a create or
// update. ExcludeID carries the id of the offer being edited so it never
// conflicts with itself.
type Candidate struct {
	ExcludeID      *uuid.UUID
	StartDate      time.Time
	EndDate        time.Time
	TargetAudience Audience
	Products       []uuid.UUID
	Segments       []uuid.UUID
}

// Valid reports whether the candidate carries everything a conflict check
// needs: both dates and a non-empty products set.
func (c Candidate) Valid() bool {
	return !c.StartDate.IsZero() && !c.EndDate.IsZero() && len(c.Products) > 0
}

// DatesOverlap reports whether the closed intervals [s1,e1] and [s2,e2]
// overlap. Touching endpoints count as overlap.
func DatesOverlap(s1, e1, s2, e2 time.Time) bool {
	return !(e2.Before(s1) || s2.After(e1))
}

// ConflictsWith reports whether the candidate conflicts with a stored offer:
// the date ranges overlap and the offers compete for the same products, or
// (when both sides are personalized) the same segments.
func (c Candidate) ConflictsWith(o Offer) bool {
	if c.ExcludeID != nil && o.ID == *c.ExcludeID {
		return false
	}
	if !DatesOverlap(c.StartDate, c.EndDate, o.StartDate, o.EndDate) {
		return false
	}

	if intersects(c.Products, o.Products) {
		return true
	}

	// Segment targeting only competes between two personalized offers.
	if c.TargetAudience == AudiencePersonalized && o.TargetAudience == AudiencePersonalized {
		if len(c.Segments) > 0 && len(o.Segments) > 0 && intersects(c.Segments, o.Segments) {
			return true
		}
	}
	return false
}

// FindConflicts scans stored offers and returns every one the candidate
// conflicts with, in scan order. The caller must treat the result as an
// unordered set.
func FindConflicts(c Candidate, stored []Offer) []Offer {
	conflicts := make([]Offer, 0)
	for _, o := range stored {
		if c.ConflictsWith(o) {
			conflicts = append(conflicts, o)
		}
	}
	return conflicts
}

func intersects(a, b []uuid.UUID) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[uuid.UUID]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}
