//go:build unit

package offer_test

import (
	"testing"
	"time"

	"promo-api/internal/domain/offer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDatesOverlap(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{
			name: "disjoint ranges never overlap",
			s1:   day(2024, 6, 1), e1: day(2024, 6, 10),
			s2: day(2024, 6, 11), e2: day(2024, 6, 20),
			want: false,
		},
		{
			name: "touching endpoints count as overlap",
			s1:   day(2024, 6, 1), e1: day(2024, 6, 10),
			s2: day(2024, 6, 10), e2: day(2024, 6, 20),
			want: true,
		},
		{
			name: "contained range overlaps",
			s1:   day(2024, 6, 1), e1: day(2024, 6, 30),
			s2: day(2024, 6, 10), e2: day(2024, 6, 15),
			want: true,
		},
		{
			name: "partial overlap",
			s1:   day(2024, 6, 5), e1: day(2024, 6, 15),
			s2: day(2024, 6, 10), e2: day(2024, 6, 20),
			want: true,
		},
		{
			name: "identical ranges overlap",
			s1:   day(2024, 6, 1), e1: day(2024, 6, 10),
			s2: day(2024, 6, 1), e2: day(2024, 6, 10),
			want: true,
		},
		{
			name: "candidate entirely before",
			s1:   day(2024, 5, 1), e1: day(2024, 5, 31),
			s2: day(2024, 6, 1), e2: day(2024, 6, 30),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := offer.DatesOverlap(tt.s1, tt.e1, tt.s2, tt.e2)
			assert.Equal(t, tt.want, got)
			// Overlap is symmetric.
			assert.Equal(t, tt.want, offer.DatesOverlap(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}

func TestCandidateValid(t *testing.T) {
	productID := uuid.New()

	valid := offer.Candidate{
		StartDate: day(2024, 6, 1),
		EndDate:   day(2024, 6, 30),
		Products:  []uuid.UUID{productID},
	}
	assert.True(t, valid.Valid())

	noStart := valid
	noStart.StartDate = time.Time{}
	assert.False(t, noStart.Valid())

	noEnd := valid
	noEnd.EndDate = time.Time{}
	assert.False(t, noEnd.Valid())

	noProducts := valid
	noProducts.Products = nil
	assert.False(t, noProducts.Valid())

	// An inverted range is still accepted; only presence is validated.
	inverted := valid
	inverted.StartDate, inverted.EndDate = inverted.EndDate, inverted.StartDate
	assert.True(t, inverted.Valid())
}

func TestConflictsWith(t *testing.T) {
	burger := uuid.New()
	fries := uuid.New()
	drink := uuid.New()
	students := uuid.New()
	families := uuid.New()

	stored := offer.Offer{
		ID:             uuid.New(),
		Name:           "June Burger Deal",
		StartDate:      day(2024, 6, 1),
		EndDate:        day(2024, 6, 30),
		TargetAudience: "All",
		Products:       []uuid.UUID{burger, fries},
	}

	t.Run("product overlap within date range conflicts", func(t *testing.T) {
		c := offer.Candidate{
			StartDate: day(2024, 6, 15),
			EndDate:   day(2024, 7, 15),
			Products:  []uuid.UUID{burger},
		}
		assert.True(t, c.ConflictsWith(stored))
	})

	t.Run("disjoint products never conflict", func(t *testing.T) {
		c := offer.Candidate{
			StartDate: day(2024, 6, 15),
			EndDate:   day(2024, 7, 15),
			Products:  []uuid.UUID{drink},
		}
		assert.False(t, c.ConflictsWith(stored))
	})

	t.Run("disjoint dates never conflict even with shared products", func(t *testing.T) {
		c := offer.Candidate{
			StartDate: day(2024, 7, 1),
			EndDate:   day(2024, 7, 31),
			Products:  []uuid.UUID{burger, fries},
		}
		assert.False(t, c.ConflictsWith(stored))
	})

	t.Run("product overlap applies regardless of audience", func(t *testing.T) {
		c := offer.Candidate{
			StartDate:      day(2024, 6, 15),
			EndDate:        day(2024, 7, 15),
			TargetAudience: offer.AudiencePersonalized,
			Products:       []uuid.UUID{fries},
		}
		assert.True(t, c.ConflictsWith(stored))
	})

	t.Run("segment overlap conflicts only when both personalized", func(t *testing.T) {
		personalized := stored
		personalized.TargetAudience = offer.AudiencePersonalized
		personalized.Segments = []uuid.UUID{students}

		c := offer.Candidate{
			StartDate:      day(2024, 6, 15),
			EndDate:        day(2024, 7, 15),
			TargetAudience: offer.AudiencePersonalized,
			Products:       []uuid.UUID{drink},
			Segments:       []uuid.UUID{students},
		}
		assert.True(t, c.ConflictsWith(personalized))

		// Same segments, stored offer not personalized: no conflict.
		assert.False(t, c.ConflictsWith(stored))

		// Candidate not personalized: segment intersection ignored.
		c.TargetAudience = "All"
		assert.False(t, c.ConflictsWith(personalized))
	})

	t.Run("disjoint segments between personalized offers do not conflict", func(t *testing.T) {
		personalized := stored
		personalized.TargetAudience = offer.AudiencePersonalized
		personalized.Segments = []uuid.UUID{students}

		c := offer.Candidate{
			StartDate:      day(2024, 6, 15),
			EndDate:        day(2024, 7, 15),
			TargetAudience: offer.AudiencePersonalized,
			Products:       []uuid.UUID{drink},
			Segments:       []uuid.UUID{families},
		}
		assert.False(t, c.ConflictsWith(personalized))
	})

	t.Run("empty segments on either side never trigger segment conflict", func(t *testing.T) {
		personalized := stored
		personalized.TargetAudience = offer.AudiencePersonalized
		personalized.Segments = nil

		c := offer.Candidate{
			StartDate:      day(2024, 6, 15),
			EndDate:        day(2024, 7, 15),
			TargetAudience: offer.AudiencePersonalized,
			Products:       []uuid.UUID{drink},
			Segments:       []uuid.UUID{students},
		}
		assert.False(t, c.ConflictsWith(personalized))
	})

	t.Run("candidate excludes the offer it is editing", func(t *testing.T) {
		c := offer.Candidate{
			ExcludeID: &stored.ID,
			StartDate: day(2024, 6, 1),
			EndDate:   day(2024, 6, 30),
			Products:  []uuid.UUID{burger},
		}
		assert.False(t, c.ConflictsWith(stored))

		other := uuid.New()
		c.ExcludeID = &other
		assert.True(t, c.ConflictsWith(stored))
	})
}

func TestFindConflicts(t *testing.T) {
	burger := uuid.New()
	drink := uuid.New()

	june := offer.Offer{
		ID:        uuid.New(),
		Name:      "June",
		StartDate: day(2024, 6, 1),
		EndDate:   day(2024, 6, 30),
		Products:  []uuid.UUID{burger},
	}
	july := offer.Offer{
		ID:        uuid.New(),
		Name:      "July",
		StartDate: day(2024, 7, 1),
		EndDate:   day(2024, 7, 31),
		Products:  []uuid.UUID{burger},
	}
	drinks := offer.Offer{
		ID:        uuid.New(),
		Name:      "Drinks",
		StartDate: day(2024, 6, 1),
		EndDate:   day(2024, 6, 30),
		Products:  []uuid.UUID{drink},
	}

	c := offer.Candidate{
		StartDate: day(2024, 6, 15),
		EndDate:   day(2024, 7, 15),
		Products:  []uuid.UUID{burger},
	}

	conflicts := offer.FindConflicts(c, []offer.Offer{june, july, drinks})
	require.Len(t, conflicts, 2)
	ids := []uuid.UUID{conflicts[0].ID, conflicts[1].ID}
	assert.ElementsMatch(t, []uuid.UUID{june.ID, july.ID}, ids)

	// No stored offers: empty, non-nil result.
	assert.NotNil(t, offer.FindConflicts(c, nil))
	assert.Empty(t, offer.FindConflicts(c, nil))
}
