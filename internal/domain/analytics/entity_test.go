//go:build unit

package analytics_test

import (
	"testing"
	"time"

	"promo-api/internal/domain/analytics"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func june(day int) time.Time {
	return time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC)
}

func TestFilterTimeFrames(t *testing.T) {
	doc := analytics.Analytics{
		OfferID: uuid.New(),
		TimeFrames: []analytics.TimeFrame{
			{Date: june(1), Views: 10},
			{Date: june(10), Views: 50},
			{Date: june(20), Views: 90},
		},
	}

	t.Run("keeps frames inside the closed range", func(t *testing.T) {
		got := doc.FilterTimeFrames(june(10), june(20))
		want := []analytics.TimeFrame{
			{Date: june(10), Views: 50},
			{Date: june(20), Views: 90},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("filtered frames mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("zero from bound disables filtering", func(t *testing.T) {
		got := doc.FilterTimeFrames(time.Time{}, june(10))
		if diff := cmp.Diff(doc.TimeFrames, got); diff != "" {
			t.Errorf("frames mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("zero to bound disables filtering", func(t *testing.T) {
		got := doc.FilterTimeFrames(june(1), time.Time{})
		assert.Len(t, got, 3)
	})

	t.Run("range outside all frames yields empty, not nil", func(t *testing.T) {
		got := doc.FilterTimeFrames(june(25), june(30))
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestEmpty(t *testing.T) {
	offerID := uuid.New()
	doc := analytics.Empty(offerID)

	assert.Equal(t, offerID, doc.OfferID)
	assert.Zero(t, doc.Views)
	assert.Zero(t, doc.Revenue)
	assert.NotNil(t, doc.TimeFrames)
	assert.Empty(t, doc.TimeFrames)
}
