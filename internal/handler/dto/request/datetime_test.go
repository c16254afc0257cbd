//go:build unit

package request

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTimeUnmarshalJSON(t *testing.T) {
	t.Run("bare date parses as midnight UTC", func(t *testing.T) {
		var d DateTime
		require.NoError(t, json.Unmarshal([]byte(`"2024-01-01"`), &d))
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), d.Time)
	})

	t.Run("rfc3339 timestamp parses losslessly", func(t *testing.T) {
		var d DateTime
		require.NoError(t, json.Unmarshal([]byte(`"2024-01-01T15:04:05Z"`), &d))
		assert.Equal(t, time.Date(2024, 1, 1, 15, 4, 5, 0, time.UTC), d.Time)
	})

	t.Run("rfc3339 with offset keeps the instant", func(t *testing.T) {
		var d DateTime
		require.NoError(t, json.Unmarshal([]byte(`"2024-01-01T09:00:00+09:00"`), &d))
		assert.True(t, d.Time.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("empty and null leave the zero value", func(t *testing.T) {
		var d DateTime
		require.NoError(t, json.Unmarshal([]byte(`""`), &d))
		assert.True(t, d.Time.IsZero())

		require.NoError(t, json.Unmarshal([]byte(`null`), &d))
		assert.True(t, d.Time.IsZero())
	})

	t.Run("unparseable input is rejected", func(t *testing.T) {
		var d DateTime
		err := json.Unmarshal([]byte(`"June 1st 2024"`), &d)
		assert.ErrorIs(t, err, errBadDateTime)
	})
}

// A bare calendar date must survive the decode/encode round trip unchanged.
func TestDateTimeDateRoundTrip(t *testing.T) {
	var d DateTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-01"`), &d))

	out, err := json.Marshal(d.Time)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-01T00:00:00Z"`, string(out))
}
