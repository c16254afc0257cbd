package request

import (
	"strings"
	"time"

	"promo-api/internal/pkg/errs"
	"promo-api/internal/pkg/patch"
)

// DateTime accepts either an RFC 3339 timestamp or a bare calendar date
// ("2006-01-02") on input. Bare dates parse as midnight UTC.
type DateTime struct {
	time.Time
}

var errBadDateTime = errs.New("invalid date format")

func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		d.Time = t
		return nil
	}
	return errBadDateTime
}

// timeField converts an optional DateTime into a patch field.
func timeField(d *DateTime) patch.Field[time.Time] {
	if d == nil {
		return patch.Field[time.Time]{}
	}
	return patch.Set(d.Time)
}
