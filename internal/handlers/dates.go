package handlers

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/BradenHooton/gardenbook/internal/listing"
)

var errInvalidDate = errors.New("date must be YYYY-MM-DD or RFC 3339")

// Date is a request date accepting YYYY-MM-DD or RFC 3339.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errInvalidDate
	}
	t, _, err := listing.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return errInvalidDate
	}
	d.Time = t
	return nil
}

// timePtr returns nil for an absent date.
func timePtr(d *Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// dateOrNow returns d, or the current time when d is absent.
func dateOrNow(d *Date) time.Time {
	if d == nil {
		return time.Now().UTC()
	}
	return d.Time
}
