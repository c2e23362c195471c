package models

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	DATE_LAYOUT                  = "2006-01-02"
	ISO_INSTANT_LAYOUT           = "2006-01-02T15:04:05.000Z"
	RESERVATION_TIMESTAMP_LAYOUT = "2006-01-02 15:04:05.000"
	DISPLAY_DATE_LAYOUT          = "02/01/2006"
)

// Date is a calendar date without time of day, anchored at UTC midnight.
// The zero value means "not set".
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD value. An empty string yields the zero Date.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(DATE_LAYOUT, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// ISOInstant renders the date as the instant of its UTC midnight,
// e.g. 2024-06-01T00:00:00.000Z.
func (d Date) ISOInstant() string {
	return d.t.Format(ISO_INSTANT_LAYOUT)
}

// ReservationTimestamp renders the date as 2024-06-01 00:00:00.000.
func (d Date) ReservationTimestamp() string {
	return d.t.Format(RESERVATION_TIMESTAMP_LAYOUT)
}

func (d Date) Display() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DISPLAY_DATE_LAYOUT)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DATE_LAYOUT)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
