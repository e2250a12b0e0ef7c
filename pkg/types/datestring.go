package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DateFormat canonical calendar-date layout used across the service
const DateFormat = "2006-01-02"

// DateString represents a calendar date in "YYYY-MM-DD" format.
// The service compares stays by calendar date, never by timestamp, so the
// string form is the comparison key everywhere. Date arithmetic anchors to
// UTC midnight so every day is exactly 24 hours; local-zone anchoring would
// miscount nights across DST transitions.
type DateString string

// NewDateString creates a DateString from a time.Time, dropping the time part
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateFormat))
}

// ParseDateString validates and converts a "YYYY-MM-DD" string
func ParseDateString(s string) (DateString, error) {
	if _, err := time.Parse(DateFormat, s); err != nil {
		return "", fmt.Errorf("invalid date string %q: %w", s, err)
	}
	return DateString(s), nil
}

// String returns the canonical "YYYY-MM-DD" representation
func (d DateString) String() string {
	return string(d)
}

// IsZero returns true if the date is empty
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate checks that the value is a well-formed calendar date
func (d DateString) Validate() error {
	_, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return fmt.Errorf("invalid date string %q: %w", string(d), err)
	}
	return nil
}

// Time returns the date anchored to UTC midnight
func (d DateString) Time() time.Time {
	t, _ := time.Parse(DateFormat, string(d))
	return t
}

// AddDays returns the date shifted by n calendar days
func (d DateString) AddDays(n int) DateString {
	return NewDateString(d.Time().AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than other.
// The canonical format makes lexicographic comparison correct.
func (d DateString) Before(other DateString) bool {
	return string(d) < string(other)
}

// After reports whether d is strictly later than other
func (d DateString) After(other DateString) bool {
	return string(d) > string(other)
}

// NightsUntil returns the number of nights between d and checkOut. checkOut
// on the next calendar day yields exactly 1 night; checkOut at or before d
// yields 0. The UTC anchoring makes the division exact.
func (d DateString) NightsUntil(checkOut DateString) int {
	diff := checkOut.Time().Sub(d.Time())
	if diff <= 0 {
		return 0
	}
	return int(diff / (24 * time.Hour))
}

// NightsOf returns every night of a stay starting at d: d itself plus the
// following nights-1 dates. The check-out date is never included.
func (d DateString) NightsOf(nights int) []DateString {
	if nights <= 0 {
		return []DateString{}
	}
	out := make([]DateString, 0, nights)
	for i := 0; i < nights; i++ {
		out = append(out, d.AddDays(i))
	}
	return out
}

// Value implements driver.Valuer so DateString maps to a DATE column
func (d DateString) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return string(d), nil
}

// Scan implements sql.Scanner. lib/pq returns DATE columns as time.Time.
func (d *DateString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
		return nil
	case time.Time:
		*d = NewDateString(v)
		return nil
	case string:
		parsed, err := ParseDateString(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDateString(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateString", src)
	}
}
