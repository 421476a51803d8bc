package domain

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a date-only value that round-trips through YAML and JSON as
// "YYYY-MM-DD". Time-of-day is always midnight UTC.
type Date struct {
	time.Time
}

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func parseDate(str string) (time.Time, error) {
	if str == "" || str == "null" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(dateLayout, str); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, str); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", str)
}

// UnmarshalYAML implements yaml.Unmarshaler for Date.
func (d *Date) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var str string
	if err := unmarshal(&str); err != nil {
		return err
	}
	t, err := parseDate(str)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// MarshalYAML implements yaml.Marshaler for Date.
func (d Date) MarshalYAML() (interface{}, error) {
	if d.Time.IsZero() {
		return nil, nil
	}
	return d.Time.Format(dateLayout), nil
}

// UnmarshalJSON implements json.Unmarshaler for Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)
	t, err := parseDate(str)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf(`"%s"`, d.Time.Format(dateLayout))), nil
}

// String returns the date as YYYY-MM-DD, or "" for the zero value.
func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format(dateLayout)
}
