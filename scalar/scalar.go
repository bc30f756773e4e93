// Package scalar holds the canonical Go representations graphbind binds the
// reserved schema scalars to. Date and DateTime map here; Uuid maps to
// github.com/google/uuid and Url to net/url.
package scalar

import (
	"fmt"
	"time"
)

// Date is a calendar date with no time-of-day and no time zone, the binding
// of the reserved `Date` scalar.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates t to its calendar date in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses an ISO 8601 date such as "2006-01-02".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// In returns the time.Time at midnight of d in the given location.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// NaiveDateTime is a wall-clock date and time with no time zone, the binding
// of the reserved `DateTime` scalar when declared with
// `@juniper(with_time_zone: false)`. With a time zone the scalar binds to
// time.Time directly.
type NaiveDateTime struct {
	t time.Time
}

// NaiveDateTimeOf strips t of its location, keeping the wall-clock reading.
func NaiveDateTimeOf(t time.Time) NaiveDateTime {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return NaiveDateTime{t: time.Date(y, m, d, hh, mm, ss, t.Nanosecond(), time.UTC)}
}

// ParseNaiveDateTime parses an ISO 8601 datetime such as "2006-01-02T15:04:05".
func ParseNaiveDateTime(s string) (NaiveDateTime, error) {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		return NaiveDateTime{}, err
	}
	return NaiveDateTime{t: t}, nil
}

func (n NaiveDateTime) String() string {
	return n.t.Format("2006-01-02T15:04:05")
}

// Time returns the wall-clock reading pinned to UTC.
func (n NaiveDateTime) Time() time.Time { return n.t }
