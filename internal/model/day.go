package model

import (
	"errors"
	"time"
)

const DayLayout = "2006-01-02"

var ErrInvalidDay = errors.New("day must be a calendar date in YYYY-MM-DD format")

// Day is a calendar date without a time component, kept in canonical YYYY-MM-DD form.
type Day string

func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return "", ErrInvalidDay
	}
	return Day(t.Format(DayLayout)), nil
}

// Time returns midnight UTC of the day. The zero Day yields the zero time.
func (d Day) Time() time.Time {
	t, err := time.Parse(DayLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

func (d Day) String() string {
	return string(d)
}
