package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TemporalPoint identifies when a fact is requested. Month and Day are zero when unset.
type TemporalPoint struct {
	Year  int `json:"year"`
	Month int `json:"month,omitempty"`
	Day   int `json:"day,omitempty"`
}

// Year returns a year-granular point
func Year(year int) TemporalPoint {
	return TemporalPoint{Year: year}
}

// Date returns a day-granular point
func Date(year, month, day int) TemporalPoint {
	return TemporalPoint{Year: year, Month: month, Day: day}
}

// ParseTemporalPoint parses "2015", "2015-06" or "2015-06-01"
func ParseTemporalPoint(s string) (TemporalPoint, error) {
	s = strings.TrimSpace(s)
	fields := strings.Split(s, "-")
	if s == "" || len(fields) > 3 {
		return TemporalPoint{}, fmt.Errorf("%w: malformed date %q", ErrInvalidInput, s)
	}

	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return TemporalPoint{}, fmt.Errorf("%w: malformed date %q", ErrInvalidInput, s)
		}
		nums[i] = n
	}

	p := TemporalPoint{Year: nums[0]}
	if len(nums) > 1 {
		p.Month = nums[1]
	}
	if len(nums) > 2 {
		p.Day = nums[2]
	}
	if err := p.Validate(); err != nil {
		return TemporalPoint{}, err
	}
	return p, nil
}

// Validate checks ranges, including day-of-month against the calendar
func (p TemporalPoint) Validate() error {
	if p.Year < 1 || p.Year > 9999 {
		return fmt.Errorf("%w: year %d out of range", ErrInvalidInput, p.Year)
	}
	if p.Month == 0 && p.Day != 0 {
		return fmt.Errorf("%w: day without month", ErrInvalidInput)
	}
	if p.Month < 0 || p.Month > 12 {
		return fmt.Errorf("%w: month %d out of range", ErrInvalidInput, p.Month)
	}
	if p.Day != 0 {
		t := time.Date(p.Year, time.Month(p.Month), p.Day, 0, 0, 0, 0, time.UTC)
		if p.Day < 0 || t.Day() != p.Day {
			return fmt.Errorf("%w: %04d-%02d has no day %d", ErrInvalidInput, p.Year, p.Month, p.Day)
		}
	}
	return nil
}

// HasDate reports whether the point names a single day
func (p TemporalPoint) HasDate() bool {
	return p.Month != 0 && p.Day != 0
}

// Time returns midnight UTC of the point; unset month/day default to January 1st
func (p TemporalPoint) Time() time.Time {
	month, day := p.Month, p.Day
	if month == 0 {
		month = 1
	}
	if day == 0 {
		day = 1
	}
	return time.Date(p.Year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func (p TemporalPoint) String() string {
	switch {
	case p.HasDate():
		return fmt.Sprintf("%04d-%02d-%02d", p.Year, p.Month, p.Day)
	case p.Month != 0:
		return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
	default:
		return fmt.Sprintf("%04d", p.Year)
	}
}
