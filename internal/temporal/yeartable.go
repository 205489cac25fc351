// Package temporal implements the time lookups used by source adapters:
// step-function year tables and date-interval selection.
package temporal

import "sort"

// YearTable is a sparse year-indexed table. Lookups are a monotonic step function:
// a year resolves to the latest known year at or before it, and nothing is interpolated.
type YearTable[T any] struct {
	years  []int
	values []T
}

// NewYearTable builds a table from a year->value map
func NewYearTable[T any](entries map[int]T) YearTable[T] {
	years := make([]int, 0, len(entries))
	for y := range entries {
		years = append(years, y)
	}
	sort.Ints(years)

	values := make([]T, len(years))
	for i, y := range years {
		values[i] = entries[y]
	}
	return YearTable[T]{years: years, values: values}
}

// Len returns the number of known years
func (t YearTable[T]) Len() int { return len(t.years) }

// FirstYear returns the earliest known year, or 0 for an empty table
func (t YearTable[T]) FirstYear() int {
	if len(t.years) == 0 {
		return 0
	}
	return t.years[0]
}

// LastYear returns the latest known year, or 0 for an empty table
func (t YearTable[T]) LastYear() int {
	if len(t.years) == 0 {
		return 0
	}
	return t.years[len(t.years)-1]
}

// At backward-fills year. Past the last known year the last value holds.
// Before the first known year it returns the first value when clamp is set
// and reports not-found otherwise. The returned int is the data year used.
func (t YearTable[T]) At(year int, clamp bool) (int, T, bool) {
	var zero T
	if len(t.years) == 0 {
		return 0, zero, false
	}

	// Index of the first year strictly after the requested one
	i := sort.SearchInts(t.years, year+1)
	if i == 0 {
		if !clamp {
			return 0, zero, false
		}
		return t.years[0], t.values[0], true
	}
	return t.years[i-1], t.values[i-1], true
}

// Exact returns the value recorded for exactly year
func (t YearTable[T]) Exact(year int) (T, bool) {
	var zero T
	i := sort.SearchInts(t.years, year)
	if i < len(t.years) && t.years[i] == year {
		return t.values[i], true
	}
	return zero, false
}
