package sources

import (
	"context"

	"github.com/ppiankov/capsule/internal/model"
	"github.com/ppiankov/capsule/internal/resolve"
	"github.com/ppiankov/capsule/internal/temporal"
)

// YearOptions configures a compiled-in year table source
type YearOptions struct {
	Name  string
	URL   string // Citation for every key without its own entry in URLs
	URLs  map[string]string
	Scope Scope

	// Clamp answers years before the first entry with the first entry
	Clamp bool
	// ExactOnly answers only years present in the table, without backward-fill
	ExactOnly bool
	// MaxAge bounds how many years past its data year a value may be held
	MaxAge int
	// CityFallback marks answers to city requests from a coarser table as fallback
	CityFallback bool
}

// YearSource answers from sparse year tables keyed by location
type YearSource[T any] struct {
	opts   YearOptions
	tables map[string]temporal.YearTable[T]
	value  func(T) model.Value
}

// NewYearSource builds a source from key -> year -> item tables
func NewYearSource[T any](opts YearOptions, entries map[string]map[int]T, value func(T) model.Value) *YearSource[T] {
	tables := make(map[string]temporal.YearTable[T], len(entries))
	for key, years := range entries {
		tables[key] = temporal.NewYearTable(years)
	}
	return &YearSource[T]{opts: opts, tables: tables, value: value}
}

// Amounts converts a numeric table to numeric values in unit
func Amounts(unit model.Unit) func(float64) model.Value {
	return func(v float64) model.Value { return model.Numeric{Amount: v, Unit: unit} }
}

// Counts converts a count table to numeric values in unit
func Counts(unit model.Unit) func(int) model.Value {
	return func(v int) model.Value { return model.Numeric{Amount: float64(v), Unit: unit} }
}

// Labels converts a text table to text values
func Labels(v string) model.Value {
	return model.Text{Label: v}
}

func (s *YearSource[T]) Name() string { return s.opts.Name }

// Lookup backward-fills the table for the request's location key
func (s *YearSource[T]) Lookup(_ context.Context, loc model.Location, at model.TemporalPoint) (resolve.Observation, bool, error) {
	key, ok := s.opts.Scope.key(loc)
	if !ok {
		return resolve.Observation{}, false, nil
	}
	tbl, ok := s.tables[key]
	if !ok {
		return resolve.Observation{}, false, nil
	}

	var (
		year int
		item T
	)
	if s.opts.ExactOnly {
		item, ok = tbl.Exact(at.Year)
		year = at.Year
	} else {
		year, item, ok = tbl.At(at.Year, s.opts.Clamp)
	}
	if !ok {
		return resolve.Observation{}, false, nil
	}
	if s.opts.MaxAge > 0 && at.Year-year > s.opts.MaxAge {
		return resolve.Observation{}, false, nil
	}

	url := s.opts.URL
	if u, ok := s.opts.URLs[key]; ok {
		url = u
	}
	var confidence model.Confidence
	if s.opts.CityFallback && s.opts.Scope != ScopeCity && loc.City != "" {
		confidence = model.ConfidenceFallback
	}
	return resolve.Observation{
		Value:      s.value(item),
		SourceURL:  url,
		Scope:      key,
		DataYear:   year,
		Confidence: confidence,
	}, true, nil
}

// IntervalSource answers date requests from compiled-in terms of office
type IntervalSource[T any] struct {
	name    string
	url     string
	scope   Scope
	records map[string][]temporal.Interval[T]
	value   func(T) model.Value
}

// NewIntervalSource builds a source from key -> intervals
func NewIntervalSource[T any](name, url string, scope Scope, records map[string][]temporal.Interval[T], value func(T) model.Value) *IntervalSource[T] {
	return &IntervalSource[T]{name: name, url: url, scope: scope, records: records, value: value}
}

func (s *IntervalSource[T]) Name() string { return s.name }

// Lookup selects the interval containing the date, falling back to the latest
// record started before it with fallback confidence
func (s *IntervalSource[T]) Lookup(_ context.Context, loc model.Location, at model.TemporalPoint) (resolve.Observation, bool, error) {
	if !at.HasDate() {
		return resolve.Observation{}, false, nil
	}
	key, ok := s.scope.key(loc)
	if !ok {
		return resolve.Observation{}, false, nil
	}
	return selectInterval(s.records[key], at, s.url, key, s.value)
}

func selectInterval[T any](records []temporal.Interval[T], at model.TemporalPoint, url, scope string, value func(T) model.Value) (resolve.Observation, bool, error) {
	iv, match := temporal.Select(records, at.Time())
	if match == temporal.MatchNone {
		return resolve.Observation{}, false, nil
	}

	confidence := model.ConfidenceExact
	if match == temporal.MatchMostRecent {
		confidence = model.ConfidenceFallback
	}
	return resolve.Observation{
		Value:      value(iv.Item),
		SourceURL:  url,
		Scope:      scope,
		DataYear:   iv.Start.Year(),
		Start:      iv.Start,
		Confidence: confidence,
	}, true, nil
}
