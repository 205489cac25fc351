// Package resolve picks the single best value for a (category, location, date)
// request from an ordered list of sources, following a per-category policy.
package resolve

import (
	"context"
	"time"

	"github.com/ppiankov/capsule/internal/model"
)

// Observation is one source's answer to a lookup
type Observation struct {
	Value     model.Value
	SourceURL string // Citation or fetched URL
	Scope     string // Location granularity that answered; defaults to the request key
	DataYear  int    // Year of the data point used; defaults to the requested year

	// Start is when the answer became true (an office holder's entered date).
	// Only the mostRecentStart policy reads it.
	Start time.Time

	// Confidence defaults to exact
	Confidence model.Confidence
}

// Source is a ranked data provider for one category.
//
// Lookup reports ok=false when the source has no data for the request. A non-nil
// error means the source could not be consulted (fetch or parse failure); the
// resolver logs it and treats the source as having no data.
type Source interface {
	Name() string
	Lookup(ctx context.Context, loc model.Location, at model.TemporalPoint) (Observation, bool, error)
}

// LookupFunc adapts a function to the Source interface
type LookupFunc func(ctx context.Context, loc model.Location, at model.TemporalPoint) (Observation, bool, error)

type funcSource struct {
	name string
	fn   LookupFunc
}

// Func returns a named Source backed by fn
func Func(name string, fn LookupFunc) Source {
	return funcSource{name: name, fn: fn}
}

func (s funcSource) Name() string { return s.name }

func (s funcSource) Lookup(ctx context.Context, loc model.Location, at model.TemporalPoint) (Observation, bool, error) {
	return s.fn(ctx, loc, at)
}
