package resolve

import (
	"context"
	"errors"
	"fmt"

	"github.com/ppiankov/capsule/internal/format"
	"github.com/ppiankov/capsule/internal/logging"
	"github.com/ppiankov/capsule/internal/metrics"
	"github.com/ppiankov/capsule/internal/model"
	"github.com/ppiankov/capsule/internal/provenance"
)

// Query is a parsed resolution request
type Query struct {
	Category model.Category
	Location model.Location
	Point    model.TemporalPoint
}

// ParseQuery parses raw category, location and date input.
// Every error wraps model.ErrInvalidInput.
func ParseQuery(category, location, date string) (Query, error) {
	c, err := model.ParseCategory(category)
	if err != nil {
		return Query{}, err
	}
	loc, err := model.ParseLocation(location)
	if err != nil {
		return Query{}, err
	}
	point, err := model.ParseTemporalPoint(date)
	if err != nil {
		return Query{}, err
	}
	return Query{Category: c, Location: loc, Point: point}, nil
}

// Resolver answers queries from a registry of ranked sources
type Resolver struct {
	registry  *Registry
	authority *provenance.AuthorityClassifier
	logger    logging.Logger
}

// NewResolver creates a resolver. A nil classifier uses the default authority
// config and a nil logger discards output.
func NewResolver(registry *Registry, authority *provenance.AuthorityClassifier, logger logging.Logger) *Resolver {
	if authority == nil {
		authority = provenance.NewAuthorityClassifier(nil)
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Resolver{registry: registry, authority: authority, logger: logger}
}

// Registry returns the registry the resolver reads
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// ResolveQuery resolves a parsed query
func (r *Resolver) ResolveQuery(ctx context.Context, q Query) (model.ResolvedValue, error) {
	return r.Resolve(ctx, q.Category, q.Location, q.Point)
}

// Resolve returns the best available value for category at loc and point.
//
// Missing data is not an error: the result is an absent ResolvedValue. Source
// failures degrade that tier to absent. The only error returned wraps
// model.ErrInvalidInput.
func (r *Resolver) Resolve(ctx context.Context, category model.Category, loc model.Location, point model.TemporalPoint) (model.ResolvedValue, error) {
	spec, info, err := r.validate(category, loc, point)
	if err != nil {
		metrics.RecordResolution(string(category), "invalid")
		return model.ResolvedValue{}, err
	}

	entry := r.logger.WithFields(logging.Fields{
		"category": category,
		"location": loc.Key(),
		"point":    point.String(),
	})

	if !spec.Policy.ClampFloor && point.Year < info.FirstYear {
		entry.WithField("first_year", info.FirstYear).Debug("before first data year")
		metrics.RecordResolution(string(category), "absent")
		return model.Absent(category, loc, point), nil
	}

	var (
		best     Observation
		bestTier Tier
		found    bool
	)

	for _, tier := range spec.Tiers {
		obs, ok, err := tier.Source.Lookup(ctx, loc, point)
		tierEntry := entry.WithFields(logging.Fields{"tier": tier.Name, "source": tier.Source.Name()})

		switch {
		case err != nil:
			tierEntry.WithError(err).Warn("source failed, treating as absent")
			metrics.RecordTierLookup(string(category), tier.Source.Name(), "failed")
			continue
		case !ok || obs.Value == nil:
			tierEntry.Debug("no data")
			metrics.RecordTierLookup(string(category), tier.Source.Name(), "absent")
			continue
		}
		metrics.RecordTierLookup(string(category), tier.Source.Name(), "hit")

		if obs.Confidence == "" {
			obs.Confidence = model.ConfidenceExact
		}

		if !found || better(spec.Policy.TieBreak, obs, best) {
			best, bestTier, found = obs, tier, true
		}
		if spec.Policy.TieBreak == FirstMatch {
			break
		}
	}

	if !found {
		entry.Debug("no tier answered")
		metrics.RecordResolution(string(category), "absent")
		return model.Absent(category, loc, point), nil
	}

	result := model.ResolvedValue{
		Category:   category,
		Location:   loc,
		Point:      point,
		Status:     model.StatusResolved,
		Value:      best.Value,
		Formatted:  format.Value(category, best.Value),
		Tier:       bestTier.Name,
		Source:     bestTier.Source.Name(),
		SourceURL:  best.SourceURL,
		Authority:  r.authority.Classify(best.SourceURL),
		Scope:      best.Scope,
		DataYear:   best.DataYear,
		Confidence: best.Confidence,
	}
	if result.Scope == "" {
		result.Scope = loc.Key()
	}
	if result.DataYear == 0 {
		result.DataYear = point.Year
	}

	entry.WithFields(logging.Fields{
		"tier":       result.Tier,
		"source":     result.Source,
		"data_year":  result.DataYear,
		"confidence": result.Confidence,
	}).Debug("resolved")
	metrics.RecordResolution(string(category), "resolved")
	return result, nil
}

func (r *Resolver) validate(category model.Category, loc model.Location, point model.TemporalPoint) (CategorySpec, model.CategoryInfo, error) {
	info, ok := category.Info()
	if !ok {
		return CategorySpec{}, info, fmt.Errorf("%w: unknown category %q", model.ErrInvalidInput, category)
	}
	spec, ok := r.registry.Lookup(category)
	if !ok {
		return CategorySpec{}, info, fmt.Errorf("%w: no sources registered for %s", model.ErrInvalidInput, category)
	}
	if loc.State == "" {
		return CategorySpec{}, info, fmt.Errorf("%w: location has no state", model.ErrInvalidInput)
	}
	if _, ok := model.LookupState(loc.State); !ok {
		return CategorySpec{}, info, fmt.Errorf("%w: unknown state %q", model.ErrInvalidInput, loc.State)
	}
	if err := point.Validate(); err != nil {
		return CategorySpec{}, info, err
	}
	if info.Granularity == model.GranularityDate && !point.HasDate() {
		return CategorySpec{}, info, fmt.Errorf("%w: %s needs a full date (YYYY-MM-DD), got %s", model.ErrInvalidInput, category, point)
	}
	return spec, info, nil
}

// better reports whether candidate beats the current best under tb.
// Ties keep the current best, which came from a higher-priority tier.
func better(tb TieBreak, candidate, current Observation) bool {
	switch tb {
	case Max:
		c, ok1 := candidate.Value.(model.Numeric)
		b, ok2 := current.Value.(model.Numeric)
		if !ok1 || !ok2 {
			return false
		}
		return c.Amount > b.Amount
	case MostRecentStart:
		cExact := candidate.Confidence != model.ConfidenceFallback
		bExact := current.Confidence != model.ConfidenceFallback
		if cExact != bExact {
			return cExact
		}
		return candidate.Start.After(current.Start)
	default:
		return false
	}
}

// IsInvalidInput reports whether err is a caller mistake
func IsInvalidInput(err error) bool {
	return errors.Is(err, model.ErrInvalidInput)
}
