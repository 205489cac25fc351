package resolve

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/capsule/internal/model"
	"github.com/ppiankov/capsule/internal/temporal"
)

func wage(amount float64) model.Value {
	return model.Numeric{Amount: amount, Unit: model.UnitUSDPerHour}
}

// yearSource serves a backward-filled year table
func yearSource(name string, entries map[int]float64, clamp bool, calls *atomic.Int32) Source {
	tbl := temporal.NewYearTable(entries)
	return Func(name, func(_ context.Context, _ model.Location, at model.TemporalPoint) (Observation, bool, error) {
		if calls != nil {
			calls.Add(1)
		}
		year, v, ok := tbl.At(at.Year, clamp)
		if !ok {
			return Observation{}, false, nil
		}
		return Observation{Value: wage(v), DataYear: year, SourceURL: "https://www.dol.gov/whd"}, true, nil
	})
}

func absentSource(name string, calls *atomic.Int32) Source {
	return Func(name, func(context.Context, model.Location, model.TemporalPoint) (Observation, bool, error) {
		if calls != nil {
			calls.Add(1)
		}
		return Observation{}, false, nil
	})
}

func failingSource(name string) Source {
	return Func(name, func(context.Context, model.Location, model.TemporalPoint) (Observation, bool, error) {
		return Observation{}, false, fmt.Errorf("%w: unexpected status: 503", model.ErrFetchFailed)
	})
}

func newResolver(t *testing.T, specs ...CategorySpec) *Resolver {
	t.Helper()
	reg := NewRegistry()
	for _, spec := range specs {
		require.NoError(t, reg.Register(spec))
	}
	return NewResolver(reg, nil, nil)
}

var (
	seattle  = model.Location{City: "seattle", State: "wa"}
	missouri = model.Location{State: "mo"}
)

func wageSpec(local, state Source) CategorySpec {
	return CategorySpec{
		Category: model.CategoryMinimumWage,
		Policy:   Policy{ClampFloor: true, TieBreak: Max},
		Tiers: []Tier{
			{Name: model.TierLocal, Source: local},
			{Name: model.TierState, Source: state},
			{Name: model.TierFederal, Source: yearSource("federal", map[int]float64{1998: 5.15, 2008: 5.85, 2010: 7.25}, true, nil)},
		},
	}
}

func TestResolve_TieredMaximum(t *testing.T) {
	r := newResolver(t, wageSpec(
		yearSource("local", map[int]float64{2024: 19.97}, false, nil),
		yearSource("state", map[int]float64{2024: 16.28}, false, nil),
	))

	got, err := r.Resolve(context.Background(), model.CategoryMinimumWage, seattle, model.Year(2024))
	require.NoError(t, err)
	assert.Equal(t, model.StatusResolved, got.Status)
	assert.Equal(t, wage(19.97), got.Value)
	assert.Equal(t, model.TierLocal, got.Tier)
	assert.Equal(t, "local", got.Source)
	assert.Equal(t, "$19.97", got.Formatted)
	assert.Equal(t, model.AuthorityPrimary, got.Authority)
	assert.Equal(t, "seattle, wa", got.Scope)
	assert.Equal(t, 2024, got.DataYear)
	assert.Equal(t, model.ConfidenceExact, got.Confidence)
}

func TestResolve_MaxFallsThroughAbsentTiers(t *testing.T) {
	r := newResolver(t, wageSpec(absentSource("local", nil), absentSource("state", nil)))

	got, err := r.Resolve(context.Background(), model.CategoryMinimumWage, missouri, model.Year(2006))
	require.NoError(t, err)
	assert.Equal(t, wage(5.15), got.Value)
	assert.Equal(t, model.TierFederal, got.Tier)
	assert.Equal(t, 1998, got.DataYear)
}

func TestResolve_MaxTieKeepsHigherPriority(t *testing.T) {
	r := newResolver(t, wageSpec(
		yearSource("local", map[int]float64{2010: 7.25}, false, nil),
		yearSource("state", map[int]float64{2010: 7.25}, false, nil),
	))

	got, err := r.Resolve(context.Background(), model.CategoryMinimumWage, seattle, model.Year(2012))
	require.NoError(t, err)
	assert.Equal(t, model.TierLocal, got.Tier)
}

func TestResolve_FloorClampVersusAbsent(t *testing.T) {
	var popCalls atomic.Int32
	r := newResolver(t,
		wageSpec(absentSource("local", nil), absentSource("state", nil)),
		CategorySpec{
			Category: model.CategoryPopulation,
			Policy:   Policy{TieBreak: FirstMatch},
			Tiers:    []Tier{{Name: model.TierCensus, Source: yearSource("census", map[int]float64{1950: 1}, false, &popCalls)}},
		},
	)
	ctx := context.Background()

	clamped, err := r.Resolve(ctx, model.CategoryMinimumWage, missouri, model.Year(1900))
	require.NoError(t, err)
	assert.False(t, clamped.IsAbsent())
	assert.Equal(t, wage(5.15), clamped.Value)
	assert.Equal(t, 1998, clamped.DataYear)

	absent, err := r.Resolve(ctx, model.CategoryPopulation, missouri, model.Year(1900))
	require.NoError(t, err)
	assert.True(t, absent.IsAbsent())
	assert.Nil(t, absent.Value)
	assert.Zero(t, popCalls.Load(), "sources must not be consulted before the first data year")
}

func TestResolve_FirstMatchStopsAtFirstAnswer(t *testing.T) {
	var secondCalls atomic.Int32
	r := newResolver(t, CategorySpec{
		Category: model.CategoryGasolinePrice,
		Policy:   Policy{TieBreak: FirstMatch},
		Tiers: []Tier{
			{Name: model.TierRemote, Source: failingSource("gas-sheet")},
			{Name: model.TierState, Source: yearSource("state", map[int]float64{2015: 2.15}, false, nil)},
			{Name: model.TierNational, Source: yearSource("national", map[int]float64{2015: 2.45}, false, &secondCalls)},
		},
	})

	got, err := r.Resolve(context.Background(), model.CategoryGasolinePrice, missouri, model.Year(2015))
	require.NoError(t, err)
	assert.Equal(t, model.TierState, got.Tier)
	assert.Equal(t, 2.15, got.Value.(model.Numeric).Amount)
	assert.Zero(t, secondCalls.Load())
}

func TestResolve_FetchFailureDegradesToAbsent(t *testing.T) {
	r := newResolver(t, CategorySpec{
		Category: model.CategoryGoldPrice,
		Policy:   Policy{TieBreak: FirstMatch},
		Tiers:    []Tier{{Name: model.TierExact, Source: failingSource("metals")}},
	})

	got, err := r.Resolve(context.Background(), model.CategoryGoldPrice, missouri, model.Date(2020, 3, 4))
	require.NoError(t, err)
	assert.True(t, got.IsAbsent())
}

func TestResolve_RepeatedAbsentIsStable(t *testing.T) {
	r := newResolver(t, CategorySpec{
		Category: model.CategoryPopulation,
		Policy:   Policy{TieBreak: FirstMatch},
		Tiers: []Tier{
			{Name: model.TierLocal, Source: absentSource("city", nil)},
			{Name: model.TierState, Source: failingSource("census-api")},
		},
	})

	loc := model.Location{City: "tiny town", State: "mt"}
	first, err := r.Resolve(context.Background(), model.CategoryPopulation, loc, model.Year(1987))
	require.NoError(t, err)
	require.True(t, first.IsAbsent())

	for i := 0; i < 50; i++ {
		got, err := r.Resolve(context.Background(), model.CategoryPopulation, loc, model.Year(1987))
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}

func termSource(name, label string, start time.Time, confidence model.Confidence) Source {
	return Func(name, func(context.Context, model.Location, model.TemporalPoint) (Observation, bool, error) {
		return Observation{Value: model.Text{Label: label}, Start: start, Confidence: confidence}, true, nil
	})
}

func TestResolve_MostRecentStart(t *testing.T) {
	day := func(y, m, d int) time.Time { return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name     string
		tiers    []Tier
		expected string
		conf     model.Confidence
	}{
		{
			name: "later start wins",
			tiers: []Tier{
				{Name: model.TierRemote, Source: termSource("sheet", "Matt Blunt", day(2005, 1, 10), "")},
				{Name: model.TierStatic, Source: termSource("static", "Jay Nixon", day(2009, 1, 12), "")},
			},
			expected: "Jay Nixon",
			conf:     model.ConfidenceExact,
		},
		{
			name: "exact beats later fallback",
			tiers: []Tier{
				{Name: model.TierRemote, Source: termSource("sheet", "Mike Kehoe", day(2025, 1, 13), model.ConfidenceFallback)},
				{Name: model.TierStatic, Source: termSource("static", "Jay Nixon", day(2009, 1, 12), model.ConfidenceExact)},
			},
			expected: "Jay Nixon",
			conf:     model.ConfidenceExact,
		},
		{
			name: "fallback surfaces its confidence",
			tiers: []Tier{
				{Name: model.TierStatic, Source: termSource("static", "Jay Nixon", day(2009, 1, 12), model.ConfidenceFallback)},
			},
			expected: "Jay Nixon",
			conf:     model.ConfidenceFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newResolver(t, CategorySpec{
				Category: model.CategoryGovernor,
				Policy:   Policy{TieBreak: MostRecentStart},
				Tiers:    tt.tiers,
			})
			got, err := r.Resolve(context.Background(), model.CategoryGovernor, missouri, model.Date(2015, 6, 1))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.Formatted)
			assert.Equal(t, tt.conf, got.Confidence)
		})
	}
}

func TestResolve_InvalidInput(t *testing.T) {
	r := newResolver(t,
		wageSpec(absentSource("local", nil), absentSource("state", nil)),
		CategorySpec{
			Category: model.CategoryGovernor,
			Policy:   Policy{TieBreak: MostRecentStart},
			Tiers:    []Tier{{Name: model.TierStatic, Source: absentSource("static", nil)}},
		},
	)
	ctx := context.Background()

	tests := []struct {
		name     string
		category model.Category
		loc      model.Location
		point    model.TemporalPoint
	}{
		{"unknown category", model.Category("shoe_size"), missouri, model.Year(2000)},
		{"unregistered category", model.CategoryBreadPrice, missouri, model.Year(2000)},
		{"missing state", model.CategoryMinimumWage, model.Location{City: "springfield"}, model.Year(2000)},
		{"unknown state", model.CategoryMinimumWage, model.Location{State: "zz"}, model.Year(2000)},
		{"bad date", model.CategoryMinimumWage, missouri, model.Date(2001, 2, 30)},
		{"partial date for date category", model.CategoryGovernor, missouri, model.Year(2015)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(ctx, tt.category, tt.loc, tt.point)
			require.Error(t, err)
			assert.True(t, IsInvalidInput(err), "got %v", err)
		})
	}
}

func TestParseQuery(t *testing.T) {
	q, err := ParseQuery("Minimum Wage", "Seattle, Washington", "2024")
	require.NoError(t, err)
	assert.Equal(t, Query{Category: model.CategoryMinimumWage, Location: seattle, Point: model.Year(2024)}, q)

	_, err = ParseQuery("governor", "Atlantis", "2015-06-01")
	assert.True(t, IsInvalidInput(err))

	_, err = ParseQuery("governor", "Missouri", "June 2015")
	assert.True(t, IsInvalidInput(err))
}

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()

	assert.Error(t, reg.Register(CategorySpec{Category: "shoe_size", Tiers: []Tier{{Source: absentSource("x", nil)}}}))
	assert.Error(t, reg.Register(CategorySpec{Category: model.CategoryBreadPrice}))
	assert.Error(t, reg.Register(CategorySpec{Category: model.CategoryBreadPrice, Tiers: []Tier{{Name: model.TierNational}}}))

	require.NoError(t, reg.Register(CategorySpec{Category: model.CategoryBreadPrice, Tiers: []Tier{{Name: model.TierNational, Source: absentSource("a", nil)}}}))
	require.NoError(t, reg.Register(CategorySpec{Category: model.CategoryGoldPrice, Tiers: []Tier{{Name: model.TierNational, Source: absentSource("b", nil)}}}))
	require.NoError(t, reg.Register(CategorySpec{Category: model.CategoryBreadPrice, Tiers: []Tier{{Name: model.TierNational, Source: absentSource("c", nil)}}}))

	assert.Equal(t, []model.Category{model.CategoryBreadPrice, model.CategoryGoldPrice}, reg.Categories())
	spec, ok := reg.Lookup(model.CategoryBreadPrice)
	require.True(t, ok)
	assert.Equal(t, "c", spec.Tiers[0].Source.Name())
}

func TestParseTieBreak(t *testing.T) {
	for _, tb := range []TieBreak{FirstMatch, Max, MostRecentStart} {
		parsed, err := ParseTieBreak(tb.String())
		require.NoError(t, err)
		assert.Equal(t, tb, parsed)
	}
	_, err := ParseTieBreak("random")
	assert.Error(t, err)
}
