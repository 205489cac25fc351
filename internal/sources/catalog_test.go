package sources

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/capsule/internal/cache"
	"github.com/ppiankov/capsule/internal/model"
	"github.com/ppiankov/capsule/internal/resolve"
)

// staticResolver wires only the compiled-in tables
func staticResolver(t *testing.T) *resolve.Resolver {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	reg, err := Build(Options{Config: cfg})
	require.NoError(t, err)
	return resolve.NewResolver(reg, nil, nil)
}

func resolveString(t *testing.T, r *resolve.Resolver, category, location, date string) model.ResolvedValue {
	t.Helper()
	q, err := resolve.ParseQuery(category, location, date)
	require.NoError(t, err)
	got, err := r.ResolveQuery(context.Background(), q)
	require.NoError(t, err)
	return got
}

func TestBuild_RegistersEveryCategory(t *testing.T) {
	r := staticResolver(t)
	for _, info := range model.Categories() {
		_, ok := r.Registry().Lookup(info.Category)
		assert.True(t, ok, "missing %s", info.Category)
	}

	spec, _ := r.Registry().Lookup(model.CategoryMinimumWage)
	assert.Equal(t, resolve.Policy{ClampFloor: true, TieBreak: resolve.Max}, spec.Policy)
	assert.Len(t, spec.Tiers, 3)

	spec, _ = r.Registry().Lookup(model.CategoryGovernor)
	assert.Len(t, spec.Tiers, 1, "remote tier is left out without a URL")
}

func TestBuild_WiresRemoteTiers(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Sources.GovernorsCSV = governorsURL
	cfg.Sources.BillboardCSV = chartURL
	cfg.Sources.GasPricesCSV = "https://example.com/gas.csv"
	cfg.Sources.MetalsAPIKey = "k"

	var cacheNames []string
	reg, err := Build(Options{
		Config:  cfg,
		Fetcher: newFakeFetcher(map[string]string{}),
		NewCache: func(name string, ttl time.Duration) cache.Cache {
			cacheNames = append(cacheNames, name)
			return cache.Noop{}
		},
	})
	require.NoError(t, err)

	for c, tiers := range map[model.Category]int{
		model.CategoryPopulation:         3,
		model.CategoryGasolinePrice:      2,
		model.CategoryGoldPrice:          2,
		model.CategoryGovernor:           2,
		model.CategoryBillboardNumberOne: 2,
	} {
		spec, ok := reg.Lookup(c)
		require.True(t, ok)
		assert.Len(t, spec.Tiers, tiers, "%s", c)
	}
	assert.ElementsMatch(t, []string{"census-api", "gas-sheet", "metals-api", "governors-sheet", "billboard-sheet"}, cacheNames)
}

func TestResolve_FederalBackwardFill(t *testing.T) {
	r := staticResolver(t)

	got := resolveString(t, r, "minimum_wage", "Missouri", "2006")
	assert.Equal(t, "$5.15", got.Formatted)
	assert.Equal(t, model.TierFederal, got.Tier)
	assert.Equal(t, 1998, got.DataYear)
	assert.Equal(t, "us", got.Scope)
	assert.Equal(t, model.AuthorityPrimary, got.Authority)

	// Rates are keyed by the year they were in effect on January 1, so the
	// July 2007 increase first shows up in 2008
	got = resolveString(t, r, "minimum_wage", "Missouri", "2007")
	assert.Equal(t, "$5.15", got.Formatted)

	got = resolveString(t, r, "minimum_wage", "Missouri", "2008")
	assert.Equal(t, "$5.85", got.Formatted)
	assert.Equal(t, 2008, got.DataYear)

	got = resolveString(t, r, "minimum_wage", "Missouri", "2030")
	assert.Equal(t, "$13.75", got.Formatted, "the last known state rate holds")
	assert.Equal(t, model.TierState, got.Tier)
}

func TestResolve_SeattleTieredMaximum(t *testing.T) {
	r := staticResolver(t)

	got := resolveString(t, r, "minimum_wage", "Seattle, WA", "2024")
	assert.Equal(t, "$19.97", got.Formatted)
	assert.Equal(t, model.TierLocal, got.Tier)
	assert.Equal(t, "seattle, wa", got.Scope)

	got = resolveString(t, r, "minimum_wage", "Spokane, Washington", "2024")
	assert.Equal(t, "$16.28", got.Formatted)
	assert.Equal(t, model.TierState, got.Tier)
}

func TestResolve_WageFloorClamp(t *testing.T) {
	r := staticResolver(t)

	got := resolveString(t, r, "minimum_wage", "Seattle, WA", "1900")
	require.False(t, got.IsAbsent())
	assert.Equal(t, "$0.25", got.Formatted)
	assert.Equal(t, model.TierFederal, got.Tier)
	assert.Equal(t, 1939, got.DataYear)
}

func TestResolve_PopulationNeverFabricated(t *testing.T) {
	r := staticResolver(t)

	got := resolveString(t, r, "population", "St. Louis, Missouri", "2015")
	assert.Equal(t, "319,294", got.Formatted)
	assert.Equal(t, 2010, got.DataYear)
	assert.Equal(t, "st louis, mo", got.Scope)

	got = resolveString(t, r, "population", "Springfield, MO", "2015")
	assert.Equal(t, "5,988,927", got.Formatted)
	assert.Equal(t, "mo", got.Scope)
	assert.Equal(t, model.ConfidenceFallback, got.Confidence, "a state count is not the city's population")

	got = resolveString(t, r, "population", "St. Louis, Missouri", "2015")
	assert.Equal(t, model.ConfidenceExact, got.Confidence)

	got = resolveString(t, r, "population", "Missouri", "2015")
	assert.Equal(t, model.ConfidenceExact, got.Confidence)

	before := resolveString(t, r, "population", "Seattle, WA", "1900")
	assert.True(t, before.IsAbsent())

	first := resolveString(t, r, "population", "Billings, Montana", "1987")
	require.True(t, first.IsAbsent())
	for i := 0; i < 25; i++ {
		assert.Equal(t, first, resolveString(t, r, "population", "Billings, Montana", "1987"))
	}

	stale := resolveString(t, r, "population", "Seattle, WA", "2031")
	assert.True(t, stale.IsAbsent(), "a census count is not held for more than a decade")
}

func TestResolve_MissouriGovernor(t *testing.T) {
	r := staticResolver(t)

	got := resolveString(t, r, "governor", "Missouri", "2015-06-01")
	assert.Equal(t, "Jay Nixon", got.Formatted)
	assert.Equal(t, model.ConfidenceExact, got.Confidence)
	assert.Equal(t, model.TierStatic, got.Tier)

	got = resolveString(t, r, "governor", "Jefferson City, MO", "2025-01-13")
	assert.Equal(t, "Mike Kehoe", got.Formatted, "inauguration day belongs to the incoming governor")

	got = resolveString(t, r, "governor", "Missouri", "1980-01-01")
	assert.True(t, got.IsAbsent())

	got = resolveString(t, r, "governor", "Oregon", "2015-06-01")
	assert.True(t, got.IsAbsent())
}

func TestResolve_GovernorSheetOverridesWithLaterEntered(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.Sources.GovernorsCSV = governorsURL
	reg, err := Build(Options{Config: cfg, Fetcher: newFakeFetcher(map[string]string{governorsURL: governorsCSV})})
	require.NoError(t, err)
	r := resolve.NewResolver(reg, nil, nil)

	got := resolveString(t, r, "governor", "Missouri", "2015-06-01")
	assert.Equal(t, "Dirty Record", got.Formatted)
	assert.Equal(t, model.TierRemote, got.Tier)
	assert.Equal(t, model.AuthorityTertiary, got.Authority)

	got = resolveString(t, r, "governor", "Missouri", "2020-01-01")
	assert.Equal(t, "Mike Parson", got.Formatted, "an exact static term beats a fallback sheet answer")
	assert.Equal(t, model.ConfidenceExact, got.Confidence)
}

func TestResolve_GovernorSheetFailureFallsBackToTable(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.Sources.GovernorsCSV = governorsURL
	reg, err := Build(Options{Config: cfg, Fetcher: newFakeFetcher(map[string]string{})})
	require.NoError(t, err)
	r := resolve.NewResolver(reg, nil, nil)

	got := resolveString(t, r, "governor", "Missouri", "2015-06-01")
	assert.Equal(t, "Jay Nixon", got.Formatted)
	assert.Equal(t, model.TierStatic, got.Tier)
}

func TestResolve_NationalCategories(t *testing.T) {
	r := staticResolver(t)

	tests := []struct {
		category string
		date     string
		expected string
	}{
		{"president", "1963-11-22", "Lyndon B. Johnson"},
		{"president", "1963-11-21", "John F. Kennedy"},
		{"super_bowl_winner", "1967", "Green Bay Packers"},
		{"super_bowl_winner", "2014-02-02", "Seattle Seahawks"},
		{"billboard_number_one", "1968", "Hey Jude by The Beatles"},
		{"gold_price", "2024", "$2,386.10"},
		{"gold_price", "2024-05-01", "$2,386.10"},
		{"gasoline_price", "1977", "$0.57"},
		{"bread_price", "2023", "$1.98"},
	}
	for _, tt := range tests {
		t.Run(tt.category+" "+tt.date, func(t *testing.T) {
			got := resolveString(t, r, tt.category, "Missouri", tt.date)
			assert.Equal(t, tt.expected, got.Formatted)
		})
	}

	for _, tt := range []struct{ category, date string }{
		{"super_bowl_winner", "1966"},
		{"super_bowl_winner", "2031"},
		{"billboard_number_one", "2031"},
		{"gold_price", "1950"},
	} {
		got := resolveString(t, r, tt.category, "Missouri", tt.date)
		assert.True(t, got.IsAbsent(), "%s %s", tt.category, tt.date)
	}
}

func TestCacheFactory(t *testing.T) {
	disabled := CacheFactory(model.CacheConfig{Enabled: false}, nil)
	assert.IsType(t, cache.Noop{}, disabled("x", time.Hour))

	memory := CacheFactory(model.CacheConfig{Enabled: true}, nil)
	assert.IsType(t, &cache.MemoryCache{}, memory("x", time.Hour))

	layered := CacheFactory(model.CacheConfig{Enabled: true, Dir: t.TempDir()}, nil)
	assert.IsType(t, &cache.LayeredCache{}, layered("x", time.Hour))
}
