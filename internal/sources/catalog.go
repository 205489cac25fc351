package sources

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ppiankov/capsule/internal/cache"
	"github.com/ppiankov/capsule/internal/data"
	"github.com/ppiankov/capsule/internal/logging"
	"github.com/ppiankov/capsule/internal/model"
	"github.com/ppiankov/capsule/internal/resolve"
	"github.com/ppiankov/capsule/internal/temporal"
)

// censusHoldYears bounds how long a decennial count stands in for later years
const censusHoldYears = 10

// NewCacheFunc creates the cache owned by one remote adapter
type NewCacheFunc func(name string, ttl time.Duration) cache.Cache

// CacheFactory returns per-adapter caches following cfg: disabled caching yields
// a no-op cache, otherwise memory over a disk directory per adapter.
func CacheFactory(cfg model.CacheConfig, now cache.Clock) NewCacheFunc {
	return func(name string, ttl time.Duration) cache.Cache {
		switch {
		case !cfg.Enabled:
			return cache.Noop{}
		case cfg.Dir == "":
			return cache.NewMemoryCacheWithClock(ttl, 10*time.Minute, now)
		default:
			return cache.NewLayeredCache(ttl, filepath.Join(cfg.Dir, name), now)
		}
	}
}

// Options configures Build
type Options struct {
	Config   *model.Config
	Fetcher  Fetcher
	NewCache NewCacheFunc
	Logger   logging.Logger
}

// Build wires every category's ranked sources into a registry. Remote tiers
// whose URL or API key is not configured are left out.
func Build(opts Options) (*resolve.Registry, error) {
	if opts.Config == nil {
		opts.Config = model.DefaultConfig()
	}
	if opts.NewCache == nil {
		opts.NewCache = CacheFactory(opts.Config.Cache, cache.SystemClock)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	src := opts.Config.Sources
	ttl := opts.Config.Cache
	remoteOK := opts.Fetcher != nil

	reg := resolve.NewRegistry()
	register := func(c model.Category, policy resolve.Policy, tiers ...resolve.Tier) error {
		var kept []resolve.Tier
		for _, t := range tiers {
			if t.Source != nil {
				kept = append(kept, t)
			}
		}
		if err := reg.Register(resolve.CategorySpec{Category: c, Policy: policy, Tiers: kept}); err != nil {
			return fmt.Errorf("register %s: %w", c, err)
		}
		opts.Logger.WithFields(logging.Fields{"category": c, "tiers": len(kept)}).Debug("registered category")
		return nil
	}

	// Minimum wage: law requires the highest applicable rate
	wagePolicy := resolve.Policy{ClampFloor: true, TieBreak: resolve.Max}
	localRates := make(map[string]map[int]float64, len(data.LocalMinimumWage))
	localURLs := make(map[string]string, len(data.LocalMinimumWage))
	for key, local := range data.LocalMinimumWage {
		localRates[key] = local.Rates
		localURLs[key] = local.URL
	}
	wage := Amounts(model.UnitUSDPerHour)
	if err := register(model.CategoryMinimumWage, wagePolicy,
		resolve.Tier{Name: model.TierLocal, Source: NewYearSource(
			YearOptions{Name: "city-ordinance", URLs: localURLs, Scope: ScopeCity}, localRates, wage)},
		resolve.Tier{Name: model.TierState, Source: NewYearSource(
			YearOptions{Name: "state-law", URL: data.StateMinimumWageURL, Scope: ScopeState}, data.StateMinimumWage, wage)},
		resolve.Tier{Name: model.TierFederal, Source: NewYearSource(
			YearOptions{Name: "federal-flsa", URL: data.FederalMinimumWageURL, Scope: ScopeNational, Clamp: wagePolicy.ClampFloor},
			map[string]map[int]float64{"us": data.FederalMinimumWage}, wage)},
	); err != nil {
		return nil, err
	}

	people := Counts(model.UnitPeople)
	var census resolve.Source
	if remoteOK && src.CensusBaseURL != "" {
		census = NewCensusSource(src.CensusBaseURL, src.CensusAPIKey, opts.Fetcher,
			opts.NewCache("census-api", ttl.CensusTTL), ttl.CensusTTL)
	}
	if err := register(model.CategoryPopulation, resolve.Policy{TieBreak: resolve.FirstMatch},
		resolve.Tier{Name: model.TierLocal, Source: NewYearSource(
			YearOptions{Name: "city-census", URL: data.DecennialCensusURL, Scope: ScopeCity, MaxAge: censusHoldYears}, data.CityPopulation, people)},
		resolve.Tier{Name: model.TierExact, Source: census},
		resolve.Tier{Name: model.TierCensus, Source: NewYearSource(
			YearOptions{Name: "state-census", URL: data.DecennialCensusURL, Scope: ScopeState, MaxAge: censusHoldYears, CityFallback: true}, data.StatePopulation, people)},
	); err != nil {
		return nil, err
	}

	var gasSheet resolve.Source
	if remoteOK && src.GasPricesCSV != "" {
		gasSheet = NewGasSheet(src.GasPricesCSV, opts.Fetcher, opts.NewCache("gas-sheet", ttl.SheetTTL), ttl.SheetTTL)
	}
	if err := register(model.CategoryGasolinePrice, resolve.Policy{TieBreak: resolve.FirstMatch},
		resolve.Tier{Name: model.TierRemote, Source: gasSheet},
		resolve.Tier{Name: model.TierNational, Source: national("eia-annual", data.GasolinePriceURL, data.GasolinePrice, model.UnitUSDPerGallon)},
	); err != nil {
		return nil, err
	}

	if err := register(model.CategoryBreadPrice, resolve.Policy{TieBreak: resolve.FirstMatch},
		resolve.Tier{Name: model.TierNational, Source: national("bls-average-price", data.BreadPriceURL, data.BreadPrice, model.UnitUSD)},
	); err != nil {
		return nil, err
	}

	var metals resolve.Source
	if remoteOK && src.MetalsBaseURL != "" && src.MetalsAPIKey != "" {
		metals = NewMetalsSource(src.MetalsBaseURL, src.MetalsAPIKey, opts.Fetcher,
			opts.NewCache("metals-api", ttl.MetalsTTL), ttl.MetalsTTL)
	}
	if err := register(model.CategoryGoldPrice, resolve.Policy{TieBreak: resolve.FirstMatch},
		resolve.Tier{Name: model.TierExact, Source: metals},
		resolve.Tier{Name: model.TierNational, Source: national("lbma-annual", data.GoldPriceURL, data.GoldPrice, model.UnitUSDPerOunce)},
	); err != nil {
		return nil, err
	}

	var governorSheet resolve.Source
	if remoteOK && src.GovernorsCSV != "" {
		governorSheet = NewGovernorSheet(src.GovernorsCSV, opts.Fetcher, opts.NewCache("governors-sheet", ttl.SheetTTL), ttl.SheetTTL)
	}
	governors := make(map[string][]temporal.Interval[data.Term], len(data.Governors))
	for state, terms := range data.Governors {
		governors[state] = termIntervals(terms)
	}
	officePolicy := resolve.Policy{TieBreak: resolve.MostRecentStart}
	if err := register(model.CategoryGovernor, officePolicy,
		resolve.Tier{Name: model.TierRemote, Source: governorSheet},
		resolve.Tier{Name: model.TierStatic, Source: NewIntervalSource("governors-table", data.GovernorsURL, ScopeState, governors, termName)},
	); err != nil {
		return nil, err
	}

	presidents := map[string][]temporal.Interval[data.Term]{"us": termIntervals(data.Presidents)}
	if err := register(model.CategoryPresident, officePolicy,
		resolve.Tier{Name: model.TierNational, Source: NewIntervalSource("presidents-table", data.PresidentsURL, ScopeNational, presidents, termName)},
	); err != nil {
		return nil, err
	}

	var chartSheet resolve.Source
	if remoteOK && src.BillboardCSV != "" {
		chartSheet = NewBillboardSheet(src.BillboardCSV, opts.Fetcher, opts.NewCache("billboard-sheet", ttl.SheetTTL), ttl.SheetTTL)
	}
	if err := register(model.CategoryBillboardNumberOne, resolve.Policy{TieBreak: resolve.FirstMatch},
		resolve.Tier{Name: model.TierRemote, Source: chartSheet},
		resolve.Tier{Name: model.TierNational, Source: NewYearSource(
			YearOptions{Name: "billboard-year-end", URL: data.BillboardYearEndURL, Scope: ScopeNational, ExactOnly: true},
			map[string]map[int]data.Song{"us": data.BillboardYearEnd}, SongLabel)},
	); err != nil {
		return nil, err
	}

	if err := register(model.CategorySuperBowlWinner, resolve.Policy{TieBreak: resolve.FirstMatch},
		resolve.Tier{Name: model.TierNational, Source: NewYearSource(
			YearOptions{Name: "super-bowl-results", URL: data.SuperBowlURL, Scope: ScopeNational, ExactOnly: true},
			map[string]map[int]string{"us": data.SuperBowlWinners}, Labels)},
	); err != nil {
		return nil, err
	}

	return reg, nil
}

func national(name, url string, years map[int]float64, unit model.Unit) resolve.Source {
	return NewYearSource(YearOptions{Name: name, URL: url, Scope: ScopeNational},
		map[string]map[int]float64{"us": years}, Amounts(unit))
}

func termIntervals(terms []data.Term) []temporal.Interval[data.Term] {
	out := make([]temporal.Interval[data.Term], len(terms))
	for i, t := range terms {
		out[i] = temporal.Interval[data.Term]{Start: t.Entered, End: t.Ended, Item: t}
	}
	return out
}

func termName(t data.Term) model.Value {
	return model.Text{Label: t.Name}
}
