package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ppiankov/capsule/internal/cache"
	"github.com/ppiankov/capsule/internal/model"
	"github.com/ppiankov/capsule/internal/resolve"
)

// CensusSource reads state population counts from the Census Data API for the
// years it publishes: the 2010 and 2020 decennial counts and the 2015-2019
// population estimates.
type CensusSource struct {
	remote
	baseURL string
	apiKey  string
}

// NewCensusSource creates the Census API adapter
func NewCensusSource(baseURL, apiKey string, fetcher Fetcher, c cache.Cache, ttl time.Duration) *CensusSource {
	return &CensusSource{
		remote:  newRemote("census-api", fetcher, c, ttl),
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

func (s *CensusSource) Name() string { return s.name }

// dataset returns the request URL and the population variable for year
func (s *CensusSource) dataset(year int, fips string) (string, string, bool) {
	var path, variable string
	switch {
	case year == 2020:
		path, variable = "2020/dec/pl", "P1_001N"
	case year == 2010:
		path, variable = "2010/dec/sf1", "P001001"
	case year >= 2015 && year <= 2019:
		path, variable = fmt.Sprintf("%d/pep/population", year), "POP"
	default:
		return "", "", false
	}
	return fmt.Sprintf("%s/%s?get=NAME,%s&for=state:%s", s.baseURL, path, variable, fips), variable, true
}

// Lookup returns the state's count for exactly the requested year
func (s *CensusSource) Lookup(ctx context.Context, loc model.Location, at model.TemporalPoint) (resolve.Observation, bool, error) {
	st, ok := model.LookupState(loc.State)
	if !ok {
		return resolve.Observation{}, false, nil
	}
	citation, variable, ok := s.dataset(at.Year, st.FIPS)
	if !ok {
		return resolve.Observation{}, false, nil
	}

	requestURL := citation
	if s.apiKey != "" {
		requestURL += "&key=" + url.QueryEscape(s.apiKey)
	}

	body, err := s.body(ctx, requestURL, func(b []byte) error {
		_, err := decodeCensus(b)
		return err
	})
	if err != nil {
		return resolve.Observation{}, false, err
	}
	rows, err := decodeCensus(body)
	if err != nil {
		return resolve.Observation{}, false, fmt.Errorf("%w: %s: %w", model.ErrFetchFailed, s.name, err)
	}

	count, ok := censusValue(rows, variable, st.FIPS)
	if !ok {
		return resolve.Observation{}, false, nil
	}
	obs := resolve.Observation{
		Value:     model.Numeric{Amount: float64(count), Unit: model.UnitPeople},
		SourceURL: citation,
		Scope:     loc.State,
		DataYear:  at.Year,
	}
	// State counts stand in for a city only as a fallback
	if loc.City != "" {
		obs.Confidence = model.ConfidenceFallback
	}
	return obs, true, nil
}

// decodeCensus decodes the API's header-plus-rows array of cells
func decodeCensus(body []byte) ([][]string, error) {
	var raw [][]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode census response: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty census response")
	}

	rows := make([][]string, len(raw))
	for i, r := range raw {
		rows[i] = make([]string, len(r))
		for j, cell := range r {
			switch v := cell.(type) {
			case string:
				rows[i][j] = v
			case float64:
				rows[i][j] = strconv.FormatFloat(v, 'f', -1, 64)
			}
		}
	}
	return rows, nil
}

// censusValue finds variable in the row for fips. Missing columns, rows or
// unparseable cells report false.
func censusValue(rows [][]string, variable, fips string) (int64, bool) {
	varCol, stateCol := -1, -1
	for i, h := range rows[0] {
		switch {
		case strings.EqualFold(h, variable):
			varCol = i
		case strings.EqualFold(h, "state"):
			stateCol = i
		}
	}
	if varCol < 0 || stateCol < 0 {
		return 0, false
	}

	for _, row := range rows[1:] {
		if stateCol >= len(row) || row[stateCol] != fips || varCol >= len(row) {
			continue
		}
		n, err := strconv.ParseInt(strings.TrimSpace(row[varCol]), 10, 64)
		if err != nil || n <= 0 {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
