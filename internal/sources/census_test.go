package sources

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/capsule/internal/model"
)

const censusBase = "https://api.census.gov/data"

func TestCensusSource_Datasets(t *testing.T) {
	s := NewCensusSource(censusBase+"/", "", nil, nil, time.Hour)

	tests := []struct {
		year     int
		url      string
		variable string
	}{
		{2010, censusBase + "/2010/dec/sf1?get=NAME,P001001&for=state:29", "P001001"},
		{2017, censusBase + "/2017/pep/population?get=NAME,POP&for=state:29", "POP"},
		{2020, censusBase + "/2020/dec/pl?get=NAME,P1_001N&for=state:29", "P1_001N"},
	}
	for _, tt := range tests {
		url, variable, ok := s.dataset(tt.year, "29")
		require.True(t, ok, "year %d", tt.year)
		assert.Equal(t, tt.url, url)
		assert.Equal(t, tt.variable, variable)
	}

	for _, year := range []int{1990, 2012, 2021} {
		_, _, ok := s.dataset(year, "29")
		assert.False(t, ok, "year %d", year)
	}
}

func TestCensusSource_Lookup(t *testing.T) {
	citation := censusBase + "/2020/dec/pl?get=NAME,P1_001N&for=state:29"
	fetcher := newFakeFetcher(map[string]string{
		citation + "&key=s3cr%2Bt": `[["NAME","P1_001N","state"],["Missouri","6154913","29"]]`,
	})
	s := NewCensusSource(censusBase, "s3cr+t", fetcher, nil, time.Hour)

	obs, ok, err := s.Lookup(context.Background(), model.Location{City: "st louis", State: "mo"}, model.Year(2020))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, model.Numeric{Amount: 6154913, Unit: model.UnitPeople}, obs.Value)
	assert.Equal(t, "mo", obs.Scope)
	assert.Equal(t, citation, obs.SourceURL, "the API key must not leak into the citation")
	assert.Equal(t, model.ConfidenceFallback, obs.Confidence, "a state count answering a city")

	obs, ok, err = s.Lookup(context.Background(), model.Location{State: "mo"}, model.Year(2020))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, obs.Confidence)
}

func TestCensusSource_UnsupportedYearSkipsFetch(t *testing.T) {
	fetcher := newFakeFetcher(map[string]string{})
	s := NewCensusSource(censusBase, "", fetcher, nil, time.Hour)

	_, ok, err := s.Lookup(context.Background(), model.Location{State: "mo"}, model.Year(1987))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, fetcher.calls)
}

func TestCensusSource_SchemaDrift(t *testing.T) {
	url := censusBase + "/2019/pep/population?get=NAME,POP&for=state:29"
	ctx := context.Background()
	mo := model.Location{State: "mo"}

	tests := []struct {
		name string
		body string
	}{
		{"renamed variable", `[["NAME","POPESTIMATE","state"],["Missouri","6137428","29"]]`},
		{"missing row", `[["NAME","POP","state"],["Kansas","2913314","20"]]`},
		{"null cell", `[["NAME","POP","state"],["Missouri",null,"29"]]`},
		{"short row", `[["NAME","POP","state"],["Missouri"]]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewCensusSource(censusBase, "", newFakeFetcher(map[string]string{url: tt.body}), nil, time.Hour)
			_, ok, err := s.Lookup(ctx, mo, model.Year(2019))
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}

	s := NewCensusSource(censusBase, "", newFakeFetcher(map[string]string{url: `{"error":"unknown variable"}`}), nil, time.Hour)
	_, ok, err := s.Lookup(ctx, mo, model.Year(2019))
	assert.False(t, ok)
	assert.ErrorIs(t, err, model.ErrFetchFailed)
}
