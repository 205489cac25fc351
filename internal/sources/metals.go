package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ppiankov/capsule/internal/cache"
	"github.com/ppiankov/capsule/internal/model"
	"github.com/ppiankov/capsule/internal/resolve"
)

// MetalsTTL is how long a metals price response is reused
const MetalsTTL = 2 * time.Hour

// MetalsSource reads the historical USD gold price from a metals price API
type MetalsSource struct {
	remote
	baseURL string
	apiKey  string
}

type metalsResponse struct {
	Success bool               `json:"success"`
	Rates   map[string]float64 `json:"rates"`
	Error   *struct {
		Code int    `json:"code"`
		Info string `json:"info"`
	} `json:"error,omitempty"`
}

// NewMetalsSource creates the metals API adapter. A zero ttl uses MetalsTTL.
func NewMetalsSource(baseURL, apiKey string, fetcher Fetcher, c cache.Cache, ttl time.Duration) *MetalsSource {
	if ttl <= 0 {
		ttl = MetalsTTL
	}
	return &MetalsSource{
		remote:  newRemote("metals-api", fetcher, c, ttl),
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

func (s *MetalsSource) Name() string { return s.name }

// Lookup returns the price of one troy ounce on the requested date
func (s *MetalsSource) Lookup(ctx context.Context, _ model.Location, at model.TemporalPoint) (resolve.Observation, bool, error) {
	if !at.HasDate() {
		return resolve.Observation{}, false, nil
	}

	citation := fmt.Sprintf("%s/%s", s.baseURL, at.String())
	requestURL := fmt.Sprintf("%s?access_key=%s&base=USD&symbols=XAU", citation, url.QueryEscape(s.apiKey))

	body, err := s.body(ctx, requestURL, func(b []byte) error {
		_, err := decodeMetals(b)
		return err
	})
	if err != nil {
		return resolve.Observation{}, false, err
	}
	resp, err := decodeMetals(body)
	if err != nil {
		return resolve.Observation{}, false, fmt.Errorf("%w: %s: %w", model.ErrFetchFailed, s.name, err)
	}

	// Rates are ounces per dollar
	rate := resp.Rates["XAU"]
	if rate <= 0 {
		return resolve.Observation{}, false, nil
	}
	return resolve.Observation{
		Value:     model.Numeric{Amount: 1 / rate, Unit: model.UnitUSDPerOunce},
		SourceURL: citation,
		Scope:     "us",
		DataYear:  at.Year,
	}, true, nil
}

func decodeMetals(body []byte) (metalsResponse, error) {
	var resp metalsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return resp, fmt.Errorf("decode metals response: %w", err)
	}
	if !resp.Success {
		if resp.Error != nil {
			return resp, fmt.Errorf("metals api error %d: %s", resp.Error.Code, resp.Error.Info)
		}
		return resp, fmt.Errorf("metals api reported failure")
	}
	return resp, nil
}
