package model

import "encoding/json"

// Status is the outcome of a resolution
type Status string

const (
	StatusResolved Status = "resolved"
	StatusAbsent   Status = "absent" // No source had data; shown as "data unavailable"
)

// ResolvedValue is the resolver output for one (category, location, point) request.
// An absent value carries no Value; it is never filled with an estimate.
type ResolvedValue struct {
	Category  Category      `json:"category"`
	Location  Location      `json:"location"`
	Point     TemporalPoint `json:"point"`
	Status    Status        `json:"status"`
	Value     Value         `json:"-"`
	Formatted string        `json:"formatted,omitempty"`

	Tier       Tier          `json:"tier,omitempty"`       // Rank that produced the value
	Source     string        `json:"source,omitempty"`     // Adapter name
	SourceURL  string        `json:"source_url,omitempty"` // Citation or fetched URL
	Authority  AuthorityTier `json:"authority,omitempty"`
	Scope      string        `json:"scope,omitempty"`     // Location granularity that answered: "seattle, wa", "wa", "us"
	DataYear   int           `json:"data_year,omitempty"` // Year of the data point actually used
	Confidence Confidence    `json:"confidence,omitempty"`
}

// Absent returns the explicit no-data marker
func Absent(category Category, loc Location, point TemporalPoint) ResolvedValue {
	return ResolvedValue{
		Category: category,
		Location: loc,
		Point:    point,
		Status:   StatusAbsent,
	}
}

// IsAbsent reports whether no source produced a value
func (r ResolvedValue) IsAbsent() bool {
	return r.Status != StatusResolved || r.Value == nil
}

// MarshalJSON adds the tagged value to the flat field set
func (r ResolvedValue) MarshalJSON() ([]byte, error) {
	type plain ResolvedValue
	value, err := MarshalValue(r.Value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		plain
		Value json.RawMessage `json:"value"`
	}{plain(r), value})
}
