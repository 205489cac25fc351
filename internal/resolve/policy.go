package resolve

import (
	"fmt"
	"strings"
)

// TieBreak decides which of several answering tiers wins
type TieBreak int

const (
	// FirstMatch takes the highest-priority tier that answers
	FirstMatch TieBreak = iota
	// Max takes the largest numeric value across all answering tiers.
	// Equal values keep the higher-priority tier.
	Max
	// MostRecentStart takes the answer whose Start is latest. Exact answers
	// beat fallback answers regardless of Start.
	MostRecentStart
)

func (t TieBreak) String() string {
	switch t {
	case Max:
		return "max"
	case MostRecentStart:
		return "mostRecentStart"
	default:
		return "firstMatch"
	}
}

func (t TieBreak) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ParseTieBreak parses "max", "firstMatch" or "mostRecentStart"
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "firstmatch", "first_match", "":
		return FirstMatch, nil
	case "max":
		return Max, nil
	case "mostrecentstart", "most_recent_start":
		return MostRecentStart, nil
	}
	return FirstMatch, fmt.Errorf("unknown tie-break %q", s)
}

// Policy is the declarative resolution policy of a category
type Policy struct {
	// ClampFloor answers years before the floor tier's first data point with its
	// earliest value instead of absent. When false, years before the category's
	// first year are absent without consulting any source.
	ClampFloor bool     `json:"clamp_floor" yaml:"clamp_floor"`
	TieBreak   TieBreak `json:"tie_break" yaml:"tie_break"`
}
