package model

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Location is a normalized (city, state) key. City may be empty for state-wide lookups.
type Location struct {
	City  string `json:"city,omitempty"`
	State string `json:"state"` // Lower-case postal code
}

// Key returns the canonical form: "los angeles, ca" or "mo"
func (l Location) Key() string {
	if l.City == "" {
		return l.State
	}
	return l.City + ", " + l.State
}

func (l Location) String() string { return l.Key() }

// StateOnly returns the state-wide location containing l
func (l Location) StateOnly() Location {
	return Location{State: l.State}
}

// ParseLocation parses free-form input such as "Los Angeles, CA", "los angeles, california",
// "Seattle WA" or "Missouri". A location without a recognizable state is invalid.
func ParseLocation(raw string) (Location, error) {
	cleaned := cleanLocation(raw)
	if cleaned == "" {
		return Location{}, fmt.Errorf("%w: empty location", ErrInvalidInput)
	}

	parts := strings.Split(cleaned, ", ")
	last := parts[len(parts)-1]

	if st, ok := LookupState(last); ok {
		return Location{City: strings.Join(parts[:len(parts)-1], ", "), State: st.Abbr}, nil
	}

	// No comma before the state: "seattle wa", "st louis missouri"
	if len(parts) == 1 {
		words := strings.Fields(last)
		for i := 1; i < len(words); i++ {
			if st, ok := LookupState(strings.Join(words[i:], " ")); ok {
				return Location{City: strings.Join(words[:i], " "), State: st.Abbr}, nil
			}
		}
	}

	return Location{}, fmt.Errorf("%w: no state in location %q", ErrInvalidInput, raw)
}

// NormalizeLocation returns the canonical key for raw. Input that does not parse is
// still cleaned, so NormalizeLocation(NormalizeLocation(x)) == NormalizeLocation(x).
func NormalizeLocation(raw string) string {
	if loc, err := ParseLocation(raw); err == nil {
		return loc.Key()
	}
	return cleanLocation(raw)
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// cleanLocation lower-cases, strips diacritics, turns punctuation other than commas
// into spaces, and collapses whitespace. Empty comma-separated parts are dropped.
func cleanLocation(raw string) string {
	s := strings.ToLower(raw)
	if stripped, _, err := transform.String(stripMarks, s); err == nil {
		s = stripped
	}

	s = strings.Map(func(r rune) rune {
		switch {
		case r == ',':
			return r
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return r
		default:
			return ' '
		}
	}, s)

	var parts []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.Join(strings.Fields(part), " "); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}
