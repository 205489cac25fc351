// Package sources implements the per-category source adapters and the catalog
// that ranks them into a resolve.Registry.
package sources

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/ppiankov/capsule/internal/fetch"
	"github.com/ppiankov/capsule/internal/model"
)

// Fetcher retrieves a remote body
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*fetch.Result, error)
}

// Scope is the location granularity a source is keyed at
type Scope int

const (
	ScopeCity Scope = iota
	ScopeState
	ScopeNational
)

// key returns the table key for loc at this scope. City-scoped sources cannot
// answer state-only locations.
func (s Scope) key(loc model.Location) (string, bool) {
	switch s {
	case ScopeCity:
		if loc.City == "" {
			return "", false
		}
		return loc.Key(), true
	case ScopeState:
		return loc.State, loc.State != ""
	default:
		return "us", true
	}
}

var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"01/02/2006",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// parseDate accepts the date spellings seen in published sheets
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseAmount parses "$1,234.56" and "1234.56"
func parseAmount(s string) (float64, bool) {
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseYear(s string) (int, bool) {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || y < 1 || y > 9999 {
		return 0, false
	}
	return y, true
}

// stateCode maps a sheet's state cell ("MO", "Missouri") to a lower-case code
func stateCode(s string) (string, bool) {
	st, ok := model.LookupState(strings.ToLower(strings.TrimSpace(s)))
	if !ok {
		return "", false
	}
	return st.Abbr, true
}
