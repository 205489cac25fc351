package temporal

import "time"

// Interval is a record active over an inclusive [Start, End] date range.
// A zero End means the record is still open.
type Interval[T any] struct {
	Start time.Time
	End   time.Time
	Item  T
}

// Contains reports whether at falls inside the inclusive range
func (iv Interval[T]) Contains(at time.Time) bool {
	if at.Before(iv.Start) {
		return false
	}
	return iv.End.IsZero() || !at.After(iv.End)
}

// Match describes how an interval was selected
type Match int

const (
	MatchNone       Match = iota
	MatchContains         // The interval contains the requested date
	MatchMostRecent       // No interval contains the date; latest-started record before it
)

// Select picks the record active at the given date. When several records contain
// the date (overlapping terms in dirty data) the one with the later Start wins.
// When none does, the most recently started record that began on or before the
// date is returned as MatchMostRecent. Records starting after the date are never
// used, so a date before all records yields MatchNone.
func Select[T any](records []Interval[T], at time.Time) (Interval[T], Match) {
	var (
		best       Interval[T]
		bestMatch  = MatchNone
		latest     Interval[T]
		haveLatest bool
	)

	for _, rec := range records {
		if rec.Start.After(at) {
			continue
		}
		if rec.Contains(at) {
			if bestMatch == MatchNone || rec.Start.After(best.Start) {
				best, bestMatch = rec, MatchContains
			}
			continue
		}
		if !haveLatest || rec.Start.After(latest.Start) {
			latest, haveLatest = rec, true
		}
	}

	if bestMatch == MatchContains {
		return best, MatchContains
	}
	if haveLatest {
		return latest, MatchMostRecent
	}
	return Interval[T]{}, MatchNone
}

// Chain turns ascending start dates into back-to-back intervals where each record
// ends the day before the next one starts. The last record spans lastDays days,
// or stays open when lastDays <= 0. Weekly chart positions are published this way.
func Chain[T any](starts []time.Time, items []T, lastDays int) []Interval[T] {
	out := make([]Interval[T], 0, len(starts))
	for i := range starts {
		iv := Interval[T]{Start: starts[i], Item: items[i]}
		switch {
		case i+1 < len(starts):
			iv.End = starts[i+1].AddDate(0, 0, -1)
		case lastDays > 0:
			iv.End = starts[i].AddDate(0, 0, lastDays-1)
		}
		out = append(out, iv)
	}
	return out
}
