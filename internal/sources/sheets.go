package sources

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ppiankov/capsule/internal/cache"
	"github.com/ppiankov/capsule/internal/data"
	"github.com/ppiankov/capsule/internal/model"
	"github.com/ppiankov/capsule/internal/resolve"
	"github.com/ppiankov/capsule/internal/table"
	"github.com/ppiankov/capsule/internal/temporal"
)

func missingColumn(source, column string) error {
	return fmt.Errorf("%w: %s: sheet has no %q column", model.ErrFetchFailed, source, column)
}

// GovernorSheet reads a published sheet of governors with columns
// state, name, party, entered_office, term_end
type GovernorSheet struct {
	remote
	url string
}

// NewGovernorSheet creates the remote governors adapter
func NewGovernorSheet(url string, fetcher Fetcher, c cache.Cache, ttl time.Duration) *GovernorSheet {
	return &GovernorSheet{remote: newRemote("governors-sheet", fetcher, c, ttl), url: url}
}

func (s *GovernorSheet) Name() string { return s.name }

// Lookup finds the governor in office on the requested date
func (s *GovernorSheet) Lookup(ctx context.Context, loc model.Location, at model.TemporalPoint) (resolve.Observation, bool, error) {
	if !at.HasDate() {
		return resolve.Observation{}, false, nil
	}

	t, err := s.table(ctx, s.url)
	if err != nil {
		return resolve.Observation{}, false, err
	}

	stateCol, ok := t.Column("state", "state_abbr", "abbreviation")
	if !ok {
		return resolve.Observation{}, false, missingColumn(s.name, "state")
	}
	nameCol, ok := t.Column("name", "governor")
	if !ok {
		return resolve.Observation{}, false, missingColumn(s.name, "name")
	}
	enteredCol, ok := t.Column("entered_office", "entered", "took_office", "start")
	if !ok {
		return resolve.Observation{}, false, missingColumn(s.name, "entered_office")
	}
	endCol, _ := t.Column("term_end", "left_office", "ended", "end")

	var records []temporal.Interval[string]
	for _, row := range t.Rows {
		code, ok := cellState(t, row, stateCol)
		if !ok || code != loc.State {
			continue
		}
		name, ok := t.Cell(row, nameCol)
		if !ok {
			continue
		}
		entered, ok := cellDate(t, row, enteredCol)
		if !ok {
			continue
		}
		iv := temporal.Interval[string]{Start: entered, Item: name}
		if raw, ok := t.Cell(row, endCol); ok {
			end, ok := parseDate(raw)
			if !ok {
				continue
			}
			iv.End = end
		}
		records = append(records, iv)
	}

	return selectInterval(records, at, s.url, loc.State, Labels)
}

// GasSheet reads a published sheet of annual average gas prices with columns
// state, year, price
type GasSheet struct {
	remote
	url string
}

// NewGasSheet creates the remote state gas price adapter
func NewGasSheet(url string, fetcher Fetcher, c cache.Cache, ttl time.Duration) *GasSheet {
	return &GasSheet{remote: newRemote("gas-sheet", fetcher, c, ttl), url: url}
}

func (s *GasSheet) Name() string { return s.name }

// Lookup returns the state's price for exactly the requested year
func (s *GasSheet) Lookup(ctx context.Context, loc model.Location, at model.TemporalPoint) (resolve.Observation, bool, error) {
	t, err := s.table(ctx, s.url)
	if err != nil {
		return resolve.Observation{}, false, err
	}

	stateCol, ok := t.Column("state", "state_abbr")
	if !ok {
		return resolve.Observation{}, false, missingColumn(s.name, "state")
	}
	yearCol, ok := t.Column("year")
	if !ok {
		return resolve.Observation{}, false, missingColumn(s.name, "year")
	}
	priceCol, ok := t.Column("price", "average_price", "regular")
	if !ok {
		return resolve.Observation{}, false, missingColumn(s.name, "price")
	}

	for _, row := range t.Rows {
		code, ok := cellState(t, row, stateCol)
		if !ok || code != loc.State {
			continue
		}
		raw, _ := t.Cell(row, yearCol)
		if year, ok := parseYear(raw); !ok || year != at.Year {
			continue
		}
		raw, _ = t.Cell(row, priceCol)
		price, ok := parseAmount(raw)
		if !ok {
			continue
		}
		return resolve.Observation{
			Value:     model.Numeric{Amount: price, Unit: model.UnitUSDPerGallon},
			SourceURL: s.url,
			Scope:     loc.State,
			DataYear:  at.Year,
		}, true, nil
	}
	return resolve.Observation{}, false, nil
}

// BillboardSheet reads a published sheet of weekly Hot 100 number ones with
// columns chart_date, title, artist. Each entry holds for seven days.
type BillboardSheet struct {
	remote
	url string
}

// NewBillboardSheet creates the remote weekly chart adapter
func NewBillboardSheet(url string, fetcher Fetcher, c cache.Cache, ttl time.Duration) *BillboardSheet {
	return &BillboardSheet{remote: newRemote("billboard-sheet", fetcher, c, ttl), url: url}
}

func (s *BillboardSheet) Name() string { return s.name }

// Lookup returns the number one for the chart week containing the date
func (s *BillboardSheet) Lookup(ctx context.Context, _ model.Location, at model.TemporalPoint) (resolve.Observation, bool, error) {
	if !at.HasDate() {
		return resolve.Observation{}, false, nil
	}

	t, err := s.table(ctx, s.url)
	if err != nil {
		return resolve.Observation{}, false, err
	}

	dateCol, ok := t.Column("chart_date", "week", "date")
	if !ok {
		return resolve.Observation{}, false, missingColumn(s.name, "chart_date")
	}
	titleCol, ok := t.Column("title", "song")
	if !ok {
		return resolve.Observation{}, false, missingColumn(s.name, "title")
	}
	artistCol, _ := t.Column("artist", "performer")

	type week struct {
		start time.Time
		song  data.Song
	}
	var weeks []week
	for _, row := range t.Rows {
		start, ok := cellDate(t, row, dateCol)
		if !ok {
			continue
		}
		title, ok := t.Cell(row, titleCol)
		if !ok {
			continue
		}
		artist, _ := t.Cell(row, artistCol)
		weeks = append(weeks, week{start, data.Song{Title: title, Artist: artist}})
	}
	sort.SliceStable(weeks, func(i, j int) bool { return weeks[i].start.Before(weeks[j].start) })

	starts := make([]time.Time, len(weeks))
	songs := make([]data.Song, len(weeks))
	for i, w := range weeks {
		starts[i], songs[i] = w.start, w.song
	}

	iv, match := temporal.Select(temporal.Chain(starts, songs, 7), at.Time())
	if match != temporal.MatchContains {
		return resolve.Observation{}, false, nil
	}
	return resolve.Observation{
		Value:     SongLabel(iv.Item),
		SourceURL: s.url,
		Scope:     "us",
		DataYear:  iv.Start.Year(),
		Start:     iv.Start,
	}, true, nil
}

// SongLabel renders a chart entry as `Title by Artist`
func SongLabel(s data.Song) model.Value {
	if s.Artist == "" {
		return model.Text{Label: s.Title}
	}
	return model.Text{Label: s.Title + " by " + s.Artist}
}

func cellState(t *table.Table, row []string, col int) (string, bool) {
	raw, ok := t.Cell(row, col)
	if !ok {
		return "", false
	}
	return stateCode(raw)
}

func cellDate(t *table.Table, row []string, col int) (time.Time, bool) {
	raw, ok := t.Cell(row, col)
	if !ok {
		return time.Time{}, false
	}
	return parseDate(raw)
}
