package worker

import (
	"context"

	"github.com/ppiankov/capsule/internal/model"
)

// Capsule is every category resolved for one place and date
type Capsule struct {
	Location model.Location      `json:"location"`
	Point    model.TemporalPoint `json:"point"`
	Entries  []CapsuleEntry      `json:"entries"`
}

// CapsuleEntry is one category of a capsule. Error is set when the category
// cannot be asked at the capsule's date, e.g. a governor for a year-only date.
type CapsuleEntry struct {
	Category model.Category       `json:"category"`
	Title    string               `json:"title"`
	Value    *model.ResolvedValue `json:"value,omitempty"`
	Error    string               `json:"error,omitempty"`
}

// Capsule resolves every category for location and date concurrently.
// A malformed location or date is returned as an invalid input error.
func (b *BatchProcessor) Capsule(ctx context.Context, location, date string) (*Capsule, error) {
	loc, err := model.ParseLocation(location)
	if err != nil {
		return nil, err
	}
	point, err := model.ParseTemporalPoint(date)
	if err != nil {
		return nil, err
	}

	infos := model.Categories()
	requests := make([]Request, len(infos))
	for i, info := range infos {
		requests[i] = Request{Category: string(info.Category), Location: location, Date: date}
	}

	results := b.Process(ctx, requests)

	c := &Capsule{Location: loc, Point: point, Entries: make([]CapsuleEntry, 0, len(results))}
	for _, res := range results {
		info := infos[res.Request.Index]
		entry := CapsuleEntry{Category: info.Category, Title: info.Title}
		if res.Error != nil {
			entry.Error = res.Error.Error()
		} else {
			value := res.Value
			entry.Value = &value
		}
		c.Entries = append(c.Entries, entry)
	}
	return c, nil
}
