// Package format renders resolved values for display.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ppiankov/capsule/internal/model"
)

// Formatter renders a value as display text
type Formatter func(model.Value) string

var printer = message.NewPrinter(language.AmericanEnglish)

// For returns the formatter for a category: currency for prices and wages,
// grouped integers for counts, raw text for names and titles.
func For(c model.Category) Formatter {
	info, ok := c.Info()
	if !ok {
		return Raw
	}
	switch {
	case info.Kind == model.KindText:
		return Raw
	case info.Unit.IsCurrency():
		return Currency
	case info.Unit == model.UnitPeople:
		return Count
	default:
		return Raw
	}
}

// Value formats v with the formatter of category c. A nil value formats as "".
func Value(c model.Category, v model.Value) string {
	if v == nil {
		return ""
	}
	return For(c)(v)
}

// Currency renders "$1,234.56"
func Currency(v model.Value) string {
	n, ok := v.(model.Numeric)
	if !ok {
		return Raw(v)
	}
	amount := math.Round(n.Amount*100) / 100
	if amount < 0 {
		return printer.Sprintf("-$%.2f", -amount)
	}
	return printer.Sprintf("$%.2f", amount)
}

// Count renders a whole number with thousands separators: "8,405,837"
func Count(v model.Value) string {
	n, ok := v.(model.Numeric)
	if !ok {
		return Raw(v)
	}
	return printer.Sprintf("%d", int64(math.Round(n.Amount)))
}

// Raw renders the value's own string form
func Raw(v model.Value) string {
	if v == nil {
		return ""
	}
	return v.String()
}
