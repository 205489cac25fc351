package model

import (
	"fmt"
	"strings"
)

// Category identifies a kind of historical fact the resolver can answer
type Category string

const (
	CategoryMinimumWage        Category = "minimum_wage"
	CategoryPopulation         Category = "population"
	CategoryGasolinePrice      Category = "gasoline_price"
	CategoryBreadPrice         Category = "bread_price"
	CategoryGoldPrice          Category = "gold_price"
	CategoryGovernor           Category = "governor"
	CategoryPresident          Category = "president"
	CategoryBillboardNumberOne Category = "billboard_number_one"
	CategorySuperBowlWinner    Category = "super_bowl_winner"
)

// Granularity is the temporal resolution a category is keyed at
type Granularity int

const (
	GranularityYear Granularity = iota // Keyed by year; month/day ignored
	GranularityDate                    // Keyed by exact date; requires year-month-day
)

func (g Granularity) String() string {
	if g == GranularityDate {
		return "date"
	}
	return "year"
}

func (g Granularity) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// CategoryInfo describes the value type and validity domain of a category
type CategoryInfo struct {
	Category    Category    `json:"category" yaml:"category"`
	Title       string      `json:"title" yaml:"title"`
	Kind        ValueKind   `json:"kind" yaml:"kind"`
	Unit        Unit        `json:"unit,omitempty" yaml:"unit,omitempty"`
	Granularity Granularity `json:"granularity" yaml:"granularity"`
	FirstYear   int         `json:"first_year" yaml:"first_year"` // Earliest year any source covers
}

var categories = []CategoryInfo{
	{CategoryMinimumWage, "Minimum wage", KindNumeric, UnitUSDPerHour, GranularityYear, 1938},
	{CategoryPopulation, "Population", KindNumeric, UnitPeople, GranularityYear, 1950},
	{CategoryGasolinePrice, "Gallon of gasoline", KindNumeric, UnitUSDPerGallon, GranularityYear, 1950},
	{CategoryBreadPrice, "Loaf of bread", KindNumeric, UnitUSD, GranularityYear, 1950},
	{CategoryGoldPrice, "Ounce of gold", KindNumeric, UnitUSDPerOunce, GranularityYear, 1970},
	{CategoryGovernor, "Governor", KindText, "", GranularityDate, 1995},
	{CategoryPresident, "President", KindText, "", GranularityDate, 1945},
	{CategoryBillboardNumberOne, "Billboard #1", KindText, "", GranularityYear, 1959},
	{CategorySuperBowlWinner, "Super Bowl champion", KindText, "", GranularityYear, 1967},
}

// Categories returns metadata for every known category in display order
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories)
	return out
}

// Info returns the metadata for c
func (c Category) Info() (CategoryInfo, bool) {
	for _, info := range categories {
		if info.Category == c {
			return info, true
		}
	}
	return CategoryInfo{}, false
}

// ParseCategory converts user input ("Minimum Wage", "minimum-wage") into a Category
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)

	c := Category(key)
	if _, ok := c.Info(); !ok {
		return "", fmt.Errorf("%w: unknown category %q", ErrInvalidInput, s)
	}
	return c, nil
}
