// Package data holds the compiled-in historical tables. Every table is keyed the
// way its source publishes it and is never modified after init.
package data

const (
	FederalMinimumWageURL = "https://www.dol.gov/agencies/whd/minimum-wage/history/chart"
	StateMinimumWageURL   = "https://www.dol.gov/agencies/whd/state-minimum-wage-history"
)

// FederalMinimumWage is the federal hourly rate in effect on January 1 of each
// year in which it changed. A mid-year increase is keyed by the following year:
// the September 1997 rate is 1998, the July 2007 rate is 2008.
var FederalMinimumWage = map[int]float64{
	1939: 0.25,
	1940: 0.30,
	1946: 0.40,
	1951: 0.75,
	1957: 1.00,
	1962: 1.15,
	1964: 1.25,
	1968: 1.40,
	1969: 1.60,
	1975: 2.10,
	1976: 2.30,
	1978: 2.65,
	1979: 2.90,
	1980: 3.10,
	1981: 3.35,
	1991: 3.80,
	1992: 4.25,
	1997: 4.75,
	1998: 5.15,
	2008: 5.85,
	2009: 6.55,
	2010: 7.25,
}

// StateMinimumWage maps a lower-case state code to its rate history
var StateMinimumWage = map[string]map[int]float64{
	"wa": {
		2020: 13.50,
		2021: 13.69,
		2022: 14.49,
		2023: 15.74,
		2024: 16.28,
		2025: 16.66,
		2026: 17.13,
	},
	"ca": {
		2020: 13.00,
		2021: 14.00,
		2022: 15.00,
		2023: 15.50,
		2024: 16.00,
		2025: 16.50,
		2026: 16.90,
	},
	"mo": {
		2019: 8.60,
		2020: 9.45,
		2021: 10.30,
		2022: 11.15,
		2023: 12.00,
		2024: 12.30,
		2025: 13.75,
	},
}

// LocalWage is a city ordinance rate history
type LocalWage struct {
	URL   string
	Rates map[int]float64
}

// LocalMinimumWage maps a normalized location key to its city ordinance
var LocalMinimumWage = map[string]LocalWage{
	"seattle, wa": {
		URL: "https://www.seattle.gov/laborstandards/ordinances/minimum-wage",
		Rates: map[int]float64{
			2024: 19.97,
			2025: 20.76,
			2026: 21.30,
		},
	},
	"san francisco, ca": {
		URL: "https://www.sf.gov/information--minimum-wage-ordinance",
		Rates: map[int]float64{
			2024: 18.07,
			2025: 18.67,
		},
	},
	"los angeles, ca": {
		URL: "https://wagesla.lacity.gov/",
		Rates: map[int]float64{
			2024: 16.78,
			2025: 17.28,
		},
	},
}
