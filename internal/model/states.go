package model

// State is a U.S. state or the District of Columbia
type State struct {
	Abbr string // Lower-case postal code, e.g. "mo"
	Name string // Lower-case name, e.g. "missouri"
	FIPS string // Two-digit FIPS code used by Census APIs
}

var states = []State{
	{"al", "alabama", "01"}, {"ak", "alaska", "02"}, {"az", "arizona", "04"},
	{"ar", "arkansas", "05"}, {"ca", "california", "06"}, {"co", "colorado", "08"},
	{"ct", "connecticut", "09"}, {"de", "delaware", "10"}, {"dc", "district of columbia", "11"},
	{"fl", "florida", "12"}, {"ga", "georgia", "13"}, {"hi", "hawaii", "15"},
	{"id", "idaho", "16"}, {"il", "illinois", "17"}, {"in", "indiana", "18"},
	{"ia", "iowa", "19"}, {"ks", "kansas", "20"}, {"ky", "kentucky", "21"},
	{"la", "louisiana", "22"}, {"me", "maine", "23"}, {"md", "maryland", "24"},
	{"ma", "massachusetts", "25"}, {"mi", "michigan", "26"}, {"mn", "minnesota", "27"},
	{"ms", "mississippi", "28"}, {"mo", "missouri", "29"}, {"mt", "montana", "30"},
	{"ne", "nebraska", "31"}, {"nv", "nevada", "32"}, {"nh", "new hampshire", "33"},
	{"nj", "new jersey", "34"}, {"nm", "new mexico", "35"}, {"ny", "new york", "36"},
	{"nc", "north carolina", "37"}, {"nd", "north dakota", "38"}, {"oh", "ohio", "39"},
	{"ok", "oklahoma", "40"}, {"or", "oregon", "41"}, {"pa", "pennsylvania", "42"},
	{"ri", "rhode island", "44"}, {"sc", "south carolina", "45"}, {"sd", "south dakota", "46"},
	{"tn", "tennessee", "47"}, {"tx", "texas", "48"}, {"ut", "utah", "49"},
	{"vt", "vermont", "50"}, {"va", "virginia", "51"}, {"wa", "washington", "53"},
	{"wv", "west virginia", "54"}, {"wi", "wisconsin", "55"}, {"wy", "wyoming", "56"},
}

var (
	statesByAbbr = make(map[string]State, len(states))
	statesByName = make(map[string]State, len(states))
)

func init() {
	for _, s := range states {
		statesByAbbr[s.Abbr] = s
		statesByName[s.Name] = s
	}
	statesByName["washington dc"] = statesByAbbr["dc"]
	statesByName["d c"] = statesByAbbr["dc"] // "D.C." after punctuation folding
}

// LookupState finds a state by postal code or full name (both lower-case)
func LookupState(s string) (State, bool) {
	if st, ok := statesByAbbr[s]; ok {
		return st, true
	}
	st, ok := statesByName[s]
	return st, ok
}
