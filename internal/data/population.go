package data

const DecennialCensusURL = "https://www.census.gov/programs-surveys/decennial-census/decade.html"

// StatePopulation holds decennial census counts by lower-case state code
var StatePopulation = map[string]map[int]int{
	"mo": {
		1950: 3954653,
		1960: 4319813,
		1970: 4676501,
		1980: 4916686,
		1990: 5117073,
		2000: 5595211,
		2010: 5988927,
		2020: 6154913,
	},
	"wa": {
		1950: 2378963,
		1960: 2853214,
		1970: 3409169,
		1980: 4132156,
		1990: 4866692,
		2000: 5894121,
		2010: 6724540,
		2020: 7705281,
	},
	"ca": {
		1950: 10586223,
		1960: 15717204,
		1970: 19953134,
		1980: 23667902,
		1990: 29760021,
		2000: 33871648,
		2010: 37253956,
		2020: 39538223,
	},
	"tx": {
		1950: 7711194,
		1960: 9579677,
		1970: 11196730,
		1980: 14229191,
		1990: 16986510,
		2000: 20851820,
		2010: 25145561,
		2020: 29145505,
	},
	"ny": {
		1950: 14830192,
		1960: 16782304,
		1970: 18236967,
		1980: 17558072,
		1990: 17990455,
		2000: 18976457,
		2010: 19378102,
		2020: 20201249,
	},
}

// CityPopulation holds decennial census counts by normalized location key
var CityPopulation = map[string]map[int]int{
	"seattle, wa": {
		1950: 467591,
		1960: 557087,
		1970: 530831,
		1980: 493846,
		1990: 516259,
		2000: 563374,
		2010: 608660,
		2020: 737015,
	},
	"los angeles, ca": {
		1950: 1970358,
		1960: 2479015,
		1970: 2811801,
		1980: 2966850,
		1990: 3485398,
		2000: 3694820,
		2010: 3792621,
		2020: 3898747,
	},
	"san francisco, ca": {
		1950: 775357,
		1960: 740316,
		1970: 715674,
		1980: 678974,
		1990: 723959,
		2000: 776733,
		2010: 805235,
		2020: 873965,
	},
	"st louis, mo": {
		1950: 856796,
		1960: 750026,
		1970: 622236,
		1980: 452801,
		1990: 396685,
		2000: 348189,
		2010: 319294,
		2020: 301578,
	},
}
