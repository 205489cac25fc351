package data

import "time"

const (
	GovernorsURL  = "https://www.nga.org/former-governors/"
	PresidentsURL = "https://www.archives.gov/federal-register/electoral-college/votes"
)

// Term is a period in office. A zero Ended means the holder is still serving.
type Term struct {
	Name    string
	Party   string
	Entered time.Time
	Ended   time.Time
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// Governors maps a lower-case state code to its governors since the mid 1990s.
// Inauguration days appear as both the outgoing end and the incoming start.
var Governors = map[string][]Term{
	"mo": {
		{"Mel Carnahan", "D", day(1993, time.January, 11), day(2000, time.October, 16)},
		{"Roger B. Wilson", "D", day(2000, time.October, 17), day(2001, time.January, 8)},
		{"Bob Holden", "D", day(2001, time.January, 8), day(2005, time.January, 10)},
		{"Matt Blunt", "R", day(2005, time.January, 10), day(2009, time.January, 12)},
		{"Jay Nixon", "D", day(2009, time.January, 12), day(2017, time.January, 9)},
		{"Eric Greitens", "R", day(2017, time.January, 9), day(2018, time.June, 1)},
		{"Mike Parson", "R", day(2018, time.June, 1), day(2025, time.January, 13)},
		{"Mike Kehoe", "R", day(2025, time.January, 13), time.Time{}},
	},
	"wa": {
		{"Mike Lowry", "D", day(1993, time.January, 13), day(1997, time.January, 15)},
		{"Gary Locke", "D", day(1997, time.January, 15), day(2005, time.January, 12)},
		{"Christine Gregoire", "D", day(2005, time.January, 12), day(2013, time.January, 16)},
		{"Jay Inslee", "D", day(2013, time.January, 16), day(2025, time.January, 15)},
		{"Bob Ferguson", "D", day(2025, time.January, 15), time.Time{}},
	},
	"ca": {
		{"Pete Wilson", "R", day(1991, time.January, 7), day(1999, time.January, 4)},
		{"Gray Davis", "D", day(1999, time.January, 4), day(2003, time.November, 17)},
		{"Arnold Schwarzenegger", "R", day(2003, time.November, 17), day(2011, time.January, 3)},
		{"Jerry Brown", "D", day(2011, time.January, 3), day(2019, time.January, 7)},
		{"Gavin Newsom", "D", day(2019, time.January, 7), time.Time{}},
	},
	"tx": {
		{"Ann Richards", "D", day(1991, time.January, 15), day(1995, time.January, 17)},
		{"George W. Bush", "R", day(1995, time.January, 17), day(2000, time.December, 21)},
		{"Rick Perry", "R", day(2000, time.December, 21), day(2015, time.January, 20)},
		{"Greg Abbott", "R", day(2015, time.January, 20), time.Time{}},
	},
}

// Presidents lists U.S. presidents from 1933
var Presidents = []Term{
	{"Franklin D. Roosevelt", "D", day(1933, time.March, 4), day(1945, time.April, 12)},
	{"Harry S. Truman", "D", day(1945, time.April, 12), day(1953, time.January, 20)},
	{"Dwight D. Eisenhower", "R", day(1953, time.January, 20), day(1961, time.January, 20)},
	{"John F. Kennedy", "D", day(1961, time.January, 20), day(1963, time.November, 22)},
	{"Lyndon B. Johnson", "D", day(1963, time.November, 22), day(1969, time.January, 20)},
	{"Richard Nixon", "R", day(1969, time.January, 20), day(1974, time.August, 9)},
	{"Gerald Ford", "R", day(1974, time.August, 9), day(1977, time.January, 20)},
	{"Jimmy Carter", "D", day(1977, time.January, 20), day(1981, time.January, 20)},
	{"Ronald Reagan", "R", day(1981, time.January, 20), day(1989, time.January, 20)},
	{"George H. W. Bush", "R", day(1989, time.January, 20), day(1993, time.January, 20)},
	{"Bill Clinton", "D", day(1993, time.January, 20), day(2001, time.January, 20)},
	{"George W. Bush", "R", day(2001, time.January, 20), day(2009, time.January, 20)},
	{"Barack Obama", "D", day(2009, time.January, 20), day(2017, time.January, 20)},
	{"Donald Trump", "R", day(2017, time.January, 20), day(2021, time.January, 20)},
	{"Joe Biden", "D", day(2021, time.January, 20), day(2025, time.January, 20)},
	{"Donald Trump", "R", day(2025, time.January, 20), time.Time{}},
}
