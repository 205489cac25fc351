package data

const (
	BillboardYearEndURL = "https://www.billboard.com/charts/year-end/hot-100-songs/"
	SuperBowlURL        = "https://www.nfl.com/super-bowl/history"
)

// Song is a chart entry
type Song struct {
	Title  string
	Artist string
}

// BillboardYearEnd is the number-one single of each Billboard Year-End Hot 100
var BillboardYearEnd = map[int]Song{
	1959: {"The Battle of New Orleans", "Johnny Horton"},
	1960: {"Theme from A Summer Place", "Percy Faith"},
	1961: {"Tossin' and Turnin'", "Bobby Lewis"},
	1962: {"Stranger on the Shore", "Acker Bilk"},
	1963: {"Sugar Shack", "Jimmy Gilmer and the Fireballs"},
	1964: {"I Want to Hold Your Hand", "The Beatles"},
	1965: {"Wooly Bully", "Sam the Sham and the Pharaohs"},
	1966: {"The Ballad of the Green Berets", "SSgt. Barry Sadler"},
	1967: {"To Sir with Love", "Lulu"},
	1968: {"Hey Jude", "The Beatles"},
	1969: {"Sugar, Sugar", "The Archies"},
	1970: {"Bridge over Troubled Water", "Simon & Garfunkel"},
	1971: {"Joy to the World", "Three Dog Night"},
	1972: {"The First Time Ever I Saw Your Face", "Roberta Flack"},
	1973: {"Tie a Yellow Ribbon Round the Ole Oak Tree", "Tony Orlando and Dawn"},
	1974: {"The Way We Were", "Barbra Streisand"},
	1975: {"Love Will Keep Us Together", "Captain & Tennille"},
	1976: {"Silly Love Songs", "Wings"},
	1977: {"Tonight's the Night (Gonna Be Alright)", "Rod Stewart"},
	1978: {"Shadow Dancing", "Andy Gibb"},
	1979: {"My Sharona", "The Knack"},
	1980: {"Call Me", "Blondie"},
	1981: {"Bette Davis Eyes", "Kim Carnes"},
	1982: {"Physical", "Olivia Newton-John"},
	1983: {"Every Breath You Take", "The Police"},
	1984: {"When Doves Cry", "Prince"},
	1985: {"Careless Whisper", "Wham! featuring George Michael"},
	1986: {"That's What Friends Are For", "Dionne & Friends"},
	1987: {"Walk Like an Egyptian", "The Bangles"},
	1988: {"Faith", "George Michael"},
	1989: {"Look Away", "Chicago"},
	1990: {"Hold On", "Wilson Phillips"},
	1991: {"(Everything I Do) I Do It for You", "Bryan Adams"},
	1992: {"End of the Road", "Boyz II Men"},
	1993: {"I Will Always Love You", "Whitney Houston"},
	1994: {"The Sign", "Ace of Base"},
	1995: {"Gangsta's Paradise", "Coolio featuring L.V."},
	1996: {"Macarena (Bayside Boys Mix)", "Los del Río"},
	1997: {"Candle in the Wind 1997", "Elton John"},
	1998: {"Too Close", "Next"},
	1999: {"Believe", "Cher"},
	2000: {"Breathe", "Faith Hill"},
	2001: {"Hanging by a Moment", "Lifehouse"},
	2002: {"How You Remind Me", "Nickelback"},
	2003: {"In da Club", "50 Cent"},
	2004: {"Yeah!", "Usher featuring Lil Jon and Ludacris"},
	2005: {"We Belong Together", "Mariah Carey"},
	2006: {"Bad Day", "Daniel Powter"},
	2007: {"Irreplaceable", "Beyoncé"},
	2008: {"Low", "Flo Rida featuring T-Pain"},
	2009: {"Boom Boom Pow", "The Black Eyed Peas"},
	2010: {"Tik Tok", "Kesha"},
	2011: {"Rolling in the Deep", "Adele"},
	2012: {"Somebody That I Used to Know", "Gotye featuring Kimbra"},
	2013: {"Thrift Shop", "Macklemore & Ryan Lewis featuring Wanz"},
	2014: {"Happy", "Pharrell Williams"},
	2015: {"Uptown Funk", "Mark Ronson featuring Bruno Mars"},
	2016: {"Love Yourself", "Justin Bieber"},
	2017: {"Shape of You", "Ed Sheeran"},
	2018: {"God's Plan", "Drake"},
	2019: {"Old Town Road", "Lil Nas X featuring Billy Ray Cyrus"},
	2020: {"Blinding Lights", "The Weeknd"},
	2021: {"Levitating", "Dua Lipa"},
	2022: {"Heat Waves", "Glass Animals"},
	2023: {"Last Night", "Morgan Wallen"},
	2024: {"Lose Control", "Teddy Swims"},
}

// SuperBowlWinners is keyed by the calendar year the game was played
var SuperBowlWinners = map[int]string{
	1967: "Green Bay Packers",
	1968: "Green Bay Packers",
	1969: "New York Jets",
	1970: "Kansas City Chiefs",
	1971: "Baltimore Colts",
	1972: "Dallas Cowboys",
	1973: "Miami Dolphins",
	1974: "Miami Dolphins",
	1975: "Pittsburgh Steelers",
	1976: "Pittsburgh Steelers",
	1977: "Oakland Raiders",
	1978: "Dallas Cowboys",
	1979: "Pittsburgh Steelers",
	1980: "Pittsburgh Steelers",
	1981: "Oakland Raiders",
	1982: "San Francisco 49ers",
	1983: "Washington Redskins",
	1984: "Los Angeles Raiders",
	1985: "San Francisco 49ers",
	1986: "Chicago Bears",
	1987: "New York Giants",
	1988: "Washington Redskins",
	1989: "San Francisco 49ers",
	1990: "San Francisco 49ers",
	1991: "New York Giants",
	1992: "Washington Redskins",
	1993: "Dallas Cowboys",
	1994: "Dallas Cowboys",
	1995: "San Francisco 49ers",
	1996: "Dallas Cowboys",
	1997: "Green Bay Packers",
	1998: "Denver Broncos",
	1999: "Denver Broncos",
	2000: "St. Louis Rams",
	2001: "Baltimore Ravens",
	2002: "New England Patriots",
	2003: "Tampa Bay Buccaneers",
	2004: "New England Patriots",
	2005: "New England Patriots",
	2006: "Pittsburgh Steelers",
	2007: "Indianapolis Colts",
	2008: "New York Giants",
	2009: "Pittsburgh Steelers",
	2010: "New Orleans Saints",
	2011: "Green Bay Packers",
	2012: "New York Giants",
	2013: "Baltimore Ravens",
	2014: "Seattle Seahawks",
	2015: "New England Patriots",
	2016: "Denver Broncos",
	2017: "New England Patriots",
	2018: "Philadelphia Eagles",
	2019: "New England Patriots",
	2020: "Kansas City Chiefs",
	2021: "Tampa Bay Buccaneers",
	2022: "Los Angeles Rams",
	2023: "Kansas City Chiefs",
	2024: "Kansas City Chiefs",
	2025: "Philadelphia Eagles",
}
