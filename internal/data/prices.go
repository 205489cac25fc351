package data

const (
	GasolinePriceURL = "https://www.eia.gov/dnav/pet/hist/LeafHandler.ashx?n=PET&s=EMM_EPMR_PTE_NUS_DPG&f=A"
	BreadPriceURL    = "https://data.bls.gov/timeseries/APU0000702111"
	GoldPriceURL     = "https://www.lbma.org.uk/prices-and-data/precious-metal-prices"
)

// GasolinePrice is the national annual average retail price per gallon of regular
var GasolinePrice = map[int]float64{
	1950: 0.27,
	1955: 0.29,
	1960: 0.31,
	1965: 0.31,
	1970: 0.36,
	1975: 0.57,
	1978: 0.63,
	1979: 0.86,
	1980: 1.19,
	1981: 1.31,
	1982: 1.22,
	1985: 1.20,
	1986: 0.93,
	1990: 1.16,
	1995: 1.15,
	1999: 1.17,
	2000: 1.51,
	2001: 1.46,
	2002: 1.36,
	2003: 1.59,
	2004: 1.88,
	2005: 2.30,
	2006: 2.59,
	2007: 2.80,
	2008: 3.27,
	2009: 2.35,
	2010: 2.79,
	2011: 3.53,
	2012: 3.64,
	2013: 3.53,
	2014: 3.37,
	2015: 2.45,
	2016: 2.14,
	2017: 2.42,
	2018: 2.72,
	2019: 2.60,
	2020: 2.17,
	2021: 3.01,
	2022: 3.95,
	2023: 3.52,
	2024: 3.30,
}

// BreadPrice is the national average price of a pound of white bread
var BreadPrice = map[int]float64{
	1950: 0.14,
	1955: 0.18,
	1960: 0.20,
	1965: 0.21,
	1970: 0.24,
	1975: 0.36,
	1980: 0.51,
	1985: 0.55,
	1990: 0.70,
	1995: 0.84,
	2000: 0.91,
	2005: 1.05,
	2008: 1.37,
	2010: 1.37,
	2012: 1.42,
	2015: 1.42,
	2018: 1.28,
	2020: 1.45,
	2022: 1.70,
	2023: 1.98,
	2024: 2.00,
}

// GoldPrice is the annual average London price per troy ounce
var GoldPrice = map[int]float64{
	1970: 36.02,
	1971: 40.62,
	1972: 58.42,
	1973: 97.39,
	1974: 154.00,
	1975: 160.86,
	1976: 124.74,
	1977: 147.84,
	1978: 193.40,
	1979: 306.00,
	1980: 615.00,
	1981: 460.00,
	1982: 376.00,
	1983: 424.00,
	1984: 361.00,
	1985: 317.00,
	1986: 368.00,
	1987: 447.00,
	1988: 437.00,
	1989: 381.00,
	1990: 383.51,
	1991: 362.11,
	1992: 343.82,
	1993: 359.77,
	1994: 384.00,
	1995: 383.79,
	1996: 387.81,
	1997: 331.02,
	1998: 294.24,
	1999: 278.98,
	2000: 279.11,
	2001: 271.04,
	2002: 309.73,
	2003: 363.38,
	2004: 409.72,
	2005: 444.74,
	2006: 603.46,
	2007: 695.39,
	2008: 871.96,
	2009: 972.35,
	2010: 1224.53,
	2011: 1571.52,
	2012: 1668.98,
	2013: 1411.23,
	2014: 1266.40,
	2015: 1160.06,
	2016: 1250.74,
	2017: 1257.12,
	2018: 1268.49,
	2019: 1392.60,
	2020: 1769.64,
	2021: 1798.61,
	2022: 1800.09,
	2023: 1940.54,
	2024: 2386.10,
}
