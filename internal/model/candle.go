package model

// Candle is one row of the export table. Column order is fixed by the Finam
// text format: TICKER, PER, DATE, TIME, OPEN, HIGH, LOW, CLOSE, VOL.
// Shared by the ISS client and the savers (csv, parquet, json).
type Candle struct {
	Ticker   string  `json:"ticker" parquet:"ticker"`
	Interval int     `json:"per" parquet:"per"`     // bar granularity code (1 = one minute)
	Date     string  `json:"date" parquet:"date"`   // yyMMdd
	Time     string  `json:"time" parquet:"time"`   // HHmmss
	Open     float64 `json:"open" parquet:"open"`
	High     float64 `json:"high" parquet:"high"`
	Low      float64 `json:"low" parquet:"low"`
	Close    float64 `json:"close" parquet:"close"`
	Volume   float64 `json:"vol" parquet:"vol"`
}

// BarSummary is the OHLC snapshot of a single bar: the last intraday candle or
// the last historical session, depending on which lookup produced it.
type BarSummary struct {
	Open   float64 `json:"open"`
	Close  float64 `json:"close"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Value  float64 `json:"value"`  // turnover in currency
	Volume float64 `json:"volume"` // turnover in securities
}

// Security holds the venue coordinates of an instrument. Market and Engine
// parameterize the candles and history endpoints.
type Security struct {
	SecID     string `json:"secid"`
	ShortName string `json:"shortname"`
	Group     string `json:"group"`
	Market    string `json:"market"`
	Engine    string `json:"engine"`
}

// Listing is one row of an asset catalog listing.
type Listing struct {
	SecID     string `json:"secid"`
	ShortName string `json:"shortname"`
}
