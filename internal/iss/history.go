package iss

import (
	"fmt"
	"net/url"
	"time"

	"moex-data/internal/model"
)

// History wire rows are positional per the history schema:
// [BOARDID, TRADEDATE, SHORTNAME, SECID, NUMTRADES, VALUE, OPEN, LOW, HIGH,
// LEGALCLOSEPRICE, WAPRICE, CLOSE, VOLUME, ...].
const (
	historyValue  = 5
	historyOpen   = 6
	historyLow    = 7
	historyHigh   = 8
	historyClose  = 11
	historyVolume = 12
)

// LastHistoryBar returns the bar of the instrument's most recent completed
// trading session, or nil when the service has no history for it.
func (c *Client) LastHistoryBar(ticker string) (*model.BarSummary, error) {
	if ticker == "" {
		return nil, fmt.Errorf("%w: ticker must be a non-empty string", ErrInvalidArgument)
	}
	sec, err := c.Security(ticker)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/iss/history/engines/%s/markets/%s/securities/%s.json", sec.Engine, sec.Market, ticker)
	doc, err := c.get(path, url.Values{
		"sort_order": []string{"desc"},
		"limit":      []string{"1"},
	})
	if err != nil {
		return nil, err
	}

	rows := doc.Get("history.data").Array()
	if len(rows) == 0 {
		return nil, nil
	}
	fields := rows[0].Array()
	if len(fields) <= historyVolume {
		return nil, fmt.Errorf("%w: history row for %s has %d columns, want at least %d", ErrDataFormat, ticker, len(fields), historyVolume+1)
	}
	return &model.BarSummary{
		Open:   fields[historyOpen].Float(),
		Close:  fields[historyClose].Float(),
		High:   fields[historyHigh].Float(),
		Low:    fields[historyLow].Float(),
		Value:  fields[historyValue].Float(),
		Volume: fields[historyVolume].Float(),
	}, nil
}

// LastCandle returns the most recent bar within [from, till] at the given
// interval, or nil when the window holds no bars.
func (c *Client) LastCandle(ticker string, from, till time.Time, interval int) (*model.BarSummary, error) {
	if ticker == "" {
		return nil, fmt.Errorf("%w: ticker must be a non-empty string", ErrInvalidArgument)
	}
	sec, err := c.Security(ticker)
	if err != nil {
		return nil, err
	}

	doc, err := c.get(c.candlesPath(sec, ticker), candlesQuery(Window{Start: from, End: till}, interval))
	if err != nil {
		return nil, err
	}
	rows := doc.Get("candles.data").Array()
	if len(rows) == 0 {
		return nil, nil
	}
	fields := rows[len(rows)-1].Array()
	if len(fields) <= candleVolume {
		return nil, fmt.Errorf("%w: candle row for %s has %d columns, want at least %d", ErrDataFormat, ticker, len(fields), candleVolume+1)
	}
	return &model.BarSummary{
		Open:   fields[candleOpen].Float(),
		Close:  fields[candleClose].Float(),
		High:   fields[candleHigh].Float(),
		Low:    fields[candleLow].Float(),
		Value:  fields[candleValue].Float(),
		Volume: fields[candleVolume].Float(),
	}, nil
}

// lastPriceLookback bridges the gap between the last trade's timestamp and the
// moment of the call: the close of the newest minute bar in this span is taken
// as the current price.
const lastPriceLookback = 15 * time.Minute

// LastPrice returns the close of the newest minute bar of the current session.
// When the session has no recent bars it falls back to the last completed
// session's close. ok is false when neither source has data.
func (c *Client) LastPrice(ticker string) (price float64, ok bool, err error) {
	now := time.Now()
	bar, err := c.LastCandle(ticker, now.Add(-lastPriceLookback), now, 1)
	if err != nil {
		return 0, false, err
	}
	if bar != nil {
		return bar.Close, true, nil
	}
	hist, err := c.LastHistoryBar(ticker)
	if err != nil {
		return 0, false, err
	}
	if hist != nil {
		return hist.Close, true, nil
	}
	return 0, false, nil
}

// LastPriceForDate returns the close of the last minute bar traded on date.
// It probes the evening session's closing hour first, then the main session's;
// both windows are venue-specific closing heuristics. ok is false when the
// date has no bars in either window.
func (c *Client) LastPriceForDate(ticker string, date time.Time) (price float64, ok bool, err error) {
	for _, hour := range []int{23, 18} {
		start := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
		end := time.Date(date.Year(), date.Month(), date.Day(), hour, 59, 59, 0, date.Location())
		bar, err := c.LastCandle(ticker, start, end, 1)
		if err != nil {
			return 0, false, err
		}
		if bar != nil {
			return bar.Close, true, nil
		}
	}
	return 0, false, nil
}
