package iss

import (
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"moex-data/internal/model"
)

// Candle wire rows are positional:
// [open, close, high, low, value, volume, begin, end].
const (
	candleOpen   = 0
	candleClose  = 1
	candleHigh   = 2
	candleLow    = 3
	candleValue  = 4
	candleVolume = 5
	candleBegin  = 6
)

func (c *Client) candlesPath(sec model.Security, ticker string) string {
	return fmt.Sprintf("/iss/engines/%s/markets/%s/securities/%s/candles.json", sec.Engine, sec.Market, ticker)
}

func candlesQuery(w Window, interval int) url.Values {
	return url.Values{
		"from":     []string{w.Start.Format(issTimeLayout)},
		"till":     []string{w.End.Format(issTimeLayout)},
		"interval": []string{strconv.Itoa(interval)},
	}
}

// estimatedRows sizes the result slice: one bar per interval per session hour.
func estimatedRows(windows int, interval int) int {
	if interval < 1 {
		interval = 1
	}
	n := windows * 60 / interval
	if n > 500000 {
		n = 500000
	}
	return n
}

// Candles fetches bars for ticker over [from, to] at the given interval and
// assembles them into one table in chronological window order.
//
// The date range is split into per-hour session windows (PlanWindows), one GET
// per window. A failed window is logged and skipped rather than aborting the
// whole fetch, so a long scan survives individual timeouts. An empty range or
// a range with no trading data yields an empty table and a nil error.
func (c *Client) Candles(ticker string, from, to time.Time, interval int) ([]model.Candle, error) {
	if ticker == "" {
		return nil, fmt.Errorf("%w: ticker must be a non-empty string", ErrInvalidArgument)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: date range end %s precedes start %s", ErrInvalidArgument, to.Format(issTimeLayout), from.Format(issTimeLayout))
	}

	sec, err := c.Security(ticker)
	if err != nil {
		return nil, err
	}

	windows := PlanWindows(from, to)
	path := c.candlesPath(sec, ticker)
	rows := make([]model.Candle, 0, estimatedRows(len(windows), interval))

	for _, w := range windows {
		doc, err := c.get(path, candlesQuery(w, interval))
		if err != nil {
			slog.Warn("candle window fetch failed, skipping",
				"ticker", ticker,
				"from", w.Start.Format(issTimeLayout),
				"till", w.End.Format(issTimeLayout),
				"error", err)
			continue
		}
		date := w.Start.Format("060102")
		for _, raw := range doc.Get("candles.data").Array() {
			bar, ok := normalizeCandle(raw, ticker, interval, date)
			if !ok {
				slog.Warn("skipping malformed candle row", "ticker", ticker, "row", raw.Raw)
				continue
			}
			rows = append(rows, bar)
		}
	}
	return rows, nil
}

// normalizeCandle maps one positional wire row into a table row. Output column
// semantics do not follow the wire order: the wire is OCHL, the table is OHLC.
func normalizeCandle(raw gjson.Result, ticker string, interval int, date string) (model.Candle, bool) {
	fields := raw.Array()
	if len(fields) < 7 {
		return model.Candle{}, false
	}
	return model.Candle{
		Ticker:   ticker,
		Interval: interval,
		Date:     date,
		Time:     beginToTime(fields[candleBegin].String()),
		Open:     fields[candleOpen].Float(),
		High:     fields[candleHigh].Float(),
		Low:      fields[candleLow].Float(),
		Close:    fields[candleClose].Float(),
		Volume:   fields[candleVolume].Float(),
	}, true
}

// beginToTime turns a bar's begin timestamp "2024-12-18 10:05:00" into "100500".
func beginToTime(begin string) string {
	_, clock, found := strings.Cut(begin, " ")
	if !found {
		return ""
	}
	return strings.ReplaceAll(clock, ":", "")
}
