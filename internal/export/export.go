// Package export runs the packet export loop: for each ticker, fetch the
// candle table over its pending date range and write one packet file. Tickers
// are processed strictly one at a time; the ISS client is blocking and no
// requests run in parallel.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"moex-data/internal/model"
	"moex-data/internal/saver"
)

// Fetcher fetches the candle table for one ticker over a date range.
// *iss.Client satisfies it.
type Fetcher interface {
	Candles(ticker string, from, to time.Time, interval int) ([]model.Candle, error)
}

// Job is one export unit: a ticker and the date range still missing on disk.
type Job struct {
	Ticker string
	From   time.Time
	To     time.Time
}

// PlanJobs builds jobs from the progress file: a ticker without progress gets
// the full default depth ending yesterday; a ticker with progress gets only
// the gap (last exported date + 1 .. yesterday). Tickers already up to date
// are skipped. Job.To is yesterday 23:59:59, so the window planner emits the
// full session of the final day rather than clipping it at midnight.
func PlanJobs(tickers []string, progress Progress, now time.Time, defaultDays int) []Job {
	yesterday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
	rangeEnd := yesterday.Add(24*time.Hour - time.Second)

	var jobs []Job
	for _, t := range tickers {
		last, ok := progress[t]
		if !ok {
			jobs = append(jobs, Job{Ticker: t, From: yesterday.AddDate(0, 0, -(defaultDays - 1)), To: rangeEnd})
			continue
		}
		start, err := time.ParseInLocation("2006-01-02", last, now.Location())
		if err != nil {
			jobs = append(jobs, Job{Ticker: t, From: yesterday.AddDate(0, 0, -(defaultDays - 1)), To: rangeEnd})
			continue
		}
		start = start.AddDate(0, 0, 1)
		if start.After(yesterday) {
			continue
		}
		jobs = append(jobs, Job{Ticker: t, From: start, To: rangeEnd})
	}
	return jobs
}

// Runner drives one export run.
type Runner struct {
	Fetcher      Fetcher
	Saver        saver.PacketSaver
	BaseDir      string
	ProgressPath string
	Interval     int
}

// Run processes jobs sequentially. Each success writes one packet
// {TICKER}/{ticker}_{from}_to_{to}.{ext} and advances the progress file; each
// failure is recorded and the run continues. The run report is written at the
// end.
func (r *Runner) Run(jobs []Job) (success, failed int, err error) {
	progress := LoadProgress(r.ProgressPath)

	var successList []string
	var failedList []FailedEntry

	for i, job := range jobs {
		dateRange := job.From.Format("2006-01-02") + ".." + job.To.Format("2006-01-02")
		slog.Info("export start", "n", i+1, "total", len(jobs), "ticker", job.Ticker, "date_range", dateRange)

		rows, err := r.Fetcher.Candles(job.Ticker, job.From, job.To, r.Interval)
		if err != nil {
			slog.Error("export fail", "ticker", job.Ticker, "date_range", dateRange, "error", err)
			failedList = append(failedList, FailedEntry{Ticker: job.Ticker, DateRange: dateRange, Reason: err.Error()})
			continue
		}
		if len(rows) == 0 {
			slog.Warn("export fail", "ticker", job.Ticker, "date_range", dateRange, "reason", "no data")
			failedList = append(failedList, FailedEntry{Ticker: job.Ticker, DateRange: dateRange, Reason: "no data"})
			continue
		}

		path, err := r.savePacket(job, rows)
		if err != nil {
			slog.Error("export save fail", "ticker", job.Ticker, "error", err)
			failedList = append(failedList, FailedEntry{Ticker: job.Ticker, DateRange: dateRange, Reason: err.Error()})
			continue
		}
		slog.Info("export ok", "ticker", job.Ticker, "rows", len(rows), "path", path)

		successList = append(successList, job.Ticker)
		progress[job.Ticker] = job.To.Format("2006-01-02")
		if err := progress.Save(r.ProgressPath); err != nil {
			slog.Warn("progress write error", "error", err)
		}
	}

	if err := writeRunReport(r.BaseDir, successList, failedList); err != nil {
		slog.Warn("could not write run report", "error", err)
	}
	return len(successList), len(failedList), nil
}

// savePacket writes one packet file and returns its path.
func (r *Runner) savePacket(job Job, rows []model.Candle) (string, error) {
	tickerDir := filepath.Join(r.BaseDir, job.Ticker)
	if err := os.MkdirAll(tickerDir, 0755); err != nil {
		return "", fmt.Errorf("create folder %s: %w", tickerDir, err)
	}
	name := fmt.Sprintf("%s_%s_to_%s.%s",
		job.Ticker, job.From.Format("2006-01-02"), job.To.Format("2006-01-02"), r.Saver.Extension())
	path := filepath.Join(tickerDir, name)
	if err := r.Saver.Save(rows, path); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
