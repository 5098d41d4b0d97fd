package main

import (
	"log/slog"
	"os"
	"time"

	"moex-data/internal/export"
	"moex-data/internal/slogx"
)

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}

	cfg := a.Config
	slog.SetDefault(slogx.NewDefault(cfg.LogLevel))

	if len(cfg.Tickers) == 0 {
		slog.Error("TICKERS is not set (comma-separated, e.g. TICKERS=LKOH,SBER)")
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.SaveBaseDir(), 0755); err != nil {
		slog.Error("failed to create data dir", "error", err)
		os.Exit(1)
	}
	slog.Info("save dir", "dir", cfg.SaveBaseDir(), "format", cfg.SaveFormat)

	jobs := export.PlanJobs(cfg.Tickers, export.LoadProgress(cfg.ProgressPath()), time.Now(), cfg.Days)
	if len(jobs) == 0 {
		slog.Info("all tickers up to date, nothing to export")
		return
	}
	slog.Info("jobs to export", "jobs", len(jobs), "tickers", len(cfg.Tickers))

	runner := &export.Runner{
		Fetcher:      a.Client,
		Saver:        a.Saver,
		BaseDir:      cfg.SaveBaseDir(),
		ProgressPath: cfg.ProgressPath(),
		Interval:     cfg.Interval,
	}
	success, failed, err := runner.Run(jobs)
	if err != nil {
		slog.Error("export run failed", "error", err)
		os.Exit(1)
	}
	slog.Info("export done", "success", success, "failed", failed)
}
