package app

import (
	"fmt"

	"moex-data/internal/iss"
	"moex-data/internal/saver"
)

// ProvideConfig loads config from the environment (for Wire).
func ProvideConfig() (*Config, error) {
	return Load()
}

// ProvidePacketSaver creates the PacketSaver from config (for Wire).
// Returns an error if SaveFormat is not supported.
func ProvidePacketSaver(cfg *Config) (saver.PacketSaver, error) {
	ps := saver.NewPacketSaver(cfg.SaveFormat)
	if ps == nil {
		return nil, fmt.Errorf("unsupported SAVE_FORMAT %q (use: csv, parquet, json)", cfg.SaveFormat)
	}
	return ps, nil
}

// ProvideClient creates the ISS client from config (for Wire).
func ProvideClient(cfg *Config) *iss.Client {
	opts := []iss.Option{iss.WithTimeout(cfg.Timeout())}
	if cfg.BaseURL != "" {
		opts = append(opts, iss.WithBaseURL(cfg.BaseURL))
	}
	return iss.NewClient(opts...)
}
