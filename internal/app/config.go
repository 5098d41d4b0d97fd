package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application configuration from the environment.
type Config struct {
	Tickers    []string `env:"TICKERS" envSeparator:","`
	DataDir    string   `env:"DATA_DIR" envDefault:"data"`
	SaveFormat string   `env:"SAVE_FORMAT"`
	LogLevel   string   `env:"LOG_LEVEL" envDefault:"info"`

	BaseURL    string `env:"ISS_BASE_URL"`
	TimeoutSec int    `env:"ISS_TIMEOUT_SEC" envDefault:"2"`

	// Interval is the candle granularity code (1 = one minute).
	Interval int `env:"INTERVAL" envDefault:"1"`
	// Days is the default export depth for tickers without saved progress.
	Days int `env:"EXPORT_DAYS" envDefault:"30"`
}

// Load reads config from the environment, after loading .env if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.SaveFormat == "" {
		cfg.SaveFormat = defaultSaveFormat()
	}
	return cfg, nil
}

// defaultSaveFormat picks the packet format from PROFILE when SAVE_FORMAT is
// unset: dev → csv, prod/empty → parquet.
func defaultSaveFormat() string {
	switch os.Getenv("PROFILE") {
	case "dev", "development":
		return "csv"
	case "prod", "production", "":
		return "parquet"
	default:
		return "parquet"
	}
}

// Timeout returns the per-request timeout for all ISS endpoints.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// SaveBaseDir returns data/MOEX.
func (c *Config) SaveBaseDir() string {
	return filepath.Join(c.DataDir, "MOEX")
}

// ProgressPath returns the path of .lastday.json.
func (c *Config) ProgressPath() string {
	return filepath.Join(c.SaveBaseDir(), ".lastday.json")
}
