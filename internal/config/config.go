package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"ChartScout/internal/model"
)

// defaultSymbols is the scan universe used when none is configured.
var defaultSymbols = []string{
	"AAPL", "MSFT", "NVDA", "AMZN", "GOOGL", "META", "TSLA", "AMD", "NFLX", "AVGO",
}

// Config holds all application configuration.
type Config struct {
	Scan struct {
		Symbols       []string `yaml:"symbols"`
		Timeframe     string   `yaml:"timeframe"`
		Cron          string   `yaml:"cron"`
		BuyThreshold  int      `yaml:"buy_threshold"`
		SellThreshold int      `yaml:"sell_threshold"`
	} `yaml:"scan"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy    string `yaml:"proxy"`
	LogLevel string `yaml:"log_level"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SCAN_SYMBOLS"); v != "" {
		cfg.Scan.Symbols = splitSymbols(v)
	}
	if v := os.Getenv("SCAN_TIMEFRAME"); v != "" {
		cfg.Scan.Timeframe = v
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Scan.Cron = v
	}
	if v := os.Getenv("BUY_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scan.BuyThreshold = n
		}
	}
	if v := os.Getenv("SELL_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scan.SellThreshold = n
		}
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	// Defaults
	if len(cfg.Scan.Symbols) == 0 {
		cfg.Scan.Symbols = defaultSymbols
	}
	if cfg.Scan.Timeframe == "" {
		cfg.Scan.Timeframe = string(model.Daily)
	}
	if cfg.Scan.Cron == "" {
		// Weekdays at 22:30 UTC, after the US close.
		cfg.Scan.Cron = "0 30 22 * * 1-5"
	}
	if cfg.Scan.BuyThreshold == 0 {
		cfg.Scan.BuyThreshold = 80
	}
	if cfg.Scan.SellThreshold == 0 {
		cfg.Scan.SellThreshold = 30
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/chartscout.db"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// Validate checks that all required fields are consistent.
func (c *Config) Validate() error {
	if len(c.Scan.Symbols) == 0 {
		return fmt.Errorf("scan.symbols is required")
	}
	switch model.Timeframe(strings.ToUpper(c.Scan.Timeframe)) {
	case model.Daily, model.Weekly, model.Yearly:
	default:
		return fmt.Errorf("scan.timeframe %q is not one of DAILY, WEEKLY, YEARLY", c.Scan.Timeframe)
	}
	if c.Scan.BuyThreshold <= c.Scan.SellThreshold {
		return fmt.Errorf("scan.buy_threshold must exceed scan.sell_threshold")
	}
	return nil
}

// Timeframe returns the configured timeframe as a model value.
func (c *Config) Timeframe() model.Timeframe {
	return model.Timeframe(strings.ToUpper(c.Scan.Timeframe))
}

func splitSymbols(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.ToUpper(p))
		}
	}
	return out
}
