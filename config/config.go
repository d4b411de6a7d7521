package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rustyeddy/breakout/backtest"
	"github.com/rustyeddy/breakout/market"
	"github.com/rustyeddy/breakout/session"
	"gopkg.in/yaml.v3"
)

// Config represents a complete backtest run configuration
type Config struct {
	Data     DataConfig     `json:"data" yaml:"data"`
	Strategy StrategyConfig `json:"strategy" yaml:"strategy"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
}

// DataConfig locates the candle dataset and an optional date range
type DataConfig struct {
	Candles string `json:"candles" yaml:"candles"`
	// From/To bound the run to a closed date range (YYYY-MM-DD), both
	// inclusive. Empty means unbounded on that side.
	From string `json:"from,omitempty" yaml:"from,omitempty"`
	To   string `json:"to,omitempty" yaml:"to,omitempty"`
}

// StrategyConfig contains the breakout parameters
type StrategyConfig struct {
	// Pct is the trigger distance from the session open (0.005 = 0.5%)
	Pct float64 `json:"pct" yaml:"pct"`
	// StopPct is the stop distance from entry; 0 means same as Pct
	StopPct float64 `json:"stop_pct,omitempty" yaml:"stop_pct,omitempty"`
	// MaxTrades is 1, or 2 to allow a reversal trade after a stop-out
	MaxTrades int `json:"max_trades" yaml:"max_trades"`
	// StartTime/EndTime bound the daily trading window, both inclusive
	StartTime string `json:"start_time" yaml:"start_time"`
	EndTime   string `json:"end_time" yaml:"end_time"`
}

// JournalConfig controls trade-table export
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Data.Candles == "" {
		return fmt.Errorf("data.candles is required")
	}
	if _, _, err := c.DateRange(); err != nil {
		return err
	}
	if c.Strategy.Pct <= 0 {
		return fmt.Errorf("strategy.pct must be positive")
	}
	if c.Strategy.StopPct < 0 {
		return fmt.Errorf("strategy.stop_pct must not be negative")
	}
	if c.Strategy.MaxTrades < 1 || c.Strategy.MaxTrades > 2 {
		return fmt.Errorf("strategy.max_trades must be 1 or 2")
	}
	if _, err := session.ParseWindow(c.Strategy.StartTime, c.Strategy.EndTime); err != nil {
		return fmt.Errorf("strategy window: %w", err)
	}
	switch c.Journal.Type {
	case "none", "":
	case "csv":
		if c.Journal.TradesFile == "" {
			return fmt.Errorf("journal.trades_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	return nil
}

// Breakout converts the strategy section into a simulator config.
// Call only after Validate.
func (c *Config) Breakout() (backtest.Config, error) {
	w, err := session.ParseWindow(c.Strategy.StartTime, c.Strategy.EndTime)
	if err != nil {
		return backtest.Config{}, err
	}
	return backtest.Config{
		Pct:       c.Strategy.Pct,
		StopPct:   c.Strategy.StopPct,
		MaxTrades: c.Strategy.MaxTrades,
		Window:    w,
	}, nil
}

// DateRange parses the optional From/To bounds. Both are inclusive
// timestamps; a bare date means midnight of that day.
func (c *Config) DateRange() (from, to time.Time, err error) {
	if c.Data.From != "" {
		from, err = market.ParseTime(c.Data.From)
		if err != nil {
			return from, to, fmt.Errorf("data.from: %w", err)
		}
	}
	if c.Data.To != "" {
		to, err = market.ParseTime(c.Data.To)
		if err != nil {
			return from, to, fmt.Errorf("data.to: %w", err)
		}
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return from, to, fmt.Errorf("data.to before data.from")
	}
	return from, to, nil
}

// Default returns a configuration with the stock strategy parameters
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Candles: "./candles.csv",
		},
		Strategy: StrategyConfig{
			Pct:       0.005,
			MaxTrades: 1,
			StartTime: "00:15",
			EndTime:   "23:35",
		},
		Journal: JournalConfig{
			Type:       "csv",
			TradesFile: "./trades.csv",
		},
	}
}
