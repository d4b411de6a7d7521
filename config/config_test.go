package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := map[string]func(c *Config){
		"missing candles":    func(c *Config) { c.Data.Candles = "" },
		"zero pct":           func(c *Config) { c.Strategy.Pct = 0 },
		"negative stop pct":  func(c *Config) { c.Strategy.StopPct = -0.1 },
		"max trades too big": func(c *Config) { c.Strategy.MaxTrades = 3 },
		"max trades zero":    func(c *Config) { c.Strategy.MaxTrades = 0 },
		"bad start time":     func(c *Config) { c.Strategy.StartTime = "25:00" },
		"window reversed":    func(c *Config) { c.Strategy.StartTime = "23:00"; c.Strategy.EndTime = "09:00" },
		"bad journal type":   func(c *Config) { c.Journal.Type = "excel" },
		"csv without file":   func(c *Config) { c.Journal.Type = "csv"; c.Journal.TradesFile = "" },
		"sqlite without db":  func(c *Config) { c.Journal.Type = "sqlite"; c.Journal.DBPath = "" },
		"to before from":     func(c *Config) { c.Data.From = "2024-06-01"; c.Data.To = "2024-01-01" },
	}

	for name, mutate := range cases {
		cfg := Default()
		mutate(cfg)
		assert.Error(t, cfg.Validate(), name)
	}
}

// The short "0:15" clock form parses the same as "00:15".
func TestValidateShortClockForm(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Strategy.StartTime = "0:15"
	assert.NoError(t, cfg.Validate())
}

func TestSaveAndLoadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := Default()
	cfg.Strategy.Pct = 0.003
	cfg.Strategy.StopPct = 0.002
	cfg.Strategy.MaxTrades = 2
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveAndLoadJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "run.json")

	cfg := Default()
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFromFileRejectsInvalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strategy:\n  pct: -1\n"), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestBreakoutConversion(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Strategy.Pct = 0.003
	cfg.Strategy.StopPct = 0.002
	cfg.Strategy.MaxTrades = 2

	bcfg, err := cfg.Breakout()
	require.NoError(t, err)
	assert.Equal(t, 0.003, bcfg.Pct)
	assert.Equal(t, 0.002, bcfg.StopPct)
	assert.Equal(t, 2, bcfg.MaxTrades)
	assert.NoError(t, bcfg.Validate())
}

func TestDateRange(t *testing.T) {
	t.Parallel()

	cfg := Default()
	from, to, err := cfg.DateRange()
	require.NoError(t, err)
	assert.True(t, from.IsZero())
	assert.True(t, to.IsZero())

	cfg.Data.From = "2024-01-01"
	cfg.Data.To = "2025-01-01"
	from, to, err = cfg.DateRange()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), to)

	cfg.Data.From = "junk"
	_, _, err = cfg.DateRange()
	assert.Error(t, err)
}
