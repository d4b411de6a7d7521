package cmd

import (
	"fmt"
	"os"

	"github.com/rustyeddy/breakout/backtest"
	"github.com/rustyeddy/breakout/config"
	"github.com/rustyeddy/breakout/journal"
	"github.com/rustyeddy/breakout/market"
	"github.com/rustyeddy/breakout/pkg/id"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an opening-breakout backtest over a candle CSV",
	Long: `Run the opening-breakout backtest against historical candle data.

The candle file needs open, high, low, close columns and a time column
(names matched case-insensitively). Files compressed with gzip or xz
are read transparently.

Parameters can come from flags or from a config file; flags set on the
command line override the file.

Examples:
  breakout run -candles data/btc_5m.csv -pct 0.005
  breakout run -candles data/btc_5m.csv.xz -pct 0.003 -sl-pct 0.002 -max-trades 2
  breakout run -config run.yaml -from 2024-01-01 -to 2025-01-01`,
	RunE: runRun,
}

var (
	runConfigPath string
	runCandles    string
	runPct        float64
	runSlPct      float64
	runMaxTrades  int
	runStartTime  string
	runEndTime    string
	runFrom       string
	runTo         string
	runJournal    string
	runTradesFile string
	runDBPath     string
	runShowTrades bool
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "f", "", "path to config file (YAML or JSON)")
	runCmd.Flags().StringVarP(&runCandles, "candles", "c", "", "path to candle CSV (time,open,high,low,close[,volume])")

	runCmd.Flags().Float64VarP(&runPct, "pct", "p", 0.005, "trigger distance from session open (0.005 = 0.5%)")
	runCmd.Flags().Float64Var(&runSlPct, "sl-pct", 0, "stop distance from entry (default: same as -pct)")
	runCmd.Flags().IntVar(&runMaxTrades, "max-trades", 1, "trades per day: 1, or 2 to allow a reversal after a stop-out")
	runCmd.Flags().StringVar(&runStartTime, "start-time", "00:15", "session window start (inclusive)")
	runCmd.Flags().StringVar(&runEndTime, "end-time", "23:35", "session window end (inclusive)")

	runCmd.Flags().StringVar(&runFrom, "from", "", "first date to include (YYYY-MM-DD)")
	runCmd.Flags().StringVar(&runTo, "to", "", "last date to include (YYYY-MM-DD)")

	runCmd.Flags().StringVarP(&runJournal, "journal", "j", "none", "trade export: none, csv or sqlite")
	runCmd.Flags().StringVar(&runTradesFile, "trades-file", "./trades.csv", "CSV journal output path")
	runCmd.Flags().StringVarP(&runDBPath, "db", "d", "./breakout.sqlite", "SQLite journal path")

	runCmd.Flags().BoolVar(&runShowTrades, "show-trades", false, "print the full trade ledger")
}

// buildConfig merges the optional config file with command-line flags.
// Flags changed on the command line win.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config

	if runConfigPath != "" {
		loaded, err := config.LoadFromFile(runConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.Default()
		cfg.Data.Candles = ""
		cfg.Journal = config.JournalConfig{Type: "none"}
	}

	set := func(name string, apply func()) {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}

	set("candles", func() { cfg.Data.Candles = runCandles })
	set("pct", func() { cfg.Strategy.Pct = runPct })
	set("sl-pct", func() { cfg.Strategy.StopPct = runSlPct })
	set("max-trades", func() { cfg.Strategy.MaxTrades = runMaxTrades })
	set("start-time", func() { cfg.Strategy.StartTime = runStartTime })
	set("end-time", func() { cfg.Strategy.EndTime = runEndTime })
	set("from", func() { cfg.Data.From = runFrom })
	set("to", func() { cfg.Data.To = runTo })
	set("journal", func() { cfg.Journal.Type = runJournal })
	set("trades-file", func() { cfg.Journal.TradesFile = runTradesFile })
	set("db", func() { cfg.Journal.DBPath = runDBPath })

	if cfg.Journal.Type == "csv" && cfg.Journal.TradesFile == "" {
		cfg.Journal.TradesFile = runTradesFile
	}
	if cfg.Journal.Type == "sqlite" && cfg.Journal.DBPath == "" {
		cfg.Journal.DBPath = runDBPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	candles, err := market.LoadFile(cfg.Data.Candles)
	if err != nil {
		return fmt.Errorf("load candles: %w", err)
	}

	from, to, err := cfg.DateRange()
	if err != nil {
		return err
	}
	candles = candles.FilterRange(from, to)

	bcfg, err := cfg.Breakout()
	if err != nil {
		return err
	}

	fmt.Printf("Running opening-breakout backtest\n")
	fmt.Printf("  Candles: %s (%d bars)\n", cfg.Data.Candles, len(candles))
	fmt.Printf("  Journal: %s\n\n", cfg.Journal.Type)

	res, err := backtest.Run(candles, bcfg)
	if err != nil {
		return err
	}

	backtest.PrintResult(os.Stdout, bcfg, res)

	if runShowTrades {
		backtest.PrintTrades(os.Stdout, res.Trades)
		fmt.Println()
	}

	return exportResult(cfg, bcfg, res)
}

func exportResult(cfg *config.Config, bcfg backtest.Config, res backtest.Result) error {
	var (
		j    journal.Journal
		dest string
		err  error
	)

	switch cfg.Journal.Type {
	case "csv":
		j, err = journal.NewCSV(cfg.Journal.TradesFile)
		dest = cfg.Journal.TradesFile
	case "sqlite":
		j, err = journal.NewSQLite(cfg.Journal.DBPath)
		dest = cfg.Journal.DBPath
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}
	defer j.Close()

	runID := id.New()
	if err := j.RecordRun(journal.FromResult(runID, cfg.Data.Candles, bcfg, res)); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	for _, t := range res.Trades {
		if err := j.RecordTrade(journal.FromTrade(runID, t)); err != nil {
			return fmt.Errorf("record trade: %w", err)
		}
	}

	fmt.Printf("Trades saved to: %s (run %s)\n", dest, runID)
	return nil
}
