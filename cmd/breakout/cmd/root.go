package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Backtest an intraday opening-breakout strategy on candle data",
	Long: `Breakout evaluates a rule-based intraday strategy against historical
candle data and reports performance statistics.

Each calendar day the strategy waits for price to break out a fixed
percentage from the session's opening price, enters in the breakout
direction, and exits on a stop-loss touch or at session end. Optionally
a single reversal trade is taken after a stop-out.

Tools provided:
  - Running backtests over candle CSV files (plain, gzip or xz)
  - Restricting runs to date ranges and daily trading windows
  - Exporting the trade ledger to CSV or SQLite
  - Generating and validating run configuration files`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
