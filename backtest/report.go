package backtest

import (
	"fmt"
	"io"
	"time"
)

// PrintResult writes a human-readable run summary.
func PrintResult(w io.Writer, cfg Config, r Result) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Opening Breakout Backtest")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Trigger:       %.3f%% from session open\n", cfg.Pct*100)
	fmt.Fprintf(w, "Stop Loss:     %.3f%% from entry\n", cfg.stopPct()*100)
	fmt.Fprintf(w, "Max Trades:    %d per day\n", cfg.maxTrades())
	fmt.Fprintf(w, "Window:        %s - %s\n", cfg.Window.Start, cfg.Window.End)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Period")
	fmt.Fprintln(w, "--------------------------------------------------")
	if !r.Start.IsZero() {
		fmt.Fprintf(w, "Start:         %s\n", r.Start.Format(time.RFC3339))
		fmt.Fprintf(w, "End:           %s\n", r.End.Format(time.RFC3339))
	}
	fmt.Fprintf(w, "Sessions:      %d\n", r.Sessions)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Results")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Trades:        %d\n", r.Metrics.TotalTrades)
	fmt.Fprintf(w, "Total P/L:     %.4f\n", r.Metrics.TotalPnL)
	fmt.Fprintf(w, "Avg P/L:       %.4f\n", r.Metrics.AvgPnL)
	fmt.Fprintf(w, "Win Rate:      %.2f%%\n", r.Metrics.WinRatePct)
	fmt.Fprintf(w, "Max Drawdown:  %.4f\n", r.Metrics.MaxDrawdown)

	fmt.Fprintln(w)
}

// PrintTrades writes the trade ledger as an aligned table.
func PrintTrades(w io.Writer, trades []Trade) {
	fmt.Fprintf(w, "%-12s %-6s %12s %12s %10s %-7s %-20s %-20s\n",
		"Date", "Type", "Entry", "Exit", "PnL", "Stop", "EntryTime", "ExitTime")

	for _, t := range trades {
		fmt.Fprintf(w, "%-12s %-6s %12.4f %12.4f %10.4f %-7t %-20s %-20s\n",
			t.Date.Format("2006-01-02"),
			t.Side,
			t.Entry,
			t.Exit,
			t.PnL,
			t.StopHit,
			t.EntryTime.Format("2006-01-02 15:04"),
			t.ExitTime.Format("2006-01-02 15:04"),
		)
	}
}
