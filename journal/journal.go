// Package journal exports the trade ledger and run summaries to CSV
// files or a SQLite database.
package journal

import (
	"time"

	"github.com/rustyeddy/breakout/backtest"
)

// TradeRecord is one exported ledger row.
type TradeRecord struct {
	TradeID   string
	RunID     string
	Date      time.Time
	Type      string // LONG or SHORT
	Entry     float64
	Exit      float64
	PnL       float64
	StopHit   bool
	EntryTime time.Time
	ExitTime  time.Time
}

// RunRecord summarizes one backtest run: parameters in, metrics out.
type RunRecord struct {
	RunID   string
	Created time.Time
	Dataset string

	Pct       float64
	StopPct   float64
	MaxTrades int
	StartTime string
	EndTime   string

	Start time.Time
	End   time.Time

	TotalPnL    float64
	MaxDrawdown float64
	Trades      int
	WinRatePct  float64
	AvgPnL      float64
}

// Journal persists trades and run summaries.
type Journal interface {
	RecordTrade(TradeRecord) error
	RecordRun(RunRecord) error
	Close() error
}

// FromTrade converts a simulator trade into an exportable record.
func FromTrade(runID string, t backtest.Trade) TradeRecord {
	return TradeRecord{
		TradeID:   t.ID,
		RunID:     runID,
		Date:      t.Date,
		Type:      t.Side.String(),
		Entry:     t.Entry,
		Exit:      t.Exit,
		PnL:       t.PnL,
		StopHit:   t.StopHit,
		EntryTime: t.EntryTime,
		ExitTime:  t.ExitTime,
	}
}

// FromResult builds a run summary from the run output.
func FromResult(runID, dataset string, cfg backtest.Config, r backtest.Result) RunRecord {
	stopPct := cfg.StopPct
	if stopPct == 0 {
		stopPct = cfg.Pct
	}
	maxTrades := cfg.MaxTrades
	if maxTrades == 0 {
		maxTrades = 1
	}

	return RunRecord{
		RunID:   runID,
		Created: time.Now().UTC(),
		Dataset: dataset,

		Pct:       cfg.Pct,
		StopPct:   stopPct,
		MaxTrades: maxTrades,
		StartTime: cfg.Window.Start.String(),
		EndTime:   cfg.Window.End.String(),

		Start: r.Start,
		End:   r.End,

		TotalPnL:    r.Metrics.TotalPnL,
		MaxDrawdown: r.Metrics.MaxDrawdown,
		Trades:      r.Metrics.TotalTrades,
		WinRatePct:  r.Metrics.WinRatePct,
		AvgPnL:      r.Metrics.AvgPnL,
	}
}
