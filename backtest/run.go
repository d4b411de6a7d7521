package backtest

import (
	"sort"
	"time"

	"github.com/rustyeddy/breakout/market"
	"github.com/rustyeddy/breakout/session"
)

// Result holds the full trade ledger and its summary for one run.
type Result struct {
	Trades  []Trade
	Metrics Metrics

	// Dataset period actually simulated (first/last candle time).
	Start time.Time
	End   time.Time

	Sessions int // days with at least one candle in the window
}

// Run executes the whole backtest: segment the series into daily
// sessions, simulate each one and aggregate the ledger. The computation
// is a pure function of the candles and the config; candles must be
// sorted by time.
func Run(candles market.Series, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	res := Result{
		Start: candles.Start(),
		End:   candles.End(),
	}

	for _, s := range session.Segment(candles, cfg.Window) {
		res.Sessions++
		res.Trades = append(res.Trades, SimulateSession(s, cfg)...)
	}

	// Sessions come out in ascending date order and trades within a day
	// in entry order already; the stable sort pins the reporting
	// contract regardless.
	sort.SliceStable(res.Trades, func(i, j int) bool {
		if !res.Trades[i].Date.Equal(res.Trades[j].Date) {
			return res.Trades[i].Date.Before(res.Trades[j].Date)
		}
		return res.Trades[i].EntryTime.Before(res.Trades[j].EntryTime)
	})

	res.Metrics = ComputeMetrics(res.Trades)
	return res, nil
}
