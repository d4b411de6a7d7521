package backtest

// Metrics is the summary computed once from the final ledger.
type Metrics struct {
	TotalPnL    float64
	MaxDrawdown float64 // most negative dip of the cumulative PnL curve, <= 0
	TotalTrades int
	WinRatePct  float64 // trades with PnL exactly 0 count as losses
	AvgPnL      float64
}

// ComputeMetrics aggregates a ledger already sorted by entry time.
// An empty ledger yields the zero Metrics, not an error.
func ComputeMetrics(trades []Trade) Metrics {
	n := len(trades)
	if n == 0 {
		return Metrics{}
	}

	var m Metrics
	m.TotalTrades = n

	wins := 0
	cumulative := 0.0
	runningMax := 0.0
	first := true

	for _, t := range trades {
		m.TotalPnL += t.PnL
		if t.PnL > 0 {
			wins++
		}

		cumulative += t.PnL
		if first || cumulative > runningMax {
			runningMax = cumulative
			first = false
		}
		if dd := cumulative - runningMax; dd < m.MaxDrawdown {
			m.MaxDrawdown = dd
		}
	}

	m.WinRatePct = 100 * float64(wins) / float64(n)
	m.AvgPnL = m.TotalPnL / float64(n)
	return m
}
