package backtest

import (
	"testing"
	"time"

	"github.com/rustyeddy/breakout/market"
	"github.com/rustyeddy/breakout/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWindow(t *testing.T) session.Window {
	t.Helper()
	w, err := session.ParseWindow("00:15", "23:35")
	require.NoError(t, err)
	return w
}

func TestRunEmptySeries(t *testing.T) {
	t.Parallel()

	res, err := Run(nil, Config{Pct: 0.005, Window: runWindow(t)})
	require.NoError(t, err)

	assert.Empty(t, res.Trades)
	assert.Equal(t, Metrics{}, res.Metrics)
	assert.Zero(t, res.Sessions)
}

func TestRunInvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := Run(nil, Config{Pct: 0})
	assert.Error(t, err)
}

func TestRunMultipleDays(t *testing.T) {
	t.Parallel()

	day1 := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	at := func(d time.Time, hh, mm int, o, h, l, c float64) market.Candle {
		return market.Candle{
			Open: o, High: h, Low: l, Close: c,
			Time: d.Add(time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute),
		}
	}

	candles := market.Series{
		// day 1: LONG breakout, force-closed higher (winner)
		at(day1, 0, 15, 100, 100.5, 99.8, 100.2),
		at(day1, 0, 20, 100.2, 101.6, 100.1, 101.4),
		at(day1, 0, 25, 101.4, 102.0, 101.2, 101.9),
		// day 2: no breakout either way
		at(day2, 0, 15, 100, 100.3, 99.8, 100.1),
		at(day2, 0, 20, 100.1, 100.4, 99.9, 100.2),
	}

	res, err := Run(candles, Config{Pct: 0.01, Window: runWindow(t)})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Sessions)
	require.Len(t, res.Trades, 1)
	assert.Equal(t, day1, res.Trades[0].Date)
	assert.Equal(t, 1, res.Metrics.TotalTrades)
	assert.Positive(t, res.Metrics.TotalPnL)
	assert.Equal(t, 100.0, res.Metrics.WinRatePct)

	assert.Equal(t, candles[0].Time, res.Start)
	assert.Equal(t, candles[len(candles)-1].Time, res.End)
}

func TestRunLedgerSortedByEntryTime(t *testing.T) {
	t.Parallel()

	day1 := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	at := func(d time.Time, hh, mm int, o, h, l, c float64) market.Candle {
		return market.Candle{
			Open: o, High: h, Low: l, Close: c,
			Time: d.Add(time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute),
		}
	}

	candles := market.Series{
		// day 1: LONG stop-out then reversal -> two trades
		at(day1, 0, 15, 100, 101.5, 99.9, 101.2),
		at(day1, 0, 20, 101.2, 101.3, 100.0, 100.2),
		at(day1, 0, 25, 100.2, 100.6, 100.0, 100.4),
		// day 2: single LONG force-closed
		at(day2, 0, 15, 100, 101.5, 99.9, 101.2),
		at(day2, 0, 20, 101.2, 101.8, 101.0, 101.6),
	}

	res, err := Run(candles, Config{Pct: 0.01, StopPct: 0.005, MaxTrades: 2, Window: runWindow(t)})
	require.NoError(t, err)
	require.Len(t, res.Trades, 3)

	for i := 1; i < len(res.Trades); i++ {
		prev, cur := res.Trades[i-1], res.Trades[i]
		assert.False(t, cur.Date.Before(prev.Date))
		if cur.Date.Equal(prev.Date) {
			assert.False(t, cur.EntryTime.Before(prev.EntryTime))
		}
	}

	assert.Equal(t, 3, res.Metrics.TotalTrades)
}

// Days whose filtered session is empty are skipped, never traded.
func TestRunSkipsDaysOutsideWindow(t *testing.T) {
	t.Parallel()

	day1 := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	candles := market.Series{
		{Open: 100, High: 105, Low: 95, Close: 102, Time: day1.Add(2 * time.Minute)}, // before 00:15
		{Open: 102, High: 106, Low: 96, Close: 103, Time: day1.Add(5 * time.Minute)},
	}

	res, err := Run(candles, Config{Pct: 0.005, Window: runWindow(t)})
	require.NoError(t, err)
	assert.Zero(t, res.Sessions)
	assert.Empty(t, res.Trades)
}
