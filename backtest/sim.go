// Package backtest simulates an intraday opening-breakout strategy over
// historical candles and aggregates the resulting trades.
package backtest

import (
	"fmt"
	"time"

	"github.com/rustyeddy/breakout/pkg/id"
	"github.com/rustyeddy/breakout/session"
)

// Side: +1 long, -1 short
type Side int8

const (
	Long  Side = +1
	Short Side = -1
)

func (s Side) String() string {
	if s == Short {
		return "SHORT"
	}
	return "LONG"
}

// Opposite returns the reverse direction.
func (s Side) Opposite() Side {
	return -s
}

// Config holds the strategy parameters.
type Config struct {
	// Pct is the trigger distance from the session open as a fraction
	// (0.005 = 0.5%).
	Pct float64

	// StopPct is the stop distance from the entry as a fraction.
	// Zero means use Pct.
	StopPct float64

	// MaxTrades caps trades per session: 1 for the plain strategy, 2 to
	// allow one reversal trade after a stop-out. Zero means 1.
	MaxTrades int

	// Window is the trading-hours window applied to each day.
	Window session.Window
}

// stopPct resolves the StopPct default.
func (c Config) stopPct() float64 {
	if c.StopPct == 0 {
		return c.Pct
	}
	return c.StopPct
}

func (c Config) maxTrades() int {
	if c.MaxTrades == 0 {
		return 1
	}
	return c.MaxTrades
}

// Validate checks the parameters are usable.
func (c Config) Validate() error {
	if c.Pct <= 0 {
		return fmt.Errorf("pct must be positive, got %g", c.Pct)
	}
	if c.StopPct < 0 {
		return fmt.Errorf("stop pct must not be negative, got %g", c.StopPct)
	}
	if n := c.maxTrades(); n < 1 || n > 2 {
		return fmt.Errorf("max trades must be 1 or 2, got %d", n)
	}
	if c.Window.End < c.Window.Start {
		return fmt.Errorf("window end %s before start %s", c.Window.End, c.Window.Start)
	}
	return nil
}

// Trade records one simulated position. Immutable once emitted.
type Trade struct {
	ID        string
	Date      time.Time // session calendar day
	Side      Side
	Entry     float64
	Exit      float64
	PnL       float64 // signed, price units: Side * (Exit - Entry)
	StopHit   bool    // false means force-closed at session end
	EntryTime time.Time
	ExitTime  time.Time
}

// SimulateSession runs the breakout rule over one session and returns
// zero, one or two trades in entry order.
func SimulateSession(s session.Session, cfg Config) []Trade {
	if len(s.Candles) == 0 {
		return nil
	}

	dayOpen := s.Candles[0].Open
	longTrigger := dayOpen * (1 + cfg.Pct)
	shortTrigger := dayOpen * (1 - cfg.Pct)
	slPct := cfg.stopPct()

	// First touch wins the entry. A candle spanning both triggers
	// resolves LONG by evaluation order.
	entryIdx := -1
	var side Side
	for i, c := range s.Candles {
		if c.High >= longTrigger {
			side = Long
			entryIdx = i
			break
		} else if c.Low <= shortTrigger {
			side = Short
			entryIdx = i
			break
		}
	}
	if entryIdx == -1 {
		return nil
	}

	entry := longTrigger
	if side == Short {
		entry = shortTrigger
	}

	trades := make([]Trade, 0, cfg.maxTrades())

	first := manage(s, entryIdx, side, entry, s.Candles[entryIdx].Time, slPct)
	trades = append(trades, first.Trade)

	// One reversal trade, only after a genuine stop-out. The cap is a
	// counter: a stopped-out reversal never spawns a third trade.
	if first.StopHit && len(trades) < cfg.maxTrades() {
		rev := manage(s, first.exitIdx, side.Opposite(), first.Exit, first.ExitTime, slPct)
		trades = append(trades, rev.Trade)
	}

	return trades
}

// managed pairs a Trade with the index of its exit candle so a reversal
// can resume the scan from the right bar.
type managed struct {
	Trade
	exitIdx int
}

// manage opens a position at entry on the entryIdx candle and scans the
// following candles for a stop touch. Equality counts as a touch. With
// no touch before session end the trade force-closes at the last
// candle's close.
func manage(s session.Session, entryIdx int, side Side, entry float64, entryTime time.Time, slPct float64) managed {
	stop := entry * (1 - float64(side)*slPct)

	exit := 0.0
	exitIdx := -1
	stopHit := false
	var exitTime time.Time

	for i := entryIdx + 1; i < len(s.Candles); i++ {
		c := s.Candles[i]
		if side == Long && c.Low <= stop {
			exit, exitIdx, exitTime, stopHit = stop, i, c.Time, true
			break
		}
		if side == Short && c.High >= stop {
			exit, exitIdx, exitTime, stopHit = stop, i, c.Time, true
			break
		}
	}

	if exitIdx == -1 {
		last := len(s.Candles) - 1
		exit, exitIdx, exitTime = s.Candles[last].Close, last, s.Candles[last].Time
	}

	return managed{
		Trade: Trade{
			ID:        id.New(),
			Date:      s.Date,
			Side:      side,
			Entry:     entry,
			Exit:      exit,
			PnL:       float64(side) * (exit - entry),
			StopHit:   stopHit,
			EntryTime: entryTime,
			ExitTime:  exitTime,
		},
		exitIdx: exitIdx,
	}
}
