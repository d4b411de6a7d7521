// Package session partitions a candle series into per-day trading
// sessions restricted to a time-of-day window.
package session

import (
	"time"

	"github.com/rustyeddy/breakout/market"
)

// Session is the ordered run of candles for one calendar day, already
// restricted to the trading window. Sessions share the backing array of
// the source series and must not be mutated.
type Session struct {
	Date    time.Time // midnight of the session's calendar day
	Candles market.Series
}

// Segment splits a time-sorted series into calendar-day sessions and
// filters each day to the window. Days whose filtered session is empty
// are skipped. The input is expected sorted by time; day boundaries are
// found with a single forward scan, no hashing.
func Segment(candles market.Series, w Window) []Session {
	var out []Session

	i := 0
	for i < len(candles) {
		day := dateOf(candles[i].Time)

		// find the end of this day's contiguous run
		j := i + 1
		for j < len(candles) && dateOf(candles[j].Time).Equal(day) {
			j++
		}

		if s, ok := trim(candles[i:j], w); ok {
			out = append(out, Session{Date: day, Candles: s})
		}
		i = j
	}

	return out
}

// trim subslices a single day's candles to the window. In-window candles
// form one contiguous run because the day is sorted by time.
func trim(day market.Series, w Window) (market.Series, bool) {
	lo := 0
	for lo < len(day) && !w.Contains(day[lo].Time) {
		lo++
	}
	hi := len(day)
	for hi > lo && !w.Contains(day[hi-1].Time) {
		hi--
	}
	if lo == hi {
		return nil, false
	}
	return day[lo:hi], true
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
