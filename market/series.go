package market

import (
	"sort"
	"time"
)

// Series is a chronologically ordered run of candles for a single
// instrument at a fixed interval.
type Series []Candle

// Sort orders the series by candle time ascending (stable).
func (s Series) Sort() {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Time.Before(s[j].Time)
	})
}

// FilterRange returns a copy of the series restricted to the closed
// timestamp range [from, to]. Candles exactly on either bound are kept.
// A zero bound disables that side of the filter.
func (s Series) FilterRange(from, to time.Time) Series {
	out := make(Series, 0, len(s))
	for _, c := range s {
		if !from.IsZero() && c.Time.Before(from) {
			continue
		}
		if !to.IsZero() && c.Time.After(to) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Start returns the time of the first candle, or the zero time for an
// empty series.
func (s Series) Start() time.Time {
	if len(s) == 0 {
		return time.Time{}
	}
	return s[0].Time
}

// End returns the time of the last candle, or the zero time for an
// empty series.
func (s Series) End() time.Time {
	if len(s) == 0 {
		return time.Time{}
	}
	return s[len(s)-1].Time
}
