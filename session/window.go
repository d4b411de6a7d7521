package session

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a clock time expressed as seconds since midnight.
type TimeOfDay int

// ParseTimeOfDay parses "H:MM", "HH:MM" or "HH:MM:SS" clock strings, so
// "0:15" and "00:15" are the same time.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("bad time of day %q", s)
	}

	var hms [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("bad time of day %q: %w", s, err)
		}
		hms[i] = v
	}

	h, m, sec := hms[0], hms[1], hms[2]
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("time of day %q out of range", s)
	}
	return TimeOfDay(h*3600 + m*60 + sec), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/3600, int(t)%3600/60)
}

// At returns t's clock time from the timestamp ts.
func At(ts time.Time) TimeOfDay {
	h, m, s := ts.Clock()
	return TimeOfDay(h*3600 + m*60 + s)
}

// Window is a trading-hours window within a calendar day. Both bounds
// are inclusive.
type Window struct {
	Start TimeOfDay
	End   TimeOfDay
}

// ParseWindow builds a Window from two clock strings.
func ParseWindow(start, end string) (Window, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return Window{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return Window{}, err
	}
	if e < s {
		return Window{}, fmt.Errorf("window end %s before start %s", end, start)
	}
	return Window{Start: s, End: e}, nil
}

// Contains reports whether the timestamp's clock time falls inside the
// window, bounds included.
func (w Window) Contains(ts time.Time) bool {
	tod := At(ts)
	return tod >= w.Start && tod <= w.End
}
