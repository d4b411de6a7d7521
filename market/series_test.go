package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seriesAt(times ...time.Time) Series {
	out := make(Series, len(times))
	for i, ts := range times {
		out[i] = Candle{Open: 1, High: 1, Low: 1, Close: 1, Time: ts}
	}
	return out
}

func TestSeriesSort(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	s := seriesAt(base.Add(10*time.Minute), base, base.Add(5*time.Minute))
	s.Sort()

	assert.Equal(t, base, s[0].Time)
	assert.Equal(t, base.Add(5*time.Minute), s[1].Time)
	assert.Equal(t, base.Add(10*time.Minute), s[2].Time)
}

func TestSeriesFilterRangeInclusive(t *testing.T) {
	t.Parallel()

	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)
	d3 := d1.AddDate(0, 0, 2)
	d4 := d1.AddDate(0, 0, 3)

	s := seriesAt(d1, d2, d3, d4)

	// both bounds are kept
	got := s.FilterRange(d2, d3)
	require.Len(t, got, 2)
	assert.Equal(t, d2, got[0].Time)
	assert.Equal(t, d3, got[1].Time)

	// zero bounds disable that side
	assert.Len(t, s.FilterRange(time.Time{}, d2), 2)
	assert.Len(t, s.FilterRange(d3, time.Time{}), 2)
	assert.Len(t, s.FilterRange(time.Time{}, time.Time{}), 4)

	// the original series is untouched
	assert.Len(t, s, 4)
}

func TestSeriesStartEnd(t *testing.T) {
	t.Parallel()

	var empty Series
	assert.True(t, empty.Start().IsZero())
	assert.True(t, empty.End().IsZero())

	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.Add(time.Hour)
	s := seriesAt(d1, d2)
	assert.Equal(t, d1, s.Start())
	assert.Equal(t, d2, s.End())
}
