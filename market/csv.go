package market

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

// Column names are matched case-insensitively. The time column may be
// named "time", "timestamp" or "date"; when none is present the first
// column is assumed to hold the timestamp.
var timeColumns = map[string]bool{"time": true, "timestamp": true, "date": true}

// Timestamp layouts accepted by the loader, tried in order.
var timeLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// LoadFile reads a candle CSV from path and returns a time-sorted Series.
// Files ending in .gz, .xz or .lzma are decompressed transparently
// (Dukascopy-style archives come lzma-compressed).
func LoadFile(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case ".xz":
		zr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("xz %s: %w", path, err)
		}
		r = zr
	case ".lzma":
		zr, err := lzma.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("lzma %s: %w", path, err)
		}
		r = zr
	}

	return LoadCSV(r)
}

// LoadCSV reads candle rows from r. The first row must be a header with
// open, high, low and close columns plus a time column (see timeColumns);
// an optional volume column is picked up when present.
func LoadCSV(r io.Reader) (Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var out Series
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if len(row) == 0 {
			continue
		}

		c, err := cols.parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, c)
	}

	out.Sort()
	return out, nil
}

// columnMap holds resolved column indices; -1 means absent.
type columnMap struct {
	time, open, high, low, close, volume int
}

func mapColumns(header []string) (columnMap, error) {
	cols := columnMap{time: -1, open: -1, high: -1, low: -1, close: -1, volume: -1}

	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "open":
			cols.open = i
		case "high":
			cols.high = i
		case "low":
			cols.low = i
		case "close":
			cols.close = i
		case "volume":
			cols.volume = i
		default:
			if timeColumns[strings.ToLower(strings.TrimSpace(name))] {
				cols.time = i
			}
		}
	}

	// No named time column: assume the first column is the timestamp,
	// unless it already mapped to a price column.
	if cols.time == -1 {
		if cols.open == 0 || cols.high == 0 || cols.low == 0 || cols.close == 0 {
			return cols, fmt.Errorf("no time column in header %v", header)
		}
		cols.time = 0
	}

	for name, idx := range map[string]int{"open": cols.open, "high": cols.high, "low": cols.low, "close": cols.close} {
		if idx == -1 {
			return cols, fmt.Errorf("missing %q column in header %v", name, header)
		}
	}
	return cols, nil
}

func (m columnMap) parseRow(row []string) (Candle, error) {
	need := m.close
	for _, idx := range []int{m.time, m.open, m.high, m.low} {
		if idx > need {
			need = idx
		}
	}
	if len(row) <= need {
		return Candle{}, fmt.Errorf("short row %v", row)
	}

	t, err := ParseTime(row[m.time])
	if err != nil {
		return Candle{}, err
	}

	c := Candle{Time: t}
	fields := []struct {
		dst *float64
		idx int
	}{
		{&c.Open, m.open},
		{&c.High, m.high},
		{&c.Low, m.low},
		{&c.Close, m.close},
	}
	for _, fl := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[fl.idx]), 64)
		if err != nil {
			return Candle{}, fmt.Errorf("bad price %q: %w", row[fl.idx], err)
		}
		*fl.dst = v
	}

	if m.volume != -1 && m.volume < len(row) {
		if v, err := strconv.ParseFloat(strings.TrimSpace(row[m.volume]), 64); err == nil {
			c.Volume = v
		}
	}

	return c, nil
}

// ParseTime parses a candle timestamp, trying each accepted layout.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("bad time %q", s)
}
