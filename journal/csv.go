package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

// CSVJournal writes the trade ledger to a single CSV file. Run
// summaries are not persisted by the CSV journal; use SQLite for those.
type CSVJournal struct {
	trades *csv.Writer
	tf     *os.File
}

// TradeHeader is the column layout of the exported trade table.
var TradeHeader = []string{
	"trade_id", "run_id", "date", "type", "entry", "exit", "pnl", "stop_hit", "entry_time", "exit_time",
}

func NewCSV(tradesPath string) (*CSVJournal, error) {
	tf, err := os.Create(tradesPath)
	if err != nil {
		return nil, err
	}

	tw := csv.NewWriter(tf)
	if err := tw.Write(TradeHeader); err != nil {
		return nil, err
	}
	tw.Flush()
	if err := tw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{trades: tw, tf: tf}, nil
}

func (j *CSVJournal) RecordTrade(t TradeRecord) error {
	err := j.trades.Write([]string{
		t.TradeID,
		t.RunID,
		t.Date.Format("2006-01-02"),
		t.Type,
		f(t.Entry),
		f(t.Exit),
		f(t.PnL),
		strconv.FormatBool(t.StopHit),
		t.EntryTime.Format(time.RFC3339),
		t.ExitTime.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	j.trades.Flush()
	return j.trades.Error()
}

func (j *CSVJournal) RecordRun(RunRecord) error {
	return nil
}

func (j *CSVJournal) Close() error {
	j.trades.Flush()
	if err := j.trades.Error(); err != nil {
		return err
	}
	return j.tf.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
