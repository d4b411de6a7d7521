package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, run_id, date, type, entry, exit, pnl, stop_hit, entry_time, exit_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.TradeID, t.RunID, t.Date, t.Type, t.Entry,
		t.Exit, t.PnL, t.StopHit, t.EntryTime, t.ExitTime,
	)
	return err
}

func (j *SQLite) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, created, dataset, pct, stop_pct, max_trades, start_time, end_time,
		 period_start, period_end, total_pnl, max_drawdown, trades, win_rate_pct, avg_pnl)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Created, r.Dataset, r.Pct, r.StopPct, r.MaxTrades, r.StartTime, r.EndTime,
		r.Start, r.End, r.TotalPnL, r.MaxDrawdown, r.Trades, r.WinRatePct, r.AvgPnL,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
