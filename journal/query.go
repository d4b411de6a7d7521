package journal

import (
	"database/sql"
	"fmt"
	"time"
)

const tradeColumns = `trade_id, run_id, date, type, entry, exit, pnl, stop_hit, entry_time, exit_time`

// GetTrade returns a single trade record by ID.
func (j *SQLite) GetTrade(tradeID string) (TradeRecord, error) {
	row := j.db.QueryRow(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE trade_id = ?`, tradeID)

	rec, err := scanTrade(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return TradeRecord{}, fmt.Errorf("trade %q not found", tradeID)
		}
		return TradeRecord{}, err
	}
	return rec, nil
}

// ListTradesByRun returns a run's trades ordered by entry time.
func (j *SQLite) ListTradesByRun(runID string) ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE run_id = ?
		ORDER BY entry_time ASC, trade_id ASC`, runID)
	if err != nil {
		return nil, err
	}
	return collectTrades(rows)
}

// ListTradesEnteredBetween returns trades whose entry_time is within [start, end).
func (j *SQLite) ListTradesEnteredBetween(start, end time.Time) ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE entry_time >= ? AND entry_time < ?
		ORDER BY entry_time ASC, trade_id ASC`, start, end)
	if err != nil {
		return nil, err
	}
	return collectTrades(rows)
}

// GetRun returns a run summary by ID.
func (j *SQLite) GetRun(runID string) (RunRecord, error) {
	var rec RunRecord

	row := j.db.QueryRow(`
		SELECT run_id, created, dataset, pct, stop_pct, max_trades, start_time, end_time,
		       period_start, period_end, total_pnl, max_drawdown, trades, win_rate_pct, avg_pnl
		FROM runs
		WHERE run_id = ?`, runID)

	err := row.Scan(
		&rec.RunID,
		&rec.Created,
		&rec.Dataset,
		&rec.Pct,
		&rec.StopPct,
		&rec.MaxTrades,
		&rec.StartTime,
		&rec.EndTime,
		&rec.Start,
		&rec.End,
		&rec.TotalPnL,
		&rec.MaxDrawdown,
		&rec.Trades,
		&rec.WinRatePct,
		&rec.AvgPnL,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return RunRecord{}, fmt.Errorf("run %q not found", runID)
		}
		return RunRecord{}, err
	}
	return rec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrade(row rowScanner) (TradeRecord, error) {
	var rec TradeRecord
	err := row.Scan(
		&rec.TradeID,
		&rec.RunID,
		&rec.Date,
		&rec.Type,
		&rec.Entry,
		&rec.Exit,
		&rec.PnL,
		&rec.StopHit,
		&rec.EntryTime,
		&rec.ExitTime,
	)
	return rec, err
}

func collectTrades(rows *sql.Rows) ([]TradeRecord, error) {
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		rec, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
