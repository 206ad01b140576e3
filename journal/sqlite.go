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

func (j *SQLite) RecordOutcome(o OutcomeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO outcomes
		(trade_id, instrument, sequence, outcome, price, units, balance_before, balance_after,
		 profit_target, stop_loss_pct, stop_loss_amt, step_before, step_after, time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.TradeID, o.Instrument, o.Sequence, o.Outcome, o.Price, o.Units,
		o.BalanceBefore, o.BalanceAfter, o.ProfitTarget, o.StopLossPct,
		o.StopLossAmt, o.StepBefore, o.StepAfter, o.Time,
	)
	return err
}

func (j *SQLite) RecordLadder(s LadderSnapshot) error {
	_, err := j.db.Exec(`
		INSERT INTO ladder
		(time, balance, step, trade_count, total_return_pct)
		VALUES (?, ?, ?, ?, ?)`,
		s.Time, s.Balance, s.Step, s.TradeCount, s.TotalReturnPct,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
