package journal

import (
	"database/sql"
	"fmt"
)

// SessionSummary aggregates a session's outcomes.
type SessionSummary struct {
	Trades       int
	Wins         int
	Losses       int
	StartBalance float64
	EndBalance   float64
	MaxStep      int
}

// GetOutcome returns a single outcome record by trade ID.
func (j *SQLite) GetOutcome(tradeID string) (OutcomeRecord, error) {
	var rec OutcomeRecord

	row := j.db.QueryRow(`
		SELECT trade_id, instrument, sequence, outcome, price, units, balance_before, balance_after,
		       profit_target, stop_loss_pct, stop_loss_amt, step_before, step_after, time
		FROM outcomes
		WHERE trade_id = ?`, tradeID)

	err := scanOutcome(row, &rec)
	if err != nil {
		if err == sql.ErrNoRows {
			return OutcomeRecord{}, fmt.Errorf("outcome %q not found", tradeID)
		}
		return OutcomeRecord{}, err
	}
	return rec, nil
}

// ListOutcomes returns all outcomes in trade order.
func (j *SQLite) ListOutcomes() ([]OutcomeRecord, error) {
	rows, err := j.db.Query(`
		SELECT trade_id, instrument, sequence, outcome, price, units, balance_before, balance_after,
		       profit_target, stop_loss_pct, stop_loss_amt, step_before, step_after, time
		FROM outcomes
		ORDER BY sequence ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OutcomeRecord
	for rows.Next() {
		var rec OutcomeRecord
		if err := scanOutcome(rows, &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Summary computes win/loss counts and the balance range of the session.
func (j *SQLite) Summary() (SessionSummary, error) {
	var s SessionSummary

	err := j.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN outcome = 'win' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN outcome = 'loss' THEN 1 ELSE 0 END), 0),
		       COALESCE(MAX(step_after), 0)
		FROM outcomes`).Scan(&s.Trades, &s.Wins, &s.Losses, &s.MaxStep)
	if err != nil {
		return SessionSummary{}, err
	}

	if s.Trades == 0 {
		return s, nil
	}

	err = j.db.QueryRow(`SELECT balance_before FROM outcomes ORDER BY sequence ASC LIMIT 1`).
		Scan(&s.StartBalance)
	if err != nil {
		return SessionSummary{}, err
	}
	err = j.db.QueryRow(`SELECT balance_after FROM outcomes ORDER BY sequence DESC LIMIT 1`).
		Scan(&s.EndBalance)
	if err != nil {
		return SessionSummary{}, err
	}

	return s, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOutcome(r rowScanner, rec *OutcomeRecord) error {
	return r.Scan(
		&rec.TradeID,
		&rec.Instrument,
		&rec.Sequence,
		&rec.Outcome,
		&rec.Price,
		&rec.Units,
		&rec.BalanceBefore,
		&rec.BalanceAfter,
		&rec.ProfitTarget,
		&rec.StopLossPct,
		&rec.StopLossAmt,
		&rec.StepBefore,
		&rec.StepAfter,
		&rec.Time,
	)
}
