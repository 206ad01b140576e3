package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	outcomes *csv.Writer
	ladder   *csv.Writer
	of, lf   *os.File
}

func NewCSV(outcomesPath, ladderPath string) (*CSVJournal, error) {
	of, err := os.Create(outcomesPath)
	if err != nil {
		return nil, err
	}
	lf, err := os.Create(ladderPath)
	if err != nil {
		of.Close()
		return nil, err
	}

	ow := csv.NewWriter(of)
	lw := csv.NewWriter(lf)

	if err := ow.Write([]string{"trade_id", "instrument", "sequence", "outcome", "price", "units", "balance_before", "balance_after", "profit_target", "stop_loss_pct", "stop_loss_amt", "step_before", "step_after", "time"}); err != nil {
		return nil, err
	}
	if err := lw.Write([]string{"time", "balance", "step", "trade_count", "total_return_pct"}); err != nil {
		return nil, err
	}

	ow.Flush()
	if err := ow.Error(); err != nil {
		return nil, err
	}
	lw.Flush()
	if err := lw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{ow, lw, of, lf}, nil
}

func (j *CSVJournal) RecordOutcome(o OutcomeRecord) error {
	err := j.outcomes.Write([]string{
		o.TradeID,
		o.Instrument,
		strconv.Itoa(o.Sequence),
		o.Outcome,
		f(o.Price),
		f(o.Units),
		f(o.BalanceBefore),
		f(o.BalanceAfter),
		f(o.ProfitTarget),
		f(o.StopLossPct),
		f(o.StopLossAmt),
		strconv.Itoa(o.StepBefore),
		strconv.Itoa(o.StepAfter),
		o.Time.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	j.outcomes.Flush()
	return j.outcomes.Error()
}

func (j *CSVJournal) RecordLadder(s LadderSnapshot) error {
	err := j.ladder.Write([]string{
		s.Time.Format(time.RFC3339),
		f(s.Balance),
		strconv.Itoa(s.Step),
		strconv.Itoa(s.TradeCount),
		f(s.TotalReturnPct),
	})
	if err != nil {
		return err
	}

	j.ladder.Flush()
	return j.ladder.Error()
}

func (j *CSVJournal) Close() error {
	j.outcomes.Flush()
	if err := j.outcomes.Error(); err != nil {
		return err
	}
	j.ladder.Flush()
	if err := j.ladder.Error(); err != nil {
		return err
	}

	if err := j.of.Close(); err != nil {
		return err
	}
	if err := j.lf.Close(); err != nil {
		return err
	}
	return nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
