// Package journal records completed trades and ladder moves to CSV or SQLite.
package journal

import "time"

// OutcomeRecord is one completed trade as seen by the balance tracker:
// the pre-trade plan (units, target, stop) plus the recorded result.
type OutcomeRecord struct {
	TradeID       string
	Instrument    string
	Sequence      int    // trade count after this outcome was recorded
	Outcome       string // "win" or "loss"
	Price         float64
	Units         float64
	BalanceBefore float64
	BalanceAfter  float64
	ProfitTarget  float64
	StopLossPct   float64
	StopLossAmt   float64
	StepBefore    int
	StepAfter     int
	Time          time.Time
}

// LadderSnapshot is the tracker state after an outcome has been applied.
type LadderSnapshot struct {
	Time           time.Time
	Balance        float64
	Step           int
	TradeCount     int
	TotalReturnPct float64
}

type Journal interface {
	RecordOutcome(OutcomeRecord) error
	RecordLadder(LadderSnapshot) error
	Close() error
}
