// Package session drives a balance tracker through an ordered stream of
// completed trade outcomes, journaling the plan and result of each trade.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rustyeddy/stepback/balance"
	"github.com/rustyeddy/stepback/internal/id"
	"github.com/rustyeddy/stepback/journal"
)

// Outcome is one completed trade as reported by the execution side:
// the close price and whether the trade won.
type Outcome struct {
	Time       time.Time
	Instrument string
	Price      float64
	Win        bool
}

// Runner owns one tracker for one instrument and applies outcomes to it
// sequentially. It is not safe for concurrent use.
type Runner struct {
	tracker    *balance.Tracker
	journal    journal.Journal
	log        *zap.Logger
	instrument string

	applied int
	wins    int
	losses  int
	skipped int
}

func NewRunner(t *balance.Tracker, j journal.Journal, log *zap.Logger, instrument string) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		tracker:    t,
		journal:    j,
		log:        log,
		instrument: instrument,
	}
}

// Tracker exposes the owned tracker for pre-trade queries.
func (r *Runner) Tracker() *balance.Tracker { return r.tracker }

// Apply sizes the trade at the outcome's price, records the win or loss on
// the tracker, and journals both. A non-positive price means the trade could
// never have been placed: it is logged, counted as skipped, and the tracker
// is left untouched.
func (r *Runner) Apply(o Outcome) error {
	if o.Instrument != "" && o.Instrument != r.instrument {
		return fmt.Errorf("outcome for %q on a %q session", o.Instrument, r.instrument)
	}

	price := decimal.NewFromFloat(o.Price)
	units, err := r.tracker.PositionSize(price)
	if err != nil {
		if errors.Is(err, balance.ErrInvalidPrice) {
			r.skipped++
			r.log.Warn("skipping outcome: no valid price",
				zap.Float64("price", o.Price),
				zap.Time("time", o.Time))
			return nil
		}
		return err
	}

	before := r.tracker.Stats()
	target := r.tracker.ProfitTarget()
	stopPct := r.tracker.StopLossPct()
	stopAmt := r.tracker.StopLossAmount()

	outcome := "loss"
	if o.Win {
		outcome = "win"
		r.wins++
		r.tracker.RecordProfit()
	} else {
		r.losses++
		r.tracker.RecordLoss()
	}
	after := r.tracker.Stats()
	r.applied++

	tradeID := id.New()
	r.log.Info("outcome applied",
		zap.String("trade_id", tradeID),
		zap.String("outcome", outcome),
		zap.String("balance", after.CurrentBalance.StringFixed(2)),
		zap.Int("step", after.Step))

	rec := journal.OutcomeRecord{
		TradeID:       tradeID,
		Instrument:    r.instrument,
		Sequence:      after.TradeCount,
		Outcome:       outcome,
		Price:         o.Price,
		Units:         units.InexactFloat64(),
		BalanceBefore: before.CurrentBalance.InexactFloat64(),
		BalanceAfter:  after.CurrentBalance.InexactFloat64(),
		ProfitTarget:  target.InexactFloat64(),
		StopLossPct:   stopPct.InexactFloat64(),
		StopLossAmt:   stopAmt.InexactFloat64(),
		StepBefore:    before.Step,
		StepAfter:     after.Step,
		Time:          o.Time,
	}
	if err := r.journal.RecordOutcome(rec); err != nil {
		return fmt.Errorf("record outcome: %w", err)
	}

	snap := journal.LadderSnapshot{
		Time:           o.Time,
		Balance:        after.CurrentBalance.InexactFloat64(),
		Step:           after.Step,
		TradeCount:     after.TradeCount,
		TotalReturnPct: after.TotalReturnPct.InexactFloat64(),
	}
	if err := r.journal.RecordLadder(snap); err != nil {
		return fmt.Errorf("record ladder: %w", err)
	}

	return nil
}

// Run applies every outcome in order and returns the session summary.
func (r *Runner) Run(outcomes []Outcome) (Summary, error) {
	start := r.tracker.Stats()

	peakBalance := start.CurrentBalance
	peakStep := start.Step

	for i, o := range outcomes {
		if err := r.Apply(o); err != nil {
			return Summary{}, fmt.Errorf("outcome %d: %w", i+1, err)
		}

		st := r.tracker.Stats()
		if st.CurrentBalance.GreaterThan(peakBalance) {
			peakBalance = st.CurrentBalance
		}
		if st.Step > peakStep {
			peakStep = st.Step
		}
	}

	end := r.tracker.Stats()

	return Summary{
		Instrument:     r.instrument,
		Trades:         r.applied,
		Wins:           r.wins,
		Losses:         r.losses,
		Skipped:        r.skipped,
		StartBalance:   start.CurrentBalance,
		EndBalance:     end.CurrentBalance,
		PeakBalance:    peakBalance,
		PeakStep:       peakStep,
		FinalStep:      end.Step,
		TotalReturnPct: end.TotalReturnPct,
	}, nil
}
