// Package balance implements step-back balance management: the whole balance
// is committed to every trade, a win grows it by a fixed percentage, and a
// loss steps it back to the exact level it held before the last win.
package balance

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidConfig indicates the tracker cannot be constructed from the
	// given parameters. Fatal: the caller must not trade.
	ErrInvalidConfig = errors.New("invalid tracker config")

	// ErrInvalidPrice indicates a non-positive market price was passed to
	// PositionSize. Recoverable: skip sizing this cycle and wait for a
	// valid price.
	ErrInvalidPrice = errors.New("invalid price")
)

// Config are the immutable parameters of a tracker.
type Config struct {
	InitialBalance decimal.Decimal // account currency, > 0
	ProfitPct      decimal.Decimal // percent per winning trade, e.g. 30 = 30%

	// Position sizing. LotSize is the minimum tradeable increment
	// (1000 for standard FX micro lots); MinUnits is the smallest order
	// the venue accepts. Zero values mean 1 and 0 respectively.
	LotSize  decimal.Decimal
	MinUnits decimal.Decimal
}

// Tracker owns the current balance and the ladder of previously occupied
// balance levels. It is not safe for concurrent use; each decision loop
// owns exactly one tracker.
type Tracker struct {
	initial   decimal.Decimal
	profitPct decimal.Decimal
	lotSize   decimal.Decimal
	minUnits  decimal.Decimal

	// history holds every balance level occupied so far, oldest first.
	// The last element is always the current balance.
	history []decimal.Decimal
	current decimal.Decimal
	trades  int
}

// Stats is an immutable snapshot of tracker state for reporting.
type Stats struct {
	CurrentBalance decimal.Decimal
	InitialBalance decimal.Decimal
	History        []decimal.Decimal
	TradeCount     int
	Step           int // ladder height, 1 at the floor
	TotalReturnPct decimal.Decimal
}

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// New validates cfg and returns a tracker sitting at the floor.
func New(cfg Config) (*Tracker, error) {
	if !cfg.InitialBalance.IsPositive() {
		return nil, fmt.Errorf("%w: initial balance must be positive, got %s",
			ErrInvalidConfig, cfg.InitialBalance)
	}
	if !cfg.ProfitPct.IsPositive() {
		return nil, fmt.Errorf("%w: profit percentage must be positive, got %s",
			ErrInvalidConfig, cfg.ProfitPct)
	}
	if cfg.LotSize.IsNegative() || cfg.MinUnits.IsNegative() {
		return nil, fmt.Errorf("%w: lot size and min units must not be negative",
			ErrInvalidConfig)
	}

	lot := cfg.LotSize
	if lot.IsZero() {
		lot = one
	}

	return &Tracker{
		initial:   cfg.InitialBalance,
		profitPct: cfg.ProfitPct,
		lotSize:   lot,
		minUnits:  cfg.MinUnits,
		history:   []decimal.Decimal{cfg.InitialBalance},
		current:   cfg.InitialBalance,
	}, nil
}

// CurrentBalance returns the balance committed to the next trade.
func (t *Tracker) CurrentBalance() decimal.Decimal { return t.current }

// ProfitPct returns the configured per-win growth percentage.
func (t *Tracker) ProfitPct() decimal.Decimal { return t.profitPct }

// ProfitTarget returns the dollar amount the next trade must gain to step up.
func (t *Tracker) ProfitTarget() decimal.Decimal {
	return t.current.Mul(t.profitPct).Div(hundred)
}

// StopLossPct returns the loss percentage that reverts the balance exactly to
// the previous ladder level. At the floor there is no previous level, so the
// fixed ProfitPct is used instead.
func (t *Tracker) StopLossPct() decimal.Decimal {
	if len(t.history) == 1 {
		return t.profitPct
	}
	prev := t.history[len(t.history)-2]
	return t.current.Sub(prev).Div(t.current).Mul(hundred).Round(2)
}

// StopLossAmount returns the dollar loss corresponding to StopLossPct.
func (t *Tracker) StopLossAmount() decimal.Decimal {
	return t.current.Mul(t.StopLossPct()).Div(hundred)
}

// PositionSize converts the current balance into units at the given market
// price, floored to the lot increment. Orders below MinUnits are bumped up
// to it. Returns ErrInvalidPrice when price is not positive.
func (t *Tracker) PositionSize(price decimal.Decimal) (decimal.Decimal, error) {
	if !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: got %s", ErrInvalidPrice, price)
	}

	units := t.current.Div(price).Div(t.lotSize).Floor().Mul(t.lotSize)
	if units.LessThan(t.minUnits) {
		units = t.minUnits
	}
	return units, nil
}

// RecordProfit registers a winning trade: the balance grows by ProfitPct
// (rounded to cents, half up) and the new level is pushed onto the ladder.
// Returns the new balance.
func (t *Tracker) RecordProfit() decimal.Decimal {
	t.trades++
	grown := t.current.Mul(one.Add(t.profitPct.Div(hundred))).Round(2)
	t.history = append(t.history, grown)
	t.current = grown
	return t.current
}

// RecordLoss registers a losing trade: the top ladder level is popped and
// the balance reverts to the level below it. At the floor the balance stays
// at the initial balance and the ladder is left alone. Returns the resulting
// balance.
func (t *Tracker) RecordLoss() decimal.Decimal {
	t.trades++
	if len(t.history) > 1 {
		t.history = t.history[:len(t.history)-1]
		t.current = t.history[len(t.history)-1]
	} else {
		t.current = t.initial
	}
	return t.current
}

// Stats returns a snapshot of the tracker. The history slice is a copy.
func (t *Tracker) Stats() Stats {
	hist := make([]decimal.Decimal, len(t.history))
	copy(hist, t.history)

	ret := t.current.Sub(t.initial).Div(t.initial).Mul(hundred).Round(2)

	return Stats{
		CurrentBalance: t.current,
		InitialBalance: t.initial,
		History:        hist,
		TradeCount:     t.trades,
		Step:           len(t.history),
		TotalReturnPct: ret,
	}
}
