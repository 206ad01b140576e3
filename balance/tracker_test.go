package balance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()

	tr, err := New(Config{
		InitialBalance: decimal.RequireFromString("100.00"),
		ProfitPct:      decimal.RequireFromString("30.0"),
	})
	assert.NoError(t, err)
	return tr
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"valid", Config{InitialBalance: d("100"), ProfitPct: d("30")}, true},
		{"zero balance", Config{InitialBalance: d("0"), ProfitPct: d("30")}, false},
		{"negative balance", Config{InitialBalance: d("-5"), ProfitPct: d("30")}, false},
		{"zero profit pct", Config{InitialBalance: d("100"), ProfitPct: d("0")}, false},
		{"negative profit pct", Config{InitialBalance: d("100"), ProfitPct: d("-1")}, false},
		{"negative lot size", Config{InitialBalance: d("100"), ProfitPct: d("30"), LotSize: d("-1000")}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tr, err := New(tt.cfg)
			if tt.ok {
				assert.NoError(t, err)
				assert.NotNil(t, tr)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Nil(t, tr)
		})
	}
}

func TestInitialState(t *testing.T) {
	t.Parallel()

	tr := newTestTracker(t)

	assert.True(t, tr.CurrentBalance().Equal(d("100.00")))
	assert.True(t, tr.ProfitTarget().Equal(d("30")))
	assert.True(t, tr.StopLossPct().Equal(d("30.0")))
	assert.True(t, tr.StopLossAmount().Equal(d("30")))

	st := tr.Stats()
	assert.Equal(t, 0, st.TradeCount)
	assert.Equal(t, 1, st.Step)
	assert.True(t, st.TotalReturnPct.IsZero())
}

func TestRecordProfitGrowsAndPushes(t *testing.T) {
	t.Parallel()

	tr := newTestTracker(t)

	got := tr.RecordProfit()
	assert.True(t, got.Equal(d("130.00")), "got %s", got)

	st := tr.Stats()
	assert.Equal(t, 2, st.Step)
	assert.True(t, st.History[0].Equal(d("100.00")))
	assert.True(t, st.History[1].Equal(d("130.00")))
	assert.True(t, tr.CurrentBalance().Equal(d("130.00")))
}

func TestSecondProfitCompounds(t *testing.T) {
	t.Parallel()

	tr := newTestTracker(t)
	tr.RecordProfit()

	got := tr.RecordProfit()
	assert.True(t, got.Equal(d("169.00")), "got %s", got)

	st := tr.Stats()
	assert.Equal(t, 3, st.Step)
	assert.True(t, st.History[2].Equal(d("169.00")))
}

func TestStopLossPctBeforeStepBack(t *testing.T) {
	t.Parallel()

	tr := newTestTracker(t)
	tr.RecordProfit() // 130.00
	tr.RecordProfit() // 169.00

	// (169 - 130) / 169 * 100 = 23.08 rounded half up
	assert.True(t, tr.StopLossPct().Equal(d("23.08")), "got %s", tr.StopLossPct())

	got := tr.RecordLoss()
	assert.True(t, got.Equal(d("130.00")))

	st := tr.Stats()
	assert.Equal(t, 2, st.Step)
}

func TestLossAtFloorStaysPut(t *testing.T) {
	t.Parallel()

	tr := newTestTracker(t)

	assert.True(t, tr.StopLossPct().Equal(d("30.0")))

	got := tr.RecordLoss()
	assert.True(t, got.Equal(d("100.00")))

	st := tr.Stats()
	assert.Equal(t, 1, st.Step)
	assert.Equal(t, 1, st.TradeCount)
	assert.True(t, st.History[0].Equal(d("100.00")))
}

func TestSixTradeSequence(t *testing.T) {
	t.Parallel()

	tr := newTestTracker(t)

	steps := []struct {
		win  bool
		want string
	}{
		{true, "130.00"},
		{true, "169.00"},
		{false, "130.00"},
		{true, "169.00"},
		{false, "130.00"},
		{false, "100.00"},
	}

	for i, s := range steps {
		var got decimal.Decimal
		if s.win {
			got = tr.RecordProfit()
		} else {
			got = tr.RecordLoss()
		}
		assert.True(t, got.Equal(d(s.want)), "trade %d: want %s got %s", i+1, s.want, got)
	}

	st := tr.Stats()
	assert.Equal(t, 1, st.Step)
	assert.Equal(t, 6, st.TradeCount)
	assert.True(t, st.CurrentBalance.Equal(d("100.00")))
	assert.True(t, st.TotalReturnPct.IsZero())
}

func TestWinLossRoundTrip(t *testing.T) {
	t.Parallel()

	tr := newTestTracker(t)

	// Climb a few levels first so the round trip runs above the floor.
	for i := 0; i < 4; i++ {
		before := tr.CurrentBalance()
		tr.RecordProfit()
		after := tr.RecordLoss()
		assert.True(t, after.Equal(before),
			"round trip at level %d: before %s after %s", i+1, before, after)
		tr.RecordProfit()
	}
}

func TestStopLossAmountMatchesStepBack(t *testing.T) {
	t.Parallel()

	tr := newTestTracker(t)
	tr.RecordProfit()
	tr.RecordProfit()

	// Losing exactly StopLossAmount lands within a cent of the previous level.
	loss := tr.StopLossAmount()
	landed := tr.CurrentBalance().Sub(loss)

	prev := tr.Stats().History[1]
	diff := landed.Sub(prev).Abs()
	assert.True(t, diff.LessThanOrEqual(d("0.01")),
		"landed %s, previous level %s", landed, prev)
}

func TestBalanceNeverBelowInitial(t *testing.T) {
	t.Parallel()

	tr := newTestTracker(t)

	seq := []bool{false, false, true, false, false, true, true, false, false, false, false}
	for _, win := range seq {
		if win {
			tr.RecordProfit()
		} else {
			tr.RecordLoss()
		}
		assert.True(t, tr.CurrentBalance().GreaterThanOrEqual(d("100.00")))
		assert.GreaterOrEqual(t, tr.Stats().Step, 1)
	}
	assert.Equal(t, len(seq), tr.Stats().TradeCount)
}

func TestCurrentEqualsTopOfLadder(t *testing.T) {
	t.Parallel()

	tr := newTestTracker(t)

	seq := []bool{true, true, true, false, true, false, false, true}
	for _, win := range seq {
		if win {
			tr.RecordProfit()
		} else {
			tr.RecordLoss()
		}
		st := tr.Stats()
		top := st.History[len(st.History)-1]
		assert.True(t, st.CurrentBalance.Equal(top),
			"current %s, top of ladder %s", st.CurrentBalance, top)
	}
}

func TestPositionSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		balance string
		lot     string
		min     string
		price   string
		want    string
	}{
		{"fx lot floor", "100000", "1000", "1000", "1.1000", "90000"},
		{"small balance hits min", "100.00", "1000", "1000", "1.1000", "1000"},
		{"unit lots", "100.00", "1", "0", "2.50", "40"},
		{"fractional remainder floored", "99999", "1000", "1000", "1.0000", "99000"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr, err := New(Config{
				InitialBalance: d(tt.balance),
				ProfitPct:      d("30"),
				LotSize:        d(tt.lot),
				MinUnits:       d(tt.min),
			})
			assert.NoError(t, err)

			units, err := tr.PositionSize(d(tt.price))
			assert.NoError(t, err)
			assert.True(t, units.Equal(d(tt.want)), "got %s", units)
		})
	}
}

func TestPositionSizeInvalidPrice(t *testing.T) {
	t.Parallel()

	tr := newTestTracker(t)

	for _, price := range []string{"0", "-1.1"} {
		_, err := tr.PositionSize(d(price))
		assert.ErrorIs(t, err, ErrInvalidPrice)
	}
}

func TestStatsHistoryIsACopy(t *testing.T) {
	t.Parallel()

	tr := newTestTracker(t)
	tr.RecordProfit()

	st := tr.Stats()
	st.History[0] = d("1.00")

	again := tr.Stats()
	assert.True(t, again.History[0].Equal(d("100.00")))
}

func TestTotalReturnPct(t *testing.T) {
	t.Parallel()

	tr := newTestTracker(t)
	tr.RecordProfit()
	tr.RecordProfit()

	// (169 - 100) / 100 * 100
	assert.True(t, tr.Stats().TotalReturnPct.Equal(d("69.00")),
		"got %s", tr.Stats().TotalReturnPct)
}
