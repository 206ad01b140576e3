package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestCSV(t *testing.T) (*CSVJournal, string, string) {
	t.Helper()

	dir := t.TempDir()
	outcomesPath := filepath.Join(dir, "outcomes.csv")
	ladderPath := filepath.Join(dir, "ladder.csv")

	j, err := NewCSV(outcomesPath, ladderPath)
	assert.NoError(t, err)

	return j, outcomesPath, ladderPath
}

func TestCSVJournalHeaders(t *testing.T) {
	t.Parallel()

	j, outcomesPath, ladderPath := newTestCSV(t)
	assert.NoError(t, j.Close())

	outcomesData, err := os.ReadFile(outcomesPath)
	assert.NoError(t, err)
	ladderData, err := os.ReadFile(ladderPath)
	assert.NoError(t, err)

	outcomesHeader, err := csv.NewReader(strings.NewReader(string(outcomesData))).Read()
	assert.NoError(t, err)

	ladderHeader, err := csv.NewReader(strings.NewReader(string(ladderData))).Read()
	assert.NoError(t, err)

	wantOutcomes := []string{"trade_id", "instrument", "sequence", "outcome", "price", "units", "balance_before", "balance_after", "profit_target", "stop_loss_pct", "stop_loss_amt", "step_before", "step_after", "time"}
	assert.Equal(t, wantOutcomes, outcomesHeader)

	wantLadder := []string{"time", "balance", "step", "trade_count", "total_return_pct"}
	assert.Equal(t, wantLadder, ladderHeader)
}

func TestCSVJournalRecordOutcome(t *testing.T) {
	t.Parallel()

	j, outcomesPath, _ := newTestCSV(t)

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	err := j.RecordOutcome(OutcomeRecord{
		TradeID:       "T1",
		Instrument:    "EUR_USD",
		Sequence:      1,
		Outcome:       "loss",
		Price:         1.0850,
		Units:         92000,
		BalanceBefore: 130.00,
		BalanceAfter:  100.00,
		ProfitTarget:  39.00,
		StopLossPct:   23.08,
		StopLossAmt:   30.00,
		StepBefore:    2,
		StepAfter:     1,
		Time:          ts,
	})
	assert.NoError(t, err)
	assert.NoError(t, j.Close())

	data, err := os.ReadFile(outcomesPath)
	assert.NoError(t, err)

	reader := csv.NewReader(strings.NewReader(string(data)))
	_, err = reader.Read() // header
	assert.NoError(t, err)
	row, err := reader.Read()
	assert.NoError(t, err)

	assert.Equal(t, "T1", row[0])
	assert.Equal(t, "EUR_USD", row[1])
	assert.Equal(t, "1", row[2])
	assert.Equal(t, "loss", row[3])
	assert.Equal(t, "1.085000", row[4])
	assert.Equal(t, "92000.000000", row[5])
	assert.Equal(t, "130.000000", row[6])
	assert.Equal(t, "100.000000", row[7])
	assert.Equal(t, "2", row[11])
	assert.Equal(t, "1", row[12])
	assert.Equal(t, ts.Format(time.RFC3339), row[13])
}

func TestCSVJournalRecordLadder(t *testing.T) {
	t.Parallel()

	j, _, ladderPath := newTestCSV(t)

	ts := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	err := j.RecordLadder(LadderSnapshot{
		Time:           ts,
		Balance:        169.00,
		Step:           3,
		TradeCount:     2,
		TotalReturnPct: 69.00,
	})
	assert.NoError(t, err)
	assert.NoError(t, j.Close())

	data, err := os.ReadFile(ladderPath)
	assert.NoError(t, err)

	reader := csv.NewReader(strings.NewReader(string(data)))
	_, err = reader.Read() // header
	assert.NoError(t, err)
	row, err := reader.Read()
	assert.NoError(t, err)

	assert.Equal(t, ts.Format(time.RFC3339), row[0])
	assert.Equal(t, "169.000000", row[1])
	assert.Equal(t, "3", row[2])
	assert.Equal(t, "2", row[3])
	assert.Equal(t, "69.000000", row[4])
}
