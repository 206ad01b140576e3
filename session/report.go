package session

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// Summary is a lightweight recap of a completed session.
type Summary struct {
	Instrument string

	Trades  int
	Wins    int
	Losses  int
	Skipped int

	StartBalance decimal.Decimal
	EndBalance   decimal.Decimal
	PeakBalance  decimal.Decimal

	PeakStep  int
	FinalStep int

	TotalReturnPct decimal.Decimal
}

// WinRate returns the percentage of applied trades that won.
func (s Summary) WinRate() float64 {
	if s.Trades == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Trades) * 100
}

func PrintSummary(w io.Writer, s Summary) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Session Result")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Instrument:    %s\n", s.Instrument)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trade Statistics")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Trades:        %d\n", s.Trades)
	fmt.Fprintf(w, "Wins:          %d\n", s.Wins)
	fmt.Fprintf(w, "Losses:        %d\n", s.Losses)
	if s.Skipped > 0 {
		fmt.Fprintf(w, "Skipped:       %d\n", s.Skipped)
	}
	fmt.Fprintf(w, "Win Rate:      %.2f%%\n", s.WinRate())

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Balance Ladder")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Start Balance: %s\n", s.StartBalance.StringFixed(2))
	fmt.Fprintf(w, "End Balance:   %s\n", s.EndBalance.StringFixed(2))
	fmt.Fprintf(w, "Peak Balance:  %s\n", s.PeakBalance.StringFixed(2))
	fmt.Fprintf(w, "Peak Step:     %d\n", s.PeakStep)
	fmt.Fprintf(w, "Final Step:    %d\n", s.FinalStep)
	fmt.Fprintf(w, "Return:        %s%%\n", s.TotalReturnPct.StringFixed(2))
}
