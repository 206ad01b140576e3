package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/stepback/balance"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run example ladder walkthroughs",
	Long: `Run scripted win/loss sequences to see how the balance ladder behaves.

Available demos:
  ladder  - Climb two steps, fall back to the floor
  sizing  - Position sizing from the full balance at different prices

Examples:
  stepback demo ladder
  stepback demo sizing`,
}

var demoLadderCmd = &cobra.Command{
	Use:   "ladder",
	Short: "Walk the ladder up and back down",
	Long: `Demonstrates the step-back rule over the sequence
Win, Win, Loss, Win, Loss, Loss starting from $100 at 30%.

Shows how:
  - Each win pushes a new level onto the ladder
  - The stop loss percentage shrinks as the ladder grows
  - Each loss steps back to the exact previous level
  - The floor never lets the balance drop below the start`,
	RunE: runDemoLadder,
}

var demoSizingCmd = &cobra.Command{
	Use:   "sizing",
	Short: "Show lot-floored position sizing",
	Long: `Demonstrates how the full balance converts to order units at
different market prices, floored to the lot increment with a minimum
order floor.`,
	RunE: runDemoSizing,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.AddCommand(demoLadderCmd)
	demoCmd.AddCommand(demoSizingCmd)
}

func runDemoLadder(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Ladder Demo ===")
	fmt.Println()

	tracker, err := balance.New(balance.Config{
		InitialBalance: decimal.RequireFromString("100.00"),
		ProfitPct:      decimal.RequireFromString("30.0"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Starting Balance: $%s (30%% per win)\n\n", tracker.CurrentBalance().StringFixed(2))

	sequence := []bool{true, true, false, true, false, false}
	for i, win := range sequence {
		target := tracker.ProfitTarget()
		stopPct := tracker.StopLossPct()
		stopAmt := tracker.StopLossAmount()

		label := "LOSS"
		if win {
			label = "WIN "
		}

		fmt.Printf("Trade %d (%s):\n", i+1, label)
		fmt.Printf("  Planned Target:  $%s\n", target.StringFixed(2))
		fmt.Printf("  Planned Stop:    $%s (%s%%)\n", stopAmt.StringFixed(2), stopPct.StringFixed(2))

		if win {
			tracker.RecordProfit()
		} else {
			tracker.RecordLoss()
		}

		st := tracker.Stats()
		fmt.Printf("  New Balance:     $%s (step %d)\n\n", st.CurrentBalance.StringFixed(2), st.Step)
	}

	st := tracker.Stats()
	fmt.Printf("Final Balance: $%s after %d trades\n", st.CurrentBalance.StringFixed(2), st.TradeCount)
	fmt.Printf("Total Return:  %s%%\n", st.TotalReturnPct.StringFixed(2))
	fmt.Println("\n✓ Three losses in a row land exactly back on the starting balance.")

	return nil
}

func runDemoSizing(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Sizing Demo ===")
	fmt.Println()

	tracker, err := balance.New(balance.Config{
		InitialBalance: decimal.RequireFromString("100000"),
		ProfitPct:      decimal.RequireFromString("30.0"),
		LotSize:        decimal.NewFromInt(1000),
		MinUnits:       decimal.NewFromInt(1000),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Balance: $%s, lot size 1000, minimum 1000 units\n\n", tracker.CurrentBalance().StringFixed(2))

	for _, price := range []string{"1.1000", "1.0850", "149.50"} {
		units, err := tracker.PositionSize(decimal.RequireFromString(price))
		if err != nil {
			return err
		}
		fmt.Printf("  Price %8s → %s units\n", price, units.StringFixed(0))
	}

	fmt.Println("\n✓ The whole balance is committed every trade; only the lot floor trims it.")

	return nil
}
