package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stepback",
	Short: "Step-back balance management for all-in trading sessions",
	Long: `Stepback manages a trading balance ladder: every trade commits the whole
balance, a win grows it by a fixed percentage, and a loss steps it back to
the exact level it held before the last win.

It provides tools for:
  - Replaying recorded trade outcomes through a session
  - Journaling outcomes and ladder moves to CSV or SQLite
  - Computing per-trade profit targets and exact step-back stop losses
  - Lot-floored position sizing from the full balance

Complete documentation is available at https://github.com/rustyeddy/stepback`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
