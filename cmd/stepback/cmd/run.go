package cmd

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/stepback/balance"
	"github.com/rustyeddy/stepback/config"
	"github.com/rustyeddy/stepback/journal"
	"github.com/rustyeddy/stepback/session"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay recorded trade outcomes through a session",
	Long: `Run a step-back session over a CSV of recorded trade outcomes.

Each outcome row carries a close time, instrument, market price, and whether
the trade won. The session sizes each trade from the full current balance,
applies the outcome to the ladder, and journals every move.

Example:
  stepback run -f session.yaml -t outcomes.csv`,
	RunE: runRun,
}

var (
	runConfigPath   string
	runOutcomesPath string
	runVerbose      bool
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "f", "", "path to config file (YAML or JSON) (required)")
	runCmd.Flags().StringVarP(&runOutcomesPath, "outcomes", "t", "", "path to outcomes CSV (time,instrument,price,outcome) (required)")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "log each applied outcome")
	runCmd.MarkFlagRequired("config")
	runCmd.MarkFlagRequired("outcomes")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(runConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	fmt.Printf("Running session with config: %s\n", runConfigPath)
	fmt.Printf("  Account: %s (Balance: $%.2f %s)\n", cfg.Account.ID, cfg.Account.Balance, cfg.Account.Currency)
	fmt.Printf("  Strategy: %s (Profit: %.1f%% per win)\n", cfg.Strategy.Instrument, cfg.Strategy.ProfitPercent)
	fmt.Println()

	var j journal.Journal
	if cfg.Journal.Type == "csv" {
		j, err = journal.NewCSV(cfg.Journal.OutcomesFile, cfg.Journal.LadderFile)
	} else {
		j, err = journal.NewSQLite(cfg.Journal.DBPath)
	}
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}
	defer j.Close()

	lotSize, minUnits := cfg.Sizing()
	tracker, err := balance.New(balance.Config{
		InitialBalance: decimal.NewFromFloat(cfg.Account.Balance),
		ProfitPct:      decimal.NewFromFloat(cfg.Strategy.ProfitPercent),
		LotSize:        decimal.NewFromFloat(lotSize),
		MinUnits:       decimal.NewFromFloat(minUnits),
	})
	if err != nil {
		return fmt.Errorf("create tracker: %w", err)
	}

	log := zap.NewNop()
	if runVerbose {
		log, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer log.Sync()
	}

	outcomes, err := session.ReadOutcomesCSV(runOutcomesPath)
	if err != nil {
		return fmt.Errorf("read outcomes: %w", err)
	}
	if len(outcomes) == 0 {
		return fmt.Errorf("no outcomes in %s", runOutcomesPath)
	}

	runner := session.NewRunner(tracker, j, log, cfg.Strategy.Instrument)
	summary, err := runner.Run(outcomes)
	if err != nil {
		return fmt.Errorf("run session: %w", err)
	}

	fmt.Println()
	session.PrintSummary(os.Stdout, summary)

	if cfg.Journal.Type == "csv" {
		fmt.Printf("\nResults saved to:\n  - %s\n  - %s\n", cfg.Journal.OutcomesFile, cfg.Journal.LadderFile)
	} else {
		fmt.Printf("\nResults saved to: %s\n", cfg.Journal.DBPath)
	}

	return nil
}
