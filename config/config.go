package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rustyeddy/stepback/market"
	"gopkg.in/yaml.v3"
)

// Config represents the complete session configuration
type Config struct {
	Account  AccountConfig  `json:"account" yaml:"account"`
	Strategy StrategyConfig `json:"strategy" yaml:"strategy"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
}

// AccountConfig contains account initialization parameters
type AccountConfig struct {
	ID       string  `json:"id" yaml:"id"`
	Currency string  `json:"currency" yaml:"currency"`
	Balance  float64 `json:"balance" yaml:"balance"`
}

// StrategyConfig contains step-back strategy parameters
type StrategyConfig struct {
	ProfitPercent float64 `json:"profit_percent" yaml:"profit_percent"`
	Instrument    string  `json:"instrument" yaml:"instrument"`

	// Optional sizing overrides; zero means use the instrument defaults.
	LotSize  float64 `json:"lot_size,omitempty" yaml:"lot_size,omitempty"`
	MinUnits float64 `json:"min_units,omitempty" yaml:"min_units,omitempty"`
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type         string `json:"type" yaml:"type"` // "csv" or "sqlite"
	OutcomesFile string `json:"outcomes_file,omitempty" yaml:"outcomes_file,omitempty"`
	LadderFile   string `json:"ladder_file,omitempty" yaml:"ladder_file,omitempty"`
	DBPath       string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.Balance <= 0 {
		return fmt.Errorf("account.balance must be positive")
	}
	if c.Strategy.ProfitPercent <= 0 || c.Strategy.ProfitPercent > 100 {
		return fmt.Errorf("strategy.profit_percent must be between 0 and 100")
	}
	if c.Strategy.Instrument == "" {
		return fmt.Errorf("strategy.instrument is required")
	}
	if _, ok := market.Instruments[c.Strategy.Instrument]; !ok {
		return fmt.Errorf("unknown instrument: %s", c.Strategy.Instrument)
	}
	if c.Strategy.LotSize < 0 || c.Strategy.MinUnits < 0 {
		return fmt.Errorf("strategy.lot_size and strategy.min_units must not be negative")
	}
	if c.Journal.Type != "csv" && c.Journal.Type != "sqlite" {
		return fmt.Errorf("journal.type must be 'csv' or 'sqlite'")
	}
	if c.Journal.Type == "csv" && (c.Journal.OutcomesFile == "" || c.Journal.LadderFile == "") {
		return fmt.Errorf("journal outcomes_file and ladder_file required for CSV type")
	}
	if c.Journal.Type == "sqlite" && c.Journal.DBPath == "" {
		return fmt.Errorf("journal db_path required for SQLite type")
	}
	return nil
}

// Sizing resolves the effective lot size and minimum units, preferring
// explicit overrides and falling back to the instrument table.
func (c *Config) Sizing() (lotSize, minUnits float64) {
	meta := market.Instruments[c.Strategy.Instrument]
	lotSize = meta.LotSize
	minUnits = meta.MinimumUnits

	if c.Strategy.LotSize > 0 {
		lotSize = c.Strategy.LotSize
	}
	if c.Strategy.MinUnits > 0 {
		minUnits = c.Strategy.MinUnits
	}
	return lotSize, minUnits
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			ID:       "STEP-001",
			Currency: "USD",
			Balance:  100,
		},
		Strategy: StrategyConfig{
			ProfitPercent: 30,
			Instrument:    "EUR_USD",
		},
		Journal: JournalConfig{
			Type:         "csv",
			OutcomesFile: "./outcomes.csv",
			LadderFile:   "./ladder.csv",
		},
	}
}
