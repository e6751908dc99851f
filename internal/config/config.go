package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/afrgen-dev/afrgen/internal/statement"
)

// Config represents the top-level afr.yaml configuration.
type Config struct {
	District DistrictConfig `yaml:"district"`
	Balances BalancesConfig `yaml:"beginning_balances"`
}

// DistrictConfig identifies the reporting district.
type DistrictConfig struct {
	Name       string `yaml:"name"`
	FiscalYear int    `yaml:"fiscal_year"`
}

// BalancesConfig carries the prior-period figures the statements start
// from. Values are decimal strings.
type BalancesConfig struct {
	NetPosition   string `yaml:"net_position"`
	GeneralFund   string `yaml:"general_fund"`
	NonMajorFunds string `yaml:"non_major_funds"`
}

// Load reads an afr.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the standing beginning balances.
func Default(districtName string, fiscalYear int) *Config {
	defaults := statement.DefaultBalances()
	return &Config{
		District: DistrictConfig{
			Name:       districtName,
			FiscalYear: fiscalYear,
		},
		Balances: BalancesConfig{
			NetPosition:   defaults.NetPosition.String(),
			GeneralFund:   defaults.GeneralFund.String(),
			NonMajorFunds: defaults.NonMajorFunds.String(),
		},
	}
}

// BeginningBalances converts the configured balances, falling back to the
// defaults for any blank or malformed value.
func (c *Config) BeginningBalances() statement.Balances {
	defaults := statement.DefaultBalances()
	return statement.Balances{
		NetPosition:   parseBalance(c.Balances.NetPosition, defaults.NetPosition),
		GeneralFund:   parseBalance(c.Balances.GeneralFund, defaults.GeneralFund),
		NonMajorFunds: parseBalance(c.Balances.NonMajorFunds, defaults.NonMajorFunds),
	}
}

func parseBalance(raw string, fallback decimal.Decimal) decimal.Decimal {
	if raw == "" {
		return fallback
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return fallback
	}
	return v
}
