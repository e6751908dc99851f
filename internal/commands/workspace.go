package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/afrgen-dev/afrgen/internal/config"
	"github.com/afrgen-dev/afrgen/internal/mapping"
	"github.com/afrgen-dev/afrgen/internal/model"
	"github.com/afrgen-dev/afrgen/internal/statement"
	"github.com/afrgen-dev/afrgen/internal/trialbalance"
)

// configFile is the workspace configuration name.
const configFile = "afr.yaml"

// readTrialBalance parses a trial balance file, picking the reader from the
// file extension unless format overrides it.
func readTrialBalance(path, format string) ([]model.TrialBalanceRow, error) {
	if format == "" {
		format = trialbalance.FormatForFile(path)
	}
	parser := trialbalance.DefaultRegistry().Get(format)
	if parser == nil {
		return nil, fmt.Errorf("unknown trial balance format %q", format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trial balance: %w", err)
	}
	defer f.Close()

	rows, err := parser.Parse(f)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("trial balance %s has no rows", path)
	}
	return rows, nil
}

// loadStore reads the workspace mapping table.
func loadStore(dir string) (*mapping.Store, error) {
	return mapping.Load(dir)
}

// loadBalances reads beginning balances from afr.yaml, falling back to the
// standing defaults when the workspace has no config.
func loadBalances(dir string) (statement.Balances, error) {
	path := filepath.Join(dir, configFile)
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return statement.DefaultBalances(), nil
		}
		return statement.Balances{}, err
	}
	return cfg.BeginningBalances(), nil
}
