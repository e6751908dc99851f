package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/afrgen-dev/afrgen/internal/statement"
)

func newGenerateCommand() *cobra.Command {
	var dir string
	var format string
	var outPath string

	cmd := &cobra.Command{
		Use:   "generate <trial-balance-file>",
		Short: "Generate the four financial statements as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := generateStatements(dir, args[0], format)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(set, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding statements: %w", err)
			}

			if outPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("writing statements: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")
	cmd.Flags().StringVar(&format, "format", "", "trial balance format (csv or tsv)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	return cmd
}

// generateStatements runs the full pipeline: parse rows, load mappings and
// balances, build the statement set.
func generateStatements(dir, tbPath, format string) (statement.Set, error) {
	rows, err := readTrialBalance(tbPath, format)
	if err != nil {
		return statement.Set{}, err
	}

	store, err := loadStore(dir)
	if err != nil {
		return statement.Set{}, err
	}
	if store.Len() == 0 {
		return statement.Set{}, fmt.Errorf("no mappings found, run automap first")
	}

	balances, err := loadBalances(dir)
	if err != nil {
		return statement.Set{}, err
	}

	return statement.Generate(rows, store.Table(), balances), nil
}
