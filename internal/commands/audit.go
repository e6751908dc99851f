package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/afrgen-dev/afrgen/internal/audit"
	"github.com/afrgen-dev/afrgen/internal/export"
)

func newAuditCommand() *cobra.Command {
	var dir string
	var format string
	var outPath string

	cmd := &cobra.Command{
		Use:   "audit <trial-balance-file>",
		Short: "Build the audit trail tying each row to its statement line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := readTrialBalance(args[0], format)
			if err != nil {
				return err
			}

			store, err := loadStore(dir)
			if err != nil {
				return err
			}

			trail := audit.BuildTrail(rows, store.Table())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Records: %d (%d mapped, %d unmapped)\n",
				trail.TotalRecords, trail.MappedRecords, trail.UnmappedRecords)

			if outPath == "" {
				return nil
			}
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating audit file: %w", err)
			}
			defer f.Close()

			if err := export.WriteAuditCSV(f, trail); err != nil {
				return err
			}
			fmt.Fprintf(out, "Wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")
	cmd.Flags().StringVar(&format, "format", "", "trial balance format (csv or tsv)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the audit trail CSV here")

	return cmd
}
