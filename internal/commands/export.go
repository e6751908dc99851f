package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afrgen-dev/afrgen/internal/export"
)

func newExportCommand() *cobra.Command {
	var dir string
	var format string
	var outPath string

	cmd := &cobra.Command{
		Use:   "export <trial-balance-file>",
		Short: "Export the four statements as an xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := generateStatements(dir, args[0], format)
			if err != nil {
				return err
			}
			if err := export.SaveWorkbook(outPath, set); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")
	cmd.Flags().StringVar(&format, "format", "", "trial balance format (csv or tsv)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "statements.xlsx", "output workbook path")

	return cmd
}
