package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afrgen-dev/afrgen/internal/classify"
)

func newValidateCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check mapping coverage ahead of statement generation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(dir)
			if err != nil {
				return err
			}
			if store.Len() == 0 {
				return fmt.Errorf("no mappings found, run automap first")
			}

			report := classify.ValidateMapping(store.Table())
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Mappings: %d\n", store.Len())
			fmt.Fprintf(out, "Unmapped: %d\n", report.TotalUnmapped)
			for _, code := range report.UnmappedAccounts {
				fmt.Fprintf(out, "  %s\n", code)
			}
			fmt.Fprintf(out, "Invalid: %d\n", report.TotalInvalid)
			for _, code := range report.InvalidAccounts {
				fmt.Fprintf(out, "  %s\n", code)
			}
			for _, warning := range report.Warnings {
				fmt.Fprintf(out, "Warning: %s\n", warning)
			}

			if !report.Valid {
				return fmt.Errorf("mapping validation failed: %d unmapped, %d invalid",
					report.TotalUnmapped, report.TotalInvalid)
			}
			fmt.Fprintln(out, "Mapping is valid")
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")

	return cmd
}
