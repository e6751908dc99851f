package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afrgen-dev/afrgen/internal/classify"
)

func newAutomapCommand() *cobra.Command {
	var dir string
	var format string
	var force bool

	cmd := &cobra.Command{
		Use:   "automap <trial-balance-file>",
		Short: "Generate default category mappings for every account code",
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

			codes := make([]string, 0, len(rows))
			for _, row := range rows {
				codes = append(codes, row.AccountCode)
			}

			added := 0
			for code, entry := range classify.DefaultMapping(codes) {
				if _, exists := store.Get(code); exists && !force {
					continue
				}
				store.Put(entry)
				added++
			}

			if err := store.Save(dir); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Mapped %d accounts (%d total)\n", added, store.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")
	cmd.Flags().StringVar(&format, "format", "", "trial balance format (csv or tsv)")
	cmd.Flags().BoolVar(&force, "force", false, "replace existing mappings")

	return cmd
}
