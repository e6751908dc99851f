package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afrgen-dev/afrgen/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "afrgen",
		Short:   "TEA trial balance to GASB financial statements",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newClassifyCommand())
	rootCmd.AddCommand(newAutomapCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newAuditCommand())
	rootCmd.AddCommand(newExportCommand())

	return rootCmd
}
