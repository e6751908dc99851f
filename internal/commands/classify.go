package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afrgen-dev/afrgen/internal/acctcode"
	"github.com/afrgen-dev/afrgen/internal/classify"
)

func newClassifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <account-code>...",
		Short: "Show TEA, GASB, and fund categories for account codes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, code := range args {
				if err := acctcode.Validate(code); err != nil {
					return err
				}
				c := classify.Classify(code)
				segments := acctcode.Parse(code)
				fmt.Fprintf(out, "%s\n", code)
				fmt.Fprintf(out, "  fund=%s function=%s object=%s\n",
					segments.FundCode, segments.FunctionCode, segments.ObjectCode)
				fmt.Fprintf(out, "  tea=%s gasb=%s fund_category=%s\n",
					c.TEACategory, c.GASBCategory, c.FundCategory)
			}
			return nil
		},
	}
}
