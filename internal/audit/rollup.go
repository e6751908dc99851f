package audit

import (
	"strings"

	"github.com/afrgen-dev/afrgen/internal/model"
)

// rollupRule marks an object code range whose balances are folded into a
// coarser statement line. Itemized codes are exempt.
type rollupRule struct {
	prefix      string
	itemized    []string
	description string
}

var rollupRules = []rollupRule{
	{prefix: "11", description: "Rolled up into Cash and Cash Equivalents"},
	{prefix: "12", itemized: []string{"1225", "1240", "1267"}, description: "Rolled up into Other Receivables (Net)"},
	{prefix: "15", itemized: []string{"1510", "1520", "1530", "1580"}, description: "Rolled up into Buildings and Improvements, Net"},
	{prefix: "21", itemized: []string{"2110", "2140", "2165", "2180", "2300"}, description: "Rolled up into Accounts Payable"},
	{prefix: "25", itemized: []string{"2501", "2502", "2540", "2545"}, description: "Rolled up into Due in More Than One Year"},
	{prefix: "38", itemized: []string{"3820", "3850"}, description: "Rolled up into State and Federal Programs"},
}

// Rollup reports whether an object code's balance is folded into a coarser
// line, and the line it folds into. Unmapped accounts never roll up.
func Rollup(gasb model.GASBCategory, objectCode string) (bool, string) {
	if gasb == model.GASBUnmapped {
		return false, ""
	}
	for _, rule := range rollupRules {
		if !strings.HasPrefix(objectCode, rule.prefix) {
			continue
		}
		for _, code := range rule.itemized {
			if objectCode == code {
				return false, ""
			}
		}
		return true, rule.description
	}
	return false, ""
}
