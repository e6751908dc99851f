// Package classify maps TEA account codes to TEA object, GASB statement,
// and governmental fund categories. Resolution is two-phase: an exact
// lookup against the static category tables, then ordered prefix rules that
// guarantee total coverage for codes the tables do not enumerate.
package classify

import (
	"fmt"
	"strings"

	"github.com/afrgen-dev/afrgen/internal/acctcode"
	"github.com/afrgen-dev/afrgen/internal/model"
)

// Classification is the full category assignment for one account code.
type Classification struct {
	TEACategory  model.TEACategory
	GASBCategory model.GASBCategory
	FundCategory model.FundCategory
}

// Classify resolves all three categories for an account code. It never
// fails: malformed codes degrade to the Unknown/other defaults.
func Classify(code string) Classification {
	return Classification{
		TEACategory:  TEACategory(code),
		GASBCategory: GASBCategory(code),
		FundCategory: FundCategory(code),
	}
}

// TEACategory derives the coarse TEA category from the first digit of the
// object code. Codes shorter than 9 characters are Unknown.
func TEACategory(code string) model.TEACategory {
	if len(code) < acctcode.MinLen {
		return model.TEAUnknown
	}
	if cat, ok := teaObjectCategories[code[5]]; ok {
		return cat
	}
	return model.TEAUnknown
}

// prefixRule assigns a category to object codes matching any of its two-digit
// prefixes.
type prefixRule struct {
	prefixes []string
	category model.GASBCategory
}

// fallbackBranch covers one leading digit of the object code. Default is an
// explicit catch-all arm: any code under this leading digit that matches no
// finer rule still lands in a named category, never nowhere.
type fallbackBranch struct {
	lead    string
	rules   []prefixRule
	Default model.GASBCategory
}

var gasbFallback = []fallbackBranch{
	{
		lead: "1",
		rules: []prefixRule{
			{prefixes: []string{"11", "12", "13", "14"}, category: model.GASBCurrentAssets},
			{prefixes: []string{"15"}, category: model.GASBCapitalAssets},
			{prefixes: []string{"17"}, category: model.GASBDeferredOutflows},
		},
		Default: model.GASBCurrentAssets,
	},
	{
		lead: "2",
		rules: []prefixRule{
			{prefixes: []string{"21", "22", "23"}, category: model.GASBCurrentLiabilities},
			{prefixes: []string{"24", "25"}, category: model.GASBLongTermLiabilities},
			{prefixes: []string{"26"}, category: model.GASBDeferredInflows},
		},
		Default: model.GASBCurrentLiabilities,
	},
	{
		lead: "3",
		rules: []prefixRule{
			{prefixes: []string{"32"}, category: model.GASBNetInvestmentCapital},
			{prefixes: []string{"33", "34", "35", "36", "37", "38"}, category: model.GASBRestrictedNet},
			{prefixes: []string{"39"}, category: model.GASBUnrestrictedNet},
		},
		Default: model.GASBRestrictedNet,
	},
	{
		lead: "5",
		rules: []prefixRule{
			{prefixes: []string{"51", "52", "53"}, category: model.GASBProgramRevenues},
		},
		Default: model.GASBGeneralRevenues,
	},
	{
		lead: "6",
		rules: []prefixRule{
			{prefixes: []string{"61", "62", "63", "64", "65"}, category: model.GASBProgramExpenses},
		},
		Default: model.GASBGeneralExpenses,
	},
	{lead: "7", Default: model.GASBOtherResources},
	{lead: "8", Default: model.GASBOtherUses},
}

// GASBCategory resolves the GASB statement category for an account code.
// Phase 1 is an exact lookup of the 4-digit object code against the static
// tables; phase 2 applies the ordered prefix rules.
func GASBCategory(code string) model.GASBCategory {
	object, ok := acctcode.ObjectCode(code)
	if !ok {
		return model.GASBUnknown
	}

	if cat, ok := gasbByObject[object]; ok {
		return cat
	}

	for _, branch := range gasbFallback {
		if !strings.HasPrefix(object, branch.lead) {
			continue
		}
		for _, rule := range branch.rules {
			for _, p := range rule.prefixes {
				if strings.HasPrefix(object, p) {
					return rule.category
				}
			}
		}
		return branch.Default
	}
	return model.GASBUnknown
}

// FundCategory resolves the governmental fund category from the 3-digit
// fund code, with a leading-digit fallback for codes outside the tables.
func FundCategory(code string) model.FundCategory {
	fund, ok := acctcode.FundCode(code)
	if !ok {
		return model.FundOtherGovernmental
	}

	if cat, ok := fundByCode[fund]; ok {
		return cat
	}

	switch fund[0] {
	case '1':
		return model.FundGeneral
	case '2':
		return model.FundSpecialRevenue
	case '5':
		return model.FundDebtService
	case '6':
		return model.FundCapitalProjects
	case '7':
		return model.FundPermanent
	default:
		return model.FundOtherGovernmental
	}
}

// DefaultMapping builds a mapping entry for every unique code using the
// classifier's assignments. Idempotent: the same code set always produces
// identical entries.
func DefaultMapping(codes []string) map[string]model.MappingEntry {
	mapping := make(map[string]model.MappingEntry, len(codes))
	for _, code := range codes {
		c := Classify(code)
		mapping[code] = model.MappingEntry{
			AccountCode:   code,
			Description:   fmt.Sprintf("Account %s", code),
			TEACategory:   c.TEACategory,
			GASBCategory:  c.GASBCategory,
			FundCategory:  c.FundCategory,
			StatementLine: "XX", // resolved during statement generation
		}
	}
	return mapping
}
