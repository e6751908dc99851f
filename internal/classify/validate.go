package classify

import (
	"fmt"
	"sort"
	"strings"

	"github.com/afrgen-dev/afrgen/internal/acctcode"
	"github.com/afrgen-dev/afrgen/internal/model"
)

// maxReported caps how many offending account codes a report lists.
const maxReported = 10

// Report summarizes mapping coverage ahead of statement generation.
// Warnings never block generation.
type Report struct {
	Valid                  bool
	UnmappedAccounts       []string
	InvalidAccounts        []string
	TotalUnmapped          int
	TotalInvalid           int
	MappedCategories       []model.GASBCategory
	Warnings               []string
	HasEssentialCategories bool
}

// essentialGroups are the category groups a usable statement set needs at
// least one of, checked in order.
var essentialGroups = []struct {
	name       string
	categories []model.GASBCategory
}{
	{"assets", []model.GASBCategory{model.GASBCurrentAssets, model.GASBCapitalAssets}},
	{"liabilities", []model.GASBCategory{model.GASBCurrentLiabilities, model.GASBLongTermLiabilities}},
	{"net_position", []model.GASBCategory{model.GASBNetInvestmentCapital, model.GASBRestrictedNet, model.GASBUnrestrictedNet}},
	{"revenues", []model.GASBCategory{model.GASBProgramRevenues, model.GASBGeneralRevenues}},
	{"expenses", []model.GASBCategory{model.GASBProgramExpenses, model.GASBGeneralExpenses}},
}

// ValidateMapping checks every entry's account code format and GASB
// assignment, and whether the mapping covers the essential category groups.
func ValidateMapping(mapping map[string]model.MappingEntry) Report {
	codes := make([]string, 0, len(mapping))
	for code := range mapping {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	categorySeen := make(map[model.GASBCategory]bool)
	var unmapped, invalid []string

	for _, code := range codes {
		if err := acctcode.Validate(code); err != nil {
			invalid = append(invalid, code)
			continue
		}

		entry := mapping[code]
		if entry.GASBCategory == "" || entry.GASBCategory == model.GASBUnknown {
			unmapped = append(unmapped, code)
			continue
		}
		categorySeen[entry.GASBCategory] = true
	}

	categories := make([]model.GASBCategory, 0, len(categorySeen))
	for cat := range categorySeen {
		categories = append(categories, cat)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	var warnings []string
	for _, group := range essentialGroups {
		found := false
		for _, cat := range group.categories {
			if categorySeen[cat] {
				found = true
				break
			}
		}
		if !found {
			warnings = append(warnings, fmt.Sprintf("No %s categories mapped", strings.ReplaceAll(group.name, "_", " ")))
		}
	}

	return Report{
		Valid:                  len(unmapped) == 0 && len(invalid) == 0,
		UnmappedAccounts:       cap10(unmapped),
		InvalidAccounts:        cap10(invalid),
		TotalUnmapped:          len(unmapped),
		TotalInvalid:           len(invalid),
		MappedCategories:       categories,
		Warnings:               warnings,
		HasEssentialCategories: len(warnings) == 0,
	}
}

func cap10(codes []string) []string {
	if len(codes) > maxReported {
		return codes[:maxReported]
	}
	return codes
}
