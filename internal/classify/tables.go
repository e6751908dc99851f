package classify

import (
	"fmt"

	"github.com/afrgen-dev/afrgen/internal/model"
)

// teaObjectCategories keys the coarse TEA category off the first digit of
// the object code.
var teaObjectCategories = map[byte]model.TEACategory{
	'1': model.TEAAssets,
	'2': model.TEALiabilities,
	'3': model.TEAFundBalances,
	'4': model.TEAClearing,
	'5': model.TEARevenues,
	'6': model.TEAExpenditures,
	'7': model.TEAOtherResources,
	'8': model.TEAOtherUses,
}

// gasbDef is one GASB category with its allow-list of 4-digit object codes.
// The lists follow the TEA numbering blocks; they are authoritative
// documentation but deliberately not exhaustive, so the prefix rules below
// must back them up.
type gasbDef struct {
	Category    model.GASBCategory
	Description string
	Codes       []string
}

// gasbTable is ordered: membership tests iterate in declaration order and
// the first match wins.
var gasbTable = []gasbDef{
	{
		Category:    model.GASBCurrentAssets,
		Description: "Current Assets",
		Codes: concat(
			objectRange(1110, 1190, 10), // cash and equivalents
			[]string{"1210", "1220", "1225", "1230", "1240", "1250", "1260", "1267", "1270", "1280", "1290"}, // receivables
			objectRange(1300, 1390, 10), // other current assets
			objectRange(1410, 1490, 10), // prepaid items
		),
	},
	{
		Category:    model.GASBCapitalAssets,
		Description: "Capital Assets",
		Codes:       objectRange(1510, 1590, 10),
	},
	{
		Category:    model.GASBDeferredOutflows,
		Description: "Deferred Outflows of Resources",
		Codes:       objectRange(1700, 1709, 1),
	},
	{
		Category:    model.GASBCurrentLiabilities,
		Description: "Current Liabilities",
		Codes: concat(
			[]string{"2110", "2120", "2130", "2140", "2150", "2160", "2165", "2170", "2180", "2190"}, // payables
			objectRange(2210, 2290, 10), // accrued liabilities
			objectRange(2300, 2390, 10), // other current liabilities
		),
	},
	{
		Category:    model.GASBLongTermLiabilities,
		Description: "Long-term Liabilities",
		Codes: concat(
			objectRange(2410, 2490, 10), // long-term debt
			[]string{"2501", "2502"},
			objectRange(2510, 2540, 10),
			[]string{"2545"},
			objectRange(2550, 2590, 10),
		),
	},
	{
		Category:    model.GASBDeferredInflows,
		Description: "Deferred Inflows of Resources",
		Codes:       objectRange(2600, 2609, 1),
	},
	{
		Category:    model.GASBNetInvestmentCapital,
		Description: "Net Investment in Capital Assets",
		Codes:       objectRange(3200, 3290, 10),
	},
	{
		Category:    model.GASBRestrictedNet,
		Description: "Restricted Net Position",
		Codes:       objectRange(3300, 3890, 10),
	},
	{
		Category:    model.GASBUnrestrictedNet,
		Description: "Unrestricted Net Position",
		Codes:       objectRange(3900, 3990, 10),
	},
	{
		Category:    model.GASBProgramRevenues,
		Description: "Program Revenues",
		Codes:       objectRange(5100, 5390, 10),
	},
	{
		Category:    model.GASBGeneralRevenues,
		Description: "General Revenues",
		Codes:       objectRange(5400, 5990, 10),
	},
	{
		Category:    model.GASBProgramExpenses,
		Description: "Program Expenses",
		Codes:       objectRange(6100, 6590, 10),
	},
	{
		Category:    model.GASBGeneralExpenses,
		Description: "General Expenses",
		Codes:       objectRange(6600, 6990, 10),
	},
	{
		Category:    model.GASBOtherResources,
		Description: "Other Resources & Non-operating Revenues",
		Codes: concat(
			objectRange(7000, 7890, 10),
			[]string{"7900", "7910", "7915"},
			objectRange(7920, 7990, 10),
		),
	},
	{
		Category:    model.GASBOtherUses,
		Description: "Other Uses & Non-operating Expenses",
		Codes:       objectRange(8000, 8990, 10),
	},
	{
		Category:    model.GASBClearingAccounts,
		Description: "Clearing Accounts",
		Codes:       objectRange(4000, 4990, 10),
	},
}

// gasbByObject is the phase-1 exact-match index. Built in declaration
// order; the lists are disjoint by construction, but first write wins as
// the tie-break.
var gasbByObject = buildGASBIndex()

func buildGASBIndex() map[string]model.GASBCategory {
	index := make(map[string]model.GASBCategory)
	for _, def := range gasbTable {
		for _, code := range def.Codes {
			if _, ok := index[code]; !ok {
				index[code] = def.Category
			}
		}
	}
	return index
}

// fundDef is one fund category with its allow-list of 3-digit fund codes.
type fundDef struct {
	Category    model.FundCategory
	Description string
	Codes       []string
}

var fundTable = []fundDef{
	{model.FundGeneral, "General Fund", fundRange(100, 199)},
	{model.FundSpecialRevenue, "Special Revenue Funds", fundRange(200, 299)},
	{model.FundEnterprise, "Enterprise Funds", fundRange(300, 399)},
	{model.FundInternalService, "Internal Service Funds", fundRange(400, 499)},
	{model.FundDebtService, "Debt Service Funds", fundRange(500, 599)},
	{model.FundCapitalProjects, "Capital Projects Funds", fundRange(600, 699)},
	{model.FundPermanent, "Permanent Funds", fundRange(700, 799)},
	{model.FundFiduciary, "Fiduciary Funds", fundRange(800, 899)},
}

var fundByCode = buildFundIndex()

func buildFundIndex() map[string]model.FundCategory {
	index := make(map[string]model.FundCategory)
	for _, def := range fundTable {
		for _, code := range def.Codes {
			if _, ok := index[code]; !ok {
				index[code] = def.Category
			}
		}
	}
	return index
}

// GASBDescription returns the display description for a GASB category, or
// the category name itself when it has no table entry.
func GASBDescription(category model.GASBCategory) string {
	for _, def := range gasbTable {
		if def.Category == category {
			return def.Description
		}
	}
	return string(category)
}

func objectRange(start, end, step int) []string {
	var codes []string
	for c := start; c <= end; c += step {
		codes = append(codes, fmt.Sprintf("%04d", c))
	}
	return codes
}

func fundRange(start, end int) []string {
	var codes []string
	for c := start; c <= end; c++ {
		codes = append(codes, fmt.Sprintf("%03d", c))
	}
	return codes
}

func concat(lists ...[]string) []string {
	var all []string
	for _, l := range lists {
		all = append(all, l...)
	}
	return all
}
