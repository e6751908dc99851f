package statement

import (
	"strings"
)

// lineDef declares a statement line once; templates, routing, and the audit
// trail's line resolver all reference the same definitions.
type lineDef struct {
	Code        string
	Description string
}

// Net position / funds balance line definitions.
var (
	lineCash                  = lineDef{"1110", "Cash and Cash Equivalents"}
	linePropertyTaxesRecv     = lineDef{"1225", "Property Taxes Receivable (Net)"}
	lineTaxesReceivable       = lineDef{"1225", "Taxes Receivable, Net"}
	lineDueFromOtherGovts     = lineDef{"1240", "Due from Other Governments"}
	lineDueFromFiduciary      = lineDef{"1267", "Due from Fiduciary"}
	lineDueFromOtherFunds     = lineDef{"1260", "Due from Other Funds"}
	lineOtherReceivablesNet   = lineDef{"1290", "Other Receivables (Net)"}
	lineOtherReceivables      = lineDef{"1290", "Other Receivables"}
	lineInventories           = lineDef{"1300", "Inventories"}
	lineUnrealizedExpenses    = lineDef{"1410", "Unrealized Expenses"}
	lineUnrealizedExpend      = lineDef{"1410", "Unrealized Expenditures"}
	lineLand                  = lineDef{"1510", "Land"}
	lineBuildings             = lineDef{"1520", "Buildings and Improvements, Net"}
	lineFurniture             = lineDef{"1530", "Furniture and Equipment, Net"}
	lineConstruction          = lineDef{"1580", "Construction in Progress"}
	lineTotalAssets           = lineDef{"1000", "Total Assets"}
	lineDeferredRefunding     = lineDef{"1701", "Deferred Charge for Refunding"}
	lineDeferredOutPensions   = lineDef{"1705", "Deferred Outflow Related to Pensions"}
	lineDeferredOutOPEB       = lineDef{"1706", "Deferred Outflow Related to OPEB"}
	lineTotalDeferredOut      = lineDef{"1700", "Total Deferred Outflows of Resources"}
	lineAccountsPayable       = lineDef{"2110", "Accounts Payable"}
	lineInterestPayable       = lineDef{"2140", "Interest Payable"}
	linePayrollDeductions     = lineDef{"2150", "Payroll Deductions and Withholdings"}
	lineAccruedWages          = lineDef{"2160", "Accrued Wages Payable"}
	lineAccruedLiabilities    = lineDef{"2165", "Accrued Liabilities"}
	lineDueToOtherFunds       = lineDef{"2170", "Due to Other Funds"}
	lineDueToOtherGovts       = lineDef{"2180", "Due to Other Governments"}
	lineUnearnedRevenue       = lineDef{"2300", "Unearned Revenue"}
	lineDueWithinOneYear      = lineDef{"2501", "Due Within One Year"}
	lineDueMoreThanOneYear    = lineDef{"2502", "Due in More Than One Year"}
	lineNetPensionLiability   = lineDef{"2540", "Net Pension Liability"}
	lineNetOPEBLiability      = lineDef{"2545", "Net OPEB Liability"}
	lineTotalLiabilities      = lineDef{"2000", "Total Liabilities"}
	lineUnavailablePropTax    = lineDef{"2601", "Unavailable Revenue - Property Taxes"}
	lineDeferredInPensions    = lineDef{"2605", "Deferred Inflow Related to Pensions"}
	lineDeferredInOPEB        = lineDef{"2606", "Deferred Inflow Related to OPEB"}
	lineTotalDeferredIn       = lineDef{"2600", "Total Deferred Inflows of Resources"}
	lineNetInvestmentCapital  = lineDef{"3200", "Net Investment in Capital Assets"}
	lineStateFederalPrograms  = lineDef{"3820", "State and Federal Programs"}
	lineDebtService           = lineDef{"3850", "Debt Service"}
	lineUnrestricted          = lineDef{"3900", "Unrestricted"}
	lineTotalNetPosition      = lineDef{"3000", "Total Net Position"}
	lineNonspendInventories   = lineDef{"3410", "Inventories"}
	lineNonspendPrepaid       = lineDef{"3430", "Prepaid Items"}
	lineFederalStateFunds     = lineDef{"3450", "Federal/State Funds Grant Restrictions"}
	lineRetirementLTDebt      = lineDef{"3480", "Retirement of Long-Term Debt"}
	lineOtherRestrictions     = lineDef{"3490", "Other Restrictions of Fund Balance"}
	lineCommittedConstruction = lineDef{"3510", "Construction"}
	lineOtherCommitted        = lineDef{"3545", "Other Committed Fund Balance"}
	lineOtherAssigned         = lineDef{"3590", "Other Assigned Fund Balance"}
	lineUnassigned            = lineDef{"3600", "Unassigned"}
	lineTotalFundBalances     = lineDef{"3000", "Total Fund Balances"}
	lineTotalLiabDefFund      = lineDef{"4000", "Total Liabilities, Deferred Inflow of Resources and Fund Balances"}
)

// Funds revenues/expenditures line definitions.
var (
	lineLocalIntermediate  = lineDef{"5700", "Local and Intermediate Sources"}
	lineStateProgram       = lineDef{"5800", "State Program Revenues"}
	lineFederalProgram     = lineDef{"5900", "Federal Program Revenues"}
	lineTotalRevenues      = lineDef{"5020", "Total Revenues"}
	lineTotalExpenditures  = lineDef{"6030", "Total Expenditures"}
	lineExcessDeficiency   = lineDef{"1100", "Excess (Deficiency) of Revenues Over (Under) Expenditures"}
	lineSaleProperty       = lineDef{"7912", "Sale of Real or Personal Property"}
	lineTransfersIn        = lineDef{"7915", "Transfers In"}
	linePremiumBond        = lineDef{"7916", "Premium on Bond Remarketing"}
	lineOtherResources     = lineDef{"7949", "Other Resources"}
	lineTransfersOut       = lineDef{"8911", "Transfers Out"}
	lineTotalOtherFin      = lineDef{"7080", "Total Other Financing Sources and (Uses)"}
	lineNetChange          = lineDef{"1200", "Net Change in Fund Balances"}
	lineFundBalancesBegin  = lineDef{"0100", "Fund Balances - Beginning"}
	lineFundBalancesEnding = lineDef{"3000", "Fund Balances - Ending"}
)

// Activities general revenue line definitions.
var (
	linePropertyTaxesGeneral = lineDef{"MT", "Property Taxes, Levied for General Purposes"}
	linePropertyTaxesDebt    = lineDef{"DT", "Property Taxes, Levied for Debt Service"}
	lineChapter313           = lineDef{"", "Chapter 313 Payments"}
	lineInvestmentEarnings   = lineDef{"IE", "Investment Earnings"}
	lineGrantsContributions  = lineDef{"GC", "Grants and Contributions Not Restricted to Specific Programs"}
	lineMiscellaneous        = lineDef{"MI", "Miscellaneous"}
	lineTotalGeneralRevenues = lineDef{"TR", "Total General Revenues and Transfers"}
	lineProgramRevenues      = lineDef{"PR", "Program Revenues"}
)

// programDef declares one governmental program, keyed by TEA function code.
// Principal on long-term debt appears only on the funds statement; the
// activities statement reports principal as a balance sheet matter.
type programDef struct {
	Key         string
	Function    string
	Description string
	FundsOnly   bool
}

var programDefs = []programDef{
	{Key: "instruction", Function: "11", Description: "Instruction"},
	{Key: "instructional_resources", Function: "12", Description: "Instructional Resources and Media Services"},
	{Key: "curriculum_staff_dev", Function: "13", Description: "Curriculum and Staff Development"},
	{Key: "instructional_leadership", Function: "21", Description: "Instructional Leadership"},
	{Key: "school_leadership", Function: "23", Description: "School Leadership"},
	{Key: "guidance_counseling", Function: "31", Description: "Guidance, Counseling, and Evaluation Services"},
	{Key: "social_work", Function: "32", Description: "Social Work Services"},
	{Key: "health_services", Function: "33", Description: "Health Services"},
	{Key: "student_transportation", Function: "34", Description: "Student Transportation"},
	{Key: "food_service", Function: "35", Description: "Food Service"},
	{Key: "cocurricular", Function: "36", Description: "Cocurricular/Extracurricular Activities"},
	{Key: "general_admin", Function: "41", Description: "General Administration"},
	{Key: "facilities_maintenance", Function: "51", Description: "Facilities Maintenance and Operations"},
	{Key: "security_monitoring", Function: "52", Description: "Security and Monitoring Services"},
	{Key: "data_processing", Function: "53", Description: "Data Processing Services"},
	{Key: "community_services", Function: "61", Description: "Community Services"},
	{Key: "principal_long_term_debt", Function: "71", Description: "Principal on Long-term Debt", FundsOnly: true},
	{Key: "interest_long_term_debt", Function: "72", Description: "Interest on Long-term Debt"},
	{Key: "bond_issuance_costs", Function: "73", Description: "Bond Issuance Costs and Fees"},
	{Key: "capital_outlay", Function: "81", Description: "Capital Outlay"},
	{Key: "shared_services", Function: "93", Description: "Payments Related to Shared Services Arrangements"},
	{Key: "other_intergovernmental", Function: "99", Description: "Other Intergovernmental Charges"},
}

// fundsDescriptionOverrides adjusts wording where the funds statement
// titles a program differently than the activities statement.
var fundsDescriptionOverrides = map[string]string{
	"shared_services": "Payments to Shared Service Arrangements",
}

// defaultProgramKey is the default bucket for expense rows whose function
// code matches no declared program.
const defaultProgramKey = "general_admin"

// programKeyForFunction resolves a function code to a program key.
// fundsStatement widens the lookup to funds-only programs.
func programKeyForFunction(function string, fundsStatement bool) string {
	for _, def := range programDefs {
		if def.FundsOnly && !fundsStatement {
			continue
		}
		if def.Function == function {
			return def.Key
		}
	}
	return defaultProgramKey
}

// netPositionRoute returns the net position leaf key for an object code, or
// "" when the statement carries no line for it. Every branch ends in an
// explicit default arm so that no amount within a declared range is dropped.
func netPositionRoute(object string) string {
	switch {
	case strings.HasPrefix(object, "11"):
		return "assets.cash_and_cash_equivalents"
	case strings.HasPrefix(object, "12"):
		switch object {
		case "1225":
			return "assets.property_taxes_receivable"
		case "1240":
			return "assets.due_from_other_governments"
		case "1267":
			return "assets.due_from_fiduciary"
		default:
			return "assets.other_receivables"
		}
	case strings.HasPrefix(object, "13"):
		return "assets.inventories"
	case strings.HasPrefix(object, "14"):
		return "assets.unrealized_expenses"
	case strings.HasPrefix(object, "15"):
		switch object {
		case "1510":
			return "assets.capital_assets.land"
		case "1520":
			return "assets.capital_assets.buildings_improvements"
		case "1530":
			return "assets.capital_assets.furniture_equipment"
		case "1580":
			return "assets.capital_assets.construction_in_progress"
		default:
			return "assets.capital_assets.buildings_improvements"
		}
	case strings.HasPrefix(object, "17"):
		switch object {
		case "1705":
			return "deferred_outflows.deferred_outflow_pensions"
		case "1706":
			return "deferred_outflows.deferred_outflow_opeb"
		default:
			return "deferred_outflows.deferred_charge_refunding"
		}
	case strings.HasPrefix(object, "21"):
		switch object {
		case "2140":
			return "liabilities.interest_payable"
		case "2165":
			return "liabilities.accrued_liabilities"
		case "2180":
			return "liabilities.due_to_other_governments"
		default:
			return "liabilities.accounts_payable"
		}
	case strings.HasPrefix(object, "23"):
		return "liabilities.unearned_revenue"
	case strings.HasPrefix(object, "25"):
		switch object {
		case "2501":
			return "liabilities.noncurrent.due_within_one_year"
		case "2540":
			return "liabilities.noncurrent.net_pension_liability"
		case "2545":
			return "liabilities.noncurrent.net_opeb_liability"
		default:
			return "liabilities.noncurrent.due_more_than_one_year"
		}
	case strings.HasPrefix(object, "26"):
		switch object {
		case "2606":
			return "deferred_inflows.deferred_inflow_opeb"
		default:
			return "deferred_inflows.deferred_inflow_pensions"
		}
	case strings.HasPrefix(object, "32"):
		return "net_position.net_investment_capital_assets"
	case strings.HasPrefix(object, "38"):
		switch object {
		case "3850":
			return "net_position.restricted.debt_service"
		default:
			return "net_position.restricted.state_federal_programs"
		}
	case strings.HasPrefix(object, "39"):
		return "net_position.unrestricted"
	default:
		return ""
	}
}

// fundsBalanceRoute returns the funds balance sheet leaf key for an object
// code, or "".
func fundsBalanceRoute(object string) string {
	switch {
	case strings.HasPrefix(object, "11"):
		return "assets.cash_and_equivalents"
	case strings.HasPrefix(object, "12"):
		switch object {
		case "1225":
			return "assets.taxes_receivable"
		case "1240":
			return "assets.due_from_other_governments"
		case "1260":
			return "assets.due_from_other_funds"
		default:
			return "assets.other_receivables"
		}
	case strings.HasPrefix(object, "13"):
		return "assets.inventories"
	case strings.HasPrefix(object, "14"):
		return "assets.unrealized_expenditures"
	case strings.HasPrefix(object, "21"):
		switch object {
		case "2150":
			return "liabilities.payroll_deductions"
		case "2160":
			return "liabilities.accrued_wages"
		case "2170":
			return "liabilities.due_to_other_funds"
		case "2180":
			return "liabilities.due_to_other_governments"
		default:
			return "liabilities.accounts_payable"
		}
	case object == "2300":
		return "liabilities.unearned_revenue"
	case strings.HasPrefix(object, "26"):
		return "deferred_inflows.unavailable_revenue_property_taxes"
	case object == "3410":
		return "fund_balances.nonspendable.inventories"
	case object == "3430":
		return "fund_balances.nonspendable.prepaid_items"
	case object == "3450":
		return "fund_balances.restricted.federal_state_funds"
	case object == "3480":
		return "fund_balances.restricted.retirement_long_term_debt"
	case strings.HasPrefix(object, "34"):
		return "fund_balances.restricted.other_restrictions"
	case object == "3510":
		return "fund_balances.committed.construction"
	case object == "3545":
		return "fund_balances.committed.other_committed"
	case strings.HasPrefix(object, "35"):
		return "fund_balances.assigned.other_assigned"
	case strings.HasPrefix(object, "36"):
		return "fund_balances.unassigned"
	default:
		return ""
	}
}

// fundsRevenueRoute returns the revenue leaf key for a 5xxx object code.
func fundsRevenueRoute(object string) string {
	switch {
	case strings.HasPrefix(object, "58"):
		return "revenues.state_program_revenues"
	case strings.HasPrefix(object, "59"):
		return "revenues.federal_program_revenues"
	default:
		// 57xx explicitly, and the default bucket for every other 5xxx.
		return "revenues.local_intermediate_sources"
	}
}

// fundsOtherFinancingRoute returns the other-financing leaf key for a 7xxx
// or 8xxx object code, or "".
func fundsOtherFinancingRoute(object string) string {
	switch {
	case object == "7912":
		return "other_financing.sale_property"
	case object == "7915":
		return "other_financing.transfers_in"
	case object == "7916":
		return "other_financing.premium_bond_remarketing"
	case strings.HasPrefix(object, "79"):
		// 7949 explicitly, and the default bucket for the rest of 79xx.
		return "other_financing.other_resources"
	case strings.HasPrefix(object, "8"):
		return "other_financing.transfers_out"
	default:
		return ""
	}
}
