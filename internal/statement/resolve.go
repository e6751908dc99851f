package statement

import (
	"strings"

	"github.com/afrgen-dev/afrgen/internal/model"
)

// Line locates an account on a generated statement: which statement, which
// section, and which line it rolls into.
type Line struct {
	StatementType string `json:"statement_type"`
	Section       string `json:"section"`
	Code          string `json:"code"`
	Description   string `json:"description"`
}

// Resolver-only lines for other resources and other uses on the activities
// statement; these carry object-code prefixes rather than full line codes.
var (
	lineResolveOtherResources  = lineDef{"79", "Other Resources"}
	lineResolve7915            = lineDef{"7915", "Other Resources"}
	lineResolveInvestEarnings  = lineDef{"70", "Investment Earnings"}
	lineResolveTransfersIn     = lineDef{"72", "Transfers In"}
	lineResolveDebtProceeds    = lineDef{"74", "Proceeds from Debt"}
	lineResolveInterestExpense = lineDef{"80", "Interest Expense"}
	lineResolveTransfersOut    = lineDef{"82", "Transfers Out"}
	lineResolveDebtPrincipal   = lineDef{"84", "Principal Payments on Debt"}
	lineResolveOtherUses       = lineDef{"89", "Other Uses"}
)

func resolved(statementType, section string, d lineDef) Line {
	return Line{
		StatementType: statementType,
		Section:       section,
		Code:          d.Code,
		Description:   d.Description,
	}
}

// ResolveLine determines the statement line an account contributes to, for
// the audit trail. Unmapped accounts resolve to the unknown line.
func ResolveLine(gasb model.GASBCategory, objectCode, functionCode string) Line {
	unknown := Line{
		StatementType: "Unknown",
		Section:       "Unknown",
		Code:          "XX",
		Description:   "Unmapped Account",
	}
	if gasb == model.GASBUnmapped {
		return unknown
	}

	switch gasb {
	case model.GASBCurrentAssets, model.GASBCapitalAssets:
		return resolveNetPositionAsset(objectCode, unknown)
	case model.GASBDeferredOutflows:
		return resolveDeferredOutflow(objectCode)
	case model.GASBCurrentLiabilities, model.GASBLongTermLiabilities:
		return resolveNetPositionLiability(objectCode, unknown)
	case model.GASBDeferredInflows:
		return resolveDeferredInflow(objectCode)
	case model.GASBNetInvestmentCapital:
		return resolved("Net Position", "NET POSITION", lineNetInvestmentCapital)
	case model.GASBRestrictedNet:
		if objectCode == "3850" {
			return resolved("Net Position", "NET POSITION", lineDebtService)
		}
		return resolved("Net Position", "NET POSITION", lineStateFederalPrograms)
	case model.GASBUnrestrictedNet:
		return resolved("Net Position", "NET POSITION", lineUnrestricted)

	case model.GASBProgramExpenses, model.GASBGeneralExpenses:
		key := programKeyForFunction(functionCode, false)
		for _, def := range programDefs {
			if def.Key == key {
				return Line{
					StatementType: "Activities",
					Section:       "Governmental Activities",
					Code:          def.Function,
					Description:   def.Description,
				}
			}
		}
		return unknown
	case model.GASBProgramRevenues:
		return resolved("Activities", "General Revenues", lineProgramRevenues)
	case model.GASBGeneralRevenues:
		return resolved("Activities", "General Revenues", linePropertyTaxesGeneral)
	case model.GASBOtherResources:
		return resolveOtherResources(objectCode)
	case model.GASBOtherUses:
		return resolveOtherUses(objectCode)
	}

	// Clearing and unknown categories fall back to the funds statements by
	// object code lead digit.
	switch {
	case strings.HasPrefix(objectCode, "1"):
		return Line{StatementType: "Balance Sheet", Section: "ASSETS", Code: "XX", Description: "Unmapped Account"}
	case strings.HasPrefix(objectCode, "2"):
		return Line{StatementType: "Balance Sheet", Section: "LIABILITIES", Code: "XX", Description: "Unmapped Account"}
	case strings.HasPrefix(objectCode, "3"):
		return Line{StatementType: "Balance Sheet", Section: "FUND BALANCES", Code: "XX", Description: "Unmapped Account"}
	case strings.HasPrefix(objectCode, "5"):
		return Line{StatementType: "Revenues & Expenditures", Section: "REVENUES", Code: "XX", Description: "Unmapped Account"}
	case strings.HasPrefix(objectCode, "6"):
		return Line{StatementType: "Revenues & Expenditures", Section: "EXPENDITURES", Code: "XX", Description: "Unmapped Account"}
	}
	return unknown
}

func resolveNetPositionAsset(objectCode string, unknown Line) Line {
	const section = "ASSETS"
	switch {
	case strings.HasPrefix(objectCode, "11"):
		return resolved("Net Position", section, lineCash)
	case strings.HasPrefix(objectCode, "12"):
		switch objectCode {
		case "1225":
			return resolved("Net Position", section, linePropertyTaxesRecv)
		case "1240":
			return resolved("Net Position", section, lineDueFromOtherGovts)
		case "1267":
			return resolved("Net Position", section, lineDueFromFiduciary)
		default:
			return resolved("Net Position", section, lineOtherReceivablesNet)
		}
	case strings.HasPrefix(objectCode, "13"):
		return resolved("Net Position", section, lineInventories)
	case strings.HasPrefix(objectCode, "14"):
		return resolved("Net Position", section, lineUnrealizedExpenses)
	case strings.HasPrefix(objectCode, "15"):
		switch objectCode {
		case "1510":
			return resolved("Net Position", section, lineLand)
		case "1530":
			return resolved("Net Position", section, lineFurniture)
		case "1580":
			return resolved("Net Position", section, lineConstruction)
		default:
			return resolved("Net Position", section, lineBuildings)
		}
	}
	line := unknown
	line.StatementType = "Net Position"
	line.Section = section
	return line
}

func resolveDeferredOutflow(objectCode string) Line {
	const section = "DEFERRED OUTFLOWS OF RESOURCES"
	switch objectCode {
	case "1705":
		return resolved("Net Position", section, lineDeferredOutPensions)
	case "1706":
		return resolved("Net Position", section, lineDeferredOutOPEB)
	default:
		return resolved("Net Position", section, lineDeferredRefunding)
	}
}

func resolveNetPositionLiability(objectCode string, unknown Line) Line {
	const section = "LIABILITIES"
	switch {
	case strings.HasPrefix(objectCode, "21"):
		switch objectCode {
		case "2140":
			return resolved("Net Position", section, lineInterestPayable)
		case "2165":
			return resolved("Net Position", section, lineAccruedLiabilities)
		case "2180":
			return resolved("Net Position", section, lineDueToOtherGovts)
		default:
			return resolved("Net Position", section, lineAccountsPayable)
		}
	case strings.HasPrefix(objectCode, "23"):
		return resolved("Net Position", section, lineUnearnedRevenue)
	case strings.HasPrefix(objectCode, "25"):
		switch objectCode {
		case "2501":
			return resolved("Net Position", section, lineDueWithinOneYear)
		case "2540":
			return resolved("Net Position", section, lineNetPensionLiability)
		case "2545":
			return resolved("Net Position", section, lineNetOPEBLiability)
		default:
			return resolved("Net Position", section, lineDueMoreThanOneYear)
		}
	}
	line := unknown
	line.StatementType = "Net Position"
	line.Section = section
	return line
}

func resolveDeferredInflow(objectCode string) Line {
	const section = "DEFERRED INFLOWS OF RESOURCES"
	if objectCode == "2606" {
		return resolved("Net Position", section, lineDeferredInOPEB)
	}
	return resolved("Net Position", section, lineDeferredInPensions)
}

func resolveOtherResources(objectCode string) Line {
	const section = "General Revenues"
	switch {
	case objectCode == "7915":
		return resolved("Activities", section, lineResolve7915)
	case strings.HasPrefix(objectCode, "70"):
		return resolved("Activities", section, lineResolveInvestEarnings)
	case strings.HasPrefix(objectCode, "72"):
		return resolved("Activities", section, lineResolveTransfersIn)
	case strings.HasPrefix(objectCode, "74"):
		return resolved("Activities", section, lineResolveDebtProceeds)
	default:
		return resolved("Activities", section, lineResolveOtherResources)
	}
}

func resolveOtherUses(objectCode string) Line {
	const section = "Governmental Activities"
	switch {
	case strings.HasPrefix(objectCode, "80"):
		return resolved("Activities", section, lineResolveInterestExpense)
	case strings.HasPrefix(objectCode, "82"):
		return resolved("Activities", section, lineResolveTransfersOut)
	case strings.HasPrefix(objectCode, "84"):
		return resolved("Activities", section, lineResolveDebtPrincipal)
	default:
		return resolved("Activities", section, lineResolveOtherUses)
	}
}
