package statement

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/afrgen-dev/afrgen/internal/acctcode"
	"github.com/afrgen-dev/afrgen/internal/model"
)

// ActivitiesStatement is the government-wide Statement of Activities:
// expenses and program revenues by program function, general revenues, and
// the resulting change in net position.
type ActivitiesStatement struct {
	Title                  string                `json:"title"`
	GovernmentalActivities []ProgramLine         `json:"governmental_activities"`
	TotalGovernmental      ProgramLine           `json:"total_governmental"`
	TotalPrimary           ProgramLine           `json:"total_primary"`
	GeneralRevenues        GeneralRevenues       `json:"general_revenues"`
	NetPosition            ActivitiesNetPosition `json:"net_position"`
}

// ProgramLine is one program function row. NetExpenseRevenue is expenses net
// of the program's own charges and grants.
type ProgramLine struct {
	Code               string          `json:"code"`
	Description        string          `json:"description"`
	Expenses           decimal.Decimal `json:"expenses"`
	ChargesForServices decimal.Decimal `json:"charges_for_services"`
	OperatingGrants    decimal.Decimal `json:"operating_grants"`
	NetExpenseRevenue  decimal.Decimal `json:"net_expense_revenue"`
}

type GeneralRevenues struct {
	PropertyTaxesGeneral LineItem `json:"property_taxes_general"`
	PropertyTaxesDebt    LineItem `json:"property_taxes_debt"`
	Chapter313Payments   LineItem `json:"chapter_313_payments"`
	InvestmentEarnings   LineItem `json:"investment_earnings"`
	GrantsContributions  LineItem `json:"grants_contributions"`
	Miscellaneous        LineItem `json:"miscellaneous"`
	TotalGeneralRevenues LineItem `json:"total_general_revenues"`
}

type ActivitiesNetPosition struct {
	ChangeInNetPosition  LineItem `json:"change_in_net_position"`
	NetPositionBeginning LineItem `json:"net_position_beginning"`
	NetPositionEnding    LineItem `json:"net_position_ending"`
}

// NewActivities returns the zero-initialized statement template with one
// ProgramLine per declared program, in declaration order.
func NewActivities() *ActivitiesStatement {
	st := &ActivitiesStatement{
		Title:             "STATEMENT OF ACTIVITIES",
		TotalGovernmental: ProgramLine{Code: "TG", Description: "Total Governmental Activities"},
		TotalPrimary:      ProgramLine{Code: "TP", Description: "Total Primary Government"},
		GeneralRevenues: GeneralRevenues{
			PropertyTaxesGeneral: item(linePropertyTaxesGeneral),
			PropertyTaxesDebt:    item(linePropertyTaxesDebt),
			Chapter313Payments:   item(lineChapter313),
			InvestmentEarnings:   item(lineInvestmentEarnings),
			GrantsContributions:  item(lineGrantsContributions),
			Miscellaneous:        item(lineMiscellaneous),
			TotalGeneralRevenues: item(lineTotalGeneralRevenues),
		},
		NetPosition: ActivitiesNetPosition{
			ChangeInNetPosition:  LineItem{Code: "CN", Description: "Change in Net Position"},
			NetPositionBeginning: LineItem{Code: "NB", Description: "Net Position - Beginning"},
			NetPositionEnding:    LineItem{Code: "NE", Description: "Net Position - Ending"},
		},
	}
	for _, def := range programDefs {
		if def.FundsOnly {
			continue
		}
		st.GovernmentalActivities = append(st.GovernmentalActivities, ProgramLine{
			Code:        def.Function,
			Description: def.Description,
		})
	}
	return st
}

// program returns the ProgramLine for a program key.
func (st *ActivitiesStatement) program(key string) *ProgramLine {
	for _, def := range programDefs {
		if def.FundsOnly || def.Key != key {
			continue
		}
		for j := range st.GovernmentalActivities {
			if st.GovernmentalActivities[j].Code == def.Function {
				return &st.GovernmentalActivities[j]
			}
		}
	}
	return nil
}

// generalRevenueLeaves maps routing keys to the general revenue lines.
func (st *ActivitiesStatement) generalRevenueLeaves() map[string]*LineItem {
	return map[string]*LineItem{
		"general_revenues.property_taxes_general": &st.GeneralRevenues.PropertyTaxesGeneral,
		"general_revenues.property_taxes_debt":    &st.GeneralRevenues.PropertyTaxesDebt,
		"general_revenues.chapter_313_payments":   &st.GeneralRevenues.Chapter313Payments,
		"general_revenues.investment_earnings":    &st.GeneralRevenues.InvestmentEarnings,
		"general_revenues.grants_contributions":   &st.GeneralRevenues.GrantsContributions,
		"general_revenues.miscellaneous":          &st.GeneralRevenues.Miscellaneous,
	}
}

// generalRevenueRoute returns the general revenue leaf key for an account
// code. Account codes are numeric, so only the Chapter 313 substring check
// can match; everything else lands in miscellaneous.
func generalRevenueRoute(accountCode string) string {
	if strings.Contains(accountCode, "313") {
		return "general_revenues.chapter_313_payments"
	}
	return "general_revenues.miscellaneous"
}

// BuildActivities folds trial balance rows into the Statement of Activities.
// Expense rows land on the program matching their function code, program
// revenue rows offset their program, and general revenue rows feed the
// general revenues section. Rows without a mapping entry are skipped.
func BuildActivities(rows []model.TrialBalanceRow, mapping map[string]model.MappingEntry, balances Balances) *ActivitiesStatement {
	st := NewActivities()
	revenueLeaves := st.generalRevenueLeaves()

	for _, row := range rows {
		entry, ok := mapping[row.AccountCode]
		if !ok {
			continue
		}
		amount := row.CurrentYearActual

		switch entry.GASBCategory {
		case model.GASBProgramExpenses, model.GASBGeneralExpenses:
			function, ok := acctcode.FunctionCode(row.AccountCode)
			if !ok {
				function = "00"
			}
			line := st.program(programKeyForFunction(function, false))
			line.Expenses = line.Expenses.Add(amount)

		case model.GASBProgramRevenues:
			function, ok := acctcode.FunctionCode(row.AccountCode)
			if !ok {
				function = "00"
			}
			if function == "36" {
				line := st.program("cocurricular")
				line.ChargesForServices = line.ChargesForServices.Add(amount)
			} else {
				// Grants default to instruction, which also covers
				// function 11 explicitly.
				line := st.program("instruction")
				line.OperatingGrants = line.OperatingGrants.Add(amount)
			}

		case model.GASBGeneralRevenues:
			leaf := revenueLeaves[generalRevenueRoute(row.AccountCode)]
			leaf.Amount = leaf.Amount.Add(amount)
		}
	}

	st.computeTotals(balances)
	return st
}

func (st *ActivitiesStatement) computeTotals(balances Balances) {
	totals := ProgramLine{}
	for i := range st.GovernmentalActivities {
		line := &st.GovernmentalActivities[i]
		line.NetExpenseRevenue = line.Expenses.
			Sub(line.ChargesForServices).
			Sub(line.OperatingGrants)
		totals.Expenses = totals.Expenses.Add(line.Expenses)
		totals.ChargesForServices = totals.ChargesForServices.Add(line.ChargesForServices)
		totals.OperatingGrants = totals.OperatingGrants.Add(line.OperatingGrants)
		totals.NetExpenseRevenue = totals.NetExpenseRevenue.Add(line.NetExpenseRevenue)
	}

	st.TotalGovernmental.Expenses = totals.Expenses
	st.TotalGovernmental.ChargesForServices = totals.ChargesForServices
	st.TotalGovernmental.OperatingGrants = totals.OperatingGrants
	st.TotalGovernmental.NetExpenseRevenue = totals.NetExpenseRevenue
	st.TotalPrimary.Expenses = totals.Expenses
	st.TotalPrimary.ChargesForServices = totals.ChargesForServices
	st.TotalPrimary.OperatingGrants = totals.OperatingGrants
	st.TotalPrimary.NetExpenseRevenue = totals.NetExpenseRevenue

	st.GeneralRevenues.TotalGeneralRevenues.Amount = sum(
		st.GeneralRevenues.PropertyTaxesGeneral.Amount,
		st.GeneralRevenues.PropertyTaxesDebt.Amount,
		st.GeneralRevenues.Chapter313Payments.Amount,
		st.GeneralRevenues.InvestmentEarnings.Amount,
		st.GeneralRevenues.GrantsContributions.Amount,
		st.GeneralRevenues.Miscellaneous.Amount,
	)

	change := st.GeneralRevenues.TotalGeneralRevenues.Amount.
		Add(st.TotalGovernmental.NetExpenseRevenue)
	st.NetPosition.ChangeInNetPosition.Amount = change
	st.NetPosition.NetPositionBeginning.Amount = balances.NetPosition
	st.NetPosition.NetPositionEnding.Amount = balances.NetPosition.Add(change)
}
