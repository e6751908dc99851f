package statement

import (
	"github.com/afrgen-dev/afrgen/internal/acctcode"
	"github.com/afrgen-dev/afrgen/internal/model"
)

// FundsBalanceStatement is the Balance Sheet - Governmental Funds, with
// amounts broken out between the general fund and non-major funds.
type FundsBalanceStatement struct {
	Title                  string               `json:"title"`
	Funds                  map[string]string    `json:"funds"`
	Assets                 FundsAssets          `json:"assets"`
	Liabilities            FundsLiabilities     `json:"liabilities"`
	DeferredInflows        FundsDeferredInflows `json:"deferred_inflows"`
	FundBalances           FundBalancesSection  `json:"fund_balances"`
	TotalLiabDeferredAndFB FundLine             `json:"total_liabilities_deferred_fund_balances"`
}

type FundsAssets struct {
	CashAndEquivalents      FundLine `json:"cash_and_equivalents"`
	TaxesReceivable         FundLine `json:"taxes_receivable"`
	DueFromOtherGovernments FundLine `json:"due_from_other_governments"`
	DueFromOtherFunds       FundLine `json:"due_from_other_funds"`
	OtherReceivables        FundLine `json:"other_receivables"`
	Inventories             FundLine `json:"inventories"`
	UnrealizedExpenditures  FundLine `json:"unrealized_expenditures"`
	TotalAssets             FundLine `json:"total_assets"`
}

type FundsLiabilities struct {
	AccountsPayable       FundLine `json:"accounts_payable"`
	PayrollDeductions     FundLine `json:"payroll_deductions"`
	AccruedWages          FundLine `json:"accrued_wages"`
	DueToOtherFunds       FundLine `json:"due_to_other_funds"`
	DueToOtherGovernments FundLine `json:"due_to_other_governments"`
	UnearnedRevenue       FundLine `json:"unearned_revenue"`
	TotalLiabilities      FundLine `json:"total_liabilities"`
}

type FundsDeferredInflows struct {
	UnavailablePropertyTaxes FundLine `json:"unavailable_revenue_property_taxes"`
	TotalDeferredInflows     FundLine `json:"total_deferred_inflows"`
}

type FundBalancesSection struct {
	Nonspendable      NonspendableBalances `json:"nonspendable"`
	Restricted        RestrictedBalances   `json:"restricted"`
	Committed         CommittedBalances    `json:"committed"`
	Assigned          AssignedBalances     `json:"assigned"`
	Unassigned        FundLine             `json:"unassigned"`
	TotalFundBalances FundLine             `json:"total_fund_balances"`
}

type NonspendableBalances struct {
	Inventories  FundLine `json:"inventories"`
	PrepaidItems FundLine `json:"prepaid_items"`
}

type RestrictedBalances struct {
	FederalStateFunds      FundLine `json:"federal_state_funds"`
	RetirementLongTermDebt FundLine `json:"retirement_long_term_debt"`
	OtherRestrictions      FundLine `json:"other_restrictions"`
}

type CommittedBalances struct {
	Construction   FundLine `json:"construction"`
	OtherCommitted FundLine `json:"other_committed"`
}

type AssignedBalances struct {
	OtherAssigned FundLine `json:"other_assigned"`
}

// NewFundsBalance returns the zero-initialized statement template.
func NewFundsBalance() *FundsBalanceStatement {
	return &FundsBalanceStatement{
		Title: "BALANCE SHEET - GOVERNMENTAL FUNDS",
		Funds: map[string]string{
			"general_fund":    "General Fund",
			"non_major_funds": "Non-Major Funds",
		},
		Assets: FundsAssets{
			CashAndEquivalents:      fundLine(lineCash),
			TaxesReceivable:         fundLine(lineTaxesReceivable),
			DueFromOtherGovernments: fundLine(lineDueFromOtherGovts),
			DueFromOtherFunds:       fundLine(lineDueFromOtherFunds),
			OtherReceivables:        fundLine(lineOtherReceivables),
			Inventories:             fundLine(lineInventories),
			UnrealizedExpenditures:  fundLine(lineUnrealizedExpend),
			TotalAssets:             fundLine(lineTotalAssets),
		},
		Liabilities: FundsLiabilities{
			AccountsPayable:       fundLine(lineAccountsPayable),
			PayrollDeductions:     fundLine(linePayrollDeductions),
			AccruedWages:          fundLine(lineAccruedWages),
			DueToOtherFunds:       fundLine(lineDueToOtherFunds),
			DueToOtherGovernments: fundLine(lineDueToOtherGovts),
			UnearnedRevenue:       fundLine(lineUnearnedRevenue),
			TotalLiabilities:      fundLine(lineTotalLiabilities),
		},
		DeferredInflows: FundsDeferredInflows{
			UnavailablePropertyTaxes: fundLine(lineUnavailablePropTax),
			TotalDeferredInflows:     fundLine(lineTotalDeferredIn),
		},
		FundBalances: FundBalancesSection{
			Nonspendable: NonspendableBalances{
				Inventories:  fundLine(lineNonspendInventories),
				PrepaidItems: fundLine(lineNonspendPrepaid),
			},
			Restricted: RestrictedBalances{
				FederalStateFunds:      fundLine(lineFederalStateFunds),
				RetirementLongTermDebt: fundLine(lineRetirementLTDebt),
				OtherRestrictions:      fundLine(lineOtherRestrictions),
			},
			Committed: CommittedBalances{
				Construction:   fundLine(lineCommittedConstruction),
				OtherCommitted: fundLine(lineOtherCommitted),
			},
			Assigned: AssignedBalances{
				OtherAssigned: fundLine(lineOtherAssigned),
			},
			Unassigned:        fundLine(lineUnassigned),
			TotalFundBalances: fundLine(lineTotalFundBalances),
		},
		TotalLiabDeferredAndFB: fundLine(lineTotalLiabDefFund),
	}
}

// leaves maps routing keys to the statement's accumulating fund lines.
func (st *FundsBalanceStatement) leaves() map[string]*FundLine {
	return map[string]*FundLine{
		"assets.cash_and_equivalents":                        &st.Assets.CashAndEquivalents,
		"assets.taxes_receivable":                            &st.Assets.TaxesReceivable,
		"assets.due_from_other_governments":                  &st.Assets.DueFromOtherGovernments,
		"assets.due_from_other_funds":                        &st.Assets.DueFromOtherFunds,
		"assets.other_receivables":                           &st.Assets.OtherReceivables,
		"assets.inventories":                                 &st.Assets.Inventories,
		"assets.unrealized_expenditures":                     &st.Assets.UnrealizedExpenditures,
		"liabilities.accounts_payable":                       &st.Liabilities.AccountsPayable,
		"liabilities.payroll_deductions":                     &st.Liabilities.PayrollDeductions,
		"liabilities.accrued_wages":                          &st.Liabilities.AccruedWages,
		"liabilities.due_to_other_funds":                     &st.Liabilities.DueToOtherFunds,
		"liabilities.due_to_other_governments":               &st.Liabilities.DueToOtherGovernments,
		"liabilities.unearned_revenue":                       &st.Liabilities.UnearnedRevenue,
		"deferred_inflows.unavailable_revenue_property_taxes": &st.DeferredInflows.UnavailablePropertyTaxes,
		"fund_balances.nonspendable.inventories":             &st.FundBalances.Nonspendable.Inventories,
		"fund_balances.nonspendable.prepaid_items":           &st.FundBalances.Nonspendable.PrepaidItems,
		"fund_balances.restricted.federal_state_funds":       &st.FundBalances.Restricted.FederalStateFunds,
		"fund_balances.restricted.retirement_long_term_debt": &st.FundBalances.Restricted.RetirementLongTermDebt,
		"fund_balances.restricted.other_restrictions":        &st.FundBalances.Restricted.OtherRestrictions,
		"fund_balances.committed.construction":               &st.FundBalances.Committed.Construction,
		"fund_balances.committed.other_committed":            &st.FundBalances.Committed.OtherCommitted,
		"fund_balances.assigned.other_assigned":              &st.FundBalances.Assigned.OtherAssigned,
		"fund_balances.unassigned":                           &st.FundBalances.Unassigned,
	}
}

// BuildFundsBalance folds trial balance rows into the governmental funds
// balance sheet. Each row lands in the column chosen by its fund category;
// rows without a mapping entry are skipped.
func BuildFundsBalance(rows []model.TrialBalanceRow, mapping map[string]model.MappingEntry) *FundsBalanceStatement {
	st := NewFundsBalance()
	leaves := st.leaves()

	for _, row := range rows {
		entry, ok := mapping[row.AccountCode]
		if !ok {
			continue
		}
		object, ok := acctcode.ObjectCode(row.AccountCode)
		if !ok {
			object = "0000"
		}
		if key := fundsBalanceRoute(object); key != "" {
			leaves[key].add(columnFor(entry.FundCategory), row.CurrentYearActual)
		}
	}

	st.computeTotals()
	return st
}

func (st *FundsBalanceStatement) computeTotals() {
	for _, col := range []fundColumn{generalFund, nonMajorFunds} {
		st.Assets.TotalAssets.add(col, sum(
			st.Assets.CashAndEquivalents.amount(col),
			st.Assets.TaxesReceivable.amount(col),
			st.Assets.DueFromOtherGovernments.amount(col),
			st.Assets.DueFromOtherFunds.amount(col),
			st.Assets.OtherReceivables.amount(col),
			st.Assets.Inventories.amount(col),
			st.Assets.UnrealizedExpenditures.amount(col),
		))

		st.Liabilities.TotalLiabilities.add(col, sum(
			st.Liabilities.AccountsPayable.amount(col),
			st.Liabilities.PayrollDeductions.amount(col),
			st.Liabilities.AccruedWages.amount(col),
			st.Liabilities.DueToOtherFunds.amount(col),
			st.Liabilities.DueToOtherGovernments.amount(col),
			st.Liabilities.UnearnedRevenue.amount(col),
		))

		st.DeferredInflows.TotalDeferredInflows.add(col,
			st.DeferredInflows.UnavailablePropertyTaxes.amount(col))

		st.FundBalances.TotalFundBalances.add(col, sum(
			st.FundBalances.Nonspendable.Inventories.amount(col),
			st.FundBalances.Nonspendable.PrepaidItems.amount(col),
			st.FundBalances.Restricted.FederalStateFunds.amount(col),
			st.FundBalances.Restricted.RetirementLongTermDebt.amount(col),
			st.FundBalances.Restricted.OtherRestrictions.amount(col),
			st.FundBalances.Committed.Construction.amount(col),
			st.FundBalances.Committed.OtherCommitted.amount(col),
			st.FundBalances.Assigned.OtherAssigned.amount(col),
			st.FundBalances.Unassigned.amount(col),
		))

		st.TotalLiabDeferredAndFB.add(col, sum(
			st.Liabilities.TotalLiabilities.amount(col),
			st.DeferredInflows.TotalDeferredInflows.amount(col),
			st.FundBalances.TotalFundBalances.amount(col),
		))
	}
}
