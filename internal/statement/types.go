// Package statement folds classified trial balance rows into the four
// standardized statements: government-wide net position and activities, and
// the governmental funds balance sheet and revenues/expenditures. All
// builders are pure single-pass folds; subtotals are recomputed from leaves
// on every run.
package statement

import (
	"github.com/shopspring/decimal"

	"github.com/afrgen-dev/afrgen/internal/model"
)

// LineItem is one statement line with a single government-wide amount.
type LineItem struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// FundLine is one statement line broken out by fund column. Funds are
// binary-partitioned: the general fund and everything else.
type FundLine struct {
	Code          string          `json:"code"`
	Description   string          `json:"description"`
	GeneralFund   decimal.Decimal `json:"general_fund"`
	NonMajorFunds decimal.Decimal `json:"non_major_funds"`
}

func (l *FundLine) amount(col fundColumn) decimal.Decimal {
	if col == generalFund {
		return l.GeneralFund
	}
	return l.NonMajorFunds
}

func (l *FundLine) add(col fundColumn, amt decimal.Decimal) {
	switch col {
	case generalFund:
		l.GeneralFund = l.GeneralFund.Add(amt)
	case nonMajorFunds:
		l.NonMajorFunds = l.NonMajorFunds.Add(amt)
	}
}

// fundColumn selects which column of a FundLine an amount lands in.
type fundColumn int

const (
	generalFund fundColumn = iota
	nonMajorFunds
)

func columnFor(cat model.FundCategory) fundColumn {
	if cat == model.FundGeneral {
		return generalFund
	}
	return nonMajorFunds
}

// BalanceValidation is the net position balance-equation check:
// assets + deferred outflows against liabilities + deferred inflows + net
// position. The tolerance absorbs rounding, not accounting error.
type BalanceValidation struct {
	LeftSide  decimal.Decimal `json:"left_side"`
	RightSide decimal.Decimal `json:"right_side"`
	Balanced  bool            `json:"balanced"`
}

// balanceTolerance is the allowed absolute difference between the two sides.
var balanceTolerance = decimal.RequireFromString("0.01")

// Balances carries the prior-period figures the statements start from.
// There is no prior-year linkage in this system; callers supply these, and
// DefaultBalances documents the standing placeholder values.
type Balances struct {
	NetPosition   decimal.Decimal
	GeneralFund   decimal.Decimal
	NonMajorFunds decimal.Decimal
}

// DefaultBalances returns the placeholder beginning balances used when no
// configuration overrides them.
func DefaultBalances() Balances {
	return Balances{
		NetPosition:   decimal.NewFromInt(37913236),
		GeneralFund:   decimal.NewFromInt(25217718),
		NonMajorFunds: decimal.NewFromInt(4550784),
	}
}

// Set bundles the four generated statements.
type Set struct {
	NetPosition  *NetPositionStatement  `json:"net_position"`
	Activities   *ActivitiesStatement   `json:"activities"`
	FundsBalance *FundsBalanceStatement `json:"funds_balance"`
	FundsRevExp  *FundsRevExpStatement  `json:"funds_rev_exp"`
}

// Generate builds all four statements from one snapshot of rows and
// mapping. Rows without a mapping entry contribute nothing; empty inputs
// yield all-zero statements.
func Generate(rows []model.TrialBalanceRow, mapping map[string]model.MappingEntry, balances Balances) Set {
	return Set{
		NetPosition:  BuildNetPosition(rows, mapping),
		Activities:   BuildActivities(rows, mapping, balances),
		FundsBalance: BuildFundsBalance(rows, mapping),
		FundsRevExp:  BuildFundsRevExp(rows, mapping, balances),
	}
}

func item(d lineDef) LineItem {
	return LineItem{Code: d.Code, Description: d.Description}
}

func fundLine(d lineDef) FundLine {
	return FundLine{Code: d.Code, Description: d.Description}
}

func sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
