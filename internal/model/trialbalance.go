package model

import "github.com/shopspring/decimal"

// TrialBalanceRow is one row of a trial balance export. Amounts default to
// zero when the source column is missing or non-numeric, never null.
type TrialBalanceRow struct {
	AccountCode       string
	CurrentYearActual decimal.Decimal
	Budget            decimal.Decimal
	PriorYearActual   decimal.Decimal
}
