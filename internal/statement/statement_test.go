package statement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afrgen-dev/afrgen/internal/classify"
	"github.com/afrgen-dev/afrgen/internal/model"
)

func row(code string, amount int64) model.TrialBalanceRow {
	return model.TrialBalanceRow{
		AccountCode:       code,
		CurrentYearActual: decimal.NewFromInt(amount),
	}
}

// acct builds a full account code from fund, function, and object segments.
func acct(fund, function, object string) string {
	return fund + function + object + "0000" + "000000"
}

func mappingFor(rows []model.TrialBalanceRow) map[string]model.MappingEntry {
	codes := make([]string, 0, len(rows))
	for _, r := range rows {
		codes = append(codes, r.AccountCode)
	}
	return classify.DefaultMapping(codes)
}

func TestBuildNetPositionCashFlowsToTotals(t *testing.T) {
	rows := []model.TrialBalanceRow{row(acct("199", "00", "1110"), 5000)}
	st := BuildNetPosition(rows, mappingFor(rows))

	assert.True(t, st.Assets.CashAndCashEquivalents.Amount.Equal(decimal.NewFromInt(5000)))
	assert.True(t, st.Assets.TotalAssets.Amount.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, "1110", st.Assets.CashAndCashEquivalents.Code)
}

func TestBuildNetPositionDefaultBuckets(t *testing.T) {
	rows := []model.TrialBalanceRow{
		// 1599 is not an itemized capital asset line.
		row(acct("199", "00", "1599"), 700),
		// 1290 falls through the receivable exacts.
		row(acct("199", "00", "1290"), 300),
		// 2120 is not an itemized payable line.
		row(acct("199", "00", "2120"), 400),
	}
	st := BuildNetPosition(rows, mappingFor(rows))

	assert.True(t, st.Assets.CapitalAssets.BuildingsImprovements.Amount.Equal(decimal.NewFromInt(700)))
	assert.True(t, st.Assets.OtherReceivables.Amount.Equal(decimal.NewFromInt(300)))
	assert.True(t, st.Liabilities.AccountsPayable.Amount.Equal(decimal.NewFromInt(400)))
}

func TestBuildNetPositionBalanceEquation(t *testing.T) {
	rows := []model.TrialBalanceRow{
		row(acct("199", "00", "1110"), 1000),
		row(acct("199", "00", "2110"), 600),
		row(acct("199", "00", "3900"), 400),
	}
	st := BuildNetPosition(rows, mappingFor(rows))

	assert.True(t, st.BalanceValidation.LeftSide.Equal(decimal.NewFromInt(1000)))
	assert.True(t, st.BalanceValidation.RightSide.Equal(decimal.NewFromInt(1000)))
	assert.True(t, st.BalanceValidation.Balanced)
}

func TestBuildNetPositionUnbalanced(t *testing.T) {
	rows := []model.TrialBalanceRow{
		row(acct("199", "00", "1110"), 1000),
		row(acct("199", "00", "2110"), 600),
	}
	st := BuildNetPosition(rows, mappingFor(rows))

	assert.False(t, st.BalanceValidation.Balanced)
}

func TestBuildNetPositionSkipsUnmappedRows(t *testing.T) {
	rows := []model.TrialBalanceRow{
		row(acct("199", "00", "1110"), 1000),
		row(acct("199", "00", "1120"), 9999),
	}
	mapping := mappingFor(rows[:1])
	st := BuildNetPosition(rows, mapping)

	assert.True(t, st.Assets.CashAndCashEquivalents.Amount.Equal(decimal.NewFromInt(1000)))
}

func TestBuildNetPositionEmptyInputs(t *testing.T) {
	st := BuildNetPosition(nil, nil)

	assert.True(t, st.Assets.TotalAssets.Amount.IsZero())
	assert.True(t, st.Liabilities.TotalLiabilities.Amount.IsZero())
	assert.True(t, st.NetPosition.TotalNetPosition.Amount.IsZero())
	assert.True(t, st.BalanceValidation.Balanced)
}

func TestBuildActivitiesExpensesByFunction(t *testing.T) {
	rows := []model.TrialBalanceRow{
		row(acct("199", "11", "6100"), 2000),
		row(acct("199", "35", "6300"), 500),
		// Function 77 matches no program; lands in general administration.
		row(acct("199", "77", "6100"), 250),
	}
	st := BuildActivities(rows, mappingFor(rows), DefaultBalances())

	instruction := st.program("instruction")
	require.NotNil(t, instruction)
	assert.True(t, instruction.Expenses.Equal(decimal.NewFromInt(2000)))

	food := st.program("food_service")
	require.NotNil(t, food)
	assert.True(t, food.Expenses.Equal(decimal.NewFromInt(500)))

	admin := st.program("general_admin")
	require.NotNil(t, admin)
	assert.True(t, admin.Expenses.Equal(decimal.NewFromInt(250)))

	assert.True(t, st.TotalGovernmental.Expenses.Equal(decimal.NewFromInt(2750)))
	assert.True(t, st.TotalPrimary.Expenses.Equal(decimal.NewFromInt(2750)))
}

func TestBuildActivitiesProgramRevenues(t *testing.T) {
	rows := []model.TrialBalanceRow{
		row(acct("199", "36", "5100"), 300),
		row(acct("199", "11", "5200"), 150),
	}
	st := BuildActivities(rows, mappingFor(rows), DefaultBalances())

	cocurricular := st.program("cocurricular")
	require.NotNil(t, cocurricular)
	assert.True(t, cocurricular.ChargesForServices.Equal(decimal.NewFromInt(300)))

	instruction := st.program("instruction")
	require.NotNil(t, instruction)
	assert.True(t, instruction.OperatingGrants.Equal(decimal.NewFromInt(150)))
}

func TestBuildActivitiesGeneralRevenuesAndNetPosition(t *testing.T) {
	rows := []model.TrialBalanceRow{
		row(acct("199", "00", "5700"), 1000),
		row(acct("199", "11", "6100"), 400),
	}
	st := BuildActivities(rows, mappingFor(rows), DefaultBalances())

	assert.True(t, st.GeneralRevenues.Miscellaneous.Amount.Equal(decimal.NewFromInt(1000)))
	assert.True(t, st.GeneralRevenues.TotalGeneralRevenues.Amount.Equal(decimal.NewFromInt(1000)))

	// Change = total general revenues + total net expense.
	assert.True(t, st.NetPosition.ChangeInNetPosition.Amount.Equal(decimal.NewFromInt(1400)))
	assert.True(t, st.NetPosition.NetPositionBeginning.Amount.Equal(decimal.NewFromInt(37913236)))
	assert.True(t, st.NetPosition.NetPositionEnding.Amount.Equal(decimal.NewFromInt(37913236+1400)))
}

func TestBuildActivitiesExcludesFundsOnlyPrograms(t *testing.T) {
	st := NewActivities()
	for _, line := range st.GovernmentalActivities {
		assert.NotEqual(t, "71", line.Code)
	}
	rows := []model.TrialBalanceRow{row(acct("599", "71", "6500"), 900)}
	built := BuildActivities(rows, mappingFor(rows), DefaultBalances())
	admin := built.program("general_admin")
	require.NotNil(t, admin)
	assert.True(t, admin.Expenses.Equal(decimal.NewFromInt(900)))
}

func TestBuildFundsBalanceFundPartition(t *testing.T) {
	rows := []model.TrialBalanceRow{
		row(acct("199", "00", "1110"), 5000),
		row(acct("240", "00", "1110"), 1200),
		row(acct("599", "00", "1110"), 800),
	}
	st := BuildFundsBalance(rows, mappingFor(rows))

	assert.True(t, st.Assets.CashAndEquivalents.GeneralFund.Equal(decimal.NewFromInt(5000)))
	assert.True(t, st.Assets.CashAndEquivalents.NonMajorFunds.Equal(decimal.NewFromInt(2000)))
	assert.True(t, st.Assets.TotalAssets.GeneralFund.Equal(decimal.NewFromInt(5000)))
	assert.True(t, st.Assets.TotalAssets.NonMajorFunds.Equal(decimal.NewFromInt(2000)))
}

func TestBuildFundsBalanceGrandTotal(t *testing.T) {
	rows := []model.TrialBalanceRow{
		row(acct("199", "00", "2110"), 600),
		row(acct("199", "00", "2601"), 100),
		row(acct("199", "00", "3600"), 300),
	}
	st := BuildFundsBalance(rows, mappingFor(rows))

	assert.True(t, st.Liabilities.TotalLiabilities.GeneralFund.Equal(decimal.NewFromInt(600)))
	assert.True(t, st.DeferredInflows.TotalDeferredInflows.GeneralFund.Equal(decimal.NewFromInt(100)))
	assert.True(t, st.FundBalances.TotalFundBalances.GeneralFund.Equal(decimal.NewFromInt(300)))
	assert.True(t, st.TotalLiabDeferredAndFB.GeneralFund.Equal(decimal.NewFromInt(1000)))
}

func TestBuildFundsRevExpTotals(t *testing.T) {
	rows := []model.TrialBalanceRow{
		row(acct("199", "00", "5700"), 1000),
		row(acct("199", "00", "5810"), 400),
		row(acct("199", "11", "6100"), 900),
		row(acct("199", "00", "7915"), 50),
	}
	st := BuildFundsRevExp(rows, mappingFor(rows), DefaultBalances())

	assert.True(t, st.Revenues.LocalIntermediateSources.GeneralFund.Equal(decimal.NewFromInt(1000)))
	assert.True(t, st.Revenues.StateProgramRevenues.GeneralFund.Equal(decimal.NewFromInt(400)))
	assert.True(t, st.Revenues.TotalRevenues.GeneralFund.Equal(decimal.NewFromInt(1400)))

	instruction := st.expenditure("instruction")
	require.NotNil(t, instruction)
	assert.True(t, instruction.GeneralFund.Equal(decimal.NewFromInt(900)))
	assert.True(t, st.Expenditures.TotalExpenditures.GeneralFund.Equal(decimal.NewFromInt(900)))

	assert.True(t, st.ExcessDeficiency.GeneralFund.Equal(decimal.NewFromInt(500)))
	assert.True(t, st.OtherFinancing.TransfersIn.GeneralFund.Equal(decimal.NewFromInt(50)))
	assert.True(t, st.OtherFinancing.TotalOtherFinancing.GeneralFund.Equal(decimal.NewFromInt(50)))
	assert.True(t, st.NetChange.GeneralFund.Equal(decimal.NewFromInt(550)))
	assert.True(t, st.FundBalances.Beginning.GeneralFund.Equal(decimal.NewFromInt(25217718)))
	assert.True(t, st.FundBalances.Ending.GeneralFund.Equal(decimal.NewFromInt(25217718+550)))
	assert.True(t, st.FundBalances.Beginning.NonMajorFunds.Equal(decimal.NewFromInt(4550784)))
}

func TestBuildFundsRevExpPrincipalDebtProgram(t *testing.T) {
	rows := []model.TrialBalanceRow{row(acct("599", "71", "6500"), 750)}
	st := BuildFundsRevExp(rows, mappingFor(rows), DefaultBalances())

	principal := st.expenditure("principal_long_term_debt")
	require.NotNil(t, principal)
	assert.True(t, principal.NonMajorFunds.Equal(decimal.NewFromInt(750)))
}

func TestGenerateProducesAllFourStatements(t *testing.T) {
	rows := []model.TrialBalanceRow{
		row(acct("199", "00", "1110"), 5000),
		row(acct("199", "11", "6100"), 900),
	}
	set := Generate(rows, mappingFor(rows), DefaultBalances())

	require.NotNil(t, set.NetPosition)
	require.NotNil(t, set.Activities)
	require.NotNil(t, set.FundsBalance)
	require.NotNil(t, set.FundsRevExp)
	assert.True(t, set.NetPosition.Assets.CashAndCashEquivalents.Amount.Equal(decimal.NewFromInt(5000)))
	assert.True(t, set.FundsBalance.Assets.CashAndEquivalents.GeneralFund.Equal(decimal.NewFromInt(5000)))
}

func TestResolveLineMatchesStatementRouting(t *testing.T) {
	line := ResolveLine(model.GASBCurrentAssets, "1110", "00")
	assert.Equal(t, "Net Position", line.StatementType)
	assert.Equal(t, "ASSETS", line.Section)
	assert.Equal(t, "1110", line.Code)
	assert.Equal(t, "Cash and Cash Equivalents", line.Description)

	line = ResolveLine(model.GASBCapitalAssets, "1599", "00")
	assert.Equal(t, "1520", line.Code)
	assert.Equal(t, "Buildings and Improvements, Net", line.Description)

	line = ResolveLine(model.GASBCurrentLiabilities, "2300", "00")
	assert.Equal(t, "2300", line.Code)
	assert.Equal(t, "Unearned Revenue", line.Description)

	line = ResolveLine(model.GASBProgramExpenses, "6100", "35")
	assert.Equal(t, "Activities", line.StatementType)
	assert.Equal(t, "35", line.Code)
	assert.Equal(t, "Food Service", line.Description)

	line = ResolveLine(model.GASBUnmapped, "1110", "00")
	assert.Equal(t, "Unknown", line.StatementType)
	assert.Equal(t, "XX", line.Code)
	assert.Equal(t, "Unmapped Account", line.Description)

	line = ResolveLine(model.GASBOtherResources, "7020", "00")
	assert.Equal(t, "70", line.Code)
	assert.Equal(t, "Investment Earnings", line.Description)

	line = ResolveLine(model.GASBClearingAccounts, "5000", "00")
	assert.Equal(t, "Revenues & Expenditures", line.StatementType)
	assert.Equal(t, "REVENUES", line.Section)
}
