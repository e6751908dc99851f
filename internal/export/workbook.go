package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/afrgen-dev/afrgen/internal/statement"
)

// sheet wraps an excelize worksheet with a row cursor.
type sheet struct {
	f    *excelize.File
	name string
	row  int
}

func newSheet(f *excelize.File, name string) (*sheet, error) {
	if _, err := f.NewSheet(name); err != nil {
		return nil, fmt.Errorf("creating sheet %s: %w", name, err)
	}
	return &sheet{f: f, name: name}, nil
}

func (s *sheet) addRow(values ...interface{}) error {
	s.row++
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, s.row)
		if err != nil {
			return err
		}
		if err := s.f.SetCellValue(s.name, cell, v); err != nil {
			return fmt.Errorf("writing %s!%s: %w", s.name, cell, err)
		}
	}
	return nil
}

func (s *sheet) blank() error { return s.addRow() }

func (s *sheet) item(l statement.LineItem) error {
	return s.addRow(l.Code, l.Description, l.Amount.InexactFloat64())
}

func (s *sheet) fundLine(l statement.FundLine) error {
	return s.addRow(l.Code, l.Description, l.GeneralFund.InexactFloat64(), l.NonMajorFunds.InexactFloat64())
}

func buildWorkbook(set statement.Set) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeNetPositionSheet(f, set.NetPosition); err != nil {
		return nil, err
	}
	if err := writeActivitiesSheet(f, set.Activities); err != nil {
		return nil, err
	}
	if err := writeFundsBalanceSheet(f, set.FundsBalance); err != nil {
		return nil, err
	}
	if err := writeFundsRevExpSheet(f, set.FundsRevExp); err != nil {
		return nil, err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}
	return f, nil
}

// WriteWorkbook renders the statement set as an xlsx workbook with one
// sheet per statement.
func WriteWorkbook(w io.Writer, set statement.Set) error {
	f, err := buildWorkbook(set)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// SaveWorkbook renders the statement set to an xlsx file on disk.
func SaveWorkbook(path string, set statement.Set) error {
	f, err := buildWorkbook(set)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeNetPositionSheet(f *excelize.File, st *statement.NetPositionStatement) error {
	s, err := newSheet(f, "Net Position")
	if err != nil {
		return err
	}

	steps := []func() error{
		func() error { return s.addRow(st.Title) },
		s.blank,
		func() error { return s.addRow("", "ASSETS") },
		func() error { return s.item(st.Assets.CashAndCashEquivalents) },
		func() error { return s.item(st.Assets.PropertyTaxesReceivable) },
		func() error { return s.item(st.Assets.DueFromOtherGovernments) },
		func() error { return s.item(st.Assets.DueFromFiduciary) },
		func() error { return s.item(st.Assets.OtherReceivables) },
		func() error { return s.item(st.Assets.Inventories) },
		func() error { return s.item(st.Assets.UnrealizedExpenses) },
		func() error { return s.item(st.Assets.CapitalAssets.Land) },
		func() error { return s.item(st.Assets.CapitalAssets.BuildingsImprovements) },
		func() error { return s.item(st.Assets.CapitalAssets.FurnitureEquipment) },
		func() error { return s.item(st.Assets.CapitalAssets.ConstructionInProgress) },
		func() error { return s.item(st.Assets.TotalAssets) },
		s.blank,
		func() error { return s.addRow("", "DEFERRED OUTFLOWS OF RESOURCES") },
		func() error { return s.item(st.DeferredOutflows.DeferredChargeRefunding) },
		func() error { return s.item(st.DeferredOutflows.DeferredOutflowPensions) },
		func() error { return s.item(st.DeferredOutflows.DeferredOutflowOPEB) },
		func() error { return s.item(st.DeferredOutflows.TotalDeferredOutflows) },
		s.blank,
		func() error { return s.addRow("", "LIABILITIES") },
		func() error { return s.item(st.Liabilities.AccountsPayable) },
		func() error { return s.item(st.Liabilities.InterestPayable) },
		func() error { return s.item(st.Liabilities.AccruedLiabilities) },
		func() error { return s.item(st.Liabilities.DueToOtherGovernments) },
		func() error { return s.item(st.Liabilities.UnearnedRevenue) },
		func() error { return s.item(st.Liabilities.Noncurrent.DueWithinOneYear) },
		func() error { return s.item(st.Liabilities.Noncurrent.DueMoreThanOneYear) },
		func() error { return s.item(st.Liabilities.Noncurrent.NetPensionLiability) },
		func() error { return s.item(st.Liabilities.Noncurrent.NetOPEBLiability) },
		func() error { return s.item(st.Liabilities.TotalLiabilities) },
		s.blank,
		func() error { return s.addRow("", "DEFERRED INFLOWS OF RESOURCES") },
		func() error { return s.item(st.DeferredInflows.DeferredInflowPensions) },
		func() error { return s.item(st.DeferredInflows.DeferredInflowOPEB) },
		func() error { return s.item(st.DeferredInflows.TotalDeferredInflows) },
		s.blank,
		func() error { return s.addRow("", "NET POSITION") },
		func() error { return s.item(st.NetPosition.NetInvestmentCapitalAssets) },
		func() error { return s.item(st.NetPosition.Restricted.StateFederalPrograms) },
		func() error { return s.item(st.NetPosition.Restricted.DebtService) },
		func() error { return s.item(st.NetPosition.Unrestricted) },
		func() error { return s.item(st.NetPosition.TotalNetPosition) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func writeActivitiesSheet(f *excelize.File, st *statement.ActivitiesStatement) error {
	s, err := newSheet(f, "Activities")
	if err != nil {
		return err
	}

	if err := s.addRow(st.Title); err != nil {
		return err
	}
	if err := s.blank(); err != nil {
		return err
	}
	if err := s.addRow("Code", "Program", "Expenses", "Charges for Services", "Operating Grants", "Net (Expense) Revenue"); err != nil {
		return err
	}
	writeProgram := func(p statement.ProgramLine) error {
		return s.addRow(p.Code, p.Description,
			p.Expenses.InexactFloat64(),
			p.ChargesForServices.InexactFloat64(),
			p.OperatingGrants.InexactFloat64(),
			p.NetExpenseRevenue.InexactFloat64())
	}
	for _, p := range st.GovernmentalActivities {
		if err := writeProgram(p); err != nil {
			return err
		}
	}
	if err := writeProgram(st.TotalGovernmental); err != nil {
		return err
	}
	if err := writeProgram(st.TotalPrimary); err != nil {
		return err
	}

	if err := s.blank(); err != nil {
		return err
	}
	if err := s.addRow("", "General Revenues"); err != nil {
		return err
	}
	revenues := []statement.LineItem{
		st.GeneralRevenues.PropertyTaxesGeneral,
		st.GeneralRevenues.PropertyTaxesDebt,
		st.GeneralRevenues.Chapter313Payments,
		st.GeneralRevenues.InvestmentEarnings,
		st.GeneralRevenues.GrantsContributions,
		st.GeneralRevenues.Miscellaneous,
		st.GeneralRevenues.TotalGeneralRevenues,
	}
	for _, l := range revenues {
		if err := s.item(l); err != nil {
			return err
		}
	}

	if err := s.blank(); err != nil {
		return err
	}
	position := []statement.LineItem{
		st.NetPosition.ChangeInNetPosition,
		st.NetPosition.NetPositionBeginning,
		st.NetPosition.NetPositionEnding,
	}
	for _, l := range position {
		if err := s.item(l); err != nil {
			return err
		}
	}
	return nil
}

func writeFundsBalanceSheet(f *excelize.File, st *statement.FundsBalanceStatement) error {
	s, err := newSheet(f, "Governmental Funds")
	if err != nil {
		return err
	}

	lines := []statement.FundLine{
		st.Assets.CashAndEquivalents,
		st.Assets.TaxesReceivable,
		st.Assets.DueFromOtherGovernments,
		st.Assets.DueFromOtherFunds,
		st.Assets.OtherReceivables,
		st.Assets.Inventories,
		st.Assets.UnrealizedExpenditures,
		st.Assets.TotalAssets,
		st.Liabilities.AccountsPayable,
		st.Liabilities.PayrollDeductions,
		st.Liabilities.AccruedWages,
		st.Liabilities.DueToOtherFunds,
		st.Liabilities.DueToOtherGovernments,
		st.Liabilities.UnearnedRevenue,
		st.Liabilities.TotalLiabilities,
		st.DeferredInflows.UnavailablePropertyTaxes,
		st.DeferredInflows.TotalDeferredInflows,
		st.FundBalances.Nonspendable.Inventories,
		st.FundBalances.Nonspendable.PrepaidItems,
		st.FundBalances.Restricted.FederalStateFunds,
		st.FundBalances.Restricted.RetirementLongTermDebt,
		st.FundBalances.Restricted.OtherRestrictions,
		st.FundBalances.Committed.Construction,
		st.FundBalances.Committed.OtherCommitted,
		st.FundBalances.Assigned.OtherAssigned,
		st.FundBalances.Unassigned,
		st.FundBalances.TotalFundBalances,
		st.TotalLiabDeferredAndFB,
	}

	if err := s.addRow(st.Title); err != nil {
		return err
	}
	if err := s.blank(); err != nil {
		return err
	}
	if err := s.addRow("Code", "Line", "General Fund", "Non-Major Funds"); err != nil {
		return err
	}
	for _, l := range lines {
		if err := s.fundLine(l); err != nil {
			return err
		}
	}
	return nil
}

func writeFundsRevExpSheet(f *excelize.File, st *statement.FundsRevExpStatement) error {
	s, err := newSheet(f, "Revenues Expenditures")
	if err != nil {
		return err
	}

	if err := s.addRow(st.Title); err != nil {
		return err
	}
	if err := s.blank(); err != nil {
		return err
	}
	if err := s.addRow("Code", "Line", "General Fund", "Non-Major Funds"); err != nil {
		return err
	}

	head := []statement.FundLine{
		st.Revenues.LocalIntermediateSources,
		st.Revenues.StateProgramRevenues,
		st.Revenues.FederalProgramRevenues,
		st.Revenues.TotalRevenues,
	}
	for _, l := range head {
		if err := s.fundLine(l); err != nil {
			return err
		}
	}
	for _, l := range st.Expenditures.Current {
		if err := s.fundLine(l); err != nil {
			return err
		}
	}
	tail := []statement.FundLine{
		st.Expenditures.TotalExpenditures,
		st.ExcessDeficiency,
		st.OtherFinancing.SaleProperty,
		st.OtherFinancing.TransfersIn,
		st.OtherFinancing.PremiumBondRemarketing,
		st.OtherFinancing.OtherResources,
		st.OtherFinancing.TransfersOut,
		st.OtherFinancing.TotalOtherFinancing,
		st.NetChange,
		st.FundBalances.Beginning,
		st.FundBalances.Ending,
	}
	for _, l := range tail {
		if err := s.fundLine(l); err != nil {
			return err
		}
	}
	return nil
}
