package statement

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/afrgen-dev/afrgen/internal/acctcode"
	"github.com/afrgen-dev/afrgen/internal/model"
)

// FundsRevExpStatement is the Statement of Revenues, Expenditures, and
// Changes in Fund Balances - Governmental Funds.
type FundsRevExpStatement struct {
	Title            string              `json:"title"`
	Funds            map[string]string   `json:"funds"`
	Revenues         FundsRevenues       `json:"revenues"`
	Expenditures     FundsExpenditures   `json:"expenditures"`
	ExcessDeficiency FundLine            `json:"excess_deficiency"`
	OtherFinancing   FundsOtherFinancing `json:"other_financing"`
	NetChange        FundLine            `json:"net_change"`
	FundBalances     FundsBalanceChange  `json:"fund_balances"`
}

type FundsRevenues struct {
	LocalIntermediateSources FundLine `json:"local_intermediate_sources"`
	StateProgramRevenues     FundLine `json:"state_program_revenues"`
	FederalProgramRevenues   FundLine `json:"federal_program_revenues"`
	TotalRevenues            FundLine `json:"total_revenues"`
}

// FundsExpenditures lists current expenditures by program function in
// declaration order, followed by the total.
type FundsExpenditures struct {
	Current           []FundLine `json:"current"`
	TotalExpenditures FundLine   `json:"total_expenditures"`
}

type FundsOtherFinancing struct {
	SaleProperty           FundLine `json:"sale_property"`
	TransfersIn            FundLine `json:"transfers_in"`
	PremiumBondRemarketing FundLine `json:"premium_bond_remarketing"`
	OtherResources         FundLine `json:"other_resources"`
	TransfersOut           FundLine `json:"transfers_out"`
	TotalOtherFinancing    FundLine `json:"total_other_financing"`
}

type FundsBalanceChange struct {
	Beginning FundLine `json:"beginning"`
	Ending    FundLine `json:"ending"`
}

// NewFundsRevExp returns the zero-initialized statement template with one
// expenditure line per declared program, including funds-only programs.
func NewFundsRevExp() *FundsRevExpStatement {
	st := &FundsRevExpStatement{
		Title: "STATEMENT OF REVENUES, EXPENDITURES, AND CHANGES IN FUND BALANCES - GOVERNMENTAL FUNDS",
		Funds: map[string]string{
			"general_fund":    "General Fund",
			"non_major_funds": "Non-Major Funds",
		},
		Revenues: FundsRevenues{
			LocalIntermediateSources: fundLine(lineLocalIntermediate),
			StateProgramRevenues:     fundLine(lineStateProgram),
			FederalProgramRevenues:   fundLine(lineFederalProgram),
			TotalRevenues:            fundLine(lineTotalRevenues),
		},
		Expenditures: FundsExpenditures{
			TotalExpenditures: fundLine(lineTotalExpenditures),
		},
		ExcessDeficiency: fundLine(lineExcessDeficiency),
		OtherFinancing: FundsOtherFinancing{
			SaleProperty:           fundLine(lineSaleProperty),
			TransfersIn:            fundLine(lineTransfersIn),
			PremiumBondRemarketing: fundLine(linePremiumBond),
			OtherResources:         fundLine(lineOtherResources),
			TransfersOut:           fundLine(lineTransfersOut),
			TotalOtherFinancing:    fundLine(lineTotalOtherFin),
		},
		NetChange: fundLine(lineNetChange),
		FundBalances: FundsBalanceChange{
			Beginning: fundLine(lineFundBalancesBegin),
			Ending:    fundLine(lineFundBalancesEnding),
		},
	}
	for _, def := range programDefs {
		desc := def.Description
		if override, ok := fundsDescriptionOverrides[def.Key]; ok {
			desc = override
		}
		st.Expenditures.Current = append(st.Expenditures.Current, FundLine{
			Code:        "00" + def.Function,
			Description: desc,
		})
	}
	return st
}

// expenditure returns the expenditure line for a program key.
func (st *FundsRevExpStatement) expenditure(key string) *FundLine {
	for _, def := range programDefs {
		if def.Key != key {
			continue
		}
		code := "00" + def.Function
		for i := range st.Expenditures.Current {
			if st.Expenditures.Current[i].Code == code {
				return &st.Expenditures.Current[i]
			}
		}
	}
	return nil
}

// revenueLeaves and otherFinancingLeaves map routing keys to fund lines.
func (st *FundsRevExpStatement) revenueLeaves() map[string]*FundLine {
	return map[string]*FundLine{
		"revenues.local_intermediate_sources": &st.Revenues.LocalIntermediateSources,
		"revenues.state_program_revenues":     &st.Revenues.StateProgramRevenues,
		"revenues.federal_program_revenues":   &st.Revenues.FederalProgramRevenues,
	}
}

func (st *FundsRevExpStatement) otherFinancingLeaves() map[string]*FundLine {
	return map[string]*FundLine{
		"other_financing.sale_property":            &st.OtherFinancing.SaleProperty,
		"other_financing.transfers_in":             &st.OtherFinancing.TransfersIn,
		"other_financing.premium_bond_remarketing": &st.OtherFinancing.PremiumBondRemarketing,
		"other_financing.other_resources":          &st.OtherFinancing.OtherResources,
		"other_financing.transfers_out":            &st.OtherFinancing.TransfersOut,
	}
}

// BuildFundsRevExp folds trial balance rows into the governmental funds
// revenues and expenditures statement. Revenue rows route by object code,
// expenditure rows by function code, and other financing rows by object
// code; rows without a mapping entry are skipped.
func BuildFundsRevExp(rows []model.TrialBalanceRow, mapping map[string]model.MappingEntry, balances Balances) *FundsRevExpStatement {
	st := NewFundsRevExp()
	revenueLeaves := st.revenueLeaves()
	financingLeaves := st.otherFinancingLeaves()

	for _, row := range rows {
		entry, ok := mapping[row.AccountCode]
		if !ok {
			continue
		}
		object, ok := acctcode.ObjectCode(row.AccountCode)
		if !ok {
			object = "0000"
		}
		col := columnFor(entry.FundCategory)
		amount := row.CurrentYearActual

		switch {
		case strings.HasPrefix(object, "5"):
			revenueLeaves[fundsRevenueRoute(object)].add(col, amount)
		case strings.HasPrefix(object, "6"):
			function, ok := acctcode.FunctionCode(row.AccountCode)
			if !ok {
				function = "00"
			}
			st.expenditure(programKeyForFunction(function, true)).add(col, amount)
		default:
			if key := fundsOtherFinancingRoute(object); key != "" {
				financingLeaves[key].add(col, amount)
			}
		}
	}

	st.computeTotals(balances)
	return st
}

func (st *FundsRevExpStatement) computeTotals(balances Balances) {
	beginning := map[fundColumn]decimal.Decimal{
		generalFund:   balances.GeneralFund,
		nonMajorFunds: balances.NonMajorFunds,
	}

	for _, col := range []fundColumn{generalFund, nonMajorFunds} {
		st.Revenues.TotalRevenues.add(col, sum(
			st.Revenues.LocalIntermediateSources.amount(col),
			st.Revenues.StateProgramRevenues.amount(col),
			st.Revenues.FederalProgramRevenues.amount(col),
		))

		for i := range st.Expenditures.Current {
			st.Expenditures.TotalExpenditures.add(col, st.Expenditures.Current[i].amount(col))
		}

		st.ExcessDeficiency.add(col,
			st.Revenues.TotalRevenues.amount(col).Sub(st.Expenditures.TotalExpenditures.amount(col)))

		st.OtherFinancing.TotalOtherFinancing.add(col, sum(
			st.OtherFinancing.SaleProperty.amount(col),
			st.OtherFinancing.TransfersIn.amount(col),
			st.OtherFinancing.PremiumBondRemarketing.amount(col),
			st.OtherFinancing.OtherResources.amount(col),
			st.OtherFinancing.TransfersOut.amount(col),
		))

		st.NetChange.add(col,
			st.ExcessDeficiency.amount(col).Add(st.OtherFinancing.TotalOtherFinancing.amount(col)))

		st.FundBalances.Beginning.add(col, beginning[col])
		st.FundBalances.Ending.add(col,
			st.FundBalances.Beginning.amount(col).Add(st.NetChange.amount(col)))
	}
}
