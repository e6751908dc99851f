package statement

import (
	"github.com/afrgen-dev/afrgen/internal/acctcode"
	"github.com/afrgen-dev/afrgen/internal/model"
)

// NetPositionStatement is the government-wide Statement of Net Position.
type NetPositionStatement struct {
	Title             string                      `json:"title"`
	Assets            NetPositionAssets           `json:"assets"`
	DeferredOutflows  NetPositionDeferredOutflows `json:"deferred_outflows"`
	Liabilities       NetPositionLiabilities      `json:"liabilities"`
	DeferredInflows   NetPositionDeferredInflows  `json:"deferred_inflows"`
	NetPosition       NetPositionSection          `json:"net_position"`
	BalanceValidation BalanceValidation           `json:"balance_validation"`
}

type NetPositionAssets struct {
	CashAndCashEquivalents  LineItem          `json:"cash_and_cash_equivalents"`
	PropertyTaxesReceivable LineItem          `json:"property_taxes_receivable"`
	DueFromOtherGovernments LineItem          `json:"due_from_other_governments"`
	DueFromFiduciary        LineItem          `json:"due_from_fiduciary"`
	OtherReceivables        LineItem          `json:"other_receivables"`
	Inventories             LineItem          `json:"inventories"`
	UnrealizedExpenses      LineItem          `json:"unrealized_expenses"`
	CapitalAssets           CapitalAssetLines `json:"capital_assets"`
	TotalAssets             LineItem          `json:"total_assets"`
}

type CapitalAssetLines struct {
	Land                   LineItem `json:"land"`
	BuildingsImprovements  LineItem `json:"buildings_improvements"`
	FurnitureEquipment     LineItem `json:"furniture_equipment"`
	ConstructionInProgress LineItem `json:"construction_in_progress"`
}

type NetPositionDeferredOutflows struct {
	DeferredChargeRefunding LineItem `json:"deferred_charge_refunding"`
	DeferredOutflowPensions LineItem `json:"deferred_outflow_pensions"`
	DeferredOutflowOPEB     LineItem `json:"deferred_outflow_opeb"`
	TotalDeferredOutflows   LineItem `json:"total_deferred_outflows"`
}

type NetPositionLiabilities struct {
	AccountsPayable       LineItem              `json:"accounts_payable"`
	InterestPayable       LineItem              `json:"interest_payable"`
	AccruedLiabilities    LineItem              `json:"accrued_liabilities"`
	DueToOtherGovernments LineItem              `json:"due_to_other_governments"`
	UnearnedRevenue       LineItem              `json:"unearned_revenue"`
	Noncurrent            NoncurrentLiabilities `json:"noncurrent_liabilities"`
	TotalLiabilities      LineItem              `json:"total_liabilities"`
}

type NoncurrentLiabilities struct {
	DueWithinOneYear    LineItem `json:"due_within_one_year"`
	DueMoreThanOneYear  LineItem `json:"due_more_than_one_year"`
	NetPensionLiability LineItem `json:"net_pension_liability"`
	NetOPEBLiability    LineItem `json:"net_opeb_liability"`
}

type NetPositionDeferredInflows struct {
	DeferredInflowPensions LineItem `json:"deferred_inflow_pensions"`
	DeferredInflowOPEB     LineItem `json:"deferred_inflow_opeb"`
	TotalDeferredInflows   LineItem `json:"total_deferred_inflows"`
}

type NetPositionSection struct {
	NetInvestmentCapitalAssets LineItem           `json:"net_investment_capital_assets"`
	Restricted                 RestrictedPosition `json:"restricted"`
	Unrestricted               LineItem           `json:"unrestricted"`
	TotalNetPosition           LineItem           `json:"total_net_position"`
}

type RestrictedPosition struct {
	StateFederalPrograms LineItem `json:"state_federal_programs"`
	DebtService          LineItem `json:"debt_service"`
}

// NewNetPosition returns the zero-initialized statement template.
func NewNetPosition() *NetPositionStatement {
	return &NetPositionStatement{
		Title: "STATEMENT OF NET POSITION",
		Assets: NetPositionAssets{
			CashAndCashEquivalents:  item(lineCash),
			PropertyTaxesReceivable: item(linePropertyTaxesRecv),
			DueFromOtherGovernments: item(lineDueFromOtherGovts),
			DueFromFiduciary:        item(lineDueFromFiduciary),
			OtherReceivables:        item(lineOtherReceivablesNet),
			Inventories:             item(lineInventories),
			UnrealizedExpenses:      item(lineUnrealizedExpenses),
			CapitalAssets: CapitalAssetLines{
				Land:                   item(lineLand),
				BuildingsImprovements:  item(lineBuildings),
				FurnitureEquipment:     item(lineFurniture),
				ConstructionInProgress: item(lineConstruction),
			},
			TotalAssets: item(lineTotalAssets),
		},
		DeferredOutflows: NetPositionDeferredOutflows{
			DeferredChargeRefunding: item(lineDeferredRefunding),
			DeferredOutflowPensions: item(lineDeferredOutPensions),
			DeferredOutflowOPEB:     item(lineDeferredOutOPEB),
			TotalDeferredOutflows:   item(lineTotalDeferredOut),
		},
		Liabilities: NetPositionLiabilities{
			AccountsPayable:       item(lineAccountsPayable),
			InterestPayable:       item(lineInterestPayable),
			AccruedLiabilities:    item(lineAccruedLiabilities),
			DueToOtherGovernments: item(lineDueToOtherGovts),
			UnearnedRevenue:       item(lineUnearnedRevenue),
			Noncurrent: NoncurrentLiabilities{
				DueWithinOneYear:    item(lineDueWithinOneYear),
				DueMoreThanOneYear:  item(lineDueMoreThanOneYear),
				NetPensionLiability: item(lineNetPensionLiability),
				NetOPEBLiability:    item(lineNetOPEBLiability),
			},
			TotalLiabilities: item(lineTotalLiabilities),
		},
		DeferredInflows: NetPositionDeferredInflows{
			DeferredInflowPensions: item(lineDeferredInPensions),
			DeferredInflowOPEB:     item(lineDeferredInOPEB),
			TotalDeferredInflows:   item(lineTotalDeferredIn),
		},
		NetPosition: NetPositionSection{
			NetInvestmentCapitalAssets: item(lineNetInvestmentCapital),
			Restricted: RestrictedPosition{
				StateFederalPrograms: item(lineStateFederalPrograms),
				DebtService:          item(lineDebtService),
			},
			Unrestricted:     item(lineUnrestricted),
			TotalNetPosition: item(lineTotalNetPosition),
		},
	}
}

// leaves maps routing keys to the statement's accumulating line items.
func (st *NetPositionStatement) leaves() map[string]*LineItem {
	return map[string]*LineItem{
		"assets.cash_and_cash_equivalents":               &st.Assets.CashAndCashEquivalents,
		"assets.property_taxes_receivable":               &st.Assets.PropertyTaxesReceivable,
		"assets.due_from_other_governments":              &st.Assets.DueFromOtherGovernments,
		"assets.due_from_fiduciary":                      &st.Assets.DueFromFiduciary,
		"assets.other_receivables":                       &st.Assets.OtherReceivables,
		"assets.inventories":                             &st.Assets.Inventories,
		"assets.unrealized_expenses":                     &st.Assets.UnrealizedExpenses,
		"assets.capital_assets.land":                     &st.Assets.CapitalAssets.Land,
		"assets.capital_assets.buildings_improvements":   &st.Assets.CapitalAssets.BuildingsImprovements,
		"assets.capital_assets.furniture_equipment":      &st.Assets.CapitalAssets.FurnitureEquipment,
		"assets.capital_assets.construction_in_progress": &st.Assets.CapitalAssets.ConstructionInProgress,
		"deferred_outflows.deferred_charge_refunding":    &st.DeferredOutflows.DeferredChargeRefunding,
		"deferred_outflows.deferred_outflow_pensions":    &st.DeferredOutflows.DeferredOutflowPensions,
		"deferred_outflows.deferred_outflow_opeb":        &st.DeferredOutflows.DeferredOutflowOPEB,
		"liabilities.accounts_payable":                   &st.Liabilities.AccountsPayable,
		"liabilities.interest_payable":                   &st.Liabilities.InterestPayable,
		"liabilities.accrued_liabilities":                &st.Liabilities.AccruedLiabilities,
		"liabilities.due_to_other_governments":           &st.Liabilities.DueToOtherGovernments,
		"liabilities.unearned_revenue":                   &st.Liabilities.UnearnedRevenue,
		"liabilities.noncurrent.due_within_one_year":     &st.Liabilities.Noncurrent.DueWithinOneYear,
		"liabilities.noncurrent.due_more_than_one_year":  &st.Liabilities.Noncurrent.DueMoreThanOneYear,
		"liabilities.noncurrent.net_pension_liability":   &st.Liabilities.Noncurrent.NetPensionLiability,
		"liabilities.noncurrent.net_opeb_liability":      &st.Liabilities.Noncurrent.NetOPEBLiability,
		"deferred_inflows.deferred_inflow_pensions":      &st.DeferredInflows.DeferredInflowPensions,
		"deferred_inflows.deferred_inflow_opeb":          &st.DeferredInflows.DeferredInflowOPEB,
		"net_position.net_investment_capital_assets":     &st.NetPosition.NetInvestmentCapitalAssets,
		"net_position.restricted.state_federal_programs": &st.NetPosition.Restricted.StateFederalPrograms,
		"net_position.restricted.debt_service":           &st.NetPosition.Restricted.DebtService,
		"net_position.unrestricted":                      &st.NetPosition.Unrestricted,
	}
}

// BuildNetPosition folds trial balance rows into the Statement of Net
// Position. Rows without a mapping entry are skipped.
func BuildNetPosition(rows []model.TrialBalanceRow, mapping map[string]model.MappingEntry) *NetPositionStatement {
	st := NewNetPosition()
	leaves := st.leaves()

	for _, row := range rows {
		if _, ok := mapping[row.AccountCode]; !ok {
			continue
		}
		object, ok := acctcode.ObjectCode(row.AccountCode)
		if !ok {
			object = "0000"
		}
		if key := netPositionRoute(object); key != "" {
			leaf := leaves[key]
			leaf.Amount = leaf.Amount.Add(row.CurrentYearActual)
		}
	}

	st.computeTotals()
	return st
}

// computeTotals recomputes every subtotal as the literal sum of its named
// children and runs the balance-equation check.
func (st *NetPositionStatement) computeTotals() {
	st.Assets.TotalAssets.Amount = sum(
		st.Assets.CashAndCashEquivalents.Amount,
		st.Assets.PropertyTaxesReceivable.Amount,
		st.Assets.DueFromOtherGovernments.Amount,
		st.Assets.DueFromFiduciary.Amount,
		st.Assets.OtherReceivables.Amount,
		st.Assets.Inventories.Amount,
		st.Assets.UnrealizedExpenses.Amount,
		st.Assets.CapitalAssets.Land.Amount,
		st.Assets.CapitalAssets.BuildingsImprovements.Amount,
		st.Assets.CapitalAssets.FurnitureEquipment.Amount,
		st.Assets.CapitalAssets.ConstructionInProgress.Amount,
	)

	st.DeferredOutflows.TotalDeferredOutflows.Amount = sum(
		st.DeferredOutflows.DeferredChargeRefunding.Amount,
		st.DeferredOutflows.DeferredOutflowPensions.Amount,
		st.DeferredOutflows.DeferredOutflowOPEB.Amount,
	)

	st.Liabilities.TotalLiabilities.Amount = sum(
		st.Liabilities.AccountsPayable.Amount,
		st.Liabilities.InterestPayable.Amount,
		st.Liabilities.AccruedLiabilities.Amount,
		st.Liabilities.DueToOtherGovernments.Amount,
		st.Liabilities.UnearnedRevenue.Amount,
		st.Liabilities.Noncurrent.DueWithinOneYear.Amount,
		st.Liabilities.Noncurrent.DueMoreThanOneYear.Amount,
		st.Liabilities.Noncurrent.NetPensionLiability.Amount,
		st.Liabilities.Noncurrent.NetOPEBLiability.Amount,
	)

	st.DeferredInflows.TotalDeferredInflows.Amount = sum(
		st.DeferredInflows.DeferredInflowPensions.Amount,
		st.DeferredInflows.DeferredInflowOPEB.Amount,
	)

	st.NetPosition.TotalNetPosition.Amount = sum(
		st.NetPosition.NetInvestmentCapitalAssets.Amount,
		st.NetPosition.Restricted.StateFederalPrograms.Amount,
		st.NetPosition.Restricted.DebtService.Amount,
		st.NetPosition.Unrestricted.Amount,
	)

	left := st.Assets.TotalAssets.Amount.Add(st.DeferredOutflows.TotalDeferredOutflows.Amount)
	right := sum(
		st.Liabilities.TotalLiabilities.Amount,
		st.DeferredInflows.TotalDeferredInflows.Amount,
		st.NetPosition.TotalNetPosition.Amount,
	)
	st.BalanceValidation = BalanceValidation{
		LeftSide:  left,
		RightSide: right,
		Balanced:  left.Sub(right).Abs().LessThan(balanceTolerance),
	}
}
