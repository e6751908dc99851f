package model

// TEACategory is the coarse TEA object classification, keyed off the first
// digit of the object code.
type TEACategory string

const (
	TEAAssets          TEACategory = "Assets"
	TEALiabilities     TEACategory = "Liabilities"
	TEAFundBalances    TEACategory = "Fund Balances/Net Position"
	TEAClearing        TEACategory = "Clearing Accounts"
	TEARevenues        TEACategory = "Revenues"
	TEAExpenditures    TEACategory = "Expenditures/Expenses"
	TEAOtherResources  TEACategory = "Other Resources/Non-operating Revenues"
	TEAOtherUses       TEACategory = "Other Uses/Non-operating Expenses"
	TEAUnknown         TEACategory = "Unknown"
	TEAUnmappedLiteral TEACategory = "Unmapped"
)

// GASBCategory is the statement-level classification bucket used to
// aggregate object codes into financial-statement line items.
type GASBCategory string

const (
	GASBCurrentAssets        GASBCategory = "current_assets"
	GASBCapitalAssets        GASBCategory = "capital_assets"
	GASBDeferredOutflows     GASBCategory = "deferred_outflows"
	GASBCurrentLiabilities   GASBCategory = "current_liabilities"
	GASBLongTermLiabilities  GASBCategory = "long_term_liabilities"
	GASBDeferredInflows      GASBCategory = "deferred_inflows"
	GASBNetInvestmentCapital GASBCategory = "net_investment_capital_assets"
	GASBRestrictedNet        GASBCategory = "restricted_net_position"
	GASBUnrestrictedNet      GASBCategory = "unrestricted_net_position"
	GASBProgramRevenues      GASBCategory = "program_revenues"
	GASBGeneralRevenues      GASBCategory = "general_revenues"
	GASBProgramExpenses      GASBCategory = "program_expenses"
	GASBGeneralExpenses      GASBCategory = "general_expenses"
	GASBOtherResources       GASBCategory = "other_resources"
	GASBOtherUses            GASBCategory = "other_uses"
	GASBClearingAccounts     GASBCategory = "clearing_accounts"
	GASBUnknown              GASBCategory = "unknown"
	GASBUnmapped             GASBCategory = "Unmapped"
)

// FundCategory classifies which governmental fund a balance belongs to,
// keyed off the 3-digit fund code.
type FundCategory string

const (
	FundGeneral           FundCategory = "general_fund"
	FundSpecialRevenue    FundCategory = "special_revenue_funds"
	FundEnterprise        FundCategory = "enterprise_funds"
	FundInternalService   FundCategory = "internal_service_funds"
	FundDebtService       FundCategory = "debt_service_funds"
	FundCapitalProjects   FundCategory = "capital_projects_funds"
	FundPermanent         FundCategory = "permanent_funds"
	FundFiduciary         FundCategory = "fiduciary_funds"
	FundOtherGovernmental FundCategory = "other_governmental_funds"
	FundUnmapped          FundCategory = "Unmapped"
)
