package domain

import "github.com/shopspring/decimal"

// IncomeExpenseRow is one projected year of the operating statement.
type IncomeExpenseRow struct {
	Year        int             `json:"year"`
	GPI         decimal.Decimal `json:"gpi"`
	VacancyLoss decimal.Decimal `json:"vacancyLoss"`
	OtherIncome decimal.Decimal `json:"otherIncome"`
	EGI         decimal.Decimal `json:"egi"`
	OPEX        decimal.Decimal `json:"opex"`
}

// NOI is EGI less OPEX.
func (r IncomeExpenseRow) NOI() decimal.Decimal {
	return r.EGI.Sub(r.OPEX)
}

// TaxRow is the tax outcome of one year.
type TaxRow struct {
	Year             int             `json:"year"`
	Depreciation     decimal.Decimal `json:"depreciation"`
	TaxableIncome    decimal.Decimal `json:"taxableIncome"`
	LossCarryforward decimal.Decimal `json:"lossCarryforward"` // Unused losses after this year
	IncomeTax        decimal.Decimal `json:"incomeTax"`
}

// SaleEvent is populated only on the exit-year row.
type SaleEvent struct {
	SalePrice       decimal.Decimal `json:"salePrice"`
	SaleCosts       decimal.Decimal `json:"saleCosts"` // Broker fee + transfer costs
	BookValue       decimal.Decimal `json:"bookValue"`
	CapitalGainsTax decimal.Decimal `json:"capitalGainsTax"`
	NetProceeds     decimal.Decimal `json:"netProceeds"` // May be negative (negative equity)
}

// YearlyCashFlowRow is one row of the simulation ledger. Every metric reads from these rows.
type YearlyCashFlowRow struct {
	Year             int              `json:"year"`
	GPI              decimal.Decimal  `json:"gpi"`
	VacancyLoss      decimal.Decimal  `json:"vacancyLoss"`
	OtherIncome      decimal.Decimal  `json:"otherIncome"`
	EGI              decimal.Decimal  `json:"egi"`
	OPEX             decimal.Decimal  `json:"opex"`
	NOI              decimal.Decimal  `json:"noi"`
	InterestPaid     decimal.Decimal  `json:"interestPaid"`
	PrincipalPaid    decimal.Decimal  `json:"principalPaid"`
	ADS              decimal.Decimal  `json:"ads"`
	BTCF             decimal.Decimal  `json:"btcf"`
	Depreciation     decimal.Decimal  `json:"depreciation"`
	TaxableIncome    decimal.Decimal  `json:"taxableIncome"`
	LossCarryforward decimal.Decimal  `json:"lossCarryforward"`
	IncomeTax        decimal.Decimal  `json:"incomeTax"`
	ATCF             decimal.Decimal  `json:"atcf"`
	CumulativeATCF   decimal.Decimal  `json:"cumulativeAtcf"`
	LoanBalance      decimal.Decimal  `json:"loanBalance"`
	EquityRecovered  decimal.Decimal  `json:"equityRecovered"` // Cumulative ATCF + principal repaid to date
	DSCR             *decimal.Decimal `json:"dscr"`            // Nil when ADS is zero
	Sale             *SaleEvent       `json:"sale,omitempty"`
	TotalCashFlow    decimal.Decimal  `json:"totalCashFlow"` // ATCF plus net sale proceeds on the exit row
}

// ValuationResult is the metric bundle derived from the ledger. Nil means "not computable".
type ValuationResult struct {
	IRR             *decimal.Decimal `json:"irr"`
	NPV             decimal.Decimal  `json:"npv"`
	DCFValue        decimal.Decimal  `json:"dcfValue"`
	DSCR            *decimal.Decimal `json:"dscr"` // Year 1
	MinDSCR         *decimal.Decimal `json:"minDscr"`
	CCR             *decimal.Decimal `json:"ccr"`
	CapRate         *decimal.Decimal `json:"capRate"`
	NOIYield        *decimal.Decimal `json:"noiYield"`
	GrossYield      *decimal.Decimal `json:"grossYield"`
	ROI             *decimal.Decimal `json:"roi"`
	PaybackPeriod   *decimal.Decimal `json:"paybackPeriod"` // Years
	InitialEquity   decimal.Decimal  `json:"initialEquity"`
	TotalInvestment decimal.Decimal  `json:"totalInvestment"`
	NetSaleProceeds decimal.Decimal  `json:"netSaleProceeds"`
}
