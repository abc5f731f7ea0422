package engine

import (
	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Computable reports whether the input can produce a meaningful ledger.
func Computable(in domain.SimulationInput) bool {
	switch {
	case !in.PropertyPrice.IsPositive():
		return false
	case in.HoldingYears <= 0 || in.HoldingYears > MaxHoldingYears:
		return false
	case in.Loan.Principal.IsNegative(), in.Loan.AnnualRate.IsNegative():
		return false
	case in.Loan.Principal.IsPositive() && in.Loan.TermYears <= 0:
		// Borrowed money with no repayment schedule would never be paid back
		return false
	case in.AcquisitionCosts.IsNegative():
		return false
	case in.Income.VacancyRate.IsNegative(), in.Income.VacancyRate.GreaterThan(one):
		return false
	case in.Tax.IndividualRate.IsNegative(), in.Tax.CorporateRate.IsNegative():
		return false
	case in.Tax.ShortTermCapitalGainsRate.IsNegative(), in.Tax.LongTermCapitalGainsRate.IsNegative():
		return false
	case in.Sale.BrokerFeeRate.IsNegative():
		return false
	}
	return true
}

// Simulate runs the full pipeline once and derives every metric from the one ledger.
// Input that is not Computable yields Computable=false, no rows and zero metrics.
func (e *Engine) Simulate(in domain.SimulationInput) domain.SimulationResult {
	if !Computable(in) {
		return domain.SimulationResult{
			Computable: false,
			Rows:       []domain.YearlyCashFlowRow{},
		}
	}

	n := in.HoldingYears
	amortization := e.Schedule(in.Loan)
	// One extra projected year supplies the forward NOI for exit and reversion pricing.
	projected := e.Project(in.Income, in.Expenses, n+1)
	holding := projected[:n]
	taxRows := e.TaxSchedule(holding, amortization, in.Tax)

	forwardNOI := projected[n].NOI()
	rows := e.Assemble(amortization, holding, taxRows, n, ExitTerms{
		SalePrice:     e.SalePrice(forwardNOI, in.Sale),
		BrokerFeeRate: in.Sale.BrokerFeeRate,
		TransferCosts: in.Sale.TransferCosts,
		CostBasis:     in.TotalInvestment(),
		Tax:           in.Tax,
	})

	return domain.SimulationResult{
		Computable: true,
		Rows:       rows,
		Valuation:  e.Valuate(in, rows, forwardNOI),
	}
}

// Valuate derives the metric bundle from an assembled ledger.
// forwardNOI is the NOI of the year after exit, used by the DCF reversion.
func (e *Engine) Valuate(in domain.SimulationInput, rows []domain.YearlyCashFlowRow, forwardNOI decimal.Decimal) domain.ValuationResult {
	equity := e.policy.Money(in.InitialEquity())
	investment := e.policy.Money(in.TotalInvestment())
	result := domain.ValuationResult{
		InitialEquity:   equity,
		TotalInvestment: investment,
	}
	if len(rows) == 0 {
		return result
	}

	flows := make([]decimal.Decimal, 0, len(rows)+1)
	flows = append(flows, equity.Neg())
	noi := make([]decimal.Decimal, 0, len(rows)+1)
	totalATCF := decimal.Zero
	var minDSCR *decimal.Decimal
	for _, row := range rows {
		flows = append(flows, row.TotalCashFlow)
		noi = append(noi, row.NOI)
		totalATCF = totalATCF.Add(row.ATCF)
		if row.DSCR != nil && (minDSCR == nil || row.DSCR.LessThan(*minDSCR)) {
			minDSCR = row.DSCR
		}
	}
	noi = append(noi, forwardNOI)

	last := rows[len(rows)-1]
	if last.Sale != nil {
		result.NetSaleProceeds = last.Sale.NetProceeds
	}
	first := rows[0]

	result.IRR = IRR(flows)
	result.NPV = e.policy.Money(NPV(in.DiscountRate, flows))
	result.DCFValue = e.policy.Money(DCFValue(noi, in.DiscountRate, in.TerminalCapRate, in.DCFSaleCostRate))
	result.DSCR = first.DSCR
	result.MinDSCR = minDSCR
	result.CCR = CCR(first.BTCF, equity)
	result.PaybackPeriod = PaybackPeriod(equity, first.BTCF)
	result.CapRate = CapRate(first.NOI, in.PropertyPrice)
	result.NOIYield = CapRate(first.NOI, investment)
	result.GrossYield = CapRate(first.GPI, in.PropertyPrice)
	result.ROI = ROI(totalATCF, result.NetSaleProceeds, equity)
	return result
}
