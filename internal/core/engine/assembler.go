package engine

import (
	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExitTerms carries what the exit-year row needs to price the sale.
type ExitTerms struct {
	SalePrice     decimal.Decimal
	BrokerFeeRate decimal.Decimal
	TransferCosts decimal.Decimal
	CostBasis     decimal.Decimal // Price plus acquisition costs, before depreciation
	Tax           domain.TaxAssumptions
}

// Assemble joins the amortization, operating and tax streams into the ledger.
//
// The ledger has exactly exitYear rows; a stream shorter than that is
// zero-filled. Row i's loan balance is the amortization closing balance of
// year i. On the exit row the sale is priced and its net proceeds are folded
// into TotalCashFlow, which is the series IRR and NPV discount.
func (e *Engine) Assemble(amortization []domain.AmortizationRow, incomeExpense []domain.IncomeExpenseRow, taxRows []domain.TaxRow, exitYear int, exit ExitTerms) []domain.YearlyCashFlowRow {
	if exitYear <= 0 {
		return []domain.YearlyCashFlowRow{}
	}

	rows := make([]domain.YearlyCashFlowRow, 0, exitYear)
	cumulativeATCF := decimal.Zero
	principalRepaid := decimal.Zero
	accumulatedDepreciation := decimal.Zero

	for i := 0; i < exitYear; i++ {
		row := domain.YearlyCashFlowRow{Year: i + 1}

		if i < len(incomeExpense) {
			ie := incomeExpense[i]
			row.GPI = ie.GPI
			row.VacancyLoss = ie.VacancyLoss
			row.OtherIncome = ie.OtherIncome
			row.EGI = ie.EGI
			row.OPEX = ie.OPEX
		}
		row.NOI = row.EGI.Sub(row.OPEX)

		if i < len(amortization) {
			am := amortization[i]
			row.InterestPaid = am.InterestPaid
			row.PrincipalPaid = am.PrincipalPaid
			row.ADS = am.DebtService
			row.LoanBalance = am.ClosingBalance
		}
		row.BTCF = row.NOI.Sub(row.ADS)
		row.DSCR = DSCR(row.NOI, row.ADS)

		if i < len(taxRows) {
			tr := taxRows[i]
			row.Depreciation = tr.Depreciation
			row.TaxableIncome = tr.TaxableIncome
			row.LossCarryforward = tr.LossCarryforward
			row.IncomeTax = tr.IncomeTax
		}
		row.ATCF = row.BTCF.Sub(row.IncomeTax)

		cumulativeATCF = cumulativeATCF.Add(row.ATCF)
		principalRepaid = principalRepaid.Add(row.PrincipalPaid)
		accumulatedDepreciation = accumulatedDepreciation.Add(row.Depreciation)
		row.CumulativeATCF = cumulativeATCF
		row.EquityRecovered = cumulativeATCF.Add(principalRepaid)
		row.TotalCashFlow = row.ATCF

		if row.Year == exitYear {
			row.Sale = e.sale(exit, accumulatedDepreciation, row.LoanBalance, exitYear)
			row.TotalCashFlow = row.ATCF.Add(row.Sale.NetProceeds)
		}
		rows = append(rows, row)
	}
	return rows
}

func (e *Engine) sale(exit ExitTerms, accumulatedDepreciation, loanBalance decimal.Decimal, holdingYears int) *domain.SaleEvent {
	price := e.policy.Money(exit.SalePrice)
	brokerFee := e.policy.Money(price.Mul(exit.BrokerFeeRate))
	transfer := e.policy.Money(exit.TransferCosts)
	costs := brokerFee.Add(transfer)
	bookValue := e.policy.Money(exit.CostBasis).Sub(accumulatedDepreciation)
	cgTax := e.ComputeCapitalGainsTax(price, costs, bookValue, holdingYears, exit.Tax)
	return &domain.SaleEvent{
		SalePrice:       price,
		SaleCosts:       costs,
		BookValue:       bookValue,
		CapitalGainsTax: cgTax,
		NetProceeds:     e.ComputeSaleProceeds(price, exit.BrokerFeeRate, transfer, cgTax, loanBalance),
	}
}
