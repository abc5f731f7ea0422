package engine

import (
	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TaxOutcome is the result of taxing one year.
type TaxOutcome struct {
	TaxableIncome    decimal.Decimal // NOI − interest − depreciation, may be negative
	LossCarryforward decimal.Decimal // Unused losses carried into the next year
	IncomeTax        decimal.Decimal
}

// Depreciation returns straight-line depreciation for each of `years` years.
// The yearly charge never exceeds the remaining book value, and the last year
// of the depreciation life takes the exact residual.
func (e *Engine) Depreciation(tax domain.TaxAssumptions, years int) []decimal.Decimal {
	if years <= 0 {
		return []decimal.Decimal{}
	}
	out := make([]decimal.Decimal, years)
	value := e.policy.Money(tax.DepreciableValue)
	if tax.DepreciationLifeYears <= 0 || !value.IsPositive() {
		for i := range out {
			out[i] = decimal.Zero
		}
		return out
	}

	annual := e.policy.Money(value.DivRound(decimal.NewFromInt(int64(tax.DepreciationLifeYears)), workPlaces))
	remaining := value
	for i := range out {
		year := i + 1
		charge := annual
		if year >= tax.DepreciationLifeYears || charge.GreaterThan(remaining) {
			charge = remaining
		}
		remaining = remaining.Sub(charge)
		out[i] = charge
	}
	return out
}

// ComputeTax taxes one year of operations at the flat rate for the ownership type.
// Principal repayment is not deductible. When losses are carried forward,
// carryIn offsets positive taxable income and negative results grow the balance.
func (e *Engine) ComputeTax(noi, interestPaid, depreciation, carryIn decimal.Decimal, tax domain.TaxAssumptions) TaxOutcome {
	taxable := noi.Sub(interestPaid).Sub(depreciation)
	base := taxable
	carryOut := decimal.Zero

	if tax.CarryForwardLosses {
		if taxable.IsNegative() {
			carryOut = carryIn.Add(taxable.Neg())
			base = decimal.Zero
		} else {
			used := decimal.Min(carryIn, taxable)
			base = taxable.Sub(used)
			carryOut = carryIn.Sub(used)
		}
	}

	if base.IsNegative() {
		base = decimal.Zero
	}
	return TaxOutcome{
		TaxableIncome:    taxable,
		LossCarryforward: carryOut,
		IncomeTax:        e.policy.Money(base.Mul(tax.IncomeTaxRate())),
	}
}

// ComputeCapitalGainsTax taxes the gain on sale: price − selling costs − book value.
// The bracket is chosen by holding period against the caller-supplied threshold.
// Losses are not taxed.
func (e *Engine) ComputeCapitalGainsTax(salePrice, sellingCosts, bookValue decimal.Decimal, holdingYears int, tax domain.TaxAssumptions) decimal.Decimal {
	gain := salePrice.Sub(sellingCosts).Sub(bookValue)
	if !gain.IsPositive() {
		return decimal.Zero
	}
	return e.policy.Money(gain.Mul(tax.CapitalGainsRate(holdingYears)))
}

// TaxSchedule runs ComputeTax over the projected years, joining interest from
// the amortization schedule by year (zero once the loan is repaid).
func (e *Engine) TaxSchedule(incomeExpense []domain.IncomeExpenseRow, amortization []domain.AmortizationRow, tax domain.TaxAssumptions) []domain.TaxRow {
	depreciation := e.Depreciation(tax, len(incomeExpense))
	rows := make([]domain.TaxRow, 0, len(incomeExpense))
	carry := decimal.Zero
	for i, ie := range incomeExpense {
		interest := decimal.Zero
		if i < len(amortization) {
			interest = amortization[i].InterestPaid
		}
		outcome := e.ComputeTax(ie.NOI(), interest, depreciation[i], carry, tax)
		carry = outcome.LossCarryforward
		rows = append(rows, domain.TaxRow{
			Year:             ie.Year,
			Depreciation:     depreciation[i],
			TaxableIncome:    outcome.TaxableIncome,
			LossCarryforward: outcome.LossCarryforward,
			IncomeTax:        outcome.IncomeTax,
		})
	}
	return rows
}
