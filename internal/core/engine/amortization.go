package engine

import (
	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Schedule returns the yearly amortization schedule of a loan.
//
// Payments are computed monthly at working precision and summed into annual
// rows; each row is rounded once. Principal paid per row is opening minus
// closing balance, so the principal column always sums to the loan amount and
// the last payment absorbs any drift. A non-positive principal or term, or a
// negative rate, yields an empty schedule.
func (e *Engine) Schedule(loan domain.LoanTerms) []domain.AmortizationRow {
	principal := e.policy.Money(loan.Principal)
	if loan.TermYears <= 0 || !principal.IsPositive() || loan.AnnualRate.IsNegative() {
		return []domain.AmortizationRow{}
	}

	months := loan.TermYears * 12
	monthlyRate := loan.AnnualRate.DivRound(twelve, workPlaces)

	var payment, fixedPrincipal decimal.Decimal
	if loan.Method == domain.EqualPrincipal {
		fixedPrincipal = principal.DivRound(decimal.NewFromInt(int64(months)), workPlaces)
	} else {
		payment = MonthlyPayment(principal, monthlyRate, months)
	}

	rows := make([]domain.AmortizationRow, 0, loan.TermYears)
	balance := principal
	opening := principal
	month := 0
	for year := 1; year <= loan.TermYears; year++ {
		interestSum := decimal.Zero
		for m := 0; m < 12; m++ {
			month++
			interest := balance.Mul(monthlyRate).Round(workPlaces)
			var principalPart decimal.Decimal
			if loan.Method == domain.EqualPrincipal {
				principalPart = fixedPrincipal
			} else {
				principalPart = payment.Sub(interest)
			}
			if month == months || principalPart.GreaterThan(balance) {
				principalPart = balance
			}
			balance = balance.Sub(principalPart)
			interestSum = interestSum.Add(interest)
		}

		closing := e.policy.Money(balance)
		if year == loan.TermYears {
			closing = decimal.Zero
		}
		interestPaid := e.policy.Money(interestSum)
		principalPaid := opening.Sub(closing)
		rows = append(rows, domain.AmortizationRow{
			Year:           year,
			OpeningBalance: opening,
			InterestPaid:   interestPaid,
			PrincipalPaid:  principalPaid,
			ClosingBalance: closing,
			DebtService:    interestPaid.Add(principalPaid),
		})
		opening = closing
	}
	return rows
}

// MonthlyPayment is the level payment P·i(1+i)^n / ((1+i)^n − 1), or P/n when i is zero.
// The result is unrounded (working precision).
func MonthlyPayment(principal, monthlyRate decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(months))
	if monthlyRate.IsZero() {
		return principal.DivRound(n, workPlaces)
	}
	factor := compound(one.Add(monthlyRate), months)
	return principal.Mul(monthlyRate).Mul(factor).DivRound(factor.Sub(one), workPlaces)
}
