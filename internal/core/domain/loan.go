package domain

import "github.com/shopspring/decimal"

// AmortizationMethod selects how a loan is repaid.
type AmortizationMethod string

const (
	EqualPayment   AmortizationMethod = "EQUAL_PAYMENT"   // constant total payment (annuity)
	EqualPrincipal AmortizationMethod = "EQUAL_PRINCIPAL" // constant principal, declining payment
)

// LoanTerms describes the financing of an acquisition.
type LoanTerms struct {
	Principal  decimal.Decimal    `json:"principal"`
	AnnualRate decimal.Decimal    `json:"annualRate"` // Nominal annual rate as a fraction (0.023 = 2.3%)
	TermYears  int                `json:"termYears"`
	Method     AmortizationMethod `json:"method"`
}

// AmortizationRow is one year of a loan schedule.
type AmortizationRow struct {
	Year           int             `json:"year"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	InterestPaid   decimal.Decimal `json:"interestPaid"`
	PrincipalPaid  decimal.Decimal `json:"principalPaid"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	DebtService    decimal.Decimal `json:"debtService"` // ADS = interest + principal
}
