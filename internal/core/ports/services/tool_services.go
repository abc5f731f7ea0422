package services

import (
	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ToolsSvc exposes single engine stages as calculators
type ToolsSvc interface {
	// AmortizationSchedule returns the yearly schedule of a loan.
	AmortizationSchedule(loan domain.LoanTerms) []domain.AmortizationRow

	// PriceFromCapRate returns the price at which noi yields capRate,
	// together with the cap rate that price implies (nil when undefined).
	PriceFromCapRate(noi, capRate decimal.Decimal) (decimal.Decimal, *decimal.Decimal)
}
