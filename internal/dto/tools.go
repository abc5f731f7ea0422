package dto

import (
	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmortizationRequest defines the loan to schedule.
type AmortizationRequest struct {
	Principal  decimal.Decimal `json:"principal" binding:"gt=0"`
	AnnualRate decimal.Decimal `json:"annualRate" binding:"fraction"`
	TermYears  int             `json:"termYears" binding:"required,gte=1,lte=50"`
	Method     string          `json:"method" binding:"required,oneof=EQUAL_PAYMENT EQUAL_PRINCIPAL"`
}

// AmortizationResponse is the yearly schedule with its totals.
type AmortizationResponse struct {
	Rows           []domain.AmortizationRow `json:"rows"`
	TotalInterest  decimal.Decimal          `json:"totalInterest"`
	TotalPrincipal decimal.Decimal          `json:"totalPrincipal"`
}

// CapRatePriceRequest asks for the price at which noi yields capRate.
type CapRatePriceRequest struct {
	NOI     decimal.Decimal `json:"noi"`
	CapRate decimal.Decimal `json:"capRate" binding:"fraction"`
}

// CapRatePriceResponse holds the price and the cap rate it implies.
type CapRatePriceResponse struct {
	Price          decimal.Decimal  `json:"price"`
	ImpliedCapRate *decimal.Decimal `json:"impliedCapRate"` // Nil when the price is not positive
}

// ToDomain converts the request into loan terms
func (r AmortizationRequest) ToDomain() domain.LoanTerms {
	return domain.LoanTerms{
		Principal:  r.Principal,
		AnnualRate: r.AnnualRate,
		TermYears:  r.TermYears,
		Method:     domain.AmortizationMethod(r.Method),
	}
}

// ToAmortizationResponse sums the schedule into the response DTO
func ToAmortizationResponse(rows []domain.AmortizationRow) AmortizationResponse {
	res := AmortizationResponse{Rows: rows}
	if res.Rows == nil {
		res.Rows = []domain.AmortizationRow{}
	}
	for _, row := range rows {
		res.TotalInterest = res.TotalInterest.Add(row.InterestPaid)
		res.TotalPrincipal = res.TotalPrincipal.Add(row.PrincipalPaid)
	}
	return res
}
