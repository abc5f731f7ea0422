package dto

import (
	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ScenarioOverridesRequest lists the assumptions a variant may change. Omitted fields keep the base value.
type ScenarioOverridesRequest struct {
	PropertyPrice   *decimal.Decimal `json:"propertyPrice" binding:"omitempty,gte=0"`
	LoanPrincipal   *decimal.Decimal `json:"loanPrincipal" binding:"omitempty,gte=0"`
	LoanRate        *decimal.Decimal `json:"loanRate" binding:"omitempty,fraction"`
	RentGrowthRate  *decimal.Decimal `json:"rentGrowthRate" binding:"omitempty,growth"`
	VacancyRate     *decimal.Decimal `json:"vacancyRate" binding:"omitempty,fraction"`
	ExitCapRate     *decimal.Decimal `json:"exitCapRate" binding:"omitempty,fraction"`
	DiscountRate    *decimal.Decimal `json:"discountRate" binding:"omitempty,gte=0,lte=1"`
	HoldingYears    *int             `json:"holdingYears" binding:"omitempty,gte=1,lte=50"`
	TargetSalePrice *decimal.Decimal `json:"targetSalePrice" binding:"omitempty,gt=0"`
}

// ScenarioRequest is one named what-if variant.
type ScenarioRequest struct {
	Name      string                   `json:"name" binding:"required,max=100"`
	Overrides ScenarioOverridesRequest `json:"overrides"`
}

// CompareScenariosRequest defines a base input and its variants.
type CompareScenariosRequest struct {
	Base      SimulationInputRequest `json:"base"`
	Scenarios []ScenarioRequest      `json:"scenarios" binding:"required,min=1,dive"`
}

// ScenarioOutcomeResponse is the result of one compared scenario.
type ScenarioOutcomeResponse struct {
	Name   string                   `json:"name"`
	Result SimulationResultResponse `json:"result"`
}

// CompareScenariosResponse lists the base outcome first, then the variants in request order.
type CompareScenariosResponse struct {
	Outcomes []ScenarioOutcomeResponse `json:"outcomes"`
}

// ToDomain converts the overrides into their domain form
func (r ScenarioOverridesRequest) ToDomain() domain.ScenarioOverrides {
	return domain.ScenarioOverrides{
		PropertyPrice:   r.PropertyPrice,
		LoanPrincipal:   r.LoanPrincipal,
		LoanRate:        r.LoanRate,
		RentGrowthRate:  r.RentGrowthRate,
		VacancyRate:     r.VacancyRate,
		ExitCapRate:     r.ExitCapRate,
		DiscountRate:    r.DiscountRate,
		HoldingYears:    r.HoldingYears,
		TargetSalePrice: r.TargetSalePrice,
	}
}

// ToDomainScenarios converts the requested variants
func (r CompareScenariosRequest) ToDomainScenarios() []domain.Scenario {
	scenarios := make([]domain.Scenario, len(r.Scenarios))
	for i, s := range r.Scenarios {
		scenarios[i] = domain.Scenario{Name: s.Name, Overrides: s.Overrides.ToDomain()}
	}
	return scenarios
}

// ToCompareScenariosResponse converts the outcomes to the response DTO
func ToCompareScenariosResponse(outcomes []domain.ScenarioOutcome) CompareScenariosResponse {
	res := make([]ScenarioOutcomeResponse, len(outcomes))
	for i, o := range outcomes {
		res[i] = ScenarioOutcomeResponse{Name: o.Name, Result: ToSimulationResultResponse(&o.Result)}
	}
	return CompareScenariosResponse{Outcomes: res}
}
