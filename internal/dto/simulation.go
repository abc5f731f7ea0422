package dto

import (
	"time"

	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LoanRequest describes the acquisition loan. A zero principal means an all-cash purchase.
type LoanRequest struct {
	Principal  decimal.Decimal `json:"principal" binding:"gte=0"`
	AnnualRate decimal.Decimal `json:"annualRate" binding:"fraction"`
	TermYears  int             `json:"termYears" binding:"gte=0,lte=50"`
	Method     string          `json:"method" binding:"omitempty,oneof=EQUAL_PAYMENT EQUAL_PRINCIPAL"`
}

// IncomeRequest describes the rent side.
type IncomeRequest struct {
	GrossPotentialRent decimal.Decimal `json:"grossPotentialRent" binding:"gte=0"`
	VacancyRate        decimal.Decimal `json:"vacancyRate" binding:"fraction"`
	RentGrowthRate     decimal.Decimal `json:"rentGrowthRate" binding:"growth"`
	OtherIncome        decimal.Decimal `json:"otherIncome" binding:"gte=0"`
}

// ExpensesRequest carries either expense variant, selected by Mode.
// SIMPLE reads ExpenseRate only; DETAILED reads the itemized fields.
type ExpensesRequest struct {
	Mode              string          `json:"mode" binding:"required,oneof=SIMPLE DETAILED"`
	ExpenseRate       decimal.Decimal `json:"expenseRate" binding:"fraction"`
	ManagementFeeRate decimal.Decimal `json:"managementFeeRate" binding:"fraction"`
	FixedAnnualCosts  decimal.Decimal `json:"fixedAnnualCosts" binding:"gte=0"`
	PropertyTax       decimal.Decimal `json:"propertyTax" binding:"gte=0"`
	Insurance         decimal.Decimal `json:"insurance" binding:"gte=0"`
	LargeRepairCost   decimal.Decimal `json:"largeRepairCost" binding:"gte=0"`
	RepairCycleYears  int             `json:"repairCycleYears" binding:"gte=0"`
	ExpenseGrowthRate decimal.Decimal `json:"expenseGrowthRate" binding:"growth"`
}

// TaxRequest holds the flat tax parameters.
type TaxRequest struct {
	DepreciableValue          decimal.Decimal `json:"depreciableValue" binding:"gte=0"`
	DepreciationLifeYears     int             `json:"depreciationLifeYears" binding:"gte=0"`
	Ownership                 string          `json:"ownership" binding:"required,oneof=INDIVIDUAL CORPORATE"`
	IndividualRate            decimal.Decimal `json:"individualRate" binding:"fraction"`
	CorporateRate             decimal.Decimal `json:"corporateRate" binding:"fraction"`
	ShortTermCapitalGainsRate decimal.Decimal `json:"shortTermCapitalGainsRate" binding:"fraction"`
	LongTermCapitalGainsRate  decimal.Decimal `json:"longTermCapitalGainsRate" binding:"fraction"`
	LongTermHoldingYears      int             `json:"longTermHoldingYears" binding:"gte=0"`
	CarryForwardLosses        bool            `json:"carryForwardLosses"`
}

// SaleRequest describes the exit.
type SaleRequest struct {
	ExitCapRate     decimal.Decimal  `json:"exitCapRate" binding:"fraction"`
	TargetSalePrice *decimal.Decimal `json:"targetSalePrice" binding:"omitempty,gt=0"` // Optional, overrides the exit cap rate
	BrokerFeeRate   decimal.Decimal  `json:"brokerFeeRate" binding:"fraction"`
	TransferCosts   decimal.Decimal  `json:"transferCosts" binding:"gte=0"`
}

// SimulationInputRequest defines the assumptions of one simulation.
// Values the engine cannot compute (e.g. a zero price) are accepted and
// answered with computable=false.
type SimulationInputRequest struct {
	PropertyPrice    decimal.Decimal `json:"propertyPrice" binding:"gte=0"`
	AcquisitionCosts decimal.Decimal `json:"acquisitionCosts" binding:"gte=0"`
	Loan             LoanRequest     `json:"loan"`
	Income           IncomeRequest   `json:"income"`
	Expenses         ExpensesRequest `json:"expenses"`
	Tax              TaxRequest      `json:"tax"`
	Sale             SaleRequest     `json:"sale"`
	HoldingYears     int             `json:"holdingYears" binding:"gte=0,lte=50"`
	DiscountRate     decimal.Decimal `json:"discountRate" binding:"gte=0,lte=1"`
	TerminalCapRate  decimal.Decimal `json:"terminalCapRate" binding:"fraction"`
	DCFSaleCostRate  decimal.Decimal `json:"dcfSaleCostRate" binding:"fraction"`
}

// CreateSimulationRequest defines the data needed to store a new simulation.
type CreateSimulationRequest struct {
	Name  string                 `json:"name" binding:"required,max=255"`
	Input SimulationInputRequest `json:"input"`
}

// ToDomain converts the request into the engine's input.
func (r SimulationInputRequest) ToDomain() domain.SimulationInput {
	method := domain.AmortizationMethod(r.Loan.Method)
	if method == "" {
		method = domain.EqualPayment
	}
	return domain.SimulationInput{
		PropertyPrice:    r.PropertyPrice,
		AcquisitionCosts: r.AcquisitionCosts,
		Loan: domain.LoanTerms{
			Principal:  r.Loan.Principal,
			AnnualRate: r.Loan.AnnualRate,
			TermYears:  r.Loan.TermYears,
			Method:     method,
		},
		Income: domain.IncomeAssumptions{
			GrossPotentialRent: r.Income.GrossPotentialRent,
			VacancyRate:        r.Income.VacancyRate,
			RentGrowthRate:     r.Income.RentGrowthRate,
			OtherIncome:        r.Income.OtherIncome,
		},
		Expenses: r.Expenses.ToDomain(),
		Tax: domain.TaxAssumptions{
			DepreciableValue:          r.Tax.DepreciableValue,
			DepreciationLifeYears:     r.Tax.DepreciationLifeYears,
			Ownership:                 domain.OwnershipType(r.Tax.Ownership),
			IndividualRate:            r.Tax.IndividualRate,
			CorporateRate:             r.Tax.CorporateRate,
			ShortTermCapitalGainsRate: r.Tax.ShortTermCapitalGainsRate,
			LongTermCapitalGainsRate:  r.Tax.LongTermCapitalGainsRate,
			LongTermHoldingYears:      r.Tax.LongTermHoldingYears,
			CarryForwardLosses:        r.Tax.CarryForwardLosses,
		},
		Sale: domain.SaleAssumptions{
			ExitCapRate:     r.Sale.ExitCapRate,
			TargetSalePrice: r.Sale.TargetSalePrice,
			BrokerFeeRate:   r.Sale.BrokerFeeRate,
			TransferCosts:   r.Sale.TransferCosts,
		},
		HoldingYears:    r.HoldingYears,
		DiscountRate:    r.DiscountRate,
		TerminalCapRate: r.TerminalCapRate,
		DCFSaleCostRate: r.DCFSaleCostRate,
	}
}

// ToDomain builds the expense variant named by Mode.
func (r ExpensesRequest) ToDomain() domain.ExpenseAssumptions {
	if domain.ExpenseMode(r.Mode) == domain.DetailedExpenseMode {
		return domain.DetailedExpenses{
			ManagementFeeRate: r.ManagementFeeRate,
			FixedAnnualCosts:  r.FixedAnnualCosts,
			PropertyTax:       r.PropertyTax,
			Insurance:         r.Insurance,
			LargeRepairCost:   r.LargeRepairCost,
			RepairCycleYears:  r.RepairCycleYears,
			ExpenseGrowthRate: r.ExpenseGrowthRate,
		}
	}
	return domain.SimpleExpenses{ExpenseRate: r.ExpenseRate}
}

// SimulationResultResponse is the ledger and metrics of one run.
type SimulationResultResponse struct {
	Computable bool                       `json:"computable"`
	Rows       []domain.YearlyCashFlowRow `json:"rows"`
	Valuation  domain.ValuationResult     `json:"valuation"`
}

// SimulationResponse defines the data returned for a stored simulation.
type SimulationResponse struct {
	SimulationID  string                   `json:"simulationID"`
	Name          string                   `json:"name"`
	InputHash     string                   `json:"inputHash"`
	Input         domain.SimulationInput   `json:"input"`
	Result        SimulationResultResponse `json:"result"`
	CreatedAt     time.Time                `json:"createdAt"`
	CreatedBy     string                   `json:"createdBy"`
	LastUpdatedAt time.Time                `json:"lastUpdatedAt"`
	LastUpdatedBy string                   `json:"lastUpdatedBy"`
	Version       int64                    `json:"version"`
}

// SimulationSummaryResponse is a listed simulation without its ledger.
type SimulationSummaryResponse struct {
	SimulationID string                 `json:"simulationID"`
	Name         string                 `json:"name"`
	Computable   bool                   `json:"computable"`
	HoldingYears int                    `json:"holdingYears"`
	Valuation    domain.ValuationResult `json:"valuation"`
	CreatedAt    time.Time              `json:"createdAt"`
}

// ListSimulationsParams defines query parameters for listing simulations.
type ListSimulationsParams struct {
	Limit     int     `form:"limit,default=20" binding:"gte=1,lte=100"`
	NextToken *string `form:"nextToken"`
}

// ListSimulationsResponse wraps a page of simulations.
type ListSimulationsResponse struct {
	Simulations []SimulationSummaryResponse `json:"simulations"`
	NextToken   *string                     `json:"nextToken,omitempty"`
}

// ToSimulationResultResponse converts a domain.SimulationResult to its response DTO
func ToSimulationResultResponse(r *domain.SimulationResult) SimulationResultResponse {
	rows := r.Rows
	if rows == nil {
		rows = []domain.YearlyCashFlowRow{}
	}
	return SimulationResultResponse{
		Computable: r.Computable,
		Rows:       rows,
		Valuation:  r.Valuation,
	}
}

// ToSimulationResponse converts a domain.Simulation to SimulationResponse DTO
func ToSimulationResponse(s *domain.Simulation) SimulationResponse {
	return SimulationResponse{
		SimulationID:  s.SimulationID,
		Name:          s.Name,
		InputHash:     s.InputHash,
		Input:         s.Input,
		Result:        ToSimulationResultResponse(&s.Result),
		CreatedAt:     s.CreatedAt,
		CreatedBy:     s.CreatedBy,
		LastUpdatedAt: s.LastUpdatedAt,
		LastUpdatedBy: s.LastUpdatedBy,
		Version:       s.Version,
	}
}

// ToListSimulationsResponse converts a page of simulations to the list response
func ToListSimulationsResponse(simulations []domain.Simulation, nextToken *string) ListSimulationsResponse {
	res := make([]SimulationSummaryResponse, len(simulations))
	for i, s := range simulations {
		res[i] = SimulationSummaryResponse{
			SimulationID: s.SimulationID,
			Name:         s.Name,
			Computable:   s.Result.Computable,
			HoldingYears: s.Input.HoldingYears,
			Valuation:    s.Result.Valuation,
			CreatedAt:    s.CreatedAt,
		}
	}
	return ListSimulationsResponse{Simulations: res, NextToken: nextToken}
}
