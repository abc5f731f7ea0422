package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// SimulationInput is the flat set of assumptions for one simulation run.
type SimulationInput struct {
	PropertyPrice    decimal.Decimal    `json:"propertyPrice"`
	AcquisitionCosts decimal.Decimal    `json:"acquisitionCosts"`
	Loan             LoanTerms          `json:"loan"`
	Income           IncomeAssumptions  `json:"income"`
	Expenses         ExpenseAssumptions `json:"-"`
	Tax              TaxAssumptions     `json:"tax"`
	Sale             SaleAssumptions    `json:"sale"`
	HoldingYears     int                `json:"holdingYears"`
	DiscountRate     decimal.Decimal    `json:"discountRate"`
	TerminalCapRate  decimal.Decimal    `json:"terminalCapRate"`
	DCFSaleCostRate  decimal.Decimal    `json:"dcfSaleCostRate"`
}

// InitialEquity is the cash the investor puts in at year 0.
func (in SimulationInput) InitialEquity() decimal.Decimal {
	return in.TotalInvestment().Sub(in.Loan.Principal)
}

// TotalInvestment is price plus acquisition costs.
func (in SimulationInput) TotalInvestment() decimal.Decimal {
	return in.PropertyPrice.Add(in.AcquisitionCosts)
}

type simulationInputAlias SimulationInput

type simulationInputJSON struct {
	simulationInputAlias
	ExpenseMode ExpenseMode     `json:"expenseMode"`
	Expenses    json.RawMessage `json:"expenses"`
}

// MarshalJSON writes the expense variant next to its mode tag.
func (in SimulationInput) MarshalJSON() ([]byte, error) {
	out := simulationInputJSON{simulationInputAlias: simulationInputAlias(in)}
	if in.Expenses != nil {
		raw, err := json.Marshal(in.Expenses)
		if err != nil {
			return nil, err
		}
		out.ExpenseMode = in.Expenses.Mode()
		out.Expenses = raw
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores the expense variant named by expenseMode.
func (in *SimulationInput) UnmarshalJSON(data []byte) error {
	var raw simulationInputJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*in = SimulationInput(raw.simulationInputAlias)
	if len(raw.Expenses) == 0 || string(raw.Expenses) == "null" {
		return nil
	}
	switch raw.ExpenseMode {
	case SimpleExpenseMode:
		var e SimpleExpenses
		if err := json.Unmarshal(raw.Expenses, &e); err != nil {
			return err
		}
		in.Expenses = e
	case DetailedExpenseMode:
		var e DetailedExpenses
		if err := json.Unmarshal(raw.Expenses, &e); err != nil {
			return err
		}
		in.Expenses = e
	default:
		return fmt.Errorf("unknown expense mode %q", raw.ExpenseMode)
	}
	return nil
}

// SimulationResult is the engine's output: the ledger plus the metrics read from it.
type SimulationResult struct {
	Computable bool                `json:"computable"`
	Rows       []YearlyCashFlowRow `json:"rows"`
	Valuation  ValuationResult     `json:"valuation"`
}

// Simulation is a stored simulation owned by a user.
type Simulation struct {
	SimulationID string           `json:"simulationID"` // Primary Key (UUID)
	UserID       string           `json:"userID"`
	Name         string           `json:"name"`
	Input        SimulationInput  `json:"input"`
	Result       SimulationResult `json:"result"`
	InputHash    string           `json:"inputHash"`
	AuditFields
}

// Scenario is a named what-if variant of a base input.
type Scenario struct {
	Name      string            `json:"name"`
	Overrides ScenarioOverrides `json:"overrides"`
}

// ScenarioOverrides lists the assumptions a scenario may change. Nil fields keep the base value.
type ScenarioOverrides struct {
	PropertyPrice   *decimal.Decimal `json:"propertyPrice,omitempty"`
	LoanPrincipal   *decimal.Decimal `json:"loanPrincipal,omitempty"`
	LoanRate        *decimal.Decimal `json:"loanRate,omitempty"`
	RentGrowthRate  *decimal.Decimal `json:"rentGrowthRate,omitempty"`
	VacancyRate     *decimal.Decimal `json:"vacancyRate,omitempty"`
	ExitCapRate     *decimal.Decimal `json:"exitCapRate,omitempty"`
	DiscountRate    *decimal.Decimal `json:"discountRate,omitempty"`
	HoldingYears    *int             `json:"holdingYears,omitempty"`
	TargetSalePrice *decimal.Decimal `json:"targetSalePrice,omitempty"`
}

// Apply returns a copy of base with the overrides set. base is not modified.
func (o ScenarioOverrides) Apply(base SimulationInput) SimulationInput {
	in := base
	if o.PropertyPrice != nil {
		in.PropertyPrice = *o.PropertyPrice
	}
	if o.LoanPrincipal != nil {
		in.Loan.Principal = *o.LoanPrincipal
	}
	if o.LoanRate != nil {
		in.Loan.AnnualRate = *o.LoanRate
	}
	if o.RentGrowthRate != nil {
		in.Income.RentGrowthRate = *o.RentGrowthRate
	}
	if o.VacancyRate != nil {
		in.Income.VacancyRate = *o.VacancyRate
	}
	if o.ExitCapRate != nil {
		in.Sale.ExitCapRate = *o.ExitCapRate
	}
	if o.DiscountRate != nil {
		in.DiscountRate = *o.DiscountRate
	}
	if o.HoldingYears != nil {
		in.HoldingYears = *o.HoldingYears
	}
	if o.TargetSalePrice != nil {
		price := *o.TargetSalePrice
		in.Sale.TargetSalePrice = &price
	}
	return in
}

// ScenarioOutcome pairs a scenario name with its result.
type ScenarioOutcome struct {
	Name   string           `json:"name"`
	Result SimulationResult `json:"result"`
}
