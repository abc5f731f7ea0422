package domain

import "github.com/shopspring/decimal"

// IncomeAssumptions drive the rent side of the projection.
type IncomeAssumptions struct {
	GrossPotentialRent decimal.Decimal `json:"grossPotentialRent"` // Full-occupancy annual rent in year 1
	VacancyRate        decimal.Decimal `json:"vacancyRate"`
	RentGrowthRate     decimal.Decimal `json:"rentGrowthRate"` // Negative for decline scenarios
	OtherIncome        decimal.Decimal `json:"otherIncome"`    // Parking, vending, etc. Not subject to vacancy
}

// ExpenseMode names the variant of ExpenseAssumptions.
type ExpenseMode string

const (
	SimpleExpenseMode   ExpenseMode = "SIMPLE"
	DetailedExpenseMode ExpenseMode = "DETAILED"
)

// ExpenseAssumptions is a closed sum type: SimpleExpenses or DetailedExpenses.
type ExpenseAssumptions interface {
	Mode() ExpenseMode
	isExpenseAssumptions()
}

// SimpleExpenses expresses all operating expenses as one rate of GPI.
type SimpleExpenses struct {
	ExpenseRate decimal.Decimal `json:"expenseRate"`
}

// DetailedExpenses itemizes operating expenses.
type DetailedExpenses struct {
	ManagementFeeRate decimal.Decimal `json:"managementFeeRate"` // Fraction of GPI
	FixedAnnualCosts  decimal.Decimal `json:"fixedAnnualCosts"`
	PropertyTax       decimal.Decimal `json:"propertyTax"`
	Insurance         decimal.Decimal `json:"insurance"`
	LargeRepairCost   decimal.Decimal `json:"largeRepairCost"`
	RepairCycleYears  int             `json:"repairCycleYears"` // Repair recognized when year % cycle == 0
	ExpenseGrowthRate decimal.Decimal `json:"expenseGrowthRate"`
}

func (SimpleExpenses) Mode() ExpenseMode   { return SimpleExpenseMode }
func (DetailedExpenses) Mode() ExpenseMode { return DetailedExpenseMode }

func (SimpleExpenses) isExpenseAssumptions()   {}
func (DetailedExpenses) isExpenseAssumptions() {}

// OwnershipType selects which flat income tax rate applies.
type OwnershipType string

const (
	Individual OwnershipType = "INDIVIDUAL"
	Corporate  OwnershipType = "CORPORATE"
)

// TaxAssumptions holds flat-rate tax parameters supplied by the caller.
type TaxAssumptions struct {
	DepreciableValue          decimal.Decimal `json:"depreciableValue"`
	DepreciationLifeYears     int             `json:"depreciationLifeYears"`
	Ownership                 OwnershipType   `json:"ownership"`
	IndividualRate            decimal.Decimal `json:"individualRate"`
	CorporateRate             decimal.Decimal `json:"corporateRate"`
	ShortTermCapitalGainsRate decimal.Decimal `json:"shortTermCapitalGainsRate"`
	LongTermCapitalGainsRate  decimal.Decimal `json:"longTermCapitalGainsRate"`
	LongTermHoldingYears      int             `json:"longTermHoldingYears"` // Holding years at which the long-term rate starts
	CarryForwardLosses        bool            `json:"carryForwardLosses"`
}

// IncomeTaxRate returns the flat rate for the configured ownership type.
func (t TaxAssumptions) IncomeTaxRate() decimal.Decimal {
	if t.Ownership == Corporate {
		return t.CorporateRate
	}
	return t.IndividualRate
}

// CapitalGainsRate returns the bracket that applies after holdingYears.
func (t TaxAssumptions) CapitalGainsRate(holdingYears int) decimal.Decimal {
	if holdingYears >= t.LongTermHoldingYears {
		return t.LongTermCapitalGainsRate
	}
	return t.ShortTermCapitalGainsRate
}

// SaleAssumptions describe the exit.
type SaleAssumptions struct {
	ExitCapRate     decimal.Decimal  `json:"exitCapRate"`               // Sale price = NOI(n+1) / ExitCapRate
	TargetSalePrice *decimal.Decimal `json:"targetSalePrice,omitempty"` // Overrides the cap-rate price when positive
	BrokerFeeRate   decimal.Decimal  `json:"brokerFeeRate"`
	TransferCosts   decimal.Decimal  `json:"transferCosts"`
}
