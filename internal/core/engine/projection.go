package engine

import (
	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Project returns `years` rows of gross income, vacancy, effective income and
// operating expenses. Vacancy is a single scalar for the whole run.
func (e *Engine) Project(income domain.IncomeAssumptions, expenses domain.ExpenseAssumptions, years int) []domain.IncomeExpenseRow {
	if years <= 0 {
		return []domain.IncomeExpenseRow{}
	}

	rows := make([]domain.IncomeExpenseRow, 0, years)
	for year := 1; year <= years; year++ {
		rentFactor := growthFactor(income.RentGrowthRate, year)
		gpi := e.policy.Money(income.GrossPotentialRent.Mul(rentFactor))
		vacancy := e.policy.Money(gpi.Mul(income.VacancyRate))
		other := e.policy.Money(income.OtherIncome.Mul(rentFactor))
		rows = append(rows, domain.IncomeExpenseRow{
			Year:        year,
			GPI:         gpi,
			VacancyLoss: vacancy,
			OtherIncome: other,
			EGI:         gpi.Sub(vacancy).Add(other),
			OPEX:        e.policy.Money(operatingExpenses(expenses, year, gpi)),
		})
	}
	return rows
}

// operatingExpenses evaluates either expense variant for one year, unrounded.
func operatingExpenses(expenses domain.ExpenseAssumptions, year int, gpi decimal.Decimal) decimal.Decimal {
	switch x := expenses.(type) {
	case domain.SimpleExpenses:
		return gpi.Mul(x.ExpenseRate)
	case *domain.SimpleExpenses:
		if x == nil {
			return decimal.Zero
		}
		return operatingExpenses(*x, year, gpi)
	case domain.DetailedExpenses:
		inflation := growthFactor(x.ExpenseGrowthRate, year)
		total := gpi.Mul(x.ManagementFeeRate)
		fixed := x.FixedAnnualCosts.Add(x.PropertyTax).Add(x.Insurance)
		total = total.Add(fixed.Mul(inflation))
		if x.RepairCycleYears > 0 && year%x.RepairCycleYears == 0 {
			total = total.Add(x.LargeRepairCost.Mul(inflation))
		}
		return total
	case *domain.DetailedExpenses:
		if x == nil {
			return decimal.Zero
		}
		return operatingExpenses(*x, year, gpi)
	default:
		return decimal.Zero
	}
}
