package engine_test

import (
	"testing"

	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_GrowthAndVacancy(t *testing.T) {
	income := domain.IncomeAssumptions{
		GrossPotentialRent: dec("1000000"),
		VacancyRate:        dec("0.05"),
		RentGrowthRate:     dec("-0.01"),
	}

	rows := newEngine().Project(income, domain.SimpleExpenses{ExpenseRate: dec("0.2")}, 3)
	require.Len(t, rows, 3)

	assert.Equal(t, "1000000", rows[0].GPI.String())
	assert.Equal(t, "990000", rows[1].GPI.String())
	assert.Equal(t, "980100", rows[2].GPI.String())

	assert.Equal(t, "50000", rows[0].VacancyLoss.String())
	assert.Equal(t, "950000", rows[0].EGI.String())
	assert.Equal(t, "200000", rows[0].OPEX.String())
	assert.Equal(t, "750000", rows[0].NOI().String())
}

func TestProject_OtherIncomeIsNotVacated(t *testing.T) {
	income := domain.IncomeAssumptions{
		GrossPotentialRent: dec("1000000"),
		VacancyRate:        dec("0.1"),
		OtherIncome:        dec("24000"),
	}
	rows := newEngine().Project(income, nil, 1)
	require.Len(t, rows, 1)
	assert.Equal(t, "924000", rows[0].EGI.String())
	assert.True(t, rows[0].OPEX.IsZero())
}

func TestProject_DetailedExpenses(t *testing.T) {
	income := domain.IncomeAssumptions{GrossPotentialRent: dec("2000000")}
	expenses := domain.DetailedExpenses{
		ManagementFeeRate: dec("0.05"),
		FixedAnnualCosts:  dec("60000"),
		PropertyTax:       dec("120000"),
		Insurance:         dec("20000"),
		LargeRepairCost:   dec("500000"),
		RepairCycleYears:  3,
		ExpenseGrowthRate: dec("0.1"),
	}

	rows := newEngine().Project(income, expenses, 6)
	require.Len(t, rows, 6)

	// Year 1: 100,000 fee + 200,000 fixed.
	assert.Equal(t, "300000", rows[0].OPEX.String())
	// Year 2: fixed inflated by 10%.
	assert.Equal(t, "320000", rows[1].OPEX.String())
	// Year 3: fixed × 1.21 plus repair × 1.21.
	assert.Equal(t, "947000", rows[2].OPEX.String())
	// Repairs recur only on cycle years.
	assert.True(t, rows[3].OPEX.LessThan(rows[2].OPEX))
	assert.True(t, rows[5].OPEX.GreaterThan(rows[4].OPEX.Add(dec("500000"))))
}

func TestProject_PointerVariantsMatchValues(t *testing.T) {
	income := domain.IncomeAssumptions{GrossPotentialRent: dec("1200000"), VacancyRate: dec("0.03")}
	simple := domain.SimpleExpenses{ExpenseRate: dec("0.18")}

	byValue := newEngine().Project(income, simple, 5)
	byPointer := newEngine().Project(income, &simple, 5)
	assert.Equal(t, byValue, byPointer)

	var nilDetailed *domain.DetailedExpenses
	rows := newEngine().Project(income, nilDetailed, 1)
	assert.True(t, rows[0].OPEX.IsZero())
}

func TestProject_NOIIdentity(t *testing.T) {
	income := domain.IncomeAssumptions{
		GrossPotentialRent: dec("3456789"),
		VacancyRate:        dec("0.073"),
		RentGrowthRate:     dec("0.0125"),
		OtherIncome:        dec("12345"),
	}
	expenses := domain.DetailedExpenses{
		ManagementFeeRate: dec("0.055"),
		FixedAnnualCosts:  dec("77777"),
		PropertyTax:       dec("150001"),
		Insurance:         dec("33333"),
		LargeRepairCost:   dec("1234567"),
		RepairCycleYears:  7,
		ExpenseGrowthRate: dec("0.017"),
	}

	for _, row := range newEngine().Project(income, expenses, 50) {
		assert.True(t, row.NOI().Equal(row.EGI.Sub(row.OPEX)))
		assert.True(t, row.EGI.Equal(row.GPI.Sub(row.VacancyLoss).Add(row.OtherIncome)))
		assert.Equal(t, int32(0), row.GPI.Exponent(), "GPI should be rounded to whole units")
	}
}

func TestProject_NoYears(t *testing.T) {
	rows := newEngine().Project(domain.IncomeAssumptions{GrossPotentialRent: decimal.NewFromInt(1)}, nil, 0)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
