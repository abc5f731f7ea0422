package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
	"github.com/SscSPs/rental_cashflow_app/internal/core/engine"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSimulation() domain.Simulation {
	in := domain.SimulationInput{
		PropertyPrice: decimal.NewFromInt(20000000),
		Loan: domain.LoanTerms{
			Principal:  decimal.NewFromInt(15000000),
			AnnualRate: decimal.RequireFromString("0.02"),
			TermYears:  20,
			Method:     domain.EqualPrincipal,
		},
		Income:       domain.IncomeAssumptions{GrossPotentialRent: decimal.NewFromInt(1300000), VacancyRate: decimal.RequireFromString("0.05")},
		Expenses:     domain.SimpleExpenses{ExpenseRate: decimal.RequireFromString("0.2")},
		Sale:         domain.SaleAssumptions{ExitCapRate: decimal.RequireFromString("0.05")},
		HoldingYears: 3,
	}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return domain.Simulation{
		SimulationID: "sim-1",
		UserID:       "user-1",
		Name:         "Duplex",
		Input:        in,
		Result:       engine.New(engine.DefaultRoundingPolicy).Simulate(in),
		InputHash:    "abc",
		AuditFields:  domain.AuditFields{CreatedAt: now, CreatedBy: "user-1", LastUpdatedAt: now, LastUpdatedBy: "user-1", Version: 1},
	}
}

func TestSimulationMappingRoundTrip(t *testing.T) {
	original := sampleSimulation()

	model, rows, err := ToModelSimulation(original)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "sim-1", rows[2].SimulationID)
	assert.Equal(t, 3, rows[2].Year)
	assert.True(t, rows[2].TotalCashFlow.Equal(original.Result.Rows[2].TotalCashFlow))
	assert.True(t, model.Computable)

	back, err := ToDomainSimulation(model, rows)
	require.NoError(t, err)

	assert.Equal(t, original.Name, back.Name)
	assert.Equal(t, original.AuditFields, back.AuditFields)
	assert.IsType(t, domain.SimpleExpenses{}, back.Input.Expenses)
	assert.Equal(t, domain.EqualPrincipal, back.Input.Loan.Method)
	require.Len(t, back.Result.Rows, 3)
	require.NotNil(t, back.Result.Rows[2].Sale)
	assert.True(t, back.Result.Rows[2].Sale.NetProceeds.Equal(original.Result.Rows[2].Sale.NetProceeds))
	require.NotNil(t, back.Result.Valuation.IRR)
	assert.True(t, back.Result.Valuation.IRR.Equal(*original.Result.Valuation.IRR))
}

func TestToDomainSimulation_CorruptDocument(t *testing.T) {
	model, rows, err := ToModelSimulation(sampleSimulation())
	require.NoError(t, err)

	model.Input = []byte("{not json")
	_, err = ToDomainSimulation(model, rows)
	assert.Error(t, err)
}
