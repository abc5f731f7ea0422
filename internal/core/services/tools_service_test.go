package services_test

import (
	"testing"

	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
	"github.com/SscSPs/rental_cashflow_app/internal/core/engine"
	"github.com/SscSPs/rental_cashflow_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolsService_PriceFromCapRate(t *testing.T) {
	svc := services.NewToolsService(engine.New(engine.DefaultRoundingPolicy))

	price, implied := svc.PriceFromCapRate(dec("1000000"), dec("0.05"))
	assert.True(t, price.Equal(dec("20000000")), "price %s", price)
	require.NotNil(t, implied)
	assert.True(t, implied.Equal(dec("0.05")), "implied %s", implied)

	price, implied = svc.PriceFromCapRate(dec("1000000"), dec("0"))
	assert.True(t, price.IsZero())
	assert.Nil(t, implied)
}

func TestToolsService_AmortizationSchedule(t *testing.T) {
	svc := services.NewToolsService(engine.New(engine.DefaultRoundingPolicy))

	rows := svc.AmortizationSchedule(domain.LoanTerms{
		Principal:  dec("1200000"),
		AnnualRate: dec("0"),
		TermYears:  2,
		Method:     domain.EqualPayment,
	})

	require.Len(t, rows, 2)
	assert.True(t, rows[0].PrincipalPaid.Equal(dec("600000")))
	assert.True(t, rows[1].ClosingBalance.IsZero())
	assert.Empty(t, svc.AmortizationSchedule(domain.LoanTerms{}))
}
