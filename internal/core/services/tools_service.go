package services

import (
	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
	"github.com/SscSPs/rental_cashflow_app/internal/core/engine"
	portssvc "github.com/SscSPs/rental_cashflow_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type toolsService struct {
	engine *engine.Engine
}

// NewToolsService creates the calculator service
func NewToolsService(eng *engine.Engine) portssvc.ToolsSvc {
	return &toolsService{engine: eng}
}

var _ portssvc.ToolsSvc = (*toolsService)(nil)

func (s *toolsService) AmortizationSchedule(loan domain.LoanTerms) []domain.AmortizationRow {
	return s.engine.Schedule(loan)
}

func (s *toolsService) PriceFromCapRate(noi, capRate decimal.Decimal) (decimal.Decimal, *decimal.Decimal) {
	policy := s.engine.Policy()
	price := policy.Money(engine.PriceFromCapRate(noi, capRate))
	return price, policy.RatePtr(engine.CapRate(noi, price))
}
