package engine

import (
	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeSaleProceeds returns price − broker fee − transfer costs − capital gains tax − remaining loan.
// The result is not clamped: a negative value means the owner pays at closing.
func (e *Engine) ComputeSaleProceeds(salePrice, brokerFeeRate, transferCosts, capitalGainsTax, remainingLoanBalance decimal.Decimal) decimal.Decimal {
	brokerFee := e.policy.Money(salePrice.Mul(brokerFeeRate))
	return salePrice.
		Sub(brokerFee).
		Sub(transferCosts).
		Sub(capitalGainsTax).
		Sub(remainingLoanBalance)
}

// SalePrice picks the exit price: a positive target price wins, otherwise the
// forward NOI is capitalized at the exit cap rate. No usable input gives zero.
func (e *Engine) SalePrice(forwardNOI decimal.Decimal, sale domain.SaleAssumptions) decimal.Decimal {
	if sale.TargetSalePrice != nil && sale.TargetSalePrice.IsPositive() {
		return e.policy.Money(*sale.TargetSalePrice)
	}
	return e.policy.Money(PriceFromCapRate(forwardNOI, sale.ExitCapRate))
}
