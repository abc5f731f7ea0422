package engine

import (
	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// workPlaces is the precision carried by intermediate (sub-row) values.
// Currency rounding happens once per row through RoundingPolicy.Money.
const workPlaces int32 = 12

// powPlaces bounds the digits of compounded growth and discount factors.
const powPlaces int32 = 18

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// RoundingPolicy centralizes every rounding decision of the engine.
// Money is rounded once per ledger row; rates and ratios once at output.
type RoundingPolicy struct {
	MoneyPlaces int32 // 0 rounds to whole currency units, 2 to cents
	RatePlaces  int32 // 4 keeps two decimals of a percentage (0.0523 = 5.23%)
}

// DefaultRoundingPolicy rounds money to whole units and rates to basis points.
var DefaultRoundingPolicy = RoundingPolicy{MoneyPlaces: 0, RatePlaces: 4}

// Money rounds a currency amount half away from zero.
func (p RoundingPolicy) Money(d decimal.Decimal) decimal.Decimal {
	return d.Round(p.MoneyPlaces)
}

// Rate rounds a fraction for presentation.
func (p RoundingPolicy) Rate(d decimal.Decimal) decimal.Decimal {
	return d.Round(p.RatePlaces)
}

// RatePtr rounds a nullable fraction, keeping nil as nil.
func (p RoundingPolicy) RatePtr(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	r := p.Rate(*d)
	return &r
}

// Epsilon is the smallest money unit under this policy.
func (p RoundingPolicy) Epsilon() decimal.Decimal {
	return decimal.New(1, -p.MoneyPlaces)
}

// Valuation returns a copy of v with every ratio rounded for output.
// Money fields are already rounded by the engine. Payback period is in years
// and uses the rate precision as well.
func (p RoundingPolicy) Valuation(v domain.ValuationResult) domain.ValuationResult {
	v.IRR = p.RatePtr(v.IRR)
	v.DSCR = p.RatePtr(v.DSCR)
	v.MinDSCR = p.RatePtr(v.MinDSCR)
	v.CCR = p.RatePtr(v.CCR)
	v.CapRate = p.RatePtr(v.CapRate)
	v.NOIYield = p.RatePtr(v.NOIYield)
	v.GrossYield = p.RatePtr(v.GrossYield)
	v.ROI = p.RatePtr(v.ROI)
	v.PaybackPeriod = p.RatePtr(v.PaybackPeriod)
	return v
}

// Result applies the output rounding to a full simulation result.
// The published IRR is a display value at RatePlaces precision; NPV at that
// rounded rate is not zero. NPV(IRR) ≈ 0 holds for the IRR of Engine.Simulate.
func (p RoundingPolicy) Result(r domain.SimulationResult) domain.SimulationResult {
	rows := make([]domain.YearlyCashFlowRow, len(r.Rows))
	for i, row := range r.Rows {
		row.DSCR = p.RatePtr(row.DSCR)
		rows[i] = row
	}
	r.Rows = rows
	r.Valuation = p.Valuation(r.Valuation)
	return r
}

// compound returns base^n for n >= 0 by repeated squaring, keeping powPlaces digits.
func compound(base decimal.Decimal, n int) decimal.Decimal {
	result := one
	b := base
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(b).Round(powPlaces)
		}
		n >>= 1
		if n > 0 {
			b = b.Mul(b).Round(powPlaces)
		}
	}
	return result
}

// growthFactor is (1+rate)^(year-1), floored at zero for rates below -100%.
func growthFactor(rate decimal.Decimal, year int) decimal.Decimal {
	base := one.Add(rate)
	if base.IsNegative() {
		base = decimal.Zero
	}
	return compound(base, year-1)
}

// ratio divides num by den, returning nil when den is zero.
func ratio(num, den decimal.Decimal) *decimal.Decimal {
	if den.IsZero() {
		return nil
	}
	r := num.DivRound(den, workPlaces)
	return &r
}
