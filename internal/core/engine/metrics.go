package engine

import (
	"math"

	"github.com/shopspring/decimal"
)

// Newton-Raphson parameters for IRR.
const (
	irrInitialGuess  = 0.10
	irrMaxIterations = 100
	irrTolerance     = 1e-7
	irrDerivativeEps = 1e-10
	irrGuessPerturb  = 0.1
	irrLowerBound    = -1.0
	irrUpperBound    = 10.0
)

// NPV discounts flows[t] at (1+rate)^t; flows[0] is undiscounted.
// A rate at or below -100% has no meaningful present value and yields zero.
func NPV(rate decimal.Decimal, flows []decimal.Decimal) decimal.Decimal {
	base := one.Add(rate)
	if !base.IsPositive() {
		return decimal.Zero
	}
	total := decimal.Zero
	for t, cf := range flows {
		if t == 0 {
			total = total.Add(cf)
			continue
		}
		total = total.Add(cf.DivRound(compound(base, t), workPlaces))
	}
	return total
}

// IRR solves NPV(r) = 0 by Newton-Raphson starting at 10%.
//
// It returns nil when the series has no sign change, when iteration does not
// converge within the budget, or when the root falls outside [-100%, +1000%].
// A near-zero derivative perturbs the guess instead of dividing by it.
func IRR(flows []decimal.Decimal) *decimal.Decimal {
	if len(flows) < 2 {
		return nil
	}
	cf := make([]float64, len(flows))
	positive, negative := false, false
	for i, f := range flows {
		cf[i] = f.InexactFloat64()
		if cf[i] > 0 {
			positive = true
		} else if cf[i] < 0 {
			negative = true
		}
	}
	if !positive || !negative {
		return nil
	}

	guess := irrInitialGuess
	for iter := 0; iter < irrMaxIterations; iter++ {
		npv, slope := npvAndSlope(cf, guess)
		if math.Abs(slope) < irrDerivativeEps {
			guess += irrGuessPerturb
			continue
		}
		next := guess - npv/slope
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return nil
		}
		if next <= irrLowerBound {
			// Stay in the domain of (1+r)^-t by halving the distance to -100%.
			next = (guess + irrLowerBound) / 2
		}
		if math.Abs(next-guess) < irrTolerance {
			if next < irrLowerBound || next > irrUpperBound {
				return nil
			}
			r := decimal.NewFromFloat(next)
			return &r
		}
		guess = next
	}
	return nil
}

// npvAndSlope evaluates NPV and dNPV/dr at r.
func npvAndSlope(cf []float64, r float64) (float64, float64) {
	base := 1 + r
	npv, slope := 0.0, 0.0
	discount := 1.0
	for t, f := range cf {
		if t > 0 {
			discount /= base
		}
		npv += f * discount
		slope -= float64(t) * f * discount / base
	}
	return npv, slope
}

// DCFValue is the present value of NOI over the holding period plus the
// discounted reversion value NOI(n+1) / terminalCapRate × (1 − saleCostRate).
// noi holds years 1..n+1; with fewer than two entries there is nothing to value.
// A non-positive terminal cap rate contributes no reversion.
func DCFValue(noi []decimal.Decimal, discountRate, terminalCapRate, saleCostRate decimal.Decimal) decimal.Decimal {
	if len(noi) < 2 {
		return decimal.Zero
	}
	base := one.Add(discountRate)
	if !base.IsPositive() {
		return decimal.Zero
	}
	n := len(noi) - 1
	total := decimal.Zero
	for t := 1; t <= n; t++ {
		total = total.Add(noi[t-1].DivRound(compound(base, t), workPlaces))
	}
	if terminalCapRate.IsPositive() {
		reversion := noi[n].DivRound(terminalCapRate, workPlaces).Mul(one.Sub(saleCostRate))
		total = total.Add(reversion.DivRound(compound(base, n), workPlaces))
	}
	return total
}

// DSCR is NOI / ADS; nil without debt service.
func DSCR(noi, ads decimal.Decimal) *decimal.Decimal {
	return ratio(noi, ads)
}

// CCR is the cash-on-cash return BTCF / equity; nil when equity is not positive.
func CCR(btcf, equity decimal.Decimal) *decimal.Decimal {
	if !equity.IsPositive() {
		return nil
	}
	return ratio(btcf, equity)
}

// PaybackPeriod is equity / BTCF in years; nil unless both are positive.
func PaybackPeriod(equity, btcf decimal.Decimal) *decimal.Decimal {
	if !btcf.IsPositive() || !equity.IsPositive() {
		return nil
	}
	return ratio(equity, btcf)
}

// CapRate is NOI / price; nil when price is not positive.
func CapRate(noi, price decimal.Decimal) *decimal.Decimal {
	if !price.IsPositive() {
		return nil
	}
	return ratio(noi, price)
}

// PriceFromCapRate solves price = NOI / capRate; zero when capRate is not positive.
func PriceFromCapRate(noi, capRate decimal.Decimal) decimal.Decimal {
	if !capRate.IsPositive() {
		return decimal.Zero
	}
	return noi.DivRound(capRate, workPlaces)
}

// ROI is total profit over equity: (Σ ATCF + net sale proceeds − equity) / equity.
func ROI(totalATCF, netSaleProceeds, equity decimal.Decimal) *decimal.Decimal {
	if !equity.IsPositive() {
		return nil
	}
	return ratio(totalATCF.Add(netSaleProceeds).Sub(equity), equity)
}
