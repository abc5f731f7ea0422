package utils

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatMoney renders an amount with thousands separators and a fixed number of decimals.
// Example: 1234567.891 with places 2 returns "1,234,567.89"
func FormatMoney(amount decimal.Decimal, places int32) string {
	fixed := amount.Abs().StringFixed(places)
	whole, frac, _ := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return amount.StringFixed(places)
	}
	out := humanize.Comma(n)
	if frac != "" {
		out += "." + frac
	}
	if amount.Round(places).IsNegative() {
		out = "-" + out
	}
	return out
}

// FormatRate renders a fraction as a percentage. ratePlaces is the precision of
// the fraction, so 4 gives two decimals of a percent: 0.0523 returns "5.23%".
// Undefined rates render as "n/a".
func FormatRate(rate *decimal.Decimal, ratePlaces int32) string {
	if rate == nil {
		return "n/a"
	}
	places := ratePlaces - 2
	if places < 0 {
		places = 0
	}
	return rate.Mul(hundred).StringFixed(places) + "%"
}

// FormatRatio renders a plain ratio such as DSCR or a payback period in years.
func FormatRatio(ratio *decimal.Decimal, places int32) string {
	if ratio == nil {
		return "n/a"
	}
	return ratio.StringFixed(places)
}
