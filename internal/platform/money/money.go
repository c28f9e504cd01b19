// Package money centralizes the rounding policy for all payroll
// arithmetic: half-up, two decimal places for currency amounts.
package money

import "github.com/shopspring/decimal"

// Round2 rounds a currency amount to 2 decimal places, half-up.
func Round2(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// RoundWhole rounds to the nearest whole currency unit, half-up.
func RoundWhole(value float64) float64 {
	return decimal.NewFromFloat(value).Round(0).InexactFloat64()
}

// PercentOf returns pct percent of base, rounded to 2 decimal places.
func PercentOf(base, pct float64) float64 {
	return decimal.NewFromFloat(base).
		Mul(decimal.NewFromFloat(pct)).
		Div(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
}

// Scale multiplies an amount by a fraction and rounds to 2 decimal places.
func Scale(amount, fraction float64) float64 {
	return decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(fraction)).
		Round(2).
		InexactFloat64()
}
