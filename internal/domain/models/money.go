package models

import "github.com/shopspring/decimal"

var minorUnitFactor = decimal.NewFromInt(100)

// ToMinorUnits converts a major-unit amount (10.00) to the provider's minor
// units (1000). Rounds half-to-even; providers that speak minor units only
// accept integral values.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(minorUnitFactor).RoundBank(0).IntPart()
}

// FromMinorUnits converts integral minor units back to a major-unit amount.
// The division by 100 is exact, so no rounding loss on read.
func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.NewFromInt(minor).Div(minorUnitFactor)
}
