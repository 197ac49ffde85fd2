package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currencies Stripe charges in whole units.
// See https://docs.stripe.com/currencies#zero-decimal
var zeroDecimal = map[string]struct{}{
	"bif": {}, "clp": {}, "djf": {}, "gnf": {}, "jpy": {}, "kmf": {},
	"krw": {}, "mga": {}, "pyg": {}, "rwf": {}, "ugx": {}, "vnd": {},
	"vuv": {}, "xaf": {}, "xof": {}, "xpf": {},
}

func exponent(currency string) int32 {
	if _, ok := zeroDecimal[strings.ToLower(currency)]; ok {
		return 0
	}

	return -2
}

// FromMinorUnits converts an amount in the smallest currency unit (cents) to a decimal amount.
func FromMinorUnits(amount int64, currency string) decimal.Decimal {
	return decimal.New(amount, exponent(currency))
}

// ToMinorUnits is the inverse of FromMinorUnits, fractions below the minor unit are truncated.
func ToMinorUnits(amount decimal.Decimal, currency string) int64 {
	return amount.Shift(-exponent(currency)).IntPart()
}
