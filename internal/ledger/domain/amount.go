package domain

import "github.com/shopspring/decimal"

// AmountPlaces is the fixed precision used for all monetary comparisons.
const AmountPlaces = 2

// NormalizeAmount converts a client-supplied numeric value into the fixed
// two-decimal representation every invariant check runs against. Floating
// point input must go through here before any equality comparison; comparing
// raw floats makes the balance check unreliable.
func NormalizeAmount(value float64) (decimal.Decimal, error) {
	d := decimal.NewFromFloat(value).Round(AmountPlaces)
	if d.IsNegative() {
		return decimal.Decimal{}, NewValidationError("Amount must not be negative.")
	}
	return d, nil
}
