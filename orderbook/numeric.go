/*
numeric.go - Precision-bounded arithmetic helpers

PURPOSE:
  Quantities and prices travel as float64 on the wire, so aggregate sums and
  fractional-digit counts must be computed the same way on every platform.
  AddBounded is the only arithmetic path permitted for quantity aggregation.

DECIMAL COUNTING:
  CountDecimals counts digits after the decimal point in the value's shortest
  round-trip base-10 representation. A value arriving as the result of binary
  floating-point arithmetic (0.1+0.2) reports the digits of that artifact
  (17), not of its mathematical value. The precision check depends on this.
*/
package orderbook

import (
	"math"

	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces is the fractional-digit bound for prices and quantities.
const MaxDecimalPlaces = 12

// AddBounded adds two quantities, rounding the sum to MaxDecimalPlaces
// fractional digits so aggregation is reproducible regardless of the order
// quantities are folded in.
func AddBounded(a, b float64) float64 {
	return math.Round((a+b)*1e12) / 1e12
}

// CountDecimals returns the number of fractional digits in v's canonical
// base-10 representation, or 0 when v has no fractional remainder.
func CountDecimals(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v == math.Trunc(v) {
		return 0
	}
	// decimal.NewFromFloat keeps the smallest digit string that round-trips
	// the float, matching the wire representation the value arrived with.
	if exp := decimal.NewFromFloat(v).Exponent(); exp < 0 {
		return int(-exp)
	}
	return 0
}
