// Package valueobject contains value objects for the domain layer.
package valueobject

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	minInt32 = decimal.NewFromInt(math.MinInt32)
	maxInt32 = decimal.NewFromInt(math.MaxInt32)
)

// InInt32Range reports whether d is an integer within [-2^31, 2^31-1].
func InInt32Range(d decimal.Decimal) bool {
	if !d.IsInteger() {
		return false
	}
	return d.GreaterThanOrEqual(minInt32) && d.LessThanOrEqual(maxInt32)
}

// Int32Pair is an accepted pair of integers whose sum and product also fit in 32 bits.
type Int32Pair struct {
	First  int32
	Second int32
}

// Sum returns First+Second widened to 64 bits.
func (p Int32Pair) Sum() int64 {
	return int64(p.First) + int64(p.Second)
}

// Product returns First*Second widened to 64 bits.
func (p Int32Pair) Product() int64 {
	return int64(p.First) * int64(p.Second)
}

// PairFits reports whether the exact sum and product of first and second
// both lie within the 32-bit range.
func PairFits(first, second decimal.Decimal) bool {
	return InInt32Range(first.Add(second)) && InInt32Range(first.Mul(second))
}
