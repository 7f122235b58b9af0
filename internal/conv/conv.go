// Package conv provides guarded 32-bit length arithmetic for the string engine.
//
// String lengths are bounded by int32 so that concatenation and repetition
// arithmetic cannot overflow the host int. These helpers report overflow
// instead of panicking: whether a result fits is a property of caller input
// (a huge repeat count, too many join parts), not a programming error.
package conv

import "math"

// MaxLen is the maximum byte length of any string the engine produces.
const MaxLen = math.MaxInt32

// MulLen returns n*m and whether the product fits in an int32 length.
// Both operands must be non-negative.
//
//go:inline
func MulLen(n, m int) (int, bool) {
	if n == 0 || m == 0 {
		return 0, true
	}
	// Capping the operands first keeps the int64 product itself exact.
	if n > MaxLen || m > MaxLen || int64(n)*int64(m) > MaxLen {
		return 0, false
	}
	return n * m, true
}

// AddLen returns n+m and whether the sum fits in an int32 length.
// Both operands must be non-negative.
//
//go:inline
func AddLen(n, m int) (int, bool) {
	if n > MaxLen || m > MaxLen || int64(n)+int64(m) > MaxLen {
		return 0, false
	}
	return n + m, true
}

// IntToInt32 safely converts an int to int32.
// Panics if n is out of int32 range; lengths are validated with MulLen/AddLen
// before they reach this point, so an overflow here is a programming error.
//
//go:inline
func IntToInt32(n int) int32 {
	if n < math.MinInt32 || n > math.MaxInt32 {
		panic("integer overflow: int value out of int32 range")
	}
	return int32(n)
}
