// Package mathx provides exact integer arithmetic helpers for boundary
// computation.
package mathx

import "fmt"

// RoundHalfEven divides num by den and rounds the quotient half to even
// (banker's rounding), entirely in integer arithmetic so that boundary values
// are bit-reproducible across platforms.
//
// den must be positive; num may be negative.
//
// Parameters:
//   - num: Dividend
//   - den: Divisor (> 0)
//
// Returns:
//   - int64: Nearest integer to num/den, ties rounded to the even neighbor
func RoundHalfEven(num, den int64) int64 {
	if den <= 0 {
		panic(fmt.Sprintf("mathx: non-positive divisor %d", den))
	}

	neg := num < 0
	if neg {
		num = -num
	}

	q, r := num/den, num%den
	if 2*r > den || (2*r == den && q%2 == 1) {
		q++
	}
	if neg {
		q = -q
	}

	return q
}
