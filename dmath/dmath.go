// Package dmath provides the integer-only numeric primitives behind DDA
// trajectory computation: overflow-safe scaled multiply-divide, fast
// approximate distance, bit-trial square roots, a crude log2 and the
// acceleration ramp length formula.
//
// Every function is pure, allocation-free and completes in a small bounded
// number of steps, so all of them are safe to call from interrupt-style
// contexts. Preconditions are caller contracts: violating them produces a
// silently wrong value, never an error.
package dmath

// MulDivQR returns the rounded result of multiplicand * multiplier / divisor,
// where the multiplier has been pre-decomposed by the caller into
// qn = multiplier / divisor and rn = multiplier % divisor.
//
// Binary long multiplication against the (qn, rn) pair keeps every
// intermediate value inside 32 bits, so the result is valid whenever each
// operand and the true result fit in 32 bits, without ever forming the
// 64-bit product. A negative multiplier must be folded into qn/rn by the
// caller; only the multiplicand's sign is handled here.
func MulDivQR(multiplicand int32, qn, rn, divisor uint32) int32 {
	var quotient, remainder uint32

	negative := multiplicand < 0
	if negative {
		multiplicand = -multiplicand
	}

	for multiplicand != 0 {
		if multiplicand&1 != 0 {
			quotient += qn
			remainder += rn
			if remainder >= divisor {
				quotient++
				remainder -= divisor
			}
		}
		multiplicand >>= 1
		qn <<= 1
		rn <<= 1
		// Keep rn below divisor so it cannot overflow on the next double.
		if rn >= divisor {
			qn++
			rn -= divisor
		}
	}

	// Round half up.
	if remainder > divisor/2 {
		quotient++
	}

	if negative {
		return -int32(quotient)
	}
	return int32(quotient)
}

// MulDiv returns the rounded result of multiplicand * multiplier / divisor,
// performing the quotient/remainder decomposition itself. Callers on a hot
// path with a fixed multiplier/divisor pair should precompute the pair once
// and use MulDivQR directly. divisor must be nonzero.
func MulDiv(multiplicand int32, multiplier, divisor uint32) int32 {
	return MulDivQR(multiplicand, multiplier/divisor, multiplier%divisor, divisor)
}
