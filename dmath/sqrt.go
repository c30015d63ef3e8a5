package dmath

// refineBits fixes result bits from firstBit down to 0, keeping each bit
// only while the squared candidate stays within target. Squaring runs in
// uint64 so no refinement stage can overflow. This is the shared bit-trial
// core of IntSqrt and IntInvSqrt; it relies on squaring being monotonic, so
// each bit can be decided independently of the ones below it.
func refineBits(candidate uint32, firstBit uint, target uint64) uint32 {
	for bit := uint32(1) << firstBit; bit != 0; bit >>= 1 {
		candidate |= bit
		if uint64(candidate)*uint64(candidate) > target {
			candidate ^= bit
		}
	}
	return candidate
}

// IntSqrt returns r with sqrt(a)-1 < r <= sqrt(a), the floor square root of
// a. Three refinement stages build the result against successively wider
// truncations of a (top byte, top half, full word), so early stages work on
// narrow values.
func IntSqrt(a uint32) uint16 {
	r := refineBits(0, 3, uint64(a>>24))
	r = refineBits(r<<4, 3, uint64(a>>16))
	r = refineBits(r<<8, 7, uint64(a))
	return uint16(r)
}

// IntInvSqrt returns a fixed-point scale-4096 inverse square root:
// approximately 0x1000/sqrt(a), biased slightly low for large a by the
// 16-bit reciprocal. a must be nonzero; a == 0 divides by zero.
//
// The 0xFFFF numerator (instead of 0x10000) keeps the cheap reciprocal in
// 16 bits; the two refinement passes then bit-search against the scaled
// reciprocal exactly as IntSqrt does against its input.
func IntInvSqrt(a uint16) uint16 {
	q := uint32(0xFFFF/a) << 8
	r := refineBits(0, 7, uint64(q>>8))
	r = refineBits(r<<4, 3, uint64(q))
	return uint16(r)
}
