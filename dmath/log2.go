package dmath

// MSBLoc returns the bit index of the most significant set bit of v, that
// is floor(log2(v)), via a linear scan from bit 31. MSBLoc(0) == 0 by
// convention, indistinguishable from MSBLoc(1); callers that need to detect
// a zero input must test v itself. O(32) worst case, which is fine for the
// small magnitudes this is used on; determinism matters more than speed.
func MSBLoc(v uint32) uint8 {
	for i, c := uint8(31), uint32(0x80000000); i != 0; i, c = i-1, c>>1 {
		if v&c != 0 {
			return i
		}
	}
	return 0
}
