package dmath

// ApproxDistance returns a piecewise-linear approximation of
// sqrt(dx² + dy²), accurate to a few percent, using only multiplies,
// compares and shifts.
//
// The 1007/441/40 coefficients are the empirically fitted
// alpha-max-plus-beta-min set (flipcode fast distance functions); they are
// not derivable from first principles and must be carried as-is. Result is
// the 1024-scaled accumulator rounded half up via the +512 bias.
func ApproxDistance(dx, dy uint32) uint32 {
	// Either axis zero: distance degenerates to the other one.
	if dx == 0 || dy == 0 {
		return dx + dy
	}

	min, max := dx, dy
	if min > max {
		min, max = max, min
	}

	approx := max*1007 + min*441
	// The linear fit overshoots when the magnitudes are close.
	if max < min<<4 {
		approx -= max * 40
	}

	return (approx + 512) >> 10
}

// ApproxDistance3 extends ApproxDistance to three magnitudes, same
// fixed-point-1024 convention. The 860/851/520/294/113/40 coefficients are
// fitted to this exact comparison ladder: the larger of dx,dy lands in min
// before dz is folded in, and the three corrections apply cumulatively in
// order. Reordering either breaks the fit.
//
// A zero magnitude drops the problem a dimension: the fit has no zero
// guard of its own and underestimates badly on degenerate input (a pure
// single-axis move would come out 17% short).
func ApproxDistance3(dx, dy, dz uint32) uint32 {
	switch {
	case dz == 0:
		return ApproxDistance(dx, dy)
	case dy == 0:
		return ApproxDistance(dx, dz)
	case dx == 0:
		return ApproxDistance(dy, dz)
	}

	var min, med, max uint32

	if dx < dy {
		min, med = dy, dx
	} else {
		min, med = dx, dy
	}

	if dz < min {
		max, med, min = med, min, dz
	} else if dz < med {
		max, med = med, dz
	} else {
		max = dz
	}

	approx := max*860 + med*851 + min*520
	if max < med<<1 {
		approx -= max * 294
	}
	if max < min<<2 {
		approx -= max * 113
	}
	if med < min<<2 {
		approx -= med * 40
	}

	return (approx + 512) >> 10
}
