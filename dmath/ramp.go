package dmath

// RampScale folds the kinematic constants of RampLength into one divisor
// term: 60 * 60 * 1000 * 2 (mm/min → mm/s twice, steps/m → steps/mm, and
// the factor 2 of s = v²/2a).
const RampScale = 7200000

// RampLength returns the number of steps needed to accelerate an axis from
// rest to feedrate (mm/min) at accel (mm/s²), with stepsPerM steps per
// meter of travel. From v = a·t and s = a·t²/2: s = v²/2a.
//
// Plain truncating division, no rounding correction. Shown accurate within
// a few percent for accel between 10 and 10000 mm/s² and 2000 to 4096000
// steps/m; a few percent high at very low acceleration. Outside that
// envelope the result degrades and callers must not assume exactness.
func RampLength(feedrate, stepsPerM, accel uint32) uint32 {
	// RampScale*accel needs up to 37 bits at the top of the envelope; the
	// divided-down denominator always fits 32.
	return (feedrate * feedrate) / uint32(uint64(RampScale)*uint64(accel)/uint64(stepsPerM))
}
