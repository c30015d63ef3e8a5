package motion

import (
	"github.com/lixenwraith/stepcraft/dmath"
)

// Phase identifies which part of the velocity profile a step belongs to.
type Phase uint8

const (
	PhaseAccel Phase = iota
	PhaseCruise
	PhaseDecel
)

// Profile is a trapezoid velocity profile over the dominant axis of a
// move: Accel steps ramping up, Cruise steps at the target feedrate, Decel
// steps ramping down. When the move is too short to reach the target the
// profile degenerates to a triangle (Cruise == 0) peaking mid-move.
type Profile struct {
	Accel  uint32
	Cruise uint32
	Decel  uint32

	// Feedrate is the clamped target in mm/min; the triangle case never
	// actually reaches it.
	Feedrate uint32

	// rampDenom caches (RampScale·accel)/stepsPerM so FeedrateAt inverts
	// the ramp identity without repeating the division.
	rampDenom uint32
}

func newProfile(feedrate, stepsPerM, accel, totalSteps uint32) Profile {
	p := Profile{
		Feedrate:  feedrate,
		rampDenom: uint32(uint64(dmath.RampScale) * uint64(accel) / uint64(stepsPerM)),
	}

	ramp := dmath.RampLength(feedrate, stepsPerM, accel)
	if 2*ramp > totalSteps {
		// Triangle: decelerate from wherever the ramp got to.
		p.Accel = totalSteps / 2
		p.Decel = totalSteps - p.Accel
	} else {
		p.Accel = ramp
		p.Decel = ramp
		p.Cruise = totalSteps - 2*ramp
	}
	return p
}

// Total returns the dominant-axis step count covered by the profile.
func (p Profile) Total() uint32 {
	return p.Accel + p.Cruise + p.Decel
}

// PhaseAt returns the phase of dominant-axis step n. Steps at or past the
// end of the profile report PhaseDecel.
func (p Profile) PhaseAt(n uint32) Phase {
	switch {
	case n < p.Accel:
		return PhaseAccel
	case n < p.Accel+p.Cruise:
		return PhaseCruise
	default:
		return PhaseDecel
	}
}

// FeedrateAt returns the commanded feedrate in mm/min at the completion of
// dominant-axis step n, inverting s = v²/2a to v = sqrt(s·rampDenom).
// Never exceeds Feedrate; never returns zero for a nonempty profile, since
// step 0 already completes at the first ramp increment.
func (p Profile) FeedrateAt(n uint32) uint32 {
	total := p.Total()
	if total == 0 {
		return 0
	}
	if n >= total {
		n = total - 1
	}

	var f uint32
	switch p.PhaseAt(n) {
	case PhaseAccel:
		f = uint32(dmath.IntSqrt((n + 1) * p.rampDenom))
	case PhaseCruise:
		return p.Feedrate
	default:
		f = uint32(dmath.IntSqrt((total - n) * p.rampDenom))
	}
	if f > p.Feedrate {
		f = p.Feedrate
	}
	return f
}
