// Package motion plans straight-line moves into per-axis step counts and
// trapezoid velocity profiles, built entirely on the integer primitives in
// dmath. Planning may allocate and return errors; everything consulted per
// step (Profile, converters) is pure value arithmetic.
package motion

import (
	"errors"

	"github.com/lixenwraith/stepcraft/config"
	"github.com/lixenwraith/stepcraft/dmath"
)

// ErrZeroFeedrate rejects moves planned with no commanded speed.
var ErrZeroFeedrate = errors.New("motion: zero feedrate")

// Move is a requested straight-line displacement in micrometers at a
// feedrate in mm/min.
type Move struct {
	DeltaUm  [NumAxes]int32
	Feedrate uint32
}

// Trajectory is a planned move: signed step counts per axis, the dominant
// axis that owns the DDA tick, the approximate Euclidean length and the
// velocity profile over the dominant axis.
type Trajectory struct {
	Steps      [NumAxes]int32
	TotalSteps uint32
	Dominant   int
	DistanceUm uint32
	Feedrate   uint32
	Profile    Profile
}

// Planner converts moves into trajectories for one configured machine.
// Axis resolutions are bound into quotient/remainder converters once, at
// construction.
type Planner struct {
	conv      [NumAxes]AxisConverter
	stepsPerM [NumAxes]uint32
	accel     uint32
	maxFeed   uint32
}

// NewPlanner builds a planner from a validated machine configuration.
func NewPlanner(m *config.Machine) *Planner {
	p := &Planner{
		accel:   m.Acceleration,
		maxFeed: m.MaxFeedrate,
	}
	for i, spm := range [NumAxes]uint32{m.X.StepsPerM, m.Y.StepsPerM, m.Z.StepsPerM} {
		p.stepsPerM[i] = spm
		p.conv[i] = NewAxisConverter(spm)
	}
	return p
}

// Plan converts a move into a trajectory. The feedrate is clamped to the
// machine maximum; a zero-displacement move yields an empty trajectory
// with no profile.
func (p *Planner) Plan(mv Move) (*Trajectory, error) {
	if mv.Feedrate == 0 {
		return nil, ErrZeroFeedrate
	}

	feed := mv.Feedrate
	if feed > p.maxFeed {
		feed = p.maxFeed
	}

	tr := &Trajectory{Feedrate: feed}
	var mags [NumAxes]uint32
	for i, um := range mv.DeltaUm {
		steps := p.conv[i].Steps(um)
		tr.Steps[i] = steps

		mag := uint32(steps)
		if steps < 0 {
			mag = uint32(-steps)
		}
		if mag > tr.TotalSteps {
			tr.TotalSteps = mag
			tr.Dominant = i
		}

		if um < 0 {
			um = -um
		}
		mags[i] = uint32(um)
	}

	tr.DistanceUm = dmath.ApproxDistance3(mags[AxisX], mags[AxisY], mags[AxisZ])
	if tr.TotalSteps == 0 {
		return tr, nil
	}

	tr.Profile = newProfile(feed, p.stepsPerM[tr.Dominant], p.accel, tr.TotalSteps)
	return tr, nil
}
