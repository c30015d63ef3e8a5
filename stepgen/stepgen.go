// Package stepgen turns a planned trajectory into the per-tick pulse
// stream a stepper driver wants. The traverser is a zero-allocation
// iterator: one Next call per dominant-axis tick, minor axes interleaved
// by Bresenham error accumulators so no axis ever runs ahead of the line.
package stepgen

import (
	"github.com/lixenwraith/stepcraft/motion"
)

// AxisMask reports which axes pulse on a tick.
type AxisMask uint8

const (
	StepX AxisMask = 1 << motion.AxisX
	StepY AxisMask = 1 << motion.AxisY
	StepZ AxisMask = 1 << motion.AxisZ
)

// Has reports whether the mask pulses the given axis index.
func (m AxisMask) Has(axis int) bool {
	return m&(1<<axis) != 0
}

// Traverser walks a trajectory one dominant-axis tick at a time.
type Traverser struct {
	total uint32
	n     uint32

	mag [motion.NumAxes]uint32
	dir [motion.NumAxes]int8
	acc [motion.NumAxes]int32
	pos [motion.NumAxes]int32

	mask AxisMask
}

// New builds a traverser over a planned trajectory. The zero-length
// trajectory yields an iterator that is immediately done.
func New(tr *motion.Trajectory) Traverser {
	t := Traverser{total: tr.TotalSteps}
	for i, s := range tr.Steps {
		switch {
		case s > 0:
			t.dir[i] = 1
			t.mag[i] = uint32(s)
		case s < 0:
			t.dir[i] = -1
			t.mag[i] = uint32(-s)
		}
		// Half-offset start centers each axis's pulses along the line.
		t.acc[i] = -int32(tr.TotalSteps / 2)
	}
	return t
}

// Next advances one dominant-axis tick. Returns false once the move is
// complete; the axes pulsed by the tick are available via Step.
func (t *Traverser) Next() bool {
	if t.n == t.total {
		return false
	}
	t.n++
	t.mask = 0
	for i := range t.mag {
		t.acc[i] += int32(t.mag[i])
		if t.acc[i] > 0 {
			t.acc[i] -= int32(t.total)
			t.mask |= 1 << i
			t.pos[i] += int32(t.dir[i])
		}
	}
	return true
}

// Step returns the pulse mask of the most recent tick.
func (t *Traverser) Step() AxisMask {
	return t.mask
}

// Dir returns the signed direction of an axis: -1, 0 or 1.
func (t *Traverser) Dir(axis int) int8 {
	return t.dir[axis]
}

// Pos returns the signed step position of an axis relative to the start
// of the move.
func (t *Traverser) Pos(axis int) int32 {
	return t.pos[axis]
}

// Tick returns the zero-based index of the most recent tick, the step
// index to feed Profile.FeedrateAt and PhaseAt. Before the first Next it
// returns 0, the same as at the first tick.
func (t *Traverser) Tick() uint32 {
	if t.n == 0 {
		return 0
	}
	return t.n - 1
}
