package motion

import (
	"github.com/lixenwraith/stepcraft/dmath"
	"github.com/lixenwraith/stepcraft/parameter"
)

// Axis indices, shared with stepgen masks.
const (
	AxisX = iota
	AxisY
	AxisZ
	NumAxes
)

// AxisName returns the conventional letter for an axis index.
func AxisName(axis int) string {
	switch axis {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return "?"
}

// AxisConverter binds one axis's resolution into the pre-decomposed
// quotient/remainder pair MulDivQR consumes, so the um→steps conversion on
// the planning path never repeats the division.
type AxisConverter struct {
	qn, rn uint32
}

// NewAxisConverter builds a converter for an axis with the given steps/m.
func NewAxisConverter(stepsPerM uint32) AxisConverter {
	return AxisConverter{
		qn: stepsPerM / parameter.UmPerM,
		rn: stepsPerM % parameter.UmPerM,
	}
}

// Steps converts a signed displacement in micrometers to a rounded signed
// step count: um · stepsPerM / 1e6.
func (c AxisConverter) Steps(um int32) int32 {
	return dmath.MulDivQR(um, c.qn, c.rn, parameter.UmPerM)
}

// StepRate returns the step frequency in steps/s for a feedrate in mm/min
// on an axis with stepsPerM steps/m. The raw product feedrate·stepsPerM
// overflows 32 bits across the validated envelope, so this goes through
// the scaled multiply-divide.
func StepRate(feedrate, stepsPerM uint32) uint32 {
	return uint32(dmath.MulDiv(int32(feedrate), stepsPerM, parameter.StepRateDivisor))
}

// PrescaleShift returns the power-of-two magnitude bucket of a step rate,
// the crude log2 a caller uses to pick a step timer prescaler. Inherits
// the MSBLoc(0) == 0 convention: a silent axis lands in the lowest bucket,
// so test the rate itself to detect standstill.
func PrescaleShift(stepRate uint32) uint8 {
	return dmath.MSBLoc(stepRate)
}
