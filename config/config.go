// Package config loads and validates machine geometry and dynamics
// configuration. The planner consumes a validated Machine; nothing below it
// reads configuration at run time, so acceleration and axis resolution are
// fixed before the first move is planned.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/stepcraft/parameter"
)

// Axis describes one linear axis.
type Axis struct {
	StepsPerM uint32 `yaml:"steps_per_m"`
	TravelUm  int32  `yaml:"travel_um"`
}

// Machine is the full motion configuration.
type Machine struct {
	Acceleration uint32 `yaml:"acceleration"`  // mm/s²
	MaxFeedrate  uint32 `yaml:"max_feedrate"`  // mm/min
	HomeFeedrate uint32 `yaml:"home_feedrate"` // mm/min

	X Axis `yaml:"x"`
	Y Axis `yaml:"y"`
	Z Axis `yaml:"z"`
}

// Default returns the stock belt-driven Cartesian machine.
func Default() *Machine {
	return &Machine{
		Acceleration: parameter.DefaultAcceleration,
		MaxFeedrate:  parameter.DefaultMaxFeedrate,
		HomeFeedrate: parameter.DefaultHomeFeedrate,
		X:            Axis{StepsPerM: parameter.DefaultStepsPerM, TravelUm: parameter.DefaultTravelUm},
		Y:            Axis{StepsPerM: parameter.DefaultStepsPerM, TravelUm: parameter.DefaultTravelUm},
		Z:            Axis{StepsPerM: parameter.DefaultZStepsPerM, TravelUm: parameter.DefaultTravelUm},
	}
}

// Load reads a YAML machine file, applies environment overrides and
// validates the result.
func Load(path string) (*Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	m := Default()
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	FromEnv(m)

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// FromEnv applies STEPCRAFT_* environment overrides onto m. Unparseable
// values are ignored, matching the usual tolerant env handling.
func FromEnv(m *Machine) {
	if v := os.Getenv("STEPCRAFT_ACCELERATION"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			m.Acceleration = uint32(n)
		}
	}
	if v := os.Getenv("STEPCRAFT_MAX_FEEDRATE"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			m.MaxFeedrate = uint32(n)
		}
	}
}

// Validate checks the machine against the documented accuracy envelope of
// the ramp math and the 32-bit feedrate contract.
func (m *Machine) Validate() error {
	if m.Acceleration < parameter.AccelerationMin || m.Acceleration > parameter.AccelerationMax {
		return fmt.Errorf("acceleration %d mm/s² outside validated range [%d, %d]",
			m.Acceleration, parameter.AccelerationMin, parameter.AccelerationMax)
	}
	if m.MaxFeedrate == 0 || m.MaxFeedrate > parameter.FeedrateMax {
		return fmt.Errorf("max_feedrate %d mm/min outside (0, %d]", m.MaxFeedrate, parameter.FeedrateMax)
	}
	if m.HomeFeedrate == 0 || m.HomeFeedrate > m.MaxFeedrate {
		return fmt.Errorf("home_feedrate %d mm/min outside (0, max_feedrate]", m.HomeFeedrate)
	}

	for _, ax := range []struct {
		name string
		axis Axis
	}{{"x", m.X}, {"y", m.Y}, {"z", m.Z}} {
		if ax.axis.StepsPerM < parameter.StepsPerMMin || ax.axis.StepsPerM > parameter.StepsPerMMax {
			return fmt.Errorf("%s steps_per_m %d outside validated range [%d, %d]",
				ax.name, ax.axis.StepsPerM, parameter.StepsPerMMin, parameter.StepsPerMMax)
		}
		if ax.axis.TravelUm <= 0 {
			return fmt.Errorf("%s travel_um %d must be positive", ax.name, ax.axis.TravelUm)
		}
	}
	return nil
}
