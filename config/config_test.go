package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() does not validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Machine)
		wantErr bool
	}{
		{"Stock machine", func(m *Machine) {}, false},
		{"Acceleration too low", func(m *Machine) { m.Acceleration = 5 }, true},
		{"Acceleration too high", func(m *Machine) { m.Acceleration = 20000 }, true},
		{"Zero max feedrate", func(m *Machine) { m.MaxFeedrate = 0 }, true},
		{"Feedrate above 16-bit cap", func(m *Machine) { m.MaxFeedrate = 70000 }, true},
		{"Home faster than max", func(m *Machine) { m.HomeFeedrate = m.MaxFeedrate + 1 }, true},
		{"Coarse axis", func(m *Machine) { m.Y.StepsPerM = 100 }, true},
		{"Absurdly fine axis", func(m *Machine) { m.Z.StepsPerM = 5000000 }, true},
		{"Negative travel", func(m *Machine) { m.X.TravelUm = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Default()
			tt.mutate(m)
			err := m.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "machine.yml")
	doc := []byte(`
acceleration: 100
max_feedrate: 12000
home_feedrate: 1500
x:
  steps_per_m: 160000
  travel_um: 300000
y:
  steps_per_m: 160000
  travel_um: 300000
z:
  steps_per_m: 640000
  travel_um: 150000
`)
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Acceleration != 100 {
		t.Errorf("Expected acceleration 100, got %d", m.Acceleration)
	}
	if m.X.StepsPerM != 160000 || m.Z.StepsPerM != 640000 {
		t.Errorf("Axis resolutions not loaded: x=%d z=%d", m.X.StepsPerM, m.Z.StepsPerM)
	}
	if m.X.TravelUm != 300000 {
		t.Errorf("Expected x travel 300000, got %d", m.X.TravelUm)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "machine.yml")
	if err := os.WriteFile(path, []byte("acceleration: 200\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Acceleration != 200 {
		t.Errorf("Expected acceleration 200, got %d", m.Acceleration)
	}
	if m.MaxFeedrate != Default().MaxFeedrate {
		t.Errorf("Expected default max_feedrate, got %d", m.MaxFeedrate)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "machine.yml")
	if err := os.WriteFile(path, []byte("acceleration: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted an out-of-envelope acceleration")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("STEPCRAFT_ACCELERATION", "75")
	t.Setenv("STEPCRAFT_MAX_FEEDRATE", "9000")

	m := Default()
	FromEnv(m)
	if m.Acceleration != 75 {
		t.Errorf("Expected acceleration override 75, got %d", m.Acceleration)
	}
	if m.MaxFeedrate != 9000 {
		t.Errorf("Expected max_feedrate override 9000, got %d", m.MaxFeedrate)
	}
}

func TestFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("STEPCRAFT_ACCELERATION", "fast")

	m := Default()
	FromEnv(m)
	if m.Acceleration != Default().Acceleration {
		t.Errorf("Garbage override changed acceleration to %d", m.Acceleration)
	}
}
