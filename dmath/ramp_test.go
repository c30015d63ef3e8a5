package dmath

import "testing"

func TestRampLengthSpotValues(t *testing.T) {
	tests := []struct {
		name      string
		feedrate  uint32
		stepsPerM uint32
		accel     uint32
		want      uint32
	}{
		// (7200000*50)/80000 = 4500; 3000² / 4500 = 2000.
		{"Typical XY move", 3000, 80000, 50, 2000},
		{"Double feedrate quadruples", 6000, 80000, 50, 8000},
		{"Fine Z axis", 600, 320000, 50, 320},
		{"Standstill", 0, 80000, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RampLength(tt.feedrate, tt.stepsPerM, tt.accel); got != tt.want {
				t.Errorf("RampLength(%d, %d, %d) = %d, want %d",
					tt.feedrate, tt.stepsPerM, tt.accel, got, tt.want)
			}
		})
	}
}

func TestRampLengthMonotonicInFeedrate(t *testing.T) {
	prev := uint32(0)
	for feedrate := uint32(600); feedrate <= 24000; feedrate += 600 {
		cur := RampLength(feedrate, 80000, 50)
		if cur < prev {
			t.Fatalf("RampLength(%d, 80000, 50) = %d fell below previous %d", feedrate, cur, prev)
		}
		prev = cur
	}
}

func TestRampLengthDecreasingInAccel(t *testing.T) {
	prev := RampLength(6000, 80000, 10)
	for _, accel := range []uint32{20, 50, 100, 200, 500} {
		cur := RampLength(6000, 80000, accel)
		if cur > prev {
			t.Fatalf("RampLength(6000, 80000, %d) = %d rose above %d", accel, cur, prev)
		}
		prev = cur
	}
}
