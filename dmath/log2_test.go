package dmath

import "testing"

func TestMSBLoc(t *testing.T) {
	tests := []struct {
		name string
		v    uint32
		want uint8
	}{
		{"Zero convention", 0, 0},
		{"One", 1, 0},
		{"Two", 2, 1},
		{"Three", 3, 1},
		{"Byte", 255, 7},
		{"Round power", 1 << 16, 16},
		{"Top bit", 0x80000000, 31},
		{"All bits", 0xFFFFFFFF, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MSBLoc(tt.v); got != tt.want {
				t.Errorf("MSBLoc(%#x) = %d, want %d", tt.v, got, tt.want)
			}
		})
	}
}

func TestMSBLocEveryBit(t *testing.T) {
	for i := uint8(0); i < 32; i++ {
		v := uint32(1) << i
		if got := MSBLoc(v); got != i {
			t.Errorf("MSBLoc(1<<%d) = %d, want %d", i, got, i)
		}
		// Lower bits must not change the answer.
		if got := MSBLoc(v | (v - 1)); got != i {
			t.Errorf("MSBLoc(%#x) = %d, want %d", v|(v-1), got, i)
		}
	}
}
