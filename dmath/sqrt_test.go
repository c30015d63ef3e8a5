package dmath

import (
	"math/rand"
	"testing"
)

func TestIntSqrtSpotValues(t *testing.T) {
	tests := []struct {
		name string
		a    uint32
		want uint16
	}{
		{"Zero", 0, 0},
		{"One", 1, 1},
		{"Below square", 3, 1},
		{"Perfect square", 144, 12},
		{"Above square", 145, 12},
		{"Next square", 169, 13},
		{"Byte boundary", 65535, 255},
		{"Half boundary", 65536, 256},
		{"Power of two", 1 << 30, 1 << 15},
		{"Max input", 0xFFFFFFFF, 65535},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IntSqrt(tt.a); got != tt.want {
				t.Errorf("IntSqrt(%d) = %d, want %d", tt.a, got, tt.want)
			}
		})
	}
}

func TestIntSqrtPerfectSquares(t *testing.T) {
	for i := uint32(0); i <= 65535; i++ {
		if got := IntSqrt(i * i); uint32(got) != i {
			t.Fatalf("IntSqrt(%d²) = %d, want %d", i, got, i)
		}
	}
}

func TestIntSqrtIsFloor(t *testing.T) {
	// r is the floor square root iff r² <= a < (r+1)².
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20000; i++ {
		a := rng.Uint32()
		r := uint64(IntSqrt(a))
		if r*r > uint64(a) {
			t.Fatalf("IntSqrt(%d) = %d overshoots: %d² > input", a, r, r)
		}
		if (r+1)*(r+1) <= uint64(a) {
			t.Fatalf("IntSqrt(%d) = %d undershoots: %d² still fits", a, r, r+1)
		}
	}
}

func TestIntInvSqrtSpotValues(t *testing.T) {
	// Expected values are what the bit search produces; the 16-bit
	// reciprocal biases results slightly below 0x1000/sqrt(a) for large a.
	tests := []struct {
		name string
		a    uint16
		want uint16
	}{
		{"One", 1, 4095},
		{"Two", 2, 2896},
		{"Three", 3, 2364},
		{"Sixteen", 16, 1023},
		{"Square 256", 256, 255},
		{"Square 4096", 4096, 61},
		{"Max input", 65535, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IntInvSqrt(tt.a); got != tt.want {
				t.Errorf("IntInvSqrt(%d) = %d, want %d", tt.a, got, tt.want)
			}
		})
	}
}

func TestIntInvSqrtMonotonic(t *testing.T) {
	// Inverse relationship: the result never increases as a grows.
	prev := IntInvSqrt(1)
	for a := uint32(2); a <= 65535; a++ {
		cur := IntInvSqrt(uint16(a))
		if cur > prev {
			t.Fatalf("IntInvSqrt(%d) = %d rose above IntInvSqrt(%d) = %d", a, cur, a-1, prev)
		}
		prev = cur
	}
}

func BenchmarkIntSqrt(b *testing.B) {
	var sink uint16
	for i := 0; i < b.N; i++ {
		sink = IntSqrt(uint32(i) * 2654435761)
	}
	_ = sink
}

func BenchmarkIntInvSqrt(b *testing.B) {
	var sink uint16
	for i := 0; i < b.N; i++ {
		sink = IntInvSqrt(uint16(i)%65535 + 1)
	}
	_ = sink
}
