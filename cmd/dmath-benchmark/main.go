package main

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/stepcraft/dmath"
)

const sampleCount = 10000

// Test data: random magnitude pairs/triples in the planner's typical
// micrometer range.
type testPoint struct {
	dx, dy, dz uint32
}

var testPoints []testPoint

func init() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	testPoints = make([]testPoint, sampleCount)
	for i := range testPoints {
		testPoints[i] = testPoint{
			dx: uint32(rng.Intn(500000) + 1),
			dy: uint32(rng.Intn(500000) + 1),
			dz: uint32(rng.Intn(500000) + 1),
		}
	}
}

func verifyDistance() {
	fmt.Println("=== ApproxDistance accuracy (vs math.Hypot) ===")
	fmt.Println()
	fmt.Printf("%-20s %12s %12s %10s\n", "Input", "Approx", "Exact", "Error %")

	cases := [][2]uint32{
		{300, 400}, {1000, 1000}, {5000, 312}, {160000, 10000}, {99999, 100001},
	}
	for _, c := range cases {
		got := float64(dmath.ApproxDistance(c[0], c[1]))
		exact := math.Hypot(float64(c[0]), float64(c[1]))
		fmt.Printf("(%7d,%7d)    %12.0f %12.1f %9.2f%%\n",
			c[0], c[1], got, exact, (got-exact)/exact*100)
	}
	fmt.Println()

	fmt.Println("=== ApproxDistance3 accuracy ===")
	fmt.Println()
	fmt.Printf("%-28s %12s %12s %10s\n", "Input", "Approx", "Exact", "Error %")

	cases3 := [][3]uint32{
		{300, 400, 0}, {30000, 40000, 120000}, {10000, 20000, 15000}, {4000, 4000, 4000},
	}
	for _, c := range cases3 {
		got := float64(dmath.ApproxDistance3(c[0], c[1], c[2]))
		exact := math.Sqrt(float64(c[0])*float64(c[0]) + float64(c[1])*float64(c[1]) + float64(c[2])*float64(c[2]))
		fmt.Printf("(%7d,%7d,%7d)    %12.0f %12.1f %9.2f%%\n",
			c[0], c[1], c[2], got, exact, (got-exact)/exact*100)
	}
	fmt.Println()
}

func verifySqrt() {
	fmt.Println("=== IntSqrt / IntInvSqrt (vs float64 reference) ===")
	fmt.Println()
	fmt.Printf("%12s %10s %12s | %8s %10s %12s\n",
		"Input", "IntSqrt", "math.Sqrt", "Input", "InvSqrt", "4096/sqrt")

	sqrtIn := []uint32{1, 144, 1000, 65536, 1 << 24, 4000000000}
	invIn := []uint16{1, 3, 16, 256, 4096, 65535}
	for i := range sqrtIn {
		fmt.Printf("%12d %10d %12.2f | %8d %10d %12.2f\n",
			sqrtIn[i], dmath.IntSqrt(sqrtIn[i]), math.Sqrt(float64(sqrtIn[i])),
			invIn[i], dmath.IntInvSqrt(invIn[i]), 4096/math.Sqrt(float64(invIn[i])))
	}
	fmt.Println()
	fmt.Println("Note: InvSqrt rides the 16-bit reciprocal, so large inputs read a")
	fmt.Println("      few counts below 4096/sqrt(a). That bias is load-bearing for")
	fmt.Println("      the ramp equation; do not \"fix\" it here.")
	fmt.Println()
}

func verifyRamp() {
	fmt.Println("=== RampLength (vs exact v²/2a in steps) ===")
	fmt.Println()
	fmt.Printf("%10s %12s %8s %12s %12s %10s\n",
		"Feedrate", "Steps/m", "Accel", "RampLength", "Exact", "Error %")

	cases := []struct {
		feedrate, stepsPerM, accel uint32
	}{
		{3000, 80000, 50}, {6000, 80000, 50}, {600, 320000, 50},
		{12000, 80000, 100}, {24000, 160000, 500},
	}
	for _, c := range cases {
		got := float64(dmath.RampLength(c.feedrate, c.stepsPerM, c.accel))
		v := float64(c.feedrate) / 60000.0 // m/s
		exact := v * v / (2 * float64(c.accel) / 1000.0) * float64(c.stepsPerM)
		fmt.Printf("%10d %12d %8d %12.0f %12.1f %9.2f%%\n",
			c.feedrate, c.stepsPerM, c.accel, got, exact, (got-exact)/exact*100)
	}
	fmt.Println()
}

func quickBenchmarks() {
	fmt.Println("=== Quick inline benchmarks ===")
	fmt.Println("Run with: go test -bench=. ./dmath/ for the real numbers")
	fmt.Println()

	iterations := 1000000

	start := time.Now()
	var sinkU uint32
	for i := 0; i < iterations; i++ {
		p := testPoints[i%sampleCount]
		sinkU = dmath.ApproxDistance3(p.dx, p.dy, p.dz)
	}
	approxTime := time.Since(start)

	start = time.Now()
	var sinkF float64
	for i := 0; i < iterations; i++ {
		p := testPoints[i%sampleCount]
		sinkF = math.Sqrt(float64(p.dx)*float64(p.dx) + float64(p.dy)*float64(p.dy) + float64(p.dz)*float64(p.dz))
	}
	floatTime := time.Since(start)

	start = time.Now()
	var sinkS uint16
	for i := 0; i < iterations; i++ {
		sinkS = dmath.IntSqrt(testPoints[i%sampleCount].dx)
	}
	sqrtTime := time.Since(start)

	_ = sinkU
	_ = sinkF
	_ = sinkS

	fmt.Printf("Quick benchmark (%d iterations):\n", iterations)
	fmt.Printf("  ApproxDistance3:    %v\n", approxTime)
	fmt.Printf("  float64 sqrt ref:   %v\n", floatTime)
	fmt.Printf("  IntSqrt:            %v\n", sqrtTime)
}

func main() {
	fmt.Println("stepcraft dmath accuracy and benchmark report")
	fmt.Println("=============================================")
	fmt.Println()

	verifyDistance()
	verifySqrt()
	verifyRamp()
	quickBenchmarks()
}
