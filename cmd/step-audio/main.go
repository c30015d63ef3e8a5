// Command step-audio plays a planned move through the speakers: one click
// per dominant-axis step, spaced by the instantaneous step rate the
// velocity profile commands. The trapezoid is clearly audible as a
// rising, steady, then falling click pitch, the same sound a real
// stepper machine makes.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/stepcraft/config"
	"github.com/lixenwraith/stepcraft/motion"
)

const (
	sampleRate = beep.SampleRate(48000)

	// Click length in samples, roughly 1 ms.
	clickLen = 48

	clickVolume = 0.5
)

var (
	configFlag   = flag.String("config", "", "Machine YAML file (stock machine when empty)")
	feedrateFlag = flag.Uint("feedrate", 6000, "Commanded feedrate in mm/min")
	distanceFlag = flag.Int("distance", 100, "Move length along X in mm")
)

// StepClickGenerator streams a click train that follows a trajectory's
// velocity profile sample by sample.
type StepClickGenerator struct {
	profile   motion.Profile
	stepsPerM uint32
	total     uint32

	step      uint32  // next dominant-axis tick to emit
	pos       float64 // absolute sample position
	nextClick float64 // sample position of the next click
	elapsed   int     // samples into the current click, -1 when idle
}

// NewStepClickGenerator builds the click train for one trajectory.
func NewStepClickGenerator(tr *motion.Trajectory, stepsPerM uint32) *StepClickGenerator {
	return &StepClickGenerator{
		profile:   tr.Profile,
		stepsPerM: stepsPerM,
		total:     tr.TotalSteps,
		elapsed:   -1,
	}
}

// Stream implements beep.Streamer.
func (g *StepClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.step >= g.total && g.elapsed < 0 {
			return i, false
		}

		if g.step < g.total && g.pos >= g.nextClick {
			rate := motion.StepRate(g.profile.FeedrateAt(g.step), g.stepsPerM)
			if rate == 0 {
				rate = 1
			}
			g.nextClick += float64(sampleRate) / float64(rate)
			g.step++
			g.elapsed = 0
		}

		var value float64
		if g.elapsed >= 0 {
			// Sharp attack with a quadratic decay reads as a mechanical tick.
			decay := 1.0 - float64(g.elapsed)/float64(clickLen)
			value = clickVolume * decay * decay
			g.elapsed++
			if g.elapsed >= clickLen {
				g.elapsed = -1
			}
		}

		samples[i][0] = value
		samples[i][1] = value
		g.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (g *StepClickGenerator) Err() error {
	return nil
}

func main() {
	flag.Parse()

	machine := config.Default()
	if *configFlag != "" {
		m, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load machine config: %v\n", err)
			os.Exit(1)
		}
		machine = m
	}

	mv := motion.Move{
		DeltaUm:  [motion.NumAxes]int32{int32(*distanceFlag) * 1000, 0, 0},
		Feedrate: uint32(*feedrateFlag),
	}
	tr, err := motion.NewPlanner(machine).Plan(mv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to plan move: %v\n", err)
		os.Exit(1)
	}
	if tr.TotalSteps == 0 {
		fmt.Println("Zero-length move, nothing to play")
		return
	}

	prof := tr.Profile
	fmt.Printf("Playing %d mm at %d mm/min: %d steps, profile %d/%d/%d\n",
		*distanceFlag, tr.Feedrate, tr.TotalSteps, prof.Accel, prof.Cruise, prof.Decel)
	fmt.Printf("Peak step rate %d steps/s\n", motion.StepRate(tr.Feedrate, machine.X.StepsPerM))

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize speaker: %v\n", err)
		os.Exit(1)
	}

	done := make(chan struct{})
	gen := NewStepClickGenerator(tr, machine.X.StepsPerM)
	speaker.Play(beep.Seq(gen, beep.Callback(func() {
		close(done)
	})))
	<-done

	// Let the speaker buffer drain before the process exits.
	time.Sleep(150 * time.Millisecond)
	fmt.Println("Done")
}
