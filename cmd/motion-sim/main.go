package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stepcraft/config"
	"github.com/lixenwraith/stepcraft/motion"
	"github.com/lixenwraith/stepcraft/stepgen"
)

var (
	configFlag   = flag.String("config", "", "Machine YAML file (stock machine when empty)")
	feedrateFlag = flag.Uint("feedrate", 9000, "Commanded feedrate in mm/min")
	speedFlag    = flag.Uint("speed", 400, "Playback rate in steps per frame")
)

// Phase colors: accelerating green, cruising white, decelerating red.
var phaseStyle = map[motion.Phase]tcell.Style{
	motion.PhaseAccel:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
	motion.PhaseCruise: tcell.StyleDefault.Foreground(tcell.ColorWhite),
	motion.PhaseDecel:  tcell.StyleDefault.Foreground(tcell.ColorRed),
}

// demoMoves traces a square with both diagonals, all in micrometers.
func demoMoves(feedrate uint32) []motion.Move {
	deltas := [][motion.NumAxes]int32{
		{120000, 0, 0},
		{0, 80000, 0},
		{-120000, 0, 0},
		{0, -80000, 0},
		{120000, 80000, 0},
		{-120000, -80000, 0},
	}
	moves := make([]motion.Move, len(deltas))
	for i, d := range deltas {
		moves[i] = motion.Move{DeltaUm: d, Feedrate: feedrate}
	}
	return moves
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
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

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before the stack trace prints.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nMOTION-SIM CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	quit := make(chan struct{})
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					close(quit)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	planner := motion.NewPlanner(machine)
	moves := demoMoves(uint32(*feedrateFlag))

	// Machine coordinates in steps, relative to the lower-left start point.
	var machX, machY int32
	stepsPerFrame := uint32(*speedFlag)
	if stepsPerFrame == 0 {
		stepsPerFrame = 1
	}

	frameTicker := time.NewTicker(33 * time.Millisecond)
	defer frameTicker.Stop()

	for i, mv := range moves {
		tr, err := planner.Plan(mv)
		if err != nil {
			panic(fmt.Sprintf("planning move %d: %v", i, err))
		}

		walker := stepgen.New(tr)
		done := false
		for !done {
			select {
			case <-quit:
				return
			case <-frameTicker.C:
			}

			// Burn a batch of ticks per frame, plotting each landing cell
			// with the color of its profile phase.
			width, height := screen.Size()
			for burst := uint32(0); burst < stepsPerFrame; burst++ {
				if !walker.Next() {
					done = true
					break
				}
				phase := tr.Profile.PhaseAt(walker.Tick())

				// Terminal cells are coarse: 2000 steps per column keeps the
				// stock square on an 80x24 screen.
				x := int((machX + walker.Pos(motion.AxisX)) / 2000)
				y := height - 3 - int((machY+walker.Pos(motion.AxisY))/2000)
				if x >= 0 && x < width && y >= 0 && y < height-2 {
					screen.SetContent(x, y, '•', nil, phaseStyle[phase])
				}
			}

			feedNow := tr.Profile.FeedrateAt(walker.Tick())
			rate := motion.StepRate(feedNow, machine.X.StepsPerM)
			status := fmt.Sprintf("move %d/%d  dist %6d um  feed %5d mm/min  %6d steps/s  [q to quit]",
				i+1, len(moves), tr.DistanceUm, feedNow, rate)
			drawText(screen, 0, height-1, tcell.StyleDefault, status)
			screen.Show()
		}

		machX += walker.Pos(motion.AxisX)
		machY += walker.Pos(motion.AxisY)
	}

	// Hold the finished plot until the user quits.
	_, height := screen.Size()
	drawText(screen, 0, height-1, tcell.StyleDefault.Bold(true), "path complete, press q to exit                                          ")
	screen.Show()
	<-quit
}
