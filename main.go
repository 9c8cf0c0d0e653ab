package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"uk.ac.bris.cs/lifesim/gol"
	"uk.ac.bris.cs/lifesim/sdl"
)

// main is the function called when starting Game of Life with 'go run .'
func main() {
	runtime.LockOSThread()
	var params gol.Params

	flag.IntVar(
		&params.Threads,
		"n",
		8,
		"Specify the number of worker goroutines to use. Defaults to 8.")

	flag.IntVar(
		&params.CellSize,
		"c",
		5,
		"Specify the size of one cell in pixels. Defaults to 5.")

	flag.IntVar(
		&params.WindowWidth,
		"x",
		800,
		"Specify the width of the window. Defaults to 800.")

	flag.IntVar(
		&params.WindowHeight,
		"y",
		600,
		"Specify the height of the window. Defaults to 600.")

	flag.StringVar(
		&params.Strategy,
		"t",
		gol.StrategyThreadPool,
		"Specify the update strategy: SEQ, THRD or OMP. Defaults to THRD.")

	noVis := flag.Bool(
		"noVis",
		false,
		"Disables the SDL window, so there is no visualisation during the tests.")

	flag.Parse()

	if err := params.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	rand.Seed(time.Now().UnixNano())

	fmt.Println("Strategy:", params.Strategy)
	fmt.Println("Threads:", params.Threads)
	fmt.Println("Grid:", params.GridWidth(), "x", params.GridHeight())

	keyPresses := make(chan rune, 10)
	events := make(chan gol.Event, 1000)

	go gol.Run(params, events, keyPresses)

	if !(*noVis) {
		sdl.Run(params, events, keyPresses)
	} else {
		complete := false
		for !complete {
			event := <-events
			switch event.(type) {
			case gol.FinalTurnComplete:
				complete = true
			}
		}
	}
}
