package sdl

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"uk.ac.bris.cs/lifesim/gol"
)

// framerate caps how often the window is redrawn.
const framerate = 60

// Run opens the visualisation window and blocks until the events channel is
// closed. It must be called on the main OS thread (see runtime.LockOSThread
// in main). Alive cells are drawn as filled cellSize squares; window close
// and Escape are forwarded to the simulation as a quit keypress.
func Run(p gol.Params, events <-chan gol.Event, keyPresses chan<- rune) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		panic(err)
	}
	defer sdl.Quit()

	width := p.GridWidth() * p.CellSize
	height := p.GridHeight() * p.CellSize

	window, err := sdl.CreateWindow(
		"Game of Life",
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(width),
		int32(height),
		sdl.WINDOW_SHOWN)
	if err != nil {
		panic(err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		panic(err)
	}
	defer renderer.Destroy()

	// Local copy of the board, updated by CellsFlipped events and drawn at
	// most once per frame tick. Indexed [y][x] like the interior grid.
	board := make([][]bool, p.GridHeight()+1)
	for i := range board {
		board[i] = make([]bool, p.GridWidth()+1)
	}

	fps := time.NewTicker(time.Second / framerate)
	defer fps.Stop()

	dirty := false
	for {
		pollInput(keyPresses)

		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			switch e := event.(type) {
			case gol.CellsFlipped:
				for _, cell := range e.Cells {
					board[cell.Y][cell.X] = !board[cell.Y][cell.X]
				}
			case gol.TurnComplete:
				dirty = true
			case gol.StateChange:
				fmt.Println(e)
			}
		case <-fps.C:
			if dirty {
				render(renderer, board, p.CellSize)
				dirty = false
			}
		}
	}
}

// pollInput drains the SDL event queue, forwarding recognised keypresses to
// the simulation. The send never blocks; with a full channel the keypress is
// dropped rather than stalling the render loop.
func pollInput(keyPresses chan<- rune) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		var key rune
		switch e := event.(type) {
		case *sdl.QuitEvent:
			key = 'q'
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_ESCAPE, sdl.K_q:
				key = 'q'
			case sdl.K_p:
				key = 'p'
			}
		}
		if key != 0 {
			select {
			case keyPresses <- key:
			default:
			}
		}
	}
}

// render draws the whole board: black clear, one white filled square per
// alive cell, positioned by its interior coordinate minus the border.
func render(renderer *sdl.Renderer, board [][]bool, cellSize int) {
	renderer.SetDrawColor(0, 0, 0, 255)
	renderer.Clear()

	renderer.SetDrawColor(255, 255, 255, 255)
	for y := 1; y < len(board); y++ {
		for x := 1; x < len(board[y]); x++ {
			if board[y][x] {
				renderer.FillRect(&sdl.Rect{
					X: int32((x - 1) * cellSize),
					Y: int32((y - 1) * cellSize),
					W: int32(cellSize),
					H: int32(cellSize),
				})
			}
		}
	}
	renderer.Present()
}
