package gol

import "fmt"

// Params provides the details of how to run the Game of Life. It is built
// once from the command line and passed by value; nothing mutates it.
type Params struct {
	Threads      int
	CellSize     int
	WindowWidth  int
	WindowHeight int
	Strategy     string
}

// GridWidth is the number of interior cells per row, as many whole cells as
// fit across the window.
func (p Params) GridWidth() int {
	return p.WindowWidth / p.CellSize
}

// GridHeight is the number of interior cells per column.
func (p Params) GridHeight() int {
	return p.WindowHeight / p.CellSize
}

// Validate rejects parameter combinations the simulation cannot run with.
func (p Params) Validate() error {
	if p.Threads < 2 {
		return fmt.Errorf("thread count must be at least 2, got %d", p.Threads)
	}
	if p.CellSize < 1 {
		return fmt.Errorf("cell size must be at least 1, got %d", p.CellSize)
	}
	if p.GridWidth() < 1 || p.GridHeight() < 1 {
		return fmt.Errorf("window %dx%d is too small for %d pixel cells",
			p.WindowWidth, p.WindowHeight, p.CellSize)
	}
	if _, err := strategyFor(p.Strategy, p.Threads); err != nil {
		return err
	}
	return nil
}

// Run starts the processing of Game of Life. It seeds the world, then drives
// generations until a quit request arrives on keyPresses, closing events on
// the way out. Params must have been validated beforehand.
func Run(p Params, events chan<- Event, keyPresses <-chan rune) {
	strategy, err := strategyFor(p.Strategy, p.Threads)
	if err != nil {
		panic(err)
	}

	distributor(p, strategy, distributorChannels{
		events:     events,
		keyPresses: keyPresses,
	})
}
