package gol

import "fmt"

// Strategy names accepted by the -t flag.
const (
	StrategySequential   = "SEQ"
	StrategyThreadPool   = "THRD"
	StrategyLoopParallel = "OMP"
)

// A Strategy computes the next generation from the current one. Step reads
// every interior cell of current and writes every interior cell of next;
// border cells are never touched. All strategies must produce identical
// output for identical input.
type Strategy interface {
	// Name is the flag value that selects this strategy.
	Name() string
	// Describe is the human-readable form used in timing reports.
	Describe() string
	Step(current, next *Grid)
}

// strategyFor builds the strategy selected on the command line. The choice is
// made once at startup and dispatched per generation through the interface.
func strategyFor(name string, threads int) (Strategy, error) {
	switch name {
	case StrategySequential:
		return sequential{}, nil
	case StrategyThreadPool:
		return threadPool{threads: threads}, nil
	case StrategyLoopParallel:
		return loopParallel{threads: threads}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q: want SEQ, THRD or OMP", name)
	}
}

// nextState applies the Game of Life rule to a cell given its current state
// and the number of alive neighbours.
func nextState(current uint8, neighbours int) uint8 {
	if current == alive {
		if neighbours == 2 || neighbours == 3 {
			return alive
		}
		return dead
	}
	if neighbours == 3 {
		return alive
	}
	return dead
}

// countNeighbours sums the 8 cells surrounding the buffer offset idx. The
// border padding guarantees every offset it touches is in bounds, and border
// cells are always dead so they contribute nothing.
func countNeighbours(g *Grid, idx int) int {
	p := g.pitch
	return int(g.cells[idx-p-1]) + int(g.cells[idx-p]) + int(g.cells[idx-p+1]) +
		int(g.cells[idx-1]) + int(g.cells[idx+1]) +
		int(g.cells[idx+p-1]) + int(g.cells[idx+p]) + int(g.cells[idx+p+1])
}

// stepCell advances the single cell at flat interior index i, where i ranges
// over [0, Width*Height) in row-major order.
func stepCell(current, next *Grid, i int) {
	x := i%current.Width + 1
	y := i/current.Width + 1
	idx := y*current.pitch + x
	next.cells[idx] = nextState(current.cells[idx], countNeighbours(current, idx))
}
