package gol

// sequential computes the next generation on the calling goroutine with a
// single row-major pass.
type sequential struct{}

func (sequential) Name() string {
	return StrategySequential
}

func (sequential) Describe() string {
	return "a single goroutine"
}

func (sequential) Step(current, next *Grid) {
	for y := 1; y <= current.Height; y++ {
		idx := y*current.pitch + 1
		for x := 1; x <= current.Width; x++ {
			next.cells[idx] = nextState(current.cells[idx], countNeighbours(current, idx))
			idx++
		}
	}
}
