package gol

import (
	"math/rand"

	"uk.ac.bris.cs/lifesim/util"
)

const (
	dead  uint8 = 0
	alive uint8 = 1
)

// Grid stores one generation of the world as a flat buffer with a one-cell
// border of permanently dead padding on every side. The padding means
// neighbour lookups never need a bounds check and the world does not wrap.
// Interior cells are addressed with 1-indexed coordinates,
// 1 <= x <= Width and 1 <= y <= Height.
type Grid struct {
	Width  int
	Height int
	pitch  int
	cells  []uint8
}

// NewGrid allocates an all-dead grid for an interior of the given dimensions.
func NewGrid(width, height int) *Grid {
	pitch := width + 2
	return &Grid{
		Width:  width,
		Height: height,
		pitch:  pitch,
		cells:  make([]uint8, (height+2)*pitch),
	}
}

// Pitch is the row stride of the flat buffer, interior width plus the two
// border columns.
func (g *Grid) Pitch() int {
	return g.pitch
}

// Index maps an interior coordinate to its offset in the flat buffer.
func (g *Grid) Index(x, y int) int {
	return y*g.pitch + x
}

// At returns the state of the interior cell at (x, y).
func (g *Grid) At(x, y int) uint8 {
	return g.cells[y*g.pitch+x]
}

// Set assigns the state of the interior cell at (x, y).
func (g *Grid) Set(x, y int, v uint8) {
	g.cells[y*g.pitch+x] = v
}

// Seed randomises every interior cell to dead or alive with equal
// probability, using the process-wide source. The border is left dead.
func (g *Grid) Seed() {
	for y := 1; y <= g.Height; y++ {
		for x := 1; x <= g.Width; x++ {
			g.cells[y*g.pitch+x] = uint8(rand.Intn(2))
		}
	}
}

// AliveCells collects the coordinates of every alive interior cell in
// row-major order.
func (g *Grid) AliveCells() []util.Cell {
	var cells []util.Cell
	for y := 1; y <= g.Height; y++ {
		for x := 1; x <= g.Width; x++ {
			if g.cells[y*g.pitch+x] == alive {
				cells = append(cells, util.Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// FlippedCells collects every interior cell whose state differs between the
// two grids. Both grids must have the same dimensions.
func (g *Grid) FlippedCells(other *Grid) []util.Cell {
	var cells []util.Cell
	for y := 1; y <= g.Height; y++ {
		for x := 1; x <= g.Width; x++ {
			if g.cells[y*g.pitch+x] != other.cells[y*g.pitch+x] {
				cells = append(cells, util.Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// Equals reports whether both grids hold identical cell states, border
// included.
func (g *Grid) Equals(other *Grid) bool {
	if g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
