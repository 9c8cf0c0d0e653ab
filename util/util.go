package util

import "fmt"

// Cell is a single interior grid coordinate, 1-indexed from the top-left.
type Cell struct {
	X, Y int
}

func (cell Cell) String() string {
	return fmt.Sprintf("(%d, %d)", cell.X, cell.Y)
}
