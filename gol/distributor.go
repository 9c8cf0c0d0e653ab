package gol

import (
	"fmt"
	"time"
)

type distributorChannels struct {
	events     chan<- Event
	keyPresses <-chan rune
}

// reportEvery is how many generations are accumulated into one timing report.
const reportEvery = 100

// aliveReportInterval is how often an AliveCellsCount event is emitted.
const aliveReportInterval = 2 * time.Second

// distributor owns the double buffer and drives the simulation until the user
// quits. Exactly one Step call is in flight at a time; input is polled only
// between generations, so a partially computed generation is never displayed.
func distributor(p Params, s Strategy, c distributorChannels) {
	current := NewGrid(p.GridWidth(), p.GridHeight())
	next := NewGrid(p.GridWidth(), p.GridHeight())
	current.Seed()

	// Show the seeded world before the first turn is computed.
	c.events <- CellsFlipped{CompletedTurns: 0, Cells: current.AliveCells()}
	c.events <- TurnComplete{CompletedTurns: 0}

	ticker := time.NewTicker(aliveReportInterval)
	defer ticker.Stop()

	turn := 0
	generations := 0
	var elapsed time.Duration
	quitting := false

	for !quitting {
		// Poll input and the ticker between generations.
		select {
		case k := <-c.keyPresses:
			switch k {
			case 'q':
				quitting = true
			case 'p':
				c.events <- StateChange{CompletedTurns: turn, NewState: Paused}
				quitting = !resume(c.keyPresses)
				if !quitting {
					c.events <- StateChange{CompletedTurns: turn, NewState: Executing}
				}
			}
		case <-ticker.C:
			c.events <- AliveCellsCount{CompletedTurns: turn, CellsCount: len(current.AliveCells())}
		default:
		}
		if quitting {
			break
		}

		start := time.Now()
		s.Step(current, next)
		elapsed += time.Since(start)

		turn++
		generations++
		if generations == reportEvery {
			fmt.Printf("%d generations took %d microseconds with %s\n",
				reportEvery, int64(elapsed/time.Microsecond), s.Describe())
			generations = 0
			elapsed = 0
		}

		flipped := current.FlippedCells(next)
		current, next = next, current

		c.events <- CellsFlipped{CompletedTurns: turn, Cells: flipped}
		c.events <- TurnComplete{CompletedTurns: turn}
	}

	c.events <- FinalTurnComplete{CompletedTurns: turn, Alive: current.AliveCells()}
	c.events <- StateChange{CompletedTurns: turn, NewState: Quitting}

	// Close the channel to stop the SDL goroutine gracefully. Removing may cause deadlock.
	close(c.events)
}

// resume blocks until the user unpauses with 'p' (true) or quits with 'q'
// (false). Other keys are swallowed while paused.
func resume(keyPresses <-chan rune) bool {
	for {
		switch <-keyPresses {
		case 'p':
			return true
		case 'q':
			return false
		}
	}
}
