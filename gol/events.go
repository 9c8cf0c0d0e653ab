package gol

import (
	"fmt"

	"uk.ac.bris.cs/lifesim/util"
)

// Event is the interface for all events the simulation can send to the
// visualiser goroutine.
type Event interface {
	// String should return a string in the form "Complete Event String at turn X".
	String() string
}

// State is the simulation state as reported by StateChange events.
type State int

const (
	Paused State = iota
	Executing
	Quitting
)

func (state State) String() string {
	switch state {
	case Paused:
		return "Paused"
	case Executing:
		return "Executing"
	case Quitting:
		return "Quitting"
	default:
		return "Incorrect State"
	}
}

// CellsFlipped carries every cell whose state changed in the completed turn,
// so the visualiser can update its board without a full snapshot.
type CellsFlipped struct {
	CompletedTurns int
	Cells          []util.Cell
}

// TurnComplete is sent after CellsFlipped once a full turn has been computed.
// The visualiser refreshes the window when it receives one.
type TurnComplete struct {
	CompletedTurns int
}

// AliveCellsCount is reported roughly every two seconds of execution.
type AliveCellsCount struct {
	CompletedTurns int
	CellsCount     int
}

// FinalTurnComplete is sent exactly once, on shutdown, with the final alive set.
type FinalTurnComplete struct {
	CompletedTurns int
	Alive          []util.Cell
}

// StateChange reports transitions between Executing, Paused and Quitting.
type StateChange struct {
	CompletedTurns int
	NewState       State
}

func (event CellsFlipped) String() string {
	return fmt.Sprintf("Cells Flipped at turn %d", event.CompletedTurns)
}

func (event TurnComplete) String() string {
	return fmt.Sprintf("Turn Complete at turn %d", event.CompletedTurns)
}

func (event AliveCellsCount) String() string {
	return fmt.Sprintf("Alive Cells %d at turn %d", event.CellsCount, event.CompletedTurns)
}

func (event FinalTurnComplete) String() string {
	return fmt.Sprintf("Final Turn Complete at turn %d", event.CompletedTurns)
}

func (event StateChange) String() string {
	return fmt.Sprintf("State Change to %v at turn %d", event.NewState, event.CompletedTurns)
}
