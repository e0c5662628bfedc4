package engine

import (
	"fmt"
	"slices"
	"strings"
)

// Direction is one of the four moves. The numbering matches the input
// boundary: 0 up, 1 right, 2 down, 3 left.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Directions lists all moves in numeric order.
var Directions = [...]Direction{DirUp, DirRight, DirDown, DirLeft}

// Vector is a unit step on the board.
type Vector struct {
	X, Y int
}

var vectors = [...]Vector{
	DirUp:    {X: 0, Y: -1},
	DirRight: {X: 1, Y: 0},
	DirDown:  {X: 0, Y: 1},
	DirLeft:  {X: -1, Y: 0},
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirLeft
}

// Vector returns the unit vector for d. Panics on an invalid direction.
func (d Direction) Vector() Vector {
	if !d.Valid() {
		panic(fmt.Sprintf("engine: invalid direction %d", int(d)))
	}
	return vectors[d]
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts a direction name or its number.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "0":
		return DirUp, nil
	case "right", "1":
		return DirRight, nil
	case "down", "2":
		return DirDown, nil
	case "left", "3":
		return DirLeft, nil
	}
	return 0, fmt.Errorf("engine: unknown direction %q", s)
}

// Traversals holds the column and row visiting order for a move.
type Traversals struct {
	X []int
	Y []int
}

// BuildTraversals returns ascending indices for each axis, reversed on the
// axes where the vector component is +1, so tiles nearest the destination
// edge are processed first.
func BuildTraversals(size int, v Vector) Traversals {
	t := Traversals{
		X: make([]int, size),
		Y: make([]int, size),
	}
	for pos := range size {
		t.X[pos] = pos
		t.Y[pos] = pos
	}

	if v.X == 1 {
		slices.Reverse(t.X)
	}
	if v.Y == 1 {
		slices.Reverse(t.Y)
	}
	return t
}
