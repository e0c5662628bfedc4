// Package engine implements the grid/merge model of the periodic 2048 puzzle:
// the board of element tiles, directional moves, merge resolution, spawning and
// terminal-state detection. It has no rendering, input or storage dependencies;
// collaborators are attached through the Presenter, MilestoneNotifier and
// InputGate interfaces.
package engine

// Position addresses a board cell.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the position one step along v.
func (p Position) Add(v Vector) Position {
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}

// Tile is one numbered piece on the board.
// Value is a level (1 = hydrogen, 2 = helium, ...), not a power of two.
type Tile struct {
	X, Y  int
	Value int

	// PreviousPosition is the cell the tile occupied before the current move.
	PreviousPosition *Position

	// MergedFrom holds the two tiles consumed to produce this one during the
	// current move. A tile with MergedFrom set may not merge again this move.
	MergedFrom []*Tile
}

// NewTile creates a tile at pos with the given level.
func NewTile(pos Position, value int) *Tile {
	return &Tile{X: pos.X, Y: pos.Y, Value: value}
}

// Position returns the tile's current cell.
func (t *Tile) Position() Position {
	return Position{X: t.X, Y: t.Y}
}

// savePosition records the current cell for animation bookkeeping.
func (t *Tile) savePosition() {
	t.PreviousPosition = &Position{X: t.X, Y: t.Y}
}

// updatePosition changes the tile's own coordinates only.
// Callers must keep the board matrix in sync.
func (t *Tile) updatePosition(p Position) {
	t.X = p.X
	t.Y = p.Y
}
