package engine

// Board is a size x size matrix of optional tiles, indexed cells[x][y].
type Board struct {
	size  int
	cells [][]*Tile
}

// NewBoard builds an empty board.
func NewBoard(size int) *Board {
	b := &Board{size: size}
	b.build()
	return b
}

func (b *Board) build() {
	b.cells = make([][]*Tile, b.size)
	for x := range b.size {
		b.cells[x] = make([]*Tile, b.size)
	}
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// EachCell visits every cell in increasing x, then increasing y order.
func (b *Board) EachCell(visit func(x, y int, tile *Tile)) {
	for x := range b.size {
		for y := range b.size {
			visit(x, y, b.cells[x][y])
		}
	}
}

// AvailableCells returns the empty cells in EachCell order.
func (b *Board) AvailableCells() []Position {
	var cells []Position
	b.EachCell(func(x, y int, tile *Tile) {
		if tile == nil {
			cells = append(cells, Position{X: x, Y: y})
		}
	})
	return cells
}

// RandomAvailableCell picks an empty cell uniformly.
// Returns false when the board is full.
func (b *Board) RandomAvailableCell(rng Source) (Position, bool) {
	cells := b.AvailableCells()
	if len(cells) == 0 {
		return Position{}, false
	}
	return cells[rng.Intn(len(cells))], true
}

// CellsAvailable reports whether at least one cell is empty.
func (b *Board) CellsAvailable() bool {
	for x := range b.size {
		for y := range b.size {
			if b.cells[x][y] == nil {
				return true
			}
		}
	}
	return false
}

// CellAvailable reports whether p is empty. Out-of-bounds cells are never available.
func (b *Board) CellAvailable(p Position) bool {
	return b.WithinBounds(p) && b.cells[p.X][p.Y] == nil
}

// CellOccupied reports whether p holds a tile.
func (b *Board) CellOccupied(p Position) bool {
	return b.CellContent(p) != nil
}

// CellContent returns the tile at p, or nil for empty or out-of-bounds cells.
func (b *Board) CellContent(p Position) *Tile {
	if !b.WithinBounds(p) {
		return nil
	}
	return b.cells[p.X][p.Y]
}

// WithinBounds reports whether p lies on the board.
func (b *Board) WithinBounds(p Position) bool {
	return p.X >= 0 && p.X < b.size && p.Y >= 0 && p.Y < b.size
}

// InsertTile places the tile at its own coordinates, replacing any occupant.
func (b *Board) InsertTile(t *Tile) {
	b.cells[t.X][t.Y] = t
}

// RemoveTile clears the cell at the tile's coordinates.
func (b *Board) RemoveTile(t *Tile) {
	b.cells[t.X][t.Y] = nil
}

// MoveTile relocates a tile, updating the matrix and the tile together.
func (b *Board) MoveTile(t *Tile, p Position) {
	b.cells[t.X][t.Y] = nil
	b.cells[p.X][p.Y] = t
	t.updatePosition(p)
}

// MaxValue returns the highest level on the board, or 0 when empty.
func (b *Board) MaxValue() int {
	maxVal := 0
	b.EachCell(func(_, _ int, tile *Tile) {
		if tile != nil && tile.Value > maxVal {
			maxVal = tile.Value
		}
	})
	return maxVal
}

// TileCount returns the number of tiles on the board.
func (b *Board) TileCount() int {
	n := 0
	b.EachCell(func(_, _ int, tile *Tile) {
		if tile != nil {
			n++
		}
	})
	return n
}
