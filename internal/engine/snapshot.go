package engine

// TileView is a read-only copy of a tile for presenters.
type TileView struct {
	X          int        `json:"x"`
	Y          int        `json:"y"`
	Value      int        `json:"value"`
	Previous   *Position  `json:"previous,omitempty"`    // nil for tiles that did not exist before the move
	MergedFrom []Position `json:"merged_from,omitempty"` // cells the consumed tiles slid from, nil if not a merge result
}

// IsNew reports whether the tile appeared this move without a merge (a spawn).
func (t TileView) IsNew() bool {
	return t.Previous == nil && t.MergedFrom == nil
}

// Snapshot is the state pushed to presenters.
type Snapshot struct {
	Size    int        `json:"size"`
	Score   int        `json:"score"`
	Over    bool       `json:"over"`
	Won     bool       `json:"won"`
	Highest int        `json:"highest"` // Milestone watermark
	Tiles   []TileView `json:"tiles"`
}

// Grid returns tile levels indexed [y][x], 0 for empty cells.
func (s Snapshot) Grid() [][]int {
	grid := make([][]int, s.Size)
	for y := range grid {
		grid[y] = make([]int, s.Size)
	}
	for _, t := range s.Tiles {
		grid[t.Y][t.X] = t.Value
	}
	return grid
}

// MaxValue returns the highest level on the board.
func (s Snapshot) MaxValue() int {
	maxVal := 0
	for _, t := range s.Tiles {
		if t.Value > maxVal {
			maxVal = t.Value
		}
	}
	return maxVal
}

func viewOf(t *Tile) TileView {
	v := TileView{X: t.X, Y: t.Y, Value: t.Value}
	if t.PreviousPosition != nil {
		p := *t.PreviousPosition
		v.Previous = &p
	}
	if t.MergedFrom != nil {
		v.MergedFrom = make([]Position, len(t.MergedFrom))
		for i, src := range t.MergedFrom {
			if src.PreviousPosition != nil {
				v.MergedFrom[i] = *src.PreviousPosition
			} else {
				v.MergedFrom[i] = src.Position()
			}
		}
	}
	return v
}
