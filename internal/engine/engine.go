package engine

import "fmt"

// Engine owns a board plus the session state and resolves moves.
// It is not safe for concurrent use; callers serialize Reset and Move.
type Engine struct {
	cfg   Config
	rng   Source
	board *Board

	score   int
	over    bool
	won     bool
	highest int // Highest level seen this session
	ready   bool

	presenter Presenter
	notifier  MilestoneNotifier
	gate      InputGate
}

// New creates an engine. Reset must be called before the first Move.
// Panics if cfg is invalid or rng is nil.
func New(cfg Config, rng Source, opts ...Option) *Engine {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("engine: invalid config: %v", err))
	}
	if rng == nil {
		panic("engine: nil random source")
	}

	e := &Engine{cfg: cfg, rng: rng}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reset starts a new session: empty board, zero score, cleared flags, start
// tiles placed, and an initial snapshot pushed to the presenter.
func (e *Engine) Reset() {
	e.board = NewBoard(e.cfg.Size)
	e.score = 0
	e.over = false
	e.won = false
	e.ready = true

	e.addStartTiles()
	e.highest = e.board.MaxValue()

	e.present()
}

func (e *Engine) addStartTiles() {
	for range e.cfg.StartTiles {
		cell, ok := e.board.RandomAvailableCell(e.rng)
		if !ok {
			return
		}
		e.board.InsertTile(NewTile(cell, 1))
	}
}

// addRandomTile spawns level 1 (or level 2) on a random empty cell.
// A full board is a normal no-op.
func (e *Engine) addRandomTile() {
	cell, ok := e.board.RandomAvailableCell(e.rng)
	if !ok {
		return
	}

	value := 1
	if e.rng.Float64() >= e.cfg.SpawnOneProbability {
		value = 2
	}
	e.board.InsertTile(NewTile(cell, value))

	// Spawns count as seen but never announce a milestone.
	if value > e.highest {
		e.highest = value
	}
}

// Move slides every tile in direction d, resolving merges.
// Returns true if any tile changed cell. A move that changes nothing has no
// side effects at all.
func (e *Engine) Move(d Direction) bool {
	if !e.ready {
		panic("engine: Move called before Reset")
	}
	vector := d.Vector()

	if e.Blocked() {
		return false
	}

	traversals := BuildTraversals(e.cfg.Size, vector)
	moved := false
	var milestones []int

	restore := e.prepareTiles()

	for _, x := range traversals.X {
		for _, y := range traversals.Y {
			cell := Position{X: x, Y: y}
			tile := e.board.CellContent(cell)
			if tile == nil {
				continue
			}

			farthest, nextPos := e.findFarthestPosition(cell, vector)
			next := e.board.CellContent(nextPos)

			if next != nil && next.Value == tile.Value && next.MergedFrom == nil {
				merged := NewTile(nextPos, tile.Value+1)
				merged.MergedFrom = []*Tile{tile, next}

				e.board.InsertTile(merged)
				e.board.RemoveTile(tile)

				// The consumed tile converges on the merge cell for animation.
				tile.updatePosition(nextPos)

				e.score += merged.Value
				if merged.Value >= e.cfg.WinValue {
					e.won = true
				}
				if merged.Value > e.highest {
					e.highest = merged.Value
					milestones = append(milestones, merged.Value)
				}
			} else {
				e.board.MoveTile(tile, farthest)
			}

			if tile.Position() != cell {
				moved = true
			}
		}
	}

	if !moved {
		restore()
		return false
	}

	e.addRandomTile()
	if !e.MovesAvailable() {
		e.over = true
	}
	e.present()

	if e.notifier != nil {
		for _, value := range milestones {
			e.notifier.OnNewMaximum(value)
		}
	}
	return true
}

// Blocked reports whether Move would be ignored right now.
func (e *Engine) Blocked() bool {
	if e.over {
		return true
	}
	if e.won && !e.cfg.ContinueAfterWin {
		return true
	}
	return e.gate != nil && e.gate.Suspended()
}

// prepareTiles clears merge info and saves positions before any tile moves.
// The returned func puts the bookkeeping back for a move that changed nothing.
func (e *Engine) prepareTiles() (restore func()) {
	type saved struct {
		tile       *Tile
		previous   *Position
		mergedFrom []*Tile
	}
	var before []saved

	e.board.EachCell(func(_, _ int, tile *Tile) {
		if tile != nil {
			before = append(before, saved{tile, tile.PreviousPosition, tile.MergedFrom})
			tile.MergedFrom = nil
			tile.savePosition()
		}
	})

	return func() {
		for _, s := range before {
			s.tile.PreviousPosition = s.previous
			s.tile.MergedFrom = s.mergedFrom
		}
	}
}

// findFarthestPosition walks from cell along v while the next cell is empty.
// farthest is always on the board; next is the first blocking cell, which
// may be out of bounds.
func (e *Engine) findFarthestPosition(cell Position, v Vector) (farthest, next Position) {
	next = cell
	for {
		farthest = next
		next = farthest.Add(v)
		if !e.board.CellAvailable(next) {
			return farthest, next
		}
	}
}

// MovesAvailable reports whether any move can still change the board.
func (e *Engine) MovesAvailable() bool {
	return e.board.CellsAvailable() || e.tileMatchesAvailable()
}

// tileMatchesAvailable looks for two adjacent tiles of equal level.
func (e *Engine) tileMatchesAvailable() bool {
	for x := range e.cfg.Size {
		for y := range e.cfg.Size {
			tile := e.board.CellContent(Position{X: x, Y: y})
			if tile == nil {
				continue
			}
			for _, d := range Directions {
				other := e.board.CellContent(tile.Position().Add(d.Vector()))
				if other != nil && other.Value == tile.Value {
					return true
				}
			}
		}
	}
	return false
}

func (e *Engine) present() {
	if e.presenter != nil {
		e.presenter.Present(e.Snapshot())
	}
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Size:    e.cfg.Size,
		Score:   e.score,
		Over:    e.over,
		Won:     e.won,
		Highest: e.highest,
	}
	if e.board == nil {
		return snap
	}
	e.board.EachCell(func(_, _ int, tile *Tile) {
		if tile != nil {
			snap.Tiles = append(snap.Tiles, viewOf(tile))
		}
	})
	return snap
}

// Score returns the accumulated merge score.
func (e *Engine) Score() int { return e.score }

// Over reports whether no move is left.
func (e *Engine) Over() bool { return e.over }

// Won reports whether the win level has been produced.
func (e *Engine) Won() bool { return e.won }

// HighestValue returns the milestone watermark.
func (e *Engine) HighestValue() int { return e.highest }

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Board exposes the live board. Mutating it outside Move breaks the engine's
// invariants; it exists for presenters and tests.
func (e *Engine) Board() *Board { return e.board }
