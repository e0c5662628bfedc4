package periodic

import (
	"github.com/vovakirdan/periodic2048/internal/engine"
	"github.com/vovakirdan/periodic2048/internal/trivia"
)

// StateType represents what the game is currently showing.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StateIntro       StateType = "element_intro"
	StateQuestion    StateType = "question"
	StateGameOver    StateType = "game_over"
	StateWin         StateType = "win"
	StatePaused      StateType = "paused"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Board     engine.Snapshot
	State     StateType
	Challenge *trivia.Challenge // Open interstitial, if any
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:  g.tick,
		Board: g.snap,
		State: StatePlaying,
	}

	if ch, ok := g.quiz.Current(); ok {
		s.Challenge = &ch
	}

	switch {
	case g.tooSmall:
		s.State = StatePausedSmall
	case g.paused:
		s.State = StatePaused
	case s.Challenge != nil && s.Challenge.Phase == trivia.PhaseIntro:
		s.State = StateIntro
	case s.Challenge != nil:
		s.State = StateQuestion
	case g.snap.Over:
		s.State = StateGameOver
	case g.snap.Won && !g.cfg.Board.ContinueAfterWin:
		s.State = StateWin
	}
	return s
}
