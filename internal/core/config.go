package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	MaxLevel int  // Highest tile level reached this run
	GameOver bool // Whether the run has ended
	Won      bool // Whether the win level was reached
	Paused   bool // Whether the game is paused
}

// EventKind identifies what happened during a step.
type EventKind int

const (
	// EventMilestone fires when a merge produces a new highest level.
	EventMilestone EventKind = iota
	// EventAnswer fires when a trivia question is answered.
	EventAnswer
	// EventRunEnd fires once per run when it finishes: board locked, win
	// level reached, wrong answer or abandoned for a new run.
	EventRunEnd
)

func (k EventKind) String() string {
	switch k {
	case EventMilestone:
		return "milestone"
	case EventAnswer:
		return "answer"
	case EventRunEnd:
		return "run_end"
	default:
		return "unknown"
	}
}

// Event is a notable occurrence the platform may persist or report.
type Event struct {
	Kind    EventKind
	Level   int  // Milestone or answered level, highest level for EventRunEnd
	Score   int  // EventRunEnd only
	Correct bool // EventAnswer only
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
