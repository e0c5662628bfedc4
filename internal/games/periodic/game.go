// Package periodic implements the periodic-table merge puzzle: slide element
// tiles, fuse equal elements into the next one and answer a question about
// every new element reached.
package periodic

import (
	"math/rand"

	"github.com/vovakirdan/periodic2048/internal/config"
	"github.com/vovakirdan/periodic2048/internal/core"
	"github.com/vovakirdan/periodic2048/internal/engine"
	"github.com/vovakirdan/periodic2048/internal/registry"
	"github.com/vovakirdan/periodic2048/internal/trivia"
)

// ID is the registry and score-storage identifier.
const ID = "periodic"

// Verdict feedback stays on screen this long.
const verdictSeconds = 2

// Game wires the merge engine and the quizmaster into the platform contract.
type Game struct {
	cfg  config.PeriodicConfig
	bank *trivia.Bank

	rng  *rand.Rand
	eng  *engine.Engine
	quiz *trivia.Quizmaster
	snap engine.Snapshot // Last presented board
	tick uint64

	tickRate int
	screenW  int
	screenH  int

	paused   bool
	tooSmall bool
	runEnded bool // EventRunEnd already emitted for the current run

	verdict      *trivia.Verdict
	verdictTicks int
	highlight    int // Ticks left on the merge/spawn highlight

	events []core.Event
}

// New creates a game with the given configuration and question bank.
func New(cfg config.PeriodicConfig, bank *trivia.Bank) *Game {
	if bank == nil {
		bank = trivia.DefaultBank()
	}
	return &Game{cfg: cfg, bank: bank}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New(config.DefaultPeriodicConfig(), nil)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Periodic 2048" }

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | 1-4: Answer | Enter: Skip | R: Restart | P: Pause | Q: Quit"
}

// Reset starts a new session with a fresh RNG.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.tickRate = max(rc.TickRate, 1)
	g.paused = false
	g.events = nil

	g.quiz = trivia.NewQuizmaster(g.bank, g.rng, trivia.Options{
		Enabled:        g.cfg.Trivia.Enabled,
		IntroTicks:     g.cfg.Trivia.IntroTicks(g.tickRate),
		RestartOnWrong: g.cfg.Trivia.RestartOnWrong,
	})
	g.eng = engine.New(g.cfg.Engine(), g.rng,
		engine.WithPresenter(g),
		engine.WithMilestoneNotifier(g),
		engine.WithInputGate(g.quiz),
	)

	g.Resize(rc.ScreenW, rc.ScreenH)
	g.startRun()
}

// Resize records new screen dimensions.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.minScreenSize()
	g.tooSmall = w < minW || h < minH
}

func (g *Game) startRun() {
	g.runEnded = false
	g.verdict = nil
	g.verdictTicks = 0
	g.quiz.Reset()
	g.eng.Reset()
}

// Present keeps the latest board for rendering.
func (g *Game) Present(snap engine.Snapshot) {
	g.snap = snap
	g.highlight = g.tickRate / 4
}

// OnNewMaximum records the milestone and hands it to the quizmaster.
func (g *Game) OnNewMaximum(level int) {
	g.events = append(g.events, core.Event{Kind: core.EventMilestone, Level: level})
	g.quiz.OnNewMaximum(level)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.events = nil

	if g.tooSmall {
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	if g.highlight > 0 {
		g.highlight--
	}
	if g.verdictTicks > 0 {
		g.verdictTicks--
		if g.verdictTicks == 0 {
			g.verdict = nil
		}
	}

	if g.quiz.Suspended() {
		g.stepChallenge(in)
		return g.result()
	}

	if in.Has(core.ActionRestart) {
		g.endRun()
		g.startRun()
		return g.result()
	}

	if dir, ok := directionOf(in); ok {
		g.eng.Move(dir)
		if g.eng.Over() || (g.eng.Won() && !g.cfg.Board.ContinueAfterWin) {
			g.endRun()
		}
	}

	return g.result()
}

func (g *Game) stepChallenge(in core.InputFrame) {
	ch, _ := g.quiz.Current()
	switch ch.Phase {
	case trivia.PhaseIntro:
		if in.Has(core.ActionConfirm) {
			g.quiz.Skip()
		} else {
			g.quiz.Tick()
		}
	case trivia.PhaseQuestion:
		choice := in.Choice()
		if choice == 0 {
			return
		}
		v, ok := g.quiz.Answer(choice)
		if !ok {
			return
		}
		g.events = append(g.events, core.Event{Kind: core.EventAnswer, Level: v.Level, Correct: v.Correct})
		if v.Restart {
			g.endRun()
			g.startRun()
		}
		g.verdict = &v
		g.verdictTicks = verdictSeconds * g.tickRate
	}
}

// endRun emits the run summary once per run. Untouched runs are not reported.
func (g *Game) endRun() {
	if g.runEnded {
		return
	}
	g.runEnded = true
	if g.eng.Score() == 0 {
		return
	}
	g.events = append(g.events, core.Event{
		Kind:  core.EventRunEnd,
		Level: g.eng.HighestValue(),
		Score: g.eng.Score(),
	})
}

func directionOf(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.DirUp, true
	case in.Has(core.ActionRight):
		return engine.DirRight, true
	case in.Has(core.ActionDown):
		return engine.DirDown, true
	case in.Has(core.ActionLeft):
		return engine.DirLeft, true
	}
	return 0, false
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.Score,
		MaxLevel: g.snap.Highest,
		GameOver: g.snap.Over || (g.snap.Won && !g.cfg.Board.ContinueAfterWin),
		Won:      g.snap.Won,
		Paused:   g.paused || g.tooSmall || g.challengeOpen(),
	}
}

func (g *Game) challengeOpen() bool {
	return g.quiz != nil && g.quiz.Suspended()
}
