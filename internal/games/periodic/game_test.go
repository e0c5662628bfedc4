package periodic

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/periodic2048/internal/config"
	"github.com/vovakirdan/periodic2048/internal/core"
	"github.com/vovakirdan/periodic2048/internal/engine"
	"github.com/vovakirdan/periodic2048/internal/registry"
	"github.com/vovakirdan/periodic2048/internal/trivia"
)

const testTickRate = 10

func newTestGame(t *testing.T, mutate func(c *config.PeriodicConfig)) *Game {
	t.Helper()
	cfg := config.DefaultPeriodicConfig()
	cfg.Trivia.IntroSeconds = 0.2 // two ticks
	if mutate != nil {
		mutate(&cfg)
	}
	g := New(cfg, trivia.DefaultBank())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: testTickRate, Seed: 42})
	return g
}

// loadRow empties the board and places levels along the top row.
func loadRow(g *Game, levels ...int) {
	b := g.eng.Board()
	b.EachCell(func(_, _ int, tile *engine.Tile) {
		if tile != nil {
			b.RemoveTile(tile)
		}
	})
	for x, v := range levels {
		if v > 0 {
			b.InsertTile(engine.NewTile(engine.Position{X: x, Y: 0}, v))
		}
	}
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func eventsOf(res core.StepResult, kind core.EventKind) []core.Event {
	var out []core.Event
	for _, e := range res.Events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("periodic not registered: %v", err)
	}
	if g.Title() != "Periodic 2048" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestResetStartsWithHydrogen(t *testing.T) {
	g := newTestGame(t, nil)

	snap := g.Snapshot()
	if snap.State != StatePlaying || len(snap.Board.Tiles) != 1 {
		t.Fatalf("unexpected start %+v", snap)
	}
	if snap.Board.Tiles[0].Value != 1 || snap.Board.Size != 5 {
		t.Errorf("expected a single hydrogen on a 5x5 board, got %+v", snap.Board)
	}
	if st := g.State(); st.Score != 0 || st.MaxLevel != 1 || st.GameOver || st.Paused {
		t.Errorf("unexpected state %+v", st)
	}
}

func TestMergeOpensChallengeAndBlocksMoves(t *testing.T) {
	g := newTestGame(t, nil)
	loadRow(g, 1, 1)

	res := g.Step(frame(core.ActionLeft))
	milestones := eventsOf(res, core.EventMilestone)
	if len(milestones) != 1 || milestones[0].Level != 2 {
		t.Fatalf("expected helium milestone, got %+v", res.Events)
	}
	if !res.State.Paused || res.State.Score != 2 || res.State.MaxLevel != 2 {
		t.Fatalf("unexpected state %+v", res.State)
	}

	snap := g.Snapshot()
	if snap.State != StateIntro || snap.Challenge.Element.Symbol != "He" {
		t.Fatalf("expected helium intro, got %+v", snap)
	}

	before := g.Snapshot().Board
	g.Step(frame(core.ActionRight))
	if !reflect.DeepEqual(before, g.Snapshot().Board) {
		t.Fatalf("moves must be ignored while the challenge is open")
	}

	// The move above also counted as an intro tick.
	g.Step(frame())
	if g.Snapshot().State != StateQuestion {
		t.Fatalf("intro should end after its countdown, state %s", g.Snapshot().State)
	}
}

func TestCorrectAnswerResumesPlay(t *testing.T) {
	g := newTestGame(t, nil)
	loadRow(g, 1, 1)
	g.Step(frame(core.ActionLeft))
	g.Step(frame(core.ActionConfirm))

	ch, ok := g.quiz.Current()
	if !ok || ch.Phase != trivia.PhaseQuestion {
		t.Fatalf("confirm should skip to the question, got %+v", ch)
	}

	res := g.Step(frame(core.ChoiceActions[ch.Question.Answer-1]))
	answers := eventsOf(res, core.EventAnswer)
	if len(answers) != 1 || !answers[0].Correct || answers[0].Level != 2 {
		t.Fatalf("unexpected answer events %+v", res.Events)
	}
	if res.State.Paused || res.State.Score != 2 {
		t.Fatalf("play should resume with the score intact, got %+v", res.State)
	}
	if g.verdict == nil || !g.verdict.Correct {
		t.Fatalf("verdict feedback missing")
	}

	for range verdictSeconds * testTickRate {
		g.Step(frame())
	}
	if g.verdict != nil {
		t.Errorf("verdict feedback should expire")
	}
}

func TestWrongAnswer(t *testing.T) {
	tests := []struct {
		name           string
		restartOnWrong bool
		wantScore      int
	}{
		{"restarts run", true, 0},
		{"keeps run", false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, func(c *config.PeriodicConfig) {
				c.Trivia.RestartOnWrong = tt.restartOnWrong
			})
			loadRow(g, 1, 1)
			g.Step(frame(core.ActionLeft))
			g.Step(frame(core.ActionConfirm))

			ch, _ := g.quiz.Current()
			wrong := ch.Question.Answer%len(ch.Question.Choices) + 1
			res := g.Step(frame(core.ChoiceActions[wrong-1]))

			if a := eventsOf(res, core.EventAnswer); len(a) != 1 || a[0].Correct {
				t.Fatalf("expected a wrong answer event, got %+v", res.Events)
			}
			ends := eventsOf(res, core.EventRunEnd)
			if tt.restartOnWrong && (len(ends) != 1 || ends[0].Score != 2 || ends[0].Level != 2) {
				t.Fatalf("expected run end with score 2, got %+v", res.Events)
			}
			if !tt.restartOnWrong && len(ends) != 0 {
				t.Fatalf("run should continue, got %+v", res.Events)
			}
			if res.State.Score != tt.wantScore || res.State.Paused {
				t.Fatalf("unexpected state %+v", res.State)
			}
			if g.verdict == nil || g.verdict.Restart != tt.restartOnWrong {
				t.Fatalf("verdict feedback wrong: %+v", g.verdict)
			}
		})
	}
}

func TestDisabledTriviaNeverPauses(t *testing.T) {
	g := newTestGame(t, func(c *config.PeriodicConfig) { c.Trivia.Enabled = false })
	loadRow(g, 1, 1)

	res := g.Step(frame(core.ActionLeft))
	if len(eventsOf(res, core.EventMilestone)) != 1 {
		t.Fatalf("milestones still fire without trivia")
	}
	if res.State.Paused || g.Snapshot().Challenge != nil {
		t.Fatalf("disabled trivia must not open a challenge")
	}
}

func TestRestartKey(t *testing.T) {
	g := newTestGame(t, func(c *config.PeriodicConfig) { c.Trivia.Enabled = false })

	if res := g.Step(frame(core.ActionRestart)); len(eventsOf(res, core.EventRunEnd)) != 0 {
		t.Fatalf("untouched run should not be reported")
	}

	loadRow(g, 2, 2)
	g.Step(frame(core.ActionLeft))
	res := g.Step(frame(core.ActionRestart))
	ends := eventsOf(res, core.EventRunEnd)
	if len(ends) != 1 || ends[0].Score != 3 || ends[0].Level != 3 {
		t.Fatalf("expected run end for lithium run, got %+v", res.Events)
	}
	if res.State.Score != 0 {
		t.Fatalf("restart should clear the score, got %d", res.State.Score)
	}
}

func TestWinEndsRun(t *testing.T) {
	g := newTestGame(t, func(c *config.PeriodicConfig) {
		c.Trivia.Enabled = false
		c.Board.WinLevel = 3
	})
	loadRow(g, 2, 2)

	res := g.Step(frame(core.ActionLeft))
	if !res.State.Won || !res.State.GameOver || g.Snapshot().State != StateWin {
		t.Fatalf("reaching the win level should end the run, got %+v", res.State)
	}
	if len(eventsOf(res, core.EventRunEnd)) != 1 {
		t.Fatalf("expected run end event, got %+v", res.Events)
	}

	res = g.Step(frame(core.ActionRestart))
	if len(eventsOf(res, core.EventRunEnd)) != 0 {
		t.Fatalf("a finished run is reported once")
	}
}

func TestPauseAndTooSmall(t *testing.T) {
	g := newTestGame(t, nil)

	g.Step(frame(core.ActionPause))
	if g.Snapshot().State != StatePaused || !g.State().Paused {
		t.Fatalf("pause not applied")
	}
	before := g.Snapshot().Board
	g.Step(frame(core.ActionLeft))
	g.Step(frame(core.ActionUp))
	if !reflect.DeepEqual(before, g.Snapshot().Board) {
		t.Fatalf("paused game must not move")
	}
	g.Step(frame(core.ActionPause))

	g.Resize(20, 10)
	if g.Snapshot().State != StatePausedSmall {
		t.Fatalf("expected small window state")
	}
	g.Resize(80, 40)
	if g.Snapshot().State != StatePlaying {
		t.Fatalf("resize should restore play")
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	inputs := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
	play := func() []engine.Snapshot {
		g := newTestGame(t, func(c *config.PeriodicConfig) { c.Trivia.Enabled = false })
		var out []engine.Snapshot
		for i := range 60 {
			g.Step(frame(inputs[i%len(inputs)]))
			out = append(out, g.Snapshot().Board)
		}
		return out
	}

	if !reflect.DeepEqual(play(), play()) {
		t.Fatalf("same seed and inputs should replay identically")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, nil)
	loadRow(g, 1, 1)
	g.Step(frame(core.ActionLeft))

	screen := core.NewScreen(80, 40)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"PERIODIC 2048", "Score: 2", "Helium", "Goal: Calcium (20)"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	g.Step(frame(core.ActionConfirm))
	g.Render(screen)
	ch, _ := g.quiz.Current()
	if !strings.Contains(screen.String(), "1) "+strings.Fields(ch.Question.Choices[0])[0]) {
		t.Errorf("question choices not rendered:\n%s", screen.String())
	}

	g.Resize(10, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too small message")
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"", 10, []string{""}},
		{"Lightest element", 40, []string{"Lightest element"}},
		{"Which gas fills party balloons", 12, []string{"Which gas", "fills party", "balloons"}},
		{"Unbreakableword", 5, []string{"Unbreakableword"}},
	}

	for _, tt := range tests {
		if got := wrapText(tt.text, tt.width); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
