package trivia

import "testing"

func newTestQuizmaster(opts Options) *Quizmaster {
	return NewQuizmaster(DefaultBank(), fixedSource(0), opts)
}

func TestQuizmasterFlow(t *testing.T) {
	qm := newTestQuizmaster(Options{Enabled: true, IntroTicks: 3, RestartOnWrong: true})

	if qm.Suspended() {
		t.Fatalf("fresh quizmaster must not suspend")
	}

	qm.OnNewMaximum(2)
	ch, ok := qm.Current()
	if !ok || !qm.Suspended() {
		t.Fatalf("milestone should open a challenge")
	}
	if ch.Element.Symbol != "He" || ch.Phase != PhaseIntro || ch.TicksLeft != 3 {
		t.Fatalf("unexpected challenge %+v", ch)
	}

	if _, ok := qm.Answer(1); ok {
		t.Fatalf("answers must be ignored during the intro")
	}

	qm.Tick()
	qm.Tick()
	if ch, _ := qm.Current(); ch.Phase != PhaseIntro {
		t.Fatalf("intro ended early")
	}
	qm.Tick()
	ch, _ = qm.Current()
	if ch.Phase != PhaseQuestion || ch.Question == nil {
		t.Fatalf("expected question phase, got %+v", ch)
	}

	if _, ok := qm.Answer(0); ok {
		t.Fatalf("choice 0 must be rejected")
	}
	if _, ok := qm.Answer(len(ch.Question.Choices) + 1); ok {
		t.Fatalf("out of range choice must be rejected")
	}

	v, ok := qm.Answer(ch.Question.Answer)
	if !ok || !v.Correct || v.Restart || v.Level != 2 {
		t.Fatalf("unexpected verdict %+v", v)
	}
	if qm.Suspended() {
		t.Fatalf("gate should open after answering")
	}
}

func TestQuizmasterWrongAnswer(t *testing.T) {
	tests := []struct {
		name           string
		restartOnWrong bool
	}{
		{"restart", true},
		{"keep playing", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qm := newTestQuizmaster(Options{Enabled: true, RestartOnWrong: tt.restartOnWrong})
			qm.OnNewMaximum(3)
			qm.OnNewMaximum(4)

			ch, _ := qm.Current()
			if ch.Phase != PhaseQuestion {
				t.Fatalf("zero intro ticks should go straight to the question")
			}
			wrong := ch.Question.Answer%len(ch.Question.Choices) + 1

			v, ok := qm.Answer(wrong)
			if !ok || v.Correct || v.Restart != tt.restartOnWrong {
				t.Fatalf("unexpected verdict %+v", v)
			}
			if v.Answer != ch.Question.CorrectChoice() {
				t.Fatalf("verdict should carry the right answer")
			}

			next, open := qm.Current()
			if tt.restartOnWrong {
				if open {
					t.Fatalf("restart should drop queued challenges")
				}
				return
			}
			if !open || next.Level != 4 {
				t.Fatalf("expected queued level 4, got %+v", next)
			}
		})
	}
}

func TestQuizmasterSkipAndUnknownLevel(t *testing.T) {
	qm := newTestQuizmaster(Options{Enabled: true, IntroTicks: 10})

	qm.OnNewMaximum(21)
	ch, ok := qm.Current()
	if !ok || ch.Question != nil || ch.Element.Symbol != "21" {
		t.Fatalf("unexpected challenge %+v", ch)
	}
	qm.Skip()
	if qm.Suspended() {
		t.Fatalf("intro without a question should close on skip")
	}

	qm.OnNewMaximum(5)
	qm.Skip()
	if ch, _ := qm.Current(); ch.Phase != PhaseQuestion {
		t.Fatalf("skip should reveal the question")
	}
	qm.Reset()
	if qm.Suspended() {
		t.Fatalf("reset should clear the challenge")
	}
}

func TestQuizmasterDisabled(t *testing.T) {
	qm := newTestQuizmaster(Options{Enabled: false, IntroTicks: 5})
	qm.OnNewMaximum(2)
	if qm.Suspended() {
		t.Fatalf("disabled trivia must never suspend")
	}
}
