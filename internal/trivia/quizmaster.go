package trivia

// Phase is the stage of an open challenge.
type Phase int

const (
	// PhaseIntro shows the element card before the question.
	PhaseIntro Phase = iota
	// PhaseQuestion waits for an answer.
	PhaseQuestion
)

// Challenge is the interstitial opened for one milestone.
type Challenge struct {
	Element   Element
	Level     int
	Question  *Question // nil when the bank has nothing for this level
	Phase     Phase
	TicksLeft int // Intro countdown
}

// Verdict is the outcome of an answer.
type Verdict struct {
	Level   int
	Correct bool
	Restart bool // The run must start over
	Answer  string
}

// Options tune the quizmaster.
type Options struct {
	Enabled        bool
	IntroTicks     int  // Ticks the element card stays up before the question
	RestartOnWrong bool // A wrong answer ends the run
}

// Quizmaster turns milestones into challenges and holds the input gate
// closed while one is open. It satisfies engine.MilestoneNotifier and
// engine.InputGate.
type Quizmaster struct {
	bank    *Bank
	rng     Source
	opts    Options
	current *Challenge
	queue   []int
}

// NewQuizmaster creates a quizmaster over bank.
func NewQuizmaster(bank *Bank, rng Source, opts Options) *Quizmaster {
	return &Quizmaster{bank: bank, rng: rng, opts: opts}
}

// OnNewMaximum opens a challenge for the level, or queues it behind the open one.
func (q *Quizmaster) OnNewMaximum(value int) {
	if !q.opts.Enabled {
		return
	}
	if q.current != nil {
		q.queue = append(q.queue, value)
		return
	}
	q.open(value)
}

func (q *Quizmaster) open(level int) {
	el, ok := Lookup(level)
	if !ok {
		el = Element{Number: level, Symbol: Symbol(level), Name: Name(level)}
	}

	ch := &Challenge{
		Element:   el,
		Level:     level,
		Phase:     PhaseIntro,
		TicksLeft: q.opts.IntroTicks,
	}
	if question, ok := q.bank.Pick(level, q.rng); ok {
		ch.Question = &question
	}
	q.current = ch

	if ch.TicksLeft <= 0 {
		q.Skip()
	}
}

// Suspended reports whether moves must wait for the open challenge.
func (q *Quizmaster) Suspended() bool {
	return q.current != nil
}

// Current returns the open challenge.
func (q *Quizmaster) Current() (Challenge, bool) {
	if q.current == nil {
		return Challenge{}, false
	}
	return *q.current, true
}

// Tick advances the intro countdown by one step.
func (q *Quizmaster) Tick() {
	if q.current == nil || q.current.Phase != PhaseIntro {
		return
	}
	q.current.TicksLeft--
	if q.current.TicksLeft <= 0 {
		q.Skip()
	}
}

// Skip ends the intro immediately. A challenge without a question closes.
func (q *Quizmaster) Skip() {
	if q.current == nil || q.current.Phase != PhaseIntro {
		return
	}
	if q.current.Question == nil {
		q.next()
		return
	}
	q.current.Phase = PhaseQuestion
	q.current.TicksLeft = 0
}

// Answer resolves the open question with a 1-based choice. Returns false if
// no question is waiting or the choice is not one of the options.
func (q *Quizmaster) Answer(choice int) (Verdict, bool) {
	ch := q.current
	if ch == nil || ch.Phase != PhaseQuestion {
		return Verdict{}, false
	}
	if choice < 1 || choice > len(ch.Question.Choices) {
		return Verdict{}, false
	}

	v := Verdict{
		Level:   ch.Level,
		Correct: ch.Question.Correct(choice),
		Answer:  ch.Question.CorrectChoice(),
	}
	v.Restart = !v.Correct && q.opts.RestartOnWrong

	if v.Restart {
		q.Reset()
	} else {
		q.next()
	}
	return v, true
}

func (q *Quizmaster) next() {
	q.current = nil
	if len(q.queue) == 0 {
		return
	}
	level := q.queue[0]
	q.queue = q.queue[1:]
	q.open(level)
}

// Reset drops the open challenge and anything queued.
func (q *Quizmaster) Reset() {
	q.current = nil
	q.queue = nil
}
