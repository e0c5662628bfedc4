package web

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/periodic2048/internal/engine"
	"github.com/vovakirdan/periodic2048/internal/games/periodic"
	"github.com/vovakirdan/periodic2048/internal/storage"
	"github.com/vovakirdan/periodic2048/internal/trivia"
)

var (
	// ErrChallengeOpen is returned for moves while a milestone challenge waits.
	ErrChallengeOpen = errors.New("web: answer the question first")
	// ErrNoQuestion is returned for answers nobody asked for.
	ErrNoQuestion = errors.New("web: no question waiting for that answer")
)

// SessionConfig holds what every new session is built from.
type SessionConfig struct {
	Engine engine.Config
	Bank   *trivia.Bank
	// Trivia.IntroTicks counts seconds; sessions tick once per second.
	Trivia trivia.Options
	Seed   int64 // 0 picks a seed per session
}

type publisher interface {
	Broadcast(message *Message)
}

// Session is one board shared by every client that joins its id. Commands
// from all clients are serialized by the session mutex.
type Session struct {
	id     string
	cfg    SessionConfig
	out    publisher
	store  *storage.Store
	logger *log.Logger

	mu       sync.Mutex
	eng      *engine.Engine
	quiz     *trivia.Quizmaster
	snap     engine.Snapshot
	runEnded bool
	closed   bool
}

// NewSession creates a session and starts its first run. store may be nil.
func NewSession(id string, cfg SessionConfig, out publisher, store *storage.Store, logger *log.Logger) *Session {
	if cfg.Bank == nil {
		cfg.Bank = trivia.DefaultBank()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed))

	s := &Session{
		id:     id,
		cfg:    cfg,
		out:    out,
		store:  store,
		logger: logger,
	}
	s.quiz = trivia.NewQuizmaster(cfg.Bank, rng, cfg.Trivia)
	s.eng = engine.New(cfg.Engine, rng,
		engine.WithPresenter(s),
		engine.WithMilestoneNotifier(s),
		engine.WithInputGate(s.quiz),
	)

	s.mu.Lock()
	s.eng.Reset()
	s.mu.Unlock()
	return s
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Present broadcasts every settled board.
func (s *Session) Present(snap engine.Snapshot) {
	s.snap = snap
	s.publish(&Message{Type: TypeSnapshot, Snapshot: &snap})
}

// OnNewMaximum announces a new best element and hands it to the quizmaster.
// A milestone reached while another challenge is open is announced when its
// turn comes.
func (s *Session) OnNewMaximum(level int) {
	queued := s.quiz.Suspended()
	s.quiz.OnNewMaximum(level)
	if queued {
		return
	}
	if ch, ok := s.quiz.Current(); ok {
		s.announce(ch)
		return
	}
	s.publish(&Message{Type: TypeMilestone, Challenge: elementView(level)})
}

// Handle applies one command.
func (s *Session) Handle(cmd Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.New("web: session closed")
	}

	switch cmd.Type {
	case CommandMove:
		d, err := cmd.ParseDirection()
		if err != nil {
			return err
		}
		if s.quiz.Suspended() {
			return ErrChallengeOpen
		}
		if s.eng.Move(d) && s.finished() {
			s.endRun()
		}
		return nil

	case CommandRestart:
		s.restart()
		return nil

	case CommandAnswer:
		return s.answer(cmd.Choice)

	case CommandSkip:
		s.stepIntro(s.quiz.Skip)
		return nil
	}
	return fmt.Errorf("web: unknown command %q", cmd.Type)
}

// Tick advances the element card countdown by one second.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.stepIntro(s.quiz.Tick)
}

// Welcome is the message a newly joined client starts from.
func (s *Session) Welcome() *Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snap
	msg := &Message{Type: TypeSnapshot, SessionID: s.id, Snapshot: &snap}
	if ch, ok := s.quiz.Current(); ok {
		msg.Challenge = challengeView(ch)
	}
	return msg
}

// Close records an unfinished run. The session ignores commands afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.endRun()
	s.closed = true
}

func (s *Session) answer(choice int) error {
	v, ok := s.quiz.Answer(choice)
	if !ok {
		return ErrNoQuestion
	}
	s.saveAnswer(v)
	s.publish(&Message{Type: TypeVerdict, Verdict: verdictView(v)})

	if v.Restart {
		s.restart()
		return nil
	}
	if ch, open := s.quiz.Current(); open {
		s.announce(ch)
		return nil
	}
	snap := s.snap
	s.publish(&Message{Type: TypeSnapshot, Snapshot: &snap})
	return nil
}

// stepIntro runs step against an open intro and announces what changed.
func (s *Session) stepIntro(step func()) {
	before, ok := s.quiz.Current()
	if !ok || before.Phase != trivia.PhaseIntro {
		return
	}
	step()

	after, open := s.quiz.Current()
	switch {
	case !open:
		snap := s.snap
		s.publish(&Message{Type: TypeSnapshot, Snapshot: &snap})
	case after.Level != before.Level || after.Phase != before.Phase:
		s.announce(after)
	}
}

func (s *Session) announce(ch trivia.Challenge) {
	typ := TypeMilestone
	if ch.Phase == trivia.PhaseQuestion {
		typ = TypeQuestion
	}
	s.publish(&Message{Type: typ, Challenge: challengeView(ch)})
}

func (s *Session) restart() {
	s.endRun()
	s.quiz.Reset()
	s.runEnded = false
	s.eng.Reset()
}

func (s *Session) finished() bool {
	return s.eng.Over() || (s.eng.Won() && !s.cfg.Engine.ContinueAfterWin)
}

// endRun saves the run once. Empty runs are not recorded.
func (s *Session) endRun() {
	if s.runEnded {
		return
	}
	s.runEnded = true

	score := s.eng.Score()
	if score == 0 || s.store == nil {
		return
	}
	if _, err := s.store.SaveScore(periodic.ID, score, s.eng.HighestValue()); err != nil {
		s.logger.Error("cannot save score", "session", s.id, "err", err)
		return
	}
	s.logger.Info("run recorded", "session", s.id, "score", score, "best", trivia.Symbol(s.eng.HighestValue()))
}

func (s *Session) saveAnswer(v trivia.Verdict) {
	if s.store == nil {
		return
	}
	if err := s.store.SaveAnswer(periodic.ID, v.Level, v.Correct); err != nil {
		s.logger.Error("cannot save answer", "session", s.id, "err", err)
	}
}

func (s *Session) publish(msg *Message) {
	msg.SessionID = s.id
	s.out.Broadcast(msg)
}
