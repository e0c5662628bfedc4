package engine

// Source supplies randomness for spawning. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Presenter receives a snapshot after every settled move and after Reset.
type Presenter interface {
	Present(snap Snapshot)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(snap Snapshot)

// Present calls f(snap).
func (f PresenterFunc) Present(snap Snapshot) { f(snap) }

// MilestoneNotifier is told about every merge that produces a level higher
// than any seen before in the session.
type MilestoneNotifier interface {
	OnNewMaximum(value int)
}

// NotifierFunc adapts a function to MilestoneNotifier.
type NotifierFunc func(value int)

// OnNewMaximum calls f(value).
func (f NotifierFunc) OnNewMaximum(value int) { f(value) }

// InputGate lets an external collaborator suspend moves, for example while a
// milestone is waiting to be acknowledged.
type InputGate interface {
	Suspended() bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithPresenter attaches the snapshot sink.
func WithPresenter(p Presenter) Option {
	return func(e *Engine) { e.presenter = p }
}

// WithMilestoneNotifier attaches the new-maximum callback.
func WithMilestoneNotifier(n MilestoneNotifier) Option {
	return func(e *Engine) { e.notifier = n }
}

// WithInputGate attaches the input suspension gate.
func WithInputGate(g InputGate) Option {
	return func(e *Engine) { e.gate = g }
}
