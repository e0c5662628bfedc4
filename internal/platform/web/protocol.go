// Package web serves the game to browsers: an embedded page plus a
// websocket per session that carries player commands in and engine
// snapshots, milestones and trivia out.
package web

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vovakirdan/periodic2048/internal/engine"
	"github.com/vovakirdan/periodic2048/internal/trivia"
)

// Command types sent by the browser.
const (
	CommandMove    = "move"
	CommandRestart = "restart"
	CommandAnswer  = "answer"
	CommandSkip    = "skip"
)

// Message types pushed to the browser.
const (
	TypeSnapshot  = "snapshot"
	TypeMilestone = "milestone"
	TypeQuestion  = "question"
	TypeVerdict   = "verdict"
	TypeError     = "error"
)

// Command is one player action.
//
//	{"type":"move","direction":0}
//	{"type":"answer","choice":2}
type Command struct {
	Type      string          `json:"type"`
	Direction json.RawMessage `json:"direction,omitempty"`
	Choice    int             `json:"choice,omitempty"`
}

// ParseDirection reads the direction as a number (0 up, 1 right, 2 down,
// 3 left) or a name.
func (c Command) ParseDirection() (engine.Direction, error) {
	if len(c.Direction) == 0 {
		return 0, fmt.Errorf("web: move without direction")
	}
	raw := strings.Trim(string(c.Direction), `"`)
	d, err := engine.ParseDirection(raw)
	if err != nil {
		return 0, fmt.Errorf("web: %w", err)
	}
	return d, nil
}

// Message is a server push. Only the fields relevant to Type are set.
type Message struct {
	Type      string           `json:"type"`
	SessionID string           `json:"session_id"`
	Snapshot  *engine.Snapshot `json:"snapshot,omitempty"`
	Challenge *ChallengeView   `json:"challenge,omitempty"`
	Verdict   *VerdictView     `json:"verdict,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// ChallengeView is the element card and, once the intro is over, the
// question. The correct answer is never sent.
type ChallengeView struct {
	Level       int      `json:"level"`
	Symbol      string   `json:"symbol"`
	Name        string   `json:"name"`
	Prompt      string   `json:"prompt,omitempty"`
	Choices     []string `json:"choices,omitempty"`
	SecondsLeft int      `json:"seconds_left,omitempty"`
}

// VerdictView reports an answered question.
type VerdictView struct {
	Level   int    `json:"level"`
	Correct bool   `json:"correct"`
	Restart bool   `json:"restart"`
	Answer  string `json:"answer"`
}

func challengeView(ch trivia.Challenge) *ChallengeView {
	v := &ChallengeView{
		Level:  ch.Level,
		Symbol: ch.Element.Symbol,
		Name:   ch.Element.Name,
	}
	switch ch.Phase {
	case trivia.PhaseIntro:
		v.SecondsLeft = ch.TicksLeft
	case trivia.PhaseQuestion:
		v.Prompt = ch.Question.Prompt
		v.Choices = ch.Question.Choices
	}
	return v
}

func elementView(level int) *ChallengeView {
	return &ChallengeView{
		Level:  level,
		Symbol: trivia.Symbol(level),
		Name:   trivia.Name(level),
	}
}

func verdictView(v trivia.Verdict) *VerdictView {
	return &VerdictView{
		Level:   v.Level,
		Correct: v.Correct,
		Restart: v.Restart,
		Answer:  v.Answer,
	}
}

func errorMessage(sessionID, text string) *Message {
	return &Message{Type: TypeError, SessionID: sessionID, Error: text}
}
