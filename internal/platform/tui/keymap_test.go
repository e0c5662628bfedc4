package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/periodic2048/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"wasd right", runeKey('d'), core.ActionRight, false},
		{"vim down", runeKey('j'), core.ActionDown, false},
		{"vim left", runeKey('h'), core.ActionLeft, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space restarts", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionRestart, false},
		{"answer 3", runeKey('3'), core.ActionChoice3, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"quit", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('2'), &frame) {
		t.Fatalf("answer key is not a quit")
	}
	if frame.Choice() != 2 {
		t.Errorf("frame choice = %d, want 2", frame.Choice())
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Errorf("q should request quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Errorf("quit is handled by the platform, not the frame")
	}
}
