package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestScoreboardShowsRunsAndTrivia(t *testing.T) {
	store := openStore(t)
	store.SaveScore("periodic", 120, 8)
	store.SaveScore("periodic", 40, 5)
	store.SaveAnswer("periodic", 8, true)
	store.SaveAnswer("periodic", 8, false)

	m := NewScoreboardModel(store, "periodic", 120, 30)
	view := m.View()

	for _, want := range []string{"HIGH SCORES", "120", "O Oxygen", "Runs:  2", "1/2"} {
		if !strings.Contains(view, want) {
			t.Errorf("scoreboard missing %q:\n%s", want, view)
		}
	}
}

func TestScoreboardEmptyAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "periodic", 60, 20)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Errorf("expected empty message:\n%s", m.View())
	}

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil || next.View() != "" {
		t.Errorf("q should quit the scoreboard")
	}
}

func TestScoreboardToggleSidebar(t *testing.T) {
	m := NewScoreboardModel(nil, "periodic", 120, 30)
	if !m.showSidebar {
		t.Fatalf("wide window should show the sidebar")
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(ScoreboardModel).showSidebar {
		t.Errorf("tab should hide the sidebar")
	}
}
