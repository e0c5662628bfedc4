package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/periodic2048/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "He", core.ColorBrightCyan)
	s.DrawText(3, 0, "Ne")
	s.DrawTextColored(6, 1, "Ar", core.ColorOrange)

	got := ansi.Strip(RenderScreen(s))
	if got != s.String() {
		t.Errorf("styled output differs from plain text:\n%q\n%q", got, s.String())
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
