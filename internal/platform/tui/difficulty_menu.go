package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/periodic2048/internal/config"
	"github.com/vovakirdan/periodic2048/internal/core"
)

type difficultyOption struct {
	preset config.Preset
	label  string
	hint   string
}

var difficultyOptions = []difficultyOption{
	{config.PresetEasy, "Easy", "6x6 board, mostly hydrogen, wrong answers forgiven"},
	{config.PresetNormal, "Normal", "5x5 board as configured"},
	{config.PresetHard, "Hard", "4x4 board, more helium, wrong answers restart"},
}

// DifficultyModel lets the player pick a difficulty preset before a run.
type DifficultyModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	chosen    bool
	quitting  bool
}

// NewDifficultyModel creates the selector with Normal highlighted.
func NewDifficultyModel(width, height int) DifficultyModel {
	return DifficultyModel{
		cursor:    1,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit || action == core.ActionPause {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case core.ActionDown:
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case core.ActionChoice1, core.ActionChoice2, core.ActionChoice3:
		m.cursor = choiceIndex(action)
		m.chosen = true
		return m, tea.Quit
	case core.ActionConfirm, core.ActionRestart:
		m.chosen = true
		return m, tea.Quit
	}
	return m, nil
}

func choiceIndex(a core.Action) int {
	for i, c := range core.ChoiceActions {
		if c == a {
			return i
		}
	}
	return 0
}

// View renders the selector.
func (m DifficultyModel) View() string {
	if m.quitting || m.chosen {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("P E R I O D I C   2 0 4 8", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%d. %-7s %s", cursor, i+1, opt.label, opt.hint), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc/Q: Quit", m.width))
	return b.String()
}

// Selected returns the chosen preset, or false if the player quit.
func (m DifficultyModel) Selected() (config.Preset, bool) {
	if !m.chosen {
		return "", false
	}
	return difficultyOptions[m.cursor].preset, true
}

// RunDifficultySelector shows the selector and returns the chosen preset.
// ok is false when the player quit instead of choosing.
func RunDifficultySelector(width, height int) (preset config.Preset, ok bool, err error) {
	p := tea.NewProgram(NewDifficultyModel(width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}
	m, isModel := finalModel.(DifficultyModel)
	if !isModel {
		return "", false, nil
	}
	preset, ok = m.Selected()
	return preset, ok, nil
}
