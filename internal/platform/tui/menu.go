package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetromino/internal/core"
)

// GameMode represents the selected game mode.
type GameMode int

const (
	GameModeMarathon GameMode = iota
	GameModeSprint
)

// difficultyNames lists selectable difficulty presets in menu order.
var difficultyNames = []string{"easy", "normal", "hard", "fixed"}

// Selection holds the user's selection from the mode menu.
type Selection struct {
	Mode       GameMode
	Difficulty string // empty means config default
}

// ModeModel lets users choose the game mode and difficulty preset.
type ModeModel struct {
	cursor         int
	diffCursor     int
	inDiffSelect   bool
	width          int
	height         int
	keyMapper      *KeyMapper
	selection      Selection
	choosing       bool
	quitting       bool
	back           bool
	openScoreboard bool // True if user pressed Tab for the scoreboard
}

// NewModeModel creates a new mode selection model.
func NewModeModel(width, height int) ModeModel {
	return ModeModel{
		cursor:     0,
		diffCursor: 1, // normal
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
		choosing:   true,
	}
}

// Init initializes the model.
func (m ModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m ModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inDiffSelect {
		return m.handleDiffSelectKey(action)
	}
	return m.handleModeSelectKey(action)
}

func (m ModeModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 2 { // 3 options: Marathon, Sprint, Difficulty
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0: // Marathon
			m.choosing = false
			m.selection.Mode = GameModeMarathon
			return m, tea.Quit
		case 1: // Sprint
			m.choosing = false
			m.selection.Mode = GameModeSprint
			return m, tea.Quit
		case 2: // Difficulty
			m.inDiffSelect = true
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

func (m ModeModel) handleDiffSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.diffCursor > 0 {
			m.diffCursor--
		}
	case MenuActionDown:
		if m.diffCursor < len(difficultyNames)-1 {
			m.diffCursor++
		}
	case MenuActionSelect:
		m.selection.Difficulty = difficultyNames[m.diffCursor]
		m.inDiffSelect = false
	case MenuActionBack:
		m.inDiffSelect = false
	}

	return m, nil
}

// View renders the mode/difficulty selection.
func (m ModeModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inDiffSelect {
		return m.viewDiffSelect()
	}
	return m.viewModeSelect()
}

func (m ModeModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("T E T R O M I N O", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	modes := []string{
		"Marathon",
		"Sprint (40 lines)",
		fmt.Sprintf("Difficulty: %s...", m.currentDifficulty()),
	}

	for i, mode := range modes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, mode), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Tab: Scores  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m ModeModel) viewDiffSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT DIFFICULTY", m.width))
	b.WriteString("\n\n")

	for i, name := range difficultyNames {
		cursor := "  "
		if i == m.diffCursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, name), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m ModeModel) currentDifficulty() string {
	if m.selection.Difficulty == "" {
		return "normal"
	}
	return m.selection.Difficulty
}

// Selected returns the selection, or nil if still choosing.
func (m ModeModel) Selected() *Selection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m ModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m ModeModel) WantsBack() bool {
	return m.back
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m ModeModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// ModeResult holds the result of running the mode menu.
type ModeResult struct {
	Selection       *Selection
	WantsScoreboard bool
	Quit            bool
}

// RunModeSelector runs the mode selection and returns the result.
func RunModeSelector(cfg core.RuntimeConfig) (ModeResult, error) {
	model := NewModeModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return ModeResult{Quit: true}, err
	}

	m, ok := finalModel.(ModeModel)
	if !ok {
		return ModeResult{Quit: true}, nil
	}

	if m.WantsScoreboard() {
		return ModeResult{WantsScoreboard: true}, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return ModeResult{Quit: true}, nil
	}

	return ModeResult{Selection: m.Selected()}, nil
}

// centerText centers a line of text within the given width.
func centerText(text string, width int) string {
	if width <= len(text) {
		return text
	}
	pad := (width - len(text)) / 2
	return strings.Repeat(" ", pad) + text
}
