package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetromino/internal/core"
)

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want MenuAction
	}{
		{"tab opens scoreboard", keyMsg(tea.KeyTab), MenuActionScoreboard},
		{"enter selects", keyMsg(tea.KeyEnter), MenuActionSelect},
		{"esc goes back", keyMsg(tea.KeyEsc), MenuActionBack},
		{"q quits", runeMsg('q'), MenuActionQuit},
		{"k moves up", runeMsg('k'), MenuActionUp},
		{"j moves down", runeMsg('j'), MenuActionDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
				t.Errorf("MapKeyToMenuAction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModeMenuScoreboardRequest(t *testing.T) {
	m := NewModeModel(80, 24)

	updated, _ := m.Update(keyMsg(tea.KeyTab))
	mm, ok := updated.(ModeModel)
	if !ok {
		t.Fatalf("Update returned %T, want ModeModel", updated)
	}

	if !mm.WantsScoreboard() {
		t.Error("Expected WantsScoreboard after Tab")
	}
	if mm.Selected() != nil {
		t.Error("Expected no mode selection when opening scoreboard")
	}
	if mm.IsQuitting() {
		t.Error("Scoreboard request should not count as quitting")
	}
}

func TestSessionMenuToScoreboardAndBack(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	s := NewSessionModel(nil, cfg, "player")

	// Tab on the menu switches the session to the scoreboard
	updated, _ := s.Update(keyMsg(tea.KeyTab))
	sm, ok := updated.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", updated)
	}
	if !sm.inScoreboard || sm.scoreboard == nil {
		t.Fatal("Expected session to show scoreboard after Tab")
	}
	if sm.View() == sm.menu.View() {
		t.Error("Expected scoreboard view, got menu view")
	}

	// Esc on the scoreboard returns to the menu
	updated, _ = sm.Update(keyMsg(tea.KeyEsc))
	sm, ok = updated.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", updated)
	}
	if sm.inScoreboard || sm.scoreboard != nil {
		t.Error("Expected session back in menu after Esc")
	}
	if sm.quitting {
		t.Error("Leaving the scoreboard should not end the session")
	}
}

func TestSessionScoreboardQuitEndsSession(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	s := NewSessionModel(nil, cfg, "player")

	updated, _ := s.Update(keyMsg(tea.KeyTab))
	sm := updated.(SessionModel)

	updated, _ = sm.Update(runeMsg('q'))
	sm = updated.(SessionModel)
	if !sm.quitting {
		t.Error("Expected quit from scoreboard to end the session")
	}
}
