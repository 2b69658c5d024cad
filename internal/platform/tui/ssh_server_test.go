package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-cube/internal/core"
	"github.com/vovakirdan/tui-cube/internal/registry"
	"github.com/vovakirdan/tui-cube/internal/storage"
)

func init() {
	registry.Register("scripted", func() registry.Game {
		return &scriptedGame{next: core.StepResult{State: core.GameState{GameOver: true}}}
	})
}

func updateSession(m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(SessionModel), cmd
}

func TestSessionRoutesBetweenScreens(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := NewSessionModel(Services{Store: store, Player: "tester"}, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})

	steps := []struct {
		name string
		msg  tea.Msg
		want sessionScreen
	}{
		{"open scoreboard", tea.KeyMsg{Type: tea.KeyTab}, screenScores},
		{"back from scoreboard", tea.KeyMsg{Type: tea.KeyEsc}, screenMenu},
		{"select variant", tea.KeyMsg{Type: tea.KeyEnter}, screenGame},
		{"round ends", TickMsg{}, screenGame},
		{"back from game", runeKey('b'), screenMenu},
	}

	for _, s := range steps {
		m, _ = updateSession(m, s.msg)
		if m.current != s.want {
			t.Fatalf("after %s: screen = %d, expected %d", s.name, m.current, s.want)
		}
		if m.quitting {
			t.Fatalf("after %s: session should not quit", s.name)
		}
	}

	m, cmd := updateSession(m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("Quit from the menu should end the session")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" || cfg.TickRate != 60 || cfg.Hold != DefaultHold {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
}
