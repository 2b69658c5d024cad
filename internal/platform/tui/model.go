package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-cube/internal/audio"
	"github.com/vovakirdan/tui-cube/internal/core"
	"github.com/vovakirdan/tui-cube/internal/registry"
	"github.com/vovakirdan/tui-cube/internal/storage"
)

// DefaultHold is how long a direction stays held after its last key press.
const DefaultHold = 250 * time.Millisecond

// Services are shared by every game a process (or SSH server) runs.
type Services struct {
	Store  *storage.Store // Session scoreboard; nil disables recording
	Sound  audio.Player   // nil plays nothing
	Logger *log.Logger    // nil discards
	Player string         // Name recorded with each round
	Hold   time.Duration  // Held-direction window; 0 uses DefaultHold
}

func (s Services) withDefaults() Services {
	if s.Sound == nil {
		s.Sound = audio.Silent{}
	}
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	if s.Player == "" {
		s.Player = "player"
	}
	if s.Hold <= 0 {
		s.Hold = DefaultHold
	}
	return s
}

// backMode decides what Back does once a round is over.
type backMode int

const (
	backToParent backMode = iota // Flag BackToMenu for an enclosing model
	backExit                     // Flag BackToMenu and end the program
	backQuit                     // Quit, there is no menu to return to
)

// GameModel runs one game variant: it paces ticks, feeds held directions to
// the simulation and reacts to what each tick reports.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	svc        Services
	config     core.RuntimeConfig
	fixedSeed  bool
	held       *HeldKeys
	keyMapper  *KeyMapper
	gameState  core.GameState
	onBack     backMode
	faulted    bool
	saved      bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game. A zero seed picks a fresh seed for
// every round; any other seed replays the same layout on restart.
func NewGameModel(game registry.Game, svc Services, cfg core.RuntimeConfig) GameModel {
	svc = svc.withDefaults()
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		svc:       svc,
		config:    cfg,
		fixedSeed: fixed,
		held:      NewHeldKeys(svc.Hold, cfg.TickRate),
		keyMapper: NewKeyMapper(),
	}
}

// Init starts the first round and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.svc.Logger.Info("round started", "game", m.game.ID(), "player", m.svc.Player, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		// World coordinates do not depend on the terminal, so the round survives a resize.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.svc.Logger.Warn("screenshot failed", "err", err)
		} else {
			m.svc.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keyMapper.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case action.IsDirection():
		m.held.Press(action)
	case action == core.ActionRestart && m.gameState.GameOver:
		m.restart()
	case action == core.ActionBack && m.gameState.GameOver:
		switch m.onBack {
		case backQuit:
			m.quitting = true
			return m, tea.Quit
		case backExit:
			m.backToMenu = true
			return m, tea.Quit
		}
		m.backToMenu = true
	}
	return m, nil
}

// restart begins a new round with a new scheduler.
func (m *GameModel) restart() {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.held.Release()
	m.saved = false
	m.faulted = false
	m.svc.Logger.Info("round restarted", "game", m.game.ID(), "seed", m.config.Seed)
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	prev := m.gameState
	result := m.game.Step(m.held.Frame())
	m.gameState = result.State
	m.report(prev, result)

	return m, tickCmd(m.config.TickRate)
}

// report turns one tick's outcome into log lines, sounds and scoreboard rows.
func (m *GameModel) report(prev core.GameState, res core.StepResult) {
	st := res.State
	logger := m.svc.Logger

	if res.Err != nil && !m.faulted {
		m.faulted = true
		logger.Error("simulation halted", "game", m.game.ID(), "tick", st.Ticks, "err", res.Err)
		return
	}
	if res.Collected > 0 {
		m.svc.Sound.PlayCollect()
		logger.Debug("targets collected", "count", res.Collected, "score", st.Score)
	}
	if st.Waves > prev.Waves && st.Waves > 1 {
		m.svc.Sound.PlayWave()
		logger.Debug("wave spawned", "wave", st.Waves)
	}
	if st.GameOver && !prev.GameOver && !m.faulted {
		m.svc.Sound.PlayLoss()
		logger.Info("round lost", "game", m.game.ID(), "score", st.Score, "waves", st.Waves, "ticks", st.Ticks)
		m.saveRound(st)
	}
}

func (m *GameModel) saveRound(st core.GameState) {
	if m.saved || m.svc.Store == nil || st.Score == 0 {
		return
	}
	m.saved = true
	_, err := m.svc.Store.SaveRound(storage.RoundRecord{
		Player: m.svc.Player,
		GameID: m.game.ID(),
		Score:  st.Score,
		Waves:  st.Waves,
		Ticks:  st.Ticks,
	})
	if err != nil {
		m.svc.Logger.Warn("could not record round", "err", err)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".cube", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user asked to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the local terminal until the user quits.
func Run(game registry.Game, svc Services, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, svc, cfg)
	model.onBack = backQuit

	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// RunFromMenu plays game and reports whether the user asked to go back to
// the menu rather than quit.
func RunFromMenu(game registry.Game, svc Services, cfg core.RuntimeConfig) (back bool, err error) {
	model := NewGameModel(game, svc, cfg)
	model.onBack = backExit

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(GameModel)
	return ok && m.BackToMenu(), nil
}
