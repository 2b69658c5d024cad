// Package window runs the game in a desktop window with Ebitengine. Unlike a
// terminal, a window reports key state directly, so held keys need no
// emulation here.
package window

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-cube/internal/audio"
	"github.com/vovakirdan/tui-cube/internal/core"
	"github.com/vovakirdan/tui-cube/internal/games/cube"
	"github.com/vovakirdan/tui-cube/internal/games/cube/sim"
	"github.com/vovakirdan/tui-cube/internal/storage"
)

// The logical screen is the field at half scale.
const (
	viewW = 960
	viewH = 540
)

var (
	colorBackground = color.RGBA{R: 24, G: 24, B: 32, A: 255}
	colorPlayer     = color.RGBA{R: 250, G: 128, B: 114, A: 255} // salmon
	colorTarget     = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	colorOverlay    = color.RGBA{A: 180}
)

// Options configures a window session.
type Options struct {
	Store  *storage.Store
	Sound  audio.Player
	Logger *log.Logger
	Player string
}

// Game adapts a cube.Game to ebiten.Game.
type Game struct {
	game      *cube.Game
	rc        core.RuntimeConfig
	fixedSeed bool
	opts      Options
	prev      core.GameState
	halted    bool
	saved     bool
}

// NewGame wraps game and starts its first round. A zero seed picks a fresh
// seed for every round.
func NewGame(game *cube.Game, rc core.RuntimeConfig, opts Options) *Game {
	if opts.Sound == nil {
		opts.Sound = audio.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	g := &Game{game: game, rc: rc, fixedSeed: rc.Seed != 0, opts: opts}
	g.restart()
	return g
}

// inputFrame samples the keyboard into movement actions.
func inputFrame() core.InputFrame {
	frame := core.NewInputFrame()
	bindings := []struct {
		action core.Action
		keys   []ebiten.Key
	}{
		{core.ActionUp, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
		{core.ActionDown, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
		{core.ActionLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
		{core.ActionRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
	}
	for _, b := range bindings {
		for _, k := range b.keys {
			if ebiten.IsKeyPressed(k) {
				frame.Set(b.action)
				break
			}
		}
	}
	return frame
}

// Update runs one simulation tick per ebiten tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.prev.GameOver {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.restart()
		}
		return nil
	}

	res := g.game.Step(inputFrame())
	g.report(res)
	g.prev = res.State
	return nil
}

func (g *Game) restart() {
	if !g.fixedSeed {
		g.rc.Seed = time.Now().UnixNano()
	}
	g.game.Reset(g.rc)
	g.prev = g.game.State()
	g.halted = false
	g.saved = false
	g.opts.Logger.Info("round started", "game", g.game.ID(), "seed", g.rc.Seed)
}

func (g *Game) report(res core.StepResult) {
	st := res.State
	if res.Err != nil {
		if !g.halted {
			g.halted = true
			g.opts.Logger.Error("simulation halted", "tick", st.Ticks, "err", res.Err)
		}
		return
	}
	if res.Collected > 0 {
		g.opts.Sound.PlayCollect()
	}
	if st.Waves > g.prev.Waves && st.Waves > 1 {
		g.opts.Sound.PlayWave()
	}
	if st.GameOver && !g.prev.GameOver {
		g.opts.Sound.PlayLoss()
		g.opts.Logger.Info("round lost", "game", g.game.ID(), "score", st.Score, "waves", st.Waves, "ticks", st.Ticks)
		if g.opts.Store != nil && st.Score > 0 && !g.saved {
			g.saved = true
			if _, err := g.opts.Store.SaveRound(storage.RoundRecord{
				Player: g.opts.Player,
				GameID: g.game.ID(),
				Score:  st.Score,
				Waves:  st.Waves,
				Ticks:  st.Ticks,
			}); err != nil {
				g.opts.Logger.Warn("could not record round", "err", err)
			}
		}
	}
}

// Draw renders the field, the HUD and any overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	snap := g.game.Snapshot()
	field := g.game.Params().Field

	for _, t := range snap.Targets {
		drawBody(screen, t.Pos, t.Half, field, colorTarget)
	}
	drawBody(screen, snap.Player.Pos, snap.Player.Half, field, colorPlayer)

	for _, p := range g.game.Popups() {
		x, y := core.ToView(p, field, viewW, viewH)
		ebitenutil.DebugPrintAt(screen, "+1", int(x), int(y))
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Time left: %d", snap.SecondsLeft), 10, 26)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Wave: %d", snap.Wave), 10, 42)
	if best := g.best(); best > 0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Best: %d", best), 10, 58)
	}

	switch {
	case snap.Faulted:
		drawOverlay(screen, "SIMULATION HALTED", "Press R to restart, Esc to quit")
	case snap.Status == sim.StatusLoss:
		drawOverlay(screen, fmt.Sprintf("TIME'S UP! Score: %d", snap.Score), "Press R to restart, Esc to quit")
	}
}

func (g *Game) best() int {
	if g.opts.Store == nil {
		return 0
	}
	best, err := g.opts.Store.HighScore(g.game.ID())
	if err != nil {
		return 0
	}
	return best
}

// Layout fixes the logical screen; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewW, viewH
}

func drawBody(dst *ebiten.Image, center, half, field core.Vec2, clr color.Color) {
	x0, y0 := core.ToView(core.V(center.X-half.X, center.Y+half.Y), field, viewW, viewH)
	x1, y1 := core.ToView(core.V(center.X+half.X, center.Y-half.Y), field, viewW, viewH)
	vector.DrawFilledRect(dst, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), clr, false)
}

func drawOverlay(dst *ebiten.Image, line1, line2 string) {
	vector.DrawFilledRect(dst, viewW/2-160, viewH/2-30, 320, 60, colorOverlay, false)
	ebitenutil.DebugPrintAt(dst, line1, viewW/2-150, viewH/2-20)
	ebitenutil.DebugPrintAt(dst, line2, viewW/2-150, viewH/2)
}

// Run opens the window and blocks until it is closed or Esc is pressed.
func Run(game *cube.Game, rc core.RuntimeConfig, opts Options) error {
	ebiten.SetWindowSize(viewW, viewH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(rc.TickRate)

	// RunGame returns nil when Update ends the game with ebiten.Termination.
	return ebiten.RunGame(NewGame(game, rc, opts))
}
