package cube

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-cube/internal/core"
	"github.com/vovakirdan/tui-cube/internal/games/cube/sim"
)

// hudRows is the height of the status bar above the field.
const hudRows = 2

const (
	minScreenW = 20
	minScreenH = hudRows + 6
)

// Render draws the current round into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.sched.Snapshot()
	g.renderHUD(dst, snap)

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		drawCentered(dst, "Window too small", dst.Height()/2, core.ColorGray)
		return
	}

	for _, t := range snap.Targets {
		g.fillBody(dst, t.Pos, t.Half, '█', core.ColorBrightRed)
	}
	g.renderPlayer(dst, snap.Player)

	for _, p := range g.popups {
		x, y := g.project(dst, p.pos)
		if y >= hudRows {
			dst.DrawTextColor(x, y, "+1", core.ColorYellow)
		}
	}

	switch {
	case snap.Faulted:
		renderOverlay(dst, "Simulation halted", "Press R to restart", core.ColorRed)
	case snap.Status == sim.StatusLoss:
		renderOverlay(dst, "Time's up!", fmt.Sprintf("Score: %d  Press R to restart", snap.Score), core.ColorLavender)
	}
}

// renderHUD draws the score and countdown bar.
func (g *Game) renderHUD(dst *core.Screen, snap sim.Snapshot) {
	x := 1
	x = drawLabel(dst, x, "Score: ", fmt.Sprintf("%d", snap.Score))
	x = drawLabel(dst, x+3, "Time left: ", fmt.Sprintf("%d", snap.SecondsLeft))
	drawLabel(dst, x+3, "Wave: ", fmt.Sprintf("%d", snap.Wave))

	title := g.Title()
	dst.DrawTextColor(dst.Width()-len(title)-1, 0, title, core.ColorGray)

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// drawLabel writes a lavender label followed by a salmon value and returns
// the column after the value.
func drawLabel(dst *core.Screen, x int, label, value string) int {
	dst.DrawTextColor(x, 0, label, core.ColorLavender)
	x += len(label)
	dst.DrawTextColor(x, 0, value, core.ColorSalmon)
	return x + len(value)
}

// renderPlayer draws the player square, or an edge marker when the player
// has wandered outside the visible field.
func (g *Game) renderPlayer(dst *core.Screen, p sim.Player) {
	field := g.params.Field
	inside := math.Abs(p.Pos.X) <= field.X/2 && math.Abs(p.Pos.Y) <= field.Y/2
	if inside {
		g.fillBody(dst, p.Pos, p.Half, '█', core.ColorSalmon)
		return
	}

	edge := core.V(
		core.ClampF(p.Pos.X, -field.X/2, field.X/2),
		core.ClampF(p.Pos.Y, -field.Y/2, field.Y/2),
	)
	x, y := g.project(dst, edge)
	x = clampInt(x, 0, dst.Width()-1)
	y = clampInt(y, hudRows, dst.Height()-1)
	dst.SetColor(x, y, '@', core.ColorSalmon)
}

// fillBody draws an axis-aligned box given in world units, clipped to the
// field area below the HUD.
func (g *Game) fillBody(dst *core.Screen, center, half core.Vec2, fill rune, c core.Color) {
	x0, y0 := g.project(dst, core.V(center.X-half.X, center.Y+half.Y))
	x1, y1 := g.project(dst, core.V(center.X+half.X, center.Y-half.Y))
	x1 = core.Max(x1, x0+1)
	y1 = core.Max(y1, y0+1)

	y0 = core.Max(y0, hudRows)
	if y1 <= y0 {
		return
	}
	dst.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), fill, c)
}

// project maps a world position to a screen cell in the field area.
func (g *Game) project(dst *core.Screen, v core.Vec2) (int, int) {
	x, y := core.ToView(v, g.params.Field, float64(dst.Width()), float64(dst.Height()-hudRows))
	return int(math.Floor(x)), hudRows + int(math.Floor(y))
}

// renderOverlay draws a centered message box.
func renderOverlay(dst *core.Screen, line1, line2 string, c core.Color) {
	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	drawCentered(dst, line1, box.Y+1, c)
	drawCentered(dst, line2, box.Y+3, core.ColorDefault)
}

func drawCentered(dst *core.Screen, text string, y int, c core.Color) {
	dst.DrawTextColor((dst.Width()-len(text))/2, y, text, c)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
