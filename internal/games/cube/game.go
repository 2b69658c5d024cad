// Package cube implements the cube game for the arcade registry.
// The player steers a square around the field and must collect every target
// square of a wave before the round clock runs out.
package cube

import (
	"time"

	"github.com/vovakirdan/tui-cube/internal/config"
	"github.com/vovakirdan/tui-cube/internal/core"
	"github.com/vovakirdan/tui-cube/internal/games/cube/sim"
	"github.com/vovakirdan/tui-cube/internal/registry"
)

// Variant selects between the classic open field and the walled field.
type Variant string

const (
	VariantClassic Variant = "cube"
	VariantWalled  Variant = "cube_walled"
)

// popupTicks is how long a "+1" marker stays on a collected target's spot.
const popupTicks = 30

// Package-level config path, set by the CLI before the game is created.
var configPath string

// SetConfigPath sets the config file path used by Reset.
func SetConfigPath(path string) {
	configPath = path
}

// popup marks where a target was collected.
type popup struct {
	pos core.Vec2
	ttl int
}

// Game adapts a sim.Scheduler to the registry.Game interface.
type Game struct {
	variant Variant
	cfg     config.CubeConfig
	params  sim.Params
	sched   *sim.Scheduler
	clock   *sim.StepClock // non-nil in tick clock mode
	popups  []popup
	err     error // fault reported by the scheduler
}

// New creates a classic cube game.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewWalled creates a cube game whose player cannot leave the field.
func NewWalled() *Game {
	return &Game{variant: VariantWalled}
}

func init() {
	registry.Register(string(VariantClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantWalled), func() registry.Game {
		return NewWalled()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantWalled {
		return "Cube (Walled)"
	}
	return "Cube"
}

// ParamsFromConfig converts the YAML configuration to simulation tuning.
func ParamsFromConfig(c config.CubeConfig) sim.Params {
	return sim.Params{
		TickDuration:  time.Second / time.Duration(c.Round.TickRate),
		Speed:         c.Player.Speed,
		HalfExtent:    core.V(c.Player.HalfWidth, c.Player.HalfHeight),
		PlayerStart:   core.V(c.Player.StartX, c.Player.StartY),
		WaveSize:      c.Wave.Size,
		Spawn:         sim.SpawnArea{MinX: c.Wave.MinX, MaxX: c.Wave.MaxX, MinY: c.Wave.MinY, MaxY: c.Wave.MaxY},
		RoundDuration: time.Duration(c.Round.DurationSeconds * float64(time.Second)),
		Clamp:         c.Player.Clamp,
		Field:         core.V(c.Field.Width, c.Field.Height),
	}
}

// Reset starts a fresh round. A config that cannot be loaded falls back to
// the defaults; the CLI validates the config before any game is created.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadCube(configPath)
	if err != nil {
		cfg = config.DefaultCubeConfig()
	}
	g.ResetWithConfig(rc, cfg)
}

// ResetWithConfig starts a fresh round with an explicit configuration.
func (g *Game) ResetWithConfig(rc core.RuntimeConfig, cfg config.CubeConfig) {
	if g.variant == VariantWalled {
		cfg.Player.Clamp = true
	}
	g.cfg = cfg
	g.params = ParamsFromConfig(cfg)
	g.popups = nil
	g.err = nil

	opts := []sim.Option{
		sim.WithSeed(rc.Seed),
		sim.WithCollisionHandler(g.onCollect),
	}
	g.clock = nil
	if cfg.Clock == config.ClockTick {
		g.clock = sim.NewStepClock(time.Unix(0, 0))
		opts = append(opts, sim.WithClock(g.clock))
	}

	sched, err := sim.NewScheduler(g.params, opts...)
	if err != nil {
		// Only reachable with a config that bypassed config.Validate.
		g.params = sim.DefaultParams()
		sched, _ = sim.NewScheduler(g.params, opts...)
	}
	g.sched = sched
}

func (g *Game) onCollect(ev sim.CollisionEvent) {
	g.popups = append(g.popups, popup{pos: ev.Pos, ttl: popupTicks})
}

// InputFromFrame maps the four movement actions to simulation input.
func InputFromFrame(in core.InputFrame) sim.Input {
	return sim.Input{
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
	}
}

// Step advances the round by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.agePopups()

	if g.clock != nil && g.sched.Snapshot().Status == sim.StatusActive && g.err == nil {
		g.clock.Advance(g.params.TickDuration)
	}

	input := InputFromFrame(in)
	res, err := g.sched.Advance(&input)
	if err != nil {
		g.err = err
	}

	return core.StepResult{
		State:     g.State(),
		Collected: res.Collected,
		Err:       err,
	}
}

func (g *Game) agePopups() {
	live := g.popups[:0]
	for _, p := range g.popups {
		p.ttl--
		if p.ttl > 0 {
			live = append(live, p)
		}
	}
	g.popups = live
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	snap := g.sched.Snapshot()
	return core.GameState{
		Score:    snap.Score,
		Waves:    snap.Wave,
		Ticks:    int(snap.Tick),
		GameOver: snap.Status == sim.StatusLoss || snap.Faulted,
	}
}

// Snapshot exposes the simulation view for renderers other than the terminal.
func (g *Game) Snapshot() sim.Snapshot {
	return g.sched.Snapshot()
}

// Params returns the tuning of the current round.
func (g *Game) Params() sim.Params {
	return g.params
}

// Popups returns the positions of recently collected targets.
func (g *Game) Popups() []core.Vec2 {
	out := make([]core.Vec2, len(g.popups))
	for i, p := range g.popups {
		out[i] = p.pos
	}
	return out
}

// Err returns the simulation fault that ended the round, if any.
func (g *Game) Err() error {
	return g.err
}
