// Package sim is the deterministic per-tick simulation of the cube game:
// a player square collects waves of target squares before the round clock
// runs out. It has no knowledge of terminals, windows or wall clocks beyond
// the Clock interface, so every step can be driven and inspected in tests.
package sim

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-cube/internal/core"
)

// Tuning defaults taken from the original field layout.
const (
	DefaultTickRate      = 60
	DefaultSpeed         = 240.0 // world units per second
	DefaultHalfExtent    = 30.0
	DefaultWaveSize      = 5
	DefaultRoundDuration = 10 * time.Second
	DefaultFieldWidth    = 1920.0
	DefaultFieldHeight   = 1080.0
)

// SpawnArea bounds target centers. Both ends are inclusive and draws have
// integer resolution.
type SpawnArea struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Params holds the fixed tuning of a round.
type Params struct {
	TickDuration  time.Duration
	Speed         float64
	HalfExtent    core.Vec2
	PlayerStart   core.Vec2
	WaveSize      int
	Spawn         SpawnArea
	RoundDuration time.Duration

	// Clamp keeps the whole player box inside Field when set. Off by
	// default: the player may wander off-screen.
	Clamp bool
	Field core.Vec2 // full width/height, centered on the origin
}

// DefaultParams returns the classic tuning: 60 Hz ticks, 240 u/s, 60x60
// squares, waves of five within x in [-600, 600] and y in [-200, 200], and
// a ten second round.
func DefaultParams() Params {
	return Params{
		TickDuration:  time.Second / DefaultTickRate,
		Speed:         DefaultSpeed,
		HalfExtent:    core.V(DefaultHalfExtent, DefaultHalfExtent),
		PlayerStart:   core.V(0, -50),
		WaveSize:      DefaultWaveSize,
		Spawn:         SpawnArea{MinX: -600, MaxX: 600, MinY: -200, MaxY: 200},
		RoundDuration: DefaultRoundDuration,
		Field:         core.V(DefaultFieldWidth, DefaultFieldHeight),
	}
}

// TickRate returns the ticks per second TickDuration stands for. An integer
// rate such as 60 Hz cannot be held exactly in a time.Duration
// (time.Second/60 truncates to 16666666ns), so a duration produced by
// time.Second/n reports exactly n.
func (p Params) TickRate() float64 {
	if p.TickDuration <= 0 {
		return 0
	}
	exact := float64(time.Second) / float64(p.TickDuration)
	n := math.Round(exact)
	if n >= 1 && time.Second/time.Duration(n) == p.TickDuration {
		return n
	}
	return exact
}

// StepLength is how far the player moves along an axis in one tick.
func (p Params) StepLength() float64 {
	rate := p.TickRate()
	if rate == 0 {
		return 0
	}
	return p.Speed / rate
}

// ErrInvalidParams is wrapped by every Validate failure.
var ErrInvalidParams = errors.New("sim: invalid params")

// Validate checks that the tuning describes a playable round.
func (p Params) Validate() error {
	switch {
	case p.TickDuration <= 0:
		return fmt.Errorf("%w: tick duration must be positive, got %v", ErrInvalidParams, p.TickDuration)
	case p.Speed < 0:
		return fmt.Errorf("%w: speed must not be negative, got %v", ErrInvalidParams, p.Speed)
	case p.HalfExtent.X < 0 || p.HalfExtent.Y < 0:
		return fmt.Errorf("%w: half extent must not be negative, got %v", ErrInvalidParams, p.HalfExtent)
	case p.WaveSize <= 0:
		return fmt.Errorf("%w: wave size must be positive, got %d", ErrInvalidParams, p.WaveSize)
	case p.Spawn.MinX > p.Spawn.MaxX || p.Spawn.MinY > p.Spawn.MaxY:
		return fmt.Errorf("%w: spawn area is inverted: %+v", ErrInvalidParams, p.Spawn)
	case p.RoundDuration <= 0:
		return fmt.Errorf("%w: round duration must be positive, got %v", ErrInvalidParams, p.RoundDuration)
	case p.Clamp && (p.Field.X < 2*p.HalfExtent.X || p.Field.Y < 2*p.HalfExtent.Y):
		return fmt.Errorf("%w: field %v cannot contain the player", ErrInvalidParams, p.Field)
	}
	return nil
}
