package sim

import (
	"time"

	"github.com/vovakirdan/tui-cube/internal/core"
)

// Status is the round state machine: Active until the clock runs out with
// targets left, then Loss forever.
type Status int

const (
	StatusActive Status = iota
	StatusLoss
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusLoss:
		return "loss"
	default:
		return "unknown"
	}
}

// Player is the single controllable square.
type Player struct {
	Pos  core.Vec2
	Half core.Vec2
}

// Target is a collectible square belonging to the current wave.
type Target struct {
	ID   int
	Pos  core.Vec2
	Half core.Vec2
}

// RoundState is the complete mutable state of a round. Every step function
// receives it explicitly; the Scheduler is its only long-lived owner.
type RoundState struct {
	Player      Player
	Targets     []Target
	Score       int
	TargetCount int

	WaveStart time.Time // start of the current wave; meaningless while Wave is 0
	Wave      int       // waves spawned so far
	Tick      uint64    // ticks advanced
	Now       time.Time // clock reading of the last tick that had one
	Status    Status

	nextID int
}

// NewRoundState places the player at its start position with no targets.
// The first Spawner run creates wave one.
func NewRoundState(p Params) *RoundState {
	return &RoundState{
		Player: Player{Pos: p.PlayerStart, Half: p.HalfExtent},
	}
}
