// Package config provides YAML-based configuration loading for the cube game.
package config

import (
	"errors"
	"fmt"
)

// CubeConfig contains all configuration for the cube game.
type CubeConfig struct {
	Round  RoundConfig  `yaml:"round"`
	Player PlayerConfig `yaml:"player"`
	Wave   WaveConfig   `yaml:"wave"`
	Field  FieldConfig  `yaml:"field"`
	Input  InputConfig  `yaml:"input"`
	Clock  ClockMode    `yaml:"clock"`
}

// RoundConfig defines the round timer and simulation rate.
type RoundConfig struct {
	DurationSeconds float64 `yaml:"duration_seconds"`
	TickRate        int     `yaml:"tick_rate"` // Simulation ticks per second
}

// PlayerConfig defines the player square.
type PlayerConfig struct {
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
	Speed      float64 `yaml:"speed"` // World units per second
	Clamp      bool    `yaml:"clamp"` // Keep the player inside the field
}

// WaveConfig defines how many targets spawn and where.
type WaveConfig struct {
	Size int `yaml:"size"`
	MinX int `yaml:"min_x"`
	MaxX int `yaml:"max_x"`
	MinY int `yaml:"min_y"`
	MaxY int `yaml:"max_y"`
}

// FieldConfig defines the visible field, centered on the origin.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// InputConfig defines how terminal key presses become held directions.
type InputConfig struct {
	HoldMillis int `yaml:"hold_ms"` // How long a direction stays held after a key press
}

// ClockMode selects what the round timer measures.
type ClockMode string

const (
	ClockWall ClockMode = "wall" // Real elapsed time
	ClockTick ClockMode = "tick" // Ticks times tick duration; deterministic
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks values that would make the game unplayable.
func (c CubeConfig) Validate() error {
	switch {
	case c.Round.DurationSeconds <= 0:
		return fmt.Errorf("%w: round.duration_seconds must be positive", ErrInvalid)
	case c.Round.TickRate <= 0:
		return fmt.Errorf("%w: round.tick_rate must be positive", ErrInvalid)
	case c.Player.Speed < 0:
		return fmt.Errorf("%w: player.speed must not be negative", ErrInvalid)
	case c.Player.HalfWidth <= 0 || c.Player.HalfHeight <= 0:
		return fmt.Errorf("%w: player half extents must be positive", ErrInvalid)
	case c.Wave.Size <= 0:
		return fmt.Errorf("%w: wave.size must be positive", ErrInvalid)
	case c.Wave.MinX > c.Wave.MaxX || c.Wave.MinY > c.Wave.MaxY:
		return fmt.Errorf("%w: wave spawn area is inverted", ErrInvalid)
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field size must be positive", ErrInvalid)
	case c.Field.Width < 2*c.Player.HalfWidth || c.Field.Height < 2*c.Player.HalfHeight:
		// Checked even with clamp off: the walled variant always clamps.
		return fmt.Errorf("%w: field must be at least as large as the player", ErrInvalid)
	case c.Input.HoldMillis < 0:
		return fmt.Errorf("%w: input.hold_ms must not be negative", ErrInvalid)
	}

	switch c.Clock {
	case ClockWall, ClockTick:
	default:
		return fmt.Errorf("%w: unknown clock mode %q", ErrInvalid, c.Clock)
	}
	return nil
}
