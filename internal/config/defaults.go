package config

import (
	_ "embed"
)

//go:embed defaults/cube.yaml
var defaultCubeYAML []byte

// DefaultCubeConfig returns the default cube configuration.
func DefaultCubeConfig() CubeConfig {
	return CubeConfig{
		Round: RoundConfig{
			DurationSeconds: 10,
			TickRate:        60,
		},
		Player: PlayerConfig{
			StartX:     0,
			StartY:     -50,
			HalfWidth:  30,
			HalfHeight: 30,
			Speed:      240,
		},
		Wave: WaveConfig{
			Size: 5,
			MinX: -600,
			MaxX: 600,
			MinY: -200,
			MaxY: 200,
		},
		Field: FieldConfig{
			Width:  1920,
			Height: 1080,
		},
		Input: InputConfig{
			HoldMillis: 250,
		},
		Clock: ClockWall,
	}
}
