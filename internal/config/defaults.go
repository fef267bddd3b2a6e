package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the hardcoded Flappy Bird configuration.
// It matches defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      0.5,
			JumpVelocity: -8,
			TiltFactor:   0.1,
			MaxTilt:      0.5,
			NominalRate:  60,
		},
		World: FlappyWorld{
			Width:       400,
			Height:      600,
			FloorHeight: 60,
		},
		Obstacles: FlappyObstacles{
			Width:         80,
			GapHeight:     150,
			Speed:         3,
			SpawnInterval: 90,
			EdgeMargin:    50,
		},
		Player: FlappyPlayer{
			X:    100,
			Size: 30,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
