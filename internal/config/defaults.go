package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in flappy configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:            60,
			JumpImpulseSpeed:   16,
			ObstacleVelocity:   18,
			BackgroundVelocity: 6,
		},
		Spawn: FlappySpawn{
			IntervalMs: 2500,
			GapHeightRange: GapRange{
				Min: 0.2,
				Max: 0.8,
			},
		},
		Player: FlappyPlayer{
			X:      10,
			Width:  2,
			Height: 1,
		},
		Obstacles: FlappyObstacles{
			Width: 4,
		},
		Assets: FlappyAssets{
			Sprite:     ">o",
			Background: "  .     '    .  ",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
