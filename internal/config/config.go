// Package config provides YAML/TOML game configuration loading for the
// flappy game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all configuration for the flappy game.
// Lengths are in terminal cells and times in seconds unless noted.
type FlappyConfig struct {
	Physics   FlappyPhysics   `yaml:"physics" toml:"physics"`
	Spawn     FlappySpawn     `yaml:"spawn" toml:"spawn"`
	Player    FlappyPlayer    `yaml:"player" toml:"player"`
	Obstacles FlappyObstacles `yaml:"obstacles" toml:"obstacles"`
	Assets    FlappyAssets    `yaml:"assets" toml:"assets"`
}

// FlappyPhysics defines physics parameters.
type FlappyPhysics struct {
	Gravity            float64 `yaml:"gravity" toml:"gravity"`                         // cells/s², pulls down
	JumpImpulseSpeed   float64 `yaml:"jump_impulse_speed" toml:"jump_impulse_speed"`   // cells/s, positive = up
	ObstacleVelocity   float64 `yaml:"obstacle_velocity" toml:"obstacle_velocity"`     // cells/s, leftwards
	BackgroundVelocity float64 `yaml:"background_velocity" toml:"background_velocity"` // cells/s, leftwards
}

// FlappySpawn defines how often obstacles appear and how tall they are.
type FlappySpawn struct {
	IntervalMs     int      `yaml:"interval_ms" toml:"interval_ms"`
	GapHeightRange GapRange `yaml:"gap_height_range" toml:"gap_height_range"`
}

// GapRange bounds the sampled obstacle height as fractions of the viewport height.
type GapRange struct {
	Min float64 `yaml:"min" toml:"min"`
	Max float64 `yaml:"max" toml:"max"`
}

// FlappyPlayer defines the player hitbox.
type FlappyPlayer struct {
	X      float64 `yaml:"x" toml:"x"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// FlappyObstacles defines obstacle geometry.
type FlappyObstacles struct {
	Width float64 `yaml:"width" toml:"width"`
}

// FlappyAssets holds opaque asset handles for the renderer.
type FlappyAssets struct {
	Sprite     string `yaml:"sprite" toml:"sprite"`
	Background string `yaml:"background" toml:"background"`
}

// SpawnInterval returns the spawn interval as a duration.
func (c FlappyConfig) SpawnInterval() time.Duration {
	return time.Duration(c.Spawn.IntervalMs) * time.Millisecond
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate reports the first degenerate value in the configuration.
func (c FlappyConfig) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"physics.gravity", c.Physics.Gravity},
		{"physics.jump_impulse_speed", c.Physics.JumpImpulseSpeed},
		{"physics.obstacle_velocity", c.Physics.ObstacleVelocity},
		{"spawn.interval_ms", float64(c.Spawn.IntervalMs)},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"obstacles.width", c.Obstacles.Width},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}

	if c.Physics.BackgroundVelocity < 0 {
		return fmt.Errorf("%w: physics.background_velocity must not be negative", ErrInvalidConfig)
	}
	if c.Player.X < 0 {
		return fmt.Errorf("%w: player.x must not be negative", ErrInvalidConfig)
	}

	r := c.Spawn.GapHeightRange
	if r.Min <= 0 || r.Max >= 1 || r.Min > r.Max {
		return fmt.Errorf("%w: spawn.gap_height_range must satisfy 0 < min <= max < 1, got [%v, %v]",
			ErrInvalidConfig, r.Min, r.Max)
	}
	return nil
}
