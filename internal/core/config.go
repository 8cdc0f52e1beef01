package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Playable width in characters
	ScreenH  int   // Playable height in characters
	TickRate int   // Frames per second delivered by the host loop
	Seed     int64 // RNG seed, 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  23,
		TickRate: 60,
	}
}

// GameState summarizes a game for the platform layer.
type GameState struct {
	Playing  bool // Simulation is running
	Paused   bool // Stopped mid-flight and resumable
	GameOver bool // Stopped because of a collision
}

// Schedule tells the host loop how to drive periodic spawn samples.
type Schedule struct {
	SpawnInterval time.Duration
	GapMin        float64 // Lower bound of the sampled height, in cells
	GapMax        float64 // Upper bound of the sampled height, in cells
}
