// Package flappy implements a Flappy Bird-style game.
// The player falls under gravity, flaps upward on input, and must avoid
// obstacles that scroll in from the right.
package flappy

import (
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var (
	configMu     sync.RWMutex
	activeConfig = config.DefaultFlappyConfig()
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.FlappyConfig) {
	configMu.Lock()
	defer configMu.Unlock()
	activeConfig = cfg
}

func currentConfig() config.FlappyConfig {
	configMu.RLock()
	defer configMu.RUnlock()
	return activeConfig
}

// Game adapts Machine to the registry.Game interface.
type Game struct {
	cfg     config.FlappyConfig
	machine *Machine
}

// New creates a game with the given configuration.
func New(cfg config.FlappyConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset discards the current session and reports the playable area.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.machine = NewMachine(g.cfg, core.NewRandSampler(cfg.Seed))
	g.machine.Handle(core.ViewportReady{
		Width:  float64(cfg.ScreenW),
		Height: float64(cfg.ScreenH),
	})
}

// Handle forwards an event to the state machine.
func (g *Game) Handle(ev core.Event) {
	g.machine.Handle(ev)
}

// State returns the platform-level summary.
func (g *Game) State() core.GameState {
	s := g.machine
	return core.GameState{
		Playing:  s.phase == PhasePlaying,
		Paused:   s.phase == PhaseStopped && s.reason == StopPaused,
		GameOver: s.phase == PhaseStopped && s.reason == StopCrashed,
	}
}

// Schedule reports the spawn interval and sampling range for the host loop.
func (g *Game) Schedule() core.Schedule {
	lo, hi := g.machine.GapRange()
	return core.Schedule{
		SpawnInterval: g.cfg.SpawnInterval(),
		GapMin:        lo,
		GapMax:        hi,
	}
}

// Snapshot returns the full state for inspection.
func (g *Game) Snapshot() State {
	return g.machine.State()
}

func init() {
	registry.Register("flappy", func() registry.Game {
		return New(currentConfig())
	})
}
