package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Phase is the coarse game mode.
type Phase int

const (
	PhaseStopped Phase = iota
	PhasePlaying
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStopped:
		return "Stopped"
	case PhasePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// StopReason tells the renderer why the game is stopped.
type StopReason int

const (
	StopIdle    StopReason = iota // Not started yet
	StopPaused                    // Suspended mid-flight, resumable
	StopCrashed                   // Ended by a collision, frozen as-is
)

// State is everything the renderer needs. Obstacles are a copy.
type State struct {
	Phase            Phase
	Reason           StopReason
	Player           PlayerBody
	Obstacles        []Obstacle
	Viewport         Viewport
	SpawnTop         bool    // Side of the next spawned obstacle
	BackgroundOffset float64 // Horizontal scroll of the background, in cells
	Assets           config.FlappyAssets
}

// Machine owns the game state and processes one event at a time.
// It never blocks and is not safe for concurrent use.
type Machine struct {
	cfg     config.FlappyConfig
	sampler core.Sampler

	phase    Phase
	reason   StopReason
	player   PlayerBody
	stream   *ObstacleStream
	viewport Viewport
	spawnTop bool
	bgOffset float64
}

// NewMachine creates a stopped machine. The sampler is only used to size the
// first obstacle of each game; later obstacles arrive as SpawnSample events.
func NewMachine(cfg config.FlappyConfig, sampler core.Sampler) *Machine {
	m := &Machine{
		cfg:      cfg,
		sampler:  sampler,
		stream:   NewObstacleStream(cfg.Obstacles.Width),
		spawnTop: true,
	}
	m.resetPlayer()
	return m
}

// Handle processes a single event.
func (m *Machine) Handle(ev core.Event) {
	switch m.phase {
	case PhaseStopped:
		m.handleStopped(ev)
	case PhasePlaying:
		m.handlePlaying(ev)
	}
}

func (m *Machine) handleStopped(ev core.Event) {
	switch e := ev.(type) {
	case core.ViewportReady:
		m.viewport = Viewport{Width: e.Width, Height: e.Height}
		m.stream.Clear()
		m.resetPlayer()
		m.reason = StopIdle
	case core.ActivateInput:
		m.start()
	case core.PauseToggleInput:
		if m.reason == StopPaused {
			m.phase = PhasePlaying
		}
	}
}

func (m *Machine) handlePlaying(ev core.Event) {
	switch e := ev.(type) {
	case core.ViewportReady:
		m.viewport = Viewport{Width: e.Width, Height: e.Height}
	case core.TimeAdvance:
		m.tick(e.DT)
	case core.ActivateInput:
		m.player = m.player.ApplyImpulse(m.cfg.Physics.JumpImpulseSpeed)
	case core.PauseToggleInput:
		m.phase = PhaseStopped
		m.reason = StopPaused
	case core.SpawnSample:
		m.spawn(e.Height)
	}
}

// start begins a fresh game with one seeded obstacle.
func (m *Machine) start() {
	m.stream.Clear()
	m.spawnTop = true
	m.resetPlayer()
	m.player = m.player.ApplyImpulse(m.cfg.Physics.JumpImpulseSpeed)

	lo, hi := m.GapRange()
	m.spawn(m.sampler.Sample(lo, hi))

	m.phase = PhasePlaying
	m.reason = StopIdle
}

// tick runs exactly one physics and collision pass. Collision is evaluated
// against the post-update positions.
func (m *Machine) tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	phys := m.cfg.Physics

	m.player = m.player.Integrate(dt, phys.Gravity)
	m.stream.Advance(dt, phys.ObstacleVelocity)
	m.stream.Prune()
	m.bgOffset += phys.BackgroundVelocity * dt

	if HasCollided(m.player, m.stream.obstacles, m.viewport) {
		m.phase = PhaseStopped
		m.reason = StopCrashed
	}
}

func (m *Machine) spawn(height float64) {
	m.stream.Spawn(height, m.viewport, m.spawnTop)
	m.spawnTop = !m.spawnTop
}

// resetPlayer puts the player at its default column, vertically centered,
// at rest.
func (m *Machine) resetPlayer() {
	p := m.cfg.Player
	x := p.X
	if m.viewport.Width > 0 && x+p.Width > m.viewport.Width {
		x = max(0, (m.viewport.Width-p.Width)/4)
	}
	m.player = PlayerBody{
		X:      x,
		Y:      (m.viewport.Height - p.Height) / 2,
		Width:  p.Width,
		Height: p.Height,
	}
}

// GapRange returns the bounds for sampled obstacle heights in cells.
func (m *Machine) GapRange() (lo, hi float64) {
	r := m.cfg.Spawn.GapHeightRange
	return r.Min * m.viewport.Height, r.Max * m.viewport.Height
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// State returns a read-only snapshot for rendering.
func (m *Machine) State() State {
	return State{
		Phase:            m.phase,
		Reason:           m.reason,
		Player:           m.player,
		Obstacles:        m.stream.Obstacles(),
		Viewport:         m.viewport,
		SpawnTop:         m.spawnTop,
		BackgroundOffset: m.bgOffset,
		Assets:           m.cfg.Assets,
	}
}
