package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// maxFrameDT caps a single time step so a stalled terminal does not
// teleport the player through obstacles.
const maxFrameDT = 0.1

// Model is the Bubble Tea model for running a game.
// One row below the playfield is reserved for the help bar.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	sampler  core.Sampler
	logger   *log.Logger
	lastTick time.Time
	state    core.GameState
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
// A nil logger discards log output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		sampler: core.NewRandSampler(cfg.Seed + 1),
		logger:  logger,
		state:   game.State(),
	}
}

// Init starts the frame and spawn timers.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.config.TickRate),
		spawnCmd(m.game.Schedule().SpawnInterval),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.MapKey(msg))

	case tea.MouseMsg:
		return m.handleAction(m.keys.MapMouse(msg))

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case SpawnMsg:
		return m.handleSpawn()
	}

	return m, nil
}

// handleAction processes a mapped input action.
func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil
	}

	m.dispatch(core.EventFor(action))
	return m, nil
}

// handleResize reports the new playable area to the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = core.Max(msg.Height-1, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	m.logger.Debug("viewport", "width", m.config.ScreenW, "height", m.config.ScreenH)
	m.dispatch(core.ViewportReady{
		Width:  float64(m.config.ScreenW),
		Height: float64(m.config.ScreenH),
	})
	return m, nil
}

// handleTick advances the game by the wall time since the previous frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = core.ClampF(now.Sub(m.lastTick).Seconds(), 0, maxFrameDT)
	}
	m.lastTick = now

	m.dispatch(core.TimeAdvance{DT: dt})
	return m, tickCmd(m.config.TickRate)
}

// handleSpawn samples an obstacle height and delivers it. The game ignores
// it while stopped.
func (m Model) handleSpawn() (tea.Model, tea.Cmd) {
	sched := m.game.Schedule()
	m.dispatch(core.SpawnSample{Height: m.sampler.Sample(sched.GapMin, sched.GapMax)})
	return m, spawnCmd(sched.SpawnInterval)
}

// dispatch forwards an event and logs phase changes.
func (m *Model) dispatch(ev core.Event) {
	m.game.Handle(ev)

	next := m.game.State()
	if next != m.state {
		m.logger.Debug(transitionName(m.state, next), "game", m.game.ID())
	}
	m.state = next
}

func transitionName(prev, next core.GameState) string {
	switch {
	case next.Playing && prev.Paused:
		return "resumed"
	case next.Playing:
		return "started"
	case next.Paused:
		return "paused"
	case next.GameOver:
		return "crashed"
	default:
		return "stopped"
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(config.UserDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last observed game summary.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
