package flappy

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

func newTestGame() *Game {
	g := New(config.DefaultFlappyConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 23, TickRate: 60, Seed: 1})
	return g
}

func TestGameStateSummary(t *testing.T) {
	g := newTestGame()

	if st := g.State(); st.Playing || st.Paused || st.GameOver {
		t.Errorf("fresh game should be idle, got %+v", st)
	}

	g.Handle(core.ActivateInput{})
	if st := g.State(); !st.Playing {
		t.Errorf("expected Playing, got %+v", st)
	}

	g.Handle(core.PauseToggleInput{})
	if st := g.State(); st.Playing || !st.Paused {
		t.Errorf("expected Paused, got %+v", st)
	}

	g.Handle(core.PauseToggleInput{})
	g.machine.player.Y = -5
	g.Handle(core.TimeAdvance{DT: 0.01})
	if st := g.State(); !st.GameOver || st.Paused || st.Playing {
		t.Errorf("expected GameOver, got %+v", st)
	}
}

func TestGameSchedule(t *testing.T) {
	g := newTestGame()
	sched := g.Schedule()

	if sched.SpawnInterval != 2500*time.Millisecond {
		t.Errorf("SpawnInterval = %v", sched.SpawnInterval)
	}
	if !almostEqual(sched.GapMin, 4.6) || !almostEqual(sched.GapMax, 18.4) {
		t.Errorf("gap range = [%f, %f], expected [4.6, 18.4]", sched.GapMin, sched.GapMax)
	}
}

func TestGameResetUsesScreenSize(t *testing.T) {
	g := newTestGame()
	g.Handle(core.ActivateInput{})

	g.Reset(core.RuntimeConfig{ScreenW: 120, ScreenH: 40, Seed: 2})

	s := g.Snapshot()
	if s.Phase != PhaseStopped || len(s.Obstacles) != 0 {
		t.Errorf("Reset should return to an idle game, got %+v", s)
	}
	if s.Viewport != (Viewport{Width: 120, Height: 40}) {
		t.Errorf("viewport = %+v", s.Viewport)
	}
}

func TestGameRenderIdle(t *testing.T) {
	g := newTestGame()
	screen := core.NewScreen(80, 23)

	g.Render(screen)

	if !strings.Contains(screen.String(), "FLAPPY BIRD") {
		t.Error("idle screen should show the start prompt")
	}
	// Box is 33 wide at rows 9..13; a divider separates title and subtitle
	if divider := "│" + strings.Repeat("─", 31) + "│"; !strings.Contains(screen.Row(11), divider) {
		t.Errorf("overlay divider missing, row 11 = %q", screen.Row(11))
	}
	// Player is centered at column 10: (23-1)/2 = row 11
	if screen.Get(10, 11) != '>' || screen.Get(11, 11) != 'o' {
		t.Errorf("player sprite missing, row 11 = %q", screen.Row(11))
	}
	if c := screen.GetCell(10, 11); c.Color != core.ColorBrightYellow {
		t.Errorf("player colour = %v", c.Color)
	}
}

func TestGameRenderPlaying(t *testing.T) {
	g := newTestGame()
	g.Handle(core.ActivateInput{})
	g.Handle(core.TimeAdvance{DT: 0.5})

	if !g.State().Playing {
		t.Fatal("game should still be running")
	}

	screen := core.NewScreen(80, 23)
	g.Render(screen)

	if strings.Contains(screen.String(), "FLAPPY BIRD") {
		t.Error("no overlay while playing")
	}
	// Seed obstacle is top-flush and has scrolled to x = 80 - 18*0.5 = 71
	cell := screen.GetCell(72, 0)
	if cell.Rune != ObstacleChar || cell.Color != core.ColorGreen {
		t.Errorf("obstacle cell = %+v, row 0 = %q", cell, screen.Row(0))
	}
}

func TestGameRenderOverlays(t *testing.T) {
	g := newTestGame()
	g.Handle(core.ActivateInput{})
	screen := core.NewScreen(80, 23)

	g.Handle(core.PauseToggleInput{})
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused screen should say PAUSED")
	}

	g.Handle(core.PauseToggleInput{})
	g.machine.player.Y = 30
	g.Handle(core.TimeAdvance{DT: 0.01})
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("crashed screen should say GAME OVER")
	}
}

func TestGameRenderBackgroundScrolls(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Assets.Background = "*   "
	g := New(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 3})
	g.Handle(core.ActivateInput{})

	before := core.NewScreen(40, 10)
	g.Render(before)
	if c := before.GetCell(0, 0); c.Rune != '*' || c.Color != core.ColorGray {
		t.Fatalf("background cell = %+v", c)
	}

	// background_velocity 6 cells/s: a quarter second scrolls 1.5 cells
	g.Handle(core.TimeAdvance{DT: 0.25})
	after := core.NewScreen(40, 10)
	g.Render(after)

	if after.Get(0, 0) == '*' || after.Get(3, 0) != '*' {
		t.Errorf("background should shift left by one cell, row 0 = %q", after.Row(0))
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	g := newTestGame()
	g.Handle(core.ActivateInput{})
	before := g.Snapshot()

	g.Render(core.NewScreen(80, 23))

	after := g.Snapshot()
	if after.Player != before.Player || after.Obstacles[0] != before.Obstacles[0] {
		t.Error("Render must not change the game")
	}
}

func TestRegistered(t *testing.T) {
	custom := config.DefaultFlappyConfig()
	custom.Physics.JumpImpulseSpeed = 21
	SetConfig(custom)
	defer SetConfig(config.DefaultFlappyConfig())

	game, err := registry.Create("flappy")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if game.ID() != "flappy" || game.Title() != "Flappy Bird" {
		t.Errorf("unexpected game %q / %q", game.ID(), game.Title())
	}

	fg, ok := game.(*Game)
	if !ok {
		t.Fatalf("registry returned %T", game)
	}
	fg.Handle(core.ActivateInput{})
	if v := fg.Snapshot().Player.Velocity; v != 21 {
		t.Errorf("registry games should use SetConfig, velocity = %f", v)
	}
}
