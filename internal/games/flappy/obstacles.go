package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Viewport is the logical playable area.
type Viewport struct {
	Width, Height float64
}

// Obstacle is one solid segment the player must avoid. The gap is the open
// space between the segment and the opposite edge of the viewport.
type Obstacle struct {
	core.Rect
}

// SpawnObstacle places a segment of the given height just past the right
// edge of the viewport, flush with the top edge when top is set and with
// the bottom edge otherwise.
func SpawnObstacle(height, width float64, vp Viewport, top bool) Obstacle {
	y := 0.0
	if !top {
		y = vp.Height - height
	}
	return Obstacle{Rect: core.NewRect(vp.Width, y, width, height)}
}

// OffScreen reports whether the obstacle has fully left the viewport,
// i.e. x+width < 0. An obstacle at x=-1 with width 10 is still visible and kept.
func (o Obstacle) OffScreen() bool {
	return o.Right() < 0
}

// ObstacleStream owns the live obstacles in spawn order, oldest first.
type ObstacleStream struct {
	obstacles []Obstacle
	width     float64
}

// NewObstacleStream creates an empty stream spawning obstacles of the given width.
func NewObstacleStream(width float64) *ObstacleStream {
	return &ObstacleStream{
		obstacles: make([]Obstacle, 0, 8),
		width:     width,
	}
}

// Spawn appends a new obstacle. The sampled height is supplied by the caller.
func (s *ObstacleStream) Spawn(height float64, vp Viewport, top bool) Obstacle {
	o := SpawnObstacle(height, s.width, vp, top)
	s.obstacles = append(s.obstacles, o)
	return o
}

// Advance shifts every obstacle left by velocity*dt.
func (s *ObstacleStream) Advance(dt, velocity float64) {
	dx := velocity * dt
	for i := range s.obstacles {
		s.obstacles[i].Rect = s.obstacles[i].Translate(-dx, 0)
	}
}

// Prune removes obstacles that are fully off-screen, preserving the order
// of the rest. It returns the number removed.
func (s *ObstacleStream) Prune() int {
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if !o.OffScreen() {
			kept = append(kept, o)
		}
	}
	removed := len(s.obstacles) - len(kept)
	clear(s.obstacles[len(kept):])
	s.obstacles = kept
	return removed
}

// Clear removes all obstacles.
func (s *ObstacleStream) Clear() {
	s.obstacles = s.obstacles[:0]
}

// Len returns the number of live obstacles.
func (s *ObstacleStream) Len() int {
	return len(s.obstacles)
}

// Obstacles returns a copy of the live obstacles.
func (s *ObstacleStream) Obstacles() []Obstacle {
	out := make([]Obstacle, len(s.obstacles))
	copy(out, s.obstacles)
	return out
}
