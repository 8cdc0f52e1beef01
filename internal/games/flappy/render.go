package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	ObstacleChar  = '█'
	DefaultSprite = '●'
)

// Render draws the current state into dst. It never mutates the game.
func (g *Game) Render(dst *core.Screen) {
	s := g.machine.State()
	dst.Clear()

	drawBackground(dst, s)

	for _, o := range s.Obstacles {
		dst.FillRect(o.Rect, ObstacleChar, core.ColorGreen)
	}

	drawPlayer(dst, s)

	if s.Phase == PhaseStopped {
		title, subtitle := overlayText(s.Reason)
		drawCenteredMessage(dst, title, subtitle)
	}
}

// drawBackground tiles the background pattern, shifted by the scroll offset.
// Each row is staggered so the pattern does not form vertical stripes.
func drawBackground(dst *core.Screen, s State) {
	pattern := []rune(s.Assets.Background)
	n := len(pattern)
	if n == 0 {
		return
	}
	shift := int(math.Floor(s.BackgroundOffset))
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			i := ((x+shift+y*7)%n + n) % n
			if pattern[i] != ' ' {
				dst.SetColored(x, y, pattern[i], core.ColorGray)
			}
		}
	}
}

// drawPlayer repeats the sprite across the player's hitbox.
func drawPlayer(dst *core.Screen, s State) {
	sprite := []rune(s.Assets.Sprite)
	if len(sprite) == 0 {
		sprite = []rune{DefaultSprite}
	}
	x0, y0, x1, y1 := s.Player.Rect().Cells()
	if x1 == x0 {
		x1++
	}
	if y1 == y0 {
		y1++
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, sprite[(x-x0)%len(sprite)], core.ColorBrightYellow)
		}
	}
}

func overlayText(reason StopReason) (title, subtitle string) {
	switch reason {
	case StopPaused:
		return "PAUSED", "P to resume  |  SPACE for a new game"
	case StopCrashed:
		return "GAME OVER", "Press SPACE to play again"
	default:
		return "FLAPPY BIRD", "Press SPACE or click to start"
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2
	box := core.NewRect(float64(boxX), float64(boxY), float64(boxW), float64(boxH))

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawHLine(boxX+1, boxY+2, boxW-2, '─')
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
