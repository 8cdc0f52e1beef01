package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// PlayerBody is the player's hitbox and vertical motion.
// Positive velocity moves the body up the screen (decreasing y).
type PlayerBody struct {
	X, Y          float64
	Velocity      float64
	Width, Height float64
}

// Rect returns the collision rectangle.
func (b PlayerBody) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Width, b.Height)
}

// Integrate advances the body by dt seconds under constant gravity.
// Position uses the closed form y -= v*dt - g*dt²/2 rather than the plain
// Euler step y -= v*dt, so integrating dt1 then dt2 equals integrating
// dt1+dt2. Velocity still follows v -= g*dt.
func (b PlayerBody) Integrate(dt, gravity float64) PlayerBody {
	b.Y -= b.Velocity*dt - 0.5*gravity*dt*dt
	b.Velocity -= gravity * dt
	return b
}

// ApplyImpulse replaces the vertical velocity with speed.
func (b PlayerBody) ApplyImpulse(speed float64) PlayerBody {
	b.Velocity = speed
	return b
}
