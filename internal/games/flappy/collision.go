package flappy

// HasCollided reports whether the body has left the viewport vertically or
// overlaps any obstacle.
func HasCollided(body PlayerBody, obstacles []Obstacle, vp Viewport) bool {
	if body.Y < 0 || body.Y+body.Height > vp.Height {
		return true
	}
	r := body.Rect()
	for _, o := range obstacles {
		if r.Overlaps(o.Rect) {
			return true
		}
	}
	return false
}
