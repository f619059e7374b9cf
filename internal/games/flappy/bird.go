package flappy

import "github.com/vovakirdan/flapper/internal/core"

// Bird is the player-controlled sprite. X is fixed while Y and Velocity
// change every playing tick.
type Bird struct {
	X        int
	Y        float64     // Top edge
	W, H     int         // Hitbox size
	Velocity float64     // Cells per tick, positive is down
	Frame    int         // Index into Frames
	Frames   []core.Rect // Sprite-sheet offsets, in animation order
}

// Fall applies one tick of gravity. A positive maxFall caps the downward
// velocity; zero leaves it unlimited.
func (b *Bird) Fall(gravity, maxFall float64) {
	b.Velocity += gravity
	if maxFall > 0 && b.Velocity > maxFall {
		b.Velocity = maxFall
	}
	b.Y += b.Velocity
}

// Jump replaces the current velocity with the impulse.
func (b *Bird) Jump(impulse float64) {
	b.Velocity = impulse
}

// Animate advances to the next frame of the table, wrapping at the end.
func (b *Bird) Animate() {
	if len(b.Frames) == 0 {
		return
	}
	b.Frame = (b.Frame + 1) % len(b.Frames)
}

// Region returns the sprite-sheet offset of the current frame.
func (b *Bird) Region() (core.Rect, bool) {
	if b.Frame < 0 || b.Frame >= len(b.Frames) {
		return core.Rect{}, false
	}
	return b.Frames[b.Frame], true
}

// Bottom returns the y-coordinate of the bottom edge.
func (b *Bird) Bottom() float64 {
	return b.Y + float64(b.H)
}

// Front returns the x-coordinate of the leading (right) edge.
func (b *Bird) Front() float64 {
	return float64(b.X + b.W)
}
