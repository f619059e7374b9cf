package flappy

import "github.com/vovakirdan/flapper/internal/core"

// PipePair is one obstacle: a top pipe and a bottom pipe with a gap between.
// The gap edges are derived from Offset and Gap each time they are read.
type PipePair struct {
	X      float64 // Left edge
	Offset int     // Rows covered by the top pipe
	Gap    int     // Rows of open space
	Width  int
}

// GapTop is the row where the gap starts. The top pipe covers every row
// above it.
func (p PipePair) GapTop() float64 {
	return float64(p.Offset)
}

// GapBottom is the first row of the bottom pipe.
func (p PipePair) GapBottom() float64 {
	return float64(p.Offset + p.Gap)
}

// Right returns the x-coordinate of the right edge.
func (p PipePair) Right() float64 {
	return p.X + float64(p.Width)
}

// PipeQueue holds pairs in spawn order: the oldest, leftmost pair first.
type PipeQueue struct {
	pairs []PipePair
}

// Push appends a newly spawned pair at the back.
func (q *PipeQueue) Push(p PipePair) {
	q.pairs = append(q.pairs, p)
}

// Advance moves every pair horizontally by dx.
func (q *PipeQueue) Advance(dx float64) {
	for i := range q.pairs {
		q.pairs[i].X += dx
	}
}

// Evict drops pairs from the front whose right edge has reached the left
// edge of the view and returns how many were removed. All pairs move at the
// same speed, so only the front can be off screen.
func (q *PipeQueue) Evict() int {
	n := 0
	for n < len(q.pairs) && q.pairs[n].Right() <= 0 {
		n++
	}
	if n > 0 {
		q.pairs = append(q.pairs[:0], q.pairs[n:]...)
	}
	return n
}

// Clear removes all pairs.
func (q *PipeQueue) Clear() {
	q.pairs = q.pairs[:0]
}

// Len returns the number of queued pairs.
func (q *PipeQueue) Len() int {
	return len(q.pairs)
}

// Pairs returns the queued pairs, oldest first. The slice is only valid
// until the next queue mutation.
func (q *PipeQueue) Pairs() []PipePair {
	return q.pairs
}

// pipeSprites are the regions a pair is drawn from.
type pipeSprites struct {
	topCap, body, bottomCap core.Rect
}

// drawPair draws the top pipe down to the gap and the bottom pipe from the
// gap to the ground. Caps face the gap.
func drawPair(dst *core.Screen, sheet *core.SpriteSheet, sp pipeSprites, p PipePair, groundY int) {
	x := core.Floor(p.X)
	top := p.Offset
	bottom := p.Offset + p.Gap

	for y := 0; y < top-1; y++ {
		dst.Blit(sheet, sp.body, x, y)
	}
	if top > 0 {
		dst.Blit(sheet, sp.topCap, x, top-1)
	}

	if bottom < groundY {
		dst.Blit(sheet, sp.bottomCap, x, bottom)
	}
	for y := bottom + 1; y < groundY; y++ {
		dst.Blit(sheet, sp.body, x, y)
	}
}
