package flappy

// HitsGround reports whether the bird's bottom edge has reached the ground.
func HitsGround(b Bird, g Ground) bool {
	return b.Bottom() >= float64(g.Y)
}

// HitsPair reports whether the bird collides with a pair: its leading edge
// has reached the pair and it is not inside the gap.
func HitsPair(b Bird, p PipePair) bool {
	if b.Front() < p.X {
		return false
	}
	return b.Y <= p.GapTop() || b.Bottom() >= p.GapBottom()
}

// HitsAnyPair reports whether the bird collides with any queued pair.
func HitsAnyPair(b Bird, q *PipeQueue) bool {
	for _, p := range q.Pairs() {
		if HitsPair(b, p) {
			return true
		}
	}
	return false
}

// ScoreDue reports whether the run tick is a scoring tick.
func ScoreDue(runTicks, interval int) bool {
	return interval > 0 && runTicks > 0 && runTicks%interval == 0
}
