// Package audio plays the short sound cues that accompany game events.
// Games only report events; the platform picks a Player and forwards them.
package audio

import (
	"sync"

	"github.com/vovakirdan/flapper/internal/core"
)

// Cue is one short sound.
type Cue int

const (
	CueHit Cue = iota
	CueFlap
	CuePoint
)

// String returns the cue name used in logs.
func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CueFlap:
		return "flap"
	case CuePoint:
		return "point"
	default:
		return "unknown"
	}
}

// CueFor maps a game event to its cue. Events without a sound report false.
func CueFor(kind core.EventKind) (Cue, bool) {
	switch kind {
	case core.EventHit:
		return CueHit, true
	case core.EventFlap:
		return CueFlap, true
	case core.EventPoint:
		return CuePoint, true
	default:
		return 0, false
	}
}

// Player plays cues without blocking the caller.
type Player interface {
	Play(c Cue)
}

// PlayEvents plays the cue of every event that has one.
func PlayEvents(p Player, events []core.Event) {
	if p == nil {
		return
	}
	for _, ev := range events {
		if c, ok := CueFor(ev.Kind); ok {
			p.Play(c)
		}
	}
}

// Nop discards every cue. Used with --mute and when no device is available.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) {}

// Bell rings the terminal bell on a hit. It is the only cue that reaches
// a remote terminal, so SSH sessions use it. Bell writes nothing itself:
// the frame renderer collects the ring with TakeRing and sends BEL with
// the next frame, so the byte never lands inside another write.
type Bell struct {
	mu      sync.Mutex
	pending bool
}

// NewBell creates a silent bell.
func NewBell() *Bell {
	return &Bell{}
}

// Play queues a ring for the hit cue and ignores the rest.
func (b *Bell) Play(c Cue) {
	if c != CueHit {
		return
	}
	b.mu.Lock()
	b.pending = true
	b.mu.Unlock()
}

// TakeRing reports whether a ring is pending and clears it.
func (b *Bell) TakeRing() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	ring := b.pending
	b.pending = false
	return ring
}
