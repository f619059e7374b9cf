package flappy

import (
	"testing"

	"github.com/vovakirdan/flapper/internal/core"
)

func TestBirdFallAddsGravity(t *testing.T) {
	b := Bird{Y: 10, H: 2}
	for i := 0; i < 4; i++ {
		b.Fall(0.25, 0)
	}

	if b.Velocity != 1.0 {
		t.Errorf("velocity after 4 ticks = %v, expected 1.0", b.Velocity)
	}
	// 0.25 + 0.5 + 0.75 + 1.0
	if b.Y != 12.5 {
		t.Errorf("y after 4 ticks = %v, expected 12.5", b.Y)
	}
}

func TestBirdFallTerminalVelocity(t *testing.T) {
	b := Bird{}
	for i := 0; i < 10; i++ {
		b.Fall(0.5, 2)
	}
	if b.Velocity != 2 {
		t.Errorf("velocity = %v, expected cap of 2", b.Velocity)
	}

	unlimited := Bird{}
	for i := 0; i < 10; i++ {
		unlimited.Fall(0.5, 0)
	}
	if unlimited.Velocity != 5 {
		t.Errorf("velocity with no cap = %v, expected 5", unlimited.Velocity)
	}
}

func TestBirdJumpOverridesVelocity(t *testing.T) {
	for _, prior := range []float64{-3, -0.9, 0, 0.4, 7.5} {
		b := Bird{Velocity: prior}
		b.Jump(-4.6)
		if b.Velocity != -4.6 {
			t.Errorf("Jump from velocity %v gave %v, expected -4.6", prior, b.Velocity)
		}
	}
}

func TestBirdAnimateFollowsFrameTable(t *testing.T) {
	f0 := core.NewRect(0, 0, 4, 2)
	f1 := core.NewRect(0, 2, 4, 2)
	f2 := core.NewRect(0, 4, 4, 2)
	b := Bird{Frames: []core.Rect{f0, f1, f2, f1}}

	expected := []core.Rect{f1, f2, f1, f0, f1}
	for i, want := range expected {
		b.Animate()
		got, ok := b.Region()
		if !ok || got != want {
			t.Errorf("step %d: region = %+v, expected %+v", i, got, want)
		}
	}
}

func TestBirdRegionWithoutFrames(t *testing.T) {
	b := Bird{}
	b.Animate() // Should not panic
	if _, ok := b.Region(); ok {
		t.Error("bird without frames should have no region")
	}
}
