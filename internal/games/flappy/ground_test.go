package flappy

import (
	"testing"

	"github.com/vovakirdan/flapper/internal/core"
)

func TestGroundScrollWrapsAtHalfTile(t *testing.T) {
	g := Ground{Tile: core.NewRect(0, 0, 32, 2)}

	if g.Period() != 16 {
		t.Fatalf("Period() = %v, expected 16", g.Period())
	}

	for i := 0; i < 500; i++ {
		g.Scroll(0.75)
		if g.X > 0 || g.X <= -16 {
			t.Fatalf("tick %d: offset %v outside (-16, 0]", i, g.X)
		}
	}

	g.X = 0
	for i := 0; i < 32; i++ {
		g.Scroll(0.5)
	}
	if g.X != 0 {
		t.Errorf("after scrolling exactly one period offset = %v, expected 0", g.X)
	}
}

func TestGroundScrollWithoutTile(t *testing.T) {
	g := Ground{}
	g.Scroll(0.5)
	if g.X > 0 || g.X <= -1 {
		t.Errorf("offset %v should wrap at the minimum period of 1", g.X)
	}
}

func TestGroundDrawCoversView(t *testing.T) {
	sheet, err := core.NewSpriteSheet([]string{"abcdabcd"}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		offset   float64
		viewW    int
		expected string
	}{
		{"no offset", 0, 12, "abcdabcdabcd"},
		{"scrolled", -1, 12, "bcdabcdabcda"},
		{"view narrower than tile", -3, 6, "dabcda"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dst := core.NewScreen(tc.viewW, 2)
			g := Ground{X: tc.offset, Y: 1, H: 1, Tile: core.NewRect(0, 0, 8, 1)}
			g.Draw(dst, sheet)
			if got := dst.Row(1); got != tc.expected {
				t.Errorf("ground row = %q, expected %q", got, tc.expected)
			}
		})
	}
}
