package flappy

import "github.com/vovakirdan/flapper/internal/core"

// Ground is the floor strip. Its top row is the ground collision line.
type Ground struct {
	X    float64   // Scroll offset, always in (-Period(), 0]
	Y    int       // Top row
	H    int       // Rows occupied at the bottom of the view
	Tile core.Rect // Sprite-sheet region repeated across the view
}

// Period is the distance after which the tile pattern repeats: half the
// tile width, since the tile holds its motif twice.
func (g *Ground) Period() float64 {
	return float64(core.Max(g.Tile.W/2, 1))
}

// Scroll moves the strip left by speed cells, wrapping the offset.
func (g *Ground) Scroll(speed float64) {
	g.X = core.WrapF(g.X-speed, g.Period())
}

// Draw tiles the strip across the screen, starting at the scroll offset.
// A tile at least as wide as the view is drawn twice.
func (g *Ground) Draw(dst *core.Screen, sheet *core.SpriteSheet) {
	if g.Tile.Empty() {
		dst.DrawHLine(0, g.Y, dst.Width(), '▀', core.ColorBrightGreen)
		return
	}
	for x := core.Floor(g.X); x < dst.Width(); x += g.Tile.W {
		dst.Blit(sheet, g.Tile, x, g.Y)
	}
}
