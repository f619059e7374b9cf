package desktop

import (
	"image"
	"image/color"
)

// tileRunes are drawn from the procedural tile sheet instead of the font.
// The bitmap font has no block elements or box drawing.
var tileRunes = []rune("█▀▄▌▐░▒▓─│┌┐└┘")

// glyphCovers reports whether pixel (x, y) of a w×h cell is lit for r.
// The second result is false when r has no tile.
func glyphCovers(r rune, x, y, w, h int) (lit, ok bool) {
	hline := y == h/2-1 || y == h/2
	vline := x == w/2-1 || x == w/2

	switch r {
	case '█':
		return true, true
	case '▀':
		return y < h/2, true
	case '▄':
		return y >= h/2, true
	case '▌':
		return x < w/2, true
	case '▐':
		return x >= w/2, true
	case '░':
		return (x+y)%4 == 0, true
	case '▒':
		return (x+y)%2 == 0, true
	case '▓':
		return (x+y)%4 != 0, true
	case '─':
		return hline, true
	case '│':
		return vline, true
	case '┌':
		return (hline && x >= w/2-1) || (vline && y >= h/2-1), true
	case '┐':
		return (hline && x <= w/2) || (vline && y >= h/2-1), true
	case '└':
		return (hline && x >= w/2-1) || (vline && y <= h/2), true
	case '┘':
		return (hline && x <= w/2) || (vline && y <= h/2), true
	}
	return false, false
}

// buildTileSheet paints every tile rune white on transparent, side by side,
// and returns the sheet with each rune's rectangle. Tiles are tinted when
// drawn.
func buildTileSheet(w, h int) (*image.RGBA, map[rune]image.Rectangle) {
	sheet := image.NewRGBA(image.Rect(0, 0, w*len(tileRunes), h))
	rects := make(map[rune]image.Rectangle, len(tileRunes))

	for i, r := range tileRunes {
		ox := i * w
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if lit, _ := glyphCovers(r, x, y, w, h); lit {
					sheet.SetRGBA(ox+x, y, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
				}
			}
		}
		rects[r] = image.Rect(ox, 0, ox+w, h)
	}
	return sheet, rects
}
