package core

import (
	"errors"
	"fmt"
)

// ErrEmptySheet is returned when a sprite sheet has no art rows.
var ErrEmptySheet = errors.New("core: sprite sheet has no rows")

// SpriteSheet is a text atlas: a grid of runes with a parallel grid of
// palette keys that color them. A space in the art is transparent.
//
// Regions of the sheet are addressed with a Rect whose X, Y are the offset
// into the sheet; Screen.Blit copies them to the screen.
type SpriteSheet struct {
	width  int
	height int
	cells  [][]Cell
}

// NewSpriteSheet builds a sheet from art rows, paint rows, and a palette
// that maps paint keys to colors. Short rows are padded with transparent
// cells. Paint keys not in the palette (including spaces) use ColorDefault.
func NewSpriteSheet(art, paint []string, palette map[rune]Color) (*SpriteSheet, error) {
	if len(art) == 0 {
		return nil, ErrEmptySheet
	}
	if len(paint) > len(art) {
		return nil, fmt.Errorf("core: sprite sheet has %d paint rows for %d art rows", len(paint), len(art))
	}

	rows := make([][]rune, len(art))
	width := 0
	for i, line := range art {
		rows[i] = []rune(line)
		width = Max(width, len(rows[i]))
	}

	sheet := &SpriteSheet{width: width, height: len(rows)}
	sheet.cells = make([][]Cell, len(rows))
	for y, row := range rows {
		var keys []rune
		if y < len(paint) {
			keys = []rune(paint[y])
		}
		sheet.cells[y] = make([]Cell, width)
		for x := 0; x < width; x++ {
			c := blank
			if x < len(row) {
				c.Rune = row[x]
			}
			if x < len(keys) {
				c.Color = palette[keys[x]]
			}
			sheet.cells[y][x] = c
		}
	}
	return sheet, nil
}

// Width returns the sheet width in cells.
func (s *SpriteSheet) Width() int {
	return s.width
}

// Height returns the sheet height in cells.
func (s *SpriteSheet) Height() int {
	return s.height
}

// Bounds returns the whole sheet as a rectangle.
func (s *SpriteSheet) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// At returns the cell at (x, y). The second result is false for transparent
// cells and for positions outside the sheet.
func (s *SpriteSheet) At(x, y int) (Cell, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank, false
	}
	c := s.cells[y][x]
	if c.Rune == ' ' {
		return c, false
	}
	return c, true
}
