package desktop

import (
	"image/color"

	"github.com/vovakirdan/flapper/internal/core"
)

// skyColor fills every cell before the frame is drawn.
var skyColor = color.RGBA{R: 0x12, G: 0x1a, B: 0x30, A: 0xff}

// palette approximates the xterm colors the terminal frontend uses.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff},
	core.ColorRed:           {R: 0xcd, G: 0x00, B: 0x00, A: 0xff},
	core.ColorGreen:         {R: 0x00, G: 0xcd, B: 0x00, A: 0xff},
	core.ColorYellow:        {R: 0xcd, G: 0xcd, B: 0x00, A: 0xff},
	core.ColorBlue:          {R: 0x00, G: 0x00, B: 0xee, A: 0xff},
	core.ColorMagenta:       {R: 0xcd, G: 0x00, B: 0xcd, A: 0xff},
	core.ColorCyan:          {R: 0x00, G: 0xcd, B: 0xcd, A: 0xff},
	core.ColorWhite:         {R: 0xe5, G: 0xe5, B: 0xe5, A: 0xff},
	core.ColorBrightRed:     {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	core.ColorBrightGreen:   {R: 0x00, G: 0xff, B: 0x00, A: 0xff},
	core.ColorBrightYellow:  {R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	core.ColorBrightBlue:    {R: 0x5c, G: 0x5c, B: 0xff, A: 0xff},
	core.ColorBrightMagenta: {R: 0xff, G: 0x00, B: 0xff, A: 0xff},
	core.ColorBrightCyan:    {R: 0x00, G: 0xff, B: 0xff, A: 0xff},
	core.ColorBrightWhite:   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorOrange:        {R: 0xff, G: 0x87, B: 0x00, A: 0xff},
	core.ColorGray:          {R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff},
}

// colorOf returns the RGBA for a cell color, falling back to the default.
func colorOf(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}
