// Package desktop runs flapper in an Ebitengine window. The game draws into
// the same cell buffer the terminal uses; each cell becomes a CellW×CellH
// block of pixels, tinted from a tile sheet or drawn with a bitmap font.
package desktop

import (
	"errors"
	"image"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/flapper/internal/audio"
	"github.com/vovakirdan/flapper/internal/core"
	"github.com/vovakirdan/flapper/internal/registry"
	"github.com/vovakirdan/flapper/internal/storage"
)

// Cell size in pixels. basicfont's 7x13 glyphs fit with a pixel to spare.
const (
	CellW = 8
	CellH = 16
)

// glyphBaseline is the vertical offset of font glyphs inside a cell.
const glyphBaseline = 1

// Options holds what a window needs besides the game. Every field is
// optional.
type Options struct {
	Store      *storage.Store
	Cues       audio.Player
	Difficulty string // recorded with saved scores
	Scale      int    // window pixels per logical pixel, default 1
}

// Window implements ebiten.Game around a registry.Game.
type Window struct {
	game     registry.Game
	cells    *core.Screen
	config   core.RuntimeConfig
	opts     Options
	input    inputSource
	recorder *storage.Recorder

	face      *text.GoXFace
	tiles     *ebiten.Image
	tileRects map[rune]image.Rectangle
}

// NewWindow creates a window for the game and resets it.
func NewWindow(game registry.Game, cfg core.RuntimeConfig, opts Options) *Window {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	sheet, rects := buildTileSheet(CellW, CellH)
	w := &Window{
		game:      game,
		cells:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		opts:      opts,
		input:     liveInput{},
		recorder:  storage.NewRecorder(opts.Store, game.ID(), opts.Difficulty),
		face:      text.NewGoXFace(basicfont.Face7x13),
		tiles:     ebiten.NewImageFromImage(sheet),
		tileRects: rects,
	}
	w.game.Reset(cfg)
	return w
}

// Update runs one simulation tick. Ebitengine calls it at the TPS set in Run.
func (w *Window) Update() error {
	frame, quit := collectInput(w.input)
	if quit {
		return ebiten.Termination
	}

	result := w.game.Step(frame)
	audio.PlayEvents(w.opts.Cues, result.Events)

	rank, err := w.recorder.Observe(result.State)
	if err != nil {
		log.Warn("cannot save score", "game", w.game.ID(), "error", err)
	} else if rank > 0 {
		log.Info("score saved", "game", w.game.ID(), "score", result.State.Score, "rank", rank)
	}
	return nil
}

// Draw renders the cell buffer into the window.
func (w *Window) Draw(dst *ebiten.Image) {
	dst.Fill(skyColor)
	w.game.Render(w.cells)

	for y := 0; y < w.cells.Height(); y++ {
		for x := 0; x < w.cells.Width(); x++ {
			cell := w.cells.GetCell(x, y)
			if cell.Rune == ' ' || cell.Rune == 0 {
				continue
			}
			w.drawCell(dst, x, y, cell)
		}
	}
}

func (w *Window) drawCell(dst *ebiten.Image, x, y int, cell core.Cell) {
	px, py := float64(x*CellW), float64(y*CellH)

	if rect, ok := w.tileRects[cell.Rune]; ok {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(px, py)
		op.ColorScale.ScaleWithColor(colorOf(cell.Color))
		dst.DrawImage(w.tiles.SubImage(rect).(*ebiten.Image), op)
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(px, py+glyphBaseline)
	op.ColorScale.ScaleWithColor(colorOf(cell.Color))
	text.Draw(dst, string(cell.Rune), w.face, op)
}

// Layout keeps the logical screen at the size of the cell grid; Ebitengine
// scales it to the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.cells.Width() * CellW, w.cells.Height() * CellH
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	w := NewWindow(game, cfg, opts)

	ebiten.SetWindowSize(cfg.ScreenW*CellW*w.opts.Scale, cfg.ScreenH*CellH*w.opts.Scale)
	ebiten.SetWindowTitle("flapper - " + game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
