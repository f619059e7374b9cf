// Package assets loads the text sprite sheet that every frontend draws from.
//
// A sheet is a YAML document with four parts: art rows (the runes), paint
// rows (one palette key per art cell), a palette mapping keys to color names,
// and named regions. Animations are ordered lists of region names.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flapper/internal/core"
)

// Region and animation names used by the game.
const (
	BirdAnimation = "bird"
	PipeTopCap    = "pipe_top_cap"
	PipeBody      = "pipe_body"
	PipeBottomCap = "pipe_bottom_cap"
	GroundTile    = "ground"
	Skyline       = "skyline"
	HomeBanner    = "home_banner"
	GameOverBoard = "game_over_board"
)

var (
	// ErrRegionOutOfBounds is returned when a region does not fit in the art.
	ErrRegionOutOfBounds = errors.New("assets: region out of bounds")
	// ErrUnknownRegion is returned when an animation names a missing region.
	ErrUnknownRegion = errors.New("assets: unknown region")
)

//go:embed sprites.yaml
var defaultSheetYAML []byte

// Sheet is a sprite sheet plus the named regions cut from it.
type Sheet struct {
	*core.SpriteSheet
	regions    map[string]core.Rect
	animations map[string][]core.Rect
}

// sheetFile mirrors the YAML layout.
type sheetFile struct {
	Palette    map[string]string   `yaml:"palette"`
	Art        []string            `yaml:"art"`
	Paint      []string            `yaml:"paint"`
	Regions    map[string][4]int   `yaml:"regions"`
	Animations map[string][]string `yaml:"animations"`
}

// Parse decodes and validates a sheet document.
func Parse(data []byte) (*Sheet, error) {
	var f sheetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("assets: parse sheet: %w", err)
	}

	palette := make(map[rune]core.Color, len(f.Palette))
	for key, name := range f.Palette {
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("assets: palette key %q must be a single character", key)
		}
		c, ok := core.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("assets: palette key %q: unknown color %q", key, name)
		}
		r, _ := utf8.DecodeRuneInString(key)
		palette[r] = c
	}

	sprites, err := core.NewSpriteSheet(f.Art, f.Paint, palette)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}

	sheet := &Sheet{
		SpriteSheet: sprites,
		regions:     make(map[string]core.Rect, len(f.Regions)),
		animations:  make(map[string][]core.Rect, len(f.Animations)),
	}

	bounds := sprites.Bounds()
	for name, v := range f.Regions {
		r := core.NewRect(v[0], v[1], v[2], v[3])
		if !bounds.ContainsRect(r) {
			return nil, fmt.Errorf("%w: %s %+v outside %dx%d sheet", ErrRegionOutOfBounds, name, r, bounds.W, bounds.H)
		}
		sheet.regions[name] = r
	}

	for name, frames := range f.Animations {
		rects := make([]core.Rect, 0, len(frames))
		for _, frame := range frames {
			r, ok := sheet.regions[frame]
			if !ok {
				return nil, fmt.Errorf("%w: animation %s references %q", ErrUnknownRegion, name, frame)
			}
			rects = append(rects, r)
		}
		sheet.animations[name] = rects
	}

	return sheet, nil
}

// Load reads a sheet from disk.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	sheet, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sheet, nil
}

var (
	defaultOnce  sync.Once
	defaultSheet *Sheet
)

// Default returns the embedded sheet. It is parsed once and shared; sheets
// are read-only after parsing.
func Default() *Sheet {
	defaultOnce.Do(func() {
		sheet, err := Parse(defaultSheetYAML)
		if err != nil {
			panic(fmt.Sprintf("assets: embedded sheet is invalid: %v", err))
		}
		defaultSheet = sheet
	})
	return defaultSheet
}

// LoadOrDefault loads a custom sheet, falling back to the embedded one with
// a warning when path is empty or unusable.
func LoadOrDefault(path string) *Sheet {
	if path == "" {
		return Default()
	}
	sheet, err := Load(path)
	if err != nil {
		log.Warn("using built-in sprites", "error", err)
		return Default()
	}
	return sheet
}

// Region returns a named region. Missing regions report false and callers
// skip drawing them.
func (s *Sheet) Region(name string) (core.Rect, bool) {
	r, ok := s.regions[name]
	return r, ok
}

// Animation returns the frame table for a named animation, or nil.
func (s *Sheet) Animation(name string) []core.Rect {
	return s.animations[name]
}
