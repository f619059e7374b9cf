// Package flappy implements a Flappy Bird-style side-scroller.
// The player keeps a bird aloft with clicks and threads it through gaps in
// pipe pairs. The score grows with survival time.
//
// The game is a small state machine over three modes (home, playing, game
// over) that share one State.
package flappy

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/registry"
)

// Variant is one registered build of the game.
type Variant struct {
	ID      string
	Title   string
	Classic bool // Static floor, no pipes, no score, a hit returns home
}

// Variants lists every registered build, full-featured first.
var Variants = []Variant{
	{ID: "flappy", Title: "Flappy Bird"},
	{ID: "flappy-classic", Title: "Flappy Bird Classic", Classic: true},
}

// Settings applied on every Reset, set once by the CLI before any game
// starts.
var (
	configPath       string
	spritesPath      string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetSpritesPath sets a custom sprite sheet file.
func SetSpritesPath(path string) {
	spritesPath = path
}

// SetDifficultyPreset sets the difficulty preset. An unknown name keeps the
// preset from the config file.
func SetDifficultyPreset(preset string) {
	if preset == "" {
		difficultyPreset = ""
		return
	}
	p, err := config.ParsePreset(preset)
	if err != nil {
		log.Warn("ignoring difficulty", "error", err)
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return NewVariant(v)
		})
	}
}
