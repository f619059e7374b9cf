// Package registry maps variant IDs to game constructors. Each variant
// registers itself from init, and the front ends (CLI, menu, scoreboard,
// SSH sessions) discover variants here instead of importing them.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/flapper/internal/core"
)

// ErrUnknownGame is returned by Create for an ID no variant registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is one playable variant. It is a pure simulation: the front end
// owns the clock, turns keys and clicks into an InputFrame, draws the
// screen it renders into and plays the cues of the events it reports.
type Game interface {
	// ID is the variant key used on the command line and in the scores
	// table, e.g. "flappy-classic".
	ID() string

	// Title is shown in the menu and on the scoreboard.
	Title() string

	// Reset builds a fresh world for the screen size and seed in cfg and
	// shows the home screen. Front ends call it on start and after a
	// resize once the game is back home.
	Reset(cfg core.RuntimeConfig)

	// Step applies the actions queued since the last tick, then advances
	// the active mode by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the active mode into dst.
	Render(dst *core.Screen)

	// State reports score, mode and pause without stepping.
	State() core.GameState
}

// GameInfo describes a registered variant for menus and listings.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new, not yet Reset, game of one variant.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu       sync.RWMutex
	variants = map[string]entry{}
)

// Register adds a variant. The title is read once from a throwaway
// instance. Registering the same ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := variants[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	variants[id] = entry{
		info:    GameInfo{ID: id, Title: f().Title()},
		factory: f,
	}
}

// List returns every registered variant ordered by ID, so the menu and
// the scoreboard tabs keep a stable order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(variants))
	for _, e := range variants {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Create builds a new game of the variant id. Unknown IDs give an error
// wrapping ErrUnknownGame.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := variants[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether a variant is registered under id.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
