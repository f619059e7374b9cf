package flappy

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapper/internal/assets"
	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
)

// Game adapts the mode machine to the registry.Game interface.
type Game struct {
	variant Variant
	state   *State
	modes   map[ModeKind]Mode
	active  Mode
	fixed   *config.FlappyConfig // Used instead of loading from disk when set
}

// New creates the full-featured game.
func New() *Game {
	return NewVariant(Variants[0])
}

// NewVariant creates a game for the given variant. The game is not usable
// until Reset is called.
func NewVariant(v Variant) *Game {
	return &Game{
		variant: v,
		modes: map[ModeKind]Mode{
			ModeHome:     homeMode{},
			ModePlaying:  playingMode{},
			ModeGameOver: gameOverMode{},
		},
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset loads configuration and sprites and shows the home screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg := g.loadConfig()
	if g.variant.Classic {
		cfg.Features = config.ClassicFeatures()
	}

	g.state = newState(runtime, cfg, assets.LoadOrDefault(spritesPath))
	g.active = g.modes[ModeHome]
	g.state.Mode = ModeHome
	g.active.Enter(g.state)
}

func (g *Game) loadConfig() config.FlappyConfig {
	if g.fixed != nil {
		return *g.fixed
	}

	cfg, err := config.LoadFlappy(configPath)
	if err != nil {
		log.Warn("using default game config", "error", err)
		cfg = config.DefaultFlappyConfig()
	}
	if difficultyPreset != "" {
		config.ApplyFlappyPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Step advances the game by one tick. Input is handled before the active
// mode updates: pause first, then restart, then the jump click.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.state
	s.events = nil

	if in.Has(core.ActionPause) && s.Mode == ModePlaying {
		s.Paused = !s.Paused
	}
	if s.Paused {
		return g.result()
	}

	if in.Has(core.ActionRestart) && s.Mode == ModeGameOver {
		g.switchTo(ModePlaying)
	}
	if in.Has(core.ActionJump) {
		g.switchTo(g.active.Click(s))
	}

	s.Frame++
	g.switchTo(g.active.Update(s))

	return g.result()
}

// switchTo activates the given mode if it is not already active.
func (g *Game) switchTo(kind ModeKind) {
	if kind == g.active.Kind() {
		return
	}
	log.Debug("mode change", "game", g.variant.ID, "from", g.active.Kind(), "to", kind, "score", g.state.Score)

	g.active = g.modes[kind]
	g.state.Mode = kind
	g.state.Paused = false
	g.active.Enter(g.state)
	g.state.emit(core.EventModeChange)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.state.events}
}

// Render draws the active mode.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.active.Draw(g.state, dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.state
	return core.GameState{
		Score:    s.Score,
		GameOver: s.Mode == ModeGameOver,
		Paused:   s.Paused,
		Mode:     s.Mode.String(),
	}
}
