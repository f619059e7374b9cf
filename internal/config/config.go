// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// FlappyConfig contains all tuning for the side-scroller. World units are
// screen cells and time is measured in ticks.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player"`
	Ground     FlappyGround     `yaml:"ground"`
	Scoring    FlappyScoring    `yaml:"scoring"`
	Animation  FlappyAnimation  `yaml:"animation"`
	Features   FlappyFeatures   `yaml:"features"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines the per-tick motion constants.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`        // Added to velocity every playing tick
	JumpImpulse  float64 `yaml:"jump_impulse"`   // Velocity set by a jump (negative is up)
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal velocity, 0 = unlimited
	PipeSpeed    float64 `yaml:"pipe_speed"`     // Cells per tick obstacles move left
}

// FlappyObstacles defines obstacle pair parameters.
type FlappyObstacles struct {
	PipeWidth     int `yaml:"pipe_width"`
	GapSize       int `yaml:"gap_size"`
	SpawnInterval int `yaml:"spawn_interval"` // Ticks between spawns
	TopMargin     int `yaml:"top_margin"`
	BottomMargin  int `yaml:"bottom_margin"`
}

// FlappyPlayer defines the sprite's placement and size.
type FlappyPlayer struct {
	X      int `yaml:"x"`
	StartY int `yaml:"start_y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FlappyGround defines the scrolling floor strip.
type FlappyGround struct {
	Height      int     `yaml:"height"`
	ScrollSpeed float64 `yaml:"scroll_speed"`
}

// FlappyScoring defines how fast the time-based score grows.
type FlappyScoring struct {
	Interval int `yaml:"interval"` // Ticks per point
}

// FlappyAnimation defines how fast the sprite cycles its frames.
type FlappyAnimation struct {
	Interval int `yaml:"interval"` // Ticks per animation frame
}

// FlappyFeatures toggles the behaviours that distinguish game variants.
type FlappyFeatures struct {
	Animation       bool `yaml:"animation"`
	ScrollingGround bool `yaml:"scrolling_ground"`
	Obstacles       bool `yaml:"obstacles"`
	Scoring         bool `yaml:"scoring"`
	GameOverScreen  bool `yaml:"game_over_screen"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	GapReduction      int     `yaml:"gap_reduction"`      // Gap size reduction at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // Spawn interval reduction at max difficulty
}

// Validate checks that every interval and size is usable.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpImpulse < 0, "physics.jump_impulse must be negative, got %v", c.Physics.JumpImpulse)
	check(c.Physics.MaxFallSpeed >= 0, "physics.max_fall_speed must not be negative, got %v", c.Physics.MaxFallSpeed)
	check(c.Physics.PipeSpeed > 0, "physics.pipe_speed must be positive, got %v", c.Physics.PipeSpeed)

	check(c.Obstacles.PipeWidth > 0, "obstacles.pipe_width must be positive, got %d", c.Obstacles.PipeWidth)
	check(c.Obstacles.GapSize > 0, "obstacles.gap_size must be positive, got %d", c.Obstacles.GapSize)
	check(c.Obstacles.SpawnInterval > 0, "obstacles.spawn_interval must be positive, got %d", c.Obstacles.SpawnInterval)
	check(c.Obstacles.TopMargin >= 0, "obstacles.top_margin must not be negative, got %d", c.Obstacles.TopMargin)
	check(c.Obstacles.BottomMargin >= 0, "obstacles.bottom_margin must not be negative, got %d", c.Obstacles.BottomMargin)

	check(c.Player.Width > 0, "player.width must be positive, got %d", c.Player.Width)
	check(c.Player.Height > 0, "player.height must be positive, got %d", c.Player.Height)

	check(c.Ground.Height > 0, "ground.height must be positive, got %d", c.Ground.Height)
	check(c.Ground.ScrollSpeed >= 0, "ground.scroll_speed must not be negative, got %v", c.Ground.ScrollSpeed)

	check(c.Scoring.Interval > 0, "scoring.interval must be positive, got %d", c.Scoring.Interval)
	check(c.Animation.Interval > 0, "animation.interval must be positive, got %d", c.Animation.Interval)

	d := c.Difficulty
	check(d.InitialLevel >= 0 && d.InitialLevel <= 1, "difficulty.initial_level must be in [0, 1], got %v", d.InitialLevel)
	switch d.Progression.Type {
	case "", "none", "score", "time":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not score, time or none", d.Progression.Type))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name given on the command line.
// An empty name selects the fixed preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// DifficultyLabel names the difficulty a run is played at, for the scores
// table. Without a preset a config whose progression is off plays like the
// fixed preset; one with progression of its own is "custom".
func DifficultyLabel(cfg FlappyConfig, preset DifficultyPreset) string {
	if preset != "" {
		return string(preset)
	}
	if NewDifficultyManager(cfg.Difficulty).IsEnabled() {
		return "custom"
	}
	return string(DifficultyFixed)
}
