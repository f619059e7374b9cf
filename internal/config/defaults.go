package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in tuning. It matches the embedded
// defaults/flappy.yaml and is used as the base that YAML files override.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      0.06,
			JumpImpulse:  -0.9,
			MaxFallSpeed: 0,
			PipeSpeed:    0.5,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:     6,
			GapSize:       8,
			SpawnInterval: 90,
			TopMargin:     2,
			BottomMargin:  2,
		},
		Player: FlappyPlayer{
			X:      10,
			StartY: 5,
			Width:  4,
			Height: 2,
		},
		Ground: FlappyGround{
			Height:      2,
			ScrollSpeed: 0.5,
		},
		Scoring: FlappyScoring{
			Interval: 20,
		},
		Animation: FlappyAnimation{
			Interval: 10,
		},
		Features: FlappyFeatures{
			Animation:       true,
			ScrollingGround: true,
			Obstacles:       true,
			Scoring:         true,
			GameOverScreen:  true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				GapReduction:      3,
				IntervalReduction: 40,
			},
		},
	}
}

// ClassicFeatures returns the feature set of the first playable build:
// a static floor, no obstacles, no score, and a hit that returns home.
func ClassicFeatures() FlappyFeatures {
	return FlappyFeatures{}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
