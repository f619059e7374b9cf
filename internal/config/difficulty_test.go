package config

import "testing"

func testDifficulty(enabled bool) DifficultyConfig {
	return DifficultyConfig{
		Enabled:      enabled,
		InitialLevel: 0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling: ScalingConfig{
			SpeedMultiplier:   1.0,
			GapReduction:      4,
			IntervalReduction: 40,
		},
	}
}

func TestDifficultyDisabledKeepsBaseValues(t *testing.T) {
	d := NewDifficultyManager(testDifficulty(false))

	if got := d.Speed(0.5, 1000, 1000); got != 0.5 {
		t.Errorf("Speed = %v, expected base 0.5", got)
	}
	if got := d.GapSize(8, 1000, 1000); got != 8 {
		t.Errorf("GapSize = %d, expected base 8", got)
	}
	if got := d.SpawnInterval(90, 1000, 1000); got != 90 {
		t.Errorf("SpawnInterval = %d, expected base 90", got)
	}
}

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(testDifficulty(true))

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0},
		{50, 0.5},
		{100, 1},
		{500, 1}, // clamped
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.expected {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	d.SetInitialLevel(0.5)
	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level with initial 0.5 = %v, expected 0.5", got)
	}
	if got := d.Level(100, 0); got != 1 {
		t.Errorf("Level at max = %v, expected 1", got)
	}
}

func TestDifficultyClampsConfiguredInitialLevel(t *testing.T) {
	tests := []struct {
		initial float64
		want    float64
	}{
		{-0.5, 0},
		{0.3, 0.3},
		{1.5, 1},
	}

	for _, tc := range tests {
		cfg := testDifficulty(true)
		cfg.InitialLevel = tc.initial
		d := NewDifficultyManager(cfg)

		if got := d.Level(0, 0); got != tc.want {
			t.Errorf("initial %v: Level(0) = %v, expected %v", tc.initial, got, tc.want)
		}
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := testDifficulty(true)
	cfg.Progression = ProgressionConfig{Type: "time", MaxAt: 600}
	d := NewDifficultyManager(cfg)

	if got := d.Level(99, 300); got != 0.5 {
		t.Errorf("Level at half time = %v, expected 0.5", got)
	}
}

func TestDifficultyScaling(t *testing.T) {
	d := NewDifficultyManager(testDifficulty(true))

	if got := d.Speed(0.5, 100, 0); got != 1.0 {
		t.Errorf("Speed at max = %v, expected 1.0", got)
	}
	if got := d.GapSize(8, 100, 0); got != 4 {
		t.Errorf("GapSize at max = %d, expected 4", got)
	}
	if got := d.GapSize(6, 100, 0); got != minGapSize {
		t.Errorf("GapSize should not drop below %d, got %d", minGapSize, got)
	}
	if got := d.GapSize(3, 100, 0); got != 3 {
		t.Errorf("GapSize below the floor stays at base, got %d", got)
	}
	if got := d.SpawnInterval(90, 100, 0); got != 50 {
		t.Errorf("SpawnInterval at max = %d, expected 50", got)
	}
	if got := d.SpawnInterval(40, 100, 0); got != minSpawnInterval {
		t.Errorf("SpawnInterval should not drop below %d, got %d", minSpawnInterval, got)
	}
}
