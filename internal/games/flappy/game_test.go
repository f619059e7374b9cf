package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     42,
}

// newTestGame builds a game that uses cfg instead of reading config files.
func newTestGame(v Variant, cfg config.FlappyConfig) *Game {
	g := NewVariant(v)
	g.fixed = &cfg
	g.Reset(testRuntime)
	return g
}

// floatingConfig makes the bird fall so slowly that it never reaches the
// ground during a test, and makes every gap taller than the view so pipes
// never collide.
func floatingConfig() config.FlappyConfig {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0.0001
	cfg.Obstacles.GapSize = 18
	return cfg
}

func jump() core.InputFrame {
	return core.InputOf(core.ActionJump)
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func TestGameStartsAtHome(t *testing.T) {
	g := newTestGame(Variants[0], config.DefaultFlappyConfig())

	if got := g.State().Mode; got != "home" {
		t.Fatalf("initial mode = %q, expected home", got)
	}

	startY := g.state.Bird.Y
	for i := 0; i < 100; i++ {
		g.Step(idle())
	}

	s := g.state
	if s.Mode != ModeHome {
		t.Errorf("mode after idle ticks = %v, expected home", s.Mode)
	}
	if s.Bird.Y != startY || s.Bird.Velocity != 0 {
		t.Errorf("bird should hover at home, y=%v v=%v", s.Bird.Y, s.Bird.Velocity)
	}
	if s.Score != 0 {
		t.Errorf("score at home = %d, expected 0", s.Score)
	}
	if s.Pipes.Len() != 0 {
		t.Errorf("no pipes should spawn at home, got %d", s.Pipes.Len())
	}
	if s.Ground.X == 0 {
		t.Error("ground should scroll at home")
	}
}

func TestClickStartsRun(t *testing.T) {
	g := newTestGame(Variants[0], config.DefaultFlappyConfig())

	res := g.Step(jump())
	if res.State.Mode != "playing" {
		t.Fatalf("mode after click = %q, expected playing", res.State.Mode)
	}
	if !res.Has(core.EventModeChange) {
		t.Error("starting a run should report a mode change")
	}
	if res.Has(core.EventFlap) {
		t.Error("the starting click should not flap")
	}
	if g.state.RunTicks != 1 {
		t.Errorf("run ticks = %d, expected the first playing tick to run", g.state.RunTicks)
	}
}

func TestPlayingGravityPerTick(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0.25
	g := newTestGame(Variants[0], cfg)

	g.Step(jump()) // Start; the first playing tick applies gravity once
	for i := 0; i < 3; i++ {
		before := g.state.Bird.Velocity
		g.Step(idle())
		if got := g.state.Bird.Velocity - before; got != 0.25 {
			t.Errorf("tick %d: velocity grew by %v, expected 0.25", i, got)
		}
	}
	if g.state.Bird.Velocity != 1.0 {
		t.Errorf("velocity after 4 playing ticks = %v, expected 1.0", g.state.Bird.Velocity)
	}
}

func TestPlayingJumpOverridesVelocity(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	g := newTestGame(Variants[0], cfg)
	g.Step(jump())
	for i := 0; i < 10; i++ {
		g.Step(idle())
	}

	res := g.Step(jump())
	if !res.Has(core.EventFlap) {
		t.Error("jump should report a flap")
	}
	want := cfg.Physics.JumpImpulse + cfg.Physics.Gravity
	if got := g.state.Bird.Velocity; got != want {
		t.Errorf("velocity after jump tick = %v, expected %v", got, want)
	}
}

func TestScoreIncrementsOncePerInterval(t *testing.T) {
	cfg := floatingConfig()
	g := newTestGame(Variants[0], cfg)
	g.Step(jump())

	points := 0
	for g.state.RunTicks < 200 {
		res := g.Step(idle())
		if res.State.Mode != "playing" {
			t.Fatalf("run ended at tick %d", g.state.RunTicks)
		}
		if res.Has(core.EventPoint) {
			points++
			if g.state.RunTicks%cfg.Scoring.Interval != 0 {
				t.Errorf("point at run tick %d, not a multiple of %d", g.state.RunTicks, cfg.Scoring.Interval)
			}
		}
	}

	if g.state.Score != 200/cfg.Scoring.Interval {
		t.Errorf("score = %d, expected %d", g.state.Score, 200/cfg.Scoring.Interval)
	}
	if points != g.state.Score {
		t.Errorf("point events = %d, score = %d", points, g.state.Score)
	}
}

// runUntilHit steps without input until the run ends.
func runUntilHit(t *testing.T, g *Game) core.StepResult {
	t.Helper()
	for i := 0; i < 1000; i++ {
		res := g.Step(idle())
		if res.Has(core.EventHit) {
			return res
		}
	}
	t.Fatal("bird never hit anything")
	return core.StepResult{}
}

func TestGroundHitEndsRun(t *testing.T) {
	g := newTestGame(Variants[0], config.DefaultFlappyConfig())
	g.Step(jump())

	res := runUntilHit(t, g)
	if !res.State.GameOver || res.State.Mode != "game-over" {
		t.Fatalf("state after hit = %+v, expected game over", res.State)
	}
	if !HitsGround(g.state.Bird, g.state.Ground) {
		t.Error("bird should be on the ground")
	}

	// Nothing moves on the game-over screen
	score, y := g.state.Score, g.state.Bird.Y
	for i := 0; i < 100; i++ {
		g.Step(idle())
	}
	if g.state.Score != score || g.state.Bird.Y != y {
		t.Error("game-over screen should freeze the scene and score")
	}
}

func TestPairHitEndsRun(t *testing.T) {
	cfg := floatingConfig()
	g := newTestGame(Variants[0], cfg)
	g.Step(jump())

	b := g.state.Bird
	g.state.Pipes.Push(PipePair{X: b.Front() + 0.25, Offset: 0, Gap: 1, Width: 6})

	res := g.Step(idle())
	if !res.Has(core.EventHit) || res.State.Mode != "game-over" {
		t.Errorf("bird below a pair's gap should end the run, got %+v", res.State)
	}
}

func TestGameOverClickGoesHome(t *testing.T) {
	g := newTestGame(Variants[0], config.DefaultFlappyConfig())
	g.Step(jump())
	runUntilHit(t, g)

	res := g.Step(jump())
	if res.State.Mode != "home" {
		t.Fatalf("mode after click on game over = %q, expected home", res.State.Mode)
	}
	if g.state.Score != 0 || g.state.Pipes.Len() != 0 {
		t.Error("returning home should reset the scene")
	}
}

func TestRestartFromGameOver(t *testing.T) {
	g := newTestGame(Variants[0], config.DefaultFlappyConfig())
	g.Step(jump())
	runUntilHit(t, g)

	res := g.Step(core.InputOf(core.ActionRestart))
	if res.State.Mode != "playing" {
		t.Fatalf("mode after restart = %q, expected playing", res.State.Mode)
	}
	if g.state.RunTicks != 1 {
		t.Errorf("restart should begin a fresh run, run ticks = %d", g.state.RunTicks)
	}
}

func TestEnteringPlayingResetsScene(t *testing.T) {
	cfg := floatingConfig()
	cfg.Obstacles.SpawnInterval = 10
	g := newTestGame(Variants[0], cfg)
	g.Step(jump())
	for i := 0; i < 60; i++ {
		g.Step(idle())
	}
	if g.state.Pipes.Len() == 0 || g.state.Score == 0 {
		t.Fatal("expected pipes and score before the hit")
	}

	g.state.Bird.Y = float64(g.state.Ground.Y) // Force a ground hit
	g.Step(idle())
	g.Step(core.InputOf(core.ActionRestart))

	s := g.state
	start := float64(cfg.Player.StartY) + cfg.Physics.Gravity
	if s.Score != 0 || s.Pipes.Len() != 0 || s.Bird.Y != start {
		t.Errorf("new run kept old state: score=%d pipes=%d y=%v", s.Score, s.Pipes.Len(), s.Bird.Y)
	}
}

func TestPipesSpawnAtRightEdgeAndEvict(t *testing.T) {
	cfg := floatingConfig()
	cfg.Physics.PipeSpeed = 2
	cfg.Obstacles.SpawnInterval = 100
	g := newTestGame(Variants[0], cfg)
	g.Step(jump())

	for g.state.RunTicks < 99 {
		g.Step(idle())
	}
	if g.state.Pipes.Len() != 0 {
		t.Fatal("no pair should spawn before the interval")
	}

	g.Step(idle()) // Spawn tick: the pair enters at the right edge and moves once
	pairs := g.state.Pipes.Pairs()
	if len(pairs) != 1 || pairs[0].X != float64(testRuntime.ScreenW)-2 {
		t.Fatalf("pairs after spawn = %+v, expected one at x=%d", pairs, testRuntime.ScreenW-2)
	}

	for g.state.RunTicks < 100+testRuntime.ScreenW/2-1 {
		g.Step(idle())
	}
	if x := g.state.Pipes.Pairs()[0].X; x != 0 {
		t.Errorf("pair x after W/2 ticks = %v, expected 0", x)
	}

	g.Step(idle())
	g.Step(idle())
	if g.state.Pipes.Len() != 1 {
		t.Fatal("pair should stay while its right edge is positive")
	}
	g.Step(idle())
	if g.state.Pipes.Len() != 0 {
		t.Error("pair should be evicted once its right edge reaches 0")
	}
}

func TestQueueNeverHoldsOffscreenPairs(t *testing.T) {
	cfg := floatingConfig()
	cfg.Physics.Gravity = 1e-7
	cfg.Obstacles.SpawnInterval = 25
	cfg.Physics.PipeSpeed = 1.5
	g := newTestGame(Variants[0], cfg)
	g.Step(jump())

	maxLen := 0
	for i := 0; i < 2000; i++ {
		g.Step(idle())
		pairs := g.state.Pipes.Pairs()
		maxLen = max(maxLen, len(pairs))
		for j, p := range pairs {
			if p.Right() < 0 {
				t.Fatalf("tick %d: pair with right edge %v still queued", i, p.Right())
			}
			if j > 0 && pairs[j-1].X >= p.X {
				t.Fatalf("tick %d: queue out of spawn order", i)
			}
		}
	}
	if maxLen == 0 {
		t.Error("expected pairs to spawn")
	}
}

func TestPairOffsetsWithinMargins(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	g := newTestGame(Variants[0], cfg)
	s := g.state

	for i := 0; i < 500; i++ {
		s.spawnPair()
	}
	hi := s.Ground.Y - cfg.Obstacles.BottomMargin - cfg.Obstacles.GapSize
	for _, p := range s.Pipes.Pairs() {
		if p.Offset < cfg.Obstacles.TopMargin || p.Offset > hi {
			t.Fatalf("offset %d outside [%d, %d]", p.Offset, cfg.Obstacles.TopMargin, hi)
		}
	}
}

func TestPauseFreezesRun(t *testing.T) {
	g := newTestGame(Variants[0], floatingConfig())
	g.Step(jump())
	g.Step(idle())

	res := g.Step(core.InputOf(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("P should pause a run")
	}
	ticks, y := g.state.RunTicks, g.state.Bird.Y
	for i := 0; i < 50; i++ {
		g.Step(jump())
	}
	if g.state.RunTicks != ticks || g.state.Bird.Y != y {
		t.Error("paused run should not advance")
	}

	res = g.Step(core.InputOf(core.ActionPause))
	if res.State.Paused {
		t.Error("second P should resume")
	}
}

func TestPauseIgnoredAtHome(t *testing.T) {
	g := newTestGame(Variants[0], config.DefaultFlappyConfig())
	if res := g.Step(core.InputOf(core.ActionPause)); res.State.Paused {
		t.Error("home screen cannot be paused")
	}
}

func TestDeterminism(t *testing.T) {
	cfg := floatingConfig()
	cfg.Obstacles.GapSize = 8
	cfg.Obstacles.SpawnInterval = 20

	run := func() []int {
		g := newTestGame(Variants[0], cfg)
		g.Step(jump())
		for i := 0; i < 80; i++ {
			g.Step(idle())
		}
		var offsets []int
		for _, p := range g.state.Pipes.Pairs() {
			offsets = append(offsets, p.Offset)
		}
		return offsets
	}

	a, b := run(), run()
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("runs produced %d and %d pairs", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("pair %d offset differs: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestAnimationCycles(t *testing.T) {
	cfg := floatingConfig()
	g := newTestGame(Variants[0], cfg)

	seen := map[core.Rect]bool{}
	for i := 0; i < 4*cfg.Animation.Interval; i++ {
		g.Step(idle())
		r, ok := g.state.Bird.Region()
		if !ok {
			t.Fatal("bird should have a frame")
		}
		seen[r] = true
	}
	if len(seen) != 3 {
		t.Errorf("saw %d distinct frames, expected 3", len(seen))
	}
}

func TestClassicVariant(t *testing.T) {
	g := newTestGame(Variants[1], config.DefaultFlappyConfig())
	if g.ID() != "flappy-classic" {
		t.Fatalf("ID() = %q", g.ID())
	}

	g.Step(jump())
	res := runUntilHit(t, g)
	if res.State.Mode != "home" {
		t.Errorf("classic hit should return home, got %q", res.State.Mode)
	}

	s := g.state
	if s.Ground.X != 0 {
		t.Error("classic ground should not scroll")
	}
	if s.Bird.Frame != 0 {
		t.Error("classic bird should not animate")
	}
	if s.Score != 0 {
		t.Error("classic variant has no score")
	}
}

func TestClassicVariantHasNoPipesOrScore(t *testing.T) {
	g := newTestGame(Variants[1], floatingConfig())
	g.Step(jump())
	for i := 0; i < 300; i++ {
		res := g.Step(idle())
		if res.Has(core.EventPoint) {
			t.Fatal("classic variant should not score")
		}
	}
	if g.state.Pipes.Len() != 0 {
		t.Error("classic variant should not spawn pipes")
	}
}

func TestRenderScreens(t *testing.T) {
	g := newTestGame(Variants[0], config.DefaultFlappyConfig())
	dst := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)

	g.Render(dst)
	if !strings.Contains(dst.String(), "F L A P P E R") {
		t.Error("home screen should show the banner")
	}

	g.Step(jump())
	g.state.Score = 37
	g.Render(dst)
	if !strings.Contains(dst.Row(1), "37") {
		t.Errorf("playing screen should show the score, row 1 = %q", dst.Row(1))
	}
	if strings.Contains(dst.String(), "F L A P P E R") {
		t.Error("banner should be gone while playing")
	}

	g.state.Bird.Y = float64(g.state.Ground.Y)
	g.Step(idle())
	g.Render(dst)
	out := dst.String()
	if !strings.Contains(out, "GAME  OVER") || !strings.Contains(out, "score: 37") {
		t.Errorf("game-over board should show the final score:\n%s", out)
	}
}

func TestRenderPaused(t *testing.T) {
	g := newTestGame(Variants[0], floatingConfig())
	g.Step(jump())
	g.Step(core.InputOf(core.ActionPause))

	dst := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(dst)
	if !strings.Contains(dst.String(), "PAUSED") {
		t.Error("paused run should show the pause box")
	}
}

func TestRenderDrawsBirdAndGround(t *testing.T) {
	g := newTestGame(Variants[0], config.DefaultFlappyConfig())
	dst := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(dst)

	s := g.state
	if dst.Get(s.Bird.X+1, core.Floor(s.Bird.Y)+1) == ' ' {
		t.Error("bird should be drawn at its position")
	}
	for x := 0; x < dst.Width(); x++ {
		if dst.Get(x, s.Ground.Y) == ' ' {
			t.Fatalf("ground row has a hole at x=%d", x)
		}
	}
}
