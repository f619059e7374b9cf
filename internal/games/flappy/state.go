package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flapper/internal/assets"
	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
)

// State is everything one game session simulates. Modes read and write it
// directly; nothing else holds game data.
type State struct {
	Frame    int // Ticks since Reset, drives animation
	RunTicks int // Ticks since the current run started, drives spawning and score
	Mode     ModeKind
	Paused   bool

	Bird   Bird
	Ground Ground
	Pipes  PipeQueue
	Score  int

	ViewW, ViewH int

	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager
	sheet      *assets.Sheet
	pipes      pipeSprites
	rng        *rand.Rand
	nextSpawn  int // RunTicks value at which the next pair spawns
	events     []core.Event
}

// newState builds a state for the given view, config and sprites.
func newState(runtime core.RuntimeConfig, cfg config.FlappyConfig, sheet *assets.Sheet) *State {
	s := &State{
		ViewW:      runtime.ScreenW,
		ViewH:      runtime.ScreenH,
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		sheet:      sheet,
		rng:        rand.New(rand.NewSource(runtime.Seed)),
	}
	s.pipes.topCap, _ = sheet.Region(assets.PipeTopCap)
	s.pipes.body, _ = sheet.Region(assets.PipeBody)
	s.pipes.bottomCap, _ = sheet.Region(assets.PipeBottomCap)
	s.resetScene()
	return s
}

// resetScene puts the bird, ground, obstacles and score back to their
// starting values. The RNG and frame counter keep running.
func (s *State) resetScene() {
	groundH := core.Clamp(s.cfg.Ground.Height, 1, core.Max(s.ViewH-1, 1))
	tile, _ := s.sheet.Region(assets.GroundTile)
	s.Ground = Ground{
		Y:    s.ViewH - groundH,
		H:    groundH,
		Tile: tile,
	}

	p := s.cfg.Player
	s.Bird = Bird{
		X:      p.X,
		Y:      float64(core.Clamp(p.StartY, 0, core.Max(s.Ground.Y-p.Height-1, 0))),
		W:      p.Width,
		H:      p.Height,
		Frames: s.sheet.Animation(assets.BirdAnimation),
	}

	s.Pipes.Clear()
	s.Score = 0
	s.RunTicks = 0
	s.nextSpawn = s.spawnInterval()
}

// spawnInterval is the tick gap to the next pair at the current difficulty.
func (s *State) spawnInterval() int {
	return s.difficulty.SpawnInterval(s.cfg.Obstacles.SpawnInterval, s.Score, s.RunTicks)
}

// speed is how far obstacles move per tick at the current difficulty.
func (s *State) speed() float64 {
	return s.difficulty.Speed(s.cfg.Physics.PipeSpeed, s.Score, s.RunTicks)
}

// groundSpeed is how far the floor scrolls per tick. It follows the same
// difficulty scaling as the obstacles.
func (s *State) groundSpeed() float64 {
	return s.difficulty.Speed(s.cfg.Ground.ScrollSpeed, s.Score, s.RunTicks)
}

// spawnPair appends a pair at the right edge of the view with a random gap
// offset between the top margin and the lowest position that still leaves
// the bottom margin above the ground.
func (s *State) spawnPair() {
	gap := s.difficulty.GapSize(s.cfg.Obstacles.GapSize, s.Score, s.RunTicks)
	lo := s.cfg.Obstacles.TopMargin
	hi := s.Ground.Y - s.cfg.Obstacles.BottomMargin - gap
	if hi < lo {
		hi = lo // View too short for the margins
	}

	s.Pipes.Push(PipePair{
		X:      float64(s.ViewW),
		Offset: lo + s.rng.Intn(hi-lo+1),
		Gap:    gap,
		Width:  s.cfg.Obstacles.PipeWidth,
	})
}

// animate advances the bird frame on animation ticks.
func (s *State) animate() {
	if s.cfg.Features.Animation && s.Frame%s.cfg.Animation.Interval == 0 {
		s.Bird.Animate()
	}
}

// emit records an event for the current tick.
func (s *State) emit(kind core.EventKind) {
	s.events = append(s.events, core.Event{Kind: kind, Frame: s.Frame})
}
