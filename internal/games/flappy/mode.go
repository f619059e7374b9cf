package flappy

import "github.com/vovakirdan/flapper/internal/core"

// ModeKind names one of the screens the game can be on.
type ModeKind int

const (
	ModeHome ModeKind = iota
	ModePlaying
	ModeGameOver
)

// String returns the mode name reported in core.GameState.
func (k ModeKind) String() string {
	switch k {
	case ModeHome:
		return "home"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Mode is one screen of the game. Update and Click return the mode that
// should be active afterwards; returning their own kind keeps it.
type Mode interface {
	Kind() ModeKind
	// Enter runs when the mode becomes active.
	Enter(s *State)
	// Update advances one tick.
	Update(s *State) ModeKind
	// Draw renders the mode into a cleared screen.
	Draw(s *State, dst *core.Screen)
	// Click handles the jump action.
	Click(s *State) ModeKind
}

// homeMode shows an idle scene under the title banner until the first click.
type homeMode struct{}

func (homeMode) Kind() ModeKind { return ModeHome }

func (homeMode) Enter(s *State) {
	s.resetScene()
}

func (homeMode) Update(s *State) ModeKind {
	if s.cfg.Features.ScrollingGround {
		s.Ground.Scroll(s.groundSpeed())
	}
	s.animate()
	return ModeHome
}

func (homeMode) Draw(s *State, dst *core.Screen) {
	drawScene(s, dst)
	drawBanner(s, dst)
}

func (homeMode) Click(*State) ModeKind {
	return ModePlaying
}

// playingMode runs the simulation.
type playingMode struct{}

func (playingMode) Kind() ModeKind { return ModePlaying }

func (playingMode) Enter(s *State) {
	s.resetScene()
}

func (playingMode) Update(s *State) ModeKind {
	s.RunTicks++
	f := s.cfg.Features

	if f.ScrollingGround {
		s.Ground.Scroll(s.groundSpeed())
	}

	if f.Obstacles {
		if s.RunTicks >= s.nextSpawn {
			s.spawnPair()
			s.nextSpawn = s.RunTicks + s.spawnInterval()
		}
		s.Pipes.Advance(-s.speed())
		s.Pipes.Evict()
	}

	s.Bird.Fall(s.cfg.Physics.Gravity, s.cfg.Physics.MaxFallSpeed)
	s.animate()

	if HitsGround(s.Bird, s.Ground) || (f.Obstacles && HitsAnyPair(s.Bird, &s.Pipes)) {
		s.emit(core.EventHit)
		if f.GameOverScreen {
			return ModeGameOver
		}
		return ModeHome
	}

	if f.Scoring && ScoreDue(s.RunTicks, s.cfg.Scoring.Interval) {
		s.Score++
		s.emit(core.EventPoint)
	}
	return ModePlaying
}

func (playingMode) Draw(s *State, dst *core.Screen) {
	drawScene(s, dst)
	if s.cfg.Features.Scoring {
		drawScore(s, dst)
	}
	if s.Paused {
		drawMessage(dst, "PAUSED", "press p to resume")
	}
}

func (playingMode) Click(s *State) ModeKind {
	s.Bird.Jump(s.cfg.Physics.JumpImpulse)
	s.emit(core.EventFlap)
	return ModePlaying
}

// gameOverMode freezes the last scene under the score board.
type gameOverMode struct{}

func (gameOverMode) Kind() ModeKind { return ModeGameOver }

func (gameOverMode) Enter(*State) {}

func (gameOverMode) Update(*State) ModeKind {
	return ModeGameOver
}

func (gameOverMode) Draw(s *State, dst *core.Screen) {
	drawScene(s, dst)
	drawBoard(s, dst)
}

func (gameOverMode) Click(*State) ModeKind {
	return ModeHome
}
