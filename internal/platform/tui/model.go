package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapper/internal/audio"
	"github.com/vovakirdan/flapper/internal/core"
	"github.com/vovakirdan/flapper/internal/registry"
	"github.com/vovakirdan/flapper/internal/storage"
)

// Options holds what a game model needs besides the game itself.
// Every field is optional.
type Options struct {
	Store         *storage.Store
	Cues          audio.Player
	Difficulty    string // recorded with saved scores
	ScreenshotDir string // defaults to ~/.flapper/screenshots

	// Embedded models run inside a session: Esc/B on the home screen,
	// the game-over board or the pause box goes back to the menu.
	Embedded bool
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	recorder   *storage.Recorder
	quitting   bool
	backToMenu bool
	lastShot   string

	tickGen uint64 // generation of this model's tick loop
	resized bool   // size changed during a run; rebuild on the next home tick
	ring    bool   // emit BEL with the next frame
}

// ringer is a cue player whose sound travels inside the rendered frame.
// TakeRing reports and clears a pending ring.
type ringer interface {
	TakeRing() bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		recorder:   storage.NewRecorder(opts.Store, game.ID(), opts.Difficulty),
		tickGen:    nextTickGen(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action := m.keyMapper.MapMouse(msg); action != core.ActionNone {
			m.inputFrame.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.tickGen {
			// Left over from a model this one replaced.
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		path, err := m.saveScreenshot()
		if err != nil {
			log.Warn("screenshot failed", "error", err)
		} else {
			log.Info("screenshot saved", "path", path)
			m.lastShot = path
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.opts.Embedded && m.inputFrame.Has(core.ActionBack) && m.canLeave() {
		m.backToMenu = true
	}

	return m, nil
}

// canLeave reports whether the game may be left without losing a run.
func (m Model) canLeave() bool {
	return m.gameState.Mode != "playing" || m.gameState.Paused
}

// handleResize resizes the screen. The world is rebuilt for the new size
// on the home screen; during a run or on the game-over board the rebuild
// waits until the game is back home so the run is never thrown away.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.atHome() {
		m.rebuild()
	} else {
		m.resized = true
	}

	return m, nil
}

func (m Model) atHome() bool {
	return m.gameState.Mode == "" || m.gameState.Mode == "home"
}

// rebuild resets the game for the current screen size.
func (m *Model) rebuild() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.resized = false
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.ring = false

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	audio.PlayEvents(m.opts.Cues, result.Events)
	if r, ok := m.opts.Cues.(ringer); ok {
		m.ring = r.TakeRing()
	}
	m.recordScore()

	if m.resized && m.atHome() {
		log.Debug("rebuilding world after resize", "game", m.game.ID(), "w", m.config.ScreenW, "h", m.config.ScreenH)
		m.rebuild()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// recordScore saves the score once per game over. Best-effort: the game
// continues regardless.
func (m Model) recordScore() {
	rank, err := m.recorder.Observe(m.gameState)
	if err != nil {
		log.Warn("cannot save score", "game", m.game.ID(), "error", err)
		return
	}
	if rank > 0 {
		log.Info("score saved", "game", m.game.ID(), "score", m.gameState.Score, "rank", rank)
	}
}

// saveScreenshot writes the current frame as plain text and returns its path.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("screenshot: %w", err)
		}
		dir = filepath.Join(home, ".flapper", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	if m.ring {
		// The renderer writes the frame in one piece, so BEL cannot split
		// an escape sequence.
		return "\a" + RenderScreen(m.screen)
	}
	return RenderScreen(m.screen)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Left click flaps
	)

	_, err := p.Run()
	return err
}
