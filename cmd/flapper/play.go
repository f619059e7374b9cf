package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flapper/internal/assets"
	"github.com/vovakirdan/flapper/internal/audio"
	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
	"github.com/vovakirdan/flapper/internal/games/flappy"
	"github.com/vovakirdan/flapper/internal/platform/tui"
	"github.com/vovakirdan/flapper/internal/registry"
	"github.com/vovakirdan/flapper/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSprites    string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant in the terminal",
	Long: `Start playing the specified variant in the terminal.

Controls:
  Space/Up/W/Enter/Click - Flap (and start a run from the home screen)
  P                      - Pause
  R                      - Restart (after game over)
  Ctrl+S                 - Save a text screenshot
  Q/Ctrl+C               - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, constant speed, gap and spawn interval

Examples:
  flapper play flappy
  flapper play flappy --difficulty hard
  flapper play flappy-classic --mute
  flapper play flappy --config ./my-flappy.yaml --sprites ./my-sprites.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags that tune a game on cmd.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagSprites, "sprites", "", "Path to custom sprite sheet YAML")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound cues")
}

// prepareGames validates the game flags and hands them to the game package.
// It returns the difficulty label stored with scores.
func prepareGames() (string, error) {
	var preset config.DifficultyPreset
	if flagDifficulty != "" {
		p, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return "", err
		}
		preset = p
	}

	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return "", err
	}
	if flagSprites != "" {
		if _, err := assets.Load(flagSprites); err != nil {
			return "", err
		}
	}

	flappy.SetConfigPath(flagConfig)
	flappy.SetSpritesPath(flagSprites)
	flappy.SetDifficultyPreset(flagDifficulty)
	return config.DifficultyLabel(cfg, preset), nil
}

// terminalConfig sizes the world to the terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. The game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		log.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// openCues returns the local sound player and a function that releases it.
func openCues() (audio.Player, func()) {
	if flagMute {
		return audio.Nop{}, func() {}
	}
	sp := audio.NewSpeaker()
	if err := sp.Init(); err != nil {
		log.Warn("sound disabled", "error", err)
		return audio.Nop{}, func() {}
	}
	return sp, sp.Close
}

// mustExist exits when id is not a registered variant.
func mustExist(id string) {
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'flapper list' to see available variants.")
		os.Exit(1)
	}
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]
	mustExist(gameID)

	difficulty, err := prepareGames()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	cues, closeCues := openCues()

	log.Info("starting game", "game", gameID, "difficulty", difficulty, "fps", flagFPS)
	runErr := tui.Run(game, terminalConfig(), tui.Options{
		Store:      store,
		Cues:       cues,
		Difficulty: difficulty,
	})

	closeCues()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
