package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapper/internal/core"
	"github.com/vovakirdan/flapper/internal/platform/desktop"
	"github.com/vovakirdan/flapper/internal/registry"
)

var (
	flagScale   int
	flagColumns int
	flagRows    int
)

var windowCmd = &cobra.Command{
	Use:   "window <variant>",
	Short: "Play a variant in a desktop window",
	Long: `Open a desktop window and play the specified variant.

The window shows the same world as the terminal, one character cell per
8x16 block of pixels.

Controls:
  Space/Up/W/Enter/Click - Flap
  P                      - Pause
  R                      - Restart (after game over)
  Q/Esc                  - Close the window

Examples:
  flapper window flappy
  flapper window flappy --scale 2
  flapper window flappy-classic --cols 60 --rows 20`,
	Args: cobra.ExactArgs(1),
	Run:  runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().IntVar(&flagScale, "scale", 1, "Window pixels per logical pixel")
	windowCmd.Flags().IntVar(&flagColumns, "cols", 80, "World width in cells")
	windowCmd.Flags().IntVar(&flagRows, "rows", 24, "World height in cells")
}

func runWindow(_ *cobra.Command, args []string) {
	gameID := args[0]
	mustExist(gameID)

	if flagColumns <= 0 || flagRows <= 0 || flagScale <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --cols, --rows and --scale must be positive")
		os.Exit(1)
	}

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

	cfg := core.RuntimeConfig{
		ScreenW:  flagColumns,
		ScreenH:  flagRows,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store := openStore()
	cues, closeCues := openCues()

	log.Info("opening window", "game", gameID, "cols", flagColumns, "rows", flagRows, "scale", flagScale)
	runErr := desktop.Run(game, cfg, desktop.Options{
		Store:      store,
		Cues:       cues,
		Difficulty: difficulty,
		Scale:      flagScale,
	})

	closeCues()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", runErr)
		os.Exit(1)
	}
}
