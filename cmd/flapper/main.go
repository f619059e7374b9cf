// flapper is a Flappy Bird-style side-scroller for the terminal and the
// desktop.
//
// Usage:
//
//	flapper list              - List game variants
//	flapper play <variant>    - Play in the terminal
//	flapper window <variant>  - Play in a desktop window
//	flapper menu              - Pick a variant interactively
//	flapper serve             - Start SSH server for remote play
//	flapper scores <variant>  - Show high scores for a variant
//	flapper config            - Print the default game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.flapper/scores.db)
//	--log-file <path>    - Log destination, "-" for stderr (default: ~/.flapper/flapper.log)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapper/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/flapper/internal/games/flappy"
)

const defaultLogPath = "~/.flapper/flapper.log"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string

	logOutput io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logOutput != nil {
		logOutput.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flapper",
	Short: "Flapper - keep the bird in the air",
	Long: `Flapper is a Flappy Bird-style side-scroller. Click or press Space to
flap, thread the bird through the pipe gaps, and stay alive as long as you
can: the score grows with survival time.

Available commands:
  list     - Show all game variants
  play     - Play a variant in the terminal
  window   - Play a variant in a desktop window
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the default game config

Examples:
  flapper list
  flapper play flappy
  flapper window flappy --scale 2
  flapper menu
  flapper serve --ssh :2222
  flapper scores flappy`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLogPath, `Log file ("-" for stderr)`)
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging points the default logger at the log file. The terminal is
// owned by Bubble Tea while a game runs, so logs never go to stdout.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "-" {
		path, err := storage.ExpandHome(flagLogFile)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		logOutput = f
	}

	log.SetDefault(log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flapper",
		Level:           level,
	}))
	return nil
}
