package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapper/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in game config as YAML.

Save it as ~/.flapper/configs/flappy.yaml (or ./configs/flappy.yaml) and edit
it to change physics, pipes, scoring or difficulty. Fields you leave out
keep their defaults.

Examples:
  flapper config > ~/.flapper/configs/flappy.yaml
  flapper play flappy --config ./flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
