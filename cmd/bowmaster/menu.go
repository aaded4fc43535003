package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bowmaster/internal/config"
	"github.com/vovakirdan/bowmaster/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, then start a duel",
	Long: `Show the difficulty presets applied to the current config, then start
a duel with the chosen one.

Controls:
  Up/Down      - Navigate
  Enter/Space  - Play
  Q/Esc        - Quit

Examples:
  bowmaster menu
  bowmaster menu --config ./my-bowmaster.yaml`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) error {
	base, err := config.LoadBowmaster(flagConfig)
	if err != nil {
		return err
	}

	cfg := runtimeConfig()
	preset, err := tui.RunPresetSelector(base, cfg)
	if err != nil {
		return err
	}
	if preset == nil {
		return nil
	}
	return startGame(defaultGame, string(*preset), cfg)
}
