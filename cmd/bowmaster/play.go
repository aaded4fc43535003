package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bowmaster/internal/config"
	"github.com/vovakirdan/bowmaster/internal/core"
	"github.com/vovakirdan/bowmaster/internal/games/bowmaster"
	"github.com/vovakirdan/bowmaster/internal/platform/tui"
	"github.com/vovakirdan/bowmaster/internal/registry"
)

const defaultGame = "bowmaster"

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Start a duel",
	Long: `Start playing the specified game (bowmaster by default).

Controls:
  Left/Q, Right/D   - Walk
  Up/Z              - Jump
  W/S               - Raise/lower the aim angle
  E/A               - More/less power
  Mouse drag        - Aim with the joystick
  Space             - Fire
  Enter             - Confirm in menus
  P/Esc             - Pause
  R                 - Restart (after the duel ends)
  ?                 - Show all keys
  Ctrl+C            - Quit

Difficulty options:
  easy   - Sturdier archer, enemy starts with random shots
  normal - Enemy starts at 30% accuracy and sharpens with your score
  hard   - Frail archer, enemy starts at 70% accuracy
  fixed  - No progression, stays at the config's initial level

Examples:
  bowmaster play
  bowmaster play --difficulty easy
  bowmaster play --config ./my-bowmaster.yaml --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'bowmaster list' to see available games", gameID)
	}

	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}
	// Fail on a broken config before the terminal switches to the alt screen.
	if _, err := config.LoadBowmaster(flagConfig); err != nil {
		return err
	}

	return startGame(gameID, flagDifficulty, runtimeConfig())
}

// runtimeConfig sizes the screen from the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func startGame(gameID, preset string, cfg core.RuntimeConfig) error {
	bowmaster.SetConfigPath(flagConfig)
	bowmaster.SetDifficultyPreset(preset)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger.Info("starting game",
		"game", gameID,
		"difficulty", preset,
		"seed", cfg.Seed,
		"fps", cfg.TickRate,
		"screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))

	if err := tui.Run(game, cfg, tui.WithLogger(logger)); err != nil {
		logger.Error("game ended with an error", "err", err)
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	logger.Info("game closed", "game", gameID, "score", game.State().Score)
	return nil
}
