package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rockdodge/internal/core"
	"github.com/vovakirdan/rockdodge/internal/platform/tui"
	"github.com/vovakirdan/rockdodge/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. Without an argument the rock dodging game starts.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  P/Esc      - Pause
  R/Enter    - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - More lives, rocks spawn less often
  normal - The configured values
  hard   - Fewer lives, rocks spawn more often

Examples:
  rockdodge play
  rockdodge play --difficulty easy
  rockdodge play --config ./my-dodge.yaml --log-file dodge.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameConfigFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'rockdodge list' to see available games", gameID)
	}

	// Bubble Tea owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger("rockdodge", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	_, source, err := loadGameConfig()
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source, "difficulty", flagDifficulty)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if err := tui.Run(game, cfg, tui.Options{Logger: logger}); err != nil {
		logger.Error("game exited with error", "error", err)
		return err
	}
	return nil
}
