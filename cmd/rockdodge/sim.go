package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rockdodge/internal/core"
	"github.com/vovakirdan/rockdodge/internal/registry"
	"github.com/vovakirdan/rockdodge/internal/sim"
)

var (
	flagTicks     int
	flagAutopilot bool
	flagFrame     bool
)

var simCmd = &cobra.Command{
	Use:   "sim [game]",
	Short: "Run a game headless",
	Long: `Run the simulation without a terminal UI and print a summary.
With --ticks 0 the run lasts until game over.

Examples:
  rockdodge sim --ticks 3600 --seed 42
  rockdodge sim --autopilot --frame
  rockdodge sim --difficulty hard --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	addGameConfigFlags(simCmd)
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to run (0 = until game over)")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Steer away from incoming rocks")
	simCmd.Flags().BoolVar(&flagFrame, "frame", false, "Print the final frame")
}

func runSim(cmd *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}

	logger, closeLog, err := newLogger("rockdodge-sim", cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	if _, _, err := loadGameConfig(); err != nil {
		return err
	}

	created, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	game, ok := created.(sim.Game)
	if !ok {
		return fmt.Errorf("game %q does not support headless runs", gameID)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = seed

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Info("simulation started", "game", gameID, "seed", seed, "ticks", flagTicks, "autopilot", flagAutopilot)
	start := time.Now()
	res, err := sim.Run(ctx, game, sim.Options{
		Runtime:   runtime,
		Ticks:     flagTicks,
		Autopilot: flagAutopilot,
		Frame:     flagFrame,
		Logger:    logger,
	})
	if err != nil && ctx.Err() == nil {
		return err
	}
	logger.Info("simulation finished", "ticks", res.Ticks, "elapsed", time.Since(start))

	printResult(cmd.OutOrStdout(), res, seed)
	if err != nil {
		return fmt.Errorf("interrupted: %w", context.Cause(ctx))
	}
	return nil
}

func printResult(out io.Writer, res sim.Result, seed int64) {
	if res.Frame != "" {
		fmt.Fprintln(out, res.Frame)
		fmt.Fprintln(out)
	}
	state := "playing"
	if res.GameOver {
		state = "game over"
	}
	fmt.Fprintf(out, "Seed:     %d\n", seed)
	fmt.Fprintf(out, "Ticks:    %d\n", res.Ticks)
	fmt.Fprintf(out, "State:    %s\n", state)
	fmt.Fprintf(out, "Score:    %d\n", res.Score)
	fmt.Fprintf(out, "Lives:    %d\n", res.Lives)
	fmt.Fprintf(out, "Spawned:  %d\n", res.Stats.Spawned)
	fmt.Fprintf(out, "Dodged:   %d\n", res.Stats.Dodged)
	fmt.Fprintf(out, "Hits:     %d\n", res.Stats.Hits)
}
