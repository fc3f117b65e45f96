package sim

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rockdodge/internal/core"
	"github.com/vovakirdan/rockdodge/internal/games/dodge"
)

// Game is a game that exposes snapshots for headless runs.
type Game interface {
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	Snapshot() dodge.Snapshot
}

// Options controls a headless run.
type Options struct {
	Runtime   core.RuntimeConfig
	Ticks     int  // maximum ticks; zero runs until game over
	Autopilot bool // steer with the autopilot instead of idling
	Frame     bool // render the final frame into Result.Frame
	Logger    *log.Logger
}

// Result summarizes a headless run.
type Result struct {
	Ticks     int
	Score     int
	Lives     int
	GameOver  bool
	LivesLost int
	Stats     dodge.Stats
	Frame     string
}

// progressEvery is the tick interval between debug progress lines.
const progressEvery = 600

// Run resets game and steps it until the tick limit, game over or
// cancellation of ctx. On cancellation it returns the partial result
// together with the context error.
func Run(ctx context.Context, game Game, opts Options) (Result, error) {
	if opts.Ticks < 0 {
		return Result{}, fmt.Errorf("sim: negative tick count %d", opts.Ticks)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(opts.Runtime)
	pilot := NewAutopilot()
	idle := core.NewInputFrame()

	var res Result
	for opts.Ticks == 0 || res.Ticks < opts.Ticks {
		if err := ctx.Err(); err != nil {
			finish(game, opts, &res)
			return res, fmt.Errorf("sim: stopped after %d ticks: %w", res.Ticks, err)
		}

		in := idle
		if opts.Autopilot {
			in = pilot.Decide(game.Snapshot())
		}

		step := game.Step(in)
		res.Ticks++
		if step.LivesLost > 0 {
			res.LivesLost += step.LivesLost
			logger.Info("life lost", "tick", res.Ticks, "lives", step.State.Lives, "score", step.State.Score)
		}
		if res.Ticks%progressEvery == 0 {
			logger.Debug("progress", "tick", res.Ticks, "score", step.State.Score, "rocks", len(game.Snapshot().Obstacles))
		}
		if step.State.GameOver {
			logger.Info("game over", "tick", res.Ticks, "score", step.State.Score)
			break
		}
	}

	finish(game, opts, &res)
	return res, nil
}

func finish(game Game, opts Options, res *Result) {
	snap := game.Snapshot()
	res.Score = snap.Score
	res.Lives = snap.Lives
	res.GameOver = snap.Phase == dodge.PhaseGameOver
	res.Stats = snap.Stats

	if opts.Frame {
		w, h := opts.Runtime.ScreenW, opts.Runtime.ScreenH
		if w <= 0 || h <= 0 {
			def := core.DefaultConfig()
			w, h = def.ScreenW, def.ScreenH
		}
		screen := core.NewScreen(w, h)
		game.Render(screen)
		res.Frame = screen.String()
	}
}
