package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/platform/headless"
)

var (
	flagFrames   bool
	flagRealtime bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Run a scripted game without a display",
	Long: `Replay a YAML input script against a fresh board and print the result.

The script picks the seed, the surface geometry and the input batches:

  seed: 42
  surface: terminal
  steps:
    - tile: 0
    - tile: 5
    - idle: 30
    - click: [13, 9]
    - close: true

The game runs on a virtual clock unless --realtime is given, so the
reveal delay and the frame rate cost nothing. A --seed flag overrides
the script seed.

Examples:
  memory replay ./script.yaml
  memory replay ./script.yaml --frames
  memory replay ./script.yaml --realtime --log-level debug`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagFrames, "frames", false, "Print every frame instead of only the last")
	replayCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Wait in real time for the reveal delay and frames")
}

func runReplay(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger("memory-replay")

	script, err := headless.LoadScript(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	surfaceCfg := cfg.Terminal
	if script.Surface == "window" {
		surfaceCfg = cfg.Window
	}
	opts := memory.OptionsFromConfig(cfg, surfaceCfg)

	seed := script.Seed
	if flagSeed != 0 {
		seed = flagSeed
	}

	var (
		clock   memory.Clock
		waiter  headless.Waiter
		limiter headless.Limiter
	)
	if flagRealtime {
		ticker := headless.NewTickerLimiter(cfg.Timing.FPS)
		defer ticker.Stop()
		clock, waiter, limiter = memory.NewSystemClock(), headless.SleepWaiter{}, ticker
	} else {
		vc := headless.NewVirtualClock()
		clock, waiter, limiter = vc, vc, headless.NewFrameLimiter(vc, cfg.Timing.FPS)
	}

	game := memory.New(opts, clock)
	game.Reset(core.RuntimeConfig{
		ScreenW:  surfaceCfg.Width,
		ScreenH:  surfaceCfg.Height,
		TickRate: cfg.Timing.FPS,
		Seed:     seed,
	})

	recorder := &headless.Recorder{}
	var surface headless.Surface = recorder
	if flagFrames {
		surface = headless.NewWriterSurface(os.Stdout)
	}

	runner := headless.NewRunner(game, headless.NewScriptSource(script, opts.Layout), surface,
		waiter, limiter, surfaceCfg.Width, surfaceCfg.Height).WithLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := runner.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !flagFrames && script.Surface == "terminal" {
		fmt.Println(recorder.Last)
	}
	printSummary(game, res)
}

func printSummary(game *memory.Game, res headless.Result) {
	snap := res.Snapshot
	fmt.Println(game.Board().String())
	fmt.Printf("Seed:       %d\n", snap.Seed)
	fmt.Printf("Frames:     %d\n", res.Frames)
	fmt.Printf("Pairs:      %d/%d\n", snap.Matched/2, config.PairCount)
	fmt.Printf("Moves:      %d\n", snap.Moves)
	fmt.Printf("Mismatches: %d\n", snap.Mismatches)
	fmt.Printf("Phase:      %s\n", snap.Phase)
	if snap.Continue {
		fmt.Printf("Time:       %ds (unfinished)\n", snap.Score)
	} else {
		fmt.Printf("Time:       %ds\n", snap.Score)
	}
}
