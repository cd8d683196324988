package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/platform/gui"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a desktop window",
	Long: `Open a window with the 4x4 board and play with the mouse.

Controls:
  Click      - Flip a tile
  R          - Restart (after the last pair)
  Q/Esc      - Quit

Window size, tile size and the score position come from the
"window" section of the config.`,
	Args: cobra.NoArgs,
	Run:  runGUI,
}

func runGUI(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger("memory-gui")

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := memory.New(memory.OptionsFromConfig(cfg, cfg.Window), memory.NewSystemClock())
	game.Reset(core.RuntimeConfig{
		ScreenW:  cfg.Window.Width,
		ScreenH:  cfg.Window.Height,
		TickRate: cfg.Timing.FPS,
		Seed:     seed,
	})

	w, err := gui.NewWindow(game, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("opening window", "seed", seed, "fps", cfg.Timing.FPS)
	if err := gui.Run(w); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
