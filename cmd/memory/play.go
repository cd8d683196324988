package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
)

// runPlay plays one game in the local terminal.
//
// Controls:
//
//	Click / Enter  - Flip a tile
//	Arrows / hjkl  - Move the cursor
//	R              - Restart (after the last pair)
//	Q/Ctrl+C       - Quit
func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.FPS,
		Seed:     flagSeed,
	}

	game := memory.New(memory.OptionsFromConfig(cfg, cfg.Terminal), memory.NewSystemClock())

	if err := tui.Run(game, runtime, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
