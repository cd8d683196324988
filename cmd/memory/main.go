// memory is a tile-matching memory game for the terminal, the desktop and SSH.
//
// Usage:
//
//	memory                   - Play in the terminal
//	memory gui               - Play in a desktop window
//	memory serve             - Start SSH server for remote play
//	memory replay <script>   - Run a scripted game without a display
//	memory config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: from config)
//	--seed <value>       - Set RNG seed for a reproducible deal
//	--config <path>      - Use a custom config YAML
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memory",
	Short: "Memory Tiles - find the eight pairs",
	Long: `Memory Tiles is a tile-matching memory game. Sixteen tiles hide
eight pairs of images; flip two at a time, keep the pairs, and find them
all as fast as you can. Your time is your score.

Run without a command to play in the terminal.

Available commands:
  gui      - Play in a desktop window
  serve    - Start SSH server for remote play
  replay   - Run a scripted game without a display
  config   - Print the effective configuration

Examples:
  memory
  memory --seed 42
  memory gui
  memory serve --ssh :2222
  memory replay ./script.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game config and applies the global flags.
func loadConfig() config.MemoryConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		cfg.Timing.FPS = flagFPS
	}
	return cfg
}

// newLogger creates a stderr logger at the --log-level level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.SetLevel(level)
	return logger
}
