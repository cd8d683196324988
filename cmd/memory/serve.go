package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/metrics"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagMetricsAddr string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own board and timer.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.memory/host_key

Prometheus metrics are served on --metrics at /metrics, with a
/healthz probe. Pass an empty address to disable them.

Flags fall back to MEMORY_SSH_ADDR, MEMORY_HOST_KEY and
MEMORY_METRICS_ADDR, which may also be set in a .env file.

Examples:
  memory serve                           # Listen on :23235 with auto-generated key
  memory serve --ssh :2222               # Listen on port 2222
  memory serve --host-key ./my_host_key  # Use specific host key
  memory serve --metrics ""              # No metrics endpoint

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", ":9105", "Metrics HTTP address (empty to disable)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

// envDefault returns the environment value for key when the flag was not set.
func envDefault(cmd *cobra.Command, flag, key, value string) string {
	if cmd.Flags().Changed(flag) {
		return value
	}
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return value
}

func runServe(cmd *cobra.Command, _ []string) {
	_ = godotenv.Load()

	gameCfg := loadConfig()
	logger := newLogger("memory-ssh")

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = envDefault(cmd, "ssh", "MEMORY_SSH_ADDR", flagSSHAddr)
	cfg.HostKeyPath = envDefault(cmd, "host-key", "MEMORY_HOST_KEY", flagHostKey)
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	cfg.TickRate = gameCfg.Timing.FPS
	cfg.Game = gameCfg
	metricsAddr := envDefault(cmd, "metrics", "MEMORY_METRICS_ADDR", flagMetricsAddr)

	var m *metrics.Metrics
	var metricsSrv *metrics.Server
	if metricsAddr != "" {
		m = metrics.New("memory")
		metricsSrv = metrics.NewServer(metricsAddr, m)
	}

	server, err := tui.NewSSHServer(cfg, logger, m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if metricsSrv != nil {
		go func() {
			logger.Info("serving metrics", "address", metricsSrv.Addr())
			if err := metricsSrv.ListenAndServe(); err != nil {
				logger.Error("metrics server stopped", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = metricsSrv.Shutdown(shutdownCtx)
		}()
	}

	fmt.Printf("Starting memory SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
