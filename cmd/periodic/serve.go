package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/periodic2048/internal/games/periodic"
	"github.com/vovakirdan/periodic2048/internal/platform/tui"
	"github.com/vovakirdan/periodic2048/internal/platform/web"
	"github.com/vovakirdan/periodic2048/internal/registry"
	"github.com/vovakirdan/periodic2048/internal/storage"
	"github.com/vovakirdan/periodic2048/internal/trivia"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH and browser servers",
	Long: `Serve the game over SSH and HTTP at the same time.

Each SSH connection plays its own board. Browser players get a session id
in the page URL; anyone opening the same URL watches and plays the same
board. All players share one leaderboard.

Pass an empty address to turn a server off.

Examples:
  periodic serve                         # Addresses from the config file
  periodic serve --ssh :2222 --http ""   # SSH only
  periodic serve --host-key ./host_key   # Use a specific host key

Users can connect with:
  ssh localhost -p 2222
  http://localhost:8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (overrides config)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP server address (overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting SSH players")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("ssh") {
		cfg.Server.SSHAddr = flagSSHAddr
	}
	if cmd.Flags().Changed("http") {
		cfg.Server.HTTPAddr = flagHTTPAddr
	}
	if cmd.Flags().Changed("host-key") {
		cfg.Server.HostKeyPath = flagHostKey
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	bank, err := loadBank(cfg)
	if err != nil {
		return err
	}

	logger := newLogger("periodic")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)
	running := 0

	if cfg.Server.SSHAddr != "" {
		sshServer, err := tui.NewSSHServer(tui.SSHServerConfig{
			Address:     cfg.Server.SSHAddr,
			HostKeyPath: cfg.Server.HostKeyPath,
			IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
			TickRate:    flagFPS,
			NewGame: func() registry.Game {
				return periodic.New(cfg, bank)
			},
		}, store, logger.WithPrefix("periodic-ssh"))
		if err != nil {
			return err
		}
		running++
		go func() { errCh <- sshServer.ListenAndServe(ctx) }()
	}

	if cfg.Server.HTTPAddr != "" {
		webServer := web.NewServer(web.ServerConfig{
			Address: cfg.Server.HTTPAddr,
			Session: web.SessionConfig{
				Engine: cfg.Engine(),
				Bank:   bank,
				Trivia: trivia.Options{
					Enabled: cfg.Trivia.Enabled,
					// Browser sessions tick once per second.
					IntroTicks:     cfg.Trivia.IntroTicks(1),
					RestartOnWrong: cfg.Trivia.RestartOnWrong,
				},
				Seed: flagSeed,
			},
		}, store, logger.WithPrefix("periodic-web"))
		running++
		go func() { errCh <- webServer.ListenAndServe(ctx) }()
	}

	fmt.Println("Press Ctrl+C to stop")

	// The first failure stops everything; a clean stop waits for all servers.
	var firstErr error
	for range running {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
			stop()
		}
	}
	return firstErr
}
