package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sift-dev/sift/internal/config"
	"github.com/sift-dev/sift/internal/errors"
	"github.com/sift-dev/sift/internal/inspect"
)

func serveCmd() *cobra.Command {
	var (
		port int
		host string
		dir  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the snapshot inspector",
		Long: `Start the snapshot inspector server.

The inspector watches the snapshot directory, serves the snapshots over
an HTTP API, evaluates selector queries, and notifies connected viewers
over WebSocket when snapshots change.

Examples:
  sift serve
  sift serve --port=8080
  sift serve --dir=renders`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, host, dir)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from sift.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind (default from sift.json)")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Snapshot directory (default from sift.json)")

	return cmd
}

func runServe(port int, host, dir string) error {
	cfg := loadOrDefaultConfig()

	// Apply command-line overrides
	if port > 0 {
		cfg.Serve.Port = port
	}
	if host != "" {
		cfg.Serve.Host = host
	}
	if dir != "" {
		cfg.Snapshots.Dir = dir
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	srv, err := inspect.NewServer(inspect.Options{
		Host:          cfg.Serve.Host,
		Port:          cfg.Serve.Port,
		Dir:           cfg.SnapshotsDir(),
		Logger:        logger,
		Metrics:       inspect.NewMetrics(),
		WatchIgnore:   cfg.Watch.Ignore,
		WatchDebounce: cfg.DebounceDuration(),
	})
	if err != nil {
		return errors.FromError(err, "E180")
	}

	printBanner()
	fmt.Println("  inspect")
	fmt.Println()
	info("Snapshots: %s", cfg.SnapshotsDir())
	info("Serving:   %s", cfg.ServeURL())
	fmt.Println()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\n\n  Shutting down...")
		cancel()
	}()

	return srv.Start(ctx)
}

// loadOrDefaultConfig loads sift.json from the working directory,
// falling back to defaults when there is no project.
func loadOrDefaultConfig() *config.Config {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return config.New()
	}
	return cfg
}
