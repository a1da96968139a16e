// Command cardtable-server serves the card API and the client's static files.
//
// @title Card Table API
// @version 1.0
// @description Mock card data for the card table client.
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/cardtable/internal/config"
	"github.com/osse101/cardtable/internal/server"
)

const shutdownTimeout = 10 * time.Second

type options struct {
	logLevel  string
	addr      string
	port      int
	staticDir string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "cardtable-server",
		Short:        "Serve the card API and the single-page client",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			initLogger(cfg)
			return run(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.logLevel, "log", "l", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	f.StringVarP(&opts.addr, "addr", "a", config.DefaultBindAddr, "address to bind")
	f.IntVarP(&opts.port, "port", "p", config.DefaultPort, "port to listen on")
	f.StringVar(&opts.staticDir, "static-dir", config.DefaultStaticDir, "directory with the built client")

	return cmd
}

// loadConfig reads the environment, then applies flags given explicitly
func loadConfig(cmd *cobra.Command, opts options) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	f := cmd.Flags()
	if f.Changed("log") {
		cfg.LogLevel = opts.logLevel
	}
	if f.Changed("addr") {
		cfg.BindAddr = opts.addr
	}
	if f.Changed("port") {
		cfg.Port = opts.port
	}
	if f.Changed("static-dir") {
		cfg.StaticDir = opts.staticDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(cfg)
	slog.Info("Serving static files", "dir", cfg.StaticDir, "environment", cfg.Environment)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	slog.Info("Server stopped")
	return nil
}
