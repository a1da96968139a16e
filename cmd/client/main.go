// Command cardtable-client renders one client page against a running server
// and prints the resulting HTML.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/cardtable/internal/client/app"
	"github.com/osse101/cardtable/internal/client/fetch"
	"github.com/osse101/cardtable/internal/client/route"
	"github.com/osse101/cardtable/internal/client/ui"
	"github.com/osse101/cardtable/internal/client/view"
	"github.com/osse101/cardtable/internal/config"
	"github.com/osse101/cardtable/internal/logger"
)

const defaultTimeout = 5 * time.Second

type options struct {
	server     string
	timeout    time.Duration
	stylesheet bool
	logLevel   string
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
		Use:          "cardtable-client [path]",
		Short:        "Render a client page and print its HTML",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := route.PatternHome
			if len(args) == 1 {
				path = args[0]
			}

			cfg := logger.DevelopmentConfig()
			cfg.Level = opts.logLevel
			logger.InitLoggerWithWriter(cfg, cmd.ErrOrStderr())

			return render(cmd.Context(), cmd.OutOrStdout(), opts, path)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.server, "server", config.ServerURL(), "base URL of the card server")
	f.DurationVar(&opts.timeout, "timeout", defaultTimeout, "how long to wait for the page to settle")
	f.BoolVar(&opts.stylesheet, "stylesheet", false, "inline the card stylesheet")
	f.StringVarP(&opts.logLevel, "log", "l", logger.LogLevelWarn, "log level (debug, info, warn, error)")

	return cmd
}

// render mounts the page for path, waits for its fetch to settle and writes
// the page as a complete HTML document.
func render(ctx context.Context, w io.Writer, opts options, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	loop := ui.NewLoop(0)
	loop.Start()
	defer loop.Stop()

	a := app.New(ctx, loop, fetch.New(opts.server))

	settled := make(chan app.Frame, 1)
	a.OnRender(func(f app.Frame) {
		if !f.Settled {
			return
		}
		select {
		case settled <- f:
		default:
		}
	})

	if !a.Navigate(path) {
		return fmt.Errorf("navigate to %s: ui loop stopped", path)
	}

	var frame app.Frame
	select {
	case frame = <-settled:
	case <-ctx.Done():
		return fmt.Errorf("page %s did not settle: %w", path, ctx.Err())
	}

	out, err := view.Document(frame.View, opts.stylesheet)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
