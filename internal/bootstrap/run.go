package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// RunOptions controls RunHTTPServer.
type RunOptions struct {
	Server *http.Server
	// Listener is optional; the server listens on Server.Addr when nil.
	Listener        net.Listener
	ShutdownTimeout time.Duration
	Logger          *slog.Logger
}

// RunHTTPServer serves until ctx ends or the server fails, then shuts the server down.
// A clean shutdown returns nil.
func RunHTTPServer(ctx context.Context, opts RunOptions) error {
	if opts.Server == nil {
		return errors.New("http server is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if opts.Listener != nil {
			logger.Info("starting HTTP server", "addr", opts.Listener.Addr().String())
			err = opts.Server.Serve(opts.Listener)
		} else {
			logger.Info("starting HTTP server", "addr", opts.Server.Addr)
			err = opts.Server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return ShutdownHTTPServer(ShutdownConfig{
			Context: gctx,
			Server:  opts.Server,
			Timeout: opts.ShutdownTimeout,
			Logger:  logger,
		})
	})
	return g.Wait()
}
