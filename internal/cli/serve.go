package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcelhennyi/boulangerie-milon/internal/api"
	"github.com/mcelhennyi/boulangerie-milon/pkg/manifest"
	"github.com/mcelhennyi/boulangerie-milon/pkg/plan"
)

// shutdownTimeout bounds graceful drain of in-flight requests.
const shutdownTimeout = 10 * time.Second

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		skipItems bool
	)

	cmd := &cobra.Command{
		Use:   "serve <kitchen.toml>",
		Short: "Serve a planned kitchen over HTTP",
		Long: `Serve a planned kitchen over HTTP.

The kitchen is built and its declared items placed, then exposed through a
JSON API: the full tree, per-resource detail and occupancy grids, overall
utilization, and item placement and removal.

The server runs until interrupted and drains in-flight requests on
shutdown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], addr, skipItems)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&skipItems, "no-items", false, "serve the kitchen without placing declared items")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, path, addr string, skipItems bool) error {
	result, err := c.newRunner().Execute(ctx, plan.Options{ManifestPath: path})
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	kitchen := result.Kitchen

	if skipItems {
		m, err := manifest.Load(path)
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		kitchen, err = m.Build()
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           api.NewServer(kitchen, c.Logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("serving kitchen", "name", kitchen.Name, "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("serve: shutdown: %w", err)
	}
	return nil
}
