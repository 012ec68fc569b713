package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/getmockd/stubd/pkg/logging"
	"github.com/getmockd/stubd/pkg/stub"
)

// shutdownTimeout is the maximum time to wait for graceful shutdown.
const shutdownTimeout = 10 * time.Second

type serveFlags struct {
	file string
	addr string
}

func newServeCommand(g *globalFlags) *cobra.Command {
	var f serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the stubs of a stub file over HTTP",
		Example: `  # Serve stubs on the default port
  stubd serve -f stubs.yaml

  # Serve on another address with debug logging
  stubd serve -f stubs.yaml --addr 127.0.0.1:8080 --log-level debug`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := g.logger(cmd)
			reg, err := loadRegistry(f.file, log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			ln, err := net.Listen("tcp", f.addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", f.addr, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			h := stub.NewHandler(reg)
			h.SetLogger(logging.Component(log, "handler"))
			log.Info("serving stubs", "addr", ln.Addr().String(), "stubs", reg.Len(), "file", f.file)
			return runServer(ctx, ln, h, log)
		},
	}

	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Stub file (YAML or JSON)")
	cmd.Flags().StringVar(&f.addr, "addr", ":4280", "Listen address")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// runServer serves h on ln until ctx is done, then shuts down gracefully.
func runServer(ctx context.Context, ln net.Listener, h http.Handler, log *slog.Logger) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
