package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/internal/api"
	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/internal/network"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the route API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.ListenAddr = addr
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}
			n, err := a.loadNetwork()
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr: a.cfg.ListenAddr,
				Handler: api.NewRouter(&api.RouterDeps{
					Log:         a.log,
					Network:     n,
					Version:     version,
					DefaultFrom: defaultPlace(n, config.DefaultFrom),
					DefaultTo:   defaultPlace(n, config.DefaultTo),
				}),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				a.log.WithField("addr", srv.Addr).Info("listening")
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			a.log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address host:port (env: "+config.EnvListenAddr+")")

	return cmd
}

// defaultPlace returns id if the network has it, else "".
func defaultPlace(n *network.Network, id string) string {
	if n.HasPlace(id) {
		return id
	}
	return ""
}
