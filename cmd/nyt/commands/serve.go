package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vmizener/nyt/internal/httpserver"
	"github.com/vmizener/nyt/internal/store"
)

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver assist API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, closeSrc, err := wordSource()
			if err != nil {
				return err
			}
			defer closeSrc()

			if addr == "" {
				addr = ":" + getEnv("PORT", "8080")
			}
			srv := httpserver.New(store.NewMemoryStore(), src)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				log.Info().Str("addr", addr).Msg("assist API listening")
				if err := srv.ListenAndServe(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-ctx.Done()
				log.Info().Msg("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})
			return g.Wait()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default \":$PORT\" or \":8080\")")
	return cmd
}
