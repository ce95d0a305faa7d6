package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/limaJavier/interview-scheduling/internal/scheduling"
	"github.com/limaJavier/interview-scheduling/internal/server"
)

func newServeCmd() *cobra.Command {
	var flagAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the roster and scheduling REST API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			repository, closeRepository, err := openRepository(ctx)
			if err != nil {
				return err
			}
			defer closeRepository()

			recorder := newRecorder()
			service := scheduling.NewService(repository, requestDefaults(), recorder, log)
			srv := server.New(repository, service, recorder, log)

			addr := cfg.HTTPAddr
			if flagAddr != "" {
				addr = flagAddr
			}
			httpServer := &http.Server{
				Addr:              addr,
				Handler:           srv.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info("server starting", zap.String("addr", addr), zap.String("db_driver", cfg.Database.Driver))
				errCh <- httpServer.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			log.Info("server shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address, overrides HTTP_ADDR")

	return cmd
}
