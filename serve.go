package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"reform-engine/internal/engine"
	"reform-engine/internal/handler"
	"reform-engine/internal/observability"
)

const shutdownTimeout = 10 * time.Second

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve scenario calculations over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		registry, calc, err := loadModel()
		if err != nil {
			return err
		}
		collector, err := observability.NewCollector(nil)
		if err != nil {
			return err
		}
		h := handler.New(engine.New(calc, registry, collector), collector)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &fasthttp.Server{
			Handler:      h.Handle,
			Name:         cfg.Server.Name,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			zap.L().Info("starting server",
				zap.Int("port", port),
				zap.Int("states", len(registry.Names())),
				zap.Float64("baseline_threshold", calc.Calibration().BaselineThreshold),
			)
			if err := srv.ListenAndServe(fmt.Sprintf(":%d", port)); err != nil {
				return eris.Wrap(err, "server listen")
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.ShutdownWithContext(shutdownCtx); err != nil {
				return eris.Wrap(err, "server shutdown")
			}
			return nil
		})

		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
