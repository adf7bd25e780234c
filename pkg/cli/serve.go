package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/raca/pkg/cli/config"
	httpctrl "github.com/secmon-lab/raca/pkg/controller/http"
	"github.com/secmon-lab/raca/pkg/service/chart"
	"github.com/secmon-lab/raca/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe(version string) *cli.Command {
	var addr string
	var enableMetrics bool
	var chartWidth, chartHeight int
	var appCfg config.AppConfig
	var datasetCfg config.Dataset
	var sentryCfg config.Sentry

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("RACA_ADDR"),
			Destination: &addr,
		},
		&cli.BoolFlag{
			Name:        "metrics",
			Usage:       "Expose Prometheus metrics at /metrics",
			Value:       true,
			Sources:     cli.EnvVars("RACA_METRICS"),
			Destination: &enableMetrics,
		},
		&cli.IntFlag{
			Name:        "chart-width",
			Usage:       "Width of rendered chart images in pixels",
			Category:    "Dashboard",
			Value:       800,
			Sources:     cli.EnvVars("RACA_CHART_WIDTH"),
			Destination: &chartWidth,
		},
		&cli.IntFlag{
			Name:        "chart-height",
			Usage:       "Height of rendered chart images in pixels",
			Category:    "Dashboard",
			Value:       500,
			Sources:     cli.EnvVars("RACA_CHART_HEIGHT"),
			Destination: &chartHeight,
		},
	}

	// Add shared config flags
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, datasetCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Load the risk register and serve the dashboard",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := datasetCfg.Validate(); err != nil {
				return err
			}

			flush, err := sentryCfg.Configure(version)
			if err != nil {
				return goerr.Wrap(err, "failed to configure error reporting")
			}
			defer flush()
			if sentryCfg.IsEnabled() {
				logging.Default().Info("Sentry error reporting enabled", "sentry", sentryCfg)
			}

			uc, src, err := newUseCases(&appCfg, &datasetCfg)
			if err != nil {
				return err
			}
			defer src.Close(ctx)

			logging.Default().Info("Loading dataset", "dataset", datasetCfg, "config", appCfg)

			// The dataset is frozen before the server accepts any request
			ds, err := uc.LoadDataset(ctx, datasetCfg.URI())
			if err != nil {
				return goerr.Wrap(err, "failed to load dataset")
			}
			logging.Default().Info("Dataset ready", "snapshot", ds.Snapshot())

			httpOpts := []httpctrl.Options{
				httpctrl.WithChartRenderer(chart.New(chart.WithSize(chartWidth, chartHeight))),
			}
			if enableMetrics {
				httpOpts = append(httpOpts, httpctrl.WithMetrics(httpctrl.NewMetrics(ds)))
			}

			httpHandler, err := httpctrl.New(uc, ds, httpOpts...)
			if err != nil {
				return goerr.Wrap(err, "failed to create http server")
			}
			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr, "metrics", enableMetrics)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
