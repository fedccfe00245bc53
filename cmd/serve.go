package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mj1618/uibridge/internal/config"
	"github.com/mj1618/uibridge/internal/handlers"
	"github.com/mj1618/uibridge/internal/observability"
	"github.com/mj1618/uibridge/internal/platform"
	"github.com/mj1618/uibridge/internal/platform/memory"
	"github.com/mj1618/uibridge/internal/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the command server for the attached host",
	Long: `Start the HTTP command server. Commands are posted as
{"command": "category.action", "params": {...}} to the configured endpoint and
run on the host's UI thread.

Use --demo to serve the built-in in-process demo application.

Examples:
  uibridge serve --demo
  uibridge serve --port 9000
  UIBRIDGE_LOGGER_LEVEL=debug uibridge serve --demo`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Bool("demo", false, "Serve the in-process demo application")
	serveCmd.Flags().String("host", "", "Listen host (overrides server.host)")
	serveCmd.Flags().Int("port", 0, "Listen port (overrides server.port)")
}

// runner is implemented by backends that own their UI loop.
type runner interface {
	Run(ctx context.Context) error
}

func runServe(cmd *cobra.Command, args []string) error {
	demo, _ := cmd.Flags().GetBool("demo")
	if host, _ := cmd.Flags().GetString("host"); host != "" {
		cfg.Server.Host = host
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := observability.NewStderrLogger(cfg.Logger)
	defer observability.Sync(logger)

	provider, err := newHostProvider(demo)
	if err != nil {
		return err
	}
	return serve(cmd.Context(), cfg, provider, logger)
}

func newHostProvider(demo bool) (*platform.Provider, error) {
	if demo {
		return memory.NewProvider(memory.NewDemoApp()), nil
	}
	return platform.NewProvider()
}

func serve(parent context.Context, cfg *config.Config, provider *platform.Provider, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := handlers.Options{
		Logger: logger,
		Logs:   observability.NewLogBuffer(cfg.LogBuffer.Size),
	}
	var serverOpts []server.Option
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		opts.Metrics = observability.NewMetrics(reg)
		serverOpts = append(serverOpts, server.WithMetrics(reg))
	}

	services, err := handlers.New(provider, cfg, opts)
	if err != nil {
		return fmt.Errorf("wiring services: %w", err)
	}
	dispatcher, err := services.Dispatcher()
	if err != nil {
		return fmt.Errorf("building command catalog: %w", err)
	}
	srv := server.New(dispatcher, provider.Loop, append(serverOpts, server.WithLogger(logger))...)

	g, gctx := errgroup.WithContext(ctx)
	if r, ok := provider.Loop.(runner); ok {
		g.Go(func() error { return r.Run(gctx) })
	}
	g.Go(func() error { return srv.ListenAndServe(gctx, cfg.Server.Addr()) })

	logger.Info("uibridge ready",
		zap.String("addr", cfg.Server.Addr()),
		zap.String("path", server.CommandPath),
		zap.Int("commands", dispatcher.Catalog().Len()))
	err = g.Wait()

	// The UI loop has stopped, so the recorder can be flushed from here.
	if services.Recorder().Recording() {
		if _, stopErr := services.Recorder().Stop(); stopErr != nil {
			logger.Warn("Failed to save in-progress recording", zap.Error(stopErr))
		} else {
			logger.Info("Saved in-progress recording on shutdown")
		}
	}
	return err
}
