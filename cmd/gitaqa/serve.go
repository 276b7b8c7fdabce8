package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gitaqa/gitaqa-go/healthserver"
	"github.com/gitaqa/gitaqa-go/jsonx"
	"github.com/gitaqa/gitaqa-go/logging"
	"github.com/gitaqa/gitaqa-go/server"
)

var serveConfigPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Index the corpus and serve the question API",
	Long: `Index the configured PDF and serve questions over HTTP.

Examples:
  # Serve with config file
  gitaqa serve --config gitaqa.yaml
`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "gitaqa.yaml", "Path to configuration file")
}

func runServe(cmd *cobra.Command, args []string) error {
	jsonx.SetConfig(jsonx.SonicConfig())

	cfg, err := server.LoadConfig(serveConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.NewLogger(&cfg.Logging)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	system, err := buildSystem(ctx, cfg, logger)
	if err != nil {
		return err
	}
	server.RecordCorpusSize(system.Stats())

	healthserver.Start(logger, cfg.HealthPort, system.Ready)

	srv := server.New(system, cfg.Listen, logger)
	return srv.ListenAndServe(ctx)
}
