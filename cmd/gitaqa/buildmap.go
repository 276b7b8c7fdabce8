package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitaqa/gitaqa-go/gitadoc"
	"github.com/gitaqa/gitaqa-go/logging"
	"github.com/gitaqa/gitaqa-go/server"
)

var (
	buildMapConfigPath string
	buildMapOutput     string
)

var buildMapCmd = &cobra.Command{
	Use:   "build-map",
	Short: "Build the text correction map from the corpus",
	Long: `Scan the configured PDF and write the learned correction map to disk.

The map records recurring extraction errors and their corrections, so
the server can load it instead of rescanning the corpus on startup.

Examples:
  gitaqa build-map --config gitaqa.yaml --output correction_map.json
`,
	RunE: runBuildMap,
}

func init() {
	buildMapCmd.Flags().StringVarP(&buildMapConfigPath, "config", "c", "gitaqa.yaml", "Path to configuration file")
	buildMapCmd.Flags().StringVarP(&buildMapOutput, "output", "o", gitadoc.DefaultCorrectionMapPath, "Output path for the correction map")
}

func runBuildMap(cmd *cobra.Command, args []string) error {
	cfg, err := server.LoadConfig(buildMapConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.NewLogger(&cfg.Logging)
	defer func() { _ = logger.Sync() }()

	path, err := resolveCorpusPath(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("resolving corpus: %w", err)
	}

	extractor := gitadoc.NewExtractor(logger)
	if cfg.Corpus.StartPage > 0 {
		extractor.StartPage = cfg.Corpus.StartPage
	}
	pages, pageErrs, err := extractor.ExtractPages(path)
	if err != nil {
		return fmt.Errorf("extracting pages: %w", err)
	}
	for _, pe := range pageErrs {
		logger.Warn("page extraction failed", zap.Int("page", pe.Page), zap.Error(pe.Err))
	}

	corrector := gitadoc.NewCorrector(logger)
	m := corrector.BuildCorrectionMap(pages)
	if err := corrector.SaveCorrectionMap(buildMapOutput); err != nil {
		return fmt.Errorf("saving correction map: %w", err)
	}

	fmt.Printf("Wrote %d corrections to %s\n", len(m), buildMapOutput)
	return nil
}
