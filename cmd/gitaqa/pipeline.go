package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/gitaqa/gitaqa-go/gitadoc"
	"github.com/gitaqa/gitaqa-go/qa"
	"github.com/gitaqa/gitaqa-go/server"
)

// resolveCorpusPath picks the PDF named by the config, either directly
// or by scanning the corpus directory.
func resolveCorpusPath(ctx context.Context, cfg *server.Config) (string, error) {
	if cfg.Corpus.Path != "" {
		if err := gitadoc.StatPath(cfg.Corpus.Path); err != nil {
			return "", err
		}
		return cfg.Corpus.Path, nil
	}
	source := gitadoc.NewCorpusSource(gitadoc.CorpusSourceConfig{
		BaseDir:         cfg.Corpus.Dir,
		IncludePatterns: cfg.Corpus.IncludePatterns,
		ExcludePatterns: cfg.Corpus.ExcludePatterns,
	})
	return source.ResolveOne(ctx)
}

// buildSystem runs the full indexing pipeline and returns a ready
// question answering system.
func buildSystem(ctx context.Context, cfg *server.Config, logger *zap.Logger) (*qa.System, error) {
	path, err := resolveCorpusPath(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolving corpus: %w", err)
	}

	extractor := gitadoc.NewExtractor(logger)
	if cfg.Corpus.StartPage > 0 {
		extractor.StartPage = cfg.Corpus.StartPage
	}
	pages, pageErrs, err := extractor.ExtractPages(path)
	if err != nil {
		return nil, fmt.Errorf("extracting pages: %w", err)
	}
	for _, pe := range pageErrs {
		logger.Warn("page extraction failed", zap.Int("page", pe.Page), zap.Error(pe.Err))
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no text extracted from %s", path)
	}

	corrector := gitadoc.NewCorrector(logger)
	mapPath := cfg.Corpus.CorrectionMapPath
	if mapPath != "" {
		if _, statErr := os.Stat(mapPath); statErr == nil {
			if err := corrector.LoadCorrectionMap(mapPath); err != nil {
				return nil, fmt.Errorf("loading correction map: %w", err)
			}
			logger.Info("loaded correction map", zap.String("path", mapPath))
		}
	}
	if len(corrector.CorrectionMap()) == 0 {
		corrector.BuildCorrectionMap(pages)
		if mapPath != "" {
			if err := corrector.SaveCorrectionMap(mapPath); err != nil {
				logger.Warn("saving correction map failed", zap.String("path", mapPath), zap.Error(err))
			}
		}
	}

	verses := gitadoc.NewVerseIndexer(logger).BuildIndex(pages)
	docs := gitadoc.BuildDocuments(pages, path)

	logger.Info("corpus indexed",
		zap.String("path", path),
		zap.Int("pages", len(pages)),
		zap.Int("documents", len(docs)),
		zap.Int("verses", len(verses)))

	return qa.NewSystem(qa.SystemConfig{
		Docs:          docs,
		Verses:        verses,
		TextCorrector: corrector,
		Source:        path,
	}, logger), nil
}
