package gitadoc

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// CorpusSourceConfig configures corpus file discovery.
type CorpusSourceConfig struct {
	// BaseDir is the directory to traverse.
	BaseDir string

	// IncludePatterns is a list of glob patterns to include. If empty,
	// all PDF files are included. Supports ** wildcards.
	IncludePatterns []string

	// ExcludePatterns is a list of glob patterns to exclude.
	// Supports ** wildcards.
	ExcludePatterns []string
}

// CorpusSource finds corpus files under a directory by glob pattern.
type CorpusSource struct {
	config CorpusSourceConfig
}

// NewCorpusSource creates a corpus file source.
func NewCorpusSource(config CorpusSourceConfig) *CorpusSource {
	if len(config.IncludePatterns) == 0 {
		config.IncludePatterns = []string{"**/*.pdf"}
	}
	return &CorpusSource{config: config}
}

// Resolve walks the base directory and returns the matching file paths
// in sorted order.
func (cs *CorpusSource) Resolve(ctx context.Context) ([]string, error) {
	var matches []string

	err := filepath.WalkDir(cs.config.BaseDir, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(cs.config.BaseDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if cs.matches(rel) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("corpus traversal failed: %w", err)
	}

	sort.Strings(matches)
	return matches, nil
}

// ResolveOne returns the single corpus file the patterns select, or an
// error when discovery is ambiguous or empty.
func (cs *CorpusSource) ResolveOne(ctx context.Context) (string, error) {
	matches, err := cs.Resolve(ctx)
	if err != nil {
		return "", err
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no corpus file matches %v under %s",
			cs.config.IncludePatterns, cs.config.BaseDir)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%d corpus files match %v under %s, expected one",
			len(matches), cs.config.IncludePatterns, cs.config.BaseDir)
	}
}

func (cs *CorpusSource) matches(rel string) bool {
	included := false
	for _, pattern := range cs.config.IncludePatterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			included = true
			break
		}
		// Also allow bare-name patterns like "*.pdf" to match at depth.
		if ok, err := doublestar.Match(pattern, filepath.Base(rel)); err == nil && ok {
			included = true
			break
		}
	}
	if !included {
		return false
	}

	for _, pattern := range cs.config.ExcludePatterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return false
		}
	}
	return true
}

// StatPath verifies a configured corpus path exists before startup
// proceeds. A missing corpus file is a fatal startup fault.
func StatPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("corpus path unavailable: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("corpus path %s is a directory, expected a file", path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return fmt.Errorf("corpus path %s is not a PDF", path)
	}
	return nil
}
