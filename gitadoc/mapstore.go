package gitadoc

import (
	"fmt"
	"os"

	"github.com/gitaqa/gitaqa-go/jsonx"
)

// DefaultCorrectionMapPath is where the build phase persists its output.
const DefaultCorrectionMapPath = "correction_map.json"

// SaveCorrectionMap writes the correction table as a JSON object of
// string pairs so later startups can skip the corpus scan.
func (c *Corrector) SaveCorrectionMap(path string) error {
	if path == "" {
		path = DefaultCorrectionMapPath
	}

	data, err := jsonx.MarshalIndent(c.correctionMap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode correction map: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write correction map %s: %w", path, err)
	}
	return nil
}

// LoadCorrectionMap reads a previously persisted correction table.
// A missing file is reported so the caller can decide to rebuild.
func (c *Corrector) LoadCorrectionMap(path string) error {
	if path == "" {
		path = DefaultCorrectionMapPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read correction map %s: %w", path, err)
	}

	var m map[string]string
	if err := jsonx.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("failed to decode correction map %s: %w", path, err)
	}
	c.SetCorrectionMap(m)
	return nil
}
