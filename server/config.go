package server

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gitaqa/gitaqa-go/logging"
)

// Config represents the server configuration.
type Config struct {
	// Version of the config format
	Version int `yaml:"version" json:"version"`

	// Listen is the address the question API binds to
	Listen string `yaml:"listen" json:"listen"`

	// HealthPort is the port for the metrics and health endpoints
	HealthPort int `yaml:"health_port" json:"health_port"`

	// Corpus configures the source text
	Corpus CorpusConfig `yaml:"corpus" json:"corpus"`

	// Logging configures log output
	Logging logging.Config `yaml:"logging" json:"logging"`
}

// CorpusConfig configures where the source text comes from.
type CorpusConfig struct {
	// Dir is scanned for PDF files matching the include patterns
	Dir string `yaml:"dir" json:"dir"`

	// Path points at a single PDF and overrides Dir when set
	Path string `yaml:"path,omitempty" json:"path,omitempty"`

	// IncludePatterns are doublestar globs relative to Dir
	IncludePatterns []string `yaml:"include_patterns,omitempty" json:"include_patterns,omitempty"`

	// ExcludePatterns are doublestar globs relative to Dir
	ExcludePatterns []string `yaml:"exclude_patterns,omitempty" json:"exclude_patterns,omitempty"`

	// StartPage is the first PDF page to index
	StartPage int `yaml:"start_page,omitempty" json:"start_page,omitempty"`

	// CorrectionMapPath persists the learned correction map
	CorrectionMapPath string `yaml:"correction_map_path,omitempty" json:"correction_map_path,omitempty"`
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes loads configuration from YAML bytes.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	applyDefaults(&config)
	return &config, nil
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

func applyDefaults(config *Config) {
	if config.Version == 0 {
		config.Version = 1
	}
	if config.Listen == "" {
		config.Listen = ":8000"
	}
	if config.HealthPort == 0 {
		config.HealthPort = 9090
	}
	if config.Logging.Style == "" {
		config.Logging.Style = logging.StyleTerminal
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}

// Validate checks that the configuration can start a server.
func (c *Config) Validate() error {
	if c.Corpus.Dir == "" && c.Corpus.Path == "" {
		return fmt.Errorf("corpus: one of dir or path must be set")
	}
	if c.Corpus.StartPage < 0 {
		return fmt.Errorf("corpus: start_page must not be negative")
	}
	return nil
}
