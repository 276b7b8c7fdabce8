package server

import (
	"testing"

	"github.com/gitaqa/gitaqa-go/logging"
)

func TestLoadConfigFromBytes(t *testing.T) {
	yaml := []byte(`
version: 1
listen: ":8080"
corpus:
  dir: /data/corpus
  include_patterns:
    - "**/*.pdf"
  start_page: 10
logging:
  style: json
  level: debug
`)

	cfg, err := LoadConfigFromBytes(yaml)
	if err != nil {
		t.Fatalf("LoadConfigFromBytes: %v", err)
	}

	if cfg.Listen != ":8080" {
		t.Errorf("Listen = %q, want :8080", cfg.Listen)
	}
	if cfg.Corpus.Dir != "/data/corpus" {
		t.Errorf("Corpus.Dir = %q", cfg.Corpus.Dir)
	}
	if cfg.Corpus.StartPage != 10 {
		t.Errorf("Corpus.StartPage = %d, want 10", cfg.Corpus.StartPage)
	}
	if cfg.Logging.Style != logging.StyleJson {
		t.Errorf("Logging.Style = %q, want json", cfg.Logging.Style)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	// HealthPort was not set and must default.
	if cfg.HealthPort != 9090 {
		t.Errorf("HealthPort = %d, want default 9090", cfg.HealthPort)
	}
}

func TestLoadConfigFromBytes_Invalid(t *testing.T) {
	if _, err := LoadConfigFromBytes([]byte("listen: [")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.Listen != ":8000" {
		t.Errorf("Listen = %q, want :8000", cfg.Listen)
	}
	if cfg.Logging.Style != logging.StyleTerminal {
		t.Errorf("Logging.Style = %q, want terminal", cfg.Logging.Style)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "corpus dir set",
			mutate:  func(c *Config) { c.Corpus.Dir = "/data" },
			wantErr: false,
		},
		{
			name:    "corpus path set",
			mutate:  func(c *Config) { c.Corpus.Path = "/data/gita.pdf" },
			wantErr: false,
		},
		{
			name:    "no corpus at all",
			mutate:  func(c *Config) {},
			wantErr: true,
		},
		{
			name: "negative start page",
			mutate: func(c *Config) {
				c.Corpus.Dir = "/data"
				c.Corpus.StartPage = -1
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
