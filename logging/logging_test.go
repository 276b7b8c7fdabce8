package logging

import "testing"

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{"nil config", nil},
		{"empty config", &Config{}},
		{"noop", &Config{Style: StyleNoop}},
		{"json debug", &Config{Style: StyleJson, Level: "debug"}},
		{"terminal warn", &Config{Style: StyleTerminal, Level: "warn"}},
		{"bad level falls back", &Config{Style: StyleNoop, Level: "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.cfg)
			if logger == nil {
				t.Fatal("NewLogger() = nil")
			}
			logger.Debug("probe")
		})
	}
}
