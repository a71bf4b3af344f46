package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/occupancy-schedule/internal/config"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
		wantErr  bool
	}{
		{input: "debug", expected: zapcore.DebugLevel},
		{input: "", expected: zapcore.InfoLevel},
		{input: "INFO", expected: zapcore.InfoLevel},
		{input: "warning", expected: zapcore.WarnLevel},
		{input: "warn", expected: zapcore.WarnLevel},
		{input: "error", expected: zapcore.ErrorLevel},
		{input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseLevel(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLevel(%q) error = %v", tt.input, err)
			}
			if level != tt.expected {
				t.Errorf("ParseLevel(%q) = %s, expected %s", tt.input, level, tt.expected)
			}
		})
	}
}

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name         string
		logging      config.LoggingConfig
		override     string
		wantEncoding string
		wantLevel    zapcore.Level
		wantErr      bool
	}{
		{
			name:         "Defaults to json at info",
			wantEncoding: "json",
			wantLevel:    zapcore.InfoLevel,
		},
		{
			name:         "Console at debug",
			logging:      config.LoggingConfig{Level: "debug", Format: "console"},
			wantEncoding: "console",
			wantLevel:    zapcore.DebugLevel,
		},
		{
			name:         "Override wins",
			logging:      config.LoggingConfig{Level: "debug"},
			override:     "error",
			wantEncoding: "json",
			wantLevel:    zapcore.ErrorLevel,
		},
		{
			name:    "Invalid level",
			logging: config.LoggingConfig{Level: "loud"},
			wantErr: true,
		},
		{
			name:    "Invalid format",
			logging: config.LoggingConfig{Format: "xml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewConfig(tt.logging, tt.override)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NewConfig() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewConfig() error = %v", err)
			}
			if cfg.Encoding != tt.wantEncoding {
				t.Errorf("encoding = %s, expected %s", cfg.Encoding, tt.wantEncoding)
			}
			if cfg.Level.Level() != tt.wantLevel {
				t.Errorf("level = %s, expected %s", cfg.Level.Level(), tt.wantLevel)
			}
		})
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "schedule.log")

	logger, err := New(config.LoggingConfig{Level: "info", Format: "json", OutputFile: path}, "")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("schedule built")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "schedule built") {
		t.Errorf("expected log line in file, got %q", string(data))
	}
}
