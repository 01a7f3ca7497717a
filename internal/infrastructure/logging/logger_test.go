package logging

import (
	"log/slog"
	"testing"

	"github.com/nerrad567/zcl-config-core/internal/infrastructure/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	cfg := config.LoggingConfig{
		Level:  "debug",
		Format: "json",
		Output: "stdout",
	}

	logger := New(cfg, "1.0.0")
	if logger == nil {
		t.Fatal("New() returned nil")
	}
	if !logger.Enabled(nil, slog.LevelDebug) {
		t.Error("debug level not enabled")
	}

	quiet := New(config.LoggingConfig{Level: "error", Format: "text", Output: "stderr"}, "1.0.0")
	if quiet.Enabled(nil, slog.LevelInfo) {
		t.Error("info enabled at error level")
	}
}

func TestWith(t *testing.T) {
	logger := Default()

	child := logger.With("component", "endpoint-store")
	if child == nil {
		t.Fatal("With() returned nil")
	}
	if child == logger {
		t.Error("With() returned the same logger")
	}
}

func TestDefault(t *testing.T) {
	logger := Default()
	if logger == nil {
		t.Fatal("Default() returned nil")
	}
	if !logger.Enabled(nil, slog.LevelInfo) {
		t.Error("info level not enabled on default logger")
	}
	if logger.Enabled(nil, slog.LevelDebug) {
		t.Error("debug level enabled on default logger")
	}
}
