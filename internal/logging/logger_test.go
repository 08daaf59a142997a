// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("expected default level 'info', got '%s'", cfg.Level)
	}
	if cfg.Format != FormatJSON {
		t.Errorf("expected default format 'json', got '%s'", cfg.Format)
	}
	if cfg.Caller {
		t.Error("expected default caller to be false")
	}
	if !cfg.Timestamp {
		t.Error("expected default timestamp to be true")
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger := New(Config{Level: "debug", Format: "json", Timestamp: true, Output: &buf})
	logger.Info().Str("title", "Heat").Msg("test message")

	output := buf.String()
	for _, want := range []string{`"message":"test message"`, `"level":"info"`, `"title":"Heat"`, `"time":`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %s, got: %s", want, output)
		}
	}
}

func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer

	logger := New(Config{Level: "warn", Output: &buf})
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("info message emitted at warn level: %s", output)
	}
	if !strings.Contains(output, "shown") {
		t.Errorf("warn message missing: %s", output)
	}
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer

	logger := New(Config{Level: "info", Format: "console", Output: &buf})
	logger.Info().Msg("console test")

	output := buf.String()
	if strings.Contains(output, `"level"`) {
		t.Errorf("expected console format (not JSON): %s", output)
	}
	if !strings.Contains(output, "console test") {
		t.Errorf("expected message in output: %s", output)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"disabled", zerolog.Disabled},
		{"off", zerolog.Disabled},
		{" DEBUG ", zerolog.DebugLevel},
		{"invalid", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidLevel(t *testing.T) {
	t.Parallel()

	if !ValidLevel("Warn") {
		t.Error("ValidLevel(Warn) = false")
	}
	if ValidLevel("verbose") {
		t.Error("ValidLevel(verbose) = true")
	}
}

func TestWithComponent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := WithComponent(NewTestLogger(&buf), "catalog")
	logger.Info().Msg("loaded")

	if !strings.Contains(buf.String(), `"component":"catalog"`) {
		t.Errorf("expected component field in output: %s", buf.String())
	}
}

func TestNewConsoleTestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewConsoleTestLogger(&buf)
	logger.Info().Str("key", "value").Msg("console message")

	output := buf.String()
	if !strings.Contains(output, "console message") || !strings.Contains(output, "key=value") {
		t.Errorf("unexpected console output: %s", output)
	}
}
