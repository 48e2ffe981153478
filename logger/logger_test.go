package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected default level info, got %s", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected default format console, got %s", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected default output stdout, got %s", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamps enabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "debug", Format: "json"}, false},
		{"bad_level", Config{Level: "loud", Format: "json"}, true},
		{"bad_format", Config{Level: "info", Format: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoggerWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	log := FromZerolog(zerolog.New(&buf))

	log.Info("request sent", Fields(FieldStatus, 200, FieldURL, "/todos"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "request sent" {
		t.Errorf("unexpected message %v", entry["message"])
	}
	if entry[FieldStatus] != float64(200) {
		t.Errorf("unexpected status %v", entry[FieldStatus])
	}
	if entry[FieldURL] != "/todos" {
		t.Errorf("unexpected url %v", entry[FieldURL])
	}
}

func TestLoggerWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := FromZerolog(zerolog.New(&buf)).WithComponent("httpclient")

	log.Warn("slow response")

	if !strings.Contains(buf.String(), `"component":"httpclient"`) {
		t.Errorf("expected component field, got %q", buf.String())
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := FromZerolog(zerolog.New(&buf).Level(zerolog.InfoLevel))

	log.Debug("should not appear")
	if buf.Len() != 0 {
		t.Errorf("debug output should be filtered, got %q", buf.String())
	}

	log.Info("should appear")
	if buf.Len() == 0 {
		t.Error("info output should pass the filter")
	}
}

func TestFieldsBuilder(t *testing.T) {
	m := Fields("a", 1, "b", "two", 3, "dropped-key-not-string")
	if len(m) != 2 {
		t.Errorf("expected 2 fields, got %d", len(m))
	}
	if m["a"] != 1 || m["b"] != "two" {
		t.Errorf("unexpected fields %v", m)
	}
}
