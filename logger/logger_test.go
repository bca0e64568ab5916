package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.component != "test-svc" {
		t.Errorf("expected component 'test-svc', got %q", l.component)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "invalid-level", Format: "json"}, "test", &buf)
	l.Debug("hidden")
	l.Info("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected invalid level to fall back to info, got %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("expected info message, got %q", out)
	}
}

func TestJSONFormatFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "debug", Format: "json"}, "cli", &buf)
	l.Info("parsed", Fields("bytes", 7, FieldOperation, "parse"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", buf.String(), err)
	}
	checks := map[string]any{
		"level":        "info",
		"message":      "parsed",
		FieldComponent: "cli",
		FieldOperation: "parse",
		"bytes":        float64(7),
	}
	for k, want := range checks {
		if entry[k] != want {
			t.Errorf("field %q = %v, want %v", k, entry[k], want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "warn", Format: "json"}, "", &buf)
	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines at warn level, got %d: %q", len(lines), buf.String())
	}
}

func TestConsoleFormatNoColor(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: "console", NoColor: true}, "cli", &buf)
	l.Warn("careful")
	out := buf.String()
	if !strings.Contains(out, "[CLI][WRN]") {
		t.Errorf("expected component and level tags, got %q", out)
	}
	if !strings.Contains(out, "careful") {
		t.Errorf("expected message, got %q", out)
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("expected no colour codes, got %q", out)
	}
	if strings.Contains(out, "<nil>") {
		t.Errorf("expected no timestamp placeholder without Timestamp, got %q", out)
	}
	if !strings.HasPrefix(out, "[CLI][WRN] careful") {
		t.Errorf("expected line to start with tags and message, got %q", out)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Format: "json"}, "", &buf)
	l.WithComponent("handler").Info("x")
	if !strings.Contains(buf.String(), `"component":"handler"`) {
		t.Errorf("expected component field, got %q", buf.String())
	}
}

func TestWithFieldsAndError(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Format: "json"}, "", &buf)
	l.WithFields(map[string]any{"key": "value"}).WithError(errors.New("boom")).Error("failed")
	out := buf.String()
	if !strings.Contains(out, `"key":"value"`) {
		t.Errorf("expected key field, got %q", out)
	}
	if !strings.Contains(out, `"error":"boom"`) {
		t.Errorf("expected error field, got %q", out)
	}
}

func TestInitAndGlobal(t *testing.T) {
	t.Cleanup(func() { globalLogger = nil })

	cfg := Config{Level: "info", Format: "console"}
	Init(&cfg)
	if cfg.Output != "stderr" {
		t.Errorf("expected Init to apply defaults, got output %q", cfg.Output)
	}
	if GetGlobalLogger() == nil {
		t.Fatal("expected global logger to be set after Init")
	}

	var buf bytes.Buffer
	SetGlobalLogger(NewWithWriter(&Config{Level: "debug", Format: "json"}, "", &buf))
	Debug("debug msg")
	Info("info msg")
	Warn("warn msg")
	Error("error msg")
	WithComponent("pkg").Info("component msg")
	if n := strings.Count(buf.String(), "\n"); n != 5 {
		t.Errorf("expected 5 lines from package-level functions, got %d", n)
	}
}

func TestGetGlobalLoggerDefault(t *testing.T) {
	t.Cleanup(func() { globalLogger = nil })
	globalLogger = nil
	if GetGlobalLogger() == nil {
		t.Fatal("expected default global logger to be created")
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("expected output 'stderr', got %q", cfg.Output)
	}
	if cfg.Prefix != nil {
		t.Errorf("expected prefix to stay unset, got %q", *cfg.Prefix)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "json", Output: "stdout"}, false},
		{"valid console", Config{Level: "debug", Format: "console", Output: "stderr"}, false},
		{"invalid level", Config{Level: "bad", Format: "json", Output: "stderr"}, true},
		{"invalid format", Config{Level: "info", Format: "xml", Output: "stderr"}, true},
		{"invalid output", Config{Level: "info", Format: "json", Output: "file"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestFields(t *testing.T) {
	m := Fields("a", 1, 2, "skipped", "b", "x", "dangling")
	if len(m) != 2 || m["a"] != 1 || m["b"] != "x" {
		t.Errorf("unexpected fields %v", m)
	}

	ef := ErrorFields("parse", errors.New("bad"))
	if ef[FieldOperation] != "parse" || ef[FieldError] != "bad" {
		t.Errorf("unexpected error fields %v", ef)
	}
}
