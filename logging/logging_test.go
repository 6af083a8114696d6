package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   DebugLevel,
		"INFO":    InfoLevel,
		"":        InfoLevel,
		"warning": WarnLevel,
		" error ": ErrorLevel,
		"fatal":   FatalLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestDefaultLoggerLevelsAndFields(t *testing.T) {
	var stdout, stderr bytes.Buffer
	l := NewDefaultLoggerTo(&stdout, &stderr, false)

	l.Debug("hidden")
	child := l.WithFields(Fields{"component": "server", "n": 5})
	child.Info("recomputed")
	child.Error(errors.New("boom"), "render failed")

	if strings.Contains(stdout.String(), "hidden") {
		t.Fatalf("debug line logged at info level: %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "[INFO] recomputed component=server n=5") {
		t.Fatalf("stdout = %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "[ERROR] render failed: boom component=server n=5") {
		t.Fatalf("stderr = %q", stderr.String())
	}

	l.SetLevel(DebugLevel)
	child.Debug("now visible")
	if !strings.Contains(stdout.String(), "now visible") {
		t.Fatalf("child did not follow parent level: %q", stdout.String())
	}
}

func TestDefaultLoggerFatalExits(t *testing.T) {
	var stdout, stderr bytes.Buffer
	l := NewDefaultLoggerTo(&stdout, &stderr, false)

	code := -1
	l.exit = func(c int) { code = c }
	l.Fatal(errors.New("bad config"), "startup")

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}

func TestWithContextFields(t *testing.T) {
	var stdout, stderr bytes.Buffer
	l := NewDefaultLoggerTo(&stdout, &stderr, false)

	ctx := ContextWithFields(context.Background(), Fields{"remote": "10.0.0.1"})
	ctx = ContextWithFields(ctx, Fields{"path": "/ws"})
	l.WithContext(ctx).Info("connected")

	out := stdout.String()
	if !strings.Contains(out, "path=/ws") || !strings.Contains(out, "remote=10.0.0.1") {
		t.Fatalf("context fields missing: %q", out)
	}

	if got := l.WithContext(context.Background()); got != Logger(l) {
		t.Fatal("WithContext without fields should return the same logger")
	}
}

func TestZapLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	z := NewZapLoggerTo(zapcore.AddSync(&buf), InfoLevel)

	z.Debug("hidden")
	z.WithFields(Fields{"component": "chart"}).Error(errors.New("nan sample"), "render failed", Fields{"n": 3})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if entry["msg"] != "render failed" || entry["component"] != "chart" || entry["error"] != "nan sample" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["n"] != float64(3) {
		t.Fatalf("n = %v, want 3", entry["n"])
	}
}

func TestGlobalLoggerNilDisables(t *testing.T) {
	prev := GetGlobalLogger()
	defer SetGlobalLogger(prev)

	SetGlobalLogger(nil)
	if _, ok := GetGlobalLogger().(*NoOpLogger); !ok {
		t.Fatalf("global logger = %T, want *NoOpLogger", GetGlobalLogger())
	}
	Info("dropped")
}
