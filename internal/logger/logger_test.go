package logger

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

type captureLog struct {
	mu    sync.Mutex
	lines []string
}

func (c *captureLog) WriteLineString(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, s)
}

func (c *captureLog) WriteLineBytes(b []byte) { c.WriteLineString(string(b)) }

func (c *captureLog) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.lines...)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil || got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseLevel("loud"); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("ParseLevel(loud) err = %v, want ErrInvalidLevel", err)
	}
}

func TestNewConsole(t *testing.T) {
	sink := &captureLog{}
	log, err := New("inkclock", &Config{Level: "info"}, sink)
	if err != nil {
		t.Fatal(err)
	}
	log.Debug("hidden")
	log.Info("display updated", "text", "12:00")

	lines := sink.Lines()
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), lines)
	}
	for _, want := range []string{"level=INFO", `msg="display updated"`, "app=inkclock", "text=12:00"} {
		if !strings.Contains(lines[0], want) {
			t.Fatalf("line %q missing %q", lines[0], want)
		}
	}
}

func TestNewJSON(t *testing.T) {
	sink := &captureLog{}
	log, err := New("inkclock", &Config{Encoding: "json", Level: "debug"}, sink)
	if err != nil {
		t.Fatal(err)
	}
	log.Debug("tick", "changed", false)

	lines := sink.Lines()
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("line is not JSON: %v", err)
	}
	if rec["msg"] != "tick" || rec["app"] != "inkclock" || rec["changed"] != false {
		t.Fatalf("unexpected record %v", rec)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New("x", &Config{Encoding: "xml"}, nil); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("err = %v, want ErrInvalidEncoding", err)
	}
	if _, err := New("x", &Config{Level: "trace"}, nil); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("err = %v, want ErrInvalidLevel", err)
	}
	if err := (Config{Encoding: "xml"}).Validate(); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("Validate err = %v", err)
	}
}

func TestLineWriterSplitsLines(t *testing.T) {
	sink := &captureLog{}
	w := NewLineWriter(sink)
	w.Write([]byte("one\ntw"))
	w.Write([]byte("o\nthree"))

	got := sink.Lines()
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Fatalf("lines = %q", got)
	}
	w.Write([]byte("\n"))
	if got := sink.Lines(); len(got) != 3 || got[2] != "three" {
		t.Fatalf("lines = %q", got)
	}
}
