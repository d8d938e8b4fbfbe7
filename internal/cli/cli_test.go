//go:build !tinygo

package cli

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"

	"inkclock/internal/config"
)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

// writeConfig saves a headless config with the builtin font so tests do not
// depend on fonts installed on the machine.
func writeConfig(t *testing.T) string {
	t.Helper()
	cfg := config.Default()
	cfg.Display.Backend = "headless"
	cfg.Font.Builtin = "freesans9"
	cfg.Clock.Rotation = 0
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := config.Save(path, cfg, false); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "inkclock" {
			t.Errorf("expected use 'inkclock', got %q", cmd.Use)
		}
	})

	t.Run("has version", func(t *testing.T) {
		t.Parallel()
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("has global flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"config", "verbose", "display", "output-dir"} {
			if cmd.PersistentFlags().Lookup(name) == nil {
				t.Errorf("expected --%s flag", name)
			}
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()
		want := map[string]bool{"run": false, "show": false, "preview": false, "init": false, "version": false}
		for _, sub := range cmd.Commands() {
			if _, ok := want[sub.Name()]; ok {
				want[sub.Name()] = true
			}
		}
		for name, found := range want {
			if !found {
				t.Errorf("expected %s subcommand", name)
			}
		}
	})
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	out, err := execute(t, context.Background(), "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "inkclock ") || !strings.Contains(out, "commit") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestInitCmd(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "inkclock", "config.yaml")
	out, err := execute(t, context.Background(), "init", "--config", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("expected the path in %q", out)
	}
	if _, err := execute(t, context.Background(), "init", "--config", path); err == nil {
		t.Error("expected an error when the file exists")
	}
	if _, err := execute(t, context.Background(), "init", "--config", path, "--force"); err != nil {
		t.Errorf("--force: %v", err)
	}
}

func TestPreviewCmd(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "clock.png")
	logs, err := execute(t, context.Background(),
		"preview", "--config", writeConfig(t), "-o", out, "--at", "2024-03-05T07:09:00Z")
	if err != nil {
		t.Fatalf("preview: %v\n%s", err, logs)
	}
	if !strings.Contains(logs, "07:09") {
		t.Errorf("expected the rendered time in the logs: %s", logs)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Size(); got.X != 212 || got.Y != 104 {
		t.Errorf("expected 212x104, got %v", got)
	}
}

func TestPreviewRejectsBadTime(t *testing.T) {
	t.Parallel()

	_, err := execute(t, context.Background(),
		"preview", "--config", writeConfig(t), "-o", filepath.Join(t.TempDir(), "x.png"), "--at", "noon")
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestShowCmd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	logs, err := execute(t, context.Background(),
		"show", "Hello World", "--config", writeConfig(t), "--output-dir", dir)
	if err != nil {
		t.Fatalf("show: %v\n%s", err, logs)
	}
	if _, err := os.Stat(filepath.Join(dir, "latest.png")); err != nil {
		t.Errorf("expected latest.png: %v", err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	logs, err := execute(t, ctx, "run", "--config", writeConfig(t), "--display", "headless")
	if err != nil {
		t.Fatalf("run: %v\n%s", err, logs)
	}
	if !strings.Contains(logs, "shutting down") {
		t.Errorf("expected a shutdown line in %s", logs)
	}
}

func TestInvalidConfigFails(t *testing.T) {
	t.Parallel()

	_, err := execute(t, context.Background(), "run", "--config", writeConfig(t), "--display", "hdmi")
	if err == nil {
		t.Fatal("expected an error for an unknown backend")
	}
}

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

func TestNewLoggerWritesToSink(t *testing.T) {
	t.Parallel()

	sink := &captureLog{}
	log, err := newLogger(config.Default(), sink)
	if err != nil {
		t.Fatal(err)
	}
	log.Info("display updated")
	if len(sink.lines) != 1 || !strings.Contains(sink.lines[0], "display updated") {
		t.Errorf("unexpected lines %q", sink.lines)
	}
}

func TestSessionLogsThroughHAL(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	s, err := open(context.Background(), cmd, &options{configPath: writeConfig(t)})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	before := out.Len()
	s.hal.Logger().WriteLineString("from hal")
	s.log.Info("from session")
	got := out.String()[before:]
	if got == "" || !strings.HasPrefix(got, "from hal\n") || !strings.Contains(got, "from session") {
		t.Errorf("session logger does not share the HAL sink: %q", got)
	}
}
