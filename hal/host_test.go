//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"
)

func blackImage(w, h int) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, w, h), Palette([]Color{White, Black}))
	for i := range img.Pix {
		img.Pix[i] = 1
	}
	return img
}

func TestHeadlessShow(t *testing.T) {
	dir := t.TempDir()
	p := NewHeadless(8, 4, Black, dir)

	if err := p.Show(); !errors.Is(err, ErrNoImage) {
		t.Fatalf("Show before SetImage = %v, want ErrNoImage", err)
	}
	if err := p.SetImage(nil); !errors.Is(err, ErrNoImage) {
		t.Fatalf("SetImage(nil) = %v, want ErrNoImage", err)
	}

	if err := p.SetImage(blackImage(8, 4)); err != nil {
		t.Fatal(err)
	}
	if _, shows := p.Frame(); shows != 0 {
		t.Fatal("SetImage reached the glass before Show")
	}
	if err := p.Show(); err != nil {
		t.Fatal(err)
	}

	frame, shows := p.Frame()
	if shows != 1 || inkAt(frame, p.Colors(), 3, 2) != Black {
		t.Fatalf("shows = %d, frame not black", shows)
	}
	if _, err := os.Stat(filepath.Join(dir, "latest.png")); err != nil {
		t.Fatalf("latest.png: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "frame-000001.png")); !os.IsNotExist(err) {
		t.Fatalf("frame file written without KeepFrames: %v", err)
	}
}

func TestHeadlessKeepFrames(t *testing.T) {
	dir := t.TempDir()
	p := newHeadlessPanel(Options{Width: 4, Height: 4, OutputDir: dir, KeepFrames: true})
	if err := p.SetImage(blackImage(4, 4)); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if err := p.Show(); err != nil {
			t.Fatal(err)
		}
	}
	for _, name := range []string{"frame-000001.png", "frame-000002.png", "latest.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
}

func TestHeadlessClosed(t *testing.T) {
	p := NewHeadless(4, 4, Black, "")
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if err := p.SetBorder(Black); !errors.Is(err, ErrClosed) {
		t.Fatalf("SetBorder after Close = %v", err)
	}
	if err := p.SetImage(blackImage(4, 4)); !errors.Is(err, ErrClosed) {
		t.Fatalf("SetImage after Close = %v", err)
	}
}

func TestOpenHeadless(t *testing.T) {
	var out bytes.Buffer
	h, err := Open(context.Background(), Options{Backend: BackendHeadless, Log: &out})
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	if got := h.Panel().Bounds(); got != image.Rect(0, 0, DefaultWidth, DefaultHeight) {
		t.Fatalf("bounds = %v", got)
	}
	if h.Panel().Name() != BackendHeadless {
		t.Fatalf("name = %q", h.Panel().Name())
	}
	h.Logger().WriteLineString("hello")
	h.Logger().WriteLineBytes([]byte("world"))
	if out.String() != "hello\nworld\n" {
		t.Fatalf("log = %q", out.String())
	}
	if h.Clock().Now().IsZero() {
		t.Fatal("zero time")
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := Open(context.Background(), Options{Backend: "hdmi"}); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("err = %v, want ErrUnknownBackend", err)
	}
}

func TestRunWithoutEventLoop(t *testing.T) {
	h, err := Open(context.Background(), Options{Backend: BackendHeadless, Log: &bytes.Buffer{}})
	if err != nil {
		t.Fatal(err)
	}
	called := false
	err = Run(context.Background(), h, func(context.Context) error {
		called = true
		return nil
	})
	if err != nil || !called {
		t.Fatalf("Run() = %v, called = %v", err, called)
	}
}
