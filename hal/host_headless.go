//go:build !tinygo

package hal

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// HeadlessPanel is a software panel. Shown frames stay in memory and, when an
// output directory is set, are written out as PNG.
type HeadlessPanel struct {
	*hostFramebuffer
	dir  string
	keep bool
}

func newHeadlessPanel(opts Options) *HeadlessPanel {
	return &HeadlessPanel{
		hostFramebuffer: newHostFramebuffer(opts.Width, opts.Height, opts.Accent),
		dir:             opts.OutputDir,
		keep:            opts.KeepFrames,
	}
}

// NewHeadless returns a software panel of the given size.
func NewHeadless(width, height int, accent Color, outputDir string) *HeadlessPanel {
	return newHeadlessPanel(Options{Width: width, Height: height, Accent: accent, OutputDir: outputDir})
}

func (p *HeadlessPanel) Name() string { return BackendHeadless }

func (p *HeadlessPanel) Show() error {
	frame, seq, err := p.present()
	if err != nil {
		return err
	}
	if p.dir == "" {
		return nil
	}
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("headless: create %q: %w", p.dir, err)
	}
	if p.keep {
		if err := WritePNG(filepath.Join(p.dir, fmt.Sprintf("frame-%06d.png", seq)), frame); err != nil {
			return err
		}
	}
	return WritePNG(filepath.Join(p.dir, "latest.png"), frame)
}

// Frame returns the frame currently on the glass and how many times Show
// succeeded.
func (p *HeadlessPanel) Frame() (*image.Paletted, uint64) {
	return p.snapshot()
}

// WritePNG encodes img to path, replacing it atomically.
func WritePNG(path string, img image.Image) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".frame-*.png")
	if err != nil {
		return fmt.Errorf("write png %q: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := png.Encode(tmp, img); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encode png %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write png %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write png %q: %w", path, err)
	}
	return nil
}
