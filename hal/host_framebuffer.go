//go:build !tinygo

package hal

import (
	"image"
	"sync"
)

// hostFramebuffer is the in-memory state shared by the software panels.
type hostFramebuffer struct {
	mu      sync.Mutex
	bounds  image.Rectangle
	inks    []Color
	border  Color
	pending *image.Paletted
	shown   *image.Paletted
	shows   uint64
	closed  bool
}

func newHostFramebuffer(width, height int, accent Color) *hostFramebuffer {
	return &hostFramebuffer{
		bounds: image.Rect(0, 0, width, height),
		inks:   inksFor(accent),
	}
}

func (f *hostFramebuffer) Bounds() image.Rectangle { return f.bounds }

func (f *hostFramebuffer) Colors() []Color {
	out := make([]Color, len(f.inks))
	copy(out, f.inks)
	return out
}

func (f *hostFramebuffer) SetBorder(c Color) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	f.border = c
	return nil
}

func (f *hostFramebuffer) SetImage(img image.Image) error {
	if img == nil {
		return ErrNoImage
	}
	frame := quantize(img, f.bounds, f.inks)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	f.pending = frame
	return nil
}

// present promotes the pending frame and returns it with its sequence number.
func (f *hostFramebuffer) present() (*image.Paletted, uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil, 0, ErrClosed
	}
	if f.pending == nil {
		return nil, 0, ErrNoImage
	}
	f.shown = f.pending
	f.shows++
	return f.shown, f.shows, nil
}

// snapshot returns the frame on the glass and its sequence number.
func (f *hostFramebuffer) snapshot() (*image.Paletted, uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shown, f.shows
}

func (f *hostFramebuffer) Border() Color {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.border
}

func (f *hostFramebuffer) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}
