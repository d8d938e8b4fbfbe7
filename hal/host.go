//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"
)

// Backend names accepted by Open.
const (
	BackendAuto     = "auto"
	BackendInky     = "inky"
	BackendHeadless = "headless"
	BackendWindow   = "window"
)

// Inky pHAT resolution, used when nothing else says otherwise.
const (
	DefaultWidth  = 212
	DefaultHeight = 104
)

var ErrUnknownBackend = errors.New("unknown display backend")

// Options selects and configures the host display backend.
type Options struct {
	Backend string
	// Model is "auto", "phat" or "what" (inky only).
	Model string
	// Accent is the third ink of tri-color panels; White or Black means mono.
	Accent Color
	// Width and Height size the headless and window panels.
	Width  int
	Height int
	// OutputDir receives latest.png on every Show (headless only).
	OutputDir string
	// KeepFrames additionally writes frame-<n>.png per Show.
	KeepFrames bool
	// Title is the window title.
	Title string
	// Log receives log lines; defaults to stdout.
	Log io.Writer
	// OnFallback is called when the auto backend could not find a panel.
	OnFallback func(err error)
}

type hostHAL struct {
	logger Logger
	panel  Panel
	clock  systemClock
}

// Open returns a host HAL with the panel selected by opts.
func Open(ctx context.Context, opts Options) (HAL, error) {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	w := opts.Log
	if w == nil {
		w = os.Stdout
	}

	panel, err := openPanel(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &hostHAL{
		logger: NewLineLogger(w),
		panel:  panel,
	}, nil
}

func openPanel(ctx context.Context, opts Options) (Panel, error) {
	switch opts.Backend {
	case BackendInky:
		return openInky(ctx, opts)
	case BackendHeadless:
		return newHeadlessPanel(opts), nil
	case BackendWindow:
		return openWindow(opts)
	case BackendAuto, "":
		if runtime.GOOS == "linux" {
			p, err := openInky(ctx, opts)
			if err == nil {
				return p, nil
			}
			if opts.OnFallback != nil {
				opts.OnFallback(err)
			}
		}
		return newHeadlessPanel(opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}

func (h *hostHAL) Logger() Logger { return h.logger }
func (h *hostHAL) Panel() Panel   { return h.panel }
func (h *hostHAL) Clock() Clock   { return h.clock }
func (h *hostHAL) Close() error   { return h.panel.Close() }

// eventLoop is implemented by panels that must own the calling goroutine.
type eventLoop interface {
	runLoop(ctx context.Context, fn func(context.Context) error) error
}

// Run executes fn against the HAL. Panels with their own event loop (the
// preview window) take over the calling goroutine and run fn beside it, so
// Run must be called from main.
func Run(ctx context.Context, h HAL, fn func(context.Context) error) error {
	if l, ok := h.Panel().(eventLoop); ok {
		return l.runLoop(ctx, fn)
	}
	return fn(ctx)
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// NewLineLogger returns a Logger writing each line to w.
func NewLineLogger(w io.Writer) Logger {
	return &hostLogger{w: w}
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
