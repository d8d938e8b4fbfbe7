//go:build !tinygo

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"inkclock/app"
	"inkclock/hal"
	"inkclock/internal/clockface"
	"inkclock/internal/config"
	"inkclock/internal/fonts"
	"inkclock/internal/logger"
)

// options are the persistent flags.
type options struct {
	configPath string
	verbose    bool
	display    string
	outputDir  string
}

// loadConfig reads the config and applies flags over it.
func (o *options) loadConfig() (*config.Config, string, error) {
	cfg, used, err := config.Load(o.configPath)
	if err != nil {
		return nil, "", err
	}
	if o.display != "" {
		cfg.Display.Backend = o.display
	}
	if o.outputDir != "" {
		cfg.Display.OutputDir = o.outputDir
	}
	if o.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("config: %w", err)
	}
	return cfg, used, nil
}

// session is an open panel with everything needed to draw on it.
type session struct {
	cfg *config.Config
	log *slog.Logger
	hal hal.HAL
}

func open(ctx context.Context, cmd *cobra.Command, o *options) (*session, error) {
	cfg, used, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	out := cmd.OutOrStdout()
	// Logs written before the HAL exists, e.g. the auto fallback warning.
	log, err := newLogger(cfg, hal.NewLineLogger(out))
	if err != nil {
		return nil, err
	}
	if used != "" {
		log.Debug("config loaded", "path", used)
	}

	h, err := hal.Open(ctx, hal.Options{
		Backend:    cfg.Display.Backend,
		Model:      cfg.Display.Model,
		Accent:     cfg.Accent(),
		Width:      cfg.Display.Width,
		Height:     cfg.Display.Height,
		OutputDir:  cfg.Display.OutputDir,
		KeepFrames: cfg.Display.KeepFrames,
		Title:      "inkclock",
		Log:        out,
		OnFallback: func(err error) {
			log.Warn("no e-paper panel found, running headless", "err", err)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open display: %w", err)
	}
	if log, err = newLogger(cfg, h.Logger()); err != nil {
		_ = h.Close()
		return nil, err
	}
	p := h.Panel()
	log.Info("display ready", "panel", p.Name(), "size", p.Bounds().Size().String(), "colors", len(p.Colors()))
	return &session{cfg: cfg, log: log, hal: h}, nil
}

func (s *session) Close() {
	if err := s.hal.Close(); err != nil {
		s.log.Warn("close display", "err", err)
	}
}

func (s *session) clock(size float64) (*app.Clock, error) {
	r, err := newRenderer(s.cfg, s.hal.Panel().Colors(), loadFace(s.cfg.Font, size, s.log))
	if err != nil {
		return nil, err
	}
	return app.New(s.hal.Panel(), r, s.hal.Clock(), s.log, app.Config{
		Layout: s.cfg.Clock.Layout,
		Poll:   s.cfg.Clock.Poll,
		Border: s.cfg.BorderColor(),
	}), nil
}

// newLogger builds the configured logger over a HAL line sink.
func newLogger(cfg *config.Config, sink hal.Logger) (*slog.Logger, error) {
	log, err := logger.New("inkclock", &cfg.Log, sink)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return log, nil
}

// loadFace picks the builtin bitmap font if one is configured, else the
// TrueType file, falling back to the default face.
func loadFace(cfg config.FontConfig, size float64, log *slog.Logger) fonts.Face {
	if cfg.Builtin != "" {
		face, err := fonts.Builtin(cfg.Builtin)
		if err == nil {
			return face
		}
		log.Warn("builtin font unavailable", "name", cfg.Builtin, "err", err)
	}
	face, fallback, err := fonts.Load(cfg.Path, size)
	if fallback {
		log.Warn("font unavailable, using default", "path", cfg.Path, "err", err)
	}
	return face
}

func newRenderer(cfg *config.Config, inks []hal.Color, face fonts.Face) (*clockface.Renderer, error) {
	align, err := clockface.ParseAlign(cfg.Clock.Align)
	if err != nil {
		return nil, err
	}
	return &clockface.Renderer{
		Face:       face,
		Spacing:    cfg.Clock.Spacing,
		Align:      align,
		Rotation:   cfg.Clock.Rotation,
		Palette:    hal.Palette(inks),
		Foreground: hal.Black.RGBA(),
	}, nil
}
