// Package app runs the clock: it redraws the panel whenever the formatted
// time changes and sleeps until the next minute in between.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"inkclock/hal"
	"inkclock/internal/clockface"
)

// DefaultPoll is how long to wait before checking again when the text did
// not change.
const DefaultPoll = time.Second

// Config tunes the clock loop. Zero values take the defaults.
type Config struct {
	// Layout is a strftime layout; "\n" separates lines.
	Layout string
	Poll   time.Duration
	Border hal.Color
}

// Clock owns the panel for the lifetime of Run. Not safe for concurrent use.
type Clock struct {
	panel    hal.Panel
	renderer *clockface.Renderer
	clock    hal.Clock
	log      *slog.Logger
	cfg      Config

	// sleep waits for d or until ctx is done.
	sleep func(ctx context.Context, d time.Duration) error

	last    string
	drawn   bool
	updates uint64
}

// New returns a clock drawing on panel with r.
func New(panel hal.Panel, r *clockface.Renderer, clock hal.Clock, log *slog.Logger, cfg Config) *Clock {
	if cfg.Layout == "" {
		cfg.Layout = clockface.DefaultLayout
	}
	if cfg.Poll <= 0 {
		cfg.Poll = DefaultPoll
	}
	return &Clock{
		panel:    panel,
		renderer: r,
		clock:    clock,
		log:      log,
		cfg:      cfg,
		sleep:    sleepContext,
	}
}

// Text returns what the clock shows at t.
func (c *Clock) Text(t time.Time) string {
	return clockface.Format(t, c.cfg.Layout)
}

// Updates returns how many times the panel was redrawn.
func (c *Clock) Updates() uint64 { return c.updates }

// Step redraws the panel if the text changed since the last redraw and
// returns how long to sleep before the next step.
func (c *Clock) Step(ctx context.Context) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	text := c.Text(c.clock.Now())
	if c.drawn && text == c.last {
		return c.cfg.Poll, nil
	}

	start := time.Now()
	if err := guard(c.log, func() error { return c.draw(text) }); err != nil {
		return 0, err
	}
	c.last = text
	c.drawn = true
	c.updates++
	c.log.Info("display updated", "text", text, "took", time.Since(start).Round(time.Millisecond))

	// The refresh takes seconds on e-paper, so measure after it.
	return clockface.UntilNextMinute(c.clock.Now()), nil
}

// Run sets the border and steps until ctx is cancelled. Cancellation is
// not an error.
func (c *Clock) Run(ctx context.Context) error {
	if err := c.panel.SetBorder(c.cfg.Border); err != nil {
		return fmt.Errorf("set border: %w", err)
	}
	c.log.Info("clock started", "panel", c.panel.Name(), "size", c.panel.Bounds().Size().String())

	for {
		d, err := c.Step(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		c.log.Debug("sleeping", "for", d)
		if err := c.sleep(ctx, d); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}

// ShowMessage draws a fixed text once and returns.
func (c *Clock) ShowMessage(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.panel.SetBorder(c.cfg.Border); err != nil {
		return fmt.Errorf("set border: %w", err)
	}
	if err := guard(c.log, func() error { return c.draw(text) }); err != nil {
		return err
	}
	c.log.Info("message shown", "text", text)
	return nil
}

func (c *Clock) draw(text string) error {
	frame, err := c.renderer.Render(c.panel.Bounds().Size(), text)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := c.panel.SetImage(frame); err != nil {
		return fmt.Errorf("set image: %w", err)
	}
	if err := c.panel.Show(); err != nil {
		return fmt.Errorf("show: %w", err)
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
