//go:build !tinygo

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"inkclock/app"
	"inkclock/hal"
)

// fixedClock always reports the same instant.
type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func newPreviewCmd(o *options) *cobra.Command {
	var (
		output string
		at     string
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render one clock frame to a PNG file",
		Long: `Preview renders the clock face the panel would show, without touching
any hardware, and writes it as PNG.

Examples:
  inkclock preview -o clock.png
  inkclock preview --at 2024-03-05T07:09:00Z`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := o.loadConfig()
			if err != nil {
				return err
			}
			log, err := newLogger(cfg, hal.NewLineLogger(cmd.OutOrStdout()))
			if err != nil {
				return err
			}

			now := time.Now()
			if at != "" {
				now, err = time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("--at: %w", err)
				}
			}

			w, h := cfg.Display.Width, cfg.Display.Height
			if w == 0 {
				w = hal.DefaultWidth
			}
			if h == 0 {
				h = hal.DefaultHeight
			}
			panel := hal.NewHeadless(w, h, cfg.Accent(), "")
			r, err := newRenderer(cfg, panel.Colors(), loadFace(cfg.Font, cfg.Font.Size, log))
			if err != nil {
				return err
			}
			c := app.New(panel, r, fixedClock(now), log, app.Config{
				Layout: cfg.Clock.Layout,
				Poll:   cfg.Clock.Poll,
				Border: cfg.BorderColor(),
			})
			if _, err := c.Step(cmd.Context()); err != nil {
				return err
			}

			frame, _ := panel.Frame()
			if err := hal.WritePNG(output, frame); err != nil {
				return err
			}
			log.Info("preview written", "path", output, "text", c.Text(now))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "inkclock.png", "PNG file to write")
	cmd.Flags().StringVar(&at, "at", "", "Render this RFC 3339 time instead of now")
	return cmd
}
