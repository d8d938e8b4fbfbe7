//go:build !tinygo

package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"inkclock/hal"
)

func newRunCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the clock (default)",
		Long: `Run detects the display, loads the font and redraws the clock every
minute until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClock(cmd, o)
		},
	}
}

func runClock(cmd *cobra.Command, o *options) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := open(ctx, cmd, o)
	if err != nil {
		return err
	}
	defer s.Close()

	c, err := s.clock(s.cfg.Font.Size)
	if err != nil {
		return err
	}
	if err := hal.Run(ctx, s.hal, c.Run); err != nil {
		return err
	}
	s.log.Info("shutting down", "updates", c.Updates())
	return nil
}

// waitDone blocks until ctx is cancelled.
func waitDone(ctx context.Context) error {
	<-ctx.Done()
	return nil
}
