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

func newShowCmd(o *options) *cobra.Command {
	var hold bool
	cmd := &cobra.Command{
		Use:   "show [message]",
		Short: "Draw a message once",
		Long: `Show renders a static message centered on the panel and exits.
Without an argument it shows clock.message from the config.

Examples:
  inkclock show "Back at 3"
  inkclock show --display window --hold`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s, err := open(ctx, cmd, o)
			if err != nil {
				return err
			}
			defer s.Close()

			text := s.cfg.Clock.Message
			if len(args) == 1 {
				text = args[0]
			}
			c, err := s.clock(s.cfg.Font.MessageSize)
			if err != nil {
				return err
			}
			return hal.Run(ctx, s.hal, func(ctx context.Context) error {
				if err := c.ShowMessage(ctx, text); err != nil {
					return err
				}
				if hold {
					return waitDone(ctx)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&hold, "hold", false, "Keep running until interrupted (for the preview window)")
	return cmd
}
