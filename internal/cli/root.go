//go:build !tinygo

// Package cli is the inkclock command line.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"inkclock/hal"
	"inkclock/internal/buildinfo"
	"inkclock/internal/logger"
)

// NewRootCmd creates the root command. Without a subcommand it runs the clock.
func NewRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "inkclock",
		Short: "Digital clock for e-paper displays",
		Long: `inkclock shows the date, weekday and time on an e-paper panel and
redraws it once a minute.

Panels: Pimoroni Inky pHAT/wHAT (Raspberry Pi), a desktop preview window,
or a headless backend that writes PNG frames.`,
		Version:       buildinfo.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClock(cmd, o)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&o.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/inkclock/config.yaml)")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "Enable debug logging")
	f.StringVar(&o.display, "display", "", "Display backend: auto, inky, headless or window")
	f.StringVar(&o.outputDir, "output-dir", "", "Directory for headless PNG frames")

	cmd.AddCommand(newRunCmd(o))
	cmd.AddCommand(newShowCmd(o))
	cmd.AddCommand(newPreviewCmd(o))
	cmd.AddCommand(newInitCmd(o))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command. Errors are logged to stdout and exit 1.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log, lerr := logger.New("inkclock", nil, hal.NewLineLogger(os.Stdout))
		if lerr == nil {
			log.Error("inkclock failed", "err", err)
		}
		os.Exit(1)
	}
}
