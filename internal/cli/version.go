//go:build !tinygo

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"inkclock/internal/buildinfo"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "inkclock %s\n", buildinfo.String())
		},
	}
}
