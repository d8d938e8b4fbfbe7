//go:build !tinygo

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"inkclock/internal/config"
)

func newInitCmd(o *options) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Init writes a configuration file holding every default, at --config or
$XDG_CONFIG_HOME/inkclock/config.yaml.

Examples:
  inkclock init
  inkclock init --config ./inkclock.yaml --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := o.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			if err := config.Save(path, config.Default(), force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}
