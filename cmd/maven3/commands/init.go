package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a step file",
		Long:  "Write a step file holding the given step flags. The format follows the extension: .yaml, .yml or .toml.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			if len(args) == 1 {
				path = args[0]
			}
			return c.app.Init(path, stepConfig(cmd))
		},
	}
	addStepFlags(cmd)
	return cmd
}
