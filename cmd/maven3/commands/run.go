package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/maven3/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the Maven build step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := runOptions(cmd)
			opts.PTY, _ = cmd.Flags().GetBool("pty")

			outcome, err := c.app.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if outcome.Result != domain.ResultSuccess {
				return zerr.With(zerr.Wrap(domain.ErrBuildFailed, "maven did not succeed"), "exit_code", outcome.ExitCode)
			}
			return nil
		},
	}
	addStepFlags(cmd)
	addBuildFlags(cmd)
	cmd.Flags().Bool("pty", false, "Run Maven in a pseudo-terminal")
	return cmd
}

func (c *CLI) newCmdlineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmdline",
		Short: "Print the command line the run command would execute",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cl, err := c.app.Cmdline(cmd.Context(), runOptions(cmd))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cl.String())
			return err
		},
	}
	addStepFlags(cmd)
	addBuildFlags(cmd)
	return cmd
}
