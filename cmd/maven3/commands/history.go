package commands

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func (c *CLI) newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded invocations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			invocations, err := c.app.History()
			if err != nil {
				return err
			}
			limit, _ := cmd.Flags().GetInt("limit")
			if limit > 0 && len(invocations) > limit {
				invocations = invocations[:limit]
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "STARTED\tBUILD\tMAVEN\tRESULT\tEXIT\tDURATION\tFINGERPRINT")
			for _, inv := range invocations {
				_, _ = fmt.Fprintf(w, "%s\t%s#%d\t%s\t%s\t%s\t%s\t%s\n",
					inv.StartedAt.Local().Format(time.DateTime),
					inv.BuildName, inv.BuildNumber,
					orDash(inv.Installation),
					inv.Result,
					strconv.Itoa(inv.ExitCode),
					inv.Duration.Round(time.Millisecond),
					orDash(inv.Fingerprint),
				)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntP("limit", "n", 20, "Maximum number of invocations to list, 0 for all")
	return cmd
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
