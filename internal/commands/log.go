package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerbook/internal/activity"
)

func newLogCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show what earlier commands did to the book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := activity.Read(a.bookDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No activity recorded.")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s  %-8s %-8s %s\n", e.Timestamp.Format(time.RFC3339), e.Command, e.Action, e.Details)
			}
			return nil
		},
	}
}
