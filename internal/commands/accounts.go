package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/ledgerbook/internal/accounts"
)

func newAccountsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List the accounts used in the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := a.store().Load()
			if err != nil {
				return err
			}
			if len(j.Skipped) > 0 {
				a.logger.Warn("skipped malformed journal records", zap.Int("count", len(j.Skipped)))
			}

			out := cmd.OutOrStdout()
			names := accounts.Discover(j.Entries).All()
			if len(names) == 0 {
				fmt.Fprintln(out, "No accounts in journal.")
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}
