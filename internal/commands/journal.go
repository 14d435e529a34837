package commands

import (
	"github.com/spf13/cobra"
)

func newJournalCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "journal",
		Short: "Print the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.store().WriteTo(cmd.OutOrStdout())
			return err
		},
	}
}
