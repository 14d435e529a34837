package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerbook/internal/activity"
	"github.com/cleared-dev/ledgerbook/internal/prompt"
	"github.com/cleared-dev/ledgerbook/internal/recorder"
)

func newRecordCommand(a *app) *cobra.Command {
	var fresh bool

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record journal entries interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
			return runRecord(a, p, fresh)
		},
	}

	cmd.Flags().BoolVar(&fresh, "fresh", false, "start a new journal, discarding the existing one")

	return cmd
}

func runRecord(a *app, p *prompt.Prompter, fresh bool) error {
	store := a.store()
	rec := recorder.New(store, p, a.logger, a.cfg.Book.Name)

	n, err := rec.Session(fresh)
	log := activity.NewRecorder("record")
	if n > 0 {
		log.Log("record", "recorded %d entries in %s", n, store.Path())
	}
	if ferr := a.finish(log, fmt.Sprintf("record: %d entries", n)); err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}

	p.Printf("\n%d entries recorded in %s\n", n, store.Path())
	return nil
}
