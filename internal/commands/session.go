package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/ledgerbook/internal/accounts"
	"github.com/cleared-dev/ledgerbook/internal/activity"
	"github.com/cleared-dev/ledgerbook/internal/journal"
	"github.com/cleared-dev/ledgerbook/internal/ledger"
	"github.com/cleared-dev/ledgerbook/internal/prompt"
	"github.com/cleared-dev/ledgerbook/internal/recorder"
)

func newSessionCommand(a *app) *cobra.Command {
	var fresh bool

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Record entries, then build ledgers and the trial balance interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
			return runSession(cmd.OutOrStdout(), a, p, fresh)
		},
	}

	cmd.Flags().BoolVar(&fresh, "fresh", false, "start a new journal, discarding the existing one")

	return cmd
}

// ask is Choice with end of input read as 0.
func ask(p *prompt.Prompter, label string) (bool, error) {
	yes, err := p.Choice(label)
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	return yes, err
}

func runSession(out io.Writer, a *app, p *prompt.Prompter, fresh bool) error {
	log := activity.NewRecorder("session")
	store := a.store()

	record, err := ask(p, "Press 1 to enter journal entries, else 0")
	if err != nil {
		return err
	}
	if record {
		n, err := recorder.New(store, p, a.logger, a.cfg.Book.Name).Session(fresh)
		if n > 0 {
			log.Log("record", "recorded %d entries in %s", n, store.Path())
		}
		if err != nil {
			return errors.Join(err, a.finish(log, fmt.Sprintf("session: %d entries", n)))
		}
	}

	exists, err := store.Exists()
	if err != nil {
		return err
	}
	if !exists {
		p.Printf("\n\tNo journal at %s yet.\n", store.Path())
		return a.finish(log, "session")
	}

	j, err := store.Load()
	if err != nil {
		return err
	}
	known := accounts.Discover(j.Entries)

	view, err := ask(p, "Enter 1 to display your journal entries, else 0")
	if err != nil {
		return err
	}
	if view {
		fmt.Fprintln(out)
		if _, err := store.WriteTo(out); err != nil {
			return err
		}
	}

	agg := a.aggregator()
	defer agg.Close()

	for {
		add, err := ask(p, "Enter 1 to add a new ledger account (T-Account), else 0")
		if err != nil {
			return err
		}
		if !add {
			break
		}

		name, err := p.Token("Enter the ledger name")
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		res, err := agg.BuildLedger(name)
		switch {
		case errors.Is(err, ledger.ErrInvalidAccountName):
			p.Printf("\t%v; please try again.\n", err)
			continue
		case errors.Is(err, journal.ErrStoreUnavailable):
			p.Printf("\tLedger %s was not built: %v\n", name, err)
			continue
		case err != nil:
			return err
		}
		if !known.Exists(name) {
			a.logger.Warn("account has no postings in the journal", zap.String("account", name))
		}
		fmt.Fprintln(out)
		printBalance(out, res)
	}

	tb, err := agg.Finalize()
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	printTotals(out, tb, len(j.Skipped))
	log.Log("ledger", "built %d ledgers", len(agg.Reports()))
	log.Log("trial", "debit %s credit %s", tb.DebitSum, tb.CreditSum)

	view, err = ask(p, "Enter 1 to view your ledger accounts, else 0")
	if err != nil {
		return err
	}
	if view {
		for _, path := range agg.Reports() {
			if err := printFile(out, path); err != nil {
				return err
			}
		}
	}

	return a.finish(log, "session")
}

func printFile(out io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	fmt.Fprintln(out)
	if _, err := io.Copy(out, f); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}
