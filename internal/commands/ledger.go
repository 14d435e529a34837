package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/ledgerbook/internal/accounts"
	"github.com/cleared-dev/ledgerbook/internal/activity"
	"github.com/cleared-dev/ledgerbook/internal/ledger"
)

func newLedgerCommand(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "ledger [account...]",
		Short: "Build ledger accounts and the trial balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) > 0) {
				return errors.New("name the accounts to build or pass --all, not both")
			}
			return runLedger(cmd.OutOrStdout(), a, args, all)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "build a ledger for every account in the journal")

	return cmd
}

func runLedger(out io.Writer, a *app, names []string, all bool) error {
	j, err := a.store().Load()
	if err != nil {
		return err
	}

	for _, e := range j.Entries {
		if !e.Balanced() {
			a.logger.Warn("entry debit and credit amounts differ",
				zap.String("date", e.Date),
				zap.String("debit", e.DebitAmount.String()),
				zap.String("credit", e.CreditAmount.String()),
			)
		}
	}

	known := accounts.Discover(j.Entries)
	if all {
		names = known.All()
	} else {
		for _, name := range known.Missing(names) {
			a.logger.Warn("account has no postings in the journal", zap.String("account", name))
		}
	}

	for _, name := range names {
		if err := ledger.CheckAccountName(name); err != nil {
			return err
		}
	}

	agg := a.aggregator()
	defer agg.Close()

	for _, name := range names {
		res, err := agg.BuildLedger(name)
		if err != nil {
			return err
		}
		printBalance(out, res)
	}

	tb, err := agg.Finalize()
	if err != nil {
		return err
	}
	printTotals(out, tb, len(j.Skipped))

	log := activity.NewRecorder("ledger")
	log.Log("ledger", "built %d ledgers", len(names))
	log.Log("trial", "debit %s credit %s", tb.DebitSum, tb.CreditSum)
	return a.finish(log, "ledger: "+strings.Join(names, ", "))
}

func printBalance(out io.Writer, res ledger.Result) {
	fmt.Fprintf(out, "%-20s %-6s %s  (%s)\n", res.Account.Name, res.Balance.Side, res.Balance.Amount, res.ReportPath)
}

func printTotals(out io.Writer, tb ledger.TrialBalance, skipped int) {
	fmt.Fprintf(out, "%-20s %-6s %s\n", "TOTAL", "debit", tb.DebitSum)
	fmt.Fprintf(out, "%-20s %-6s %s\n", "", "credit", tb.CreditSum)
	if tb.Balanced() {
		fmt.Fprintln(out, "Trial balance agrees.")
	} else {
		fmt.Fprintln(out, "Trial balance does not agree.")
	}
	if skipped > 0 {
		fmt.Fprintf(out, "Skipped %d malformed journal records.\n", skipped)
	}
}
