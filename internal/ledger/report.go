package ledger

import (
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/ledgerbook/internal/journal"
	"github.com/cleared-dev/ledgerbook/internal/model"
)

const (
	ledgerRuleWidth = 86
	trialRuleWidth  = 50
)

// WriteReport writes the two-column ledger report for acct: debit postings
// on the left, credit postings on the right, then the closing balance on
// the side it sits on.
func WriteReport(w io.Writer, h journal.Header, acct Account) error {
	rule := journal.Rule(ledgerRuleWidth) + "\n"

	var b strings.Builder
	fmt.Fprintf(&b, "%*s\n", journal.LabelWidth, h.Name)
	fmt.Fprintf(&b, "%*s\n", journal.LabelWidth, acct.Name)
	fmt.Fprintf(&b, "%*s\n", journal.LabelWidth, "LEDGER")
	b.WriteString(rule)
	fmt.Fprintf(&b, "%s%20s%15s%10s%20s%15s\n", "Date", "Particular", "Amount", "Date", "Particular", "Amount")
	b.WriteString(rule)

	for _, l := range acct.Lines {
		if l.Side == model.SideDebit {
			fmt.Fprintf(&b, "%10s %19s %9s|\n", l.Date, l.Account, l.Amount)
		} else {
			fmt.Fprintf(&b, "%41s %8s %19s %14s\n", "|", l.Date, l.Account, l.Amount)
		}
	}

	b.WriteString(rule)
	bal := acct.Balance()
	if bal.Side == model.SideDebit {
		fmt.Fprintf(&b, "%10s %9s\n", "Total", bal.Amount)
	} else {
		fmt.Fprintf(&b, "%55s %14s\n", "Total", bal.Amount)
	}
	b.WriteString(rule)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing ledger %s: %w", acct.Name, err)
	}
	return nil
}

// WriteTrialHeader writes the heading block of one trial balance run.
func WriteTrialHeader(w io.Writer, h journal.Header) error {
	rule := journal.Rule(trialRuleWidth) + "\n"

	var b strings.Builder
	fmt.Fprintf(&b, "%*s\n", journal.LabelWidth, h.Name)
	fmt.Fprintf(&b, "%*s\n", journal.LabelWidth, "TRIAL")
	fmt.Fprintf(&b, "%*s\n", journal.LabelWidth, h.Date)
	b.WriteString(rule)
	fmt.Fprintf(&b, "%10s%15s%15s\n", "Ledger name", "DR Amount", "CR Amount")
	b.WriteString(rule)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing trial header: %w", err)
	}
	return nil
}

// WriteTrialRow writes one account line, its balance in the DR or CR column.
func WriteTrialRow(w io.Writer, row TrialRow) error {
	var err error
	if row.Balance.Side == model.SideDebit {
		_, err = fmt.Fprintf(w, "%10s %14s\n", row.Account, row.Balance.Amount)
	} else {
		_, err = fmt.Fprintf(w, "%10s %29s\n", row.Account, row.Balance.Amount)
	}
	if err != nil {
		return fmt.Errorf("writing trial row %s: %w", row.Account, err)
	}
	return nil
}

// WriteTrialTotals writes the closing totals of both trial columns.
func WriteTrialTotals(w io.Writer, tb *TrialBalance) error {
	rule := journal.Rule(trialRuleWidth) + "\n"

	var b strings.Builder
	b.WriteString(rule)
	fmt.Fprintf(&b, "%10s %14s %14s\n", "TOTAL", tb.DebitSum, tb.CreditSum)
	b.WriteString(rule)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing trial totals: %w", err)
	}
	return nil
}
