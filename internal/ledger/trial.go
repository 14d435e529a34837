package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerbook/internal/model"
)

// TrialRow is one account's closing balance as folded into a trial balance.
type TrialRow struct {
	Account string
	Balance Balance
}

// TrialBalance accumulates account balances into debit and credit columns.
// The zero value is ready to use.
type TrialBalance struct {
	Rows      []TrialRow
	DebitSum  decimal.Decimal
	CreditSum decimal.Decimal
}

// Fold adds an account balance to the column it sits on.
func (t *TrialBalance) Fold(account string, b Balance) TrialRow {
	row := TrialRow{Account: account, Balance: b}
	if b.Side == model.SideDebit {
		t.DebitSum = t.DebitSum.Add(b.Amount)
	} else {
		t.CreditSum = t.CreditSum.Add(b.Amount)
	}
	t.Rows = append(t.Rows, row)
	return row
}

// Balanced reports whether the debit and credit columns agree.
func (t *TrialBalance) Balanced() bool {
	return t.DebitSum.Equal(t.CreditSum)
}
