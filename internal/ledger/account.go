package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerbook/internal/model"
)

// Line is one posting shown in a ledger report.
type Line struct {
	Side    model.Side
	Date    string
	Account string
	Amount  decimal.Decimal
}

// Account is the ledger view of one account name over a journal.
type Account struct {
	Name      string
	Lines     []Line
	DebitSum  decimal.Decimal
	CreditSum decimal.Decimal
}

// Balance is the closing balance of an account and the side it sits on.
type Balance struct {
	Side   model.Side
	Amount decimal.Decimal
}

// Build collects the entries that post to name, in journal order.
func Build(name string, entries []model.Entry) Account {
	acct := Account{Name: name}
	for _, e := range entries {
		acct.Add(e)
	}
	return acct
}

// Add posts e to the account if it matches. The debit account is checked
// first, so an entry naming the account on both sides posts as a debit.
func (a *Account) Add(e model.Entry) bool {
	if !e.Touches(a.Name) {
		return false
	}
	if e.DebitAccount == a.Name {
		a.Lines = append(a.Lines, Line{Side: model.SideDebit, Date: e.Date, Account: e.DebitAccount, Amount: e.DebitAmount})
		a.DebitSum = a.DebitSum.Add(e.DebitAmount)
	} else {
		a.Lines = append(a.Lines, Line{Side: model.SideCredit, Date: e.Date, Account: e.CreditAccount, Amount: e.CreditAmount})
		a.CreditSum = a.CreditSum.Add(e.CreditAmount)
	}
	return true
}

// Balance returns the closing balance. A debit balance needs the debit sum
// to be strictly larger; equal sums close as a zero credit balance.
func (a Account) Balance() Balance {
	if a.DebitSum.GreaterThan(a.CreditSum) {
		return Balance{Side: model.SideDebit, Amount: a.DebitSum.Sub(a.CreditSum)}
	}
	return Balance{Side: model.SideCredit, Amount: a.CreditSum.Sub(a.DebitSum)}
}
