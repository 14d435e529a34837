package model

import "github.com/shopspring/decimal"

// Side is one column of a double-entry record.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// Entry is one journal record: a debit line, its paired credit line and a description.
type Entry struct {
	Date          string // free-form, single token
	DebitAccount  string
	DebitAmount   decimal.Decimal
	CreditAccount string
	CreditAmount  decimal.Decimal
	Description   string
}

// Touches reports whether the entry posts to account on either side.
func (e Entry) Touches(account string) bool {
	return e.DebitAccount == account || e.CreditAccount == account
}

// Balanced reports whether both sides carry the same amount.
func (e Entry) Balanced() bool {
	return e.DebitAmount.Equal(e.CreditAmount)
}
