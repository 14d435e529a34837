package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerbook/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func entry(date, debit, credit, amount string) model.Entry {
	return model.Entry{
		Date:          date,
		DebitAccount:  debit,
		DebitAmount:   dec(amount),
		CreditAccount: credit,
		CreditAmount:  dec(amount),
	}
}

func TestBuild_SingleEntry(t *testing.T) {
	entries := []model.Entry{entry("01/01/2024", "Cash", "Sales", "100")}

	cash := Build("Cash", entries)
	assert.True(t, cash.DebitSum.Equal(dec("100")))
	assert.True(t, cash.CreditSum.IsZero())
	bal := cash.Balance()
	assert.Equal(t, model.SideDebit, bal.Side)
	assert.True(t, bal.Amount.Equal(dec("100")))

	sales := Build("Sales", entries)
	assert.True(t, sales.DebitSum.IsZero())
	assert.True(t, sales.CreditSum.Equal(dec("100")))
	bal = sales.Balance()
	assert.Equal(t, model.SideCredit, bal.Side)
	assert.True(t, bal.Amount.Equal(dec("100")))
}

func TestBuild_Sums(t *testing.T) {
	entries := []model.Entry{
		entry("01/01", "Cash", "Capital", "1000"),
		entry("02/01", "Rent", "Cash", "300"),
		entry("03/01", "Cash", "Sales", "250"),
		entry("04/01", "Wages", "Cash", "125.50"),
		entry("05/01", "Rent", "Capital", "10"),
	}

	cash := Build("Cash", entries)
	assert.True(t, cash.DebitSum.Equal(dec("1250")), "debit sum %s", cash.DebitSum)
	assert.True(t, cash.CreditSum.Equal(dec("425.50")), "credit sum %s", cash.CreditSum)
	require.Len(t, cash.Lines, 4)
	assert.Equal(t, []model.Side{model.SideDebit, model.SideCredit, model.SideDebit, model.SideCredit},
		[]model.Side{cash.Lines[0].Side, cash.Lines[1].Side, cash.Lines[2].Side, cash.Lines[3].Side})

	bal := cash.Balance()
	assert.Equal(t, model.SideDebit, bal.Side)
	assert.True(t, bal.Amount.Equal(dec("824.50")))
}

func TestBalance_Sides(t *testing.T) {
	tests := []struct {
		name          string
		debit, credit string
		side          model.Side
		amount        string
	}{
		{"debit larger", "80", "30", model.SideDebit, "50"},
		{"credit larger", "30", "80", model.SideCredit, "50"},
		{"tie closes on credit", "50", "50", model.SideCredit, "0"},
		{"empty account closes on credit", "0", "0", model.SideCredit, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acct := Account{Name: "X", DebitSum: dec(tt.debit), CreditSum: dec(tt.credit)}
			bal := acct.Balance()
			assert.Equal(t, tt.side, bal.Side)
			assert.True(t, bal.Amount.Equal(dec(tt.amount)), "amount %s", bal.Amount)
		})
	}
}

func TestBuild_TieFromEntries(t *testing.T) {
	entries := []model.Entry{
		entry("01/01", "Bank", "Capital", "50"),
		entry("02/01", "Cash", "Bank", "50"),
	}
	bal := Build("Bank", entries).Balance()
	assert.Equal(t, model.SideCredit, bal.Side)
	assert.True(t, bal.Amount.IsZero())
}

func TestBuild_ExactTokenMatch(t *testing.T) {
	entries := []model.Entry{
		entry("01/01", "Cash", "Sales", "10"),
		entry("02/01", "cash", "Sales", "20"),
		entry("03/01", "CashBox", "Sales", "30"),
	}
	cash := Build("Cash", entries)
	assert.Len(t, cash.Lines, 1)
	assert.True(t, cash.DebitSum.Equal(dec("10")))
}

func TestBuild_SameAccountBothSidesPostsDebit(t *testing.T) {
	acct := Build("Cash", []model.Entry{entry("01/01", "Cash", "Cash", "10")})
	require.Len(t, acct.Lines, 1)
	assert.Equal(t, model.SideDebit, acct.Lines[0].Side)
	assert.True(t, acct.CreditSum.IsZero())
}

func TestBuild_UsesEachSidesOwnAmount(t *testing.T) {
	e := model.Entry{
		Date: "01/01", DebitAccount: "Cash", DebitAmount: dec("70"),
		CreditAccount: "Sales", CreditAmount: dec("60"),
	}
	cash := Build("Cash", []model.Entry{e})
	sales := Build("Sales", []model.Entry{e})

	assert.True(t, cash.Lines[0].Amount.Equal(dec("70")))
	assert.True(t, sales.Lines[0].Amount.Equal(dec("60")))
}

func TestBuild_Idempotent(t *testing.T) {
	entries := []model.Entry{
		entry("01/01", "Cash", "Capital", "1000"),
		entry("02/01", "Rent", "Cash", "300"),
	}
	first := Build("Cash", entries)
	second := Build("Cash", entries)
	assert.True(t, first.DebitSum.Equal(second.DebitSum))
	assert.True(t, first.CreditSum.Equal(second.CreditSum))
	assert.Equal(t, first.Balance().Side, second.Balance().Side)
}

func TestBuild_NoMatches(t *testing.T) {
	acct := Build("Nobody", []model.Entry{entry("01/01", "Cash", "Sales", "10")})
	assert.Empty(t, acct.Lines)
	assert.Equal(t, model.SideCredit, acct.Balance().Side)
}
