package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEntryTouches(t *testing.T) {
	e := Entry{DebitAccount: "Cash", CreditAccount: "Sales"}

	tests := []struct {
		account string
		want    bool
	}{
		{"Cash", true},
		{"Sales", true},
		{"cash", false},
		{"Cash ", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, e.Touches(tt.account), "Touches(%q)", tt.account)
	}
}

func TestEntryBalanced(t *testing.T) {
	e := Entry{DebitAmount: decimal.NewFromInt(100), CreditAmount: decimal.RequireFromString("100.00")}
	assert.True(t, e.Balanced())

	e.CreditAmount = decimal.NewFromInt(99)
	assert.False(t, e.Balanced())
}
