package journal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerbook/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func entry(date, debit, credit, amount, desc string) model.Entry {
	return model.Entry{
		Date:          date,
		DebitAccount:  debit,
		DebitAmount:   dec(amount),
		CreditAccount: credit,
		CreditAmount:  dec(amount),
		Description:   desc,
	}
}

func journalText(t *testing.T, h Header, entries ...model.Entry) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, h))
	require.NoError(t, AppendEntries(&buf, entries))
	return buf.String()
}

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, Header{Name: "Acme Traders", Date: "01/01/2024"}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, HeaderLines)
	assert.Len(t, lines[0], LabelWidth)
	assert.Equal(t, "Acme Traders", strings.TrimSpace(lines[0]))
	assert.Equal(t, "JOURNAL", strings.TrimSpace(lines[1]))
	assert.Equal(t, "01/01/2024", strings.TrimSpace(lines[2]))
	assert.Equal(t, Rule(RuleWidth), lines[3])
	assert.Contains(t, lines[4], "DATE|")
	assert.Contains(t, lines[4], "DESCRIPTION")
	assert.Contains(t, lines[4], "|DEBIT")
	assert.Contains(t, lines[4], "|CREDIT")
	assert.Equal(t, Rule(RuleWidth), lines[5])
}

func TestMarshalEntry_Layout(t *testing.T) {
	text := MarshalEntry(entry("01/01/2024", "Cash", "Sales", "100", "cash sale"))
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.True(t, strings.HasPrefix(lines[0], "01/01/2024"))
	assert.True(t, strings.HasSuffix(lines[0], " 100"))
	assert.Equal(t, []string{"|", "to", "Sales", "100"}, strings.Fields(lines[1]))
	assert.Equal(t, "|(", strings.TrimSpace(lines[2])[:2])
	assert.True(t, strings.HasSuffix(lines[2], "cash sale)"))
	assert.Equal(t, Rule(RuleWidth), lines[3])
}

func TestMarshalEntry_LongFieldsStaySeparated(t *testing.T) {
	e := entry("2024-01-01T00:00:00", "AccountsReceivableFromWholesaleCustomers", "DeferredRevenueLongName", "1234567.89", "")

	got, rerr := parseRecord(strings.Split(strings.TrimSuffix(MarshalEntry(e), "\n"), "\n")[:3], 7)
	require.Nil(t, rerr)
	assert.Equal(t, e.Date, got.Date)
	assert.Equal(t, e.DebitAccount, got.DebitAccount)
	assert.Equal(t, e.CreditAccount, got.CreditAccount)
	assert.True(t, e.DebitAmount.Equal(got.DebitAmount))
}

func TestParseRecord_Errors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		line  int
	}{
		{"too few lines", []string{"01/01 Cash 10"}, 10},
		{"missing amount", []string{"01/01 Cash", "| to Sales 10", "|(x)"}, 10},
		{"bad debit amount", []string{"01/01 Cash ten", "| to Sales 10", "|(x)"}, 10},
		{"missing to", []string{"01/01 Cash 10", "| Sales 10", "|(x)"}, 11},
		{"bad credit amount", []string{"01/01 Cash 10", "| to Sales -1", "|(x)"}, 11},
		{"unwrapped description", []string{"01/01 Cash 10", "| to Sales 10", "plain"}, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, rerr := parseRecord(tt.lines, 10)
			require.NotNil(t, rerr)
			assert.Equal(t, tt.line, rerr.Line)
			assert.ErrorIs(t, rerr, ErrMalformedRecord)
		})
	}
}

func TestParseHeader_Errors(t *testing.T) {
	good := strings.Split(strings.TrimSuffix(journalText(t, Header{Name: "X", Date: "D"}), "\n"), "\n")

	_, err := parseHeader(good[:4])
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedRecord)

	bad := append([]string(nil), good...)
	bad[1] = "LEDGER"
	_, err = parseHeader(bad)
	assert.ErrorIs(t, err, ErrMalformedRecord)

	h, err := parseHeader(good)
	require.NoError(t, err)
	assert.Equal(t, Header{Name: "X", Date: "D"}, h)
}
