package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `date,debit_account,credit_account,amount,description
01/01/2024,Cash,Capital,1000,owner investment
02/01/2024, Rent, Cash, 300.50,"office rent, January"
03/01/2024,Cash,Sales,250,
`

func TestCSVParser_Parse(t *testing.T) {
	entries, err := (&CSVParser{}).Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "01/01/2024", entries[0].Date)
	assert.Equal(t, "Cash", entries[0].DebitAccount)
	assert.Equal(t, "Capital", entries[0].CreditAccount)
	assert.True(t, entries[0].DebitAmount.Equal(decimal.NewFromInt(1000)))
	assert.True(t, entries[0].Balanced())

	assert.Equal(t, "Rent", entries[1].DebitAccount)
	assert.True(t, entries[1].CreditAmount.Equal(decimal.RequireFromString("300.50")))
	assert.Equal(t, "office rent, January", entries[1].Description)

	assert.Empty(t, entries[2].Description)
}

func TestCSVParser_HeaderOnly(t *testing.T) {
	entries, err := (&CSVParser{}).Parse(strings.NewReader(CSVHeader + "\n"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCSVParser_WrongHeader(t *testing.T) {
	_, err := (&CSVParser{}).Parse(strings.NewReader("date,account,amount,memo,x\n01/01/2024,Cash,Sales,1,x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected header")
}

func TestCSVParser_BadAmount(t *testing.T) {
	_, err := (&CSVParser{}).Parse(strings.NewReader(CSVHeader + "\n01/01/2024,Cash,Sales,ten,x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestCSVParser_WrongFieldCount(t *testing.T) {
	_, err := (&CSVParser{}).Parse(strings.NewReader(CSVHeader + "\n01/01/2024,Cash,Sales\n"))
	require.Error(t, err)
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("csv"))
	assert.NotNil(t, r.Get("CSV"))
	assert.Nil(t, r.Get("ofx"))

	assert.Panics(t, func() { r.Register(&CSVParser{}) })
}

func TestImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	entries, err := ImportFile(&CSVParser{}, path)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestImportFile_ValidationFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.csv")
	data := CSVHeader + "\n01/01/2024,Cash,Sales,10,ok\n02/01/2024,Petty Cash,Sales,5,bad account\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	entries, err := ImportFile(&CSVParser{}, path)
	require.Error(t, err)
	assert.Nil(t, entries)
	assert.Contains(t, err.Error(), "entry 2")
	assert.Contains(t, err.Error(), "debit_account")
}

func TestImportFile_Missing(t *testing.T) {
	_, err := ImportFile(&CSVParser{}, filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
