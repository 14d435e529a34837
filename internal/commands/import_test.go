package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerbook/internal/activity"
	"github.com/cleared-dev/ledgerbook/internal/journal"
)

func TestImport_CreatesJournal(t *testing.T) {
	dir := newBook(t)
	importSample(t, dir)

	j, err := journal.NewStore(filepath.Join(dir, "journal.txt")).Load()
	require.NoError(t, err)
	assert.Equal(t, journal.Header{Name: "Acme Traders", Date: "01/01/2024"}, j.Header)
	assert.Len(t, j.Entries, 3)
	assert.Empty(t, j.Skipped)

	entries, err := activity.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "import", entries[1].Command)
	assert.Equal(t, "imported 3 entries from entries.csv", entries[1].Details)
}

func TestImport_AppendsToExistingJournal(t *testing.T) {
	dir := newBook(t)
	importSample(t, dir)
	importSample(t, dir)

	j, err := journal.NewStore(filepath.Join(dir, "journal.txt")).Load()
	require.NoError(t, err)
	assert.Len(t, j.Entries, 6)
}

func TestImport_InvalidRowWritesNothing(t *testing.T) {
	dir := newBook(t)
	csvPath := filepath.Join(t.TempDir(), "bad.csv")
	content := "date,debit_account,credit_account,amount,description\n" +
		"01/01/2024,Cash,Sales,100,ok\n" +
		"02/01/2024,Cash,Sales,-5,refund\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0o644))

	_, err := runLedgerbook(t, "", "--book", dir, "import", csvPath)
	require.Error(t, err)

	_, err = os.Stat(filepath.Join(dir, "journal.txt"))
	assert.True(t, os.IsNotExist(err), "journal should not be created")
}

func TestImport_UnknownFormat(t *testing.T) {
	dir := newBook(t)
	_, err := runLedgerbook(t, "", "--book", dir, "import", "entries.ofx", "--format", "ofx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown import format "ofx"`)
}

func TestImport_EnvironmentOverridesJournalFile(t *testing.T) {
	t.Setenv("LEDGERBOOK_JOURNAL", "books.txt")
	dir := newBook(t)
	importSample(t, dir)

	_, err := os.Stat(filepath.Join(dir, "books.txt"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "journal.txt"))
	assert.True(t, os.IsNotExist(err))
}
