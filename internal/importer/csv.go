package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/ledgerbook/internal/journal"
	"github.com/cleared-dev/ledgerbook/internal/model"
)

// CSVParser reads entries from a CSV file with the columns
// date,debit_account,credit_account,amount,description and a header row.
type CSVParser struct{}

// CSVHeader is the expected header row.
const CSVHeader = "date,debit_account,credit_account,amount,description"

const (
	csvNumFields = 5
	csvColDate   = 0
	csvColDebit  = 1
	csvColCredit = 2
	csvColAmount = 3
	csvColDesc   = 4
)

// Format returns the parser name.
func (p *CSVParser) Format() string { return "csv" }

// Parse reads a CSV export and returns one balanced entry per row.
func (p *CSVParser) Parse(r io.Reader) ([]model.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = csvNumFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}
	if got := strings.ToLower(strings.Join(records[0], ",")); got != CSVHeader {
		return nil, fmt.Errorf("unexpected header %q, want %q", got, CSVHeader)
	}

	var entries []model.Entry
	for i, rec := range records[1:] {
		e, err := parseCSVRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func parseCSVRow(rec []string) (model.Entry, error) {
	amount, err := journal.ParseAmount(rec[csvColAmount])
	if err != nil {
		return model.Entry{}, fmt.Errorf("parsing amount: %w", err)
	}

	return model.Entry{
		Date:          strings.TrimSpace(rec[csvColDate]),
		DebitAccount:  strings.TrimSpace(rec[csvColDebit]),
		DebitAmount:   amount,
		CreditAccount: strings.TrimSpace(rec[csvColCredit]),
		CreditAmount:  amount,
		Description:   strings.TrimSpace(rec[csvColDesc]),
	}, nil
}
