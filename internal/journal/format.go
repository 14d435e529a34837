package journal

import (
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/ledgerbook/internal/model"
)

const (
	// LabelWidth is the column that titles and labels are right-aligned to.
	LabelWidth = 50
	// RuleWidth is the length of the dashed rule separating journal records.
	RuleWidth = 125
	// HeaderLines is the number of lines in the journal header block.
	HeaderLines = 6

	journalLabel = "JOURNAL"
	toPrefix     = "to"
)

// Header is the block written once at the top of a journal.
type Header struct {
	Name string
	Date string
}

// Rule returns a divider of n dashes.
func Rule(n int) string {
	return strings.Repeat("-", n)
}

// WriteHeader writes the journal header block: name, label, date, rule,
// column headings and a closing rule.
func WriteHeader(w io.Writer, h Header) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%*s\n", LabelWidth, h.Name)
	fmt.Fprintf(&b, "%*s\n", LabelWidth, journalLabel)
	fmt.Fprintf(&b, "%*s\n", LabelWidth, h.Date)
	b.WriteString(Rule(RuleWidth) + "\n")
	fmt.Fprintf(&b, "%10s%25s%50s%20s\n", "DATE|", "DESCRIPTION", "|DEBIT", "|CREDIT")
	b.WriteString(Rule(RuleWidth) + "\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing journal header: %w", err)
	}
	return nil
}

// MarshalEntry renders an entry as its four-line fixed-width record.
// Every field is separated by at least one space so that long values
// still read back as distinct tokens.
func MarshalEntry(e model.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %19s %69s\n", e.Date, e.DebitAccount, e.DebitAmount.String())
	fmt.Fprintf(&b, "%10s%40s%s %49s\n", "|", toPrefix+" ", e.CreditAccount, e.CreditAmount.String())
	fmt.Fprintf(&b, "%11s%50s)\n", "|(", e.Description)
	b.WriteString(Rule(RuleWidth) + "\n")
	return b.String()
}

// AppendEntries writes entries to w in journal record layout.
func AppendEntries(w io.Writer, entries []model.Entry) error {
	for i, e := range entries {
		if _, err := io.WriteString(w, MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}
	return nil
}

func isRule(line string) bool {
	t := strings.TrimSpace(line)
	return t != "" && strings.Trim(t, "-") == ""
}

// parseHeader validates the header block and extracts the name and date.
func parseHeader(lines []string) (Header, error) {
	if len(lines) < HeaderLines {
		return Header{}, fmt.Errorf("%w: journal header has %d of %d lines", ErrMalformedRecord, len(lines), HeaderLines)
	}
	if strings.TrimSpace(lines[1]) != journalLabel {
		return Header{}, fmt.Errorf("%w: journal header line 2: expected %q label", ErrMalformedRecord, journalLabel)
	}
	if !isRule(lines[3]) || !isRule(lines[5]) {
		return Header{}, fmt.Errorf("%w: journal header is missing its divider rules", ErrMalformedRecord)
	}
	return Header{
		Name: strings.TrimSpace(lines[0]),
		Date: strings.TrimSpace(lines[2]),
	}, nil
}

// parseRecord converts the three content lines of a record into an Entry.
func parseRecord(lines []string, start int) (model.Entry, *RecordError) {
	if len(lines) != 3 {
		return model.Entry{}, &RecordError{Line: start, Reason: fmt.Sprintf("expected 3 lines, got %d", len(lines))}
	}

	debit := strings.Fields(lines[0])
	if len(debit) != 3 {
		return model.Entry{}, &RecordError{Line: start, Reason: fmt.Sprintf("debit line: expected date, account and amount, got %d fields", len(debit))}
	}
	debitAmount, err := ParseAmount(debit[2])
	if err != nil {
		return model.Entry{}, &RecordError{Line: start, Reason: "debit line: " + err.Error()}
	}

	credit := strings.Fields(lines[1])
	if len(credit) != 4 || credit[0] != "|" || credit[1] != toPrefix {
		return model.Entry{}, &RecordError{Line: start + 1, Reason: `credit line: expected "| to <account> <amount>"`}
	}
	creditAmount, err := ParseAmount(credit[3])
	if err != nil {
		return model.Entry{}, &RecordError{Line: start + 1, Reason: "credit line: " + err.Error()}
	}

	desc := strings.TrimSpace(lines[2])
	if !strings.HasPrefix(desc, "|(") || !strings.HasSuffix(desc, ")") {
		return model.Entry{}, &RecordError{Line: start + 2, Reason: "description line: expected |(...)"}
	}
	desc = strings.TrimSpace(desc[2 : len(desc)-1])

	return model.Entry{
		Date:          debit[0],
		DebitAccount:  debit[1],
		DebitAmount:   debitAmount,
		CreditAccount: credit[2],
		CreditAmount:  creditAmount,
		Description:   desc,
	}, nil
}
