package journal

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerbook/internal/model"
)

var hundred = decimal.NewFromInt(100)

// ValidationError describes one field of an entry that cannot be written.
type ValidationError struct {
	Field       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Description)
}

// ParseAmount parses a non-negative amount with at most two decimal places.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	if err := checkAmount(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

func checkAmount(d decimal.Decimal) error {
	if d.IsNegative() {
		return fmt.Errorf("%w: %s is negative", ErrInvalidAmount, d)
	}
	if scaled := d.Mul(hundred); !scaled.Equal(scaled.Floor()) {
		return fmt.Errorf("%w: %s has more than 2 decimal places", ErrInvalidAmount, d)
	}
	return nil
}

// CheckToken reports why v cannot be stored as a single-token field, or nil.
func CheckToken(v string) error {
	if strings.TrimSpace(v) == "" {
		return errors.New("must not be blank")
	}
	if strings.ContainsFunc(v, unicode.IsSpace) {
		return fmt.Errorf("must be a single word, got %q", v)
	}
	return nil
}

// ValidateEntry checks that an entry will read back exactly as written.
// Dates and account names are otherwise free-form.
func ValidateEntry(e model.Entry) []ValidationError {
	var errs []ValidationError

	tokens := []struct {
		field, value string
	}{
		{"date", e.Date},
		{"debit_account", e.DebitAccount},
		{"credit_account", e.CreditAccount},
	}
	for _, tok := range tokens {
		if err := CheckToken(tok.value); err != nil {
			errs = append(errs, ValidationError{Field: tok.field, Description: err.Error()})
		}
	}

	if err := checkAmount(e.DebitAmount); err != nil {
		errs = append(errs, ValidationError{Field: "debit_amount", Description: err.Error()})
	}
	if err := checkAmount(e.CreditAmount); err != nil {
		errs = append(errs, ValidationError{Field: "credit_amount", Description: err.Error()})
	}

	if strings.ContainsAny(e.Description, "\r\n") {
		errs = append(errs, ValidationError{Field: "description", Description: "must be a single line"})
	}

	return errs
}
