package journal

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable is returned when a journal or report file cannot be opened or created.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrMalformedRecord is returned when journal text does not follow the record layout.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrInvalidAmount is returned for amounts that are not non-negative numbers with at most two decimals.
	ErrInvalidAmount = errors.New("invalid amount")
)

// RecordError describes a journal record that was skipped while scanning.
type RecordError struct {
	Line   int // first line of the record, 1-based
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// Unwrap lets callers match skipped records with errors.Is(err, ErrMalformedRecord).
func (e *RecordError) Unwrap() error {
	return ErrMalformedRecord
}
