package recorder

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/cleared-dev/ledgerbook/internal/journal"
	"github.com/cleared-dev/ledgerbook/internal/model"
	"github.com/cleared-dev/ledgerbook/internal/prompt"
)

// Recorder collects journal entries from the console and appends them to a store.
type Recorder struct {
	store   *journal.Store
	prompt  *prompt.Prompter
	logger  *zap.Logger
	defName string
}

// New creates a Recorder. defaultName is offered when a new journal needs a name.
func New(store *journal.Store, p *prompt.Prompter, logger *zap.Logger, defaultName string) *Recorder {
	return &Recorder{store: store, prompt: p, logger: logger, defName: defaultName}
}

// Session records entries until the user asks to stop or the input ends,
// and returns how many were written. A new journal header is written when
// the store is empty or fresh is set; otherwise entries are appended.
// Each entry is written as soon as it is complete.
func (r *Recorder) Session(fresh bool) (int, error) {
	exists, err := r.store.Exists()
	if err != nil {
		return 0, err
	}
	if fresh || !exists {
		h, err := r.askHeader()
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		if err != nil {
			return 0, err
		}
		if err := r.store.Create(h); err != nil {
			return 0, err
		}
		r.logger.Debug("journal created", zap.String("path", r.store.Path()), zap.String("name", h.Name))
	}

	recorded := 0
	for {
		e, err := r.askEntry()
		if errors.Is(err, io.EOF) {
			r.logger.Debug("input ended, discarding incomplete entry")
			return recorded, nil
		}
		if err != nil {
			return recorded, err
		}

		if err := r.store.Append(e); err != nil {
			return recorded, fmt.Errorf("recording entry: %w", err)
		}
		recorded++
		r.logger.Debug("entry recorded",
			zap.String("debit", e.DebitAccount),
			zap.String("credit", e.CreditAccount),
			zap.String("amount", e.DebitAmount.String()),
		)

		stop, err := r.prompt.Choice("Enter 1 to exit or 0 to continue")
		if errors.Is(err, io.EOF) || stop {
			return recorded, nil
		}
		if err != nil {
			return recorded, err
		}
	}
}

func (r *Recorder) askHeader() (journal.Header, error) {
	name, err := r.prompt.LineOr("Enter the journal name/identifier", r.defName)
	if err != nil {
		return journal.Header{}, err
	}
	date, err := r.prompt.Line("Enter the journal date (DD/MM/YYYY)")
	if err != nil {
		return journal.Header{}, err
	}
	return journal.Header{Name: name, Date: date}, nil
}

func (r *Recorder) askEntry() (model.Entry, error) {
	var e model.Entry
	var err error

	if e.Date, err = r.prompt.Token("Enter the date of the entry (DD/MM/YYYY)"); err != nil {
		return e, err
	}
	if e.DebitAccount, err = r.prompt.Token("Enter the debit account name"); err != nil {
		return e, err
	}
	if e.DebitAmount, err = r.prompt.Amount("Enter the debit amount"); err != nil {
		return e, err
	}
	if e.CreditAccount, err = r.prompt.Token("Enter the credit account name"); err != nil {
		return e, err
	}
	if e.CreditAmount, err = r.prompt.AmountOr("Enter the credit amount", e.DebitAmount); err != nil {
		return e, err
	}
	if e.Description, err = r.prompt.Line("Please enter a description for the journal entry"); err != nil {
		return e, err
	}
	return e, nil
}
