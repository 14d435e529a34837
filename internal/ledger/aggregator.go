package ledger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/cleared-dev/ledgerbook/internal/journal"
)

var (
	// ErrFinalized is returned when a ledger is requested after the trial balance was closed.
	ErrFinalized = errors.New("trial balance already finalized")
	// ErrInvalidAccountName is returned for names that cannot be used as a ledger file name.
	ErrInvalidAccountName = errors.New("invalid account name")
)

// Options locates the reports an Aggregator writes.
type Options struct {
	LedgerDir string // one <account>.txt per ledger
	TrialPath string // shared trial balance report, opened for append
}

// Result describes one ledger built by an Aggregator.
type Result struct {
	Account    Account
	Balance    Balance
	ReportPath string
	Skipped    []*journal.RecordError
}

// Aggregator runs one trial balance: any number of BuildLedger calls
// followed by a single Finalize. It is not safe for concurrent use.
type Aggregator struct {
	store  *journal.Store
	opts   Options
	logger *zap.Logger

	header    journal.Header
	trial     TrialBalance
	trialFile *os.File
	reports   []string
	finalized bool
}

// NewAggregator creates an Aggregator reading from store.
func NewAggregator(store *journal.Store, opts Options, logger *zap.Logger) *Aggregator {
	return &Aggregator{store: store, opts: opts, logger: logger}
}

// Begin reads the journal header and writes the trial balance heading.
// BuildLedger and Finalize call it if it has not run yet.
func (a *Aggregator) Begin() error {
	if a.finalized {
		return ErrFinalized
	}
	if a.trialFile != nil {
		return nil
	}

	h, err := a.store.ReadHeader()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(a.opts.TrialPath), 0o755); err != nil {
		return fmt.Errorf("%w: creating trial dir: %w", journal.ErrStoreUnavailable, err)
	}
	f, err := os.OpenFile(a.opts.TrialPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("%w: opening trial report %s: %w", journal.ErrStoreUnavailable, a.opts.TrialPath, err)
	}
	if err := WriteTrialHeader(f, h); err != nil {
		f.Close()
		return err
	}

	a.header = h
	a.trialFile = f
	a.logger.Debug("trial balance started", zap.String("journal", h.Name), zap.String("path", a.opts.TrialPath))
	return nil
}

// BuildLedger rescans the journal, writes the ledger report for name and
// folds its closing balance into the trial balance.
func (a *Aggregator) BuildLedger(name string) (Result, error) {
	if err := CheckAccountName(name); err != nil {
		return Result{}, err
	}
	if err := a.Begin(); err != nil {
		return Result{}, err
	}

	j, err := a.store.Load()
	if err != nil {
		return Result{}, err
	}
	if len(j.Skipped) > 0 {
		a.logger.Warn("skipped malformed journal records",
			zap.String("account", name),
			zap.Int("count", len(j.Skipped)),
			zap.Error(j.Skipped[0]),
		)
	}

	acct := Build(name, j.Entries)
	path := filepath.Join(a.opts.LedgerDir, name+".txt")
	if err := a.writeReport(path, acct); err != nil {
		return Result{}, err
	}

	bal := acct.Balance()
	row := a.trial.Fold(name, bal)
	if err := WriteTrialRow(a.trialFile, row); err != nil {
		return Result{}, err
	}
	a.reports = append(a.reports, path)

	a.logger.Debug("ledger built",
		zap.String("account", name),
		zap.Int("postings", len(acct.Lines)),
		zap.String("side", string(bal.Side)),
		zap.String("balance", bal.Amount.String()),
	)

	return Result{Account: acct, Balance: bal, ReportPath: path, Skipped: j.Skipped}, nil
}

// Finalize writes the trial totals and closes the trial report. The
// returned TrialBalance holds one row per BuildLedger call.
func (a *Aggregator) Finalize() (TrialBalance, error) {
	if err := a.Begin(); err != nil {
		return TrialBalance{}, err
	}

	err := WriteTrialTotals(a.trialFile, &a.trial)
	if cerr := a.trialFile.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing trial report: %w", cerr)
	}
	a.trialFile = nil
	a.finalized = true
	if err != nil {
		return TrialBalance{}, err
	}

	if !a.trial.Balanced() {
		a.logger.Warn("trial balance does not agree",
			zap.String("debit", a.trial.DebitSum.String()),
			zap.String("credit", a.trial.CreditSum.String()),
		)
	}
	return a.trial, nil
}

// Close ends a run that was not finalized. If the trial report was begun,
// the totals of the rows folded so far are written so the report block is
// complete. It is a no-op after Finalize.
func (a *Aggregator) Close() error {
	if a.trialFile == nil {
		return nil
	}
	err := WriteTrialTotals(a.trialFile, &a.trial)
	if cerr := a.trialFile.Close(); err == nil {
		err = cerr
	}
	a.trialFile = nil
	a.finalized = true
	return err
}

// Reports returns the ledger report paths in the order they were built.
func (a *Aggregator) Reports() []string {
	return a.reports
}

func (a *Aggregator) writeReport(path string, acct Account) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: creating ledger dir: %w", journal.ErrStoreUnavailable, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating ledger %s: %w", journal.ErrStoreUnavailable, path, err)
	}
	defer f.Close()

	if err := WriteReport(f, a.header, acct); err != nil {
		return err
	}
	return f.Close()
}

// CheckAccountName reports whether name can be used for a ledger report file.
func CheckAccountName(name string) error {
	if err := journal.CheckToken(name); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAccountName, err)
	}
	if name == "." || name == ".." || filepath.Base(name) != name || filepath.IsAbs(name) {
		return fmt.Errorf("%w: %q cannot be used as a file name", ErrInvalidAccountName, name)
	}
	return nil
}
