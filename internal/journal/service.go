package journal

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cleared-dev/ledgerbook/internal/model"
)

// Journal is the parsed content of a journal store.
type Journal struct {
	Header  Header
	Entries []model.Entry
	Skipped []*RecordError
}

// Store is an append-only journal file.
type Store struct {
	path string
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the journal file path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the journal file exists and holds any data.
func (s *Store) Exists() (bool, error) {
	info, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: stat journal %s: %w", ErrStoreUnavailable, s.path, err)
	}
	return info.Size() > 0, nil
}

// Create starts a new journal with the given header, truncating any existing file.
func (s *Store) Create(h Header) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: creating journal dir: %w", ErrStoreUnavailable, err)
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("%w: creating journal %s: %w", ErrStoreUnavailable, s.path, err)
	}
	defer f.Close()

	if err := WriteHeader(f, h); err != nil {
		return err
	}
	return f.Close()
}

// Append writes entries to the end of an existing journal.
func (s *Store) Append(entries ...model.Entry) error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("%w: opening journal %s: %w", ErrStoreUnavailable, s.path, err)
	}
	defer f.Close()

	if err := AppendEntries(f, entries); err != nil {
		return fmt.Errorf("appending to journal: %w", err)
	}
	return f.Close()
}

// Load scans the whole journal from the start.
func (s *Store) Load() (*Journal, error) {
	f, err := s.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc, err := NewScanner(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", s.path, err)
	}

	j := &Journal{Header: sc.Header()}
	for sc.Scan() {
		j.Entries = append(j.Entries, sc.Entry())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	j.Skipped = sc.Skipped()
	return j, nil
}

// ReadHeader returns only the journal header.
func (s *Store) ReadHeader() (Header, error) {
	f, err := s.open()
	if err != nil {
		return Header{}, err
	}
	defer f.Close()

	sc, err := NewScanner(f)
	if err != nil {
		return Header{}, fmt.Errorf("reading journal %s: %w", s.path, err)
	}
	return sc.Header(), nil
}

// WriteTo copies the raw journal text to w.
func (s *Store) WriteTo(w io.Writer) (int64, error) {
	f, err := s.open()
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return io.Copy(w, f)
}

func (s *Store) open() (*os.File, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening journal %s: %w", ErrStoreUnavailable, s.path, err)
	}
	return f, nil
}
