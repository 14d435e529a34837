package importer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cleared-dev/ledgerbook/internal/journal"
	"github.com/cleared-dev/ledgerbook/internal/model"
)

// Parser converts an exported file into journal entries.
type Parser interface {
	Parse(r io.Reader) ([]model.Entry, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVParser{})
	return r
}

// ImportFile parses path with p and validates every entry. Nothing is
// returned unless the whole file is usable.
func ImportFile(p Parser, path string) ([]model.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	entries, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	for i, e := range entries {
		if verrs := journal.ValidateEntry(e); len(verrs) > 0 {
			msgs := make([]string, len(verrs))
			for j, ve := range verrs {
				msgs[j] = ve.Error()
			}
			return nil, fmt.Errorf("entry %d: validation failed: %s", i+1, strings.Join(msgs, "; "))
		}
	}
	return entries, nil
}
