package accounts

import (
	"github.com/cleared-dev/ledgerbook/internal/model"
)

// Service provides in-memory lookup over the account names used in a journal.
type Service struct {
	names []string
	seen  map[string]bool
}

// NewService creates a Service from account names, dropping duplicates.
func NewService(names []string) *Service {
	s := &Service{seen: make(map[string]bool, len(names))}
	for _, n := range names {
		s.add(n)
	}
	return s
}

// Discover collects every account named in entries, in order of first
// appearance. Within an entry the debit account comes first.
func Discover(entries []model.Entry) *Service {
	s := NewService(nil)
	for _, e := range entries {
		s.add(e.DebitAccount)
		s.add(e.CreditAccount)
	}
	return s
}

// All returns the account names.
func (s *Service) All() []string {
	return s.names
}

// Exists reports whether an account name is known.
func (s *Service) Exists(name string) bool {
	return s.seen[name]
}

// Missing returns the names that are not known, in the given order.
func (s *Service) Missing(names []string) []string {
	var result []string
	for _, n := range names {
		if !s.seen[n] {
			result = append(result, n)
		}
	}
	return result
}

func (s *Service) add(name string) {
	if s.seen[name] {
		return
	}
	s.seen[name] = true
	s.names = append(s.names, name)
}
