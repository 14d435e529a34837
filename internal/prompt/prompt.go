// Package prompt reads answers to console questions, asking again until an
// answer is usable.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerbook/internal/journal"
)

// Prompter asks questions on out and reads one line per answer from in.
// Every method returns io.EOF once the input is exhausted.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Printf writes a message to the console.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Line asks label and returns the trimmed answer.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprintf(p.out, "\n\t%s: ", label)
	s, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && s != "" {
			return strings.TrimSpace(s), nil
		}
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// LineOr is Line with a default used for a blank answer.
func (p *Prompter) LineOr(label, def string) (string, error) {
	if def != "" {
		label = fmt.Sprintf("%s [%s]", label, def)
	}
	s, err := p.Line(label)
	if err != nil {
		return "", err
	}
	if s == "" {
		return def, nil
	}
	return s, nil
}

// Token asks until the answer is a single non-blank word.
func (p *Prompter) Token(label string) (string, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return "", err
		}
		if err := journal.CheckToken(s); err != nil {
			p.Printf("\tAnswer %v; please try again.\n", err)
			continue
		}
		return s, nil
	}
}

// Amount asks until the answer is a valid amount.
func (p *Prompter) Amount(label string) (decimal.Decimal, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return decimal.Zero, err
		}
		d, err := journal.ParseAmount(s)
		if err != nil {
			p.Printf("\t%v; please try again.\n", err)
			continue
		}
		return d, nil
	}
}

// AmountOr is Amount with a default used for a blank answer.
func (p *Prompter) AmountOr(label string, def decimal.Decimal) (decimal.Decimal, error) {
	label = fmt.Sprintf("%s [%s]", label, def)
	for {
		s, err := p.Line(label)
		if err != nil {
			return decimal.Zero, err
		}
		if s == "" {
			return def, nil
		}
		d, err := journal.ParseAmount(s)
		if err != nil {
			p.Printf("\t%v; please try again.\n", err)
			continue
		}
		return d, nil
	}
}

// Choice asks a 1/0 question and reports whether the answer was 1.
func (p *Prompter) Choice(label string) (bool, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return false, err
		}
		switch s {
		case "1":
			return true, nil
		case "0":
			return false, nil
		}
		p.Printf("\tPlease enter 1 or 0.\n")
	}
}
