package journal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/ledgerbook/internal/model"
)

const (
	maxLineSize = 1 << 20
	recordLines = 3 // content lines before a record's divider
)

type blockEnd int

const (
	endDivider blockEnd = iota
	endMissingDivider
	endInput
)

// Scanner reads journal records one at a time.
//
// Records are delimited by divider rules. A record that fails to parse is
// skipped and kept in Skipped; scanning resumes at the next record. A
// trailing record without its divider counts as truncated and is skipped.
// A record in the middle that lost its divider is skipped on its own; the
// record after it still reads.
type Scanner struct {
	lines   *bufio.Scanner
	line    int
	held    bool // current line was read but belongs to the next block
	header  Header
	entry   model.Entry
	skipped []*RecordError
	err     error
}

// NewScanner reads and validates the journal header from r.
func NewScanner(r io.Reader) (*Scanner, error) {
	ls := bufio.NewScanner(r)
	ls.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	s := &Scanner{lines: ls}

	head := make([]string, 0, HeaderLines)
	for len(head) < HeaderLines && s.lines.Scan() {
		s.line++
		head = append(head, s.lines.Text())
	}
	if err := s.lines.Err(); err != nil {
		return nil, fmt.Errorf("reading journal header: %w", err)
	}

	h, err := parseHeader(head)
	if err != nil {
		return nil, err
	}
	s.header = h
	return s, nil
}

// Header returns the journal header.
func (s *Scanner) Header() Header {
	return s.header
}

// Scan advances to the next well-formed record. It returns false at the
// end of the input or on a read error.
func (s *Scanner) Scan() bool {
	for {
		block, start, end, ok := s.nextBlock()
		if !ok {
			return false
		}
		switch end {
		case endInput:
			s.skipped = append(s.skipped, &RecordError{Line: start, Reason: "truncated record: missing divider"})
			return false
		case endMissingDivider:
			s.skipped = append(s.skipped, &RecordError{Line: start, Reason: "missing divider before next record"})
			continue
		}
		entry, rerr := parseRecord(block, start)
		if rerr != nil {
			s.skipped = append(s.skipped, rerr)
			continue
		}
		s.entry = entry
		return true
	}
}

// Entry returns the record read by the last successful Scan.
func (s *Scanner) Entry() model.Entry {
	return s.entry
}

// Skipped returns the records that could not be parsed so far.
func (s *Scanner) Skipped() []*RecordError {
	return s.skipped
}

// Err returns the first read error, if any.
func (s *Scanner) Err() error {
	return s.err
}

// nextBlock collects the lines up to the next divider rule, ignoring blank
// lines between records. A block ends early when a line past the record's
// content is not a divider; that line starts the next block.
func (s *Scanner) nextBlock() (lines []string, start int, end blockEnd, ok bool) {
	for s.readLine() {
		text := s.lines.Text()
		if strings.TrimSpace(text) == "" && (len(lines) == 0 || len(lines) == recordLines) {
			continue
		}
		if isRule(text) {
			if start == 0 {
				start = s.line
			}
			return lines, start, endDivider, true
		}
		if len(lines) == recordLines {
			s.held = true
			return lines, start, endMissingDivider, true
		}
		if start == 0 {
			start = s.line
		}
		lines = append(lines, text)
	}
	if err := s.lines.Err(); err != nil {
		s.err = fmt.Errorf("reading journal: %w", err)
		return nil, 0, endInput, false
	}
	return lines, start, endInput, len(lines) > 0
}

func (s *Scanner) readLine() bool {
	if s.held {
		s.held = false
		return true
	}
	if !s.lines.Scan() {
		return false
	}
	s.line++
	return true
}
