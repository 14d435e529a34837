package activity

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry is one row in the activity log.
type Entry struct {
	Timestamp time.Time
	Command   string
	Action    string
	Details   string
}

// Header is the CSV header for activity.csv.
const Header = "timestamp,command,action,details"

const (
	numFields    = 4
	logDir       = "logs"
	logFile      = "logs/activity.csv"
	colTimestamp = 0
	colCommand   = 1
	colAction    = 2
	colDetails   = 3
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colCommand] = e.Command
	row[colAction] = e.Action
	row[colDetails] = e.Details
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Entry{
		Timestamp: ts,
		Command:   record[colCommand],
		Action:    record[colAction],
		Details:   record[colDetails],
	}, nil
}

// Append writes entries to <bookDir>/logs/activity.csv, creating the file and header if needed.
func Append(bookDir string, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	dir := filepath.Join(bookDir, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(bookDir, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns all entries from <bookDir>/logs/activity.csv.
// Returns an empty slice if the file does not exist.
func Read(bookDir string) ([]Entry, error) {
	path := filepath.Join(bookDir, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading activity log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Recorder collects entries for one command and writes them in one go.
type Recorder struct {
	command string
	now     func() time.Time
	entries []Entry
}

// NewRecorder creates a Recorder for command.
func NewRecorder(command string) *Recorder {
	return &Recorder{command: command, now: time.Now}
}

// Log records an action.
func (r *Recorder) Log(action, format string, args ...any) {
	r.entries = append(r.entries, Entry{
		Timestamp: r.now().UTC(),
		Command:   r.command,
		Action:    action,
		Details:   fmt.Sprintf(format, args...),
	})
}

// Entries returns the actions recorded so far.
func (r *Recorder) Entries() []Entry {
	return r.entries
}

// Flush appends the recorded actions to the book's activity log.
func (r *Recorder) Flush(bookDir string) error {
	if err := Append(bookDir, r.entries); err != nil {
		return err
	}
	r.entries = nil
	return nil
}
