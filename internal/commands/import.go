package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerbook/internal/activity"
	"github.com/cleared-dev/ledgerbook/internal/importer"
	"github.com/cleared-dev/ledgerbook/internal/journal"
)

// journalDateLayout is DD/MM/YYYY, the layout the console prompts ask for.
const journalDateLayout = "02/01/2006"

func newImportCommand(a *app) *cobra.Command {
	var format string
	var date string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Append journal entries from a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().Format(journalDateLayout)
			}
			return runImport(cmd, a, args[0], format, date)
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "input format")
	cmd.Flags().StringVar(&date, "date", "", "journal date for a new journal (default today)")

	return cmd
}

func runImport(cmd *cobra.Command, a *app, path, format, date string) error {
	parser := importer.DefaultRegistry().Get(format)
	if parser == nil {
		return fmt.Errorf("unknown import format %q", format)
	}

	entries, err := importer.ImportFile(parser, path)
	if err != nil {
		return err
	}

	store := a.store()
	exists, err := store.Exists()
	if err != nil {
		return err
	}
	if !exists {
		name := a.cfg.Book.Name
		if name == "" {
			name = "Journal"
		}
		if err := store.Create(journal.Header{Name: name, Date: date}); err != nil {
			return err
		}
	}

	if err := store.Append(entries...); err != nil {
		return fmt.Errorf("importing entries: %w", err)
	}

	log := activity.NewRecorder("import")
	log.Log("import", "imported %d entries from %s", len(entries), filepath.Base(path))
	if err := a.finish(log, fmt.Sprintf("import: %d entries from %s", len(entries), filepath.Base(path))); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries from %s\n", len(entries), path)
	return nil
}
