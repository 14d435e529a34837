package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/ledgerbook/internal/activity"
	"github.com/cleared-dev/ledgerbook/internal/buildinfo"
	"github.com/cleared-dev/ledgerbook/internal/config"
	"github.com/cleared-dev/ledgerbook/internal/gitops"
	"github.com/cleared-dev/ledgerbook/internal/journal"
	"github.com/cleared-dev/ledgerbook/internal/ledger"
	"github.com/cleared-dev/ledgerbook/internal/logging"
)

// app is the state shared by every subcommand once the book is resolved.
type app struct {
	bookDir string
	debug   bool

	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "ledgerbook",
		Short:   "Console journal, ledgers and trial balance",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.bookDir, "book", ".", "book directory")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newInitCommand(a),
		newRecordCommand(a),
		newImportCommand(a),
		newJournalCommand(a),
		newAccountsCommand(a),
		newLedgerCommand(a),
		newSessionCommand(a),
		newLogCommand(a),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	absDir, err := filepath.Abs(a.bookDir)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}
	a.bookDir = absDir

	cfg, err := config.LoadBook(absDir)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if a.debug {
		level = "debug"
	}
	if w := cmd.ErrOrStderr(); w == os.Stderr {
		a.logger, err = logging.New(level)
	} else {
		a.logger, err = logging.NewWriter(w, level)
	}
	if err != nil {
		return err
	}

	a.logger.Debug("book resolved",
		zap.String("dir", absDir),
		zap.String("journal", a.cfg.Files.Journal),
	)
	return nil
}

func (a *app) store() *journal.Store {
	return journal.NewStore(config.Resolve(a.bookDir, a.cfg.Files.Journal))
}

func (a *app) aggregator() *ledger.Aggregator {
	opts := ledger.Options{
		LedgerDir: config.Resolve(a.bookDir, a.cfg.Files.LedgerDir),
		TrialPath: config.Resolve(a.bookDir, a.cfg.Files.Trial),
	}
	return ledger.NewAggregator(a.store(), opts, a.logger)
}

func (a *app) author() gitops.Author {
	return gitops.Author{Name: a.cfg.Git.AuthorName, Email: a.cfg.Git.AuthorEmail}
}

// finish writes the command's activity and, when enabled, commits the book.
func (a *app) finish(rec *activity.Recorder, message string) error {
	if len(rec.Entries()) == 0 {
		return nil
	}
	if err := rec.Flush(a.bookDir); err != nil {
		return fmt.Errorf("writing activity log: %w", err)
	}

	if !a.cfg.Git.AutoCommit {
		return nil
	}
	if !gitops.IsRepo(a.bookDir) {
		a.logger.Warn("auto_commit is set but the book is not a git repository", zap.String("dir", a.bookDir))
		return nil
	}
	hash, err := gitops.CommitChanges(a.bookDir, message, a.author())
	if err != nil {
		return fmt.Errorf("committing book: %w", err)
	}
	if hash != "" {
		a.logger.Info("book committed", zap.String("commit", hash), zap.String("message", message))
	}
	return nil
}
