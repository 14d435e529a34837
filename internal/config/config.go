package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in a book directory.
const FileName = "ledgerbook.yaml"

// Config represents the top-level ledgerbook.yaml configuration.
type Config struct {
	Book  BookConfig  `yaml:"book"`
	Files FilesConfig `yaml:"files"`
	Git   GitConfig   `yaml:"git"`
	Log   LogConfig   `yaml:"log"`
}

// BookConfig identifies the set of books.
type BookConfig struct {
	Name string `yaml:"name"` // offered as the journal name for a new journal
}

// FilesConfig locates the journal and reports, relative to the book directory.
type FilesConfig struct {
	Journal   string `yaml:"journal"`
	Trial     string `yaml:"trial"`
	LedgerDir string `yaml:"ledger_dir"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Overrides are environment variables that take precedence over the file.
type Overrides struct {
	Journal   string `env:"LEDGERBOOK_JOURNAL"`
	Trial     string `env:"LEDGERBOOK_TRIAL"`
	LedgerDir string `env:"LEDGERBOOK_LEDGER_DIR"`
	LogLevel  string `env:"LEDGERBOOK_LOG_LEVEL"`
}

// Load reads a ledgerbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the file names the book has always used.
func Default(bookName string) *Config {
	return &Config{
		Book: BookConfig{
			Name: bookName,
		},
		Files: FilesConfig{
			Journal:   "journal.txt",
			Trial:     "Trial.txt",
			LedgerDir: ".",
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "Ledgerbook",
			AuthorEmail: "ledgerbook@localhost",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// LoadBook resolves the configuration for a book directory: defaults,
// then ledgerbook.yaml if present, then .env and process environment.
func LoadBook(dir string) (*Config, error) {
	cfg := Default("")

	loaded, err := Load(filepath.Join(dir, FileName))
	switch {
	case err == nil:
		cfg = loaded
	case !errors.Is(err, fs.ErrNotExist):
		return nil, err
	}

	dotenv := filepath.Join(dir, ".env")
	if _, err := os.Stat(dotenv); err == nil {
		if err := godotenv.Load(dotenv); err != nil {
			return nil, fmt.Errorf("loading %s: %w", dotenv, err)
		}
	}

	var ov Overrides
	if err := env.Parse(&ov); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	cfg.apply(ov)
	return cfg, nil
}

func (c *Config) apply(ov Overrides) {
	if ov.Journal != "" {
		c.Files.Journal = ov.Journal
	}
	if ov.Trial != "" {
		c.Files.Trial = ov.Trial
	}
	if ov.LedgerDir != "" {
		c.Files.LedgerDir = ov.LedgerDir
	}
	if ov.LogLevel != "" {
		c.Log.Level = ov.LogLevel
	}
}

// Resolve returns p relative to the book directory unless it is absolute.
func Resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
