// Package store is the persistence gateway: it loads and saves the whole
// account directory as one flat JSON document.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"fjacquet/ledger-cli/internal/fileutils"
	"fjacquet/ledger-cli/internal/models"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// DefaultFileName is the document path relative to the working directory.
const DefaultFileName = "users.json"

// LedgerStore persists one account directory document.
type LedgerStore struct {
	FilePath      string
	BackupEnabled bool
}

// NewLedgerStore creates a persistence gateway for the given path. An empty
// path falls back to DefaultFileName.
func NewLedgerStore(filePath string, backupEnabled bool) *LedgerStore {
	if filePath == "" {
		filePath = DefaultFileName
	}
	return &LedgerStore{
		FilePath:      filePath,
		BackupEnabled: backupEnabled,
	}
}

// Load reads the document. A missing file is the normal first run and yields
// an empty directory; an unreadable or corrupt file is reported and also
// degrades to an empty directory rather than aborting startup.
func (s *LedgerStore) Load() models.Directory {
	if !fileutils.FileExists(s.FilePath) {
		log.WithField("file_path", s.FilePath).Info("No ledger file found, starting with an empty directory")
		return models.Directory{}
	}

	data, err := fileutils.ReadFile(s.FilePath)
	if err != nil {
		log.WithError(err).WithField("file_path", s.FilePath).Error("Failed to read ledger file, starting with an empty directory")
		return models.Directory{}
	}

	var accounts models.Directory
	if err := json.Unmarshal(data, &accounts); err != nil {
		log.WithError(err).WithField("file_path", s.FilePath).Error("Failed to parse ledger file, starting with an empty directory")
		return models.Directory{}
	}
	if accounts == nil {
		accounts = models.Directory{}
	}

	normalize(accounts)

	log.WithFields(logrus.Fields{
		"file_path": s.FilePath,
		"count":     len(accounts),
	}).Debug("Ledger loaded")
	return accounts
}

// Save writes the document. On failure the in-memory directory is untouched
// and the caller may retry later. When backups are enabled the previous
// document is kept next to the new one.
func (s *LedgerStore) Save(accounts models.Directory) error {
	if s.BackupEnabled && fileutils.FileExists(s.FilePath) {
		if err := fileutils.CopyFile(s.FilePath, s.FilePath+".bak"); err != nil {
			log.WithError(err).Warn("Failed to back up previous ledger file")
		}
	}

	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling ledger: %w", err)
	}

	if err := fileutils.WriteFile(s.FilePath, data, os.FileMode(0600)); err != nil {
		return fmt.Errorf("error writing ledger file: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file_path": s.FilePath,
		"count":     len(accounts),
	}).Info("Ledger saved")
	return nil
}

// normalize replaces nil bucket slices from hand-edited or legacy documents
// so every account round-trips with both buckets present.
func normalize(accounts models.Directory) {
	for _, account := range accounts {
		if account == nil {
			continue
		}
		if account.Transactions.Expenses == nil {
			account.Transactions.Expenses = []models.Transaction{}
		}
		if account.Transactions.Income == nil {
			account.Transactions.Income = []models.Transaction{}
		}
	}
}
