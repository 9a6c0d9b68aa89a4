package db

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"

	"github.com/defend-your-code/form/config"
)

// NewSQLiteConnection creates a new SQLite database connection. The parent
// directory of the database file is created if needed.
func NewSQLiteConnection(cfg *config.AuditConfig) (*Database, error) {
	if dir := filepath.Dir(cfg.URL); dir != "." && !isMemoryDSN(cfg.URL) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// SQLite allows a single writer.
	single := *cfg
	single.MaxOpenConns = 1
	single.MaxIdleConns = 1

	return open(sqlite.Open(cfg.URL), &single, "sqlite")
}

func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.HasPrefix(dsn, "file:")
}
