package db

import (
	"gorm.io/driver/postgres"

	"github.com/defend-your-code/form/config"
)

// NewPostgresConnection creates a new PostgreSQL database connection.
func NewPostgresConnection(cfg *config.AuditConfig) (*Database, error) {
	return open(postgres.Open(cfg.URL), cfg, "postgres")
}
