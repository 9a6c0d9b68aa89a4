package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/defend-your-code/form/config"
	"github.com/defend-your-code/form/internal/integration/persistence/model"
)

func TestNewConnection_SQLite(t *testing.T) {
	cfg := &config.AuditConfig{
		URL:             filepath.Join(t.TempDir(), "nested", "audit.db"),
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	}

	database, err := NewConnection(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	assert.True(t, database.HealthCheck())
	require.NoError(t, database.AutoMigrate(&model.RejectionModel{}))
	assert.True(t, database.DB().Migrator().HasTable(&model.RejectionModel{}))
	assert.FileExists(t, cfg.URL)
}

func TestIsMemoryDSN(t *testing.T) {
	assert.True(t, isMemoryDSN(":memory:"))
	assert.True(t, isMemoryDSN("file::memory:?cache=shared"))
	assert.False(t, isMemoryDSN("logs/audit.db"))
}
