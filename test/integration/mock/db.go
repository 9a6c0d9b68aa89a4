package mock

import (
	"database/sql"
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Db struct {
	DbConn *gorm.DB
	sqlDB  *sql.DB
	models []any
}

// NewDb opens a private in-memory SQLite database and migrates the given models.
func NewDb(models ...any) (*Db, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	dbSQL, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = dbSQL.Close()
		return nil, fmt.Errorf("failed to connect to database. err: %w", err)
	}

	d := &Db{
		DbConn: dbConn,
		sqlDB:  dbSQL,
		models: models,
	}

	if err := dbConn.AutoMigrate(models...); err != nil {
		_ = dbSQL.Close()
		return nil, err
	}

	for _, model := range models {
		if !dbConn.Migrator().HasTable(model) {
			_ = dbSQL.Close()
			return nil, fmt.Errorf("table for model %T was not created", model)
		}
	}

	return d, nil
}

// ClearDB deletes every row of the migrated tables.
func (d *Db) ClearDB() error {
	for _, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *Db) Close() error {
	return d.sqlDB.Close()
}
