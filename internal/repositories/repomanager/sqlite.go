package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/hotelres/internal/dbx"
	"github.com/dmitrijs2005/hotelres/internal/logging"
	"github.com/dmitrijs2005/hotelres/internal/migrations"
	"github.com/dmitrijs2005/hotelres/internal/repositories/users"
	"github.com/pressly/goose/v3"
)

// SQLiteRepositoryManager vends SQLite-backed repositories for the local
// desktop database.
type SQLiteRepositoryManager struct {
	logger logging.Logger
}

func NewSQLiteRepositoryManager(logger logging.Logger) *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{logger: loggerOrDiscard(logger)}
}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.SQLite)
	goose.SetLogger(newGooseLogger(m.logger))
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, "sqlite")
}
