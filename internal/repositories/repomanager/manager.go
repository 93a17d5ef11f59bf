// Package repomanager vends credential store adapters bound to a database
// handle or transaction and runs the embedded schema migrations for the
// selected driver.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/hotelres/internal/dbx"
	"github.com/dmitrijs2005/hotelres/internal/logging"
	"github.com/dmitrijs2005/hotelres/internal/repositories/users"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Driver names as registered with database/sql.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// New returns the RepositoryManager for a database/sql driver name.
func New(driver string, logger logging.Logger) (RepositoryManager, error) {
	switch driver {
	case DriverSQLite:
		return NewSQLiteRepositoryManager(logger), nil
	case DriverPostgres:
		return NewPostgresRepositoryManager(logger), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

var sqlOpen = sql.Open

// Open connects to dsn, verifies the connection and applies migrations,
// reporting migration progress to logger. The returned *sql.DB is owned by
// the caller.
func Open(ctx context.Context, driver, dsn string, logger logging.Logger) (*sql.DB, RepositoryManager, error) {
	m, err := New(driver, logger)
	if err != nil {
		return nil, nil, err
	}

	db, err := sqlOpen(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	if driver == DriverSQLite {
		// single writer; also keeps ":memory:" databases on one connection
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate database: %w", err)
	}

	return db, m, nil
}
