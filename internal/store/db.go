// Package store opens the local SQLite database and wires the
// repositories on top of it.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/ymxu/resumefill/internal/repositories/applications"
	"github.com/ymxu/resumefill/internal/repositories/settings"
	"github.com/ymxu/resumefill/internal/store/migrations"
)

// Repositories bundles every persistence interface the assistant uses.
type Repositories struct {
	Settings     settings.Repository
	Applications applications.Repository
	DB           *sql.DB
}

// RunMigrations applies all pending goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the store at dsn, migrates it,
// and returns the repositories.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		Settings:     settings.NewSQLiteRepository(db),
		Applications: applications.NewSQLiteRepository(db),
		DB:           db,
	}, nil
}

// Close releases the underlying database handle.
func (r *Repositories) Close() error {
	if r.DB == nil {
		return nil
	}
	return r.DB.Close()
}
