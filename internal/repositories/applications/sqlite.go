package applications

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ymxu/resumefill/internal/apps"
	"github.com/ymxu/resumefill/internal/common"
	"github.com/ymxu/resumefill/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or
// *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, a *apps.Application) error {
	query := `INSERT INTO applications (id, title, date, link, notes, status, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.Title, a.Date, a.Link, a.Notes, string(a.Status), a.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert application: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Update(ctx context.Context, a *apps.Application) error {
	query := `UPDATE applications SET title = ?, date = ?, link = ?, notes = ?, status = ?
			WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		a.Title, a.Date, a.Link, a.Notes, string(a.Status), a.ID)
	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("application %s: %w", a.ID, common.ErrNotFound)
	}
	return nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*apps.Application, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, date, link, notes, status, created_at FROM applications WHERE id = ?`, id)

	a, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("application %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select application: %w", err)
	}
	return a, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]apps.Application, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, date, link, notes, status, created_at FROM applications ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to select applications: %w", err)
	}
	defer rows.Close()

	var result []apps.Application
	for rows.Next() {
		a, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (*apps.Application, error) {
	var (
		a         apps.Application
		status    string
		createdAt int64
	)
	if err := s.Scan(&a.ID, &a.Title, &a.Date, &a.Link, &a.Notes, &status, &createdAt); err != nil {
		return nil, err
	}
	a.Status = apps.Status(status)
	a.CreatedAt = time.Unix(0, createdAt)
	return &a, nil
}
