// Package applications persists job-application records.
package applications

import (
	"context"

	"github.com/ymxu/resumefill/internal/apps"
)

// Repository describes CRUD operations for application records.
type Repository interface {
	// Insert stores a new record.
	Insert(ctx context.Context, a *apps.Application) error

	// Update replaces the editable fields of an existing record by id.
	Update(ctx context.Context, a *apps.Application) error

	// DeleteByID removes a record.
	DeleteByID(ctx context.Context, id string) error

	// GetByID returns one record.
	GetByID(ctx context.Context, id string) (*apps.Application, error)

	// GetAll returns every record in creation order.
	GetAll(ctx context.Context) ([]apps.Application, error)
}
