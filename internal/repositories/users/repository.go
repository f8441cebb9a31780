// Package users contains the user-record store consumed by the auth
// service, with in-memory, SQLite and Postgres implementations.
package users

import (
	"context"
	"time"

	"github.com/akoreshkova/patternlock/internal/models"
)

// Repository is the persistence collaborator of the engine. One record per
// username; uniqueness is enforced at write time, lookups are exact and
// case-sensitive.
type Repository interface {
	// Create stores a new record. Returns common.ErrUsernameTaken if the
	// username already exists; the existing record is never overwritten.
	Create(ctx context.Context, user *models.UserRecord) (*models.UserRecord, error)

	// GetByUsername returns the record or common.ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*models.UserRecord, error)

	// Exists reports whether a record with the username is present.
	Exists(ctx context.Context, username string) (bool, error)

	// UpdateLastLogin sets the last successful login time.
	UpdateLastLogin(ctx context.Context, username string, t time.Time) error
}
