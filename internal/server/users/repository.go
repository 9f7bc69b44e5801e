// Package users implements the user directory: account storage and the
// registration/login service.
package users

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

type Repository interface {
	// Create persists a new user. It returns common.ErrorAlreadyExists if a
	// user with the same email is already stored; uniqueness is enforced by
	// the storage layer, never by a check-then-insert in application code.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user with exactly the given email, or
	// common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user with the given identifier, or
	// common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
