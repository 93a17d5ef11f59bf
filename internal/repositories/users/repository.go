// Package users contains the credential store adapters: the Repository
// contract consumed by the auth service and its SQLite and PostgreSQL
// implementations.
//
// Adapters enforce email uniqueness themselves; callers do not pre-check.
package users

import (
	"context"

	"github.com/dmitrijs2005/hotelres/internal/models"
)

// Repository persists and looks up credential records by email.
//
// Create returns common.ErrorAlreadyExists (wrapped) for a duplicate email.
// GetUserByEmail returns common.ErrorNotFound when no record matches.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
