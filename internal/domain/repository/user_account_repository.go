package repository

import (
	"context"

	"registro/internal/domain/entity"
	"registro/internal/errors"
)

// ErrUserAccountNotFound is returned when a user account is not found.
var ErrUserAccountNotFound = errors.New("user account not found")

// UserAccountRepository defines persistence operations for login accounts.
type UserAccountRepository interface {
	// Create persists a new user account and fills the generated id.
	Create(ctx context.Context, account *entity.UserAccount) error

	// FindActiveByLogin retrieves the active account holding the login,
	// excluding excludeID when non-zero. Returns ErrUserAccountNotFound when
	// the login is free.
	FindActiveByLogin(ctx context.Context, login string, excludeID int64) (*entity.UserAccount, error)

	// DeactivateByNaturalPerson applies lc to every active account of the
	// natural person. Returns the number of rows touched.
	DeactivateByNaturalPerson(ctx context.Context, naturalPersonID int64, lc entity.Lifecycle) (int64, error)
}
