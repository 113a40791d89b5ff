package repository

import (
	"context"

	"registro/internal/domain/entity"
	"registro/internal/errors"
)

// ErrNaturalPersonNotFound is returned when a natural person is not found.
var ErrNaturalPersonNotFound = errors.New("natural person not found")

// NaturalPersonFilter narrows natural-person listings. Zero values are ignored.
type NaturalPersonFilter struct {
	CPF    string // Digits only.
	Name   string // Substring match.
	Code   string // Exact match on the person's external code.
	Active *bool
}

// NaturalPersonRepository defines persistence operations for natural persons.
type NaturalPersonRepository interface {
	// Create persists a new natural person row and fills the generated id.
	Create(ctx context.Context, np *entity.NaturalPerson) error

	// FindByID retrieves a natural person with its person, dependents and
	// user account preloaded.
	FindByID(ctx context.Context, id int64) (*entity.NaturalPerson, error)

	// FindActiveByCPF retrieves the active natural person holding the given
	// normalized CPF, excluding excludeID when non-zero (update flows).
	// Returns ErrNaturalPersonNotFound when no active row holds it.
	FindActiveByCPF(ctx context.Context, cpf string, excludeID int64) (*entity.NaturalPerson, error)

	// Search lists natural persons matching the filter, person preloaded.
	Search(ctx context.Context, filter NaturalPersonFilter) ([]*entity.NaturalPerson, error)

	// Update writes the scalar fields of an existing natural person.
	Update(ctx context.Context, np *entity.NaturalPerson) error

	// UpdateLifecycle writes the lifecycle fields of one natural person row.
	UpdateLifecycle(ctx context.Context, id int64, lc entity.Lifecycle) error
}
