// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"

	"registro/internal/domain/entity"
	"registro/internal/errors"
)

// ErrPersonNotFound is a domain-specific error returned when a root person row is not found.
var ErrPersonNotFound = errors.New("person not found")

// PersonRepository defines the standard operations for root Person persistence.
type PersonRepository interface {
	// Create persists a new person row and fills the generated id.
	Create(ctx context.Context, person *entity.Person) error

	// FindByID retrieves a single person by its unique id.
	FindByID(ctx context.Context, id int64) (*entity.Person, error)

	// UpdateCode back-fills the external code after the numeric id is known.
	UpdateCode(ctx context.Context, id int64, code string) error

	// UpdateLifecycle writes the lifecycle fields of one person row.
	UpdateLifecycle(ctx context.Context, id int64, lc entity.Lifecycle) error
}
