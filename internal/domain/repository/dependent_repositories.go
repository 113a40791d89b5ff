package repository

import (
	"context"

	"registro/internal/domain/entity"
)

// The three dependent-record repositories share the same shape: dependents
// are created keyed to a person and deactivated in bulk by the cascading
// flows. Active collections are read through the aggregate loaders, never
// row by row. Global rows are never touched by DeactivateActiveByPerson.

// AddressRepository defines persistence operations for address records.
type AddressRepository interface {
	// Create persists a new address for a person.
	Create(ctx context.Context, address *entity.Address) error

	// DeactivateActiveByPerson applies lc to every active, non-global
	// address of the person. Returns the number of rows touched.
	DeactivateActiveByPerson(ctx context.Context, personID int64, lc entity.Lifecycle) (int64, error)
}

// ContactRepository defines persistence operations for contact records.
type ContactRepository interface {
	// Create persists a new contact for a person.
	Create(ctx context.Context, contact *entity.Contact) error

	// DeactivateActiveByPerson applies lc to every active, non-global
	// contact of the person. Returns the number of rows touched.
	DeactivateActiveByPerson(ctx context.Context, personID int64, lc entity.Lifecycle) (int64, error)
}

// ExtraRecordRepository defines persistence operations for complementary records.
type ExtraRecordRepository interface {
	// Create persists a new complementary record for a person.
	Create(ctx context.Context, record *entity.ExtraRecord) error

	// DeactivateActiveByPerson applies lc to every active, non-global
	// record of the person. Returns the number of rows touched.
	DeactivateActiveByPerson(ctx context.Context, personID int64, lc entity.Lifecycle) (int64, error)
}
