package repository

import (
	"context"

	"registro/internal/domain/entity"
	"registro/internal/errors"
)

// ErrReferenceNotFound is returned when a referenced lookup row is missing
// or inactive. Inactive references are treated as absent.
var ErrReferenceNotFound = errors.New("referenced record missing or inactive")

// ReferenceRepository resolves foreign keys before any write. Every method
// returns ErrReferenceNotFound when the id does not resolve to an active row.
type ReferenceRepository interface {
	FindCompanyType(ctx context.Context, id int64) (*entity.CompanyType, error)
	FindCategory(ctx context.Context, id int64) (*entity.Category, error)
	FindGender(ctx context.Context, id int64) (*entity.Gender, error)
	FindMaritalStatus(ctx context.Context, id int64) (*entity.MaritalStatus, error)
	FindAddressType(ctx context.Context, id int64) (*entity.AddressType, error)
	FindContactType(ctx context.Context, id int64) (*entity.ContactType, error)
	FindSystem(ctx context.Context, id int64) (*entity.System, error)

	// FindActiveCategoryByDescription supports the in-scope description
	// uniqueness check: case-insensitive match among the company's active
	// categories, excluding excludeID when non-zero.
	FindActiveCategoryByDescription(ctx context.Context, legalEntityID int64, description string, excludeID int64) (*entity.Category, error)
}
