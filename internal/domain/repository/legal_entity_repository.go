package repository

import (
	"context"

	"registro/internal/domain/entity"
	"registro/internal/errors"
)

// ErrLegalEntityNotFound is returned when a legal entity is not found.
var ErrLegalEntityNotFound = errors.New("legal entity not found")

// LegalEntityFilter narrows legal-entity listings. Zero values are ignored.
type LegalEntityFilter struct {
	CNPJ          string // Digits only.
	Name          string // Substring match on trade or legal name.
	Code          string // Exact match on the person's external code.
	CompanyTypeID *int64
	Active        *bool
}

// LegalEntityRepository defines persistence operations for legal entities.
type LegalEntityRepository interface {
	// Create persists a new legal entity row and fills the generated id.
	Create(ctx context.Context, le *entity.LegalEntity) error

	// FindByID retrieves a legal entity with its person, dependents and
	// responsible party preloaded.
	FindByID(ctx context.Context, id int64) (*entity.LegalEntity, error)

	// FindActiveByCNPJ retrieves the active legal entity holding the given
	// normalized CNPJ, excluding excludeID when non-zero (update flows).
	// Returns ErrLegalEntityNotFound when no active row holds it.
	FindActiveByCNPJ(ctx context.Context, cnpj string, excludeID int64) (*entity.LegalEntity, error)

	// Search lists legal entities matching the filter, person preloaded.
	Search(ctx context.Context, filter LegalEntityFilter) ([]*entity.LegalEntity, error)

	// Update writes the scalar fields of an existing legal entity.
	Update(ctx context.Context, le *entity.LegalEntity) error

	// SetResponsible back-fills the responsible natural person id.
	SetResponsible(ctx context.Context, id, naturalPersonID int64) error

	// UpdateLifecycle writes the lifecycle fields of one legal entity row.
	UpdateLifecycle(ctx context.Context, id int64, lc entity.Lifecycle) error
}
