package repository

import (
	"context"

	"registro/internal/domain/entity"
	"registro/internal/errors"
)

// Domain-specific errors for relationship persistence.
var (
	// ErrLinkNotFound is returned when a relationship row is not found.
	ErrLinkNotFound = errors.New("link not found")
	// ErrDuplicateLink is returned when an equivalent active link already exists.
	ErrDuplicateLink = errors.New("link already exists")
)

// ResponsibleLinkRepository manages legal entity <-> natural person links.
type ResponsibleLinkRepository interface {
	// Create persists a new responsible link.
	Create(ctx context.Context, link *entity.ResponsibleLink) error

	// FindActiveByLegalEntity lists the company's active responsible links.
	FindActiveByLegalEntity(ctx context.Context, legalEntityID int64) ([]*entity.ResponsibleLink, error)

	// DeactivateByLegalEntity applies lc to every active link of the company.
	DeactivateByLegalEntity(ctx context.Context, legalEntityID int64, lc entity.Lifecycle) (int64, error)
}

// CompanyLinkRepository manages parent/child company relationships.
type CompanyLinkRepository interface {
	// Create persists a new parent/child link.
	Create(ctx context.Context, link *entity.CompanyLink) error

	// FindActiveByChild retrieves the active parent link of a company, or
	// ErrLinkNotFound.
	FindActiveByChild(ctx context.Context, childID int64) (*entity.CompanyLink, error)

	// DeactivateByCompany applies lc to every active link in which the
	// company participates, on either side.
	DeactivateByCompany(ctx context.Context, legalEntityID int64, lc entity.Lifecycle) (int64, error)
}

// SystemGrantRepository manages legal entity <-> system entitlements.
type SystemGrantRepository interface {
	// Create persists a new system grant.
	Create(ctx context.Context, grant *entity.SystemGrant) error

	// HasActiveGrant reports whether the company holds an active entitlement
	// to the system.
	HasActiveGrant(ctx context.Context, legalEntityID, systemID int64) (bool, error)

	// DeactivateByCompany applies lc to every active grant of the company.
	DeactivateByCompany(ctx context.Context, legalEntityID int64, lc entity.Lifecycle) (int64, error)
}
