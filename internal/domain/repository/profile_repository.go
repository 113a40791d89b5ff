package repository

import (
	"context"

	"registro/internal/domain/entity"
	"registro/internal/errors"
)

// Domain-specific errors for profile and permission persistence.
var (
	// ErrProfileNotFound is returned when a profile is not found or inactive.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrPermissionNotFound is returned when no active permission row exists.
	ErrPermissionNotFound = errors.New("permission not found")
	// ErrModuleNotFound is returned when a module is missing, inactive or
	// hidden.
	ErrModuleNotFound = errors.New("module not found")
)

// ProfileRepository defines persistence operations for profiles.
type ProfileRepository interface {
	// Create persists a new profile and fills its ID.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindActiveByID retrieves an active profile, or ErrProfileNotFound.
	FindActiveByID(ctx context.Context, id int64) (*entity.Profile, error)

	// FindActiveByName retrieves the active profile carrying the given
	// name within one company scope (nil legalEntityID means the global
	// scope), or ErrProfileNotFound.
	FindActiveByName(ctx context.Context, name string, legalEntityID *int64) (*entity.Profile, error)
}

// PermissionRepository defines persistence operations for permission rows.
type PermissionRepository interface {
	// Create persists a new permission row and fills its ID.
	Create(ctx context.Context, permission *entity.Permission) error

	// FindActiveByProfileAndModule retrieves the active permission row a
	// profile holds on a module, or ErrPermissionNotFound.
	FindActiveByProfileAndModule(ctx context.Context, profileID, moduleID int64) (*entity.Permission, error)
}

// ModuleRepository defines read operations for the module hierarchy.
type ModuleRepository interface {
	// FindActiveByID retrieves an active, visible module, or
	// ErrModuleNotFound.
	FindActiveByID(ctx context.Context, id int64) (*entity.Module, error)

	// FindActiveTopLevel lists the system's active, visible root modules
	// ordered by (index, id).
	FindActiveTopLevel(ctx context.Context, systemID int64) ([]*entity.Module, error)

	// FindActiveChildren lists the active, visible children of a module
	// ordered by (index, id).
	FindActiveChildren(ctx context.Context, parentID int64) ([]*entity.Module, error)
}
