package impl

import (
	"context"
	"log/slog"
	"time"

	"registro/internal/domain/entity"
	domainerrors "registro/internal/domain/errors"
	"registro/internal/domain/repository"
	"registro/internal/errors"
	"registro/internal/usecase"
)

// profileService implements the ProfileUsecase interface. Each profile is
// written together with its permission rows in one transaction.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		logger:    logger,
	}
}

// Create registers a single profile with its permission grants.
func (srv *profileService) Create(ctx context.Context, input *usecase.CreateProfileInput) (*usecase.ProfileOutput, error) {
	// Duplicate modules in one payload would collide on the
	// (profile, module) link; reject before any write.
	seen := make(map[int64]struct{}, len(input.Permissions))
	for _, grant := range input.Permissions {
		if _, dup := seen[grant.ModuleID]; dup {
			return nil, domainerrors.ErrValidationFailed.WithDetails("modulo_id repetido na lista de permissões")
		}
		seen[grant.ModuleID] = struct{}{}
	}

	now := time.Now().UTC()

	var created *usecase.ProfileOutput

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		// 1. Resolve the owning company when the profile is scoped.
		if input.LegalEntityID != nil {
			owner, err := repos.LegalEntityRepo().FindByID(ctx, *input.LegalEntityID)
			if err != nil {
				if errors.Is(err, repository.ErrLegalEntityNotFound) {
					return domainerrors.ErrReferenceNotFound.WithDetails("pessoa_juridica_id")
				}

				return err
			}
			if !owner.Active {
				return domainerrors.ErrReferenceNotFound.WithDetails("pessoa_juridica_id")
			}
		}

		// 2. Profile name is unique among active profiles in its scope.
		if _, err := repos.ProfileRepo().FindActiveByName(ctx, input.Name, input.LegalEntityID); err == nil {
			return domainerrors.ErrDescriptionConflict
		} else if !errors.Is(err, repository.ErrProfileNotFound) {
			return err
		}

		// 3. Profile row.
		profile := &entity.Profile{
			LegalEntityID: input.LegalEntityID,
			Global:        input.LegalEntityID == nil,
			Name:          input.Name,
			Lifecycle:     entity.NewActiveLifecycle(now),
		}
		if err := repos.ProfileRepo().Create(ctx, profile); err != nil {
			return err
		}

		// 4. Permission rows, each against a resolved active module.
		output := &usecase.ProfileOutput{
			ID:            profile.ID,
			Name:          profile.Name,
			LegalEntityID: profile.LegalEntityID,
			Global:        profile.Global,
			Active:        profile.Active,
		}

		for _, grant := range input.Permissions {
			if _, err := repos.ModuleRepo().FindActiveByID(ctx, grant.ModuleID); err != nil {
				if errors.Is(err, repository.ErrModuleNotFound) {
					return domainerrors.ErrReferenceNotFound.WithDetails("modulo_id")
				}

				return err
			}

			permission := &entity.Permission{
				ProfileID: profile.ID,
				ModuleID:  grant.ModuleID,
				Actions:   grant.Actions,
				Lifecycle: entity.NewActiveLifecycle(now),
			}
			if err := repos.PermissionRepo().Create(ctx, permission); err != nil {
				return err
			}

			output.Permissions = append(output.Permissions, usecase.PermissionGrantOutput{
				ID:       permission.ID,
				ModuleID: permission.ModuleID,
				Actions:  permission.Actions,
			})
		}

		created = output

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("profile created",
		"profile_id", created.ID,
		"global", created.Global,
		"permissions", len(created.Permissions))

	return created, nil
}

// CreateBatch registers profiles independently: one transaction per item,
// failed items reported alongside the successes instead of aborting the
// batch.
func (srv *profileService) CreateBatch(ctx context.Context, inputs []*usecase.CreateProfileInput) (*usecase.ProfileBatchResult, error) {
	result := &usecase.ProfileBatchResult{
		Successes: []*usecase.ProfileOutput{},
		Errors:    []*usecase.BatchItemError{},
	}

	for i, input := range inputs {
		output, err := srv.Create(ctx, input)
		if err != nil {
			result.Errors = append(result.Errors, &usecase.BatchItemError{
				Index:   i,
				Name:    input.Name,
				Code:    batchErrorCode(err),
				Message: batchErrorMessage(err),
			})

			continue
		}

		result.Successes = append(result.Successes, output)
	}

	srv.logger.Info("profile batch processed",
		"total", len(inputs),
		"successes", len(result.Successes),
		"errors", len(result.Errors))

	return result, nil
}
