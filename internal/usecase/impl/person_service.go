package impl

import (
	"context"
	"log/slog"
	"time"

	"registro/internal/domain/entity"
	domainerrors "registro/internal/domain/errors"
	"registro/internal/domain/repository"
	"registro/internal/domain/service"
	"registro/internal/usecase"
	"registro/internal/util"

	"github.com/pkg/errors"
)

// personService implements the PersonUsecase interface.
type personService struct {
	txManager  repository.TransactionManager
	personRepo repository.NaturalPersonRepository
	hasher     service.PasswordHasher
	logger     *slog.Logger
}

// NewPersonService is the constructor for personService.
func NewPersonService(
	txManager repository.TransactionManager,
	personRepo repository.NaturalPersonRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.PersonUsecase {
	return &personService{
		txManager:  txManager,
		personRepo: personRepo,
		hasher:     hasher,
		logger:     logger,
	}
}

// Create registers a standalone natural person: root person row, natural
// person row, nested collections and the login account, all in one
// transaction.
func (srv *personService) Create(ctx context.Context, input *usecase.CreatePersonInput) (*usecase.PersonOutput, error) {
	cpf := util.NormalizeDocument(input.CPF)
	if !util.IsValidCPF(cpf) {
		return nil, domainerrors.ErrInvalidDocument.WithDetails("cpf")
	}

	now := time.Now().UTC()

	var created *entity.NaturalPerson

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		np, err := createNaturalPersonGraph(ctx, repos, srv.hasher, &naturalPersonGraphInput{
			CPF:             cpf,
			Name:            input.Name,
			GenderID:        input.GenderID,
			MaritalStatusID: input.MaritalStatusID,
			BirthDate:       input.BirthDate,
			DocumentDate:    input.DocumentDate,
			Origin:          input.Origin,
			Code:            input.Code,
			Email:           input.Email,
			Addresses:       input.Addresses,
			Contacts:        input.Contacts,
			Extras:          input.Extras,
		}, now)
		if err != nil {
			return err
		}

		// Reload with the stored graph for the response.
		full, err := repos.NaturalPersonRepo().FindByID(ctx, np.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload natural person")
		}
		created = full

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("natural person registered", "id", created.ID)

	return toPersonOutput(created), nil
}

// Get retrieves one natural person with its graph.
func (srv *personService) Get(ctx context.Context, id int64) (*usecase.PersonOutput, error) {
	np, err := srv.personRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNaturalPersonNotFound) {
			return nil, domainerrors.ErrPersonNotFound
		}

		return nil, errors.Wrap(err, "failed to get natural person")
	}

	return toPersonOutput(np), nil
}

// List retrieves natural persons matching the filter.
func (srv *personService) List(ctx context.Context, input *usecase.ListPersonInput) ([]*usecase.PersonOutput, error) {
	filter := repository.NaturalPersonFilter{
		Name:   input.Name,
		Code:   input.Code,
		Active: input.Active,
	}
	if input.CPF != "" {
		filter.CPF = util.NormalizeDocument(input.CPF)
	}

	nps, err := srv.personRepo.Search(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list natural persons")
	}

	outputs := make([]*usecase.PersonOutput, 0, len(nps))
	for _, np := range nps {
		outputs = append(outputs, toPersonOutput(np))
	}

	return outputs, nil
}

// Update applies a partial patch. The CPF goes through the uniqueness guard
// excluding the row itself; nested collections follow the
// replace-by-situacao policy.
func (srv *personService) Update(ctx context.Context, id int64, patch *usecase.PersonPatch) (*usecase.PersonOutput, error) {
	now := time.Now().UTC()

	var updated *entity.NaturalPerson

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		np, err := repos.NaturalPersonRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNaturalPersonNotFound) {
				return domainerrors.ErrPersonNotFound
			}

			return errors.Wrap(err, "failed to load natural person")
		}

		if patch.CPF != nil {
			cpf := util.NormalizeDocument(*patch.CPF)
			if !util.IsValidCPF(cpf) {
				return domainerrors.ErrInvalidDocument.WithDetails("cpf")
			}
			if _, err := repos.NaturalPersonRepo().FindActiveByCPF(ctx, cpf, np.ID); err == nil {
				return domainerrors.ErrCPFConflict
			} else if !errors.Is(err, repository.ErrNaturalPersonNotFound) {
				return errors.Wrap(err, "failed to check CPF uniqueness")
			}
			np.CPF = cpf
		}
		if patch.GenderID != nil {
			if _, err := repos.ReferenceRepo().FindGender(ctx, *patch.GenderID); err != nil {
				if errors.Is(err, repository.ErrReferenceNotFound) {
					return domainerrors.ErrReferenceNotFound.WrapMessage("gender")
				}

				return errors.Wrap(err, "failed to resolve gender")
			}
			np.GenderID = *patch.GenderID
		}
		if patch.MaritalStatusID != nil {
			if _, err := repos.ReferenceRepo().FindMaritalStatus(ctx, *patch.MaritalStatusID); err != nil {
				if errors.Is(err, repository.ErrReferenceNotFound) {
					return domainerrors.ErrReferenceNotFound.WrapMessage("marital status")
				}

				return errors.Wrap(err, "failed to resolve marital status")
			}
			np.MaritalStatusID = *patch.MaritalStatusID
		}
		if patch.Name != nil {
			np.Name = *patch.Name
		}
		if patch.BirthDate != nil {
			birthDate, err := parseDate(patch.BirthDate)
			if err != nil {
				return err
			}
			np.BirthDate = birthDate
		}
		if patch.DocumentDate != nil {
			documentDate, err := parseDate(patch.DocumentDate)
			if err != nil {
				return err
			}
			np.DocumentDate = documentDate
		}

		np.UpdatedAt = now
		if err := repos.NaturalPersonRepo().Update(ctx, np); err != nil {
			return errors.Wrap(err, "failed to update natural person")
		}

		if err := replaceDependents(ctx, repos, np.PersonID, patch.Addresses, patch.Contacts, patch.Extras, now); err != nil {
			return err
		}

		updated, err = repos.NaturalPersonRepo().FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to reload natural person")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return toPersonOutput(updated), nil
}

// Deactivate cascades the soft delete over the person's graph: its rows,
// dependents and login accounts.
func (srv *personService) Deactivate(ctx context.Context, id int64, motivo string) error {
	if motivo == "" {
		return domainerrors.ErrMotivoRequired
	}

	now := time.Now().UTC()

	return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		np, err := repos.NaturalPersonRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNaturalPersonNotFound) {
				return domainerrors.ErrPersonNotFound
			}

			return errors.Wrap(err, "failed to load natural person")
		}

		if err := np.Deactivate(motivo, now); err != nil {
			return mapLifecycleError(err)
		}

		if err := repos.NaturalPersonRepo().UpdateLifecycle(ctx, np.ID, np.Lifecycle); err != nil {
			return errors.Wrap(err, "failed to deactivate natural person")
		}
		if err := repos.PersonRepo().UpdateLifecycle(ctx, np.PersonID, np.Lifecycle); err != nil {
			return errors.Wrap(err, "failed to deactivate person")
		}

		lc := entity.InactiveLifecycle(motivo, now)

		if err := deactivateDependents(ctx, repos, np.PersonID, lc); err != nil {
			return err
		}
		if _, err := repos.UserAccountRepo().DeactivateByNaturalPerson(ctx, np.ID, lc); err != nil {
			return errors.Wrap(err, "failed to deactivate user accounts")
		}

		srv.logger.Info("natural person deactivated", "id", np.ID, "motivo", motivo)

		return nil
	})
}

// Reactivate brings back the person's root rows only.
func (srv *personService) Reactivate(ctx context.Context, id int64, motivo string) error {
	if motivo == "" {
		return domainerrors.ErrMotivoRequired
	}

	now := time.Now().UTC()

	return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		np, err := repos.NaturalPersonRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNaturalPersonNotFound) {
				return domainerrors.ErrPersonNotFound
			}

			return errors.Wrap(err, "failed to load natural person")
		}

		if err := np.Reactivate(motivo, now); err != nil {
			return mapLifecycleError(err)
		}

		if err := repos.NaturalPersonRepo().UpdateLifecycle(ctx, np.ID, np.Lifecycle); err != nil {
			return errors.Wrap(err, "failed to reactivate natural person")
		}
		if err := repos.PersonRepo().UpdateLifecycle(ctx, np.PersonID, np.Lifecycle); err != nil {
			return errors.Wrap(err, "failed to reactivate person")
		}

		srv.logger.Info("natural person reactivated", "id", np.ID, "motivo", motivo)

		return nil
	})
}
