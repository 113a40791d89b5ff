package impl

import (
	"context"
	"log/slog"
	"time"

	"registro/config"
	"registro/internal/domain/entity"
	domainerrors "registro/internal/domain/errors"
	"registro/internal/domain/repository"
	"registro/internal/domain/service"
	"registro/internal/usecase"
	"registro/internal/util"

	"github.com/pkg/errors"
)

// legalEntityService carries the shared registration logic of notary offices
// and suppliers: both build the same entity graph, cascade the same way and
// differ only in their surface errors and in the supplier batch path.
type legalEntityService struct {
	txManager   repository.TransactionManager
	entityRepo  repository.LegalEntityRepository
	profileRepo repository.ProfileRepository
	hasher      service.PasswordHasher
	registry    *config.RegistryConfig
	logger      *slog.Logger

	// notFound is the surface error of the concrete registry (cartório or
	// fornecedor) for a missing root entity.
	notFound *domainerrors.BaseError
}

// create builds the whole entity graph inside one transaction. Any failure
// at any step rolls everything back.
func (srv *legalEntityService) create(ctx context.Context, input *usecase.CreateLegalEntityInput) (*usecase.LegalEntityOutput, error) {
	cnpj := util.NormalizeDocument(input.CNPJ)
	if !util.IsValidCNPJ(cnpj) {
		return nil, domainerrors.ErrInvalidDocument.WithDetails("cnpj")
	}

	var responsibleCPF string
	if input.Responsible != nil {
		responsibleCPF = util.NormalizeDocument(input.Responsible.CPF)
		if !util.IsValidCPF(responsibleCPF) {
			return nil, domainerrors.ErrInvalidDocument.WithDetails("cpf")
		}

		// The profile granted to the responsible party must resolve to an
		// active row before anything is written.
		if _, err := srv.profileRepo.FindActiveByID(ctx, input.Responsible.ProfileID); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return nil, domainerrors.ErrProfileNotFound
			}

			return nil, errors.Wrap(err, "failed to resolve responsible profile")
		}
	}

	now := time.Now().UTC()

	var created *entity.LegalEntity

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		refRepo := repos.ReferenceRepo()

		// 1. Resolve every reference before any write.
		if _, err := refRepo.FindCompanyType(ctx, input.CompanyTypeID); err != nil {
			if errors.Is(err, repository.ErrReferenceNotFound) {
				return domainerrors.ErrReferenceNotFound.WrapMessage("company type")
			}

			return errors.Wrap(err, "failed to resolve company type")
		}
		categoryID := input.CategoryID
		if categoryID != nil {
			if _, err := refRepo.FindCategory(ctx, *categoryID); err != nil {
				if errors.Is(err, repository.ErrReferenceNotFound) {
					return domainerrors.ErrReferenceNotFound.WrapMessage("category")
				}

				return errors.Wrap(err, "failed to resolve category")
			}
		}

		parentID := srv.parentCompanyID(input.ParentCompanyID)
		if parentID != 0 {
			parent, err := repos.LegalEntityRepo().FindByID(ctx, parentID)
			if err != nil {
				if errors.Is(err, repository.ErrLegalEntityNotFound) {
					return domainerrors.ErrReferenceNotFound.WrapMessage("parent company")
				}

				return errors.Wrap(err, "failed to resolve parent company")
			}
			if !parent.IsActive() {
				return domainerrors.ErrReferenceNotFound.WrapMessage("parent company")
			}
		}

		// A description selects the category within the parent company's
		// active, company-scoped categories.
		if categoryID == nil && input.CategoryDescription != "" {
			category, err := refRepo.FindActiveCategoryByDescription(ctx, parentID, input.CategoryDescription, 0)
			if err != nil {
				if errors.Is(err, repository.ErrReferenceNotFound) {
					return domainerrors.ErrReferenceNotFound.WrapMessage("category")
				}

				return errors.Wrap(err, "failed to resolve category by description")
			}
			categoryID = &category.ID
		}

		systemID := srv.systemID(input.SystemID)
		if systemID != 0 {
			if _, err := refRepo.FindSystem(ctx, systemID); err != nil {
				if errors.Is(err, repository.ErrReferenceNotFound) {
					return domainerrors.ErrReferenceNotFound.WrapMessage("system")
				}

				return errors.Wrap(err, "failed to resolve system")
			}
		}

		// 2. Uniqueness guard: one active row per CNPJ.
		if _, err := repos.LegalEntityRepo().FindActiveByCNPJ(ctx, cnpj, 0); err == nil {
			return domainerrors.ErrCNPJConflict
		} else if !errors.Is(err, repository.ErrLegalEntityNotFound) {
			return errors.Wrap(err, "failed to check CNPJ uniqueness")
		}

		// 3. Root person row, codigo back-filled.
		person, err := createRootPerson(ctx, repos, entity.PersonKindLegal, input.Origin, input.Code, now)
		if err != nil {
			return err
		}

		// 4. Legal entity row; the responsible id stays unset until the
		// responsible natural person exists.
		le := &entity.LegalEntity{
			PersonID:      person.ID,
			CNPJ:          cnpj,
			TradeName:     input.TradeName,
			LegalName:     input.LegalName,
			CompanyTypeID: input.CompanyTypeID,
			CategoryID:    categoryID,
			Branch:        input.Branch,
			Lifecycle:     entity.NewActiveLifecycle(now),
			Person:        person,
		}
		if err := repos.LegalEntityRepo().Create(ctx, le); err != nil {
			return errors.Wrap(err, "failed to create legal entity")
		}

		// 5. Nested collections.
		if err := createDependents(ctx, repos, person.ID, input.Addresses, input.Contacts, input.Extras, now); err != nil {
			return err
		}

		// 6. Inline responsible party: its own sub-graph, the link with
		// the resolved profile, and the responsible-FK back-fill.
		if input.Responsible != nil {
			np, err := createNaturalPersonGraph(ctx, repos, srv.hasher, &naturalPersonGraphInput{
				CPF:             responsibleCPF,
				Name:            input.Responsible.Name,
				GenderID:        input.Responsible.GenderID,
				MaritalStatusID: input.Responsible.MaritalStatusID,
				BirthDate:       input.Responsible.BirthDate,
				DocumentDate:    input.Responsible.DocumentDate,
				Origin:          input.Origin,
				Email:           input.Responsible.Email,
				Addresses:       input.Responsible.Addresses,
				Contacts:        input.Responsible.Contacts,
				Extras:          input.Responsible.Extras,
			}, now)
			if err != nil {
				return err
			}

			link := &entity.ResponsibleLink{
				LegalEntityID:   le.ID,
				NaturalPersonID: np.ID,
				ProfileID:       input.Responsible.ProfileID,
				Principal:       true,
				Lifecycle:       entity.NewActiveLifecycle(now),
			}
			if err := repos.ResponsibleLinkRepo().Create(ctx, link); err != nil {
				if errors.Is(err, repository.ErrDuplicateLink) {
					return domainerrors.ErrLinkConflict
				}

				return errors.Wrap(err, "failed to create responsible link")
			}

			if err := repos.LegalEntityRepo().SetResponsible(ctx, le.ID, np.ID); err != nil {
				return errors.Wrap(err, "failed to back-fill responsible")
			}
			le.ResponsibleID = &np.ID
			le.Responsible = np
		}

		// 7. Ancillary rows: parent-company link and system entitlement.
		if parentID != 0 {
			companyLink := &entity.CompanyLink{
				ParentID:  parentID,
				ChildID:   le.ID,
				Lifecycle: entity.NewActiveLifecycle(now),
			}
			if err := repos.CompanyLinkRepo().Create(ctx, companyLink); err != nil {
				if errors.Is(err, repository.ErrDuplicateLink) {
					return domainerrors.ErrLinkConflict
				}

				return errors.Wrap(err, "failed to create company link")
			}
		}
		if systemID != 0 {
			grant := &entity.SystemGrant{
				LegalEntityID: le.ID,
				SystemID:      systemID,
				Lifecycle:     entity.NewActiveLifecycle(now),
			}
			if err := repos.SystemGrantRepo().Create(ctx, grant); err != nil {
				if errors.Is(err, repository.ErrDuplicateLink) {
					return domainerrors.ErrLinkConflict
				}

				return errors.Wrap(err, "failed to create system grant")
			}
		}

		// 8. Reload with the stored graph for the response.
		full, err := repos.LegalEntityRepo().FindByID(ctx, le.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload legal entity")
		}
		created = full

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("legal entity registered", "id", created.ID, "cnpj", cnpj)

	return toLegalEntityOutput(created), nil
}

// get retrieves one legal entity with its graph.
func (srv *legalEntityService) get(ctx context.Context, id int64) (*usecase.LegalEntityOutput, error) {
	le, err := srv.entityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLegalEntityNotFound) {
			return nil, srv.notFound
		}

		return nil, errors.Wrap(err, "failed to get legal entity")
	}

	return toLegalEntityOutput(le), nil
}

// list retrieves legal entities matching the filter.
func (srv *legalEntityService) list(ctx context.Context, input *usecase.ListLegalEntityInput) ([]*usecase.LegalEntityOutput, error) {
	filter := repository.LegalEntityFilter{
		Name:          input.Name,
		Code:          input.Code,
		CompanyTypeID: input.CompanyTypeID,
		Active:        input.Active,
	}
	if input.CNPJ != "" {
		filter.CNPJ = util.NormalizeDocument(input.CNPJ)
	}

	les, err := srv.entityRepo.Search(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list legal entities")
	}

	outputs := make([]*usecase.LegalEntityOutput, 0, len(les))
	for _, le := range les {
		outputs = append(outputs, toLegalEntityOutput(le))
	}

	return outputs, nil
}

// update applies a partial patch. Scalar fields go through the same
// uniqueness guard as creation, excluding the row itself; nested collections
// follow the replace-by-situacao policy.
func (srv *legalEntityService) update(ctx context.Context, id int64, patch *usecase.LegalEntityPatch) (*usecase.LegalEntityOutput, error) {
	now := time.Now().UTC()

	var updated *entity.LegalEntity

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		le, err := repos.LegalEntityRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrLegalEntityNotFound) {
				return srv.notFound
			}

			return errors.Wrap(err, "failed to load legal entity")
		}

		if patch.CNPJ != nil {
			cnpj := util.NormalizeDocument(*patch.CNPJ)
			if !util.IsValidCNPJ(cnpj) {
				return domainerrors.ErrInvalidDocument.WithDetails("cnpj")
			}
			if _, err := repos.LegalEntityRepo().FindActiveByCNPJ(ctx, cnpj, le.ID); err == nil {
				return domainerrors.ErrCNPJConflict
			} else if !errors.Is(err, repository.ErrLegalEntityNotFound) {
				return errors.Wrap(err, "failed to check CNPJ uniqueness")
			}
			le.CNPJ = cnpj
		}
		if patch.CompanyTypeID != nil {
			if _, err := repos.ReferenceRepo().FindCompanyType(ctx, *patch.CompanyTypeID); err != nil {
				if errors.Is(err, repository.ErrReferenceNotFound) {
					return domainerrors.ErrReferenceNotFound.WrapMessage("company type")
				}

				return errors.Wrap(err, "failed to resolve company type")
			}
			le.CompanyTypeID = *patch.CompanyTypeID
		}
		if patch.CategoryID != nil {
			if _, err := repos.ReferenceRepo().FindCategory(ctx, *patch.CategoryID); err != nil {
				if errors.Is(err, repository.ErrReferenceNotFound) {
					return domainerrors.ErrReferenceNotFound.WrapMessage("category")
				}

				return errors.Wrap(err, "failed to resolve category")
			}
			le.CategoryID = patch.CategoryID
		}
		if patch.TradeName != nil {
			le.TradeName = *patch.TradeName
		}
		if patch.LegalName != nil {
			le.LegalName = *patch.LegalName
		}
		if patch.Branch != nil {
			le.Branch = *patch.Branch
		}

		le.UpdatedAt = now
		if err := repos.LegalEntityRepo().Update(ctx, le); err != nil {
			return errors.Wrap(err, "failed to update legal entity")
		}

		if err := replaceDependents(ctx, repos, le.PersonID, patch.Addresses, patch.Contacts, patch.Extras, now); err != nil {
			return err
		}

		updated, err = repos.LegalEntityRepo().FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to reload legal entity")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return toLegalEntityOutput(updated), nil
}

// deactivate runs the whole cascade in one transaction: root rows,
// dependents, the responsible graph, user accounts, links and entitlements.
// No partial deactivation is ever observable.
func (srv *legalEntityService) deactivate(ctx context.Context, id int64, motivo string) error {
	if motivo == "" {
		return domainerrors.ErrMotivoRequired
	}

	now := time.Now().UTC()

	return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		le, err := repos.LegalEntityRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrLegalEntityNotFound) {
				return srv.notFound
			}

			return errors.Wrap(err, "failed to load legal entity")
		}

		// The base company every other entity hangs under is never
		// deactivated through this flow.
		if srv.registry != nil && srv.registry.BaseCompanyID != 0 && le.ID == srv.registry.BaseCompanyID {
			return domainerrors.ErrGlobalRecord
		}

		if err := le.Deactivate(motivo, now); err != nil {
			return mapLifecycleError(err)
		}

		// Root rows first.
		if err := repos.LegalEntityRepo().UpdateLifecycle(ctx, le.ID, le.Lifecycle); err != nil {
			return errors.Wrap(err, "failed to deactivate legal entity")
		}
		if err := repos.PersonRepo().UpdateLifecycle(ctx, le.PersonID, le.Lifecycle); err != nil {
			return errors.Wrap(err, "failed to deactivate person")
		}

		// Every row the cascade touches carries the same motivo.
		lc := entity.InactiveLifecycle(motivo, now)

		if err := deactivateDependents(ctx, repos, le.PersonID, lc); err != nil {
			return err
		}

		links, err := repos.ResponsibleLinkRepo().FindActiveByLegalEntity(ctx, le.ID)
		if err != nil {
			return errors.Wrap(err, "failed to load responsible links")
		}
		if _, err := repos.ResponsibleLinkRepo().DeactivateByLegalEntity(ctx, le.ID, lc); err != nil {
			return errors.Wrap(err, "failed to deactivate responsible links")
		}
		for _, link := range links {
			if err := deactivateNaturalPersonGraph(ctx, repos, link.NaturalPersonID, lc); err != nil {
				return err
			}
		}

		if _, err := repos.CompanyLinkRepo().DeactivateByCompany(ctx, le.ID, lc); err != nil {
			return errors.Wrap(err, "failed to deactivate company links")
		}
		if _, err := repos.SystemGrantRepo().DeactivateByCompany(ctx, le.ID, lc); err != nil {
			return errors.Wrap(err, "failed to deactivate system grants")
		}

		srv.logger.Info("legal entity deactivated", "id", le.ID, "motivo", motivo)

		return nil
	})
}

// reactivate brings back the root rows only; the dependent graph stays as
// the cascade left it.
func (srv *legalEntityService) reactivate(ctx context.Context, id int64, motivo string) error {
	if motivo == "" {
		return domainerrors.ErrMotivoRequired
	}

	now := time.Now().UTC()

	return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		le, err := repos.LegalEntityRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrLegalEntityNotFound) {
				return srv.notFound
			}

			return errors.Wrap(err, "failed to load legal entity")
		}

		if err := le.Reactivate(motivo, now); err != nil {
			return mapLifecycleError(err)
		}

		if err := repos.LegalEntityRepo().UpdateLifecycle(ctx, le.ID, le.Lifecycle); err != nil {
			return errors.Wrap(err, "failed to reactivate legal entity")
		}
		if err := repos.PersonRepo().UpdateLifecycle(ctx, le.PersonID, le.Lifecycle); err != nil {
			return errors.Wrap(err, "failed to reactivate person")
		}

		srv.logger.Info("legal entity reactivated", "id", le.ID, "motivo", motivo)

		return nil
	})
}

func (srv *legalEntityService) parentCompanyID(supplied *int64) int64 {
	if supplied != nil {
		return *supplied
	}
	if srv.registry != nil {
		return srv.registry.BaseCompanyID
	}

	return 0
}

func (srv *legalEntityService) systemID(supplied *int64) int64 {
	if supplied != nil {
		return *supplied
	}
	if srv.registry != nil {
		return srv.registry.DefaultSystemID
	}

	return 0
}

// mapLifecycleError translates the entity-level transition errors into the
// surface taxonomy.
func mapLifecycleError(err error) error {
	switch {
	case errors.Is(err, entity.ErrMotivoRequired):
		return domainerrors.ErrMotivoRequired
	case errors.Is(err, entity.ErrAlreadyInactive):
		return domainerrors.ErrAlreadyInactive
	case errors.Is(err, entity.ErrAlreadyActive):
		return domainerrors.ErrAlreadyActive
	case errors.Is(err, entity.ErrGlobalRecord):
		return domainerrors.ErrGlobalRecord
	default:
		return err
	}
}
