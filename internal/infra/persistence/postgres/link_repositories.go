package postgres

import (
	"context"

	"registro/internal/domain/entity"
	domainerrors "registro/internal/domain/errors"
	"registro/internal/domain/repository"
	"registro/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// responsibleLinkRepository implements the repository.ResponsibleLinkRepository interface.
type responsibleLinkRepository struct {
	db *gorm.DB
}

// NewResponsibleLinkRepository is the constructor for responsibleLinkRepository.
func NewResponsibleLinkRepository(db *gorm.DB) repository.ResponsibleLinkRepository {
	return &responsibleLinkRepository{
		db: db,
	}
}

// Create persists a new responsible link.
func (repo *responsibleLinkRepository) Create(ctx context.Context, link *entity.ResponsibleLink) error {
	linkM := fromResponsibleLinkDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLink
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferenceNotFound.WrapMessage("invalid reference on responsible link")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create responsible link")
	}

	link.ID = linkM.ID
	link.UpdatedAt = linkM.UpdatedAt

	return nil
}

// FindActiveByLegalEntity lists the company's active responsible links.
func (repo *responsibleLinkRepository) FindActiveByLegalEntity(ctx context.Context, legalEntityID int64) ([]*entity.ResponsibleLink, error) {
	var linkModels []*model.ResponsibleLinkModel

	if err := repo.db.WithContext(ctx).
		Where("pessoa_juridica_id = ? AND situacao = ?", legalEntityID, true).
		Order("id").
		Find(&linkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find responsible links by legal entity")
	}

	links := make([]*entity.ResponsibleLink, 0, len(linkModels))
	for _, linkM := range linkModels {
		links = append(links, toResponsibleLinkDomain(linkM))
	}

	return links, nil
}

// DeactivateByLegalEntity applies lc to every active link of the company.
func (repo *responsibleLinkRepository) DeactivateByLegalEntity(ctx context.Context, legalEntityID int64, lc entity.Lifecycle) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ResponsibleLinkModel{}).
		Where("pessoa_juridica_id = ? AND situacao = ?", legalEntityID, true).
		Updates(map[string]any{
			"situacao":   lc.Active,
			"motivo":     lc.Motivo,
			"updated_at": lc.UpdatedAt,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate responsible links")
	}

	return result.RowsAffected, nil
}

// companyLinkRepository implements the repository.CompanyLinkRepository interface.
type companyLinkRepository struct {
	db *gorm.DB
}

// NewCompanyLinkRepository is the constructor for companyLinkRepository.
func NewCompanyLinkRepository(db *gorm.DB) repository.CompanyLinkRepository {
	return &companyLinkRepository{
		db: db,
	}
}

// Create persists a new parent/child link.
func (repo *companyLinkRepository) Create(ctx context.Context, link *entity.CompanyLink) error {
	linkM := fromCompanyLinkDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLink
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferenceNotFound.WrapMessage("invalid reference on company link")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create company link")
	}

	link.ID = linkM.ID
	link.UpdatedAt = linkM.UpdatedAt

	return nil
}

// FindActiveByChild retrieves the active parent link of a company.
func (repo *companyLinkRepository) FindActiveByChild(ctx context.Context, childID int64) (*entity.CompanyLink, error) {
	var linkM model.CompanyLinkModel

	if err := repo.db.WithContext(ctx).
		Where("filial_id = ? AND situacao = ?", childID, true).
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find company link by child")
	}

	return toCompanyLinkDomain(&linkM), nil
}

// DeactivateByCompany applies lc to every active link in which the company
// participates, on either side.
func (repo *companyLinkRepository) DeactivateByCompany(ctx context.Context, legalEntityID int64, lc entity.Lifecycle) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CompanyLinkModel{}).
		Where("(matriz_id = ? OR filial_id = ?) AND situacao = ?", legalEntityID, legalEntityID, true).
		Updates(map[string]any{
			"situacao":   lc.Active,
			"motivo":     lc.Motivo,
			"updated_at": lc.UpdatedAt,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate company links")
	}

	return result.RowsAffected, nil
}

// systemGrantRepository implements the repository.SystemGrantRepository interface.
type systemGrantRepository struct {
	db *gorm.DB
}

// NewSystemGrantRepository is the constructor for systemGrantRepository.
func NewSystemGrantRepository(db *gorm.DB) repository.SystemGrantRepository {
	return &systemGrantRepository{
		db: db,
	}
}

// Create persists a new system grant.
func (repo *systemGrantRepository) Create(ctx context.Context, grant *entity.SystemGrant) error {
	grantM := fromSystemGrantDomain(grant)

	if err := repo.db.WithContext(ctx).Create(grantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLink
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferenceNotFound.WrapMessage("invalid reference on system grant")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create system grant")
	}

	grant.ID = grantM.ID
	grant.UpdatedAt = grantM.UpdatedAt

	return nil
}

// HasActiveGrant reports whether the company holds an active entitlement to
// the system.
func (repo *systemGrantRepository) HasActiveGrant(ctx context.Context, legalEntityID, systemID int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SystemGrantModel{}).
		Where("pessoa_juridica_id = ? AND sistema_id = ? AND situacao = ?", legalEntityID, systemID, true).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check system grant")
	}

	return count > 0, nil
}

// DeactivateByCompany applies lc to every active grant of the company.
func (repo *systemGrantRepository) DeactivateByCompany(ctx context.Context, legalEntityID int64, lc entity.Lifecycle) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SystemGrantModel{}).
		Where("pessoa_juridica_id = ? AND situacao = ?", legalEntityID, true).
		Updates(map[string]any{
			"situacao":   lc.Active,
			"motivo":     lc.Motivo,
			"updated_at": lc.UpdatedAt,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate system grants")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toResponsibleLinkDomain converts a GORM ResponsibleLinkModel to a domain ResponsibleLink entity.
func toResponsibleLinkDomain(data *model.ResponsibleLinkModel) *entity.ResponsibleLink {
	if data == nil {
		return nil
	}

	return &entity.ResponsibleLink{
		ID:              data.ID,
		LegalEntityID:   data.PessoaJuridicaID,
		NaturalPersonID: data.PessoaFisicaID,
		ProfileID:       data.PerfilID,
		Principal:       data.Principal,
		Lifecycle: entity.Lifecycle{
			Active:    data.Situacao,
			Motivo:    data.Motivo,
			UpdatedAt: data.UpdatedAt,
		},
	}
}

// fromResponsibleLinkDomain converts a domain ResponsibleLink entity to a GORM ResponsibleLinkModel.
func fromResponsibleLinkDomain(data *entity.ResponsibleLink) *model.ResponsibleLinkModel {
	if data == nil {
		return nil
	}

	return &model.ResponsibleLinkModel{
		ID:               data.ID,
		PessoaJuridicaID: data.LegalEntityID,
		PessoaFisicaID:   data.NaturalPersonID,
		PerfilID:         data.ProfileID,
		Principal:        data.Principal,
		Situacao:         data.Active,
		Motivo:           data.Motivo,
		UpdatedAt:        data.UpdatedAt,
	}
}

// toCompanyLinkDomain converts a GORM CompanyLinkModel to a domain CompanyLink entity.
func toCompanyLinkDomain(data *model.CompanyLinkModel) *entity.CompanyLink {
	if data == nil {
		return nil
	}

	return &entity.CompanyLink{
		ID:       data.ID,
		ParentID: data.MatrizID,
		ChildID:  data.FilialID,
		Lifecycle: entity.Lifecycle{
			Active:    data.Situacao,
			Motivo:    data.Motivo,
			UpdatedAt: data.UpdatedAt,
		},
	}
}

// fromCompanyLinkDomain converts a domain CompanyLink entity to a GORM CompanyLinkModel.
func fromCompanyLinkDomain(data *entity.CompanyLink) *model.CompanyLinkModel {
	if data == nil {
		return nil
	}

	return &model.CompanyLinkModel{
		ID:        data.ID,
		MatrizID:  data.ParentID,
		FilialID:  data.ChildID,
		Situacao:  data.Active,
		Motivo:    data.Motivo,
		UpdatedAt: data.UpdatedAt,
	}
}

// toSystemGrantDomain converts a GORM SystemGrantModel to a domain SystemGrant entity.
func toSystemGrantDomain(data *model.SystemGrantModel) *entity.SystemGrant {
	if data == nil {
		return nil
	}

	return &entity.SystemGrant{
		ID:            data.ID,
		LegalEntityID: data.PessoaJuridicaID,
		SystemID:      data.SistemaID,
		Lifecycle: entity.Lifecycle{
			Active:    data.Situacao,
			Motivo:    data.Motivo,
			UpdatedAt: data.UpdatedAt,
		},
	}
}

// fromSystemGrantDomain converts a domain SystemGrant entity to a GORM SystemGrantModel.
func fromSystemGrantDomain(data *entity.SystemGrant) *model.SystemGrantModel {
	if data == nil {
		return nil
	}

	return &model.SystemGrantModel{
		ID:               data.ID,
		PessoaJuridicaID: data.LegalEntityID,
		SistemaID:        data.SystemID,
		Situacao:         data.Active,
		Motivo:           data.Motivo,
		UpdatedAt:        data.UpdatedAt,
	}
}
