package postgres

import (
	"context"

	"registro/internal/domain/entity"
	"registro/internal/domain/repository"
	"registro/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// referenceRepository implements the repository.ReferenceRepository interface.
// Every lookup requires the row to be active; inactive references are treated
// as absent.
type referenceRepository struct {
	db *gorm.DB
}

// NewReferenceRepository is the constructor for referenceRepository.
func NewReferenceRepository(db *gorm.DB) repository.ReferenceRepository {
	return &referenceRepository{
		db: db,
	}
}

// findActive loads one active row by id into dest.
func (repo *referenceRepository) findActive(ctx context.Context, id int64, dest any, what string) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND situacao = ?", id, true).
		First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrReferenceNotFound
		}

		return errors.Wrapf(err, "failed to find %s", what)
	}

	return nil
}

// FindCompanyType retrieves an active company type by id.
func (repo *referenceRepository) FindCompanyType(ctx context.Context, id int64) (*entity.CompanyType, error) {
	var m model.CompanyTypeModel
	if err := repo.findActive(ctx, id, &m, "company type"); err != nil {
		return nil, err
	}

	return &entity.CompanyType{
		ID:        m.ID,
		Name:      m.Nome,
		Lifecycle: entity.Lifecycle{Active: m.Situacao, Motivo: m.Motivo, UpdatedAt: m.UpdatedAt},
	}, nil
}

// FindCategory retrieves an active category by id.
func (repo *referenceRepository) FindCategory(ctx context.Context, id int64) (*entity.Category, error) {
	var m model.CategoryModel
	if err := repo.findActive(ctx, id, &m, "category"); err != nil {
		return nil, err
	}

	return toCategoryDomain(&m), nil
}

// FindGender retrieves an active gender by id.
func (repo *referenceRepository) FindGender(ctx context.Context, id int64) (*entity.Gender, error) {
	var m model.GenderModel
	if err := repo.findActive(ctx, id, &m, "gender"); err != nil {
		return nil, err
	}

	return &entity.Gender{
		ID:        m.ID,
		Name:      m.Nome,
		Lifecycle: entity.Lifecycle{Active: m.Situacao, Motivo: m.Motivo, UpdatedAt: m.UpdatedAt},
	}, nil
}

// FindMaritalStatus retrieves an active marital status by id.
func (repo *referenceRepository) FindMaritalStatus(ctx context.Context, id int64) (*entity.MaritalStatus, error) {
	var m model.MaritalStatusModel
	if err := repo.findActive(ctx, id, &m, "marital status"); err != nil {
		return nil, err
	}

	return &entity.MaritalStatus{
		ID:        m.ID,
		Name:      m.Nome,
		Lifecycle: entity.Lifecycle{Active: m.Situacao, Motivo: m.Motivo, UpdatedAt: m.UpdatedAt},
	}, nil
}

// FindAddressType retrieves an active address type by id.
func (repo *referenceRepository) FindAddressType(ctx context.Context, id int64) (*entity.AddressType, error) {
	var m model.AddressTypeModel
	if err := repo.findActive(ctx, id, &m, "address type"); err != nil {
		return nil, err
	}

	return &entity.AddressType{
		ID:        m.ID,
		Name:      m.Nome,
		Lifecycle: entity.Lifecycle{Active: m.Situacao, Motivo: m.Motivo, UpdatedAt: m.UpdatedAt},
	}, nil
}

// FindContactType retrieves an active contact type by id.
func (repo *referenceRepository) FindContactType(ctx context.Context, id int64) (*entity.ContactType, error) {
	var m model.ContactTypeModel
	if err := repo.findActive(ctx, id, &m, "contact type"); err != nil {
		return nil, err
	}

	return &entity.ContactType{
		ID:        m.ID,
		Name:      m.Nome,
		Lifecycle: entity.Lifecycle{Active: m.Situacao, Motivo: m.Motivo, UpdatedAt: m.UpdatedAt},
	}, nil
}

// FindSystem retrieves an active system by id.
func (repo *referenceRepository) FindSystem(ctx context.Context, id int64) (*entity.System, error) {
	var m model.SystemModel
	if err := repo.findActive(ctx, id, &m, "system"); err != nil {
		return nil, err
	}

	return &entity.System{
		ID:        m.ID,
		Name:      m.Nome,
		Lifecycle: entity.Lifecycle{Active: m.Situacao, Motivo: m.Motivo, UpdatedAt: m.UpdatedAt},
	}, nil
}

// FindActiveCategoryByDescription performs the case-insensitive description
// uniqueness check among the company's active categories.
func (repo *referenceRepository) FindActiveCategoryByDescription(ctx context.Context, legalEntityID int64, description string, excludeID int64) (*entity.Category, error) {
	var m model.CategoryModel

	query := repo.db.WithContext(ctx).
		Where("pessoa_juridica_id = ? AND LOWER(descricao) = LOWER(?) AND situacao = ?", legalEntityID, description, true)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReferenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by description")
	}

	return toCategoryDomain(&m), nil
}

// toCategoryDomain converts a GORM CategoryModel to a domain Category entity.
func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:            data.ID,
		LegalEntityID: data.PessoaJuridicaID,
		Global:        data.Global,
		Description:   data.Descricao,
		Lifecycle: entity.Lifecycle{
			Active:    data.Situacao,
			Motivo:    data.Motivo,
			UpdatedAt: data.UpdatedAt,
		},
	}
}
