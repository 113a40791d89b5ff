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

// legalEntityRepository implements the repository.LegalEntityRepository interface.
type legalEntityRepository struct {
	db *gorm.DB
}

// NewLegalEntityRepository is the constructor for legalEntityRepository.
func NewLegalEntityRepository(db *gorm.DB) repository.LegalEntityRepository {
	return &legalEntityRepository{
		db: db,
	}
}

// Create persists a new legal entity row.
func (repo *legalEntityRepository) Create(ctx context.Context, le *entity.LegalEntity) error {
	leM := fromLegalEntityDomain(le)

	if err := repo.db.WithContext(ctx).
		Omit("Pessoa", "Responsavel", "Enderecos", "Contatos", "Registros").
		Create(leM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCNPJConflict
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferenceNotFound.WrapMessage("invalid reference on legal entity")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required legal entity information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create legal entity")
	}

	le.ID = leM.ID
	le.UpdatedAt = leM.UpdatedAt

	return nil
}

// FindByID retrieves a legal entity with its person, dependents and
// responsible party preloaded. Dependent collections carry active rows only.
func (repo *legalEntityRepository) FindByID(ctx context.Context, id int64) (*entity.LegalEntity, error) {
	var leM model.LegalEntityModel

	if err := repo.db.WithContext(ctx).
		Preload("Pessoa").
		Preload("Responsavel").
		Preload("Enderecos", "situacao = ?", true).
		Preload("Contatos", "situacao = ?", true).
		Preload("Registros", "situacao = ?", true).
		Where("id = ?", id).
		First(&leM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLegalEntityNotFound
		}

		return nil, errors.Wrap(err, "failed to find legal entity by ID")
	}

	le := toLegalEntityDomain(&leM)

	link, err := NewCompanyLinkRepository(repo.db).FindActiveByChild(ctx, id)
	switch {
	case err == nil:
		le.ParentID = &link.ParentID
	case !errors.Is(err, repository.ErrLinkNotFound):
		return nil, errors.Wrap(err, "failed to resolve parent company link")
	}

	return le, nil
}

// FindActiveByCNPJ retrieves the active legal entity holding the given CNPJ.
func (repo *legalEntityRepository) FindActiveByCNPJ(ctx context.Context, cnpj string, excludeID int64) (*entity.LegalEntity, error) {
	var leM model.LegalEntityModel

	query := repo.db.WithContext(ctx).
		Where("cnpj = ? AND situacao = ?", cnpj, true)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	if err := query.First(&leM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLegalEntityNotFound
		}

		return nil, errors.Wrap(err, "failed to find legal entity by CNPJ")
	}

	return toLegalEntityDomain(&leM), nil
}

// Search lists legal entities matching the filter, person preloaded.
func (repo *legalEntityRepository) Search(ctx context.Context, filter repository.LegalEntityFilter) ([]*entity.LegalEntity, error) {
	var leModels []*model.LegalEntityModel

	query := repo.db.WithContext(ctx).Preload("Pessoa")

	if filter.CNPJ != "" {
		query = query.Where("cnpj = ?", filter.CNPJ)
	}
	if filter.Name != "" {
		pattern := "%" + filter.Name + "%"
		query = query.Where("nome_fantasia ILIKE ? OR razao_social ILIKE ?", pattern, pattern)
	}
	if filter.Code != "" {
		query = query.Where("pessoa_id IN (?)",
			repo.db.Model(&model.PersonModel{}).Select("id").Where("codigo = ?", filter.Code))
	}
	if filter.CompanyTypeID != nil {
		query = query.Where("tipo_empresa_id = ?", *filter.CompanyTypeID)
	}
	if filter.Active != nil {
		query = query.Where("situacao = ?", *filter.Active)
	}

	if err := query.Order("id").Find(&leModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search legal entities")
	}

	les := make([]*entity.LegalEntity, 0, len(leModels))
	for _, leM := range leModels {
		les = append(les, toLegalEntityDomain(leM))
	}

	return les, nil
}

// Update writes the scalar fields of an existing legal entity.
func (repo *legalEntityRepository) Update(ctx context.Context, le *entity.LegalEntity) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LegalEntityModel{}).
		Where("id = ?", le.ID).
		Updates(map[string]any{
			"cnpj":            le.CNPJ,
			"nome_fantasia":   le.TradeName,
			"razao_social":    le.LegalName,
			"tipo_empresa_id": le.CompanyTypeID,
			"categoria_id":    le.CategoryID,
			"filial":          le.Branch,
			"updated_at":      le.UpdatedAt,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrCNPJConflict
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrReferenceNotFound.WrapMessage("invalid reference on legal entity")
		}

		return errors.Wrap(result.Error, "failed to update legal entity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLegalEntityNotFound
	}

	return nil
}

// SetResponsible back-fills the responsible natural person id.
func (repo *legalEntityRepository) SetResponsible(ctx context.Context, id, naturalPersonID int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LegalEntityModel{}).
		Where("id = ?", id).
		Update("responsavel_id", naturalPersonID)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set responsible")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLegalEntityNotFound
	}

	return nil
}

// UpdateLifecycle writes the lifecycle fields of one legal entity row.
func (repo *legalEntityRepository) UpdateLifecycle(ctx context.Context, id int64, lc entity.Lifecycle) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LegalEntityModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"situacao":   lc.Active,
			"motivo":     lc.Motivo,
			"updated_at": lc.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update legal entity lifecycle")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLegalEntityNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLegalEntityDomain converts a GORM LegalEntityModel to a domain LegalEntity entity.
func toLegalEntityDomain(data *model.LegalEntityModel) *entity.LegalEntity {
	if data == nil {
		return nil
	}

	le := &entity.LegalEntity{
		ID:            data.ID,
		PersonID:      data.PessoaID,
		CNPJ:          data.CNPJ,
		TradeName:     data.NomeFantasia,
		LegalName:     data.RazaoSocial,
		CompanyTypeID: data.TipoEmpresaID,
		CategoryID:    data.CategoriaID,
		ResponsibleID: data.ResponsavelID,
		Branch:        data.Filial,
		Lifecycle: entity.Lifecycle{
			Active:    data.Situacao,
			Motivo:    data.Motivo,
			UpdatedAt: data.UpdatedAt,
		},
		Person:      toPersonDomain(data.Pessoa),
		Responsible: toNaturalPersonDomain(data.Responsavel),
	}

	for _, addressM := range data.Enderecos {
		le.Addresses = append(le.Addresses, toAddressDomain(addressM))
	}
	for _, contactM := range data.Contatos {
		le.Contacts = append(le.Contacts, toContactDomain(contactM))
	}
	for _, recordM := range data.Registros {
		le.Extras = append(le.Extras, toExtraRecordDomain(recordM))
	}

	return le
}

// fromLegalEntityDomain converts a domain LegalEntity entity to a GORM LegalEntityModel.
func fromLegalEntityDomain(data *entity.LegalEntity) *model.LegalEntityModel {
	if data == nil {
		return nil
	}

	return &model.LegalEntityModel{
		ID:            data.ID,
		PessoaID:      data.PersonID,
		CNPJ:          data.CNPJ,
		NomeFantasia:  data.TradeName,
		RazaoSocial:   data.LegalName,
		TipoEmpresaID: data.CompanyTypeID,
		CategoriaID:   data.CategoryID,
		ResponsavelID: data.ResponsibleID,
		Filial:        data.Branch,
		Situacao:      data.Active,
		Motivo:        data.Motivo,
		UpdatedAt:     data.UpdatedAt,
	}
}
