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

// naturalPersonRepository implements the repository.NaturalPersonRepository interface.
type naturalPersonRepository struct {
	db *gorm.DB
}

// NewNaturalPersonRepository is the constructor for naturalPersonRepository.
func NewNaturalPersonRepository(db *gorm.DB) repository.NaturalPersonRepository {
	return &naturalPersonRepository{
		db: db,
	}
}

// Create persists a new natural person row.
func (repo *naturalPersonRepository) Create(ctx context.Context, np *entity.NaturalPerson) error {
	npM := fromNaturalPersonDomain(np)

	if err := repo.db.WithContext(ctx).
		Omit("Pessoa", "Enderecos", "Contatos", "Registros", "Usuarios").
		Create(npM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCPFConflict
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferenceNotFound.WrapMessage("invalid reference on natural person")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required natural person information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create natural person")
	}

	np.ID = npM.ID
	np.UpdatedAt = npM.UpdatedAt

	return nil
}

// FindByID retrieves a natural person with its person, dependents and user
// accounts preloaded. Dependent collections carry active rows only.
func (repo *naturalPersonRepository) FindByID(ctx context.Context, id int64) (*entity.NaturalPerson, error) {
	var npM model.NaturalPersonModel

	if err := repo.db.WithContext(ctx).
		Preload("Pessoa").
		Preload("Enderecos", "situacao = ?", true).
		Preload("Contatos", "situacao = ?", true).
		Preload("Registros", "situacao = ?", true).
		Preload("Usuarios", "situacao = ?", true).
		Where("id = ?", id).
		First(&npM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNaturalPersonNotFound
		}

		return nil, errors.Wrap(err, "failed to find natural person by ID")
	}

	return toNaturalPersonDomain(&npM), nil
}

// FindActiveByCPF retrieves the active natural person holding the given CPF.
func (repo *naturalPersonRepository) FindActiveByCPF(ctx context.Context, cpf string, excludeID int64) (*entity.NaturalPerson, error) {
	var npM model.NaturalPersonModel

	query := repo.db.WithContext(ctx).
		Where("cpf = ? AND situacao = ?", cpf, true)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	if err := query.First(&npM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNaturalPersonNotFound
		}

		return nil, errors.Wrap(err, "failed to find natural person by CPF")
	}

	return toNaturalPersonDomain(&npM), nil
}

// Search lists natural persons matching the filter, person preloaded.
func (repo *naturalPersonRepository) Search(ctx context.Context, filter repository.NaturalPersonFilter) ([]*entity.NaturalPerson, error) {
	var npModels []*model.NaturalPersonModel

	query := repo.db.WithContext(ctx).Preload("Pessoa")

	if filter.CPF != "" {
		query = query.Where("cpf = ?", filter.CPF)
	}
	if filter.Name != "" {
		query = query.Where("nome ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Code != "" {
		query = query.Where("pessoa_id IN (?)",
			repo.db.Model(&model.PersonModel{}).Select("id").Where("codigo = ?", filter.Code))
	}
	if filter.Active != nil {
		query = query.Where("situacao = ?", *filter.Active)
	}

	if err := query.Order("id").Find(&npModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search natural persons")
	}

	nps := make([]*entity.NaturalPerson, 0, len(npModels))
	for _, npM := range npModels {
		nps = append(nps, toNaturalPersonDomain(npM))
	}

	return nps, nil
}

// Update writes the scalar fields of an existing natural person.
func (repo *naturalPersonRepository) Update(ctx context.Context, np *entity.NaturalPerson) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NaturalPersonModel{}).
		Where("id = ?", np.ID).
		Updates(map[string]any{
			"cpf":             np.CPF,
			"nome":            np.Name,
			"genero_id":       np.GenderID,
			"estado_civil_id": np.MaritalStatusID,
			"data_nascimento": np.BirthDate,
			"data_documento":  np.DocumentDate,
			"updated_at":      np.UpdatedAt,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrCPFConflict
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrReferenceNotFound.WrapMessage("invalid reference on natural person")
		}

		return errors.Wrap(result.Error, "failed to update natural person")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNaturalPersonNotFound
	}

	return nil
}

// UpdateLifecycle writes the lifecycle fields of one natural person row.
func (repo *naturalPersonRepository) UpdateLifecycle(ctx context.Context, id int64, lc entity.Lifecycle) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NaturalPersonModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"situacao":   lc.Active,
			"motivo":     lc.Motivo,
			"updated_at": lc.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update natural person lifecycle")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNaturalPersonNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toNaturalPersonDomain converts a GORM NaturalPersonModel to a domain NaturalPerson entity.
func toNaturalPersonDomain(data *model.NaturalPersonModel) *entity.NaturalPerson {
	if data == nil {
		return nil
	}

	np := &entity.NaturalPerson{
		ID:              data.ID,
		PersonID:        data.PessoaID,
		CPF:             data.CPF,
		Name:            data.Nome,
		GenderID:        data.GeneroID,
		MaritalStatusID: data.EstadoCivilID,
		BirthDate:       data.DataNascimento,
		DocumentDate:    data.DataDocumento,
		Lifecycle: entity.Lifecycle{
			Active:    data.Situacao,
			Motivo:    data.Motivo,
			UpdatedAt: data.UpdatedAt,
		},
		Person: toPersonDomain(data.Pessoa),
	}

	for _, addressM := range data.Enderecos {
		np.Addresses = append(np.Addresses, toAddressDomain(addressM))
	}
	for _, contactM := range data.Contatos {
		np.Contacts = append(np.Contacts, toContactDomain(contactM))
	}
	for _, recordM := range data.Registros {
		np.Extras = append(np.Extras, toExtraRecordDomain(recordM))
	}
	if len(data.Usuarios) > 0 {
		np.UserAccount = toUserAccountDomain(data.Usuarios[0])
	}

	return np
}

// fromNaturalPersonDomain converts a domain NaturalPerson entity to a GORM NaturalPersonModel.
func fromNaturalPersonDomain(data *entity.NaturalPerson) *model.NaturalPersonModel {
	if data == nil {
		return nil
	}

	return &model.NaturalPersonModel{
		ID:             data.ID,
		PessoaID:       data.PersonID,
		CPF:            data.CPF,
		Nome:           data.Name,
		GeneroID:       data.GenderID,
		EstadoCivilID:  data.MaritalStatusID,
		DataNascimento: data.BirthDate,
		DataDocumento:  data.DocumentDate,
		Situacao:       data.Active,
		Motivo:         data.Motivo,
		UpdatedAt:      data.UpdatedAt,
	}
}
