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

// personRepository implements the repository.PersonRepository interface.
type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository is the constructor for personRepository.
func NewPersonRepository(db *gorm.DB) repository.PersonRepository {
	return &personRepository{
		db: db,
	}
}

// Create persists a new root person row.
func (repo *personRepository) Create(ctx context.Context, person *entity.Person) error {
	personM := fromPersonDomain(person)

	if err := repo.db.WithContext(ctx).Create(personM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required person information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create person")
	}

	// Update the entity with generated values
	person.ID = personM.ID
	person.UpdatedAt = personM.UpdatedAt

	return nil
}

// FindByID retrieves a person by its unique id.
func (repo *personRepository) FindByID(ctx context.Context, id int64) (*entity.Person, error) {
	var personM model.PersonModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&personM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPersonNotFound
		}

		return nil, errors.Wrap(err, "failed to find person by ID")
	}

	return toPersonDomain(&personM), nil
}

// UpdateCode back-fills the external code once the numeric id is known.
func (repo *personRepository) UpdateCode(ctx context.Context, id int64, code string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PersonModel{}).
		Where("id = ?", id).
		Update("codigo", code)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update person code")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPersonNotFound
	}

	return nil
}

// UpdateLifecycle writes the lifecycle fields of one person row.
func (repo *personRepository) UpdateLifecycle(ctx context.Context, id int64, lc entity.Lifecycle) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PersonModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"situacao":   lc.Active,
			"motivo":     lc.Motivo,
			"updated_at": lc.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update person lifecycle")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPersonNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPersonDomain converts a GORM PersonModel to a domain Person entity.
func toPersonDomain(data *model.PersonModel) *entity.Person {
	if data == nil {
		return nil
	}

	return &entity.Person{
		ID:     data.ID,
		Kind:   entity.PersonKind(data.Tipo),
		Origin: data.Origem,
		Code:   data.Codigo,
		Lifecycle: entity.Lifecycle{
			Active:    data.Situacao,
			Motivo:    data.Motivo,
			UpdatedAt: data.UpdatedAt,
		},
	}
}

// fromPersonDomain converts a domain Person entity to a GORM PersonModel.
func fromPersonDomain(data *entity.Person) *model.PersonModel {
	if data == nil {
		return nil
	}

	return &model.PersonModel{
		ID:        data.ID,
		Tipo:      string(data.Kind),
		Origem:    data.Origin,
		Codigo:    data.Code,
		Situacao:  data.Active,
		Motivo:    data.Motivo,
		UpdatedAt: data.UpdatedAt,
	}
}
