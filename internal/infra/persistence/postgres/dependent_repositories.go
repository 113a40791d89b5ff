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

// The three dependent-record repositories share their shape: rows hang off a
// person and are deactivated in bulk by cascades. Active collections are read
// through the aggregate loaders. The bulk deactivations never touch global
// rows.

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		db: db,
	}
}

// Create persists a new address for a person.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferenceNotFound.WrapMessage("invalid reference on address")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// DeactivateActiveByPerson applies lc to every active, non-global address of
// the person.
func (repo *addressRepository) DeactivateActiveByPerson(ctx context.Context, personID int64, lc entity.Lifecycle) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("pessoa_id = ? AND situacao = ? AND global = ?", personID, true, false).
		Updates(map[string]any{
			"situacao":   lc.Active,
			"motivo":     lc.Motivo,
			"updated_at": lc.UpdatedAt,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate addresses by person")
	}

	return result.RowsAffected, nil
}

// contactRepository implements the repository.ContactRepository interface.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{
		db: db,
	}
}

// Create persists a new contact for a person.
func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)

	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferenceNotFound.WrapMessage("invalid reference on contact")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required contact information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact")
	}

	contact.ID = contactM.ID
	contact.UpdatedAt = contactM.UpdatedAt

	return nil
}

// DeactivateActiveByPerson applies lc to every active, non-global contact of
// the person.
func (repo *contactRepository) DeactivateActiveByPerson(ctx context.Context, personID int64, lc entity.Lifecycle) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("pessoa_id = ? AND situacao = ? AND global = ?", personID, true, false).
		Updates(map[string]any{
			"situacao":   lc.Active,
			"motivo":     lc.Motivo,
			"updated_at": lc.UpdatedAt,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate contacts by person")
	}

	return result.RowsAffected, nil
}

// extraRecordRepository implements the repository.ExtraRecordRepository interface.
type extraRecordRepository struct {
	db *gorm.DB
}

// NewExtraRecordRepository is the constructor for extraRecordRepository.
func NewExtraRecordRepository(db *gorm.DB) repository.ExtraRecordRepository {
	return &extraRecordRepository{
		db: db,
	}
}

// Create persists a new complementary record for a person.
func (repo *extraRecordRepository) Create(ctx context.Context, record *entity.ExtraRecord) error {
	recordM := fromExtraRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferenceNotFound.WrapMessage("invalid reference on complementary record")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required complementary record information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create complementary record")
	}

	record.ID = recordM.ID
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// DeactivateActiveByPerson applies lc to every active, non-global
// complementary record of the person.
func (repo *extraRecordRepository) DeactivateActiveByPerson(ctx context.Context, personID int64, lc entity.Lifecycle) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ExtraRecordModel{}).
		Where("pessoa_id = ? AND situacao = ? AND global = ?", personID, true, false).
		Updates(map[string]any{
			"situacao":   lc.Active,
			"motivo":     lc.Motivo,
			"updated_at": lc.UpdatedAt,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate complementary records by person")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:       data.ID,
		PersonID: data.PessoaID,
		TypeID:   data.TipoID,
		Global:   data.Global,
		Street:   data.Rua,
		Number:   data.Numero,
		District: data.Bairro,
		City:     data.Cidade,
		State:    data.UF,
		ZipCode:  data.CEP,
		Lifecycle: entity.Lifecycle{
			Active:    data.Situacao,
			Motivo:    data.Motivo,
			UpdatedAt: data.UpdatedAt,
		},
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:        data.ID,
		PessoaID:  data.PersonID,
		TipoID:    data.TypeID,
		Global:    data.Global,
		Rua:       data.Street,
		Numero:    data.Number,
		Bairro:    data.District,
		Cidade:    data.City,
		UF:        data.State,
		CEP:       data.ZipCode,
		Situacao:  data.Active,
		Motivo:    data.Motivo,
		UpdatedAt: data.UpdatedAt,
	}
}

// toContactDomain converts a GORM ContactModel to a domain Contact entity.
func toContactDomain(data *model.ContactModel) *entity.Contact {
	if data == nil {
		return nil
	}

	return &entity.Contact{
		ID:       data.ID,
		PersonID: data.PessoaID,
		TypeID:   data.TipoID,
		Global:   data.Global,
		Value:    data.Valor,
		Note:     data.Observacao,
		Lifecycle: entity.Lifecycle{
			Active:    data.Situacao,
			Motivo:    data.Motivo,
			UpdatedAt: data.UpdatedAt,
		},
	}
}

// fromContactDomain converts a domain Contact entity to a GORM ContactModel.
func fromContactDomain(data *entity.Contact) *model.ContactModel {
	if data == nil {
		return nil
	}

	return &model.ContactModel{
		ID:         data.ID,
		PessoaID:   data.PersonID,
		TipoID:     data.TypeID,
		Global:     data.Global,
		Valor:      data.Value,
		Observacao: data.Note,
		Situacao:   data.Active,
		Motivo:     data.Motivo,
		UpdatedAt:  data.UpdatedAt,
	}
}

// toExtraRecordDomain converts a GORM ExtraRecordModel to a domain ExtraRecord entity.
func toExtraRecordDomain(data *model.ExtraRecordModel) *entity.ExtraRecord {
	if data == nil {
		return nil
	}

	return &entity.ExtraRecord{
		ID:       data.ID,
		PersonID: data.PessoaID,
		Global:   data.Global,
		Name:     data.Nome,
		Value:    data.Valor,
		Lifecycle: entity.Lifecycle{
			Active:    data.Situacao,
			Motivo:    data.Motivo,
			UpdatedAt: data.UpdatedAt,
		},
	}
}

// fromExtraRecordDomain converts a domain ExtraRecord entity to a GORM ExtraRecordModel.
func fromExtraRecordDomain(data *entity.ExtraRecord) *model.ExtraRecordModel {
	if data == nil {
		return nil
	}

	return &model.ExtraRecordModel{
		ID:        data.ID,
		PessoaID:  data.PersonID,
		Global:    data.Global,
		Nome:      data.Name,
		Valor:     data.Value,
		Situacao:  data.Active,
		Motivo:    data.Motivo,
		UpdatedAt: data.UpdatedAt,
	}
}
