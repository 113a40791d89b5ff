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

// userAccountRepository implements the repository.UserAccountRepository interface.
type userAccountRepository struct {
	db *gorm.DB
}

// NewUserAccountRepository is the constructor for userAccountRepository.
func NewUserAccountRepository(db *gorm.DB) repository.UserAccountRepository {
	return &userAccountRepository{
		db: db,
	}
}

// Create persists a new user account.
func (repo *userAccountRepository) Create(ctx context.Context, account *entity.UserAccount) error {
	accountM := fromUserAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrLoginConflict
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferenceNotFound.WrapMessage("invalid reference on user account")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user account")
	}

	account.ID = accountM.ID
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// FindActiveByLogin retrieves the active account holding the login.
func (repo *userAccountRepository) FindActiveByLogin(ctx context.Context, login string, excludeID int64) (*entity.UserAccount, error) {
	var accountM model.UserAccountModel

	query := repo.db.WithContext(ctx).
		Where("login = ? AND situacao = ?", login, true)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	if err := query.First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find user account by login")
	}

	return toUserAccountDomain(&accountM), nil
}

// DeactivateByNaturalPerson applies lc to every active account of the natural
// person.
func (repo *userAccountRepository) DeactivateByNaturalPerson(ctx context.Context, naturalPersonID int64, lc entity.Lifecycle) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserAccountModel{}).
		Where("pessoa_fisica_id = ? AND situacao = ?", naturalPersonID, true).
		Updates(map[string]any{
			"situacao":   lc.Active,
			"motivo":     lc.Motivo,
			"updated_at": lc.UpdatedAt,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate user accounts")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toUserAccountDomain converts a GORM UserAccountModel to a domain UserAccount entity.
func toUserAccountDomain(data *model.UserAccountModel) *entity.UserAccount {
	if data == nil {
		return nil
	}

	return &entity.UserAccount{
		ID:              data.ID,
		NaturalPersonID: data.PessoaFisicaID,
		Login:           data.Login,
		Email:           data.Email,
		PasswordHash:    data.SenhaHash,
		FirstAccess:     data.PrimeiroAcesso,
		Lifecycle: entity.Lifecycle{
			Active:    data.Situacao,
			Motivo:    data.Motivo,
			UpdatedAt: data.UpdatedAt,
		},
	}
}

// fromUserAccountDomain converts a domain UserAccount entity to a GORM UserAccountModel.
func fromUserAccountDomain(data *entity.UserAccount) *model.UserAccountModel {
	if data == nil {
		return nil
	}

	return &model.UserAccountModel{
		ID:             data.ID,
		PessoaFisicaID: data.NaturalPersonID,
		Login:          data.Login,
		Email:          data.Email,
		SenhaHash:      data.PasswordHash,
		PrimeiroAcesso: data.FirstAccess,
		Situacao:       data.Active,
		Motivo:         data.Motivo,
		UpdatedAt:      data.UpdatedAt,
	}
}
