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

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// Create persists a new profile and back-fills its generated id.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDescriptionConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.ID = profileM.ID
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindActiveByID retrieves an active profile by id.
func (repo *profileRepository) FindActiveByID(ctx context.Context, id int64) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND situacao = ?", id, true).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by ID")
	}

	return toProfileDomain(&profileM), nil
}

// FindActiveByName retrieves the active profile with the given name inside one
// company scope, comparing case-insensitively. A nil legalEntityID targets the
// global scope.
func (repo *profileRepository) FindActiveByName(ctx context.Context, name string, legalEntityID *int64) (*entity.Profile, error) {
	query := repo.db.WithContext(ctx).
		Where("LOWER(nome) = LOWER(?) AND situacao = ?", name, true)

	if legalEntityID == nil {
		query = query.Where("pessoa_juridica_id IS NULL")
	} else {
		query = query.Where("pessoa_juridica_id = ?", *legalEntityID)
	}

	var profileM model.ProfileModel
	if err := query.First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by name")
	}

	return toProfileDomain(&profileM), nil
}

// permissionRepository implements the repository.PermissionRepository interface.
type permissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository is the constructor for permissionRepository.
func NewPermissionRepository(db *gorm.DB) repository.PermissionRepository {
	return &permissionRepository{
		db: db,
	}
}

// Create persists a new permission row and back-fills its generated id.
func (repo *permissionRepository) Create(ctx context.Context, permission *entity.Permission) error {
	permissionM := fromPermissionDomain(permission)

	if err := repo.db.WithContext(ctx).Create(permissionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferenceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create permission")
	}

	permission.ID = permissionM.ID
	permission.UpdatedAt = permissionM.UpdatedAt

	return nil
}

// FindActiveByProfileAndModule retrieves the active permission row a profile
// holds on a module.
func (repo *permissionRepository) FindActiveByProfileAndModule(ctx context.Context, profileID, moduleID int64) (*entity.Permission, error) {
	var permissionM model.PermissionModel

	if err := repo.db.WithContext(ctx).
		Where("perfil_id = ? AND modulo_id = ? AND situacao = ?", profileID, moduleID, true).
		First(&permissionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPermissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find permission by profile and module")
	}

	return toPermissionDomain(&permissionM), nil
}

// moduleRepository implements the repository.ModuleRepository interface.
type moduleRepository struct {
	db *gorm.DB
}

// NewModuleRepository is the constructor for moduleRepository.
func NewModuleRepository(db *gorm.DB) repository.ModuleRepository {
	return &moduleRepository{
		db: db,
	}
}

// FindActiveByID retrieves an active, visible module by id.
func (repo *moduleRepository) FindActiveByID(ctx context.Context, id int64) (*entity.Module, error) {
	var moduleM model.ModuleModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND situacao = ? AND visivel = ?", id, true, true).
		First(&moduleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrModuleNotFound
		}

		return nil, errors.Wrap(err, "failed to find module by ID")
	}

	return toModuleDomain(&moduleM), nil
}

// FindActiveTopLevel lists the system's active, visible root modules ordered
// by (index, id).
func (repo *moduleRepository) FindActiveTopLevel(ctx context.Context, systemID int64) ([]*entity.Module, error) {
	var moduleModels []*model.ModuleModel

	if err := repo.db.WithContext(ctx).
		Where("sistema_id = ? AND pai_id IS NULL AND situacao = ? AND visivel = ?", systemID, true, true).
		Order("indice, id").
		Find(&moduleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find top-level modules")
	}

	modules := make([]*entity.Module, 0, len(moduleModels))
	for _, moduleM := range moduleModels {
		modules = append(modules, toModuleDomain(moduleM))
	}

	return modules, nil
}

// FindActiveChildren lists the active, visible children of a module ordered
// by (index, id).
func (repo *moduleRepository) FindActiveChildren(ctx context.Context, parentID int64) ([]*entity.Module, error) {
	var moduleModels []*model.ModuleModel

	if err := repo.db.WithContext(ctx).
		Where("pai_id = ? AND situacao = ? AND visivel = ?", parentID, true, true).
		Order("indice, id").
		Find(&moduleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find child modules")
	}

	modules := make([]*entity.Module, 0, len(moduleModels))
	for _, moduleM := range moduleModels {
		modules = append(modules, toModuleDomain(moduleM))
	}

	return modules, nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:            data.ID,
		LegalEntityID: data.PessoaJuridicaID,
		Global:        data.Global,
		Name:          data.Nome,
		Lifecycle: entity.Lifecycle{
			Active:    data.Situacao,
			Motivo:    data.Motivo,
			UpdatedAt: data.UpdatedAt,
		},
	}
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
func fromProfileDomain(profile *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		ID:               profile.ID,
		PessoaJuridicaID: profile.LegalEntityID,
		Global:           profile.Global,
		Nome:             profile.Name,
		Situacao:         profile.Active,
		Motivo:           profile.Motivo,
	}
}

// fromPermissionDomain converts a domain Permission entity to a GORM PermissionModel.
func fromPermissionDomain(permission *entity.Permission) *model.PermissionModel {
	return &model.PermissionModel{
		ID:        permission.ID,
		PerfilID:  permission.ProfileID,
		ModuloID:  permission.ModuleID,
		Inserir:   permission.Actions.Insert,
		Alterar:   permission.Actions.Update,
		Consultar: permission.Actions.Search,
		Excluir:   permission.Actions.Delete,
		Imprimir:  permission.Actions.Print,
		Situacao:  permission.Active,
		Motivo:    permission.Motivo,
	}
}

// toPermissionDomain converts a GORM PermissionModel to a domain Permission entity.
func toPermissionDomain(data *model.PermissionModel) *entity.Permission {
	if data == nil {
		return nil
	}

	return &entity.Permission{
		ID:        data.ID,
		ProfileID: data.PerfilID,
		ModuleID:  data.ModuloID,
		Actions: entity.ActionSet{
			Insert: data.Inserir,
			Update: data.Alterar,
			Search: data.Consultar,
			Delete: data.Excluir,
			Print:  data.Imprimir,
		},
		Lifecycle: entity.Lifecycle{
			Active:    data.Situacao,
			Motivo:    data.Motivo,
			UpdatedAt: data.UpdatedAt,
		},
	}
}

// toModuleDomain converts a GORM ModuleModel to a domain Module entity.
func toModuleDomain(data *model.ModuleModel) *entity.Module {
	if data == nil {
		return nil
	}

	return &entity.Module{
		ID:       data.ID,
		SystemID: data.SistemaID,
		ParentID: data.PaiID,
		Name:     data.Nome,
		Index:    data.Indice,
		Visible:  data.Visivel,
		Lifecycle: entity.Lifecycle{
			Active:    data.Situacao,
			Motivo:    data.Motivo,
			UpdatedAt: data.UpdatedAt,
		},
	}
}
