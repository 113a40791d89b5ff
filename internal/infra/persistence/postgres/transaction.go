// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"registro/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

func (f *gormRepositoryFactory) PersonRepo() repository.PersonRepository {
	return NewPersonRepository(f.tx)
}

func (f *gormRepositoryFactory) LegalEntityRepo() repository.LegalEntityRepository {
	return NewLegalEntityRepository(f.tx)
}

func (f *gormRepositoryFactory) NaturalPersonRepo() repository.NaturalPersonRepository {
	return NewNaturalPersonRepository(f.tx)
}

func (f *gormRepositoryFactory) AddressRepo() repository.AddressRepository {
	return NewAddressRepository(f.tx)
}

func (f *gormRepositoryFactory) ContactRepo() repository.ContactRepository {
	return NewContactRepository(f.tx)
}

func (f *gormRepositoryFactory) ExtraRecordRepo() repository.ExtraRecordRepository {
	return NewExtraRecordRepository(f.tx)
}

func (f *gormRepositoryFactory) ResponsibleLinkRepo() repository.ResponsibleLinkRepository {
	return NewResponsibleLinkRepository(f.tx)
}

func (f *gormRepositoryFactory) CompanyLinkRepo() repository.CompanyLinkRepository {
	return NewCompanyLinkRepository(f.tx)
}

func (f *gormRepositoryFactory) SystemGrantRepo() repository.SystemGrantRepository {
	return NewSystemGrantRepository(f.tx)
}

func (f *gormRepositoryFactory) UserAccountRepo() repository.UserAccountRepository {
	return NewUserAccountRepository(f.tx)
}

func (f *gormRepositoryFactory) ReferenceRepo() repository.ReferenceRepository {
	return NewReferenceRepository(f.tx)
}

func (f *gormRepositoryFactory) ProfileRepo() repository.ProfileRepository {
	return NewProfileRepository(f.tx)
}

func (f *gormRepositoryFactory) PermissionRepo() repository.PermissionRepository {
	return NewPermissionRepository(f.tx)
}

func (f *gormRepositoryFactory) ModuleRepo() repository.ModuleRepository {
	return NewModuleRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// This defer block ensures that if a panic occurs within the callback function,
	// the transaction is always rolled back.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			// Re-panic to allow Fx or other middleware to handle the panic.
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx}

	err := fn(factory)
	if err != nil {
		// If the business logic returns an error, roll back the transaction.
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
