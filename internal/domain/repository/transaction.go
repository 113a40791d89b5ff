package repository

import "context"

// TransactionManager is the unit-of-work boundary for every multi-step
// write: graph creation, replace-by-situacao updates and the cascading
// deactivation all run inside exactly one Execute call. It keeps the use
// case layer free of any specific DB driver and lets the same orchestration
// logic run against an in-memory fake in tests.
type TransactionManager interface {
	// Execute runs fn within one database transaction. If fn returns an
	// error the transaction is rolled back, otherwise committed. Every
	// repository obtained from the factory is bound to that transaction.
	Execute(ctx context.Context, fn func(repos RepositoryFactory) error) error
}

// RepositoryFactory hands out repository instances bound to the current
// transaction, so all operations inside one Execute share one connection.
type RepositoryFactory interface {
	PersonRepo() PersonRepository
	LegalEntityRepo() LegalEntityRepository
	NaturalPersonRepo() NaturalPersonRepository
	AddressRepo() AddressRepository
	ContactRepo() ContactRepository
	ExtraRecordRepo() ExtraRecordRepository
	ResponsibleLinkRepo() ResponsibleLinkRepository
	CompanyLinkRepo() CompanyLinkRepository
	SystemGrantRepo() SystemGrantRepository
	UserAccountRepo() UserAccountRepository
	ReferenceRepo() ReferenceRepository
	ProfileRepo() ProfileRepository
	PermissionRepo() PermissionRepository
	ModuleRepo() ModuleRepository
}
