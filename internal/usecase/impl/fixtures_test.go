package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"registro/config"
	"registro/internal/domain/entity"
	"registro/internal/usecase"
)

// Seeded reference ids shared by the service tests.
const (
	seedBasePersonID    int64 = 1
	seedBaseCompanyID   int64 = 2
	seedCompanyTypeID   int64 = 3
	seedGenderID        int64 = 4
	seedMaritalStatusID int64 = 5
	seedAddressTypeID   int64 = 6
	seedContactTypeID   int64 = 7
	seedSystemID        int64 = 8
	seedProfileID       int64 = 9
	seedCategoryID      int64 = 10
)

// fakeHasher keeps test hashes readable and cheap.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hash:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return "hash:"+password == hash
}

type registryFixtures struct {
	store      *fakeStore
	notary     usecase.NotaryUsecase
	supplier   usecase.SupplierUsecase
	person     usecase.PersonUsecase
	profile    usecase.ProfileUsecase
	permission usecase.PermissionUsecase
}

func createTestRegistry(t *testing.T) *registryFixtures {
	t.Helper()

	store := newFakeStore()
	seedReferenceData(store)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	txManager := &fakeTxManager{store: store}
	entityRepo := &fakeLegalEntityRepo{store: store}
	naturalPersonRepo := &fakeNaturalPersonRepo{store: store}
	profileRepo := &fakeProfileRepo{store: store}
	hasher := fakeHasher{}

	cfg := &config.Config{
		Registry: &config.RegistryConfig{
			BaseCompanyID:   seedBaseCompanyID,
			DefaultSystemID: seedSystemID,
		},
	}

	return &registryFixtures{
		store:    store,
		notary:   NewNotaryService(txManager, entityRepo, profileRepo, hasher, cfg, logger),
		supplier: NewSupplierService(txManager, entityRepo, profileRepo, hasher, cfg, logger),
		person:   NewPersonService(txManager, naturalPersonRepo, hasher, logger),
		profile:  NewProfileService(txManager, logger),
		permission: NewPermissionService(
			profileRepo,
			&fakePermissionRepo{store: store},
			&fakeModuleRepo{store: store},
			&fakeSystemGrantRepo{store: store},
			logger,
		),
	}
}

// seedReferenceData fills the lookup tables and the base company every
// registration hangs off.
func seedReferenceData(store *fakeStore) {
	now := time.Now().UTC()
	active := entity.NewActiveLifecycle(now)

	store.persons[seedBasePersonID] = &entity.Person{
		ID:        seedBasePersonID,
		Kind:      entity.PersonKindLegal,
		Code:      "1",
		Lifecycle: active,
	}
	store.legalEntities[seedBaseCompanyID] = &entity.LegalEntity{
		ID:            seedBaseCompanyID,
		PersonID:      seedBasePersonID,
		CNPJ:          "11222333000181",
		TradeName:     "Registradora Central",
		LegalName:     "Registradora Central LTDA",
		CompanyTypeID: seedCompanyTypeID,
		Lifecycle:     active,
	}

	store.companyTypes[seedCompanyTypeID] = &entity.CompanyType{ID: seedCompanyTypeID, Name: "Cartório", Lifecycle: active}
	store.genders[seedGenderID] = &entity.Gender{ID: seedGenderID, Name: "Feminino", Lifecycle: active}
	store.maritalStatuses[seedMaritalStatusID] = &entity.MaritalStatus{ID: seedMaritalStatusID, Name: "Casado(a)", Lifecycle: active}
	store.addressTypes[seedAddressTypeID] = &entity.AddressType{ID: seedAddressTypeID, Name: "Comercial", Lifecycle: active}
	store.contactTypes[seedContactTypeID] = &entity.ContactType{ID: seedContactTypeID, Name: "E-mail", Lifecycle: active}
	store.systems[seedSystemID] = &entity.System{ID: seedSystemID, Name: "Sistema de Registro", Lifecycle: active}
	store.profiles[seedProfileID] = &entity.Profile{ID: seedProfileID, Global: true, Name: "Oficial", Lifecycle: active}
	store.categories[seedCategoryID] = &entity.Category{ID: seedCategoryID, Global: true, Description: "Serviços Notariais", Lifecycle: active}
}

// notaryPayload builds a full registration payload with a responsible party
// and one row of each nested collection.
func notaryPayload(cnpj string) *usecase.CreateLegalEntityInput {
	return &usecase.CreateLegalEntityInput{
		CNPJ:          cnpj,
		TradeName:     "Cartório do 1º Ofício",
		LegalName:     "Cartório do Primeiro Ofício de Notas",
		CompanyTypeID: seedCompanyTypeID,
		Origin:        "portal",
		Responsible: &usecase.ResponsibleInput{
			CPF:             "529.982.247-25",
			Name:            "Maria das Dores",
			GenderID:        seedGenderID,
			MaritalStatusID: seedMaritalStatusID,
			ProfileID:       seedProfileID,
			Email:           "maria@cartorio.com.br",
			Contacts: []usecase.ContactInput{
				{TypeID: seedContactTypeID, Value: "maria@cartorio.com.br"},
			},
		},
		Addresses: []usecase.AddressInput{
			{TypeID: seedAddressTypeID, Street: "Rua XV de Novembro", Number: "100", City: "Curitiba", State: "PR", ZipCode: "80020-310"},
		},
		Contacts: []usecase.ContactInput{
			{TypeID: seedContactTypeID, Value: "contato@cartorio.com.br"},
		},
		Extras: []usecase.ExtraRecordInput{
			{Name: "CNS", Value: "06.870-1"},
		},
	}
}
