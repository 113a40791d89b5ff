package impl

// In-memory fakes backing the service tests. The fake transaction manager
// snapshots the whole store before running the callback and restores it on
// error, so rollback behavior is observable without a database.

import (
	"context"
	"sort"
	"strings"

	"registro/internal/domain/entity"
	domainerrors "registro/internal/domain/errors"
	"registro/internal/domain/repository"
)

type fakeStore struct {
	nextID int64

	persons        map[int64]*entity.Person
	legalEntities  map[int64]*entity.LegalEntity
	naturalPersons map[int64]*entity.NaturalPerson
	addresses      map[int64]*entity.Address
	contacts       map[int64]*entity.Contact
	extras         map[int64]*entity.ExtraRecord
	respLinks      map[int64]*entity.ResponsibleLink
	companyLinks   map[int64]*entity.CompanyLink
	grants         map[int64]*entity.SystemGrant
	accounts       map[int64]*entity.UserAccount

	companyTypes    map[int64]*entity.CompanyType
	categories      map[int64]*entity.Category
	genders         map[int64]*entity.Gender
	maritalStatuses map[int64]*entity.MaritalStatus
	addressTypes    map[int64]*entity.AddressType
	contactTypes    map[int64]*entity.ContactType
	systems         map[int64]*entity.System
	profiles        map[int64]*entity.Profile
	permissions     map[int64]*entity.Permission
	modules         map[int64]*entity.Module
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextID:          1000,
		persons:         map[int64]*entity.Person{},
		legalEntities:   map[int64]*entity.LegalEntity{},
		naturalPersons:  map[int64]*entity.NaturalPerson{},
		addresses:       map[int64]*entity.Address{},
		contacts:        map[int64]*entity.Contact{},
		extras:          map[int64]*entity.ExtraRecord{},
		respLinks:       map[int64]*entity.ResponsibleLink{},
		companyLinks:    map[int64]*entity.CompanyLink{},
		grants:          map[int64]*entity.SystemGrant{},
		accounts:        map[int64]*entity.UserAccount{},
		companyTypes:    map[int64]*entity.CompanyType{},
		categories:      map[int64]*entity.Category{},
		genders:         map[int64]*entity.Gender{},
		maritalStatuses: map[int64]*entity.MaritalStatus{},
		addressTypes:    map[int64]*entity.AddressType{},
		contactTypes:    map[int64]*entity.ContactType{},
		systems:         map[int64]*entity.System{},
		profiles:        map[int64]*entity.Profile{},
		permissions:     map[int64]*entity.Permission{},
		modules:         map[int64]*entity.Module{},
	}
}

func (s *fakeStore) id() int64 {
	s.nextID++

	return s.nextID
}

func cloneMap[V any](m map[int64]*V) map[int64]*V {
	out := make(map[int64]*V, len(m))
	for k, v := range m {
		c := *v
		out[k] = &c
	}

	return out
}

type storeSnapshot struct {
	nextID int64

	persons        map[int64]*entity.Person
	legalEntities  map[int64]*entity.LegalEntity
	naturalPersons map[int64]*entity.NaturalPerson
	addresses      map[int64]*entity.Address
	contacts       map[int64]*entity.Contact
	extras         map[int64]*entity.ExtraRecord
	respLinks      map[int64]*entity.ResponsibleLink
	companyLinks   map[int64]*entity.CompanyLink
	grants         map[int64]*entity.SystemGrant
	accounts       map[int64]*entity.UserAccount
	profiles       map[int64]*entity.Profile
	permissions    map[int64]*entity.Permission
}

func (s *fakeStore) snapshot() *storeSnapshot {
	return &storeSnapshot{
		nextID:         s.nextID,
		persons:        cloneMap(s.persons),
		legalEntities:  cloneMap(s.legalEntities),
		naturalPersons: cloneMap(s.naturalPersons),
		addresses:      cloneMap(s.addresses),
		contacts:       cloneMap(s.contacts),
		extras:         cloneMap(s.extras),
		respLinks:      cloneMap(s.respLinks),
		companyLinks:   cloneMap(s.companyLinks),
		grants:         cloneMap(s.grants),
		accounts:       cloneMap(s.accounts),
		profiles:       cloneMap(s.profiles),
		permissions:    cloneMap(s.permissions),
	}
}

func (s *fakeStore) restore(snap *storeSnapshot) {
	s.nextID = snap.nextID
	s.persons = snap.persons
	s.legalEntities = snap.legalEntities
	s.naturalPersons = snap.naturalPersons
	s.addresses = snap.addresses
	s.contacts = snap.contacts
	s.extras = snap.extras
	s.respLinks = snap.respLinks
	s.companyLinks = snap.companyLinks
	s.grants = snap.grants
	s.accounts = snap.accounts
	s.profiles = snap.profiles
	s.permissions = snap.permissions
}

// --- Transaction manager ---

type fakeTxManager struct {
	store *fakeStore
}

func (tm *fakeTxManager) Execute(_ context.Context, fn func(repos repository.RepositoryFactory) error) error {
	snap := tm.store.snapshot()
	if err := fn(&fakeRepoFactory{store: tm.store}); err != nil {
		tm.store.restore(snap)

		return err
	}

	return nil
}

type fakeRepoFactory struct {
	store *fakeStore
}

func (f *fakeRepoFactory) PersonRepo() repository.PersonRepository {
	return &fakePersonRepo{store: f.store}
}

func (f *fakeRepoFactory) LegalEntityRepo() repository.LegalEntityRepository {
	return &fakeLegalEntityRepo{store: f.store}
}

func (f *fakeRepoFactory) NaturalPersonRepo() repository.NaturalPersonRepository {
	return &fakeNaturalPersonRepo{store: f.store}
}

func (f *fakeRepoFactory) AddressRepo() repository.AddressRepository {
	return &fakeAddressRepo{store: f.store}
}

func (f *fakeRepoFactory) ContactRepo() repository.ContactRepository {
	return &fakeContactRepo{store: f.store}
}

func (f *fakeRepoFactory) ExtraRecordRepo() repository.ExtraRecordRepository {
	return &fakeExtraRecordRepo{store: f.store}
}

func (f *fakeRepoFactory) ResponsibleLinkRepo() repository.ResponsibleLinkRepository {
	return &fakeResponsibleLinkRepo{store: f.store}
}

func (f *fakeRepoFactory) CompanyLinkRepo() repository.CompanyLinkRepository {
	return &fakeCompanyLinkRepo{store: f.store}
}

func (f *fakeRepoFactory) SystemGrantRepo() repository.SystemGrantRepository {
	return &fakeSystemGrantRepo{store: f.store}
}

func (f *fakeRepoFactory) UserAccountRepo() repository.UserAccountRepository {
	return &fakeUserAccountRepo{store: f.store}
}

func (f *fakeRepoFactory) ReferenceRepo() repository.ReferenceRepository {
	return &fakeReferenceRepo{store: f.store}
}

func (f *fakeRepoFactory) ProfileRepo() repository.ProfileRepository {
	return &fakeProfileRepo{store: f.store}
}

func (f *fakeRepoFactory) PermissionRepo() repository.PermissionRepository {
	return &fakePermissionRepo{store: f.store}
}

func (f *fakeRepoFactory) ModuleRepo() repository.ModuleRepository {
	return &fakeModuleRepo{store: f.store}
}

// --- Person ---

type fakePersonRepo struct {
	store *fakeStore
}

func (r *fakePersonRepo) Create(_ context.Context, person *entity.Person) error {
	person.ID = r.store.id()
	stored := *person
	r.store.persons[person.ID] = &stored

	return nil
}

func (r *fakePersonRepo) FindByID(_ context.Context, id int64) (*entity.Person, error) {
	stored, ok := r.store.persons[id]
	if !ok {
		return nil, repository.ErrPersonNotFound
	}
	copied := *stored

	return &copied, nil
}

func (r *fakePersonRepo) UpdateCode(_ context.Context, id int64, code string) error {
	stored, ok := r.store.persons[id]
	if !ok {
		return repository.ErrPersonNotFound
	}
	stored.Code = code

	return nil
}

func (r *fakePersonRepo) UpdateLifecycle(_ context.Context, id int64, lc entity.Lifecycle) error {
	stored, ok := r.store.persons[id]
	if !ok {
		return repository.ErrPersonNotFound
	}
	stored.Lifecycle = lc

	return nil
}

// --- Legal entity ---

type fakeLegalEntityRepo struct {
	store *fakeStore
}

func (r *fakeLegalEntityRepo) Create(_ context.Context, le *entity.LegalEntity) error {
	le.ID = r.store.id()
	stored := *le
	stored.Person = nil
	stored.Responsible = nil
	stored.Addresses = nil
	stored.Contacts = nil
	stored.Extras = nil
	r.store.legalEntities[le.ID] = &stored

	return nil
}

func (r *fakeLegalEntityRepo) FindByID(ctx context.Context, id int64) (*entity.LegalEntity, error) {
	stored, ok := r.store.legalEntities[id]
	if !ok {
		return nil, repository.ErrLegalEntityNotFound
	}

	le := *stored
	if person, ok := r.store.persons[le.PersonID]; ok {
		copied := *person
		le.Person = &copied
	}
	if le.ResponsibleID != nil {
		if np, ok := r.store.naturalPersons[*le.ResponsibleID]; ok {
			copied := *np
			le.Responsible = &copied
		}
	}
	le.Addresses = r.store.activeAddresses(le.PersonID)
	le.Contacts = r.store.activeContacts(le.PersonID)
	le.Extras = r.store.activeExtras(le.PersonID)

	linkRepo := &fakeCompanyLinkRepo{store: r.store}
	if link, err := linkRepo.FindActiveByChild(ctx, le.ID); err == nil {
		le.ParentID = &link.ParentID
	}

	return &le, nil
}

func (r *fakeLegalEntityRepo) FindActiveByCNPJ(_ context.Context, cnpj string, excludeID int64) (*entity.LegalEntity, error) {
	for _, le := range r.store.legalEntities {
		if le.IsActive() && le.CNPJ == cnpj && le.ID != excludeID {
			copied := *le

			return &copied, nil
		}
	}

	return nil, repository.ErrLegalEntityNotFound
}

func (r *fakeLegalEntityRepo) Search(_ context.Context, filter repository.LegalEntityFilter) ([]*entity.LegalEntity, error) {
	var results []*entity.LegalEntity

	for _, le := range r.store.legalEntities {
		person := r.store.persons[le.PersonID]

		if filter.CNPJ != "" && le.CNPJ != filter.CNPJ {
			continue
		}
		if filter.Name != "" {
			needle := strings.ToLower(filter.Name)
			if !strings.Contains(strings.ToLower(le.TradeName), needle) &&
				!strings.Contains(strings.ToLower(le.LegalName), needle) {
				continue
			}
		}
		if filter.Code != "" && (person == nil || person.Code != filter.Code) {
			continue
		}
		if filter.CompanyTypeID != nil && le.CompanyTypeID != *filter.CompanyTypeID {
			continue
		}
		if filter.Active != nil && le.IsActive() != *filter.Active {
			continue
		}

		copied := *le
		if person != nil {
			personCopy := *person
			copied.Person = &personCopy
		}
		results = append(results, &copied)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })

	return results, nil
}

func (r *fakeLegalEntityRepo) Update(_ context.Context, le *entity.LegalEntity) error {
	stored, ok := r.store.legalEntities[le.ID]
	if !ok {
		return repository.ErrLegalEntityNotFound
	}
	stored.CNPJ = le.CNPJ
	stored.TradeName = le.TradeName
	stored.LegalName = le.LegalName
	stored.CompanyTypeID = le.CompanyTypeID
	stored.CategoryID = le.CategoryID
	stored.Branch = le.Branch
	stored.UpdatedAt = le.UpdatedAt

	return nil
}

func (r *fakeLegalEntityRepo) SetResponsible(_ context.Context, id, naturalPersonID int64) error {
	stored, ok := r.store.legalEntities[id]
	if !ok {
		return repository.ErrLegalEntityNotFound
	}
	responsibleID := naturalPersonID
	stored.ResponsibleID = &responsibleID

	return nil
}

func (r *fakeLegalEntityRepo) UpdateLifecycle(_ context.Context, id int64, lc entity.Lifecycle) error {
	stored, ok := r.store.legalEntities[id]
	if !ok {
		return repository.ErrLegalEntityNotFound
	}
	stored.Lifecycle = lc

	return nil
}

// --- Natural person ---

type fakeNaturalPersonRepo struct {
	store *fakeStore
}

func (r *fakeNaturalPersonRepo) Create(_ context.Context, np *entity.NaturalPerson) error {
	np.ID = r.store.id()
	stored := *np
	stored.Person = nil
	stored.Addresses = nil
	stored.Contacts = nil
	stored.Extras = nil
	stored.UserAccount = nil
	r.store.naturalPersons[np.ID] = &stored

	return nil
}

func (r *fakeNaturalPersonRepo) FindByID(_ context.Context, id int64) (*entity.NaturalPerson, error) {
	stored, ok := r.store.naturalPersons[id]
	if !ok {
		return nil, repository.ErrNaturalPersonNotFound
	}

	np := *stored
	if person, ok := r.store.persons[np.PersonID]; ok {
		copied := *person
		np.Person = &copied
	}
	np.Addresses = r.store.activeAddresses(np.PersonID)
	np.Contacts = r.store.activeContacts(np.PersonID)
	np.Extras = r.store.activeExtras(np.PersonID)
	for _, account := range r.store.sortedAccounts() {
		if account.NaturalPersonID == np.ID && account.IsActive() {
			copied := *account
			np.UserAccount = &copied

			break
		}
	}

	return &np, nil
}

func (r *fakeNaturalPersonRepo) FindActiveByCPF(_ context.Context, cpf string, excludeID int64) (*entity.NaturalPerson, error) {
	for _, np := range r.store.naturalPersons {
		if np.IsActive() && np.CPF == cpf && np.ID != excludeID {
			copied := *np

			return &copied, nil
		}
	}

	return nil, repository.ErrNaturalPersonNotFound
}

func (r *fakeNaturalPersonRepo) Search(_ context.Context, filter repository.NaturalPersonFilter) ([]*entity.NaturalPerson, error) {
	var results []*entity.NaturalPerson

	for _, np := range r.store.naturalPersons {
		person := r.store.persons[np.PersonID]

		if filter.CPF != "" && np.CPF != filter.CPF {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(np.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Code != "" && (person == nil || person.Code != filter.Code) {
			continue
		}
		if filter.Active != nil && np.IsActive() != *filter.Active {
			continue
		}

		copied := *np
		if person != nil {
			personCopy := *person
			copied.Person = &personCopy
		}
		results = append(results, &copied)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })

	return results, nil
}

func (r *fakeNaturalPersonRepo) Update(_ context.Context, np *entity.NaturalPerson) error {
	stored, ok := r.store.naturalPersons[np.ID]
	if !ok {
		return repository.ErrNaturalPersonNotFound
	}
	stored.CPF = np.CPF
	stored.Name = np.Name
	stored.GenderID = np.GenderID
	stored.MaritalStatusID = np.MaritalStatusID
	stored.BirthDate = np.BirthDate
	stored.DocumentDate = np.DocumentDate
	stored.UpdatedAt = np.UpdatedAt

	return nil
}

func (r *fakeNaturalPersonRepo) UpdateLifecycle(_ context.Context, id int64, lc entity.Lifecycle) error {
	stored, ok := r.store.naturalPersons[id]
	if !ok {
		return repository.ErrNaturalPersonNotFound
	}
	stored.Lifecycle = lc

	return nil
}

// --- Dependents ---

func (s *fakeStore) activeAddresses(personID int64) []*entity.Address {
	var results []*entity.Address
	for _, address := range s.addresses {
		if address.PersonID == personID && address.IsActive() {
			copied := *address
			results = append(results, &copied)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })

	return results
}

func (s *fakeStore) activeContacts(personID int64) []*entity.Contact {
	var results []*entity.Contact
	for _, contact := range s.contacts {
		if contact.PersonID == personID && contact.IsActive() {
			copied := *contact
			results = append(results, &copied)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })

	return results
}

func (s *fakeStore) activeExtras(personID int64) []*entity.ExtraRecord {
	var results []*entity.ExtraRecord
	for _, record := range s.extras {
		if record.PersonID == personID && record.IsActive() {
			copied := *record
			results = append(results, &copied)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })

	return results
}

func (s *fakeStore) sortedAccounts() []*entity.UserAccount {
	accounts := make([]*entity.UserAccount, 0, len(s.accounts))
	for _, account := range s.accounts {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })

	return accounts
}

type fakeAddressRepo struct {
	store *fakeStore
}

func (r *fakeAddressRepo) Create(_ context.Context, address *entity.Address) error {
	address.ID = r.store.id()
	stored := *address
	r.store.addresses[address.ID] = &stored

	return nil
}

func (r *fakeAddressRepo) DeactivateActiveByPerson(_ context.Context, personID int64, lc entity.Lifecycle) (int64, error) {
	var touched int64
	for _, address := range r.store.addresses {
		if address.PersonID == personID && address.IsActive() && !address.Global {
			address.Lifecycle = lc
			touched++
		}
	}

	return touched, nil
}

type fakeContactRepo struct {
	store *fakeStore
}

func (r *fakeContactRepo) Create(_ context.Context, contact *entity.Contact) error {
	contact.ID = r.store.id()
	stored := *contact
	r.store.contacts[contact.ID] = &stored

	return nil
}

func (r *fakeContactRepo) DeactivateActiveByPerson(_ context.Context, personID int64, lc entity.Lifecycle) (int64, error) {
	var touched int64
	for _, contact := range r.store.contacts {
		if contact.PersonID == personID && contact.IsActive() && !contact.Global {
			contact.Lifecycle = lc
			touched++
		}
	}

	return touched, nil
}

type fakeExtraRecordRepo struct {
	store *fakeStore
}

func (r *fakeExtraRecordRepo) Create(_ context.Context, record *entity.ExtraRecord) error {
	record.ID = r.store.id()
	stored := *record
	r.store.extras[record.ID] = &stored

	return nil
}

func (r *fakeExtraRecordRepo) DeactivateActiveByPerson(_ context.Context, personID int64, lc entity.Lifecycle) (int64, error) {
	var touched int64
	for _, record := range r.store.extras {
		if record.PersonID == personID && record.IsActive() && !record.Global {
			record.Lifecycle = lc
			touched++
		}
	}

	return touched, nil
}

// --- Links ---

type fakeResponsibleLinkRepo struct {
	store *fakeStore
}

func (r *fakeResponsibleLinkRepo) Create(_ context.Context, link *entity.ResponsibleLink) error {
	for _, existing := range r.store.respLinks {
		if existing.IsActive() &&
			existing.LegalEntityID == link.LegalEntityID &&
			existing.NaturalPersonID == link.NaturalPersonID {
			return repository.ErrDuplicateLink
		}
	}

	link.ID = r.store.id()
	stored := *link
	r.store.respLinks[link.ID] = &stored

	return nil
}

func (r *fakeResponsibleLinkRepo) FindActiveByLegalEntity(_ context.Context, legalEntityID int64) ([]*entity.ResponsibleLink, error) {
	var results []*entity.ResponsibleLink
	for _, link := range r.store.respLinks {
		if link.IsActive() && link.LegalEntityID == legalEntityID {
			copied := *link
			results = append(results, &copied)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })

	return results, nil
}

func (r *fakeResponsibleLinkRepo) DeactivateByLegalEntity(_ context.Context, legalEntityID int64, lc entity.Lifecycle) (int64, error) {
	var touched int64
	for _, link := range r.store.respLinks {
		if link.IsActive() && link.LegalEntityID == legalEntityID {
			link.Lifecycle = lc
			touched++
		}
	}

	return touched, nil
}

type fakeCompanyLinkRepo struct {
	store *fakeStore
}

func (r *fakeCompanyLinkRepo) Create(_ context.Context, link *entity.CompanyLink) error {
	link.ID = r.store.id()
	stored := *link
	r.store.companyLinks[link.ID] = &stored

	return nil
}

func (r *fakeCompanyLinkRepo) FindActiveByChild(_ context.Context, childID int64) (*entity.CompanyLink, error) {
	for _, link := range r.store.companyLinks {
		if link.IsActive() && link.ChildID == childID {
			copied := *link

			return &copied, nil
		}
	}

	return nil, repository.ErrLinkNotFound
}

func (r *fakeCompanyLinkRepo) DeactivateByCompany(_ context.Context, legalEntityID int64, lc entity.Lifecycle) (int64, error) {
	var touched int64
	for _, link := range r.store.companyLinks {
		if link.IsActive() && (link.ParentID == legalEntityID || link.ChildID == legalEntityID) {
			link.Lifecycle = lc
			touched++
		}
	}

	return touched, nil
}

type fakeSystemGrantRepo struct {
	store *fakeStore
}

func (r *fakeSystemGrantRepo) Create(_ context.Context, grant *entity.SystemGrant) error {
	grant.ID = r.store.id()
	stored := *grant
	r.store.grants[grant.ID] = &stored

	return nil
}

func (r *fakeSystemGrantRepo) HasActiveGrant(_ context.Context, legalEntityID, systemID int64) (bool, error) {
	for _, grant := range r.store.grants {
		if grant.IsActive() && grant.LegalEntityID == legalEntityID && grant.SystemID == systemID {
			return true, nil
		}
	}

	return false, nil
}

func (r *fakeSystemGrantRepo) DeactivateByCompany(_ context.Context, legalEntityID int64, lc entity.Lifecycle) (int64, error) {
	var touched int64
	for _, grant := range r.store.grants {
		if grant.IsActive() && grant.LegalEntityID == legalEntityID {
			grant.Lifecycle = lc
			touched++
		}
	}

	return touched, nil
}

// --- User accounts ---

type fakeUserAccountRepo struct {
	store *fakeStore
}

func (r *fakeUserAccountRepo) Create(_ context.Context, account *entity.UserAccount) error {
	for _, existing := range r.store.accounts {
		if existing.IsActive() && existing.Login == account.Login {
			return domainerrors.ErrLoginConflict
		}
	}

	account.ID = r.store.id()
	stored := *account
	r.store.accounts[account.ID] = &stored

	return nil
}

func (r *fakeUserAccountRepo) FindActiveByLogin(_ context.Context, login string, excludeID int64) (*entity.UserAccount, error) {
	for _, account := range r.store.accounts {
		if account.IsActive() && account.Login == login && account.ID != excludeID {
			copied := *account

			return &copied, nil
		}
	}

	return nil, repository.ErrUserAccountNotFound
}

func (r *fakeUserAccountRepo) DeactivateByNaturalPerson(_ context.Context, naturalPersonID int64, lc entity.Lifecycle) (int64, error) {
	var touched int64
	for _, account := range r.store.accounts {
		if account.IsActive() && account.NaturalPersonID == naturalPersonID {
			account.Lifecycle = lc
			touched++
		}
	}

	return touched, nil
}

// --- References ---

type fakeReferenceRepo struct {
	store *fakeStore
}

func (r *fakeReferenceRepo) FindCompanyType(_ context.Context, id int64) (*entity.CompanyType, error) {
	if ct, ok := r.store.companyTypes[id]; ok && ct.IsActive() {
		copied := *ct

		return &copied, nil
	}

	return nil, repository.ErrReferenceNotFound
}

func (r *fakeReferenceRepo) FindCategory(_ context.Context, id int64) (*entity.Category, error) {
	if category, ok := r.store.categories[id]; ok && category.IsActive() {
		copied := *category

		return &copied, nil
	}

	return nil, repository.ErrReferenceNotFound
}

func (r *fakeReferenceRepo) FindGender(_ context.Context, id int64) (*entity.Gender, error) {
	if gender, ok := r.store.genders[id]; ok && gender.IsActive() {
		copied := *gender

		return &copied, nil
	}

	return nil, repository.ErrReferenceNotFound
}

func (r *fakeReferenceRepo) FindMaritalStatus(_ context.Context, id int64) (*entity.MaritalStatus, error) {
	if ms, ok := r.store.maritalStatuses[id]; ok && ms.IsActive() {
		copied := *ms

		return &copied, nil
	}

	return nil, repository.ErrReferenceNotFound
}

func (r *fakeReferenceRepo) FindAddressType(_ context.Context, id int64) (*entity.AddressType, error) {
	if at, ok := r.store.addressTypes[id]; ok && at.IsActive() {
		copied := *at

		return &copied, nil
	}

	return nil, repository.ErrReferenceNotFound
}

func (r *fakeReferenceRepo) FindContactType(_ context.Context, id int64) (*entity.ContactType, error) {
	if ct, ok := r.store.contactTypes[id]; ok && ct.IsActive() {
		copied := *ct

		return &copied, nil
	}

	return nil, repository.ErrReferenceNotFound
}

func (r *fakeReferenceRepo) FindSystem(_ context.Context, id int64) (*entity.System, error) {
	if system, ok := r.store.systems[id]; ok && system.IsActive() {
		copied := *system

		return &copied, nil
	}

	return nil, repository.ErrReferenceNotFound
}

func (r *fakeReferenceRepo) FindActiveCategoryByDescription(_ context.Context, legalEntityID int64, description string, excludeID int64) (*entity.Category, error) {
	for _, category := range r.store.categories {
		if !category.IsActive() || category.ID == excludeID {
			continue
		}
		if category.LegalEntityID == nil || *category.LegalEntityID != legalEntityID {
			continue
		}
		if strings.EqualFold(category.Description, description) {
			copied := *category

			return &copied, nil
		}
	}

	return nil, repository.ErrReferenceNotFound
}

// --- Profiles, permissions, modules ---

type fakeProfileRepo struct {
	store *fakeStore
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *entity.Profile) error {
	copied := *profile
	copied.ID = r.store.id()
	r.store.profiles[copied.ID] = &copied
	profile.ID = copied.ID

	return nil
}

func (r *fakeProfileRepo) FindActiveByName(_ context.Context, name string, legalEntityID *int64) (*entity.Profile, error) {
	for _, profile := range r.store.profiles {
		if !profile.IsActive() || !strings.EqualFold(profile.Name, name) {
			continue
		}
		sameScope := (legalEntityID == nil && profile.LegalEntityID == nil) ||
			(legalEntityID != nil && profile.LegalEntityID != nil && *profile.LegalEntityID == *legalEntityID)
		if sameScope {
			copied := *profile

			return &copied, nil
		}
	}

	return nil, repository.ErrProfileNotFound
}

func (r *fakeProfileRepo) FindActiveByID(_ context.Context, id int64) (*entity.Profile, error) {
	if profile, ok := r.store.profiles[id]; ok && profile.IsActive() {
		copied := *profile

		return &copied, nil
	}

	return nil, repository.ErrProfileNotFound
}

type fakePermissionRepo struct {
	store *fakeStore
}

func (r *fakePermissionRepo) Create(_ context.Context, permission *entity.Permission) error {
	copied := *permission
	copied.ID = r.store.id()
	r.store.permissions[copied.ID] = &copied
	permission.ID = copied.ID

	return nil
}

func (r *fakePermissionRepo) FindActiveByProfileAndModule(_ context.Context, profileID, moduleID int64) (*entity.Permission, error) {
	for _, permission := range r.store.permissions {
		if permission.IsActive() && permission.ProfileID == profileID && permission.ModuleID == moduleID {
			copied := *permission

			return &copied, nil
		}
	}

	return nil, repository.ErrPermissionNotFound
}

type fakeModuleRepo struct {
	store *fakeStore
}

func (r *fakeModuleRepo) FindActiveByID(_ context.Context, id int64) (*entity.Module, error) {
	if module, ok := r.store.modules[id]; ok && module.IsActive() && module.Visible {
		copied := *module

		return &copied, nil
	}

	return nil, repository.ErrModuleNotFound
}

func (r *fakeModuleRepo) FindActiveTopLevel(_ context.Context, systemID int64) ([]*entity.Module, error) {
	var results []*entity.Module
	for _, module := range r.store.modules {
		if module.IsActive() && module.Visible && module.SystemID == systemID && module.ParentID == nil {
			copied := *module
			results = append(results, &copied)
		}
	}
	sortModules(results)

	return results, nil
}

func (r *fakeModuleRepo) FindActiveChildren(_ context.Context, parentID int64) ([]*entity.Module, error) {
	var results []*entity.Module
	for _, module := range r.store.modules {
		if module.IsActive() && module.Visible && module.ParentID != nil && *module.ParentID == parentID {
			copied := *module
			results = append(results, &copied)
		}
	}
	sortModules(results)

	return results, nil
}

func sortModules(modules []*entity.Module) {
	sort.Slice(modules, func(i, j int) bool {
		if modules[i].Index != modules[j].Index {
			return modules[i].Index < modules[j].Index
		}

		return modules[i].ID < modules[j].ID
	})
}
