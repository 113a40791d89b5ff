// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"strconv"
	"time"

	"registro/internal/domain/entity"
	domainerrors "registro/internal/domain/errors"
	"registro/internal/domain/repository"
	"registro/internal/domain/service"
	"registro/internal/usecase"
	"registro/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// defaultReplaceMotivo is recorded on dependents removed by the
// replace-by-situacao update policy.
const defaultReplaceMotivo = "Substituído por atualização cadastral"

// parseDate converts a wire-format date into UTC time.
func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	parsed, err := time.ParseInLocation(usecase.DateLayout, *value, time.UTC)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid date")
	}

	return &parsed, nil
}

// formatDate converts a stored date back into the wire format.
func formatDate(value *time.Time) *string {
	if value == nil {
		return nil
	}

	formatted := value.UTC().Format(usecase.DateLayout)

	return &formatted
}

// createRootPerson creates the root person row and back-fills its codigo
// deterministically from the generated numeric id when the payload carries
// none. Dependent inserts that reference the code therefore always see it
// filled.
func createRootPerson(ctx context.Context, repos repository.RepositoryFactory, kind entity.PersonKind, origin, code string, now time.Time) (*entity.Person, error) {
	person := &entity.Person{
		Kind:      kind,
		Origin:    origin,
		Code:      code,
		Lifecycle: entity.NewActiveLifecycle(now),
	}

	if err := repos.PersonRepo().Create(ctx, person); err != nil {
		return nil, errors.Wrap(err, "failed to create person")
	}

	if person.Code == "" {
		person.Code = strconv.FormatInt(person.ID, 10)
		if err := repos.PersonRepo().UpdateCode(ctx, person.ID, person.Code); err != nil {
			return nil, errors.Wrap(err, "failed to back-fill person code")
		}
	}

	return person, nil
}

// createDependents inserts the nested addresses, contacts and complementary
// records of a person, resolving each type id first. Any failure aborts the
// caller's transaction.
func createDependents(
	ctx context.Context,
	repos repository.RepositoryFactory,
	personID int64,
	addresses []usecase.AddressInput,
	contacts []usecase.ContactInput,
	extras []usecase.ExtraRecordInput,
	now time.Time,
) error {
	refRepo := repos.ReferenceRepo()

	for _, input := range addresses {
		if _, err := refRepo.FindAddressType(ctx, input.TypeID); err != nil {
			if errors.Is(err, repository.ErrReferenceNotFound) {
				return domainerrors.ErrReferenceNotFound.WrapMessage("address type")
			}

			return errors.Wrap(err, "failed to resolve address type")
		}

		address := &entity.Address{
			PersonID:  personID,
			TypeID:    input.TypeID,
			Street:    input.Street,
			Number:    input.Number,
			District:  input.District,
			City:      input.City,
			State:     input.State,
			ZipCode:   input.ZipCode,
			Lifecycle: entity.NewActiveLifecycle(now),
		}
		if err := repos.AddressRepo().Create(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}
	}

	for _, input := range contacts {
		if _, err := refRepo.FindContactType(ctx, input.TypeID); err != nil {
			if errors.Is(err, repository.ErrReferenceNotFound) {
				return domainerrors.ErrReferenceNotFound.WrapMessage("contact type")
			}

			return errors.Wrap(err, "failed to resolve contact type")
		}

		contact := &entity.Contact{
			PersonID:  personID,
			TypeID:    input.TypeID,
			Value:     input.Value,
			Note:      input.Note,
			Lifecycle: entity.NewActiveLifecycle(now),
		}
		if err := repos.ContactRepo().Create(ctx, contact); err != nil {
			return errors.Wrap(err, "failed to create contact")
		}
	}

	for _, input := range extras {
		record := &entity.ExtraRecord{
			PersonID:  personID,
			Name:      input.Name,
			Value:     input.Value,
			Lifecycle: entity.NewActiveLifecycle(now),
		}
		if err := repos.ExtraRecordRepo().Create(ctx, record); err != nil {
			return errors.Wrap(err, "failed to create complementary record")
		}
	}

	return nil
}

// deactivateDependents applies the cascade lifecycle to every active,
// non-global dependent of a person.
func deactivateDependents(ctx context.Context, repos repository.RepositoryFactory, personID int64, lc entity.Lifecycle) error {
	if _, err := repos.AddressRepo().DeactivateActiveByPerson(ctx, personID, lc); err != nil {
		return errors.Wrap(err, "failed to deactivate addresses")
	}
	if _, err := repos.ContactRepo().DeactivateActiveByPerson(ctx, personID, lc); err != nil {
		return errors.Wrap(err, "failed to deactivate contacts")
	}
	if _, err := repos.ExtraRecordRepo().DeactivateActiveByPerson(ctx, personID, lc); err != nil {
		return errors.Wrap(err, "failed to deactivate complementary records")
	}

	return nil
}

// naturalPersonGraphInput carries everything needed to build a natural
// person's sub-graph: core fields, nested collections and the user account.
type naturalPersonGraphInput struct {
	CPF             string // Digits only, validated by the caller.
	Name            string
	GenderID        int64
	MaritalStatusID int64
	BirthDate       *string
	DocumentDate    *string
	Origin          string
	Code            string
	Email           string

	Addresses []usecase.AddressInput
	Contacts  []usecase.ContactInput
	Extras    []usecase.ExtraRecordInput
}

// createNaturalPersonGraph builds a natural person inside the caller's
// transaction: root person row, natural person row, dependents and the login
// account. The CPF must already be normalized; uniqueness among active rows
// is checked here.
func createNaturalPersonGraph(
	ctx context.Context,
	repos repository.RepositoryFactory,
	hasher service.PasswordHasher,
	input *naturalPersonGraphInput,
	now time.Time,
) (*entity.NaturalPerson, error) {
	refRepo := repos.ReferenceRepo()

	// 1. Resolve references before any write.
	if _, err := refRepo.FindGender(ctx, input.GenderID); err != nil {
		if errors.Is(err, repository.ErrReferenceNotFound) {
			return nil, domainerrors.ErrReferenceNotFound.WrapMessage("gender")
		}

		return nil, errors.Wrap(err, "failed to resolve gender")
	}
	if _, err := refRepo.FindMaritalStatus(ctx, input.MaritalStatusID); err != nil {
		if errors.Is(err, repository.ErrReferenceNotFound) {
			return nil, domainerrors.ErrReferenceNotFound.WrapMessage("marital status")
		}

		return nil, errors.Wrap(err, "failed to resolve marital status")
	}

	// 2. Uniqueness guard: one active row per CPF across the registry.
	if _, err := repos.NaturalPersonRepo().FindActiveByCPF(ctx, input.CPF, 0); err == nil {
		return nil, domainerrors.ErrCPFConflict
	} else if !errors.Is(err, repository.ErrNaturalPersonNotFound) {
		return nil, errors.Wrap(err, "failed to check CPF uniqueness")
	}

	birthDate, err := parseDate(input.BirthDate)
	if err != nil {
		return nil, err
	}
	documentDate, err := parseDate(input.DocumentDate)
	if err != nil {
		return nil, err
	}

	// 3. Root person row, codigo back-filled.
	person, err := createRootPerson(ctx, repos, entity.PersonKindNatural, input.Origin, input.Code, now)
	if err != nil {
		return nil, err
	}

	// 4. Natural person row.
	np := &entity.NaturalPerson{
		PersonID:        person.ID,
		CPF:             input.CPF,
		Name:            input.Name,
		GenderID:        input.GenderID,
		MaritalStatusID: input.MaritalStatusID,
		BirthDate:       birthDate,
		DocumentDate:    documentDate,
		Lifecycle:       entity.NewActiveLifecycle(now),
		Person:          person,
	}
	if err := repos.NaturalPersonRepo().Create(ctx, np); err != nil {
		return nil, errors.Wrap(err, "failed to create natural person")
	}

	// 5. Nested collections.
	if err := createDependents(ctx, repos, person.ID, input.Addresses, input.Contacts, input.Extras, now); err != nil {
		return nil, err
	}

	// 6. Login account. The login derives from the person's code; the
	// initial password is generated and only ever stored hashed.
	account, err := createUserAccount(ctx, repos, hasher, np.ID, person.Code, input.CPF, input.Email, now)
	if err != nil {
		return nil, err
	}
	np.UserAccount = account

	return np, nil
}

// createUserAccount creates the login record of a natural person. The login
// derives from the person's code, falling back to the bare CPF when the code
// is somehow empty.
func createUserAccount(
	ctx context.Context,
	repos repository.RepositoryFactory,
	hasher service.PasswordHasher,
	naturalPersonID int64,
	code, cpf, email string,
	now time.Time,
) (*entity.UserAccount, error) {
	login := code
	if login == "" {
		login = cpf
	}

	if _, err := repos.UserAccountRepo().FindActiveByLogin(ctx, login, 0); err == nil {
		return nil, domainerrors.ErrLoginConflict
	} else if !errors.Is(err, repository.ErrUserAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check login uniqueness")
	}

	hash, err := hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash initial password")
	}

	account := &entity.UserAccount{
		NaturalPersonID: naturalPersonID,
		Login:           login,
		Email:           email,
		PasswordHash:    hash,
		FirstAccess:     true,
		Lifecycle:       entity.NewActiveLifecycle(now),
	}
	if err := repos.UserAccountRepo().Create(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create user account")
	}

	return account, nil
}

// deactivateNaturalPersonGraph cascades the lifecycle over a natural person:
// its row, its root person row, its dependents and its login accounts.
// Already-inactive persons are skipped, not failed, because a cascade may
// reach the same person through more than one link.
func deactivateNaturalPersonGraph(ctx context.Context, repos repository.RepositoryFactory, naturalPersonID int64, lc entity.Lifecycle) error {
	np, err := repos.NaturalPersonRepo().FindByID(ctx, naturalPersonID)
	if err != nil {
		if errors.Is(err, repository.ErrNaturalPersonNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to load responsible natural person")
	}

	if !np.IsActive() {
		return nil
	}

	if err := repos.NaturalPersonRepo().UpdateLifecycle(ctx, np.ID, lc); err != nil {
		return errors.Wrap(err, "failed to deactivate natural person")
	}
	if err := repos.PersonRepo().UpdateLifecycle(ctx, np.PersonID, lc); err != nil {
		return errors.Wrap(err, "failed to deactivate natural person root")
	}
	if err := deactivateDependents(ctx, repos, np.PersonID, lc); err != nil {
		return err
	}
	if _, err := repos.UserAccountRepo().DeactivateByNaturalPerson(ctx, np.ID, lc); err != nil {
		return errors.Wrap(err, "failed to deactivate user accounts")
	}

	return nil
}

// replaceDependents implements the replace-by-situacao update policy: for
// each supplied collection the active rows are deactivated with a generic
// motivo and the new list, possibly empty, is inserted fresh.
func replaceDependents(
	ctx context.Context,
	repos repository.RepositoryFactory,
	personID int64,
	addresses *[]usecase.AddressInput,
	contacts *[]usecase.ContactInput,
	extras *[]usecase.ExtraRecordInput,
	now time.Time,
) error {
	lc := entity.InactiveLifecycle(defaultReplaceMotivo, now)

	var newAddresses []usecase.AddressInput
	var newContacts []usecase.ContactInput
	var newExtras []usecase.ExtraRecordInput

	if addresses != nil {
		if _, err := repos.AddressRepo().DeactivateActiveByPerson(ctx, personID, lc); err != nil {
			return errors.Wrap(err, "failed to replace addresses")
		}
		newAddresses = *addresses
	}
	if contacts != nil {
		if _, err := repos.ContactRepo().DeactivateActiveByPerson(ctx, personID, lc); err != nil {
			return errors.Wrap(err, "failed to replace contacts")
		}
		newContacts = *contacts
	}
	if extras != nil {
		if _, err := repos.ExtraRecordRepo().DeactivateActiveByPerson(ctx, personID, lc); err != nil {
			return errors.Wrap(err, "failed to replace complementary records")
		}
		newExtras = *extras
	}

	return createDependents(ctx, repos, personID, newAddresses, newContacts, newExtras, now)
}

// --- Output mapping ---

func toAddressOutputs(addresses []*entity.Address) []usecase.AddressOutput {
	outputs := make([]usecase.AddressOutput, 0, len(addresses))
	for _, address := range addresses {
		outputs = append(outputs, usecase.AddressOutput{
			ID:       address.ID,
			TypeID:   address.TypeID,
			Street:   address.Street,
			Number:   address.Number,
			District: address.District,
			City:     address.City,
			State:    address.State,
			ZipCode:  address.ZipCode,
		})
	}

	return outputs
}

func toContactOutputs(contacts []*entity.Contact) []usecase.ContactOutput {
	outputs := make([]usecase.ContactOutput, 0, len(contacts))
	for _, contact := range contacts {
		outputs = append(outputs, usecase.ContactOutput{
			ID:     contact.ID,
			TypeID: contact.TypeID,
			Value:  contact.Value,
			Note:   contact.Note,
		})
	}

	return outputs
}

func toExtraRecordOutputs(records []*entity.ExtraRecord) []usecase.ExtraRecordOutput {
	outputs := make([]usecase.ExtraRecordOutput, 0, len(records))
	for _, record := range records {
		outputs = append(outputs, usecase.ExtraRecordOutput{
			ID:    record.ID,
			Name:  record.Name,
			Value: record.Value,
		})
	}

	return outputs
}

// toLegalEntityOutput maps a legal entity to its read shape. Documents are
// formatted for display only here, at the boundary.
func toLegalEntityOutput(le *entity.LegalEntity) *usecase.LegalEntityOutput {
	if le == nil {
		return nil
	}

	output := &usecase.LegalEntityOutput{
		ID:            le.ID,
		CNPJ:          util.FormatCNPJ(le.CNPJ),
		TradeName:     le.TradeName,
		LegalName:     le.LegalName,
		CompanyTypeID: le.CompanyTypeID,
		CategoryID:    le.CategoryID,
		Branch:        le.Branch,
		MatrizID:      le.ParentID,
		Active:        le.IsActive(),
		Motivo:        le.Motivo,
		Addresses:     toAddressOutputs(le.Addresses),
		Contacts:      toContactOutputs(le.Contacts),
		Extras:        toExtraRecordOutputs(le.Extras),
	}

	if le.Person != nil {
		output.Code = le.Person.Code
	}
	if le.Responsible != nil {
		output.Responsible = &usecase.ResponsibleOutput{
			ID:   le.Responsible.ID,
			CPF:  util.FormatCPF(le.Responsible.CPF),
			Name: le.Responsible.Name,
		}
	}

	return output
}

// toPersonOutput maps a natural person to its read shape.
func toPersonOutput(np *entity.NaturalPerson) *usecase.PersonOutput {
	if np == nil {
		return nil
	}

	output := &usecase.PersonOutput{
		ID:              np.ID,
		CPF:             util.FormatCPF(np.CPF),
		Name:            np.Name,
		GenderID:        np.GenderID,
		MaritalStatusID: np.MaritalStatusID,
		BirthDate:       formatDate(np.BirthDate),
		DocumentDate:    formatDate(np.DocumentDate),
		Active:          np.IsActive(),
		Motivo:          np.Motivo,
		Addresses:       toAddressOutputs(np.Addresses),
		Contacts:        toContactOutputs(np.Contacts),
		Extras:          toExtraRecordOutputs(np.Extras),
	}

	if np.Person != nil {
		output.Code = np.Person.Code
	}
	if np.UserAccount != nil {
		output.Login = np.UserAccount.Login
	}

	return output
}
