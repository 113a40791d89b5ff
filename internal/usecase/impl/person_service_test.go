package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "registro/internal/domain/errors"
	"registro/internal/usecase"
)

func personPayload(cpf string) *usecase.CreatePersonInput {
	birthDate := "1985-03-12"

	return &usecase.CreatePersonInput{
		CPF:             cpf,
		Name:            "João Batista",
		GenderID:        seedGenderID,
		MaritalStatusID: seedMaritalStatusID,
		BirthDate:       &birthDate,
		Origin:          "portal",
		Email:           "joao@exemplo.com.br",
		Addresses: []usecase.AddressInput{
			{TypeID: seedAddressTypeID, Street: "Rua das Flores", Number: "45", City: "Curitiba", State: "PR"},
		},
		Contacts: []usecase.ContactInput{
			{TypeID: seedContactTypeID, Value: "joao@exemplo.com.br"},
		},
	}
}

func TestPersonService_Create_FullGraph(t *testing.T) {
	fixtures := createTestRegistry(t)

	out, err := fixtures.person.Create(context.Background(), personPayload("390.533.447-05"))
	require.NoError(t, err)

	assert.Equal(t, "390.533.447-05", out.CPF)
	assert.Equal(t, "João Batista", out.Name)
	assert.True(t, out.Active)
	assert.NotEmpty(t, out.Code)
	require.NotNil(t, out.BirthDate)
	assert.Equal(t, "1985-03-12", *out.BirthDate)
	assert.Len(t, out.Addresses, 1)
	assert.Len(t, out.Contacts, 1)

	// The login derives from the back-filled person code.
	assert.Equal(t, out.Code, out.Login)

	np := fixtures.store.naturalPersons[out.ID]
	require.NotNil(t, np)
	assert.Equal(t, "39053344705", np.CPF)

	var firstAccess bool
	for _, account := range fixtures.store.accounts {
		if account.NaturalPersonID == out.ID {
			firstAccess = account.FirstAccess
		}
	}
	assert.True(t, firstAccess)
}

func TestPersonService_Create_InvalidCPF(t *testing.T) {
	fixtures := createTestRegistry(t)

	_, err := fixtures.person.Create(context.Background(), personPayload("12345"))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidDocument)
}

func TestPersonService_Create_DuplicateCPF(t *testing.T) {
	fixtures := createTestRegistry(t)
	ctx := context.Background()

	_, err := fixtures.person.Create(ctx, personPayload("390.533.447-05"))
	require.NoError(t, err)

	_, err = fixtures.person.Create(ctx, personPayload("39053344705"))
	assert.ErrorIs(t, err, domainerrors.ErrCPFConflict)
}

func TestPersonService_Create_CPFSharedWithResponsible(t *testing.T) {
	fixtures := createTestRegistry(t)
	ctx := context.Background()

	// A company's responsible party occupies the CPF globally: the
	// standalone registration must see the conflict.
	_, err := fixtures.notary.Create(ctx, notaryPayload("04.332.281/0001-30"))
	require.NoError(t, err)

	_, err = fixtures.person.Create(ctx, personPayload("529.982.247-25"))
	assert.ErrorIs(t, err, domainerrors.ErrCPFConflict)
}

func TestPersonService_Update_KeepsOwnCPF(t *testing.T) {
	fixtures := createTestRegistry(t)
	ctx := context.Background()

	created, err := fixtures.person.Create(ctx, personPayload("390.533.447-05"))
	require.NoError(t, err)

	// Re-sending the person's own CPF is not a conflict.
	sameCPF := "390.533.447-05"
	newName := "João Batista de Oliveira"
	updated, err := fixtures.person.Update(ctx, created.ID, &usecase.PersonPatch{CPF: &sameCPF, Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "390.533.447-05", updated.CPF)
	assert.Equal(t, newName, updated.Name)
}

func TestPersonService_Update_CPFConflict(t *testing.T) {
	fixtures := createTestRegistry(t)
	ctx := context.Background()

	_, err := fixtures.person.Create(ctx, personPayload("390.533.447-05"))
	require.NoError(t, err)

	other, err := fixtures.person.Create(ctx, personPayload("111.444.777-35"))
	require.NoError(t, err)

	taken := "390.533.447-05"
	_, err = fixtures.person.Update(ctx, other.ID, &usecase.PersonPatch{CPF: &taken})
	assert.ErrorIs(t, err, domainerrors.ErrCPFConflict)
}

func TestPersonService_Update_ReplacesCollections(t *testing.T) {
	fixtures := createTestRegistry(t)
	ctx := context.Background()

	created, err := fixtures.person.Create(ctx, personPayload("390.533.447-05"))
	require.NoError(t, err)
	previousContactID := created.Contacts[0].ID

	newContacts := []usecase.ContactInput{
		{TypeID: seedContactTypeID, Value: "joao.novo@exemplo.com.br"},
	}
	updated, err := fixtures.person.Update(ctx, created.ID, &usecase.PersonPatch{Contacts: &newContacts})
	require.NoError(t, err)

	require.Len(t, updated.Contacts, 1)
	assert.Equal(t, "joao.novo@exemplo.com.br", updated.Contacts[0].Value)

	previous := fixtures.store.contacts[previousContactID]
	require.NotNil(t, previous)
	assert.False(t, previous.IsActive())
	assert.Equal(t, defaultReplaceMotivo, previous.Motivo)
}

func TestPersonService_Get_NotFound(t *testing.T) {
	fixtures := createTestRegistry(t)

	_, err := fixtures.person.Get(context.Background(), 12345)

	assert.ErrorIs(t, err, domainerrors.ErrPersonNotFound)
}

func TestPersonService_List_FiltersByName(t *testing.T) {
	fixtures := createTestRegistry(t)
	ctx := context.Background()

	created, err := fixtures.person.Create(ctx, personPayload("390.533.447-05"))
	require.NoError(t, err)

	results, err := fixtures.person.List(ctx, &usecase.ListPersonInput{Name: "batista"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, created.ID, results[0].ID)

	none, err := fixtures.person.List(ctx, &usecase.ListPersonInput{Name: "inexistente"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPersonService_Deactivate_CascadesAccount(t *testing.T) {
	fixtures := createTestRegistry(t)
	ctx := context.Background()

	created, err := fixtures.person.Create(ctx, personPayload("390.533.447-05"))
	require.NoError(t, err)

	const motivo = "Desligamento"
	require.NoError(t, fixtures.person.Deactivate(ctx, created.ID, motivo))

	np := fixtures.store.naturalPersons[created.ID]
	assert.False(t, np.IsActive())
	assert.Equal(t, motivo, np.Motivo)
	assert.False(t, fixtures.store.persons[np.PersonID].IsActive())

	for _, account := range fixtures.store.accounts {
		if account.NaturalPersonID == created.ID {
			assert.False(t, account.IsActive())
			assert.Equal(t, motivo, account.Motivo)
		}
	}
	for _, address := range fixtures.store.addresses {
		if address.PersonID == np.PersonID {
			assert.False(t, address.IsActive())
		}
	}
}

func TestPersonService_Deactivate_RequiresMotivo(t *testing.T) {
	fixtures := createTestRegistry(t)
	ctx := context.Background()

	created, err := fixtures.person.Create(ctx, personPayload("390.533.447-05"))
	require.NoError(t, err)

	err = fixtures.person.Deactivate(ctx, created.ID, "")
	assert.ErrorIs(t, err, domainerrors.ErrMotivoRequired)
}

func TestPersonService_Reactivate_RootRowsOnly(t *testing.T) {
	fixtures := createTestRegistry(t)
	ctx := context.Background()

	created, err := fixtures.person.Create(ctx, personPayload("390.533.447-05"))
	require.NoError(t, err)
	require.NoError(t, fixtures.person.Deactivate(ctx, created.ID, "Desligamento"))

	require.NoError(t, fixtures.person.Reactivate(ctx, created.ID, "Retorno"))

	np := fixtures.store.naturalPersons[created.ID]
	assert.True(t, np.IsActive())
	assert.True(t, fixtures.store.persons[np.PersonID].IsActive())

	// Accounts and dependents stay inactive until explicitly restored.
	for _, account := range fixtures.store.accounts {
		if account.NaturalPersonID == created.ID {
			assert.False(t, account.IsActive())
		}
	}
}
