package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "registro/internal/domain/errors"
	"registro/internal/usecase"
)

// supplierPayload varies the responsible CPF per item; a shared one would
// trip the natural-person uniqueness check across batch items.
func supplierPayload(cnpj, tradeName, responsibleCPF string) *usecase.CreateLegalEntityInput {
	input := notaryPayload(cnpj)
	input.TradeName = tradeName
	input.LegalName = tradeName + " LTDA"
	input.Responsible.CPF = responsibleCPF

	return input
}

func TestSupplierService_Create_FullGraph(t *testing.T) {
	fixtures := createTestRegistry(t)

	out, err := fixtures.supplier.Create(context.Background(), supplierPayload("45.723.174/0001-10", "Papelaria Central", "390.533.447-05"))
	require.NoError(t, err)

	assert.Equal(t, "45.723.174/0001-10", out.CNPJ)
	assert.Equal(t, "Papelaria Central", out.TradeName)
	assert.True(t, out.Active)
	require.NotNil(t, out.Responsible)
}

func TestSupplierService_Get_NotFound(t *testing.T) {
	fixtures := createTestRegistry(t)

	_, err := fixtures.supplier.Get(context.Background(), 12345)

	assert.ErrorIs(t, err, domainerrors.ErrSupplierNotFound)
}

func TestSupplierService_CreateBatch_AllSucceed(t *testing.T) {
	fixtures := createTestRegistry(t)

	result, err := fixtures.supplier.CreateBatch(context.Background(), []*usecase.CreateLegalEntityInput{
		supplierPayload("45.723.174/0001-10", "Papelaria Central", "390.533.447-05"),
		supplierPayload("33.000.167/0001-01", "Gráfica Boa Vista", "111.444.777-35"),
	})
	require.NoError(t, err)

	assert.Len(t, result.Successes, 2)
	assert.Empty(t, result.Errors)
}

func TestSupplierService_CreateBatch_PartialFailure(t *testing.T) {
	fixtures := createTestRegistry(t)
	ctx := context.Background()

	result, err := fixtures.supplier.CreateBatch(ctx, []*usecase.CreateLegalEntityInput{
		supplierPayload("45.723.174/0001-10", "Papelaria Central", "390.533.447-05"),
		supplierPayload("45.723.174/0001-10", "Papelaria Duplicada", "862.134.770-66"),
		supplierPayload("33.000.167/0001-01", "Gráfica Boa Vista", "111.444.777-35"),
	})
	require.NoError(t, err)

	// Items are independent: the duplicate fails alone, the rest persist.
	require.Len(t, result.Successes, 2)
	require.Len(t, result.Errors, 1)

	itemErr := result.Errors[0]
	assert.Equal(t, 1, itemErr.Index)
	assert.Equal(t, "45.723.174/0001-10", itemErr.CNPJ)
	assert.Equal(t, "CNPJ_ALREADY_REGISTERED", itemErr.Code)
	assert.Equal(t, domainerrors.ErrCNPJConflict.Message(), itemErr.Message)

	// The failed item left no rows behind.
	for _, le := range fixtures.store.legalEntities {
		assert.NotEqual(t, "Papelaria Duplicada", le.TradeName)
	}
}

func TestSupplierService_CreateBatch_FailedItemRollsBackAlone(t *testing.T) {
	fixtures := createTestRegistry(t)
	ctx := context.Background()

	broken := supplierPayload("33.000.167/0001-01", "Gráfica Quebrada", "862.134.770-66")
	broken.Contacts[0].TypeID = 999 // unknown contact type

	result, err := fixtures.supplier.CreateBatch(ctx, []*usecase.CreateLegalEntityInput{
		broken,
		supplierPayload("45.723.174/0001-10", "Papelaria Central", "390.533.447-05"),
	})
	require.NoError(t, err)

	require.Len(t, result.Successes, 1)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 0, result.Errors[0].Index)
	assert.Equal(t, "Papelaria Central", result.Successes[0].TradeName)

	// Only the good item's company exists beyond the seeded base.
	assert.Len(t, fixtures.store.legalEntities, 2)
}
