package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registro/internal/domain/entity"
	domainerrors "registro/internal/domain/errors"
	"registro/internal/domain/repository"
)

func seedModule(store *fakeStore, id int64, parentID *int64, name string, index int) {
	store.modules[id] = &entity.Module{
		ID:        id,
		SystemID:  seedSystemID,
		ParentID:  parentID,
		Name:      name,
		Index:     index,
		Visible:   true,
		Lifecycle: entity.NewActiveLifecycle(time.Now().UTC()),
	}
}

func seedPermission(store *fakeStore, moduleID int64, actions entity.ActionSet) {
	id := store.id()
	store.permissions[id] = &entity.Permission{
		ID:        id,
		ProfileID: seedProfileID,
		ModuleID:  moduleID,
		Actions:   actions,
		Lifecycle: entity.NewActiveLifecycle(time.Now().UTC()),
	}
}

func seedGrant(store *fakeStore, legalEntityID, systemID int64) {
	id := store.id()
	store.grants[id] = &entity.SystemGrant{
		ID:            id,
		LegalEntityID: legalEntityID,
		SystemID:      systemID,
		Lifecycle:     entity.NewActiveLifecycle(time.Now().UTC()),
	}
}

var allActions = entity.ActionSet{Insert: true, Update: true, Search: true, Delete: true, Print: true}

func TestPermissionService_ResolveTree_NestedModules(t *testing.T) {
	fixtures := createTestRegistry(t)
	seedGrant(fixtures.store, seedBaseCompanyID, seedSystemID)

	// cadastros(idx 1) > empresas > filiais, plus relatorios(idx 2).
	rootA, rootB := int64(101), int64(104)
	childID, grandchildID := int64(102), int64(103)
	seedModule(fixtures.store, rootA, nil, "Cadastros", 1)
	seedModule(fixtures.store, childID, &rootA, "Empresas", 1)
	seedModule(fixtures.store, grandchildID, &childID, "Filiais", 1)
	seedModule(fixtures.store, rootB, nil, "Relatórios", 2)

	seedPermission(fixtures.store, rootA, allActions)
	seedPermission(fixtures.store, childID, allActions)
	seedPermission(fixtures.store, grandchildID, entity.ActionSet{Search: true})
	seedPermission(fixtures.store, rootB, entity.ActionSet{Search: true, Print: true})

	tree, err := fixtures.permission.ResolveTree(context.Background(), seedProfileID, seedSystemID, seedBaseCompanyID)
	require.NoError(t, err)

	assert.Equal(t, seedProfileID, tree.ProfileID)
	assert.Equal(t, "Oficial", tree.ProfileName)
	assert.Equal(t, seedSystemID, tree.SystemID)

	require.Len(t, tree.Modules, 2)
	assert.Equal(t, "Cadastros", tree.Modules[0].Name)
	assert.Equal(t, "Relatórios", tree.Modules[1].Name)
	assert.Equal(t, allActions, tree.Modules[0].Actions)

	require.Len(t, tree.Modules[0].Children, 1)
	empresas := tree.Modules[0].Children[0]
	assert.Equal(t, "Empresas", empresas.Name)
	require.Len(t, empresas.Children, 1)
	assert.Equal(t, "Filiais", empresas.Children[0].Name)
	assert.Equal(t, entity.ActionSet{Search: true}, empresas.Children[0].Actions)

	assert.Empty(t, tree.Modules[1].Children)
}

func TestPermissionService_ResolveTree_OrdersByIndexThenID(t *testing.T) {
	fixtures := createTestRegistry(t)
	seedGrant(fixtures.store, seedBaseCompanyID, seedSystemID)

	seedModule(fixtures.store, 201, nil, "Terceiro", 5)
	seedModule(fixtures.store, 202, nil, "Primeiro", 1)
	seedModule(fixtures.store, 203, nil, "Segundo", 1) // same index, higher id
	seedPermission(fixtures.store, 201, allActions)
	seedPermission(fixtures.store, 202, allActions)
	seedPermission(fixtures.store, 203, allActions)

	tree, err := fixtures.permission.ResolveTree(context.Background(), seedProfileID, seedSystemID, seedBaseCompanyID)
	require.NoError(t, err)

	require.Len(t, tree.Modules, 3)
	assert.Equal(t, "Primeiro", tree.Modules[0].Name)
	assert.Equal(t, "Segundo", tree.Modules[1].Name)
	assert.Equal(t, "Terceiro", tree.Modules[2].Name)
}

func TestPermissionService_ResolveTree_PrunesUnpermittedSubtree(t *testing.T) {
	fixtures := createTestRegistry(t)
	seedGrant(fixtures.store, seedBaseCompanyID, seedSystemID)

	rootID, childID, grandchildID := int64(301), int64(302), int64(303)
	seedModule(fixtures.store, rootID, nil, "Cadastros", 1)
	seedModule(fixtures.store, childID, &rootID, "Empresas", 1)
	seedModule(fixtures.store, grandchildID, &childID, "Filiais", 1)

	// No permission on the middle module: its permitted grandchild must
	// stay unreachable, a child never appears without its parent.
	seedPermission(fixtures.store, rootID, allActions)
	seedPermission(fixtures.store, grandchildID, allActions)

	tree, err := fixtures.permission.ResolveTree(context.Background(), seedProfileID, seedSystemID, seedBaseCompanyID)
	require.NoError(t, err)

	require.Len(t, tree.Modules, 1)
	assert.Empty(t, tree.Modules[0].Children)
}

func TestPermissionService_ResolveTree_SkipsUnpermittedRoot(t *testing.T) {
	fixtures := createTestRegistry(t)
	seedGrant(fixtures.store, seedBaseCompanyID, seedSystemID)

	seedModule(fixtures.store, 401, nil, "Cadastros", 1)
	seedModule(fixtures.store, 402, nil, "Financeiro", 2)
	seedPermission(fixtures.store, 401, allActions)

	tree, err := fixtures.permission.ResolveTree(context.Background(), seedProfileID, seedSystemID, seedBaseCompanyID)
	require.NoError(t, err)

	require.Len(t, tree.Modules, 1)
	assert.Equal(t, "Cadastros", tree.Modules[0].Name)
}

func TestPermissionService_ResolveTree_ProfileNotFound(t *testing.T) {
	fixtures := createTestRegistry(t)
	seedGrant(fixtures.store, seedBaseCompanyID, seedSystemID)

	_, err := fixtures.permission.ResolveTree(context.Background(), 999, seedSystemID, seedBaseCompanyID)

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestPermissionService_ResolveTree_ForeignProfileHidden(t *testing.T) {
	fixtures := createTestRegistry(t)
	seedGrant(fixtures.store, seedBaseCompanyID, seedSystemID)

	otherCompanyID := int64(777)
	profileID := fixtures.store.id()
	fixtures.store.profiles[profileID] = &entity.Profile{
		ID:            profileID,
		LegalEntityID: &otherCompanyID,
		Name:          "Escrevente",
		Lifecycle:     entity.NewActiveLifecycle(time.Now().UTC()),
	}

	// A profile scoped to another company resolves as missing, not as
	// forbidden, to avoid leaking its existence.
	_, err := fixtures.permission.ResolveTree(context.Background(), profileID, seedSystemID, seedBaseCompanyID)

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestPermissionService_ResolveTree_NoSystemAccess(t *testing.T) {
	fixtures := createTestRegistry(t)

	_, err := fixtures.permission.ResolveTree(context.Background(), seedProfileID, seedSystemID, seedBaseCompanyID)

	assert.ErrorIs(t, err, domainerrors.ErrNoSystemAccess)
}

// riggedModuleRepo serves a deliberately cyclic hierarchy to exercise the
// visited guard. The single parent id column cannot express a cycle, so the
// fake store cannot produce one.
type riggedModuleRepo struct {
	topLevel []*entity.Module
	children map[int64][]*entity.Module
}

func (r *riggedModuleRepo) FindActiveByID(_ context.Context, id int64) (*entity.Module, error) {
	for _, module := range r.topLevel {
		if module.ID == id {
			return module, nil
		}
	}

	return nil, repository.ErrModuleNotFound
}

func (r *riggedModuleRepo) FindActiveTopLevel(_ context.Context, _ int64) ([]*entity.Module, error) {
	return r.topLevel, nil
}

func (r *riggedModuleRepo) FindActiveChildren(_ context.Context, parentID int64) ([]*entity.Module, error) {
	return r.children[parentID], nil
}

func TestPermissionService_ResolveTree_CyclicHierarchyTerminates(t *testing.T) {
	fixtures := createTestRegistry(t)
	seedGrant(fixtures.store, seedBaseCompanyID, seedSystemID)

	moduleA := &entity.Module{ID: 501, SystemID: seedSystemID, Name: "Cadastros", Index: 1, Visible: true, Lifecycle: entity.NewActiveLifecycle(time.Now().UTC())}
	moduleB := &entity.Module{ID: 502, SystemID: seedSystemID, Name: "Empresas", Index: 1, Visible: true, Lifecycle: entity.NewActiveLifecycle(time.Now().UTC())}
	seedPermission(fixtures.store, moduleA.ID, allActions)
	seedPermission(fixtures.store, moduleB.ID, allActions)

	service := NewPermissionService(
		&fakeProfileRepo{store: fixtures.store},
		&fakePermissionRepo{store: fixtures.store},
		&riggedModuleRepo{
			topLevel: []*entity.Module{moduleA},
			children: map[int64][]*entity.Module{
				moduleA.ID: {moduleB},
				moduleB.ID: {moduleA}, // cycle back to the root
			},
		},
		&fakeSystemGrantRepo{store: fixtures.store},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	tree, err := service.ResolveTree(context.Background(), seedProfileID, seedSystemID, seedBaseCompanyID)
	require.NoError(t, err)

	require.Len(t, tree.Modules, 1)
	require.Len(t, tree.Modules[0].Children, 1)
	assert.Equal(t, "Empresas", tree.Modules[0].Children[0].Name)
	assert.Empty(t, tree.Modules[0].Children[0].Children)
}
