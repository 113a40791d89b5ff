package impl

import (
	"context"
	"log/slog"

	"registro/internal/domain/entity"
	domainerrors "registro/internal/domain/errors"
	"registro/internal/domain/repository"
	"registro/internal/usecase"

	"github.com/pkg/errors"
)

// permissionService implements the PermissionUsecase interface. Resolution is
// read-only, so it uses the direct repositories instead of the transaction
// manager.
type permissionService struct {
	profileRepo    repository.ProfileRepository
	permissionRepo repository.PermissionRepository
	moduleRepo     repository.ModuleRepository
	grantRepo      repository.SystemGrantRepository
	logger         *slog.Logger
}

// NewPermissionService is the constructor for permissionService.
func NewPermissionService(
	profileRepo repository.ProfileRepository,
	permissionRepo repository.PermissionRepository,
	moduleRepo repository.ModuleRepository,
	grantRepo repository.SystemGrantRepository,
	logger *slog.Logger,
) usecase.PermissionUsecase {
	return &permissionService{
		profileRepo:    profileRepo,
		permissionRepo: permissionRepo,
		moduleRepo:     moduleRepo,
		grantRepo:      grantRepo,
		logger:         logger,
	}
}

// ResolveTree resolves the module tree a profile may see on a system, scoped
// to one company. Modules appear only when the profile holds an active
// permission row on them; a child never appears without its parent. Results
// are ordered by (index, id), parents before children.
func (srv *permissionService) ResolveTree(ctx context.Context, profileID, systemID, legalEntityID int64) (*usecase.PermissionTreeOutput, error) {
	// 1. The profile must be active and belong to the company or be global.
	profile, err := srv.profileRepo.FindActiveByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve profile")
	}
	if !profile.BelongsTo(legalEntityID) {
		return nil, domainerrors.ErrProfileNotFound
	}

	// 2. The company must hold an active entitlement to the system.
	hasGrant, err := srv.grantRepo.HasActiveGrant(ctx, legalEntityID, systemID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check system grant")
	}
	if !hasGrant {
		return nil, domainerrors.ErrNoSystemAccess
	}

	// 3. Top level: the system's active, visible root modules the profile
	// holds a permission on.
	topModules, err := srv.moduleRepo.FindActiveTopLevel(ctx, systemID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load top-level modules")
	}

	// Module parent ids form a strict tree in practice; the visited set
	// still guards malformed data against infinite expansion.
	visited := make(map[int64]bool)

	roots, err := srv.filterPermitted(ctx, profileID, topModules, visited)
	if err != nil {
		return nil, err
	}

	// 4. Expand level by level: a child is included only when active,
	// visible, not yet included, and covered by its own permission row.
	frontier := roots
	for len(frontier) > 0 {
		var next []*entity.ModuleNode

		for _, node := range frontier {
			children, err := srv.moduleRepo.FindActiveChildren(ctx, node.Module.ID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to load child modules")
			}

			permitted, err := srv.filterPermitted(ctx, profileID, children, visited)
			if err != nil {
				return nil, err
			}

			node.Children = permitted
			next = append(next, permitted...)
		}

		frontier = next
	}

	return &usecase.PermissionTreeOutput{
		ProfileID:   profile.ID,
		ProfileName: profile.Name,
		SystemID:    systemID,
		Modules:     toModuleNodeOutputs(roots),
	}, nil
}

// filterPermitted keeps the modules the profile holds an active permission
// row on, preserving repository ordering and marking them visited.
func (srv *permissionService) filterPermitted(ctx context.Context, profileID int64, modules []*entity.Module, visited map[int64]bool) ([]*entity.ModuleNode, error) {
	nodes := make([]*entity.ModuleNode, 0, len(modules))

	for _, module := range modules {
		if visited[module.ID] {
			continue
		}

		permission, err := srv.permissionRepo.FindActiveByProfileAndModule(ctx, profileID, module.ID)
		if err != nil {
			if errors.Is(err, repository.ErrPermissionNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to load permission")
		}

		visited[module.ID] = true
		nodes = append(nodes, &entity.ModuleNode{
			Module:  module,
			Actions: permission.Actions,
		})
	}

	return nodes, nil
}

// toModuleNodeOutputs maps the resolved domain tree onto the response shape.
func toModuleNodeOutputs(nodes []*entity.ModuleNode) []*usecase.ModuleNodeOutput {
	outputs := make([]*usecase.ModuleNodeOutput, 0, len(nodes))

	for _, node := range nodes {
		outputs = append(outputs, &usecase.ModuleNodeOutput{
			ID:       node.Module.ID,
			Name:     node.Module.Name,
			Index:    node.Module.Index,
			Actions:  node.Actions,
			Children: toModuleNodeOutputs(node.Children),
		})
	}

	return outputs
}
