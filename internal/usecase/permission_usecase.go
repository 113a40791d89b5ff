package usecase

import (
	"context"

	"registro/internal/domain/entity"
)

// ModuleNodeOutput is one resolved node of a permission tree: the module,
// the action flags the profile holds on it, and its permitted children.
type ModuleNodeOutput struct {
	ID       int64               `json:"id"`
	Name     string              `json:"nome"`
	Index    int                 `json:"indice"`
	Actions  entity.ActionSet    `json:"acoes"`
	Children []*ModuleNodeOutput `json:"filhos,omitempty"`
}

// PermissionTreeOutput is the full resolution result for one profile on one
// system, scoped to one company.
type PermissionTreeOutput struct {
	ProfileID   int64               `json:"perfil_id"`
	ProfileName string              `json:"perfil_nome"`
	SystemID    int64               `json:"sistema_id"`
	Modules     []*ModuleNodeOutput `json:"modulos"`
}

// PermissionUsecase resolves the module tree a profile may see on a system.
type PermissionUsecase interface {
	// ResolveTree verifies the profile belongs to the company (or is
	// global) and the company holds an active system entitlement, then
	// expands the module hierarchy level by level, keeping only modules
	// the profile holds an active permission row on.
	ResolveTree(ctx context.Context, profileID, systemID, legalEntityID int64) (*PermissionTreeOutput, error)
}
