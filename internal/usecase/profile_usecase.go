package usecase

import (
	"context"

	"registro/internal/domain/entity"
)

// PermissionGrantInput is one module grant of a profile creation payload.
type PermissionGrantInput struct {
	ModuleID int64            `json:"modulo_id" validate:"required"`
	Actions  entity.ActionSet `json:"acoes"`
}

// CreateProfileInput defines a profile registration: the profile row plus its
// permission rows, written in one transaction. A nil LegalEntityID creates a
// global profile shared by every company.
type CreateProfileInput struct {
	Name          string                 `json:"nome" validate:"required"`
	LegalEntityID *int64                 `json:"pessoa_juridica_id"`
	Permissions   []PermissionGrantInput `json:"permissoes" validate:"omitempty,dive"`
}

// PermissionGrantOutput is one granted module of a profile read.
type PermissionGrantOutput struct {
	ID       int64            `json:"id"`
	ModuleID int64            `json:"modulo_id"`
	Actions  entity.ActionSet `json:"acoes"`
}

// ProfileOutput is a profile registration read.
type ProfileOutput struct {
	ID            int64                   `json:"id"`
	Name          string                  `json:"nome"`
	LegalEntityID *int64                  `json:"pessoa_juridica_id,omitempty"`
	Global        bool                    `json:"global"`
	Active        bool                    `json:"situacao"`
	Permissions   []PermissionGrantOutput `json:"permissoes,omitempty"`
}

// ProfileBatchResult is the partial-failure result of a batch profile
// creation: each item runs in its own transaction.
type ProfileBatchResult struct {
	Successes []*ProfileOutput  `json:"sucessos"`
	Errors    []*BatchItemError `json:"erros"`
}

// ProfileUsecase groups the profile registration operations.
type ProfileUsecase interface {
	Create(ctx context.Context, input *CreateProfileInput) (*ProfileOutput, error)

	// CreateBatch processes each item independently and reports per-item
	// failures instead of aborting the whole batch.
	CreateBatch(ctx context.Context, inputs []*CreateProfileInput) (*ProfileBatchResult, error)
}
