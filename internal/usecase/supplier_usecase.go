package usecase

import "context"

// SupplierUsecase defines the business operations of the supplier registry.
// It follows the notary-office contract, plus the batch creation path that
// processes items independently and reports partial failure.
type SupplierUsecase interface {
	Create(ctx context.Context, input *CreateLegalEntityInput) (*LegalEntityOutput, error)
	CreateBatch(ctx context.Context, inputs []*CreateLegalEntityInput) (*BatchResult, error)
	Get(ctx context.Context, id int64) (*LegalEntityOutput, error)
	List(ctx context.Context, input *ListLegalEntityInput) ([]*LegalEntityOutput, error)
	Update(ctx context.Context, id int64, patch *LegalEntityPatch) (*LegalEntityOutput, error)
	Deactivate(ctx context.Context, id int64, motivo string) error
	Reactivate(ctx context.Context, id int64, motivo string) error
}
