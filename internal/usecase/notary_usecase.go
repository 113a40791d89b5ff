package usecase

import "context"

// NotaryUsecase defines the business operations of the notary-office
// registry. Creation builds the whole entity graph in one transaction;
// deactivation cascades over it; reactivation brings back the root rows only.
type NotaryUsecase interface {
	Create(ctx context.Context, input *CreateLegalEntityInput) (*LegalEntityOutput, error)
	Get(ctx context.Context, id int64) (*LegalEntityOutput, error)
	List(ctx context.Context, input *ListLegalEntityInput) ([]*LegalEntityOutput, error)
	Update(ctx context.Context, id int64, patch *LegalEntityPatch) (*LegalEntityOutput, error)
	Deactivate(ctx context.Context, id int64, motivo string) error
	Reactivate(ctx context.Context, id int64, motivo string) error
}
