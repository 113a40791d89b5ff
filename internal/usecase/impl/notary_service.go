package impl

import (
	"context"
	"log/slog"

	"registro/config"
	domainerrors "registro/internal/domain/errors"
	"registro/internal/domain/repository"
	"registro/internal/domain/service"
	"registro/internal/usecase"
)

// notaryService implements the NotaryUsecase interface.
type notaryService struct {
	legalEntityService
}

// NewNotaryService is the constructor for notaryService.
func NewNotaryService(
	txManager repository.TransactionManager,
	entityRepo repository.LegalEntityRepository,
	profileRepo repository.ProfileRepository,
	hasher service.PasswordHasher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.NotaryUsecase {
	return &notaryService{
		legalEntityService: legalEntityService{
			txManager:   txManager,
			entityRepo:  entityRepo,
			profileRepo: profileRepo,
			hasher:      hasher,
			registry:    cfg.Registry,
			logger:      logger,
			notFound:    domainerrors.ErrNotaryNotFound,
		},
	}
}

// Create registers a notary office: the whole graph in one transaction, any
// nested failure aborting everything.
func (srv *notaryService) Create(ctx context.Context, input *usecase.CreateLegalEntityInput) (*usecase.LegalEntityOutput, error) {
	return srv.create(ctx, input)
}

// Get retrieves one notary office.
func (srv *notaryService) Get(ctx context.Context, id int64) (*usecase.LegalEntityOutput, error) {
	return srv.get(ctx, id)
}

// List retrieves notary offices matching the filter.
func (srv *notaryService) List(ctx context.Context, input *usecase.ListLegalEntityInput) ([]*usecase.LegalEntityOutput, error) {
	return srv.list(ctx, input)
}

// Update applies a partial patch to a notary office.
func (srv *notaryService) Update(ctx context.Context, id int64, patch *usecase.LegalEntityPatch) (*usecase.LegalEntityOutput, error) {
	return srv.update(ctx, id, patch)
}

// Deactivate cascades the soft delete over the notary office's graph.
func (srv *notaryService) Deactivate(ctx context.Context, id int64, motivo string) error {
	return srv.deactivate(ctx, id, motivo)
}

// Reactivate brings back the notary office's root rows only.
func (srv *notaryService) Reactivate(ctx context.Context, id int64, motivo string) error {
	return srv.reactivate(ctx, id, motivo)
}
