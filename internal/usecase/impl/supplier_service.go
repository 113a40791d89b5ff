package impl

import (
	"context"
	"log/slog"

	"registro/config"
	domainerrors "registro/internal/domain/errors"
	"registro/internal/domain/repository"
	"registro/internal/domain/service"
	"registro/internal/usecase"

	"github.com/pkg/errors"
)

// supplierService implements the SupplierUsecase interface.
type supplierService struct {
	legalEntityService
}

// NewSupplierService is the constructor for supplierService.
func NewSupplierService(
	txManager repository.TransactionManager,
	entityRepo repository.LegalEntityRepository,
	profileRepo repository.ProfileRepository,
	hasher service.PasswordHasher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SupplierUsecase {
	return &supplierService{
		legalEntityService: legalEntityService{
			txManager:   txManager,
			entityRepo:  entityRepo,
			profileRepo: profileRepo,
			hasher:      hasher,
			registry:    cfg.Registry,
			logger:      logger,
			notFound:    domainerrors.ErrSupplierNotFound,
		},
	}
}

// Create registers a single supplier.
func (srv *supplierService) Create(ctx context.Context, input *usecase.CreateLegalEntityInput) (*usecase.LegalEntityOutput, error) {
	return srv.create(ctx, input)
}

// CreateBatch registers suppliers independently: one transaction per item,
// failed items reported alongside the successes instead of aborting the
// batch. Callers must inspect the body, not the HTTP status alone.
func (srv *supplierService) CreateBatch(ctx context.Context, inputs []*usecase.CreateLegalEntityInput) (*usecase.BatchResult, error) {
	result := &usecase.BatchResult{
		Successes: []*usecase.LegalEntityOutput{},
		Errors:    []*usecase.BatchItemError{},
	}

	for i, input := range inputs {
		output, err := srv.create(ctx, input)
		if err != nil {
			result.Errors = append(result.Errors, &usecase.BatchItemError{
				Index:   i,
				CNPJ:    input.CNPJ,
				Code:    batchErrorCode(err),
				Message: batchErrorMessage(err),
			})

			continue
		}

		result.Successes = append(result.Successes, output)
	}

	srv.logger.Info("supplier batch processed",
		"total", len(inputs),
		"successes", len(result.Successes),
		"errors", len(result.Errors))

	return result, nil
}

// Get retrieves one supplier.
func (srv *supplierService) Get(ctx context.Context, id int64) (*usecase.LegalEntityOutput, error) {
	return srv.get(ctx, id)
}

// List retrieves suppliers matching the filter.
func (srv *supplierService) List(ctx context.Context, input *usecase.ListLegalEntityInput) ([]*usecase.LegalEntityOutput, error) {
	return srv.list(ctx, input)
}

// Update applies a partial patch to a supplier.
func (srv *supplierService) Update(ctx context.Context, id int64, patch *usecase.LegalEntityPatch) (*usecase.LegalEntityOutput, error) {
	return srv.update(ctx, id, patch)
}

// Deactivate cascades the soft delete over the supplier's graph.
func (srv *supplierService) Deactivate(ctx context.Context, id int64, motivo string) error {
	return srv.deactivate(ctx, id, motivo)
}

// Reactivate brings back the supplier's root rows only.
func (srv *supplierService) Reactivate(ctx context.Context, id int64, motivo string) error {
	return srv.reactivate(ctx, id, motivo)
}

// batchErrorCode extracts the business error code of a failed batch item.
func batchErrorCode(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return "INTERNAL_ERROR"
}

// batchErrorMessage extracts the user-facing message of a failed batch item.
func batchErrorMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return domainerrors.ErrInternalError.Message()
}
