package handler

import (
	"log/slog"
	"net/http"

	"registro/internal/delivery/http/response"
	"registro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SupplierHandler holds dependencies for supplier routes.
type SupplierHandler struct {
	uc     usecase.SupplierUsecase
	logger *slog.Logger
}

// NewSupplierHandler is the constructor for SupplierHandler, injected by Fx.
func NewSupplierHandler(uc usecase.SupplierUsecase, logger *slog.Logger) *SupplierHandler {
	return &SupplierHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the single-supplier registration request.
func (h *SupplierHandler) Create(c echo.Context) error {
	var input *usecase.CreateLegalEntityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de cadastro inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Fornecedor cadastrado com sucesso")
}

// CreateBatch handles the batch registration request. Items are independent:
// the response carries per-item successes and errors, never a global failure.
func (h *SupplierHandler) CreateBatch(c echo.Context) error {
	var inputs []*usecase.CreateLegalEntityInput
	if err := c.Bind(&inputs); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de cadastro em lote inválidos")
	}
	for _, input := range inputs {
		if err := c.Validate(input); err != nil {
			return errors.WithStack(err)
		}
	}

	result, err := h.uc.CreateBatch(c.Request().Context(), inputs)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Lote processado")
}

// Get handles the single supplier read.
func (h *SupplierHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// List handles the filtered supplier listing.
func (h *SupplierHandler) List(c echo.Context) error {
	var input usecase.ListLegalEntityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Filtros de consulta inválidos")
	}

	outputs, err := h.uc.List(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "")
}

// Update handles the partial update request.
func (h *SupplierHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var patch *usecase.LegalEntityPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de atualização inválidos")
	}
	if err := c.Validate(patch); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Update(c.Request().Context(), id, patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Fornecedor atualizado com sucesso")
}

// Deactivate handles the soft-delete request.
func (h *SupplierHandler) Deactivate(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.LifecycleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Motivo de exclusão inválido")
	}

	if err := h.uc.Deactivate(c.Request().Context(), id, input.Motivo); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Fornecedor excluído com sucesso")
}

// Reactivate handles the reactivation request.
func (h *SupplierHandler) Reactivate(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.LifecycleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Motivo de reativação inválido")
	}

	if err := h.uc.Reactivate(c.Request().Context(), id, input.Motivo); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Fornecedor reativado com sucesso")
}
