package handler

import (
	"log/slog"
	"net/http"

	"registro/internal/delivery/http/response"
	"registro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotaryHandler holds dependencies for notary-office routes.
type NotaryHandler struct {
	uc     usecase.NotaryUsecase
	logger *slog.Logger
}

// NewNotaryHandler is the constructor for NotaryHandler, injected by Fx.
func NewNotaryHandler(uc usecase.NotaryUsecase, logger *slog.Logger) *NotaryHandler {
	return &NotaryHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the notary-office registration request.
func (h *NotaryHandler) Create(c echo.Context) error {
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

	return response.Success(c, http.StatusCreated, output, "Cartório cadastrado com sucesso")
}

// Get handles the single notary-office read.
func (h *NotaryHandler) Get(c echo.Context) error {
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

// List handles the filtered notary-office listing.
func (h *NotaryHandler) List(c echo.Context) error {
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
func (h *NotaryHandler) Update(c echo.Context) error {
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

	return response.Success(c, http.StatusOK, output, "Cartório atualizado com sucesso")
}

// Deactivate handles the soft-delete request; the motivo is mandatory and
// cascades over the whole graph.
func (h *NotaryHandler) Deactivate(c echo.Context) error {
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

	return response.Success(c, http.StatusOK, nil, "Cartório excluído com sucesso")
}

// Reactivate handles the reactivation request, restoring the root rows only.
func (h *NotaryHandler) Reactivate(c echo.Context) error {
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

	return response.Success(c, http.StatusOK, nil, "Cartório reativado com sucesso")
}
