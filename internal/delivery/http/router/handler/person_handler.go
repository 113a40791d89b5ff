package handler

import (
	"log/slog"
	"net/http"

	"registro/internal/delivery/http/response"
	"registro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PersonHandler holds dependencies for natural-person routes.
type PersonHandler struct {
	uc     usecase.PersonUsecase
	logger *slog.Logger
}

// NewPersonHandler is the constructor for PersonHandler, injected by Fx.
func NewPersonHandler(uc usecase.PersonUsecase, logger *slog.Logger) *PersonHandler {
	return &PersonHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the natural-person registration request.
func (h *PersonHandler) Create(c echo.Context) error {
	var input *usecase.CreatePersonInput
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

	return response.Success(c, http.StatusCreated, output, "Pessoa cadastrada com sucesso")
}

// Get handles the single natural-person read.
func (h *PersonHandler) Get(c echo.Context) error {
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

// List handles the filtered natural-person listing.
func (h *PersonHandler) List(c echo.Context) error {
	var input usecase.ListPersonInput
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
func (h *PersonHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var patch *usecase.PersonPatch
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

	return response.Success(c, http.StatusOK, output, "Pessoa atualizada com sucesso")
}

// Deactivate handles the soft-delete request.
func (h *PersonHandler) Deactivate(c echo.Context) error {
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

	return response.Success(c, http.StatusOK, nil, "Pessoa excluída com sucesso")
}

// Reactivate handles the reactivation request.
func (h *PersonHandler) Reactivate(c echo.Context) error {
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

	return response.Success(c, http.StatusOK, nil, "Pessoa reativada com sucesso")
}
