package handler

import (
	"log/slog"
	"net/http"

	"registro/internal/delivery/http/response"
	"registro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile routes.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the single profile registration request.
func (h *ProfileHandler) Create(c echo.Context) error {
	var input *usecase.CreateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de perfil inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Perfil cadastrado com sucesso")
}

// CreateBatch handles the batch profile registration. Items are processed
// independently; the body carries per-item successes and errors.
func (h *ProfileHandler) CreateBatch(c echo.Context) error {
	var inputs []*usecase.CreateProfileInput
	if err := c.Bind(&inputs); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Lote de perfis inválido")
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
