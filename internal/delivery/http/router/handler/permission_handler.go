package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"registro/internal/delivery/http/response"
	domainerrors "registro/internal/domain/errors"
	"registro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PermissionHandler holds dependencies for permission-tree routes.
type PermissionHandler struct {
	uc     usecase.PermissionUsecase
	logger *slog.Logger
}

// NewPermissionHandler is the constructor for PermissionHandler, injected by Fx.
func NewPermissionHandler(uc usecase.PermissionUsecase, logger *slog.Logger) *PermissionHandler {
	return &PermissionHandler{
		uc:     uc,
		logger: logger,
	}
}

// ResolveTree handles the permission-tree resolution request: profile id on
// the path, system and company on the query string.
func (h *PermissionHandler) ResolveTree(c echo.Context) error {
	profileID, err := parseID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	systemID, err := requiredQueryID(c, "id_sistema")
	if err != nil {
		return errors.WithStack(err)
	}
	legalEntityID, err := requiredQueryID(c, "id_pessoa_juridica")
	if err != nil {
		return errors.WithStack(err)
	}

	tree, err := h.uc.ResolveTree(c.Request().Context(), profileID, systemID, legalEntityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tree, "")
}

// requiredQueryID reads a mandatory positive numeric query parameter.
func requiredQueryID(c echo.Context, name string) (int64, error) {
	value, err := strconv.ParseInt(c.QueryParam(name), 10, 64)
	if err != nil || value <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name)
	}

	return value, nil
}
