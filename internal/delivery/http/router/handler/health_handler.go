// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"registro/internal/delivery/http/response"
	domainerrors "registro/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// parseID reads the numeric id path parameter shared by every resource route.
func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id")
	}

	return id, nil
}
