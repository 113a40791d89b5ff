// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"registro/internal/delivery/http/middleware"
	"registro/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NotaryHandler     *handler.NotaryHandler
	SupplierHandler   *handler.SupplierHandler
	PersonHandler     *handler.PersonHandler
	ProfileHandler    *handler.ProfileHandler
	PermissionHandler *handler.PermissionHandler

	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	notaryHandler     *handler.NotaryHandler
	supplierHandler   *handler.SupplierHandler
	personHandler     *handler.PersonHandler
	profileHandler    *handler.ProfileHandler
	permissionHandler *handler.PermissionHandler

	requestIDMiddleware *middleware.RequestIDMiddleware
	loggerMiddleware    *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		notaryHandler:       params.NotaryHandler,
		supplierHandler:     params.SupplierHandler,
		personHandler:       params.PersonHandler,
		profileHandler:      params.ProfileHandler,
		permissionHandler:   params.PermissionHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
		loggerMiddleware:    params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Notary offices
	notaryGroup := e.Group("/cartorios")
	{
		notaryGroup.POST("", r.notaryHandler.Create)
		notaryGroup.GET("", r.notaryHandler.List)
		notaryGroup.GET("/:id", r.notaryHandler.Get)
		notaryGroup.PATCH("/:id", r.notaryHandler.Update)
		notaryGroup.DELETE("/:id", r.notaryHandler.Deactivate)
		notaryGroup.POST("/:id/reativar", r.notaryHandler.Reactivate)
	}

	// Suppliers, including the batch entrypoint
	supplierGroup := e.Group("/fornecedores")
	{
		supplierGroup.POST("", r.supplierHandler.Create)
		supplierGroup.POST("/lote", r.supplierHandler.CreateBatch)
		supplierGroup.GET("", r.supplierHandler.List)
		supplierGroup.GET("/:id", r.supplierHandler.Get)
		supplierGroup.PATCH("/:id", r.supplierHandler.Update)
		supplierGroup.DELETE("/:id", r.supplierHandler.Deactivate)
		supplierGroup.POST("/:id/reativar", r.supplierHandler.Reactivate)
	}

	// Standalone natural persons
	personGroup := e.Group("/pessoas")
	{
		personGroup.POST("", r.personHandler.Create)
		personGroup.GET("", r.personHandler.List)
		personGroup.GET("/:id", r.personHandler.Get)
		personGroup.PATCH("/:id", r.personHandler.Update)
		personGroup.DELETE("/:id", r.personHandler.Deactivate)
		personGroup.POST("/:id/reativar", r.personHandler.Reactivate)
	}

	// Profiles, including the batch entrypoint and permission-tree resolution
	profileGroup := e.Group("/perfis")
	{
		profileGroup.POST("", r.profileHandler.Create)
		profileGroup.POST("/lote", r.profileHandler.CreateBatch)
		profileGroup.GET("/:id/modulos-permissoes", r.permissionHandler.ResolveTree)
	}
}
