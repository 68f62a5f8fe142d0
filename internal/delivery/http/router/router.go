// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"agenda/internal/delivery/http/middleware"
	"agenda/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	TaskHandler    *handler.TaskHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	taskHandler    *handler.TaskHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		taskHandler:    params.TaskHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public identity routes
	api.POST("/register", r.authHandler.Register)
	api.POST("/login", r.authHandler.Login)
	api.POST("/auth/external", r.authHandler.ExternalAuth)
	api.POST("/logout", r.authHandler.Logout)

	// Routes that require an authenticated session
	authed := api.Group("")
	authed.Use(r.authMiddleware.Authenticate)
	{
		authed.GET("/user", r.authHandler.CurrentUser)
		authed.GET("/todos", r.taskHandler.List)
		authed.POST("/todos", r.taskHandler.Create)
		authed.PATCH("/todos/:id", r.taskHandler.Update)
		authed.DELETE("/todos/:id", r.taskHandler.Delete)
	}
}
