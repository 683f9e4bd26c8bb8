// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"neabi/internal/delivery/http/middleware"
	"neabi/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PingHandler    *handler.PingHandler
	AuthHandler    *handler.AuthHandler
	PostHandler    *handler.PostHandler
	EventHandler   *handler.EventHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	pingHandler    *handler.PingHandler
	authHandler    *handler.AuthHandler
	postHandler    *handler.PostHandler
	eventHandler   *handler.EventHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pingHandler:    params.PingHandler,
		authHandler:    params.AuthHandler,
		postHandler:    params.PostHandler,
		eventHandler:   params.EventHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/ping", r.pingHandler.Ping)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register", r.authHandler.Register,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
		authGroup.GET("/profile", r.authHandler.Profile, r.authMiddleware.Authenticate)
		authGroup.GET("/verify", r.authHandler.Verify, r.authMiddleware.Authenticate)
		authGroup.PUT("/change-password", r.authHandler.ChangePassword, r.authMiddleware.Authenticate)
	}

	postGroup := api.Group("/posts")
	{
		postGroup.GET("", r.postHandler.List)
		postGroup.GET("/meta/categories", r.postHandler.Categories)
		postGroup.GET("/meta/tags", r.postHandler.Tags)
		postGroup.GET("/:slug", r.postHandler.GetBySlug)
		postGroup.POST("", r.postHandler.Create,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
		postGroup.PUT("/:id", r.postHandler.Update,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
		postGroup.DELETE("/:id", r.postHandler.Delete,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
	}

	eventGroup := api.Group("/events")
	{
		eventGroup.GET("", r.eventHandler.List)
		eventGroup.GET("/meta/categories", r.eventHandler.Categories)
		eventGroup.GET("/meta/stats", r.eventHandler.Stats,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
		eventGroup.GET("/:slug", r.eventHandler.GetBySlug)
		eventGroup.POST("", r.eventHandler.Create,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
		eventGroup.PUT("/:id", r.eventHandler.Update,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
		eventGroup.DELETE("/:id", r.eventHandler.Delete,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
		eventGroup.POST("/:id/register", r.eventHandler.Register, r.authMiddleware.Authenticate)
	}
}
