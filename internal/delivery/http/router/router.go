// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"atlas/config"
	"atlas/internal/delivery/http/middleware"
	"atlas/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler and route-level middleware, injected by Fx.
type RouterParams struct {
	fx.In

	Config          *config.Config
	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	WorldHandler    *handler.WorldHandler
	LocationHandler *handler.LocationHandler
	FileHandler     *handler.FileHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg             *config.Config
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	worldHandler    *handler.WorldHandler
	locationHandler *handler.LocationHandler
	fileHandler     *handler.FileHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:             params.Config,
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		worldHandler:    params.WorldHandler,
		locationHandler: params.LocationHandler,
		fileHandler:     params.FileHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Uploaded files are served directly from the storage directory.
	staticDir := "static"
	if r.cfg.Storage != nil && r.cfg.Storage.Dir != "" {
		staticDir = r.cfg.Storage.Dir
	}
	e.Static("/static", staticDir)

	api := e.Group("/api")
	authRequired := r.authMiddleware.Authenticate

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	userGroup := api.Group("/users")
	{
		userGroup.GET("", r.userHandler.List)
		userGroup.GET("/me", r.userHandler.GetMe, authRequired)
		userGroup.PATCH("/me", r.userHandler.UpdateMe, authRequired)
		userGroup.GET("/:id", r.userHandler.GetByID)
		userGroup.DELETE("/:id", r.userHandler.Delete, authRequired)
	}

	worldGroup := api.Group("/worlds")
	{
		worldGroup.GET("", r.worldHandler.List)
		worldGroup.POST("", r.worldHandler.Create, authRequired)
		worldGroup.GET("/:id", r.worldHandler.GetByID)
		worldGroup.PATCH("/:id", r.worldHandler.Update, authRequired)
		worldGroup.DELETE("/:id", r.worldHandler.Delete, authRequired)
		worldGroup.POST("/:id/favourite", r.worldHandler.AddFavourite, authRequired)
		worldGroup.DELETE("/:id/favourite", r.worldHandler.RemoveFavourite, authRequired)
	}

	locationGroup := api.Group("/locations")
	{
		locationGroup.GET("", r.locationHandler.List)
		locationGroup.POST("", r.locationHandler.Create, authRequired)
		locationGroup.GET("/:id", r.locationHandler.GetByID)
		locationGroup.PATCH("/:id", r.locationHandler.Update, authRequired)
		locationGroup.DELETE("/:id", r.locationHandler.Delete, authRequired)
		locationGroup.GET("/:id/images", r.locationHandler.ListImages)
		locationGroup.POST("/:id/images", r.locationHandler.AttachImage, authRequired)
		locationGroup.DELETE("/:id/images", r.locationHandler.DetachImage, authRequired)
	}

	fileGroup := api.Group("/files")
	{
		fileGroup.GET("", r.fileHandler.List)
		fileGroup.POST("/upload", r.fileHandler.Upload, authRequired)
	}
}
