package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kennelhouse/kennel-backend/internal/config"
	"github.com/kennelhouse/kennel-backend/internal/handler"
	"github.com/kennelhouse/kennel-backend/internal/middleware"
	"github.com/kennelhouse/kennel-backend/internal/model"
	"github.com/kennelhouse/kennel-backend/internal/response"
	"github.com/rs/zerolog"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth    *handler.AuthHandler
	Dog     *handler.DogHandler
	Litter  *handler.LitterHandler
	Gallery *handler.GalleryHandler
	Message *handler.MessageHandler
}

// SetupRouter configures the engine. Each resource lives on a single path and
// dispatches on method; admin-only methods sit behind RequireRole.
func SetupRouter(
	cfg *config.Config,
	handlers *Handlers,
	az middleware.Authorizer,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(gin.Recovery())
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.AllowAnyOrigin())

	router.NoMethod(handler.MethodNotAllowed)
	router.NoRoute(handler.NotFound)

	// Health check.
	router.GET("/health", handler.Health)

	admin := middleware.RequireRole(az, model.RoleAdmin)

	api := router.Group("/api")

	// ─── Auth ──────────────────────────────────────────────────────────
	authCORS := middleware.NewCORSPolicy(middleware.AuthAllowHeaders, http.MethodPost)
	auth := api.Group("/auth", authCORS.Middleware())
	{
		auth.OPTIONS("", authCORS.Preflight)
		auth.POST("", handlers.Auth.Authenticate)
	}

	// ─── Dogs ──────────────────────────────────────────────────────────
	dogCORS := middleware.NewCORSPolicy(middleware.ResourceAllowHeaders,
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete)
	dogs := api.Group("/dogs", dogCORS.Middleware())
	{
		dogs.OPTIONS("", dogCORS.Preflight)
		dogs.GET("", handlers.Dog.List)
		dogs.POST("", admin, handlers.Dog.Create)
		dogs.PUT("", admin, handlers.Dog.Update)
		dogs.DELETE("", admin, handlers.Dog.Delete)
	}

	// ─── Litters ───────────────────────────────────────────────────────
	litterCORS := middleware.NewCORSPolicy(middleware.ResourceAllowHeaders,
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete)
	litters := api.Group("/litters", litterCORS.Middleware())
	{
		litters.OPTIONS("", litterCORS.Preflight)
		litters.GET("", handlers.Litter.List)
		litters.POST("", admin, handlers.Litter.Create)
		litters.PUT("", admin, handlers.Litter.Update)
		litters.DELETE("", admin, handlers.Litter.Delete)
	}

	// ─── Gallery ───────────────────────────────────────────────────────
	galleryCORS := middleware.NewCORSPolicy(middleware.ResourceAllowHeaders,
		http.MethodGet, http.MethodPost, http.MethodDelete)
	gallery := api.Group("/gallery", galleryCORS.Middleware())
	{
		gallery.OPTIONS("", galleryCORS.Preflight)
		gallery.GET("", handlers.Gallery.List)
		gallery.POST("", admin, handlers.Gallery.Create)
		gallery.DELETE("", admin, handlers.Gallery.Delete)
	}

	// ─── Messages ──────────────────────────────────────────────────────
	// Anyone may post the contact form; only admins read the inbox.
	messageCORS := middleware.NewCORSPolicy(middleware.ResourceAllowHeaders,
		http.MethodGet, http.MethodPost)
	messages := api.Group("/messages", messageCORS.Middleware())
	{
		messages.OPTIONS("", messageCORS.Preflight)
		messages.GET("", admin, handlers.Message.List)
		messages.POST("", handlers.Message.Create)
	}

	return router
}
