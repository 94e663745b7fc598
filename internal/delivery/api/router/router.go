// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strings"

	"pinmap/config"
	"pinmap/internal/delivery/api/middleware"
	"pinmap/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	BookmarkHandler     *handler.BookmarkHandler
	ShareHandler        *handler.ShareHandler
	SystemHandler       *handler.SystemHandler
	SessionMiddleware   *middleware.SessionMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	bookmarkHandler     *handler.BookmarkHandler
	shareHandler        *handler.ShareHandler
	systemHandler       *handler.SystemHandler
	sessionMiddleware   *middleware.SessionMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		bookmarkHandler:     params.BookmarkHandler,
		shareHandler:        params.ShareHandler,
		systemHandler:       params.SystemHandler,
		sessionMiddleware:   params.SessionMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Login flow, rate limited per client IP
	authGroup := e.Group("/auth")
	authGroup.Use(r.rateLimitMiddleware.Handle)
	{
		authGroup.GET("/login", r.authHandler.Login)
		authGroup.GET("/callback", r.authHandler.Callback)
		authGroup.POST("/logout", r.authHandler.Logout, r.sessionMiddleware.Load)
		authGroup.GET("/me", r.authHandler.Me, r.sessionMiddleware.Authenticate)
	}

	// Public API routes
	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/config", r.systemHandler.ClientConfig)
		apiGroup.GET("/share", r.shareHandler.DecodeSharedPlace)
	}

	// Bookmark routes, scoped to the session's user
	bookmarksGroup := apiGroup.Group("/bookmarks")
	bookmarksGroup.Use(r.sessionMiddleware.Authenticate)
	{
		bookmarksGroup.GET("", r.bookmarkHandler.ListBookmarks)
		bookmarksGroup.POST("", r.bookmarkHandler.CreateBookmark)
		bookmarksGroup.GET("/:id", r.bookmarkHandler.GetBookmark)
		bookmarksGroup.PUT("/:id", r.bookmarkHandler.UpdateBookmark)
		bookmarksGroup.DELETE("/:id", r.bookmarkHandler.DeleteBookmark)
		bookmarksGroup.GET("/:id/share", r.shareHandler.ShareBookmark)
		bookmarksGroup.GET("/:id/share/qr", r.shareHandler.ShareBookmarkQR)
	}
}

// RegisterStatic serves the browser front-end when a static directory is configured.
// Unknown paths outside /api and /auth fall back to index.html.
func (r *router) RegisterStatic(e *echo.Echo) {
	if r.config.HTTP.StaticDir == "" {
		return
	}

	e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
		Root:  r.config.HTTP.StaticDir,
		HTML5: true,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path

			return strings.HasPrefix(path, "/api") || strings.HasPrefix(path, "/auth") || path == "/health"
		},
	}))
}
