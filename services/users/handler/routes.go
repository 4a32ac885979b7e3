package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rentride/rentride/internal/pkg/middleware"
	"github.com/rentride/rentride/internal/pkg/models"
	"github.com/rentride/rentride/services/users/handler/http"
)

// Handler coordinates the HTTP handlers for the user service
type Handler struct {
	userHandler *http.UserHandler
	authHandler *http.AuthHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	userHandler *http.UserHandler,
	authHandler *http.AuthHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		userHandler: userHandler,
		authHandler: authHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers auth and user routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	jwtAuth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	// Public routes (no authentication required)
	authGroup := e.Group("/api/auth")
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/refresh-token", h.authHandler.RefreshToken)

	userGroup := e.Group("/api/users", jwtAuth)
	userGroup.POST("", h.userHandler.CreateUser, middleware.RequireRoles(models.RoleAdmin))
	userGroup.GET("", h.userHandler.ListUsers, middleware.RequireRoles(models.RoleAdmin))
	userGroup.GET("/:id", h.userHandler.GetUser)
	userGroup.PUT("/:id", h.userHandler.UpdateUser)
	userGroup.DELETE("/:id", h.userHandler.DeleteUser, middleware.RequireRoles(models.RoleAdmin))
}
