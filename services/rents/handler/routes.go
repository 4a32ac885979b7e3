package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rentride/rentride/internal/pkg/middleware"
	"github.com/rentride/rentride/internal/pkg/models"
	"github.com/rentride/rentride/services/rents/handler/http"
)

// Handler coordinates the HTTP handlers for the rent service
type Handler struct {
	rentHandler *http.RentHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(rentHandler *http.RentHandler, cfg *models.Config) *Handler {
	return &Handler{
		rentHandler: rentHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers rent routes. All of them require a valid token.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	jwtAuth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	rentGroup := e.Group("/api/rents", jwtAuth)
	rentGroup.POST("", h.rentHandler.CreateRent)
	rentGroup.GET("", h.rentHandler.ListRents)
	rentGroup.GET("/:id", h.rentHandler.GetRent)
	rentGroup.PUT("/:id", h.rentHandler.UpdateRent)
	rentGroup.DELETE("/:id", h.rentHandler.DeleteRent)
}
