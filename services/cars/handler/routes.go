package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rentride/rentride/internal/pkg/middleware"
	"github.com/rentride/rentride/internal/pkg/models"
	"github.com/rentride/rentride/services/cars/handler/http"
)

// Handler coordinates the HTTP handlers for the car service
type Handler struct {
	carHandler *http.CarHandler
	cfg        *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(carHandler *http.CarHandler, cfg *models.Config) *Handler {
	return &Handler{
		carHandler: carHandler,
		cfg:        cfg,
	}
}

// RegisterRoutes registers car catalog routes. Browsing is public; catalog
// management requires an admin token.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	jwtAuth := middleware.JWTAuthMiddleware(h.cfg.JWT)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	carGroup := e.Group("/api/cars")
	carGroup.GET("", h.carHandler.ListCars)
	carGroup.GET("/:id", h.carHandler.GetCar)
	carGroup.POST("", h.carHandler.CreateCar, jwtAuth, adminOnly)
	carGroup.PUT("/:id", h.carHandler.UpdateCar, jwtAuth, adminOnly)
	carGroup.DELETE("/:id", h.carHandler.DeleteCar, jwtAuth, adminOnly)
}
