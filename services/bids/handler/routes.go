package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rentride/rentride/internal/pkg/middleware"
	"github.com/rentride/rentride/internal/pkg/models"
	"github.com/rentride/rentride/services/bids/handler/http"
)

// Handler coordinates the HTTP handlers for the bid service
type Handler struct {
	bidHandler *http.BidHandler
	cfg        *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(bidHandler *http.BidHandler, cfg *models.Config) *Handler {
	return &Handler{
		bidHandler: bidHandler,
		cfg:        cfg,
	}
}

// RegisterRoutes registers bid routes. Bidding requires a driver token;
// accepting is done by the rent owner or an admin.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	jwtAuth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	bidGroup := e.Group("/api/bids", jwtAuth)
	bidGroup.POST("", h.bidHandler.CreateBid, middleware.RequireRoles(models.RoleDriver, models.RoleAdmin))
	bidGroup.GET("", h.bidHandler.ListBids)
	bidGroup.GET("/:id", h.bidHandler.GetBid)
	bidGroup.PUT("/:id", h.bidHandler.UpdateBid)
	bidGroup.DELETE("/:id", h.bidHandler.DeleteBid)
	bidGroup.PUT("/:id/accept", h.bidHandler.AcceptBid)
}
