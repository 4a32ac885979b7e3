package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rentride/rentride/internal/pkg/middleware"
	"github.com/rentride/rentride/internal/pkg/models"
	"github.com/rentride/rentride/services/payments/handler/http"
)

// Handler coordinates the HTTP handlers for the payment service
type Handler struct {
	paymentHandler *http.PaymentHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(paymentHandler *http.PaymentHandler, cfg *models.Config) *Handler {
	return &Handler{
		paymentHandler: paymentHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers payment routes. All of them require a valid token.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	jwtAuth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	paymentGroup := e.Group("/api/payments", jwtAuth)
	paymentGroup.POST("/create-intent", h.paymentHandler.CreateIntent)
	paymentGroup.POST("/confirm", h.paymentHandler.Confirm)
}
