package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rentride/rentride/internal/pkg/logger"
	"github.com/rentride/rentride/internal/pkg/models"
	"github.com/rentride/rentride/internal/utils"
	"github.com/rentride/rentride/services/payments"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payments.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payments.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// CreateIntent handles payment intent creation requests
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req models.PaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.RentID == uuid.Nil {
		return utils.BadRequestResponse(c, "Rent ID is required")
	}

	result, err := h.paymentUC.CreatePaymentIntent(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to create payment intent",
			logger.ErrorField(err),
			logger.String("rent_id", req.RentID.String()),
		)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Payment intent created successfully", result)
}

// Confirm handles payment confirmation requests
func (h *PaymentHandler) Confirm(c echo.Context) error {
	var req models.PaymentConfirmRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.RentID == uuid.Nil {
		return utils.BadRequestResponse(c, "Rent ID is required")
	}

	payment, err := h.paymentUC.ConfirmPayment(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to confirm payment",
			logger.ErrorField(err),
			logger.String("rent_id", req.RentID.String()),
			logger.String("transaction_id", req.TransactionID),
		)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment confirmed successfully", payment)
}
