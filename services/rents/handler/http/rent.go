package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rentride/rentride/internal/pkg/logger"
	"github.com/rentride/rentride/internal/pkg/models"
	"github.com/rentride/rentride/internal/utils"
	"github.com/rentride/rentride/services/rents"
)

// RentHandler handles HTTP requests for rental requests
type RentHandler struct {
	rentUC rents.RentUC
}

// NewRentHandler creates a new rent handler
func NewRentHandler(rentUC rents.RentUC) *RentHandler {
	return &RentHandler{
		rentUC: rentUC,
	}
}

// CreateRent handles rental request creation. The owner is taken from the
// access token, not from the payload.
func (h *RentHandler) CreateRent(c echo.Context) error {
	var rent models.Rent
	if err := c.Bind(&rent); err != nil {
		logger.Warn("Invalid request payload for rent creation", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rent.UserID = userID

	created, err := h.rentUC.CreateRent(c.Request().Context(), &rent)
	if err != nil {
		logger.Error("Failed to create rent", logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Rent created successfully", created)
}

// GetRent handles rent retrieval requests
func (h *RentHandler) GetRent(c echo.Context) error {
	rentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid rent ID")
	}

	rent, err := h.rentUC.GetRentByID(c.Request().Context(), rentID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rent retrieved successfully", rent)
}

// ListRents handles paginated rent listing requests
func (h *RentHandler) ListRents(c echo.Context) error {
	q := models.ParseListQuery(c.QueryParams())

	rentList, meta, err := h.rentUC.ListRents(c.Request().Context(), q)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.PaginatedResponse(c, http.StatusOK, "Rents retrieved successfully", rentList, meta)
}

// UpdateRent handles partial rent update requests
func (h *RentHandler) UpdateRent(c echo.Context) error {
	rentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid rent ID")
	}

	var upd models.RentUpdate
	if err := c.Bind(&upd); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	rent, err := h.rentUC.UpdateRent(c.Request().Context(), rentID, &upd)
	if err != nil {
		logger.Error("Failed to update rent",
			logger.ErrorField(err),
			logger.String("rent_id", rentID.String()),
		)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rent updated successfully", rent)
}

// DeleteRent handles rent deletion requests
func (h *RentHandler) DeleteRent(c echo.Context) error {
	rentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid rent ID")
	}

	if err := h.rentUC.DeleteRent(c.Request().Context(), rentID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rent deleted successfully", nil)
}
