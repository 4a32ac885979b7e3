package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rentride/rentride/internal/pkg/logger"
	"github.com/rentride/rentride/internal/pkg/models"
	"github.com/rentride/rentride/internal/utils"
	"github.com/rentride/rentride/services/cars"
)

// CarHandler handles HTTP requests for the car catalog
type CarHandler struct {
	carUC cars.CarUC
}

// NewCarHandler creates a new car handler
func NewCarHandler(carUC cars.CarUC) *CarHandler {
	return &CarHandler{
		carUC: carUC,
	}
}

// CreateCar handles car creation requests
func (h *CarHandler) CreateCar(c echo.Context) error {
	var car models.Car
	if err := c.Bind(&car); err != nil {
		logger.Warn("Invalid request payload for car creation", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	created, err := h.carUC.CreateCar(c.Request().Context(), &car)
	if err != nil {
		logger.Error("Failed to create car", logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Car created successfully", created)
}

// GetCar handles car retrieval requests
func (h *CarHandler) GetCar(c echo.Context) error {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid car ID")
	}

	car, err := h.carUC.GetCarByID(c.Request().Context(), carID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Car retrieved successfully", car)
}

// ListCars handles paginated catalog listing requests
func (h *CarHandler) ListCars(c echo.Context) error {
	q := models.ParseListQuery(c.QueryParams())

	carList, meta, err := h.carUC.ListCars(c.Request().Context(), q)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.PaginatedResponse(c, http.StatusOK, "Cars retrieved successfully", carList, meta)
}

// UpdateCar handles partial car update requests
func (h *CarHandler) UpdateCar(c echo.Context) error {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid car ID")
	}

	var upd models.CarUpdate
	if err := c.Bind(&upd); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	car, err := h.carUC.UpdateCar(c.Request().Context(), carID, &upd)
	if err != nil {
		logger.Error("Failed to update car",
			logger.ErrorField(err),
			logger.String("car_id", carID.String()),
		)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Car updated successfully", car)
}

// DeleteCar handles car deletion requests
func (h *CarHandler) DeleteCar(c echo.Context) error {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid car ID")
	}

	if err := h.carUC.DeleteCar(c.Request().Context(), carID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Car deleted successfully", nil)
}
