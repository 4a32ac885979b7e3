package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rentride/rentride/internal/pkg/logger"
	"github.com/rentride/rentride/internal/pkg/models"
	"github.com/rentride/rentride/internal/utils"
	"github.com/rentride/rentride/services/users"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// CreateUser handles user creation requests
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for user creation",
			logger.ErrorField(err),
			logger.String("endpoint", "CreateUser"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to create user",
			logger.ErrorField(err),
			logger.String("email", req.Email),
		)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User created successfully", user)
}

// GetUser handles user retrieval requests
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	user, err := h.userUC.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}

// ListUsers handles paginated user listing requests
func (h *UserHandler) ListUsers(c echo.Context) error {
	q := models.ParseListQuery(c.QueryParams())

	userList, meta, err := h.userUC.ListUsers(c.Request().Context(), q)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.PaginatedResponse(c, http.StatusOK, "Users retrieved successfully", userList, meta)
}

// UpdateUser handles partial user update requests
func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var upd models.UserUpdate
	if err := c.Bind(&upd); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), userID, &upd)
	if err != nil {
		logger.Error("Failed to update user",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()),
		)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User updated successfully", user)
}

// DeleteUser handles user deletion requests
func (h *UserHandler) DeleteUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), userID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", nil)
}
