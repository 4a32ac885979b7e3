package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentride/rentride/internal/pkg/logger"
	"github.com/rentride/rentride/internal/pkg/models"
	"github.com/rentride/rentride/internal/utils"
	"github.com/rentride/rentride/services/users"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	userUC users.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC) *AuthHandler {
	return &AuthHandler{
		userUC: userUC,
	}
}

// Login handles login requests. Unknown emails are registered on the fly.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Login failed",
			logger.ErrorField(err),
			logger.String("email", req.Email),
		)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", resp)
}

// Register handles explicit registration requests
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", user)
}

// RefreshToken handles refresh-token rotation requests
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req models.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.RefreshToken == "" {
		return utils.BadRequestResponse(c, "Refresh token is required")
	}

	resp, err := h.userUC.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Token refreshed successfully", resp)
}
