package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rentride/rentride/internal/pkg/apperrors"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success      bool               `json:"success"`
	Message      string             `json:"message"`
	ErrorSources []apperrors.Source `json:"errorSources"`
	Stack        string             `json:"stack,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// PaginatedResponse sends a success response with data and pagination metadata
func PaginatedResponse(c echo.Context, statusCode int, message string, data interface{}, meta interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Message: message,
		ErrorSources: []apperrors.Source{
			{Path: "", Message: message},
		},
	})
}

// AppErrorResponse renders a typed domain error into the error envelope.
// Errors that are not *AppError become a 500 with a generic message.
func AppErrorResponse(c echo.Context, err error) error {
	ae, ok := apperrors.As(err)
	if !ok {
		ae = apperrors.NewInternal(err)
	}

	sources := ae.Sources
	if len(sources) == 0 {
		sources = []apperrors.Source{{Path: "", Message: ae.Message}}
	}

	return c.JSON(ae.Status, ErrorResponse{
		Success:      false,
		Message:      ae.Message,
		ErrorSources: sources,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, message string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, message)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, message)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, message)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, message)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, message)
}
