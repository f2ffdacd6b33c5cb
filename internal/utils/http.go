package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"costera/internal/pkg/apperrors"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Code      int    `json:"code,omitempty"`
	Field     string `json:"field,omitempty"`
	Remaining *int   `json:"remaining,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response with an explicit status
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// AppErrorResponse maps a typed application error to its HTTP response.
// Infrastructure causes are never echoed back to the caller.
func AppErrorResponse(c echo.Context, err error) error {
	appErr := apperrors.From(err)

	resp := ErrorResponse{
		Success:   false,
		Error:     appErr.Message,
		Code:      appErr.HTTPStatus(),
		Field:     appErr.Field,
		Retryable: appErr.Retryable(),
	}
	if appErr.Kind == apperrors.KindCapacity {
		remaining := appErr.Remaining
		resp.Remaining = &remaining
	}
	if appErr.Kind == apperrors.KindInfrastructure {
		resp.Error = "internal error"
	}

	return c.JSON(appErr.HTTPStatus(), resp)
}
