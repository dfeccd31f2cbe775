package utils

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/epickup/epickup-backend/internal/pkg/apperrors"
)

// Response is the standard API envelope
type Response struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ErrorBody  `json:"error,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// ErrorBody carries a stable machine-readable code plus a human message
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// SuccessResponse sends a success envelope with data
func SuccessResponse(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

// ErrorResponse sends an error envelope with an explicit status and code
func ErrorResponse(c echo.Context, statusCode int, code, message string) error {
	return c.JSON(statusCode, Response{
		Success:   false,
		Error:     &ErrorBody{Code: code, Message: message},
		Timestamp: time.Now().UTC(),
	})
}

// AppErrorResponse maps a typed application error onto the envelope.
// Internal causes never reach the client; only the stable code and
// message do.
func AppErrorResponse(c echo.Context, err error) error {
	appErr := apperrors.From(err)
	return ErrorResponse(c, appErr.Status, appErr.Code, appErr.Message)
}

// BadRequestResponse sends a 400 Bad Request envelope
func BadRequestResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusBadRequest, apperrors.CodeBadRequest, message)
}

// UnauthorizedResponse sends a 401 Unauthorized envelope
func UnauthorizedResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Unauthorized"
	}
	return ErrorResponse(c, http.StatusUnauthorized, apperrors.CodeUnauthorized, message)
}

// ForbiddenResponse sends a 403 Forbidden envelope
func ForbiddenResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Forbidden"
	}
	return ErrorResponse(c, http.StatusForbidden, apperrors.CodeForbidden, message)
}
