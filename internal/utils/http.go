package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/apperr"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/logger"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 error response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 error response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// ForbiddenResponse sends a 403 error response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// NotFoundResponse sends a 404 error response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// AppErrorResponse maps an error through the operational taxonomy. Expected
// errors keep their stable code and message; anything else logs with full
// context and surfaces as a generic 500.
func AppErrorResponse(c echo.Context, err error) error {
	code := apperr.CodeOf(err)
	if code == http.StatusInternalServerError {
		logger.Error("unexpected error",
			logger.String("path", c.Path()),
			logger.String("method", c.Request().Method),
			logger.Err(err))
	}
	return ErrorResponseHandler(c, code, apperr.MessageOf(err))
}
