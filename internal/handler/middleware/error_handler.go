package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "internal server error"

type AppError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(statusCode int, message string, err error) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// CustomHTTPErrorHandler はエラーを {"error": "..."} 形式のJSONに変換し、ステータスに応じたレベルでログに残す
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	requestID := c.Response().Header().Get(echo.HeaderXRequestID)

	var statusCode int
	var message string
	var originalErr error

	var appErr *AppError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		statusCode = appErr.StatusCode
		message = appErr.Message
		originalErr = appErr.Err
	case errors.As(err, &httpErr):
		statusCode = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = internalErrorMessage
		}
		originalErr = err
	default:
		statusCode = http.StatusInternalServerError
		message = internalErrorMessage
		originalErr = err
	}

	logAttrs := []any{
		"request_id", requestID,
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"status", statusCode,
	}
	if originalErr != nil {
		logAttrs = append(logAttrs, "error", originalErr)
	}

	if statusCode >= 500 {
		slog.Error("server error", logAttrs...)
	} else if statusCode >= 400 {
		slog.Warn("client error", logAttrs...)
	}

	if c.Request().Method == http.MethodHead {
		if noContentErr := c.NoContent(statusCode); noContentErr != nil {
			slog.Error("failed to send error response", "request_id", requestID, "error", noContentErr)
		}
		return
	}
	if jsonErr := c.JSON(statusCode, errorResponse{Error: message}); jsonErr != nil {
		slog.Error("failed to send error response",
			"request_id", requestID,
			"status_code", statusCode,
			"message", message,
			"error", jsonErr,
		)
	}
}
