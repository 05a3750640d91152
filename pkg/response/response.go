package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type Response struct {
	Success bool       `json:"success"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Error(c echo.Context, status int, code, message string) error {
	return c.JSON(status, Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}

func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, "NOT_FOUND", message)
}

func MethodNotAllowed(c echo.Context, message string) error {
	return Error(c, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", message)
}

func InternalError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", message)
}

// HTTPError renders any handler error with the envelope. Only *echo.HTTPError
// messages reach the client; anything else is reported as an internal error.
func HTTPError(c echo.Context, err error) error {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return InternalError(c, http.StatusText(http.StatusInternalServerError))
	}

	message := http.StatusText(he.Code)
	if m, ok := he.Message.(string); ok && m != "" {
		message = m
	}

	switch he.Code {
	case http.StatusNotFound:
		return NotFound(c, message)
	case http.StatusMethodNotAllowed:
		return MethodNotAllowed(c, message)
	case http.StatusInternalServerError:
		return InternalError(c, message)
	default:
		code := strings.ToUpper(strings.ReplaceAll(http.StatusText(he.Code), " ", "_"))
		return Error(c, he.Code, code, message)
	}
}
