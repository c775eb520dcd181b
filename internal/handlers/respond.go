package handlers

import (
	"net/http"

	"github.com/anonto42/socially/backend/internal/middleware"
	"github.com/anonto42/socially/backend/internal/services"
	"github.com/labstack/echo/v4"
)

func statusFor(kind services.FailureKind) int {
	switch kind {
	case services.FailureUnauthenticated:
		return http.StatusUnauthorized
	case services.FailureInvalid:
		return http.StatusBadRequest
	case services.FailureForbidden:
		return http.StatusForbidden
	case services.FailureNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeResult renders a mutation outcome; data is merged in only on success
func writeResult(c echo.Context, status int, res services.Result, data echo.Map) error {
	if !res.Success {
		return c.JSON(statusFor(res.Kind), echo.Map{"success": false, "error": res.Error})
	}
	body := echo.Map{"success": true}
	if data != nil {
		body["data"] = data
	}
	return c.JSON(status, body)
}

func writeData(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": data})
}

func subjectFromContext(c echo.Context) (string, error) {
	subject := middleware.Subject(c)
	if subject == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	return subject, nil
}

// bindAndValidate binds the request body into req and runs the echo validator on it
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	return c.Validate(req)
}
