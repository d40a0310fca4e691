package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope — единый конверт ответа об ошибке/статусе
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

func writeJSON(c echo.Context, status int, v any) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return c.JSON(status, v)
}

func DefaultHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if he, ok := err.(*echo.HTTPError); ok {
		msg := http.StatusText(he.Code)
		if s, ok := he.Message.(string); ok && s != "" {
			msg = s
		}
		_ = writeJSON(c, he.Code, fail(msg))
		return
	}
	_ = writeJSON(c, http.StatusInternalServerError, fail("internal error"))
}
