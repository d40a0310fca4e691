package http

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fuelops/dispensing-service/internal/token"
)

// RequireToken — guard защищённых маршрутов: извлекает токен из заголовка
// Authorization, проверяет его и кладёт подтверждённый субъект в контекст
// запроса. Любой отказ проверки даёт одинаковый 401, категория уходит только
// в лог. Состояния не держит, общий для всех запросов.
func RequireToken(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return writeJSON(c, http.StatusUnauthorized, fail("missing authorization header"))
			}
			raw := extractToken(header)
			if raw == "" {
				return writeJSON(c, http.StatusUnauthorized, fail("missing token"))
			}
			id, err := codec.Verify(raw)
			if err != nil {
				var te *token.Error
				if errors.As(err, &te) {
					log.Printf("auth: token rejected (%s) for %s %s", te.Kind, c.Request().Method, c.Path())
				}
				return writeJSON(c, http.StatusUnauthorized, fail("invalid or expired token"))
			}
			ctx := token.BindIdentity(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// extractToken берёт параметр после схемы ("Bearer <token>"); заголовок из
// одной схемы без параметра считается пустым токеном
func extractToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
