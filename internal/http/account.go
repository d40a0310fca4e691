package http

import (
	"crypto/subtle"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fuelops/dispensing-service/internal/config"
	"github.com/fuelops/dispensing-service/internal/http/dto"
	"github.com/fuelops/dispensing-service/internal/token"
)

// Login — выдача токена доступа по учётной паре
// @Summary     Вход оператора
// @Tags        account
// @Accept      json
// @Produce     json
// @Param       request body dto.LoginRequest true "Credentials"
// @Success     200 {object} dto.LoginResponse
// @Failure     400 {object} Envelope
// @Failure     401 {object} dto.LoginResponse
// @Router      /login [post]
func Login(codec *token.Codec, cfg config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return writeJSON(c, http.StatusBadRequest, fail("malformed request body"))
		}
		if err := req.Validate(); err != nil {
			status, env := MapError(err)
			return writeJSON(c, status, env)
		}

		userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(cfg.AdminUsername)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(cfg.AdminPassword)) == 1
		if !userOK || !passOK {
			return writeJSON(c, http.StatusUnauthorized, dto.LoginResponse{
				Success: false,
				Message: "invalid username or password",
			})
		}

		t, err := codec.Issue(req.Username)
		if err != nil {
			log.Printf("account: issue token: %v", err)
			return writeJSON(c, http.StatusInternalServerError, fail("internal error"))
		}
		return writeJSON(c, http.StatusOK, dto.LoginResponse{
			Success: true,
			Message: "login successful",
			Token:   t,
		})
	}
}
