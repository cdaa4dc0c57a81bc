package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/ladder-stats/internal/model"
	"github.com/deppfellow/ladder-stats/internal/server"
	"github.com/deppfellow/ladder-stats/internal/service"
	"github.com/deppfellow/ladder-stats/internal/validation"
	"github.com/labstack/echo/v4"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validation.Struct(r)
}

type LogoutRequest struct{}

func (r *LogoutRequest) Validate() error {
	return nil
}

// AuthHandler opens and closes cookie sessions.
type AuthHandler struct {
	Handler
	auth *service.AuthService
}

func NewAuthHandler(s *server.Server, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(s),
		auth:    auth,
	}
}

func (h *AuthHandler) Login(c echo.Context, req *LoginRequest) (model.Principal, error) {
	principal, token, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return model.Principal{}, err
	}

	c.SetCookie(h.sessionCookie(token, h.server.Config.Auth.SessionTTL))

	return principal, nil
}

func (h *AuthHandler) Logout(c echo.Context, req *LogoutRequest) error {
	cookie, err := c.Cookie(h.server.Config.Auth.CookieName)
	if err == nil {
		if err := h.auth.Logout(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}

	c.SetCookie(h.sessionCookie("", -1))

	return nil
}

// sessionCookie builds the session cookie. A negative maxAge expires it.
func (h *AuthHandler) sessionCookie(token string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     h.server.Config.Auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   !h.server.Config.IsLocal(),
		SameSite: http.SameSiteLaxMode,
	}
	if maxAge > 0 {
		cookie.Expires = time.Now().Add(time.Duration(maxAge) * time.Second)
	}
	return cookie
}
