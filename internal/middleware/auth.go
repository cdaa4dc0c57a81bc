package middleware

import (
	"strconv"
	"time"

	"github.com/deppfellow/ladder-stats/internal/model"
	"github.com/deppfellow/ladder-stats/internal/server"
	"github.com/deppfellow/ladder-stats/internal/service"
	"github.com/labstack/echo/v4"
)

const PrincipalKey = "principal"

// AuthMiddleware resolves the session cookie into a principal.
type AuthMiddleware struct {
	server *server.Server
	auth   *service.AuthService
}

func NewAuthMiddleware(s *server.Server, auth *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
		auth:   auth,
	}
}

// RequireAuth rejects requests without an open session with a 401.
func (am *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		principal, err := am.auth.Resolve(c.Request().Context(), am.sessionToken(c))
		if err != nil {
			GetLogger(c).Warn().
				Str("function", "RequireAuth").
				Dur("duration", time.Since(start)).
				Msg("request without a valid session")
			return err
		}

		am.attach(c, principal)

		return next(c)
	}
}

// RequireAdmin only lets the configured administrator through: no
// session is a 401, any other user a 403.
func (am *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		principal, err := am.auth.Authorize(c.Request().Context(), am.sessionToken(c))
		if err != nil {
			GetLogger(c).Warn().
				Err(err).
				Str("function", "RequireAdmin").
				Dur("duration", time.Since(start)).
				Msg("admin access denied")
			return err
		}

		am.attach(c, principal)

		return next(c)
	}
}

func (am *AuthMiddleware) sessionToken(c echo.Context) string {
	cookie, err := c.Cookie(am.server.Config.Auth.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// attach stores principal on the echo context and adds the user id to the
// request logger.
func (am *AuthMiddleware) attach(c echo.Context, principal model.Principal) {
	userID := strconv.Itoa(principal.ID)

	c.Set(PrincipalKey, principal)
	c.Set(UserIDKey, userID)

	contextLogger := GetLogger(c).With().Str("user_id", userID).Logger()
	c.Set(LoggerKey, &contextLogger)
	c.SetRequest(c.Request().WithContext(contextLogger.WithContext(c.Request().Context())))
}

// GetPrincipal returns the principal stored by RequireAuth or RequireAdmin.
func GetPrincipal(c echo.Context) (model.Principal, bool) {
	principal, ok := c.Get(PrincipalKey).(model.Principal)
	return principal, ok
}
