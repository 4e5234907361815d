package auth

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/evo-kg/evokg-api/pkg/apperror"
)

// Module provides the token service and auth middleware
var Module = fx.Module("tokens",
	fx.Provide(NewTokenService),
	fx.Provide(NewMiddleware),
)

const usernameContextKey = "auth.username"

// Middleware authenticates requests with a bearer token
type Middleware struct {
	tokens *TokenService
}

// NewMiddleware creates the auth middleware
func NewMiddleware(tokens *TokenService) *Middleware {
	return &Middleware{tokens: tokens}
}

// RequireAuth rejects requests without a valid bearer token and stores the
// authenticated username on the request context.
func (m *Middleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
				return apperror.ErrUnauthorized
			}

			username, ok := m.tokens.VerifyToken(token)
			if !ok {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
				return apperror.ErrUnauthorized
			}

			c.Set(usernameContextKey, username)
			return next(c)
		}
	}
}

// GetUsername returns the authenticated username, or "" when the request
// did not pass RequireAuth.
func GetUsername(c echo.Context) string {
	username, _ := c.Get(usernameContextKey).(string)
	return username
}
