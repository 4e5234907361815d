package auth

import (
	"github.com/labstack/echo/v4"

	"github.com/evo-kg/evokg-api/pkg/ratelimit"
)

// RegisterRoutes registers the auth routes
func RegisterRoutes(e *echo.Echo, h *Handler, limiter *ratelimit.Limiter) {
	g := e.Group("/auth")
	g.Use(limiter.Middleware())

	g.POST("/signup", h.Signup)
	g.POST("/login", h.Login)
}
