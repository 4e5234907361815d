package users

import (
	"github.com/labstack/echo/v4"

	"github.com/evo-kg/evokg-api/pkg/auth"
	"github.com/evo-kg/evokg-api/pkg/ratelimit"
)

// RegisterRoutes registers the users routes
func RegisterRoutes(e *echo.Echo, h *Handler, authMiddleware *auth.Middleware, limiter *ratelimit.Limiter) {
	g := e.Group("/users")
	g.Use(limiter.Middleware())

	me := g.Group("/me")
	me.Use(authMiddleware.RequireAuth())
	me.GET("", h.Me)
	me.PUT("/query_limits", h.UpdateQueryLimits)
	me.PUT("/openai_api_key", h.UpdateAPIKey)

	g.PUT("/:username/query_limit_admin", h.AdminUpdateQueryLimit)
	g.POST("/send_welcome_email", h.SendWelcomeEmail)
}
