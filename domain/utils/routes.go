package utils

import (
	"github.com/labstack/echo/v4"

	"github.com/evo-kg/evokg-api/pkg/ratelimit"
)

// RegisterRoutes registers the utility routes
func RegisterRoutes(e *echo.Echo, h *Handler, limiter *ratelimit.Limiter) {
	g := e.Group("")
	g.Use(limiter.Middleware())

	g.POST("/validate_openai_key", h.ValidateOpenAIKey)
}
