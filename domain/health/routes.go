package health

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the health routes. Health probes are exempt
// from rate limiting.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/", h.Root)
	e.GET("/hello_world", h.HelloWorld)
	e.GET("/health", h.Health)
}
