package prediction

import (
	"github.com/labstack/echo/v4"

	"github.com/evo-kg/evokg-api/pkg/ratelimit"
)

// RegisterRoutes registers the link-prediction routes
func RegisterRoutes(e *echo.Echo, h *Handler, limiter *ratelimit.Limiter) {
	g := e.Group("")
	g.Use(limiter.Middleware())

	g.GET("/predict_tail", h.PredictTail)
	g.GET("/get_prediction_rank", h.GetRank)
}
