package graph

import (
	"github.com/labstack/echo/v4"

	"github.com/evo-kg/evokg-api/pkg/ratelimit"
)

// RegisterRoutes registers the graph read routes
func RegisterRoutes(e *echo.Echo, h *Handler, limiter *ratelimit.Limiter) {
	g := e.Group("")
	g.Use(limiter.Middleware())

	g.GET("/get_entity", h.GetEntity)
	g.GET("/subgraph", h.Subgraph)
	g.GET("/entity_relationships", h.EntityRelationships)
	g.GET("/check_relationship", h.CheckRelationship)
	g.GET("/search_biological_entities", h.Search)
	g.GET("/sample_triples", h.SampleTriples)
	g.GET("/get_nodes_by_label", h.NodesByLabel)
	g.POST("/create_gene/:name", h.CreateNode)
}
