package graph

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/evo-kg/evokg-api/pkg/apperror"
)

// Handler handles HTTP requests for graph reads
type Handler struct {
	svc *Service
}

// NewHandler creates a new graph handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GetEntity looks up one entity by type, property, and value
// GET /get_entity?entity_type=Gene&property=name&value=TP53
func (h *Handler) GetEntity(c echo.Context) error {
	entityType := c.QueryParam("entity_type")
	property := c.QueryParam("property")
	value := c.QueryParam("value")
	if entityType == "" || property == "" || value == "" {
		return apperror.NewBadRequest("entity_type, property and value are required")
	}

	props, err := h.svc.GetEntity(c.Request().Context(), entityType, property, value)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, props)
}

// Subgraph extracts the one-hop neighborhood of an anchor node
// GET /subgraph?property=name&value=TP53
func (h *Handler) Subgraph(c echo.Context) error {
	property := c.QueryParam("property")
	value := c.QueryParam("value")
	if property == "" || value == "" {
		return apperror.NewBadRequest("property and value are required")
	}

	resp, err := h.svc.Subgraph(c.Request().Context(), property, value)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// EntityRelationships lists the typed relationships of an entity
// GET /entity_relationships?entity_type=Gene&property=name&value=TP53
func (h *Handler) EntityRelationships(c echo.Context) error {
	entityType := c.QueryParam("entity_type")
	property := c.QueryParam("property")
	value := c.QueryParam("value")
	if entityType == "" || property == "" || value == "" {
		return apperror.NewBadRequest("entity_type, property and value are required")
	}

	resp, err := h.svc.EntityRelationships(c.Request().Context(), entityType, property, value)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// CheckRelationship reports whether two entities are connected
// GET /check_relationship?type1=&property1=&value1=&type2=&property2=&value2=
func (h *Handler) CheckRelationship(c echo.Context) error {
	type1 := c.QueryParam("type1")
	property1 := c.QueryParam("property1")
	value1 := c.QueryParam("value1")
	type2 := c.QueryParam("type2")
	property2 := c.QueryParam("property2")
	value2 := c.QueryParam("value2")
	if type1 == "" || property1 == "" || value1 == "" || type2 == "" || property2 == "" || value2 == "" {
		return apperror.NewBadRequest("type1, property1, value1, type2, property2 and value2 are required")
	}

	resp, err := h.svc.CheckRelationship(c.Request().Context(), type1, property1, value1, type2, property2, value2)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Search finds entities by substring with similarity fallback
// GET /search_biological_entities?term=TP53&threshold=0.8
func (h *Handler) Search(c echo.Context) error {
	term := c.QueryParam("term")
	if term == "" {
		return apperror.NewBadRequest("term is required")
	}

	threshold := 0.8
	if raw := c.QueryParam("threshold"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 || parsed > 1 {
			return apperror.NewBadRequest("threshold must be a number between 0 and 1")
		}
		threshold = parsed
	}

	exact, similar, err := h.svc.SearchWithFallback(c.Request().Context(), term, threshold)
	if err != nil {
		return err
	}
	if exact != nil {
		return c.JSON(http.StatusOK, exact)
	}
	return c.JSON(http.StatusOK, similar)
}

// SampleTriples extracts triple samples for one relationship type
// GET /sample_triples?relationship_type=gene_disease&limit=10
func (h *Handler) SampleTriples(c echo.Context) error {
	relType := c.QueryParam("relationship_type")
	if relType == "" {
		return apperror.NewBadRequest("relationship_type is required")
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	triples, err := h.svc.SampleTriples(c.Request().Context(), relType, limit)
	if err != nil {
		return err
	}
	if len(triples) == 0 {
		return apperror.NewNotFound("relationship", relType)
	}
	return c.JSON(http.StatusOK, map[string]any{"triples": triples})
}

// NodesByLabel pages nodes of a label
// GET /get_nodes_by_label?label=Gene&skip=0&limit=25
func (h *Handler) NodesByLabel(c echo.Context) error {
	label := c.QueryParam("label")
	if label == "" {
		return apperror.NewBadRequest("label is required")
	}
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	nodes, err := h.svc.NodesByLabel(c.Request().Context(), label, skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"nodes": nodes})
}

// CreateNode creates the demonstration Gene node
// POST /create_gene/:name
func (h *Handler) CreateNode(c echo.Context) error {
	if err := h.svc.CreateNode(c.Request().Context(), c.Param("name")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "gene created"})
}
