package prediction

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/evo-kg/evokg-api/pkg/apperror"
)

// Handler handles HTTP requests for link prediction
type Handler struct {
	svc *Service
}

// NewHandler creates a new prediction handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// PredictTail returns the top-K tail predictions for a head and relation
// GET /predict_tail?head=TP53&relation=gene_disease&top_k_predictions=10
func (h *Handler) PredictTail(c echo.Context) error {
	head := c.QueryParam("head")
	relation := c.QueryParam("relation")
	if head == "" || relation == "" {
		return apperror.NewBadRequest("head and relation are required")
	}

	k := 0
	if raw := c.QueryParam("top_k_predictions"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return apperror.NewBadRequest("top_k_predictions must be a positive integer")
		}
		k = parsed
	}

	resp, err := h.svc.PredictTopK(c.Request().Context(), head, relation, k)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// GetRank returns the rank and score of a specific tail candidate
// GET /get_prediction_rank?head=TP53&relation=gene_disease&tail=BRCA1
func (h *Handler) GetRank(c echo.Context) error {
	head := c.QueryParam("head")
	relation := c.QueryParam("relation")
	tail := c.QueryParam("tail")
	if head == "" || relation == "" || tail == "" {
		return apperror.NewBadRequest("head, relation and tail are required")
	}

	resp, err := h.svc.GetRank(c.Request().Context(), head, relation, tail)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
