package utils

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/evo-kg/evokg-api/pkg/apperror"
	"github.com/evo-kg/evokg-api/pkg/logger"
)

// KeyValidationRequest carries a caller-supplied OpenAI API key
type KeyValidationRequest struct {
	APIKey string `json:"api_key"`
}

// KeyValidationResponse reports whether the key authenticated
type KeyValidationResponse struct {
	IsValid bool `json:"is_valid"`
}

// Handler handles utility requests
type Handler struct {
	log *slog.Logger
}

// NewHandler creates a new utils handler
func NewHandler(log *slog.Logger) *Handler {
	return &Handler{log: log.With(logger.Scope("utils"))}
}

// ValidateOpenAIKey validates an OpenAI API key by listing models.
// An authentication failure means the key is invalid; any other failure
// is an internal error with the detail redacted.
// POST /validate_openai_key
func (h *Handler) ValidateOpenAIKey(c echo.Context) error {
	var req KeyValidationRequest
	if err := c.Bind(&req); err != nil || req.APIKey == "" {
		return apperror.NewBadRequest("api_key is required")
	}

	client := openai.NewClient(option.WithAPIKey(req.APIKey))

	_, err := client.Models.List(c.Request().Context())
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return c.JSON(http.StatusOK, KeyValidationResponse{IsValid: false})
		}
		h.log.Error("key validation failed", logger.Error(err))
		return apperror.NewInternal("An error occurred while validating the key.", err)
	}

	return c.JSON(http.StatusOK, KeyValidationResponse{IsValid: true})
}
