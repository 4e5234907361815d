package users

import (
	"crypto/subtle"
	"net/http"
	"net/mail"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/evo-kg/evokg-api/domain/email"
	"github.com/evo-kg/evokg-api/internal/config"
	"github.com/evo-kg/evokg-api/pkg/apperror"
	"github.com/evo-kg/evokg-api/pkg/auth"
)

// Handler handles HTTP requests for users
type Handler struct {
	svc    *Service
	emails *email.Service
	cfg    *config.Config
}

// NewHandler creates a new users handler
func NewHandler(svc *Service, emails *email.Service, cfg *config.Config) *Handler {
	return &Handler{svc: svc, emails: emails, cfg: cfg}
}

// Me returns the current user's details
// GET /users/me
func (h *Handler) Me(c echo.Context) error {
	user, err := h.svc.GetByUsername(c.Request().Context(), auth.GetUsername(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user.Public())
}

// UpdateQueryLimits updates the current user's query quota
// PUT /users/me/query_limits
func (h *Handler) UpdateQueryLimits(c echo.Context) error {
	var body QueryLimitUpdate
	if err := c.Bind(&body); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	user, err := h.svc.UpdateQueryLimits(c.Request().Context(), auth.GetUsername(c), body.QueryLimits, body.LastQueryReset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user.Public())
}

// UpdateAPIKey updates the current user's stored OpenAI key
// PUT /users/me/openai_api_key
func (h *Handler) UpdateAPIKey(c echo.Context) error {
	var body APIKeyUpdate
	if err := c.Bind(&body); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	user, err := h.svc.UpdateAPIKey(c.Request().Context(), auth.GetUsername(c), body.OpenAIAPIKey)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user.Public())
}

// AdminUpdateQueryLimit lets an operator reset any user's quota.
// Guarded by the shared admin secret, not a bearer token.
// PUT /users/:username/query_limit_admin
func (h *Handler) AdminUpdateQueryLimit(c echo.Context) error {
	var body AdminQueryLimitUpdate
	if err := c.Bind(&body); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	if h.cfg.Admin.Password == "" ||
		subtle.ConstantTimeCompare([]byte(body.AdminPassword), []byte(h.cfg.Admin.Password)) != 1 {
		return apperror.NewForbidden("Incorrect admin password or not authorized")
	}

	username := c.Param("username")
	if _, err := h.svc.GetByUsername(c.Request().Context(), username); err != nil {
		return err
	}

	user, err := h.svc.UpdateQueryLimits(c.Request().Context(), username, body.NewQueryLimit, time.Now().UTC())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user.Public())
}

// SendWelcomeEmail dispatches a welcome email to an arbitrary address
// POST /users/send_welcome_email?email_to=...
func (h *Handler) SendWelcomeEmail(c echo.Context) error {
	emailTo := c.QueryParam("email_to")
	if _, err := mail.ParseAddress(emailTo); err != nil {
		return apperror.NewBadRequest("invalid email address")
	}

	if err := h.emails.SendWelcome(c.Request().Context(), emailTo); err != nil {
		return apperror.ErrEmail.WithInternal(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome email successfully sent to " + emailTo,
	})
}
