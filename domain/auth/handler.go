package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/evo-kg/evokg-api/pkg/apperror"
)

// Handler handles HTTP requests for authentication
type Handler struct {
	svc *Service
}

// NewHandler creates a new auth handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Signup registers a new user
// POST /auth/signup
func (h *Handler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	user, err := h.svc.Signup(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user.Public())
}

// Login authenticates a user and returns a bearer token.
// Accepts an OAuth2-style form (username, password).
// POST /auth/login
func (h *Handler) Login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		return apperror.NewBadRequest("username and password are required")
	}

	token, err := h.svc.Login(c.Request().Context(), username, password)
	if err != nil {
		if appErr, ok := err.(*apperror.Error); ok && appErr.HTTPStatus == http.StatusUnauthorized {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		}
		return err
	}

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
