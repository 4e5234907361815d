package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/redis/go-redis/v9"

	"github.com/evo-kg/evokg-api/internal/config"
)

// Handler handles health check requests
type Handler struct {
	driver  neo4j.DriverWithContext
	rdb     *redis.Client
	cfg     *config.Config
	startAt time.Time
}

// NewHandler creates a new health handler
func NewHandler(driver neo4j.DriverWithContext, rdb *redis.Client, cfg *config.Config) *Handler {
	return &Handler{
		driver:  driver,
		rdb:     rdb,
		cfg:     cfg,
		startAt: time.Now(),
	}
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Checks    map[string]Check `json:"checks"`
}

// Root greets API consumers
// GET /
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to the Evo-KG API",
	})
}

// HelloWorld is a simple liveness probe
// GET /hello_world
func (h *Handler) HelloWorld(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Hello, World!",
	})
}

// Health pings both external stores and reports per-dependency status
// GET /health
func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := map[string]Check{
		"redis": h.checkRedis(ctx),
		"neo4j": h.checkNeo4j(ctx),
	}

	status := "ok"
	code := http.StatusOK
	for _, check := range checks {
		if check.Status != "ok" {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}

	return c.JSON(code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).Round(time.Second).String(),
		Checks:    checks,
	})
}

func (h *Handler) checkRedis(ctx context.Context) Check {
	if err := h.rdb.Ping(ctx).Err(); err != nil {
		return Check{Status: "error", Message: err.Error()}
	}
	return Check{Status: "ok"}
}

func (h *Handler) checkNeo4j(ctx context.Context) Check {
	if err := h.driver.VerifyConnectivity(ctx); err != nil {
		return Check{Status: "error", Message: err.Error()}
	}
	return Check{Status: "ok"}
}
