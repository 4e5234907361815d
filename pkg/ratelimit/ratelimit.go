package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/evo-kg/evokg-api/internal/config"
	"github.com/evo-kg/evokg-api/pkg/apperror"
	"github.com/evo-kg/evokg-api/pkg/logger"
)

// counterStore is the slice of the Redis API the limiter needs
type counterStore interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	ExpireNX(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// Limiter enforces a fixed-window request budget per client and route.
// Counters live in Redis so the window is shared across instances. When
// Redis is unreachable the limiter degrades to an in-process token bucket
// per key rather than failing every request.
type Limiter struct {
	rdb      counterStore
	log      *slog.Logger
	requests int
	window   time.Duration
	enabled  bool

	mu       sync.RWMutex
	fallback map[string]*rate.Limiter
}

// New creates a limiter from the application rate-limit settings
func New(rdb *redis.Client, cfg *config.Config, log *slog.Logger) *Limiter {
	return &Limiter{
		rdb:      rdb,
		log:      log.With(logger.Scope("ratelimit")),
		requests: cfg.RateLimit.Requests,
		window:   cfg.RateLimit.Window,
		enabled:  cfg.RateLimit.Enabled,
		fallback: make(map[string]*rate.Limiter),
	}
}

// Allow reports whether the client may issue another request on the route
// within the current window.
func (l *Limiter) Allow(ctx context.Context, route, clientIP string) (bool, error) {
	if !l.enabled {
		return true, nil
	}

	key := fmt.Sprintf("ratelimit:%s:%s", route, clientIP)

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		l.log.Warn("counter unavailable, using in-process fallback", logger.Error(err))
		return l.allowFallback(key), nil
	}

	// Attach the window TTL whenever the key has none. A failed expiry on
	// the opening hit is repaired by the next request instead of leaving a
	// counter that never resets.
	if err := l.rdb.ExpireNX(ctx, key, l.window).Err(); err != nil {
		l.log.Warn("failed to set window expiry", logger.Error(err))
	}

	return count <= int64(l.requests), nil
}

// allowFallback serves the decision from a per-key token bucket
func (l *Limiter) allowFallback(key string) bool {
	l.mu.RLock()
	lim, ok := l.fallback[key]
	l.mu.RUnlock()
	if ok {
		return lim.Allow()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if lim, ok = l.fallback[key]; !ok {
		lim = rate.NewLimiter(rate.Every(l.window/time.Duration(l.requests)), l.requests)
		l.fallback[key] = lim
	}
	return lim.Allow()
}

// Middleware returns an Echo middleware rejecting requests over the window
// with a 429 before the handler runs.
func (l *Limiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := l.Allow(c.Request().Context(), c.Path(), c.RealIP())
			if err != nil {
				return apperror.ErrInternal.WithInternal(err)
			}
			if !allowed {
				return apperror.ErrRateLimited
			}
			return next(c)
		}
	}
}
