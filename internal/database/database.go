package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/evo-kg/evokg-api/internal/config"
	"github.com/evo-kg/evokg-api/pkg/logger"
)

var Module = fx.Module("database",
	fx.Provide(
		NewNeo4jDriver,
		NewRedisClient,
	),
)

// NewNeo4jDriver creates the graph database driver. The driver is
// concurrency-safe and shared across all requests; sessions are opened
// per call by the repositories.
func NewNeo4jDriver(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) (neo4j.DriverWithContext, error) {
	log = log.With(logger.Scope("neo4j"))

	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4j.URI,
		neo4j.BasicAuth(cfg.Neo4j.Username, cfg.Neo4j.Password, ""),
	)
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("verify neo4j connectivity: %w", err)
	}

	log.Info("graph database connected", slog.String("uri", cfg.Neo4j.URI))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("closing neo4j driver")
			return driver.Close(ctx)
		},
	})

	return driver, nil
}

// NewRedisClient creates the key-value store client used for user records
// and rate-limit counters.
func NewRedisClient(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) (*redis.Client, error) {
	log = log.With(logger.Scope("redis"))

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.Info("key-value store connected", slog.String("addr", cfg.Redis.Addr()))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("closing redis client")
			return client.Close()
		},
	})

	return client, nil
}
