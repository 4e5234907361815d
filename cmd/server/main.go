// Package main provides the entry point for the Evo-KG API server.
//
// The Evo-KG API exposes a biological knowledge graph (genes, proteins,
// diseases, ...) stored in Neo4j, together with KGE link prediction and a
// Redis-backed user/auth layer.
package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	authdomain "github.com/evo-kg/evokg-api/domain/auth"
	"github.com/evo-kg/evokg-api/domain/email"
	"github.com/evo-kg/evokg-api/domain/graph"
	"github.com/evo-kg/evokg-api/domain/health"
	"github.com/evo-kg/evokg-api/domain/prediction"
	"github.com/evo-kg/evokg-api/domain/users"
	"github.com/evo-kg/evokg-api/domain/utils"
	"github.com/evo-kg/evokg-api/internal/config"
	"github.com/evo-kg/evokg-api/internal/database"
	"github.com/evo-kg/evokg-api/internal/server"
	"github.com/evo-kg/evokg-api/pkg/auth"
	"github.com/evo-kg/evokg-api/pkg/logger"
	"github.com/evo-kg/evokg-api/pkg/ratelimit"
)

func main() {
	// Load .env if present (for local development)
	_ = godotenv.Load(".env")

	fx.New(
		// Logging
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure modules
		logger.Module,
		config.Module,
		database.Module,
		server.Module,

		// Token service and bearer middleware
		auth.Module,

		// Per-client, per-route rate limiting
		fx.Provide(ratelimit.New),

		// Domain modules
		health.Module,
		email.Module,
		users.Module,
		authdomain.Module,
		graph.Module,
		prediction.Module,
		utils.Module,
	).Run()
}
