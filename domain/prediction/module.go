package prediction

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/evo-kg/evokg-api/internal/config"
	"github.com/evo-kg/evokg-api/pkg/logger"
)

// Module provides the prediction domain
var Module = fx.Module("prediction",
	fx.Provide(
		NewRelationTable,
		NewNodeMapping,
		NewScorer,
		NewService,
		NewHandler,
	),
	fx.Invoke(RegisterRoutes),
)

// NewRelationTable loads the versioned relation table for the model artifact
func NewRelationTable(cfg *config.Config, log *slog.Logger) (*RelationTable, error) {
	table, err := LoadRelationTableFile(cfg.Model.RelationsPath)
	if err != nil {
		return nil, err
	}
	log.Info("relation table loaded",
		logger.Scope("prediction"),
		slog.Int("relations", table.Len()),
		slog.String("path", cfg.Model.RelationsPath),
	)
	return table, nil
}

// NewNodeMapping loads the node<->ID mapping for the model artifact
func NewNodeMapping(cfg *config.Config, log *slog.Logger) (*NodeMapping, error) {
	mapping, err := LoadNodeMappingFile(cfg.Model.NodesPath)
	if err != nil {
		return nil, err
	}
	log.Info("node mapping loaded",
		logger.Scope("prediction"),
		slog.Int("nodes", mapping.Len()),
		slog.String("path", cfg.Model.NodesPath),
	)
	return mapping, nil
}

// NewScorer creates the production scorer calling the inference service
func NewScorer(cfg *config.Config) Scorer {
	return NewHTTPScorer(cfg)
}
