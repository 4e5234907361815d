package graph

import (
	"context"
	"log/slog"
	"sort"

	"github.com/evo-kg/evokg-api/pkg/apperror"
	"github.com/evo-kg/evokg-api/pkg/logger"
)

// Matches returned per entity type by text search
const searchHitsPerType = 5

// Candidates returned by the similarity fallback
const similarityCap = 10

// Store is the graph access surface the service shapes responses over.
// The production implementation is Repository; tests substitute their own.
type Store interface {
	GetEntity(ctx context.Context, label, property, value string) (Properties, error)
	Subgraph(ctx context.Context, property, value string) (*SubgraphResponse, error)
	EntityRelationships(ctx context.Context, label, property, value string) (*EntityRelationshipsResponse, error)
	CheckRelationship(ctx context.Context, aLabel, aProperty, aValue, bLabel, bProperty, bValue string) (*CheckRelationshipResponse, error)
	SearchNames(ctx context.Context, term string) ([]searchRow, error)
	AllNames(ctx context.Context) ([]string, error)
	SampleTriples(ctx context.Context, relType string, limit int) ([]Triple, error)
	NodesByLabel(ctx context.Context, label string, skip, limit int) ([]Properties, error)
	CreateNode(ctx context.Context, name string) error
}

// Service validates identifiers, delegates to the store, and shapes
// graph records into typed responses.
type Service struct {
	repo Store
	log  *slog.Logger
}

// NewService creates a new graph service
func NewService(repo Store, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(logger.Scope("graph.svc")),
	}
}

// GetEntity looks up one node by type, property, and value
func (s *Service) GetEntity(ctx context.Context, label, property, value string) (Properties, error) {
	if err := ValidateIdentifier(label); err != nil {
		return nil, err
	}
	if err := ValidateIdentifier(property); err != nil {
		return nil, err
	}
	return s.repo.GetEntity(ctx, label, property, value)
}

// Subgraph extracts the one-hop neighborhood of an anchor node
func (s *Service) Subgraph(ctx context.Context, property, value string) (*SubgraphResponse, error) {
	if err := ValidateIdentifier(property); err != nil {
		return nil, err
	}
	return s.repo.Subgraph(ctx, property, value)
}

// EntityRelationships lists the typed relationships of an entity
func (s *Service) EntityRelationships(ctx context.Context, label, property, value string) (*EntityRelationshipsResponse, error) {
	if err := ValidateIdentifier(label); err != nil {
		return nil, err
	}
	if err := ValidateIdentifier(property); err != nil {
		return nil, err
	}
	return s.repo.EntityRelationships(ctx, label, property, value)
}

// CheckRelationship reports whether any edge connects two resolved nodes
func (s *Service) CheckRelationship(ctx context.Context, aLabel, aProperty, aValue, bLabel, bProperty, bValue string) (*CheckRelationshipResponse, error) {
	for _, ident := range []string{aLabel, aProperty, bLabel, bProperty} {
		if err := ValidateIdentifier(ident); err != nil {
			return nil, err
		}
	}
	return s.repo.CheckRelationship(ctx, aLabel, aProperty, aValue, bLabel, bProperty, bValue)
}

// Search finds entities whose name, id, or synonym contains the term,
// grouped by type, ordered by name length ascending, top hits per type.
func (s *Service) Search(ctx context.Context, term string) (*SearchResponse, error) {
	rows, err := s.repo.SearchNames(ctx, term)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperror.NewNotFound("entity", term)
	}

	grouped := make(map[string][]SearchHit)
	for _, row := range rows {
		label := row.label
		if label == "" {
			label = "Unknown"
		}
		grouped[label] = append(grouped[label], SearchHit{ID: row.id, Name: row.name})
	}

	for label, hits := range grouped {
		sort.SliceStable(hits, func(i, j int) bool {
			return len(hits[i].Name) < len(hits[j].Name)
		})
		if len(hits) > searchHitsPerType {
			hits = hits[:searchHitsPerType]
		}
		grouped[label] = hits
	}

	return &SearchResponse{Results: grouped}, nil
}

// SimilarSearch ranks every node name by Dice overlap with the term and
// returns up to similarityCap candidates at or above the threshold, in
// descending score order. Below-threshold candidates never appear.
func (s *Service) SimilarSearch(ctx context.Context, term string, threshold float64) (*SimilarityResponse, error) {
	names, err := s.repo.AllNames(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]SimilarityCandidate, 0)
	for _, name := range names {
		score := DiceCoefficient(term, name)
		if score >= threshold {
			candidates = append(candidates, SimilarityCandidate{Name: name, Score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > similarityCap {
		candidates = candidates[:similarityCap]
	}

	return &SimilarityResponse{Candidates: candidates}, nil
}

// SearchWithFallback tries the substring search first, then the similarity
// fallback when nothing matched exactly.
func (s *Service) SearchWithFallback(ctx context.Context, term string, threshold float64) (*SearchResponse, *SimilarityResponse, error) {
	exact, err := s.Search(ctx, term)
	if err == nil {
		return exact, nil, nil
	}
	if appErr, ok := err.(*apperror.Error); !ok || appErr.HTTPStatus != 404 {
		return nil, nil, err
	}

	similar, err := s.SimilarSearch(ctx, term, threshold)
	if err != nil {
		return nil, nil, err
	}
	if len(similar.Candidates) == 0 {
		return nil, nil, apperror.NewNotFound("entity", term)
	}
	return nil, similar, nil
}

// SampleTriples extracts triple samples for one relationship type
func (s *Service) SampleTriples(ctx context.Context, relType string, limit int) ([]Triple, error) {
	if err := ValidateIdentifier(relType); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.repo.SampleTriples(ctx, relType, limit)
}

// NodesByLabel pages nodes of a label
func (s *Service) NodesByLabel(ctx context.Context, label string, skip, limit int) ([]Properties, error) {
	if err := ValidateIdentifier(label); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	if skip < 0 {
		skip = 0
	}
	nodes, err := s.repo.NodesByLabel(ctx, label, skip, limit)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, apperror.NewNotFound("label", label)
	}
	return nodes, nil
}

// CreateNode creates the demonstration Gene node
func (s *Service) CreateNode(ctx context.Context, name string) error {
	if name == "" {
		return apperror.NewBadRequest("name is required")
	}
	return s.repo.CreateNode(ctx, name)
}
