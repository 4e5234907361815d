package graph

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/evo-kg/evokg-api/pkg/apperror"
	"github.com/evo-kg/evokg-api/pkg/logger"
)

// Maximum neighbor connections returned by subgraph extraction
const neighborCap = 10

// Large or irrelevant properties stripped from subgraph endpoints
var strippedProperties = map[string]struct{}{
	"sequence":  {},
	"smiles":    {},
	"embedding": {},
	"text":      {},
	"abstract":  {},
}

// Repository builds and runs parameterized Cypher against the graph
// database. Identifiers interpolated into query text are validated by the
// service layer before any call lands here; values are always bound.
type Repository struct {
	driver neo4j.DriverWithContext
	log    *slog.Logger
}

// NewRepository creates a new graph repository
func NewRepository(driver neo4j.DriverWithContext, log *slog.Logger) *Repository {
	return &Repository{
		driver: driver,
		log:    log.With(logger.Scope("graph.repo")),
	}
}

// run executes a read query in a fresh session and collects all records
func (r *Repository) run(ctx context.Context, query string, params map[string]any) ([]*neo4j.Record, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	records, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		return result.Collect(ctx)
	})
	if err != nil {
		r.log.Error("graph query failed", logger.Error(err))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	return records.([]*neo4j.Record), nil
}

// GetEntity returns the full property bag of the first node with the given
// label whose named property matches the value case-insensitively.
func (r *Repository) GetEntity(ctx context.Context, label, property, value string) (Properties, error) {
	query := fmt.Sprintf(`
		MATCH (n:%s)
		WHERE toLower(toString(n.%s)) = toLower($value)
		RETURN properties(n) AS props
		LIMIT 1`, label, property)

	records, err := r.run(ctx, query, map[string]any{"value": value})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperror.NewNotFound(label, value)
	}

	props, _ := records[0].Get("props")
	bag, _ := props.(map[string]any)
	return Properties(bag), nil
}

// Subgraph anchors a node by property/value with no label constraint and
// returns up to neighborCap one-hop connections in either direction. Large
// properties are stripped from both endpoints.
func (r *Repository) Subgraph(ctx context.Context, property, value string) (*SubgraphResponse, error) {
	query := fmt.Sprintf(`
		MATCH (n {%s: $value})-[rel]-(m)
		RETURN properties(n) AS source, type(rel) AS relType, properties(m) AS neighbor
		LIMIT $cap`, property)

	records, err := r.run(ctx, query, map[string]any{"value": value, "cap": neighborCap})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperror.NewNotFound("node", value)
	}

	resp := &SubgraphResponse{Connections: make([]Connection, 0, len(records))}
	for i, record := range records {
		source, _ := record.Get("source")
		relType, _ := record.Get("relType")
		neighbor, _ := record.Get("neighbor")

		if i == 0 {
			bag, _ := source.(map[string]any)
			resp.Source = stripProperties(bag)
		}
		bag, _ := neighbor.(map[string]any)
		resp.Connections = append(resp.Connections, Connection{
			RelationshipType: relType.(string),
			Neighbor:         stripProperties(bag),
		})
	}
	return resp, nil
}

// EntityRelationships lists the typed relationships of a labeled entity
// with direction and neighbor labels.
func (r *Repository) EntityRelationships(ctx context.Context, label, property, value string) (*EntityRelationshipsResponse, error) {
	query := fmt.Sprintf(`
		MATCH (n:%s)
		WHERE toLower(toString(n.%s)) = toLower($value)
		MATCH (n)-[rel]-(m)
		RETURN properties(n) AS source,
		       type(rel) AS relType,
		       CASE WHEN startNode(rel) = n THEN 'outgoing' ELSE 'incoming' END AS direction,
		       labels(m) AS neighborLabels,
		       properties(m) AS neighbor
		LIMIT $cap`, label, property)

	records, err := r.run(ctx, query, map[string]any{"value": value, "cap": neighborCap})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperror.NewNotFound(label, value)
	}

	resp := &EntityRelationshipsResponse{Relationships: make([]RelationshipInfo, 0, len(records))}
	for i, record := range records {
		source, _ := record.Get("source")
		relType, _ := record.Get("relType")
		direction, _ := record.Get("direction")
		rawLabels, _ := record.Get("neighborLabels")
		neighbor, _ := record.Get("neighbor")

		if i == 0 {
			bag, _ := source.(map[string]any)
			resp.Source = stripProperties(bag)
		}

		labels := make([]string, 0)
		if list, ok := rawLabels.([]any); ok {
			for _, l := range list {
				if s, ok := l.(string); ok {
					labels = append(labels, s)
				}
			}
		}
		bag, _ := neighbor.(map[string]any)
		resp.Relationships = append(resp.Relationships, RelationshipInfo{
			RelationshipType: relType.(string),
			Direction:        direction.(string),
			NeighborLabels:   labels,
			Neighbor:         stripProperties(bag),
		})
	}
	return resp, nil
}

// checkRelationshipQuery resolves both endpoints and probes for any edge
// between them. A value can resolve several node pairs, so connected pairs
// must sort ahead of unconnected ones (rel IS NULL orders false first)
// before LIMIT 1 picks the winner.
const checkRelationshipQuery = `
	MATCH (a:%s), (b:%s)
	WHERE toLower(toString(a.%s)) = toLower($aValue)
	  AND toLower(toString(b.%s)) = toLower($bValue)
	OPTIONAL MATCH (a)-[rel]-(b)
	RETURN type(rel) AS relType
	ORDER BY rel IS NULL
	LIMIT 1`

// CheckRelationship resolves both endpoints and reports whether any edge
// connects them in either direction. Missing endpoints are NotFound; a
// missing edge between resolved endpoints is a structured negative.
func (r *Repository) CheckRelationship(ctx context.Context, aLabel, aProperty, aValue, bLabel, bProperty, bValue string) (*CheckRelationshipResponse, error) {
	query := fmt.Sprintf(checkRelationshipQuery, aLabel, bLabel, aProperty, bProperty)

	records, err := r.run(ctx, query, map[string]any{"aValue": aValue, "bValue": bValue})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperror.ErrNotFound.WithMessage("one or both entities not found")
	}

	relType, _ := records[0].Get("relType")
	if relType == nil {
		return &CheckRelationshipResponse{Exists: false}, nil
	}
	return &CheckRelationshipResponse{
		Exists:           true,
		RelationshipType: relType.(string),
	}, nil
}

// SearchNames returns (labels, name, id) rows for every node whose name,
// id, or synonym contains the term case-insensitively.
func (r *Repository) SearchNames(ctx context.Context, term string) ([]searchRow, error) {
	query := `
		MATCH (n)
		WHERE (n.name IS NOT NULL AND toLower(n.name) CONTAINS toLower($term))
		   OR (n.id IS NOT NULL AND toLower(toString(n.id)) CONTAINS toLower($term))
		   OR any(s IN coalesce(n.synonyms, []) WHERE toLower(toString(s)) CONTAINS toLower($term))
		RETURN labels(n) AS nodeLabels, n.name AS name, toString(n.id) AS id`

	records, err := r.run(ctx, query, map[string]any{"term": term})
	if err != nil {
		return nil, err
	}

	rows := make([]searchRow, 0, len(records))
	for _, record := range records {
		rawLabels, _ := record.Get("nodeLabels")
		name, _ := record.Get("name")
		id, _ := record.Get("id")

		row := searchRow{}
		if list, ok := rawLabels.([]any); ok && len(list) > 0 {
			row.label, _ = list[0].(string)
		}
		row.name, _ = name.(string)
		row.id, _ = id.(string)
		rows = append(rows, row)
	}
	return rows, nil
}

// AllNames returns the distinct node names used by the similarity fallback
func (r *Repository) AllNames(ctx context.Context) ([]string, error) {
	query := `
		MATCH (n)
		WHERE n.name IS NOT NULL
		RETURN DISTINCT n.name AS name`

	records, err := r.run(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(records))
	for _, record := range records {
		name, _ := record.Get("name")
		if s, ok := name.(string); ok {
			names = append(names, s)
		}
	}
	return names, nil
}

// SampleTriples extracts (head, relationship, tail) samples for a fixed
// relationship type.
func (r *Repository) SampleTriples(ctx context.Context, relType string, limit int) ([]Triple, error) {
	query := fmt.Sprintf(`
		MATCH (h)-[rel:%s]->(t)
		WHERE h.name IS NOT NULL AND t.name IS NOT NULL
		RETURN h.name AS head, type(rel) AS relType, t.name AS tail
		LIMIT $limit`, relType)

	records, err := r.run(ctx, query, map[string]any{"limit": limit})
	if err != nil {
		return nil, err
	}

	triples := make([]Triple, 0, len(records))
	for _, record := range records {
		head, _ := record.Get("head")
		rt, _ := record.Get("relType")
		tail, _ := record.Get("tail")
		triples = append(triples, Triple{
			Head:         head.(string),
			Relationship: rt.(string),
			Tail:         tail.(string),
		})
	}
	return triples, nil
}

// NodesByLabel pages through the property bags of every node with a label
func (r *Repository) NodesByLabel(ctx context.Context, label string, skip, limit int) ([]Properties, error) {
	query := fmt.Sprintf(`
		MATCH (n:%s)
		RETURN properties(n) AS props
		SKIP $skip LIMIT $limit`, label)

	records, err := r.run(ctx, query, map[string]any{"skip": skip, "limit": limit})
	if err != nil {
		return nil, err
	}

	nodes := make([]Properties, 0, len(records))
	for _, record := range records {
		props, _ := record.Get("props")
		bag, _ := props.(map[string]any)
		nodes = append(nodes, stripProperties(bag))
	}
	return nodes, nil
}

// CreateNode is the demonstration write path: a single Gene node
func (r *Repository) CreateNode(ctx context.Context, name string) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, `CREATE (g:Gene {name: $name}) RETURN g.name AS name`, map[string]any{"name": name})
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})
	if err != nil {
		r.log.Error("create node failed", logger.Error(err))
		return apperror.ErrDatabase.WithInternal(err)
	}
	return nil
}

// searchRow is one raw search result before grouping
type searchRow struct {
	label string
	name  string
	id    string
}

// stripProperties removes configured large properties from a bag
func stripProperties(bag map[string]any) Properties {
	if bag == nil {
		return Properties{}
	}
	out := make(Properties, len(bag))
	for key, value := range bag {
		if _, drop := strippedProperties[key]; drop {
			continue
		}
		out[key] = value
	}
	return out
}
