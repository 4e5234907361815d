package graph

// Properties is a node's free-form property bag
type Properties map[string]any

// Connection is one (relationship type, neighbor) pair in a subgraph
type Connection struct {
	RelationshipType string     `json:"relationship_type"`
	Neighbor         Properties `json:"neighbor"`
}

// SubgraphResponse holds a node and its one-hop neighborhood
type SubgraphResponse struct {
	Source      Properties   `json:"source"`
	Connections []Connection `json:"connections"`
}

// RelationshipInfo describes one typed relationship from an entity
type RelationshipInfo struct {
	RelationshipType string     `json:"relationship_type"`
	Direction        string     `json:"direction"`
	NeighborLabels   []string   `json:"neighbor_labels"`
	Neighbor         Properties `json:"neighbor"`
}

// EntityRelationshipsResponse lists an entity's typed relationships
type EntityRelationshipsResponse struct {
	Source        Properties         `json:"source"`
	Relationships []RelationshipInfo `json:"relationships"`
}

// CheckRelationshipResponse reports whether two entities are connected.
// This is the one graph operation where absence is a result, not an error.
type CheckRelationshipResponse struct {
	Exists           bool   `json:"exists"`
	RelationshipType string `json:"relationship_type,omitempty"`
}

// SearchHit is one entity matched by a text search
type SearchHit struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// SearchResponse groups search hits by entity type
type SearchResponse struct {
	Results map[string][]SearchHit `json:"results"`
}

// SimilarityCandidate is a fallback search candidate with its overlap score
type SimilarityCandidate struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// SimilarityResponse holds the fallback search candidates
type SimilarityResponse struct {
	Candidates []SimilarityCandidate `json:"candidates"`
}

// Triple is a (head, relationship, tail) sample from the graph
type Triple struct {
	Head         string `json:"head"`
	Relationship string `json:"relationship"`
	Tail         string `json:"tail"`
}
