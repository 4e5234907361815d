package prediction

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed relations.yaml
var defaultRelationsYAML []byte

// RelationTable maps relation names to the model's internal relation IDs.
// It is loaded once at process start and shared read-only across requests.
type RelationTable struct {
	byName map[string]int
}

type relationsFile struct {
	Relations map[string]int `yaml:"relations"`
}

// LoadRelationTable parses a relation table from YAML. Names are matched
// case-insensitively; two names that collide after lowercasing are a
// load-time error because the table must be unambiguous.
func LoadRelationTable(data []byte) (*RelationTable, error) {
	var file relationsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse relation table: %w", err)
	}
	if len(file.Relations) == 0 {
		return nil, fmt.Errorf("relation table is empty")
	}

	byName := make(map[string]int, len(file.Relations))
	for name, id := range file.Relations {
		lower := strings.ToLower(name)
		if _, dup := byName[lower]; dup {
			return nil, fmt.Errorf("duplicate relation name %q", lower)
		}
		byName[lower] = id
	}
	return &RelationTable{byName: byName}, nil
}

// LoadRelationTableFile loads the table from a YAML file on disk, or the
// embedded default when path is empty.
func LoadRelationTableFile(path string) (*RelationTable, error) {
	data := defaultRelationsYAML
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read relation table: %w", err)
		}
		data = fileData
	}
	return LoadRelationTable(data)
}

// Resolve returns the relation ID for a name, case-insensitively
func (t *RelationTable) Resolve(name string) (int, bool) {
	id, ok := t.byName[strings.ToLower(name)]
	return id, ok
}

// Len returns the number of relations in the table
func (t *RelationTable) Len() int {
	return len(t.byName)
}

// NodeMapping maps entity display names to the model's internal node IDs
// and back. Loaded once at process start from the model's node artifact.
type NodeMapping struct {
	idByName map[string]int
	nameByID map[int]string
}

// LoadNodeMapping parses a node mapping from CSV rows of (Node, MappedID).
// A header row is detected and skipped.
func LoadNodeMapping(r io.Reader) (*NodeMapping, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2

	m := &NodeMapping{
		idByName: make(map[string]int),
		nameByID: make(map[int]string),
	}

	first := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse node mapping: %w", err)
		}

		if first {
			first = false
			if strings.EqualFold(row[0], "Node") {
				continue
			}
		}

		id, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid node id %q for %q", row[1], row[0])
		}
		m.idByName[row[0]] = id
		m.nameByID[id] = row[0]
	}

	if len(m.idByName) == 0 {
		return nil, fmt.Errorf("node mapping is empty")
	}
	return m, nil
}

// LoadNodeMappingFile loads the node mapping from a CSV file on disk
func LoadNodeMappingFile(path string) (*NodeMapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open node mapping: %w", err)
	}
	defer f.Close()
	return LoadNodeMapping(f)
}

// NodeID resolves a display name to the internal node ID
func (m *NodeMapping) NodeID(name string) (int, bool) {
	id, ok := m.idByName[name]
	return id, ok
}

// NodeName resolves an internal node ID back to the display name
func (m *NodeMapping) NodeName(id int) (string, bool) {
	name, ok := m.nameByID[id]
	return name, ok
}

// Len returns the number of mapped nodes
func (m *NodeMapping) Len() int {
	return len(m.idByName)
}
