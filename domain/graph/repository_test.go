package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripProperties(t *testing.T) {
	t.Run("removes every configured large property", func(t *testing.T) {
		out := stripProperties(map[string]any{
			"name":      "TP53",
			"id":        "ENSG00000141510",
			"sequence":  "MEEPQSDPSV...",
			"smiles":    "CC(=O)OC1=CC=CC=C1C(=O)O",
			"embedding": []float64{0.1, 0.2},
			"text":      "long description",
			"abstract":  "long abstract",
		})

		assert.Equal(t, Properties{"name": "TP53", "id": "ENSG00000141510"}, out)
		for key := range strippedProperties {
			assert.NotContains(t, out, key)
		}
	})

	t.Run("nil bag yields an empty bag", func(t *testing.T) {
		out := stripProperties(nil)
		require.NotNil(t, out)
		assert.Empty(t, out)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		in := map[string]any{"name": "TP53", "sequence": "MEEPQSDPSV"}
		stripProperties(in)
		assert.Len(t, in, 2)
	})
}

func TestCheckRelationshipQueryPrefersConnectedPairs(t *testing.T) {
	// A value can resolve several node pairs; the null-relationship rows
	// must sort after connected ones or LIMIT 1 can pick a spurious
	// negative.
	orderIdx := strings.Index(checkRelationshipQuery, "ORDER BY rel IS NULL")
	limitIdx := strings.Index(checkRelationshipQuery, "LIMIT 1")
	require.NotEqual(t, -1, orderIdx)
	require.NotEqual(t, -1, limitIdx)
	assert.Less(t, orderIdx, limitIdx)
}
