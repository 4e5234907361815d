package graph

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evo-kg/evokg-api/pkg/apperror"
)

type stubStore struct {
	rows  []searchRow
	names []string
}

func (s *stubStore) GetEntity(ctx context.Context, label, property, value string) (Properties, error) {
	return nil, apperror.NewNotFound(label, value)
}

func (s *stubStore) Subgraph(ctx context.Context, property, value string) (*SubgraphResponse, error) {
	return nil, apperror.NewNotFound("node", value)
}

func (s *stubStore) EntityRelationships(ctx context.Context, label, property, value string) (*EntityRelationshipsResponse, error) {
	return nil, apperror.NewNotFound(label, value)
}

func (s *stubStore) CheckRelationship(ctx context.Context, aLabel, aProperty, aValue, bLabel, bProperty, bValue string) (*CheckRelationshipResponse, error) {
	return &CheckRelationshipResponse{}, nil
}

func (s *stubStore) SearchNames(ctx context.Context, term string) ([]searchRow, error) {
	return s.rows, nil
}

func (s *stubStore) AllNames(ctx context.Context) ([]string, error) {
	return s.names, nil
}

func (s *stubStore) SampleTriples(ctx context.Context, relType string, limit int) ([]Triple, error) {
	return nil, nil
}

func (s *stubStore) NodesByLabel(ctx context.Context, label string, skip, limit int) ([]Properties, error) {
	return nil, nil
}

func (s *stubStore) CreateNode(ctx context.Context, name string) error {
	return nil
}

func newTestService(store Store) *Service {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewService(store, log)
}

func TestSearch(t *testing.T) {
	t.Run("groups by type and orders by name length ascending", func(t *testing.T) {
		svc := newTestService(&stubStore{rows: []searchRow{
			{label: "Gene", name: "BRCA1-interacting", id: "g3"},
			{label: "Gene", name: "BRCA1", id: "g1"},
			{label: "Disease", name: "breast carcinoma", id: "d1"},
			{label: "Gene", name: "BRCA1P1", id: "g2"},
		}})

		resp, err := svc.Search(context.Background(), "BRCA")
		require.NoError(t, err)

		genes := resp.Results["Gene"]
		require.Len(t, genes, 3)
		assert.Equal(t, "BRCA1", genes[0].Name)
		assert.Equal(t, "BRCA1P1", genes[1].Name)
		assert.Equal(t, "BRCA1-interacting", genes[2].Name)

		require.Len(t, resp.Results["Disease"], 1)
	})

	t.Run("caps each type at five hits", func(t *testing.T) {
		rows := make([]searchRow, 0, 8)
		for i := 0; i < 8; i++ {
			rows = append(rows, searchRow{label: "Gene", name: strings.Repeat("G", i+1)})
		}
		svc := newTestService(&stubStore{rows: rows})

		resp, err := svc.Search(context.Background(), "GENE")
		require.NoError(t, err)

		genes := resp.Results["Gene"]
		require.Len(t, genes, searchHitsPerType)
		for i := 1; i < len(genes); i++ {
			assert.LessOrEqual(t, len(genes[i-1].Name), len(genes[i].Name))
		}
	})

	t.Run("unlabeled nodes group under Unknown", func(t *testing.T) {
		svc := newTestService(&stubStore{rows: []searchRow{{name: "orphan"}}})

		resp, err := svc.Search(context.Background(), "orphan")
		require.NoError(t, err)
		require.Len(t, resp.Results["Unknown"], 1)
	})

	t.Run("no rows is not found", func(t *testing.T) {
		svc := newTestService(&stubStore{})

		_, err := svc.Search(context.Background(), "nothing")
		require.Error(t, err)
		appErr, ok := err.(*apperror.Error)
		require.True(t, ok)
		assert.Equal(t, 404, appErr.HTTPStatus)
	})
}

func TestSimilarSearch(t *testing.T) {
	t.Run("below-threshold candidates never appear", func(t *testing.T) {
		svc := newTestService(&stubStore{names: []string{"BRCA1", "BRCA2", "TP53"}})

		resp, err := svc.SimilarSearch(context.Background(), "BRCA1", 0.8)
		require.NoError(t, err)

		require.Len(t, resp.Candidates, 1)
		assert.Equal(t, "BRCA1", resp.Candidates[0].Name)
		assert.Equal(t, 1.0, resp.Candidates[0].Score)
	})

	t.Run("candidates come back in descending score order", func(t *testing.T) {
		svc := newTestService(&stubStore{names: []string{"TP53", "BRCA2", "BRCA1"}})

		resp, err := svc.SimilarSearch(context.Background(), "BRCA1", 0)
		require.NoError(t, err)

		require.Len(t, resp.Candidates, 3)
		for i := 1; i < len(resp.Candidates); i++ {
			assert.GreaterOrEqual(t, resp.Candidates[i-1].Score, resp.Candidates[i].Score)
		}
		assert.Equal(t, "BRCA1", resp.Candidates[0].Name)
	})

	t.Run("caps candidates at ten", func(t *testing.T) {
		names := make([]string, 0, 12)
		for i := 0; i < 12; i++ {
			names = append(names, fmt.Sprintf("BRCA%d", i))
		}
		svc := newTestService(&stubStore{names: names})

		resp, err := svc.SimilarSearch(context.Background(), "BRCA1", 0)
		require.NoError(t, err)
		assert.Len(t, resp.Candidates, similarityCap)
	})
}

func TestSearchWithFallback(t *testing.T) {
	t.Run("exact miss falls back to similarity", func(t *testing.T) {
		svc := newTestService(&stubStore{names: []string{"BRCA1"}})

		exact, similar, err := svc.SearchWithFallback(context.Background(), "BRCA2", 0.5)
		require.NoError(t, err)
		assert.Nil(t, exact)
		require.NotNil(t, similar)
		require.Len(t, similar.Candidates, 1)
		assert.Equal(t, "BRCA1", similar.Candidates[0].Name)
	})

	t.Run("no exact hit and no candidate is not found", func(t *testing.T) {
		svc := newTestService(&stubStore{names: []string{"TP53"}})

		_, _, err := svc.SearchWithFallback(context.Background(), "BRCA1", 0.8)
		require.Error(t, err)
		appErr, ok := err.(*apperror.Error)
		require.True(t, ok)
		assert.Equal(t, 404, appErr.HTTPStatus)
	})

	t.Run("exact hit skips the fallback", func(t *testing.T) {
		svc := newTestService(&stubStore{
			rows:  []searchRow{{label: "Gene", name: "BRCA1"}},
			names: []string{"BRCA1"},
		})

		exact, similar, err := svc.SearchWithFallback(context.Background(), "BRCA1", 0.8)
		require.NoError(t, err)
		require.NotNil(t, exact)
		assert.Nil(t, similar)
	})
}
