package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/evo-kg/evokg-api/internal/config"
)

// TailScore is one scored tail candidate from the model
type TailScore struct {
	TailID int     `json:"tail_id"`
	Score  float64 `json:"score"`
}

// Scorer is the opaque link-prediction scoring function: given a head and
// relation it scores every tail candidate. The model internals are out of
// scope; implementations only need to return the full candidate set.
type Scorer interface {
	ScoreTails(ctx context.Context, headID, relationID int) ([]TailScore, error)
}

// HTTPScorer calls an external inference service that hosts the trained
// KGE model.
type HTTPScorer struct {
	baseURL string
	client  *http.Client
}

// NewHTTPScorer creates a scorer from the model settings
func NewHTTPScorer(cfg *config.Config) *HTTPScorer {
	return &HTTPScorer{
		baseURL: cfg.Model.ScorerURL,
		client:  &http.Client{Timeout: cfg.Model.ScorerTimeout},
	}
}

type scoreRequest struct {
	HeadID     int `json:"head_id"`
	RelationID int `json:"relation_id"`
}

type scoreResponse struct {
	Scores []TailScore `json:"scores"`
}

// ScoreTails scores all tail candidates for (headID, relationID)
func (s *HTTPScorer) ScoreTails(ctx context.Context, headID, relationID int) ([]TailScore, error) {
	body, err := json.Marshal(scoreRequest{HeadID: headID, RelationID: relationID})
	if err != nil {
		return nil, fmt.Errorf("encode score request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/score", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build score request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call scorer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scorer returned status %d", resp.StatusCode)
	}

	var out scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode score response: %w", err)
	}
	return out.Scores, nil
}
