package prediction

import (
	"context"
	"log/slog"
	"sort"

	"github.com/evo-kg/evokg-api/pkg/apperror"
	"github.com/evo-kg/evokg-api/pkg/logger"
)

// Default number of tail predictions returned
const defaultTopK = 10

// Service maps human-readable identifiers to model IDs, invokes the
// scoring function, and ranks the results.
type Service struct {
	relations *RelationTable
	nodes     *NodeMapping
	scorer    Scorer
	log       *slog.Logger
}

// NewService creates the prediction service
func NewService(relations *RelationTable, nodes *NodeMapping, scorer Scorer, log *slog.Logger) *Service {
	return &Service{
		relations: relations,
		nodes:     nodes,
		scorer:    scorer,
		log:       log.With(logger.Scope("prediction.svc")),
	}
}

// scoreAll resolves identifiers and scores every tail candidate, returning
// rows sorted by descending score with ties broken by tail ID so the order
// is deterministic regardless of scorer row order.
func (s *Service) scoreAll(ctx context.Context, head, relation string) ([]TailScore, error) {
	relationID, ok := s.relations.Resolve(relation)
	if !ok {
		return nil, apperror.ErrInvalidRelation.WithMessage("unknown relation: " + relation)
	}

	headID, ok := s.nodes.NodeID(head)
	if !ok {
		return nil, apperror.NewNotFound("entity", head)
	}

	scores, err := s.scorer.ScoreTails(ctx, headID, relationID)
	if err != nil {
		s.log.Error("scoring failed", logger.Error(err))
		return nil, apperror.ErrPrediction.WithInternal(err)
	}
	if len(scores) == 0 {
		return nil, apperror.ErrPrediction.WithInternal(nil)
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].TailID < scores[j].TailID
	})
	return scores, nil
}

// PredictTopK returns the top k tail candidates for (head, relation)
func (s *Service) PredictTopK(ctx context.Context, head, relation string, k int) (*PredictionResponse, error) {
	if k <= 0 {
		k = defaultTopK
	}

	scores, err := s.scoreAll(ctx, head, relation)
	if err != nil {
		return nil, err
	}

	predictions := make([]PredictionResult, 0, k)
	for _, row := range scores {
		if len(predictions) == k {
			break
		}
		name, ok := s.nodes.NodeName(row.TailID)
		if !ok {
			// Candidate outside the node mapping; skip rather than
			// surface an internal identifier
			continue
		}
		predictions = append(predictions, PredictionResult{
			TailEntity: name,
			Score:      row.Score,
		})
	}

	return &PredictionResponse{
		HeadEntity:  head,
		Relation:    relation,
		Predictions: predictions,
	}, nil
}

// GetRank scores all candidates, assigns dense ranks by descending score
// (ties share a rank, no rank is skipped), and returns the standing of the
// requested tail along with the maximum score across all candidates.
func (s *Service) GetRank(ctx context.Context, head, relation, tail string) (*RankResponse, error) {
	tailID, ok := s.nodes.NodeID(tail)
	if !ok {
		return nil, apperror.NewNotFound("entity", tail)
	}

	scores, err := s.scoreAll(ctx, head, relation)
	if err != nil {
		return nil, err
	}

	maxScore := scores[0].Score

	rank := 1
	for i, row := range scores {
		if i > 0 && row.Score != scores[i-1].Score {
			rank++
		}
		if row.TailID == tailID {
			return &RankResponse{
				HeadEntity: head,
				Relation:   relation,
				TailEntity: tail,
				Rank:       rank,
				Score:      row.Score,
				MaxScore:   maxScore,
			}, nil
		}
	}

	return nil, apperror.ErrNotFound.WithMessage("tail entity not among scored candidates: " + tail)
}
