package prediction

// PredictionResult is one ranked tail candidate
type PredictionResult struct {
	TailEntity string  `json:"tail_entity"`
	Score      float64 `json:"score"`
}

// PredictionResponse holds the top-K tail predictions for a query
type PredictionResponse struct {
	HeadEntity  string             `json:"head_entity"`
	Relation    string             `json:"relation"`
	Predictions []PredictionResult `json:"predictions"`
}

// RankResponse reports a specific candidate's standing among all candidates
type RankResponse struct {
	HeadEntity string  `json:"head_entity"`
	Relation   string  `json:"relation"`
	TailEntity string  `json:"tail_entity"`
	Rank       int     `json:"rank"`
	Score      float64 `json:"score"`
	MaxScore   float64 `json:"max_score"`
}
