package model

// Confidence tiers derived from the match score.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// MatchFactor is one contributing dimension of a recommendation score.
type MatchFactor struct {
	Factor      string  `json:"factor"`
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`
}

// Recommendation is one ranked catalog item. Recreated fresh on every
// ranking call, never mutated in place.
type Recommendation struct {
	PerfumeKey      string        `json:"perfumeKey"`
	Name            string        `json:"name"`
	Brand           string        `json:"brand"`
	Score           float64       `json:"score"`
	Reason          string        `json:"reason"`
	MatchFactors    []MatchFactor `json:"matchFactors,omitempty"`
	ConfidenceLevel string        `json:"confidenceLevel"`
}
