package config

// ScoringConfig holds every tunable of the profile scoring engine and the
// recommendation ranker. The engines only implement the shape of the
// computation; the constants live here so they can be retuned without
// touching engine code.
type ScoringConfig struct {
	// TypeMultipliers scales family-weight contributions by profile type.
	// Gift-flow answers describe someone else and are weighted below
	// first-hand personal evaluations.
	TypeMultipliers map[string]float64 `json:"typeMultipliers"`

	// Confidence is base*completeness clamped to [floor, ceiling].
	ConfidenceBase    float64 `json:"confidenceBase"`
	ConfidenceFloor   float64 `json:"confidenceFloor"`
	ConfidenceCeiling float64 `json:"confidenceCeiling"`

	// MinConfidence is the threshold below which the ranker treats a
	// profile as absent and falls back to popularity.
	MinConfidence float64 `json:"minConfidence"`

	// Match score tier boundaries.
	HighTierThreshold   float64 `json:"highTierThreshold"`
	MediumTierThreshold float64 `json:"mediumTierThreshold"`

	// MinPrimaryResults is the smallest acceptable primary-mode result
	// count before the ranker falls back to popularity.
	MinPrimaryResults int `json:"minPrimaryResults"`

	// CandidateBuffer is the ranked candidate count cached per session,
	// oversized relative to a page so client-side hides never force a
	// recompute.
	CandidateBuffer int `json:"candidateBuffer"`
}

// DefaultScoringConfig returns the default tuning.
func DefaultScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		TypeMultipliers: map[string]float64{
			"personal": 1.0,
			"gift":     0.8,
		},
		ConfidenceBase:      0.9,
		ConfidenceFloor:     0.1,
		ConfidenceCeiling:   0.95,
		MinConfidence:       0.3,
		HighTierThreshold:   75,
		MediumTierThreshold: 45,
		MinPrimaryResults:   3,
		CandidateBuffer:     20,
	}
}

// Multiplier returns the weight multiplier for a profile type, defaulting
// to 1.0 for unknown types.
func (c *ScoringConfig) Multiplier(profileType string) float64 {
	if m, ok := c.TypeMultipliers[profileType]; ok {
		return m
	}
	return 1.0
}
