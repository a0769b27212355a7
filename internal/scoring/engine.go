package scoring

import (
	"sort"
	"time"

	"myfragance/internal/config"
	"myfragance/internal/model"

	"github.com/google/uuid"
)

// Engine converts a set of responses into a UnifiedProfile. It is a pure
// computation over snapshots: safe to run on a worker goroutine as long as
// the caller copied the responses map first.
type Engine struct {
	cfg *config.ScoringConfig
}

// NewEngine creates a scoring engine with the given tuning.
func NewEngine(cfg *config.ScoringConfig) *Engine {
	if cfg == nil {
		cfg = config.DefaultScoringConfig()
	}
	return &Engine{cfg: cfg}
}

// ComputeProfile aggregates weighted family contributions from every
// response, normalizes them so the top family scores exactly 100, and
// derives completeness, confidence and metadata. A response set with no
// weighted options yields a valid zero-signal profile with primary family
// "unknown" and no family scores.
func (e *Engine) ComputeProfile(responses map[string]model.UnifiedResponse, active []model.Question, profileType string) *model.UnifiedProfile {
	multiplier := e.cfg.Multiplier(profileType)
	scores := make(map[string]float64)
	familyOrder := make([]string, 0) // first-seen order breaks ties

	// Iterate active questions in flow order so accumulation (and with it
	// tie-breaking) is deterministic regardless of map iteration.
	answered := 0
	for i := range active {
		q := &active[i]
		resp, ok := responses[q.ID]
		if !ok {
			continue
		}
		answered++
		for _, optID := range resp.SelectedOptionIDs {
			opt := q.OptionByID(optID)
			if opt == nil {
				continue
			}
			// Weight tables are maps: walk their keys sorted so first-seen
			// order (and the tie-break built on it) never depends on map
			// iteration.
			families := make([]string, 0, len(opt.FamilyWeights))
			for family := range opt.FamilyWeights {
				families = append(families, family)
			}
			sort.Strings(families)
			for _, family := range families {
				if _, seen := scores[family]; !seen {
					familyOrder = append(familyOrder, family)
				}
				scores[family] += float64(opt.FamilyWeights[family]) * multiplier
			}
		}
	}

	profile := &model.UnifiedProfile{
		ID:            "up_" + uuid.New().String()[:8],
		ProfileType:   profileType,
		PrimaryFamily: model.FamilyUnknown,
		CreatedAt:     time.Now(),
	}

	if len(active) > 0 {
		profile.AnswerCompleteness = float64(answered) / float64(len(active))
	}
	profile.ConfidenceScore = e.confidence(profile.AnswerCompleteness)

	e.extractMetadata(profile, responses, active)

	maxScore := 0.0
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}
	if maxScore <= 0 {
		// No weighted option was ever selected. FamilyScores stays empty
		// and the primary family keeps the sentinel value.
		return profile
	}

	factor := 100 / maxScore
	normalized := make(map[string]float64, len(scores))
	for family, s := range scores {
		normalized[family] = s * factor
	}
	profile.FamilyScores = normalized

	ranked := make([]string, 0, len(familyOrder))
	for _, family := range familyOrder {
		if normalized[family] > 0 {
			ranked = append(ranked, family)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return normalized[ranked[i]] > normalized[ranked[j]]
	})
	if len(ranked) > 0 {
		profile.PrimaryFamily = ranked[0]
		profile.Subfamilies = ranked[1:]
	}
	return profile
}

// confidence is base*completeness clamped into [floor, ceiling]. Monotonic
// in completeness and bounded to [0,1] by construction of the config.
func (e *Engine) confidence(completeness float64) float64 {
	c := e.cfg.ConfidenceBase * completeness
	if c < e.cfg.ConfidenceFloor {
		c = e.cfg.ConfidenceFloor
	}
	if c > e.cfg.ConfidenceCeiling {
		c = e.cfg.ConfidenceCeiling
	}
	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	return c
}
