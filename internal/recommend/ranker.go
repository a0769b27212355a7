package recommend

import (
	"sort"

	"myfragance/internal/config"
	"myfragance/internal/model"
)

// Catalog is the read-only item index the ranker consumes. Implementations
// are expected to be immutable snapshots loaded once per session.
type Catalog interface {
	Lookup(key string) *model.Perfume
	All() []model.Perfume
}

// Ranker produces ordered, deduplicated recommendations from a scored
// profile, falling back to pure popularity when the profile is absent or
// carries too little signal. It never returns an error: inconsistent
// catalog entries are silently omitted.
type Ranker struct {
	cfg *config.ScoringConfig
}

// NewRanker creates a ranker with the given tuning.
func NewRanker(cfg *config.ScoringConfig) *Ranker {
	if cfg == nil {
		cfg = config.DefaultScoringConfig()
	}
	return &Ranker{cfg: cfg}
}

// Rank returns up to limit recommendations in descending score order.
// A nil, zero-signal, or low-confidence profile selects fallback mode, as
// does a primary pass that aligns with fewer than MinPrimaryResults items.
func (r *Ranker) Rank(profile *model.UnifiedProfile, catalog Catalog, limit int) []model.Recommendation {
	if limit <= 0 {
		limit = 10
	}
	if catalog == nil {
		return nil
	}

	if !profile.HasSignal() || profile.ConfidenceScore < r.cfg.MinConfidence {
		return r.rankByPopularity(catalog, limit)
	}

	recs := make([]model.Recommendation, 0, limit)
	seen := make(map[string]bool)
	aligned := 0
	for _, p := range catalog.All() {
		if p.Key == "" || seen[p.Key] {
			continue
		}
		seen[p.Key] = true
		rec, familyAligned := r.match(profile, &p)
		if rec == nil {
			continue
		}
		if familyAligned {
			aligned++
		}
		recs = append(recs, *rec)
	}

	if aligned < r.cfg.MinPrimaryResults {
		return r.rankByPopularity(catalog, limit)
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

// rankByPopularity is the fallback mode: highest-popularity items first,
// scored popularity*10, with a single popularity match factor.
func (r *Ranker) rankByPopularity(catalog Catalog, limit int) []model.Recommendation {
	items := catalog.All()
	sort.SliceStable(items, func(i, j int) bool { return items[i].Popularity > items[j].Popularity })

	recs := make([]model.Recommendation, 0, limit)
	seen := make(map[string]bool)
	for _, p := range items {
		if p.Key == "" || seen[p.Key] {
			continue
		}
		seen[p.Key] = true
		score := p.Popularity * 10
		recs = append(recs, model.Recommendation{
			PerfumeKey: p.Key,
			Name:       p.Name,
			Brand:      p.Brand,
			Score:      score,
			Reason:     "A popular and versatile choice",
			MatchFactors: []model.MatchFactor{
				{Factor: "popularity", Description: "Widely liked across the catalog", Weight: score},
			},
			ConfidenceLevel: r.tier(score),
		})
		if len(recs) == limit {
			break
		}
	}
	return recs
}
