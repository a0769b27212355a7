package recommend

import (
	"fmt"

	"myfragance/internal/model"
)

// Match score composition: family alignment dominates (up to 50 points),
// metadata overlap adds up to 40, popularity breaks ties with up to 10.
const (
	primaryFamilyPoints   = 50.0
	subfamilyPoints       = 30.0
	crossSubfamilyPoints  = 25.0
	seasonPoints          = 10.0
	occasionPoints        = 10.0
	personalityPoints     = 8.0
	intensityPoints       = 6.0
	projectionPoints      = 6.0
	popularityTiebreakMax = 10.0
)

// match scores one catalog item against the profile. Returns nil when the
// item should be omitted (gender conflict). familyAligned reports whether
// any family dimension contributed, which is what counts as a "primary
// mode result".
func (r *Ranker) match(profile *model.UnifiedProfile, p *model.Perfume) (*model.Recommendation, bool) {
	if genderConflict(profile.GenderPreference, p.Gender) {
		return nil, false
	}

	var factors []model.MatchFactor
	score := 0.0

	family := 0.0
	familyDesc := ""
	switch {
	case p.Family != "" && p.Family == profile.PrimaryFamily:
		family = primaryFamilyPoints
		familyDesc = fmt.Sprintf("Belongs to your primary %s family", p.Family)
	case contains(profile.Subfamilies, p.Family):
		family = subfamilyPoints * profile.FamilyScores[p.Family] / 100
		familyDesc = fmt.Sprintf("Its %s character matches one of your secondary families", p.Family)
	case contains(p.Subfamilies, profile.PrimaryFamily):
		family = crossSubfamilyPoints
		familyDesc = fmt.Sprintf("Carries %s notes alongside its main family", profile.PrimaryFamily)
	}
	if family > 0 {
		factors = append(factors, model.MatchFactor{Factor: "family", Description: familyDesc, Weight: family})
		score += family
	}

	if w := overlapRatio(profile.Seasons, p.Seasons) * seasonPoints; w > 0 {
		factors = append(factors, model.MatchFactor{Factor: "season", Description: "Suits the seasons you answered for", Weight: w})
		score += w
	}
	if w := overlapRatio(profile.Occasions, p.Occasions) * occasionPoints; w > 0 {
		factors = append(factors, model.MatchFactor{Factor: "occasion", Description: "Fits your occasions", Weight: w})
		score += w
	}
	if w := overlapRatio(profile.Personalities, p.Personalities) * personalityPoints; w > 0 {
		factors = append(factors, model.MatchFactor{Factor: "personality", Description: "Matches your personality tags", Weight: w})
		score += w
	}
	if profile.IntensityPreference != "" && profile.IntensityPreference == p.Intensity {
		factors = append(factors, model.MatchFactor{Factor: "intensity", Description: "Has your preferred intensity", Weight: intensityPoints})
		score += intensityPoints
	}
	if profile.ProjectionPreference != "" && profile.ProjectionPreference == p.Projection {
		factors = append(factors, model.MatchFactor{Factor: "projection", Description: "Projects the way you like", Weight: projectionPoints})
		score += projectionPoints
	}

	pop := p.Popularity
	if pop > popularityTiebreakMax {
		pop = popularityTiebreakMax
	}
	if pop > 0 {
		factors = append(factors, model.MatchFactor{Factor: "popularity", Description: "Well regarded in the catalog", Weight: pop})
		score += pop
	}

	return &model.Recommendation{
		PerfumeKey:      p.Key,
		Name:            p.Name,
		Brand:           p.Brand,
		Score:           score,
		Reason:          reason(familyDesc, p),
		MatchFactors:    factors,
		ConfidenceLevel: r.tier(score),
	}, family > 0
}

// tier maps a match score onto a confidence level.
func (r *Ranker) tier(score float64) string {
	switch {
	case score >= r.cfg.HighTierThreshold:
		return model.ConfidenceHigh
	case score >= r.cfg.MediumTierThreshold:
		return model.ConfidenceMedium
	default:
		return model.ConfidenceLow
	}
}

func reason(familyDesc string, p *model.Perfume) string {
	if familyDesc != "" {
		return familyDesc
	}
	return fmt.Sprintf("%s by %s fits your overall preferences", p.Name, p.Brand)
}

// overlapRatio is |profile ∩ item| / |profile|. Zero when the profile side
// is empty, so missing answers never penalize an item.
func overlapRatio(profileSide, itemSide []string) float64 {
	if len(profileSide) == 0 || len(itemSide) == 0 {
		return 0
	}
	matched := 0
	for _, v := range profileSide {
		if contains(itemSide, v) {
			matched++
		}
	}
	return float64(matched) / float64(len(profileSide))
}

func genderConflict(preference, gender string) bool {
	if preference == "" || gender == "" {
		return false
	}
	if gender == "unisex" || preference == "unisex" {
		return false
	}
	return preference != gender
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
