package recommend

import (
	"testing"

	"myfragance/internal/catalog"
	"myfragance/internal/model"
)

func testPerfumes() []model.Perfume {
	return []model.Perfume{
		{Key: "woody-1", Name: "Woody One", Family: "woody", Subfamilies: []string{"spicy"}, Gender: "unisex", Popularity: 7, Seasons: []string{"winter"}},
		{Key: "woody-2", Name: "Woody Two", Family: "woody", Gender: "masculine", Popularity: 5},
		{Key: "woody-3", Name: "Woody Three", Family: "woody", Gender: "unisex", Popularity: 3},
		{Key: "fresh-1", Name: "Fresh One", Family: "fresh", Subfamilies: []string{"citrus"}, Gender: "unisex", Popularity: 9, Seasons: []string{"summer"}},
		{Key: "floral-1", Name: "Floral One", Family: "floral", Gender: "feminine", Popularity: 8},
		{Key: "spicy-1", Name: "Spicy One", Family: "spicy", Subfamilies: []string{"woody"}, Gender: "unisex", Popularity: 6},
	}
}

func testIndex() *catalog.Index {
	return catalog.NewIndex(testPerfumes())
}

func woodyProfile() *model.UnifiedProfile {
	return &model.UnifiedProfile{
		ID:              "up_test",
		ProfileType:     model.ProfileTypePersonal,
		PrimaryFamily:   "woody",
		Subfamilies:     []string{"spicy"},
		FamilyScores:    map[string]float64{"woody": 100, "spicy": 30},
		ConfidenceScore: 0.8,
		Seasons:         []string{"winter"},
	}
}

func TestRankNilProfileFallsBackToPopularity(t *testing.T) {
	r := NewRanker(nil)
	recs := r.Rank(nil, testIndex(), 3)

	if len(recs) != 3 {
		t.Fatalf("len(recs) = %d, want 3", len(recs))
	}
	want := []string{"fresh-1", "floral-1", "woody-1"}
	for i, key := range want {
		if recs[i].PerfumeKey != key {
			t.Errorf("recs[%d] = %q, want %q", i, recs[i].PerfumeKey, key)
		}
	}
	for _, rec := range recs {
		if len(rec.MatchFactors) != 1 || rec.MatchFactors[0].Factor != "popularity" {
			t.Errorf("fallback rec %s factors = %v, want single popularity factor", rec.PerfumeKey, rec.MatchFactors)
		}
	}
}

func TestRankLowConfidenceFallsBack(t *testing.T) {
	r := NewRanker(nil)
	p := woodyProfile()
	p.ConfidenceScore = 0.1

	recs := r.Rank(p, testIndex(), 2)
	if len(recs) != 2 {
		t.Fatalf("len(recs) = %d, want 2", len(recs))
	}
	if recs[0].PerfumeKey != "fresh-1" {
		t.Errorf("recs[0] = %q, want fresh-1 (popularity order)", recs[0].PerfumeKey)
	}
}

func TestRankPrimaryModeOrdersByScore(t *testing.T) {
	r := NewRanker(nil)
	recs := r.Rank(woodyProfile(), testIndex(), 10)

	if len(recs) == 0 {
		t.Fatal("no recommendations returned")
	}
	if recs[0].PerfumeKey != "woody-1" {
		t.Errorf("recs[0] = %q, want woody-1 (primary family, season, subfamily tags)", recs[0].PerfumeKey)
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Errorf("recs not in descending score order at %d: %v > %v", i, recs[i].Score, recs[i-1].Score)
		}
	}
}

func TestRankNoDuplicateKeys(t *testing.T) {
	dup := append(testPerfumes(), model.Perfume{Key: "woody-1", Name: "Woody One Again", Family: "woody", Popularity: 9})
	idx := catalog.NewIndex(dup)

	r := NewRanker(nil)
	recs := r.Rank(woodyProfile(), idx, 20)

	seen := make(map[string]bool)
	for _, rec := range recs {
		if seen[rec.PerfumeKey] {
			t.Fatalf("duplicate key %q in results", rec.PerfumeKey)
		}
		seen[rec.PerfumeKey] = true
	}
}

func TestRankOmitsGenderConflicts(t *testing.T) {
	r := NewRanker(nil)
	p := woodyProfile()
	p.GenderPreference = "masculine"

	recs := r.Rank(p, testIndex(), 10)
	for _, rec := range recs {
		if rec.PerfumeKey == "floral-1" {
			t.Error("feminine item should be omitted for a masculine preference")
		}
	}
}

func TestRankUnisexNeverConflicts(t *testing.T) {
	tests := []struct {
		preference string
		gender     string
		want       bool
	}{
		{"masculine", "feminine", true},
		{"feminine", "masculine", true},
		{"masculine", "unisex", false},
		{"unisex", "feminine", false},
		{"", "feminine", false},
		{"masculine", "", false},
	}
	for _, tt := range tests {
		if got := genderConflict(tt.preference, tt.gender); got != tt.want {
			t.Errorf("genderConflict(%q, %q) = %v, want %v", tt.preference, tt.gender, got, tt.want)
		}
	}
}

func TestRankFallsBackBelowMinPrimaryResults(t *testing.T) {
	// Only one item aligns with the leather family: fewer than
	// MinPrimaryResults, so the fallback ordering must win.
	items := []model.Perfume{
		{Key: "leather-1", Name: "Leather One", Family: "leather", Popularity: 2},
		{Key: "fresh-a", Name: "Fresh A", Family: "fresh", Popularity: 9},
		{Key: "floral-a", Name: "Floral A", Family: "floral", Popularity: 8},
	}
	p := &model.UnifiedProfile{
		PrimaryFamily:   "leather",
		FamilyScores:    map[string]float64{"leather": 100},
		ConfidenceScore: 0.9,
	}

	r := NewRanker(nil)
	recs := r.Rank(p, catalog.NewIndex(items), 3)

	if len(recs) != 3 {
		t.Fatalf("len(recs) = %d, want 3", len(recs))
	}
	if recs[0].PerfumeKey != "fresh-a" {
		t.Errorf("recs[0] = %q, want fresh-a (popularity fallback)", recs[0].PerfumeKey)
	}
}

func TestRankRespectsLimit(t *testing.T) {
	r := NewRanker(nil)
	recs := r.Rank(woodyProfile(), testIndex(), 2)
	if len(recs) != 2 {
		t.Errorf("len(recs) = %d, want 2", len(recs))
	}
}

func TestTierThresholds(t *testing.T) {
	r := NewRanker(nil)
	tests := []struct {
		score float64
		want  string
	}{
		{80, model.ConfidenceHigh},
		{75, model.ConfidenceHigh},
		{74.9, model.ConfidenceMedium},
		{45, model.ConfidenceMedium},
		{44.9, model.ConfidenceLow},
		{0, model.ConfidenceLow},
	}
	for _, tt := range tests {
		if got := r.tier(tt.score); got != tt.want {
			t.Errorf("tier(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestMatchScoreComposition(t *testing.T) {
	r := NewRanker(nil)
	p := woodyProfile()
	item := model.Perfume{
		Key: "woody-1", Family: "woody", Gender: "unisex",
		Popularity: 7, Seasons: []string{"winter"},
	}

	rec, aligned := r.match(p, &item)
	if rec == nil {
		t.Fatal("match returned nil")
	}
	if !aligned {
		t.Error("primary family match should count as aligned")
	}
	// 50 family + 10 season + 7 popularity.
	if rec.Score != 67 {
		t.Errorf("Score = %v, want 67", rec.Score)
	}
}

func TestOverlapRatio(t *testing.T) {
	tests := []struct {
		profile []string
		item    []string
		want    float64
	}{
		{nil, []string{"winter"}, 0},
		{[]string{"winter"}, nil, 0},
		{[]string{"winter"}, []string{"winter"}, 1},
		{[]string{"winter", "summer"}, []string{"winter"}, 0.5},
		{[]string{"winter", "summer"}, []string{"winter", "summer", "spring"}, 1},
	}
	for _, tt := range tests {
		if got := overlapRatio(tt.profile, tt.item); got != tt.want {
			t.Errorf("overlapRatio(%v, %v) = %v, want %v", tt.profile, tt.item, got, tt.want)
		}
	}
}
