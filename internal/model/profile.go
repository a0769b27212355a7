package model

import "time"

// Profile types. The scoring engine weighs answers differently depending
// on whether the user evaluated a perfume they tried themselves or walked
// the gift finder for someone else.
const (
	ProfileTypePersonal = "personal"
	ProfileTypeGift     = "gift"
)

// FamilyUnknown is the sentinel primary family of a zero-signal profile.
// The ranker treats such a profile as absent and falls back to popularity.
const FamilyUnknown = "unknown"

// RecipientInfo describes who a gift-flow profile is for.
type RecipientInfo struct {
	Relationship string `json:"relationship,omitempty" bson:"relationship,omitempty"`
	AgeRange     string `json:"ageRange,omitempty" bson:"ageRange,omitempty"`
	Gender       string `json:"gender,omitempty" bson:"gender,omitempty"`
}

// UnifiedProfile is the normalized, scored summary of a completed flow.
// Immutable once computed for a session.
type UnifiedProfile struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	SessionID   string `json:"sessionId" bson:"sessionId"`
	UserID      string `json:"userId,omitempty" bson:"userId,omitempty"`
	ProfileType string `json:"profileType" bson:"profileType"`

	PrimaryFamily string             `json:"primaryFamily" bson:"primaryFamily"`
	Subfamilies   []string           `json:"subfamilies,omitempty" bson:"subfamilies,omitempty"`
	FamilyScores  map[string]float64 `json:"familyScores,omitempty" bson:"familyScores,omitempty"` // normalized, max == 100

	GenderPreference   string  `json:"genderPreference,omitempty" bson:"genderPreference,omitempty"`
	ConfidenceScore    float64 `json:"confidenceScore" bson:"confidenceScore"`       // [0,1]
	AnswerCompleteness float64 `json:"answerCompleteness" bson:"answerCompleteness"` // [0,1]

	// Metadata extracted from responses in the known metadata categories.
	PreferredNotes       []string       `json:"preferredNotes,omitempty" bson:"preferredNotes,omitempty"`
	IntensityPreference  string         `json:"intensityPreference,omitempty" bson:"intensityPreference,omitempty"`
	DurationPreference   string         `json:"durationPreference,omitempty" bson:"durationPreference,omitempty"`
	ProjectionPreference string         `json:"projectionPreference,omitempty" bson:"projectionPreference,omitempty"`
	Seasons              []string       `json:"seasons,omitempty" bson:"seasons,omitempty"`
	Occasions            []string       `json:"occasions,omitempty" bson:"occasions,omitempty"`
	Personalities        []string       `json:"personalities,omitempty" bson:"personalities,omitempty"`
	PriceRange           string         `json:"priceRange,omitempty" bson:"priceRange,omitempty"`
	ReferencePerfumeKey  string         `json:"referencePerfumeKey,omitempty" bson:"referencePerfumeKey,omitempty"`
	Recipient            *RecipientInfo `json:"recipient,omitempty" bson:"recipient,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// HasSignal reports whether the profile carries usable family scores.
func (p *UnifiedProfile) HasSignal() bool {
	return p != nil && p.PrimaryFamily != FamilyUnknown && len(p.FamilyScores) > 0
}
