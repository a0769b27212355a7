package model

// Flow segment tags. "main" is always present; the remaining segments are
// activated dynamically by control questions.
const (
	SegmentMain = "main"
)

// Control categories. Answering a question in one of these categories
// rewires the active flow instead of contributing to scoring.
const (
	CategoryKnowledgeLevel = "knowledge_level"
	CategoryReferenceType  = "reference_type"
)

// ControlCategories lists every reserved flow-control category.
var ControlCategories = map[string]bool{
	CategoryKnowledgeLevel: true,
	CategoryReferenceType:  true,
}

// RulePreviousQuestion is the sentinel key inside ConditionalRules that
// matches against the id of the last answered question instead of a
// response category.
const RulePreviousQuestion = "previousQuestion"

// Metadata categories recognized by the scoring engine. Responses in these
// categories populate profile metadata rather than (or in addition to)
// family scores.
const (
	CategoryGender      = "gender"
	CategoryIntensity   = "intensity"
	CategoryDuration    = "duration"
	CategoryProjection  = "projection"
	CategorySeason      = "season"
	CategoryOccasion    = "occasion"
	CategoryPersonality = "personality"
	CategoryPriceRange  = "price_range"
	CategoryRecipient   = "recipient"
	CategoryReference   = "reference_perfume"
	CategoryNotes       = "preferred_notes"
)

// Option is one selectable answer for a Question. Value is the canonical
// string used for matching and weighting; ID only identifies the option
// within its parent question.
type Option struct {
	ID            string         `json:"id" bson:"id"`
	Label         string         `json:"label" bson:"label"`
	Value         string         `json:"value" bson:"value"`
	Description   string         `json:"description,omitempty" bson:"description,omitempty"`
	FamilyWeights map[string]int `json:"familyWeights,omitempty" bson:"familyWeights,omitempty"`

	// Contextual tags copied into profile metadata when selected.
	Seasons       []string `json:"seasons,omitempty" bson:"seasons,omitempty"`
	Occasions     []string `json:"occasions,omitempty" bson:"occasions,omitempty"`
	Personalities []string `json:"personalities,omitempty" bson:"personalities,omitempty"`
	Intensity     string   `json:"intensity,omitempty" bson:"intensity,omitempty"`
	Projection    string   `json:"projection,omitempty" bson:"projection,omitempty"`

	// NextSegment names the flow segment this option activates when its
	// question belongs to a control category. Empty means the option value
	// doubles as the segment tag.
	NextSegment string `json:"nextSegment,omitempty" bson:"nextSegment,omitempty"`
}

// SegmentTag returns the flow segment this option activates.
func (o *Option) SegmentTag() string {
	if o.NextSegment != "" {
		return o.NextSegment
	}
	return o.Value
}

// Question is one questionnaire entry. Questions are immutable reference
// data for the duration of a flow session.
type Question struct {
	ID               string            `json:"id" bson:"_id,omitempty"`
	FlowType         string            `json:"flowType" bson:"flowType"` // "personal" or "gift"
	Category         string            `json:"category" bson:"category"`
	FlowSegment      string            `json:"flowSegment" bson:"flowSegment"`
	Order            int               `json:"order" bson:"order"`
	Text             string            `json:"text" bson:"text"`
	Subtitle         string            `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	AllowsMultiple   bool              `json:"allowsMultiple" bson:"allowsMultiple"`
	MinSelections    int               `json:"minSelections,omitempty" bson:"minSelections,omitempty"`
	MaxSelections    int               `json:"maxSelections,omitempty" bson:"maxSelections,omitempty"`
	RequiresFreeText bool              `json:"requiresFreeText" bson:"requiresFreeText"`
	IsConditional    bool              `json:"isConditional" bson:"isConditional"`
	ConditionalRules map[string]string `json:"conditionalRules,omitempty" bson:"conditionalRules,omitempty"`
	Options          []Option          `json:"options,omitempty" bson:"options,omitempty"`
}

// IsControl reports whether answering this question drives flow branching.
func (q *Question) IsControl() bool {
	return ControlCategories[q.Category]
}

// OptionByID finds an option by id. Returns nil when absent.
func (q *Question) OptionByID(id string) *Option {
	for i := range q.Options {
		if q.Options[i].ID == id {
			return &q.Options[i]
		}
	}
	return nil
}

// MinRequired returns the effective minimum selection count for a
// multi-select question (defaults to 1).
func (q *Question) MinRequired() int {
	if q.MinSelections > 0 {
		return q.MinSelections
	}
	return 1
}
