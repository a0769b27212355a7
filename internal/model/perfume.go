package model

import "time"

// Perfume is a lightweight catalog record. Key is the unique catalog key
// used everywhere the core references an item.
type Perfume struct {
	Key           string    `json:"key" bson:"_id"`
	Name          string    `json:"name" bson:"name"`
	Brand         string    `json:"brand" bson:"brand"`
	Family        string    `json:"family" bson:"family"`
	Subfamilies   []string  `json:"subfamilies,omitempty" bson:"subfamilies,omitempty"`
	Gender        string    `json:"gender,omitempty" bson:"gender,omitempty"`
	Popularity    float64   `json:"popularity" bson:"popularity"` // 0-10 scale
	Price         float64   `json:"price,omitempty" bson:"price,omitempty"`
	Intensity     string    `json:"intensity,omitempty" bson:"intensity,omitempty"`
	Projection    string    `json:"projection,omitempty" bson:"projection,omitempty"`
	Duration      string    `json:"duration,omitempty" bson:"duration,omitempty"`
	Seasons       []string  `json:"seasons,omitempty" bson:"seasons,omitempty"`
	Occasions     []string  `json:"occasions,omitempty" bson:"occasions,omitempty"`
	Personalities []string  `json:"personalities,omitempty" bson:"personalities,omitempty"`
	TopNotes      []string  `json:"topNotes,omitempty" bson:"topNotes,omitempty"`
	HeartNotes    []string  `json:"heartNotes,omitempty" bson:"heartNotes,omitempty"`
	BaseNotes     []string  `json:"baseNotes,omitempty" bson:"baseNotes,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}
