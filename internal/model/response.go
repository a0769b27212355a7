package model

import (
	"strings"
	"time"
)

// UnifiedResponse is one user's answer to one question. Re-answering the
// same question overwrites the previous response; responses are never
// partially merged.
type UnifiedResponse struct {
	QuestionID        string    `json:"questionId" bson:"questionId"`
	SelectedOptionIDs []string  `json:"selectedOptionIds,omitempty" bson:"selectedOptionIds,omitempty"`
	FreeText          string    `json:"freeText,omitempty" bson:"freeText,omitempty"`
	AnsweredAt        time.Time `json:"answeredAt" bson:"answeredAt"`
}

// HasFreeText reports whether the response carries non-blank free text.
func (r *UnifiedResponse) HasFreeText() bool {
	return strings.TrimSpace(r.FreeText) != ""
}

// Satisfies checks the response against its question's answer constraints.
func (r *UnifiedResponse) Satisfies(q *Question) bool {
	if q.RequiresFreeText {
		return r.HasFreeText()
	}
	if q.AllowsMultiple {
		return len(r.SelectedOptionIDs) >= q.MinRequired()
	}
	return len(r.SelectedOptionIDs) == 1 && r.SelectedOptionIDs[0] != ""
}
