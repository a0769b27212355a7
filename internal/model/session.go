package model

import "time"

// FlowSession is the mutable navigation state of one questionnaire run.
// It is the serialized form the flow machine operates on; the service
// layer loads it from Redis, applies one mutation, and stores it back.
type FlowSession struct {
	ID       string `json:"id"`
	UserID   string `json:"userId,omitempty"`
	FlowType string `json:"flowType"` // ProfileTypePersonal or ProfileTypeGift

	// Arena of every question ever loaded into this session, keyed by id.
	// Membership in the flow is tracked separately through ActiveIDs so
	// removed segments keep their question definitions (and responses).
	Questions map[string]Question `json:"questions"`

	// ActiveIDs is the ordered list of question ids currently in the flow.
	ActiveIDs []string `json:"activeIds"`

	CurrentIndex      int                        `json:"currentIndex"`
	Responses         map[string]UnifiedResponse `json:"responses"`
	LastAnsweredID    string                     `json:"lastAnsweredId,omitempty"`
	ActivatedSegments []string                   `json:"activatedSegments,omitempty"`
	Completed         bool                       `json:"completed"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StartSessionRequest is the request body for creating a flow session.
type StartSessionRequest struct {
	FlowType string `json:"flowType"`
}

// StartSessionResponse returns the new session, its token and the first
// question (nil when the question catalog is empty, a valid state the
// client must handle).
type StartSessionResponse struct {
	SessionID     string    `json:"sessionId"`
	Token         string    `json:"token"`
	FlowType      string    `json:"flowType"`
	QuestionCount int       `json:"questionCount"`
	FirstQuestion *Question `json:"firstQuestion,omitempty"`
}

// AnswerRequest is the request body for answering a question.
type AnswerRequest struct {
	QuestionID        string   `json:"questionId"`
	SelectedOptionIDs []string `json:"selectedOptionIds,omitempty"`
	FreeText          string   `json:"freeText,omitempty"`
}

// SessionStateResponse reports the session position after a mutation.
type SessionStateResponse struct {
	SessionID       string    `json:"sessionId"`
	CurrentQuestion *Question `json:"currentQuestion,omitempty"`
	CurrentIndex    int       `json:"currentIndex"`
	ActiveCount     int       `json:"activeCount"`
	AnsweredCount   int       `json:"answeredCount"`
	CanContinue     bool      `json:"canContinue"`
	Completed       bool      `json:"completed"`
}
