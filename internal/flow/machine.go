package flow

import (
	"sort"
	"time"

	"myfragance/internal/model"

	"github.com/google/uuid"
)

// Machine drives one questionnaire session. It owns no I/O and no locking:
// the session is loaded, mutated by exactly one operation, and stored back
// by the caller, which is also responsible for snapshotting responses
// before handing them to the scoring engine.
//
// Every operation is a silent no-op on invalid input. The caller polls
// CanContinue and IsCompleted instead of handling errors; navigation is
// driven by UI affordances that are already disabled in invalid states.
type Machine struct {
	s *model.FlowSession
}

// NewSession creates an empty flow session for the given flow type.
func NewSession(userID, flowType string) *model.FlowSession {
	now := time.Now()
	return &model.FlowSession{
		ID:        "fs_" + uuid.New().String()[:8],
		UserID:    userID,
		FlowType:  flowType,
		Questions: make(map[string]model.Question),
		Responses: make(map[string]model.UnifiedResponse),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewMachine wraps an existing session.
func NewMachine(s *model.FlowSession) *Machine {
	if s.Questions == nil {
		s.Questions = make(map[string]model.Question)
	}
	if s.Responses == nil {
		s.Responses = make(map[string]model.UnifiedResponse)
	}
	return &Machine{s: s}
}

// Session returns the underlying session state.
func (m *Machine) Session() *model.FlowSession {
	return m.s
}

// LoadMainSegment loads the full question catalog for this flow into the
// arena and activates the "main" segment, sorted by order. Index,
// responses and completion are reset. An empty catalog yields an empty
// active list, which is a valid zero-question session.
func (m *Machine) LoadMainSegment(all []model.Question) {
	m.s.Questions = make(map[string]model.Question, len(all))
	for _, q := range all {
		m.s.Questions[q.ID] = q
	}

	main := make([]model.Question, 0, len(all))
	for _, q := range all {
		if q.FlowSegment == model.SegmentMain {
			main = append(main, q)
		}
	}
	sort.SliceStable(main, func(i, j int) bool { return main[i].Order < main[j].Order })

	m.s.ActiveIDs = make([]string, 0, len(main))
	for _, q := range main {
		m.s.ActiveIDs = append(m.s.ActiveIDs, q.ID)
	}
	m.s.CurrentIndex = 0
	m.s.Responses = make(map[string]model.UnifiedResponse)
	m.s.LastAnsweredID = ""
	m.s.ActivatedSegments = nil
	m.s.Completed = false
	m.s.UpdatedAt = time.Now()
}

// Answer records (or overwrites) the response for an active question.
// Answering a question that is not in the active list is a no-op.
// Answering a flow-control question rewires the active segment set.
func (m *Machine) Answer(questionID string, selectedOptionIDs []string, freeText string) {
	if !m.isActive(questionID) {
		return
	}
	q, ok := m.s.Questions[questionID]
	if !ok {
		return
	}

	// Ordered set: drop duplicate option ids, keep first-seen order.
	seen := make(map[string]bool, len(selectedOptionIDs))
	unique := make([]string, 0, len(selectedOptionIDs))
	for _, id := range selectedOptionIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	m.s.Responses[questionID] = model.UnifiedResponse{
		QuestionID:        questionID,
		SelectedOptionIDs: unique,
		FreeText:          freeText,
		AnsweredAt:        time.Now(),
	}
	m.s.LastAnsweredID = questionID

	if q.IsControl() {
		m.applyFlowControl(&q, unique)
	}
	m.s.UpdatedAt = time.Now()
}

// CanContinue reports whether the current question's response satisfies
// its answer constraints.
func (m *Machine) CanContinue() bool {
	q := m.Current()
	if q == nil {
		return false
	}
	resp, ok := m.s.Responses[q.ID]
	if !ok {
		return false
	}
	return resp.Satisfies(q)
}

// Advance moves to the next visible question, or completes the session
// when no visible question remains. A no-op while CanContinue is false.
func (m *Machine) Advance() {
	if m.s.Completed || !m.CanContinue() {
		return
	}
	for i := m.s.CurrentIndex + 1; i < len(m.s.ActiveIDs); i++ {
		q, ok := m.s.Questions[m.s.ActiveIDs[i]]
		if ok && m.ShouldShow(&q) {
			m.s.CurrentIndex = i
			m.s.UpdatedAt = time.Now()
			return
		}
	}
	m.s.Completed = true
	m.s.UpdatedAt = time.Now()
}

// Retreat steps back to the previous answered question, walking over
// questions the user never answered (skipped branches). A no-op at the
// first question.
func (m *Machine) Retreat() {
	if m.s.CurrentIndex == 0 || len(m.s.ActiveIDs) == 0 {
		return
	}
	i := m.s.CurrentIndex - 1
	for i > 0 {
		if _, answered := m.s.Responses[m.s.ActiveIDs[i]]; answered {
			break
		}
		i--
	}
	m.s.CurrentIndex = i
	m.s.Completed = false

	// The sentinel rule resolves against the question answered just
	// before the new position.
	m.s.LastAnsweredID = ""
	if i > 0 {
		prevID := m.s.ActiveIDs[i-1]
		if _, answered := m.s.Responses[prevID]; answered {
			m.s.LastAnsweredID = prevID
		}
	}
	m.s.UpdatedAt = time.Now()
}

// IsCompleted reports session completion.
func (m *Machine) IsCompleted() bool {
	return m.s.Completed
}

// Current returns the question at the current index, or nil when the
// active list is empty or exhausted.
func (m *Machine) Current() *model.Question {
	if m.s.CurrentIndex < 0 || m.s.CurrentIndex >= len(m.s.ActiveIDs) {
		return nil
	}
	q, ok := m.s.Questions[m.s.ActiveIDs[m.s.CurrentIndex]]
	if !ok {
		return nil
	}
	return &q
}

// ActiveQuestions returns the active list in order.
func (m *Machine) ActiveQuestions() []model.Question {
	out := make([]model.Question, 0, len(m.s.ActiveIDs))
	for _, id := range m.s.ActiveIDs {
		if q, ok := m.s.Questions[id]; ok {
			out = append(out, q)
		}
	}
	return out
}

// Responses returns a copy of the stored responses, safe to hand across a
// concurrency boundary.
func (m *Machine) Responses() map[string]model.UnifiedResponse {
	out := make(map[string]model.UnifiedResponse, len(m.s.Responses))
	for k, v := range m.s.Responses {
		out[k] = v
	}
	return out
}

func (m *Machine) isActive(questionID string) bool {
	for _, id := range m.s.ActiveIDs {
		if id == questionID {
			return true
		}
	}
	return false
}
