package flow

import "myfragance/internal/model"

// ShouldShow resolves conditional visibility. Non-conditional questions
// are always visible; conditional questions require every rule to match.
// The "previousQuestion" rule key compares against the last answered
// question id; every other key is treated as a response category.
func (m *Machine) ShouldShow(q *model.Question) bool {
	if !q.IsConditional {
		return true
	}
	for key, expected := range q.ConditionalRules {
		if key == model.RulePreviousQuestion {
			if m.s.LastAnsweredID != expected {
				return false
			}
			continue
		}
		value, ok := m.categoryValue(key)
		if !ok || value != expected {
			return false
		}
	}
	return true
}

// categoryValue reads the selected value of the first active question in
// the given category that has a stored response. Recomputed on every call
// rather than maintained incrementally, so overwritten responses can
// never leave a stale index behind.
func (m *Machine) categoryValue(category string) (string, bool) {
	for _, id := range m.s.ActiveIDs {
		q, ok := m.s.Questions[id]
		if !ok || q.Category != category {
			continue
		}
		resp, answered := m.s.Responses[id]
		if !answered {
			continue
		}
		if len(resp.SelectedOptionIDs) > 0 {
			if opt := q.OptionByID(resp.SelectedOptionIDs[0]); opt != nil {
				return opt.Value, true
			}
		}
		if resp.HasFreeText() {
			return resp.FreeText, true
		}
		return "", false
	}
	return "", false
}
