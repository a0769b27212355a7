package flow

import (
	"sort"

	"myfragance/internal/model"
)

// applyFlowControl rewires the active flow after a control question is
// answered. Segments activated by earlier control answers are removed
// (except the segment the control question itself lives in, so nested
// branches survive their own control question), then the newly selected
// segment's questions are appended in order. Questions already active are
// never inserted twice, which makes re-answering a control question
// idempotent.
func (m *Machine) applyFlowControl(q *model.Question, selectedOptionIDs []string) {
	var newSegment string
	if len(selectedOptionIDs) > 0 {
		if opt := q.OptionByID(selectedOptionIDs[0]); opt != nil {
			newSegment = opt.SegmentTag()
		}
	}

	// Drop previously activated segments, keeping the control question's
	// own segment alive.
	removable := make(map[string]bool, len(m.s.ActivatedSegments))
	retained := make([]string, 0, len(m.s.ActivatedSegments))
	for _, seg := range m.s.ActivatedSegments {
		if seg == q.FlowSegment {
			retained = append(retained, seg)
			continue
		}
		removable[seg] = true
	}

	if len(removable) > 0 {
		kept := make([]string, 0, len(m.s.ActiveIDs))
		for _, id := range m.s.ActiveIDs {
			aq, ok := m.s.Questions[id]
			if ok && removable[aq.FlowSegment] {
				continue
			}
			kept = append(kept, id)
		}
		m.s.ActiveIDs = kept
		// Responses of removed questions are retained on purpose: walking
		// back into a re-activated branch must find them again.
		m.relocate(q.ID)
	}
	m.s.ActivatedSegments = retained

	if newSegment == "" || newSegment == model.SegmentMain {
		return
	}

	// Collect the new segment from the arena, sorted by order.
	incoming := make([]model.Question, 0)
	for _, aq := range m.s.Questions {
		if aq.FlowSegment == newSegment {
			incoming = append(incoming, aq)
		}
	}
	sort.SliceStable(incoming, func(i, j int) bool { return incoming[i].Order < incoming[j].Order })

	present := make(map[string]bool, len(m.s.ActiveIDs))
	for _, id := range m.s.ActiveIDs {
		present[id] = true
	}
	inserted := false
	for _, aq := range incoming {
		if present[aq.ID] {
			continue
		}
		m.s.ActiveIDs = append(m.s.ActiveIDs, aq.ID)
		inserted = true
	}
	if inserted {
		m.s.Completed = false
	}

	for _, seg := range m.s.ActivatedSegments {
		if seg == newSegment {
			return
		}
	}
	m.s.ActivatedSegments = append(m.s.ActivatedSegments, newSegment)
}

// relocate points the current index back at the given question after the
// active list was rewritten around it.
func (m *Machine) relocate(questionID string) {
	for i, id := range m.s.ActiveIDs {
		if id == questionID {
			m.s.CurrentIndex = i
			return
		}
	}
	if m.s.CurrentIndex >= len(m.s.ActiveIDs) && len(m.s.ActiveIDs) > 0 {
		m.s.CurrentIndex = len(m.s.ActiveIDs) - 1
	}
}
