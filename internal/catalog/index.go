package catalog

import (
	"sort"

	"myfragance/internal/model"
)

// Index is a read-only, in-memory snapshot of the perfume catalog keyed by
// catalog key. Built once per session; callers receive copies so the
// snapshot can never be mutated through results.
type Index struct {
	byKey map[string]model.Perfume
	order []string
}

// NewIndex builds an index from catalog records. Duplicate keys keep the
// first record.
func NewIndex(items []model.Perfume) *Index {
	idx := &Index{
		byKey: make(map[string]model.Perfume, len(items)),
		order: make([]string, 0, len(items)),
	}
	for _, p := range items {
		if p.Key == "" {
			continue
		}
		if _, ok := idx.byKey[p.Key]; ok {
			continue
		}
		idx.byKey[p.Key] = p
		idx.order = append(idx.order, p.Key)
	}
	return idx
}

// Lookup returns the item for a key, or nil when absent.
func (i *Index) Lookup(key string) *model.Perfume {
	p, ok := i.byKey[key]
	if !ok {
		return nil
	}
	return &p
}

// All returns every item in insertion order. The slice is a fresh copy.
func (i *Index) All() []model.Perfume {
	out := make([]model.Perfume, 0, len(i.order))
	for _, key := range i.order {
		out = append(out, i.byKey[key])
	}
	return out
}

// Len returns the item count.
func (i *Index) Len() int {
	return len(i.order)
}

// QuestionSet is a read-only snapshot of question definitions for one flow
// type, indexed by id and by flow segment.
type QuestionSet struct {
	all  []model.Question
	byID map[string]model.Question
}

// NewQuestionSet builds a question snapshot.
func NewQuestionSet(questions []model.Question) *QuestionSet {
	s := &QuestionSet{
		all:  make([]model.Question, 0, len(questions)),
		byID: make(map[string]model.Question, len(questions)),
	}
	for _, q := range questions {
		if q.ID == "" {
			continue
		}
		if _, ok := s.byID[q.ID]; ok {
			continue
		}
		s.byID[q.ID] = q
		s.all = append(s.all, q)
	}
	return s
}

// BySegment returns the questions of one flow segment sorted by order.
func (s *QuestionSet) BySegment(tag string) []model.Question {
	out := make([]model.Question, 0)
	for _, q := range s.all {
		if q.FlowSegment == tag {
			out = append(out, q)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// ByID returns one question, or nil when absent.
func (s *QuestionSet) ByID(id string) *model.Question {
	q, ok := s.byID[id]
	if !ok {
		return nil
	}
	return &q
}

// All returns every question in ingestion order.
func (s *QuestionSet) All() []model.Question {
	out := make([]model.Question, len(s.all))
	copy(out, s.all)
	return out
}
