package catalog

import (
	"testing"

	"myfragance/internal/model"
)

func TestNewIndexSkipsInvalidRecords(t *testing.T) {
	idx := NewIndex([]model.Perfume{
		{Key: "a", Name: "First A"},
		{Key: ""},
		{Key: "b", Name: "B"},
		{Key: "a", Name: "Second A"},
	})

	if idx.Len() != 2 {
		t.Fatalf("Len = %d, want 2", idx.Len())
	}
	if p := idx.Lookup("a"); p == nil || p.Name != "First A" {
		t.Errorf("Lookup(a) = %v, want the first record", p)
	}
	if p := idx.Lookup("missing"); p != nil {
		t.Errorf("Lookup(missing) = %v, want nil", p)
	}
}

func TestIndexAllPreservesOrderAndCopies(t *testing.T) {
	idx := NewIndex([]model.Perfume{
		{Key: "a", Name: "A"},
		{Key: "b", Name: "B"},
		{Key: "c", Name: "C"},
	})

	all := idx.All()
	want := []string{"a", "b", "c"}
	for i, key := range want {
		if all[i].Key != key {
			t.Errorf("All()[%d] = %q, want %q", i, all[i].Key, key)
		}
	}

	// Mutating the returned slice must not leak into the snapshot.
	all[0].Name = "mutated"
	if p := idx.Lookup("a"); p.Name != "A" {
		t.Errorf("Lookup(a).Name = %q, snapshot was mutated", p.Name)
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	idx := NewIndex([]model.Perfume{{Key: "a", Name: "A"}})

	p := idx.Lookup("a")
	p.Name = "mutated"
	if again := idx.Lookup("a"); again.Name != "A" {
		t.Errorf("Lookup(a).Name = %q, snapshot was mutated", again.Name)
	}
}

func TestQuestionSetBySegment(t *testing.T) {
	qs := NewQuestionSet([]model.Question{
		{ID: "q3", FlowSegment: "main", Order: 3},
		{ID: "q1", FlowSegment: "main", Order: 1},
		{ID: "q2", FlowSegment: "branch", Order: 2},
	})

	main := qs.BySegment("main")
	if len(main) != 2 || main[0].ID != "q1" || main[1].ID != "q3" {
		t.Errorf("BySegment(main) = %v, want [q1 q3]", main)
	}
	if got := qs.BySegment("nope"); len(got) != 0 {
		t.Errorf("BySegment(nope) = %v, want empty", got)
	}
}

func TestQuestionSetDedupes(t *testing.T) {
	qs := NewQuestionSet([]model.Question{
		{ID: "q1", Text: "first"},
		{ID: ""},
		{ID: "q1", Text: "second"},
	})

	if len(qs.All()) != 1 {
		t.Fatalf("All() = %v, want one question", qs.All())
	}
	if q := qs.ByID("q1"); q == nil || q.Text != "first" {
		t.Errorf("ByID(q1) = %v, want the first record", q)
	}
}
