package flow

import (
	"testing"

	"myfragance/internal/model"
)

// testCatalog builds a gift-style question set with one control question
// in main, a nested control inside segment "branch", and two leaf segments.
func testCatalog() []model.Question {
	return []model.Question{
		{
			ID: "q_recipient", FlowType: model.ProfileTypeGift,
			Category: model.CategoryRecipient, FlowSegment: model.SegmentMain, Order: 1,
			Options: []model.Option{
				{ID: "r1", Label: "Partner", Value: "partner"},
				{ID: "r2", Label: "Friend", Value: "friend"},
			},
		},
		{
			ID: "q_knowledge", FlowType: model.ProfileTypeGift,
			Category: model.CategoryKnowledgeLevel, FlowSegment: model.SegmentMain, Order: 2,
			Options: []model.Option{
				{ID: "k1", Label: "I know their taste", Value: "knows_taste", NextSegment: "branch"},
				{ID: "k2", Label: "No idea", Value: "no_idea", NextSegment: "persona"},
			},
		},
		{
			ID: "q_price", FlowType: model.ProfileTypeGift,
			Category: model.CategoryPriceRange, FlowSegment: model.SegmentMain, Order: 3,
			Options: []model.Option{
				{ID: "p1", Label: "Budget", Value: "budget"},
				{ID: "p2", Label: "Premium", Value: "premium"},
			},
		},
		{
			ID: "q_reference_type", FlowType: model.ProfileTypeGift,
			Category: model.CategoryReferenceType, FlowSegment: "branch", Order: 10,
			Options: []model.Option{
				{ID: "rt1", Label: "A perfume", Value: "by_perfume", NextSegment: "by_perfume"},
				{ID: "rt2", Label: "Scent types", Value: "by_scent", NextSegment: "by_scent"},
			},
		},
		{
			ID: "q_reference_name", FlowType: model.ProfileTypeGift,
			Category: model.CategoryReference, FlowSegment: "by_perfume", Order: 20,
			RequiresFreeText: true,
		},
		{
			ID: "q_scent_types", FlowType: model.ProfileTypeGift,
			Category: "scent_preference", FlowSegment: "by_scent", Order: 30,
			AllowsMultiple: true, MinSelections: 2,
			Options: []model.Option{
				{ID: "s1", Label: "Woody", Value: "woody"},
				{ID: "s2", Label: "Fresh", Value: "fresh"},
				{ID: "s3", Label: "Floral", Value: "floral"},
			},
		},
		{
			ID: "q_persona", FlowType: model.ProfileTypeGift,
			Category: model.CategoryPersonality, FlowSegment: "persona", Order: 40,
			Options: []model.Option{
				{ID: "pe1", Label: "Elegant", Value: "elegant"},
			},
		},
	}
}

func newTestMachine(t *testing.T) *Machine {
	t.Helper()
	m := NewMachine(NewSession("u_test", model.ProfileTypeGift))
	m.LoadMainSegment(testCatalog())
	return m
}

func TestLoadMainSegment(t *testing.T) {
	m := newTestMachine(t)
	s := m.Session()

	want := []string{"q_recipient", "q_knowledge", "q_price"}
	if len(s.ActiveIDs) != len(want) {
		t.Fatalf("ActiveIDs = %v, want %v", s.ActiveIDs, want)
	}
	for i, id := range want {
		if s.ActiveIDs[i] != id {
			t.Errorf("ActiveIDs[%d] = %q, want %q", i, s.ActiveIDs[i], id)
		}
	}
	if len(s.Questions) != 7 {
		t.Errorf("arena size = %d, want 7", len(s.Questions))
	}
	if cur := m.Current(); cur == nil || cur.ID != "q_recipient" {
		t.Errorf("Current = %v, want q_recipient", cur)
	}
}

func TestLoadMainSegmentEmptyCatalog(t *testing.T) {
	m := NewMachine(NewSession("u_test", model.ProfileTypePersonal))
	m.LoadMainSegment(nil)

	if cur := m.Current(); cur != nil {
		t.Errorf("Current = %v, want nil", cur)
	}
	if m.CanContinue() {
		t.Error("CanContinue should be false for an empty session")
	}
	m.Advance()
	if m.IsCompleted() {
		t.Error("Advance on an empty session should not complete it")
	}
}

func TestAnswerInactiveQuestionIgnored(t *testing.T) {
	m := newTestMachine(t)

	// q_persona exists in the arena but its segment was never activated.
	m.Answer("q_persona", []string{"pe1"}, "")
	if len(m.Responses()) != 0 {
		t.Errorf("responses = %v, want none", m.Responses())
	}
	m.Answer("q_unknown", []string{"x"}, "")
	if len(m.Responses()) != 0 {
		t.Errorf("responses = %v, want none", m.Responses())
	}
}

func TestAnswerDedupesOptionIDs(t *testing.T) {
	m := newTestMachine(t)
	m.Answer("q_recipient", []string{"r1", "r1", "", "r2", "r1"}, "")

	resp := m.Responses()["q_recipient"]
	want := []string{"r1", "r2"}
	if len(resp.SelectedOptionIDs) != len(want) {
		t.Fatalf("SelectedOptionIDs = %v, want %v", resp.SelectedOptionIDs, want)
	}
	for i, id := range want {
		if resp.SelectedOptionIDs[i] != id {
			t.Errorf("SelectedOptionIDs[%d] = %q, want %q", i, resp.SelectedOptionIDs[i], id)
		}
	}
}

func TestAnswerOverwritesPrevious(t *testing.T) {
	m := newTestMachine(t)
	m.Answer("q_recipient", []string{"r1"}, "")
	m.Answer("q_recipient", []string{"r2"}, "")

	resp := m.Responses()["q_recipient"]
	if len(resp.SelectedOptionIDs) != 1 || resp.SelectedOptionIDs[0] != "r2" {
		t.Errorf("SelectedOptionIDs = %v, want [r2]", resp.SelectedOptionIDs)
	}
}

func TestCanContinueConstraints(t *testing.T) {
	m := newTestMachine(t)

	if m.CanContinue() {
		t.Error("CanContinue should be false before answering")
	}
	m.Answer("q_recipient", nil, "")
	if m.CanContinue() {
		t.Error("CanContinue should be false with no selection")
	}
	m.Answer("q_recipient", []string{"r1"}, "")
	if !m.CanContinue() {
		t.Error("CanContinue should be true after a valid answer")
	}
}

func TestCanContinueMinSelections(t *testing.T) {
	m := newTestMachine(t)
	m.Answer("q_recipient", []string{"r1"}, "")
	m.Advance()
	m.Answer("q_knowledge", []string{"k1"}, "")
	m.Advance() // q_price
	m.Answer("q_price", []string{"p1"}, "")
	m.Advance() // q_reference_type
	m.Answer("q_reference_type", []string{"rt2"}, "")
	m.Advance()

	cur := m.Current()
	if cur == nil || cur.ID != "q_scent_types" {
		t.Fatalf("Current = %v, want q_scent_types", cur)
	}

	m.Answer("q_scent_types", []string{"s1"}, "")
	if m.CanContinue() {
		t.Error("CanContinue should be false below the minimum selection count")
	}
	m.Answer("q_scent_types", []string{"s1", "s3"}, "")
	if !m.CanContinue() {
		t.Error("CanContinue should be true at the minimum selection count")
	}
}

func TestCanContinueFreeText(t *testing.T) {
	m := newTestMachine(t)
	m.Answer("q_recipient", []string{"r1"}, "")
	m.Advance()
	m.Answer("q_knowledge", []string{"k1"}, "")
	m.Advance()
	m.Answer("q_price", []string{"p2"}, "")
	m.Advance()
	m.Answer("q_reference_type", []string{"rt1"}, "")
	m.Advance()

	cur := m.Current()
	if cur == nil || cur.ID != "q_reference_name" {
		t.Fatalf("Current = %v, want q_reference_name", cur)
	}

	m.Answer("q_reference_name", nil, "   ")
	if m.CanContinue() {
		t.Error("CanContinue should be false for blank free text")
	}
	m.Answer("q_reference_name", nil, "Noir Santal")
	if !m.CanContinue() {
		t.Error("CanContinue should be true for non-blank free text")
	}
}

func TestAdvanceBlockedWithoutAnswer(t *testing.T) {
	m := newTestMachine(t)
	m.Advance()
	if cur := m.Current(); cur == nil || cur.ID != "q_recipient" {
		t.Errorf("Current = %v, want q_recipient (advance should be a no-op)", cur)
	}
}

func TestAdvanceToCompletion(t *testing.T) {
	m := newTestMachine(t)
	m.Answer("q_recipient", []string{"r2"}, "")
	m.Advance()
	m.Answer("q_knowledge", []string{"k2"}, "")
	m.Advance()
	m.Answer("q_price", []string{"p1"}, "")
	m.Advance()
	m.Answer("q_persona", []string{"pe1"}, "")
	m.Advance()

	if !m.IsCompleted() {
		t.Fatal("session should be completed after advancing past the last question")
	}
	// Further advances stay terminal.
	m.Advance()
	if !m.IsCompleted() {
		t.Error("completed session should remain completed")
	}
}

func TestControlActivatesSegment(t *testing.T) {
	m := newTestMachine(t)
	m.Answer("q_knowledge", []string{"k1"}, "")

	s := m.Session()
	want := []string{"q_recipient", "q_knowledge", "q_price", "q_reference_type"}
	if len(s.ActiveIDs) != len(want) {
		t.Fatalf("ActiveIDs = %v, want %v", s.ActiveIDs, want)
	}
	for i, id := range want {
		if s.ActiveIDs[i] != id {
			t.Errorf("ActiveIDs[%d] = %q, want %q", i, s.ActiveIDs[i], id)
		}
	}
	if len(s.ActivatedSegments) != 1 || s.ActivatedSegments[0] != "branch" {
		t.Errorf("ActivatedSegments = %v, want [branch]", s.ActivatedSegments)
	}
}

func TestControlReanswerIsIdempotent(t *testing.T) {
	m := newTestMachine(t)
	m.Answer("q_knowledge", []string{"k1"}, "")
	before := len(m.Session().ActiveIDs)

	m.Answer("q_knowledge", []string{"k1"}, "")
	if got := len(m.Session().ActiveIDs); got != before {
		t.Errorf("ActiveIDs grew on re-answer: %d, want %d", got, before)
	}
}

func TestControlReanswerSwapsSegments(t *testing.T) {
	m := newTestMachine(t)
	m.Answer("q_knowledge", []string{"k1"}, "")
	m.Answer("q_reference_type", []string{"rt1"}, "")

	// Both the branch and its leaf segment are live.
	if !containsID(m.Session().ActiveIDs, "q_reference_name") {
		t.Fatalf("ActiveIDs = %v, want q_reference_name present", m.Session().ActiveIDs)
	}

	// Switching the outer control drops everything it activated.
	m.Answer("q_knowledge", []string{"k2"}, "")
	s := m.Session()
	if containsID(s.ActiveIDs, "q_reference_type") || containsID(s.ActiveIDs, "q_reference_name") {
		t.Errorf("ActiveIDs = %v, old branch should be removed", s.ActiveIDs)
	}
	if !containsID(s.ActiveIDs, "q_persona") {
		t.Errorf("ActiveIDs = %v, want q_persona present", s.ActiveIDs)
	}
}

func TestNestedControlKeepsOwnSegment(t *testing.T) {
	m := newTestMachine(t)
	m.Answer("q_knowledge", []string{"k1"}, "")
	m.Answer("q_reference_type", []string{"rt1"}, "")

	// Re-answering the nested control replaces only its leaf segment; the
	// segment the control itself lives in must survive.
	m.Answer("q_reference_type", []string{"rt2"}, "")
	s := m.Session()
	if !containsID(s.ActiveIDs, "q_reference_type") {
		t.Errorf("ActiveIDs = %v, control question lost its own segment", s.ActiveIDs)
	}
	if containsID(s.ActiveIDs, "q_reference_name") {
		t.Errorf("ActiveIDs = %v, old leaf segment should be removed", s.ActiveIDs)
	}
	if !containsID(s.ActiveIDs, "q_scent_types") {
		t.Errorf("ActiveIDs = %v, want q_scent_types present", s.ActiveIDs)
	}
}

func TestControlReanswerClearsCompletion(t *testing.T) {
	m := newTestMachine(t)
	m.Answer("q_recipient", []string{"r1"}, "")
	m.Advance()
	m.Answer("q_knowledge", []string{"k2"}, "")
	m.Advance()
	m.Answer("q_price", []string{"p1"}, "")
	m.Advance()
	m.Answer("q_persona", []string{"pe1"}, "")
	m.Advance()
	if !m.IsCompleted() {
		t.Fatal("session should be completed")
	}

	// Walking back and switching the branch reopens the session.
	m.Retreat()
	m.Retreat()
	m.Retreat()
	m.Answer("q_knowledge", []string{"k1"}, "")
	if m.IsCompleted() {
		t.Error("activating a new segment should clear completion")
	}
	if !containsID(m.Session().ActiveIDs, "q_reference_type") {
		t.Errorf("ActiveIDs = %v, want q_reference_type present", m.Session().ActiveIDs)
	}
}

func TestRetreatWalksOverUnanswered(t *testing.T) {
	m := newTestMachine(t)
	m.Answer("q_recipient", []string{"r1"}, "")
	m.Advance()
	m.Answer("q_knowledge", []string{"k2"}, "")
	m.Advance() // at q_price, unanswered
	m.Retreat()

	if cur := m.Current(); cur == nil || cur.ID != "q_knowledge" {
		t.Errorf("Current = %v, want q_knowledge", cur)
	}
	if got := m.Session().LastAnsweredID; got != "q_recipient" {
		t.Errorf("LastAnsweredID = %q, want q_recipient", got)
	}
}

func TestRetreatAtStart(t *testing.T) {
	m := newTestMachine(t)
	m.Retreat()
	if cur := m.Current(); cur == nil || cur.ID != "q_recipient" {
		t.Errorf("Current = %v, want q_recipient", cur)
	}
}

func TestNavigationTerminates(t *testing.T) {
	m := newTestMachine(t)

	// Always answer the branch-heavy path; the walk must complete within
	// one advance per ever-active question, even with segment insertion.
	bound := len(testCatalog()) + 1
	steps := 0
	for !m.IsCompleted() {
		if steps > bound {
			t.Fatalf("session did not complete within %d advances", bound)
		}
		cur := m.Current()
		if cur == nil {
			t.Fatal("Current returned nil before completion")
		}
		answerValid(m, cur)
		m.Advance()
		steps++
	}
}

// answerValid gives any question a response that satisfies it.
func answerValid(m *Machine, q *model.Question) {
	if q.RequiresFreeText {
		m.Answer(q.ID, nil, "some text")
		return
	}
	n := q.MinRequired()
	if !q.AllowsMultiple {
		n = 1
	}
	ids := make([]string, 0, n)
	for i := 0; i < n && i < len(q.Options); i++ {
		ids = append(ids, q.Options[i].ID)
	}
	m.Answer(q.ID, ids, "")
}

func TestConditionalPreviousQuestion(t *testing.T) {
	catalog := []model.Question{
		{
			ID: "q_a", FlowType: model.ProfileTypePersonal,
			Category: "scent_preference", FlowSegment: model.SegmentMain, Order: 1,
			Options: []model.Option{{ID: "a1", Label: "Woody", Value: "woody"}},
		},
		{
			ID: "q_b", FlowType: model.ProfileTypePersonal,
			Category: model.CategoryNotes, FlowSegment: model.SegmentMain, Order: 2,
			RequiresFreeText: true,
			IsConditional:    true,
			ConditionalRules: map[string]string{model.RulePreviousQuestion: "q_a"},
		},
		{
			ID: "q_c", FlowType: model.ProfileTypePersonal,
			Category: model.CategoryPriceRange, FlowSegment: model.SegmentMain, Order: 3,
			Options: []model.Option{{ID: "c1", Label: "Budget", Value: "budget"}},
		},
	}

	m := NewMachine(NewSession("u_test", model.ProfileTypePersonal))
	m.LoadMainSegment(catalog)

	m.Answer("q_a", []string{"a1"}, "")
	m.Advance()
	if cur := m.Current(); cur == nil || cur.ID != "q_b" {
		t.Fatalf("Current = %v, want q_b (condition satisfied)", cur)
	}

	m.Answer("q_b", nil, "vanilla")
	m.Advance()
	if cur := m.Current(); cur == nil || cur.ID != "q_c" {
		t.Fatalf("Current = %v, want q_c", cur)
	}
}

func TestConditionalHiddenAfterRetreat(t *testing.T) {
	catalog := []model.Question{
		{
			ID: "q_first", FlowType: model.ProfileTypePersonal,
			Category: model.CategoryGender, FlowSegment: model.SegmentMain, Order: 1,
			Options: []model.Option{{ID: "f1", Value: "unisex"}},
		},
		{
			ID: "q_trigger", FlowType: model.ProfileTypePersonal,
			Category: model.CategoryPriceRange, FlowSegment: model.SegmentMain, Order: 2,
			Options: []model.Option{{ID: "t1", Value: "mid"}},
		},
		{
			ID: "q_cond", FlowType: model.ProfileTypePersonal,
			Category: model.CategoryNotes, FlowSegment: model.SegmentMain, Order: 3,
			RequiresFreeText: true,
			IsConditional:    true,
			ConditionalRules: map[string]string{model.RulePreviousQuestion: "q_trigger"},
		},
	}

	m := NewMachine(NewSession("u_test", model.ProfileTypePersonal))
	m.LoadMainSegment(catalog)

	m.Answer("q_first", []string{"f1"}, "")
	m.Advance()
	m.Answer("q_trigger", []string{"t1"}, "")
	m.Advance()

	cond := m.Current()
	if cond == nil || cond.ID != "q_cond" {
		t.Fatalf("Current = %v, want q_cond after answering its trigger", cond)
	}
	if !m.ShouldShow(cond) {
		t.Error("ShouldShow should be true right after the trigger was answered")
	}

	// Retreating past the trigger rebinds the sentinel to q_first.
	m.Retreat()
	if m.ShouldShow(cond) {
		t.Error("ShouldShow should be false after retreating past the trigger")
	}
}

func TestConditionalCategoryValue(t *testing.T) {
	catalog := []model.Question{
		{
			ID: "q_gender", FlowType: model.ProfileTypePersonal,
			Category: model.CategoryGender, FlowSegment: model.SegmentMain, Order: 1,
			Options: []model.Option{
				{ID: "g1", Label: "Feminine", Value: "feminine"},
				{ID: "g2", Label: "Masculine", Value: "masculine"},
			},
		},
		{
			ID: "q_fem_only", FlowType: model.ProfileTypePersonal,
			Category: "scent_preference", FlowSegment: model.SegmentMain, Order: 2,
			IsConditional:    true,
			ConditionalRules: map[string]string{model.CategoryGender: "feminine"},
			Options:          []model.Option{{ID: "f1", Label: "Floral", Value: "floral"}},
		},
		{
			ID: "q_last", FlowType: model.ProfileTypePersonal,
			Category: model.CategoryPriceRange, FlowSegment: model.SegmentMain, Order: 3,
			Options: []model.Option{{ID: "l1", Label: "Budget", Value: "budget"}},
		},
	}

	m := NewMachine(NewSession("u_test", model.ProfileTypePersonal))
	m.LoadMainSegment(catalog)

	m.Answer("q_gender", []string{"g2"}, "")
	m.Advance()
	if cur := m.Current(); cur == nil || cur.ID != "q_last" {
		t.Fatalf("Current = %v, want q_last (q_fem_only hidden)", cur)
	}

	// Overwriting the gender answer flips visibility with no stale state.
	m.Retreat()
	m.Answer("q_gender", []string{"g1"}, "")
	m.Advance()
	if cur := m.Current(); cur == nil || cur.ID != "q_fem_only" {
		t.Fatalf("Current = %v, want q_fem_only (condition now satisfied)", cur)
	}
}

func TestResponsesReturnsCopy(t *testing.T) {
	m := newTestMachine(t)
	m.Answer("q_recipient", []string{"r1"}, "")

	snap := m.Responses()
	delete(snap, "q_recipient")
	if len(m.Responses()) != 1 {
		t.Error("mutating the snapshot must not affect the session")
	}
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
