package recommend

import (
	"strings"
	"testing"
)

func minimalCategories() []Category {
	return []Category{
		{ID: "a", Label: "A", Priority: PriorityLow, Keywords: []string{"a"}, Topics: []string{"a1", "a2"}},
		{ID: "b", Label: "B", Priority: PriorityHigh, Keywords: []string{"b"}, Topics: []string{"b1"}},
	}
}

func TestValidateSeedTaxonomyPasses(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed taxonomy validation failed: %v", err)
	}
}

func TestValidateTaxonomyDetectsCycle(t *testing.T) {
	prereqs := map[string][]string{
		"a1": {"a2"},
		"a2": {"b1"},
		"b1": {"a1"},
	}
	err := validateTaxonomy(minimalCategories(), prereqs)
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention cycle, got: %v", err)
	}
}

func TestValidateTaxonomyDetectsDanglingPrereq(t *testing.T) {
	prereqs := map[string][]string{
		"a1": {"nonexistent"},
	}
	err := validateTaxonomy(minimalCategories(), prereqs)
	if err == nil {
		t.Fatal("expected error for dangling prerequisite, got nil")
	}
	if !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("error should mention the missing topic, got: %v", err)
	}
}

func TestValidateTaxonomyDetectsDuplicateCategoryID(t *testing.T) {
	cats := minimalCategories()
	cats[1].ID = "a"
	err := validateTaxonomy(cats, nil)
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidateTaxonomyDetectsSharedTopic(t *testing.T) {
	cats := minimalCategories()
	cats[1].Topics = []string{"a1"}
	err := validateTaxonomy(cats, nil)
	if err == nil {
		t.Fatal("expected error for shared topic, got nil")
	}
	if !strings.Contains(err.Error(), "more than one category") {
		t.Errorf("error should mention shared ownership, got: %v", err)
	}
}

func TestValidateTaxonomyRequiresKeywordsAndTopics(t *testing.T) {
	cats := []Category{
		{ID: "bare", Label: "Bare", Priority: PriorityLow},
	}
	err := validateTaxonomy(cats, nil)
	if err == nil {
		t.Fatal("expected error for empty category, got nil")
	}
	if !strings.Contains(err.Error(), "no keywords") || !strings.Contains(err.Error(), "no topics") {
		t.Errorf("error should mention missing keywords and topics, got: %v", err)
	}
}
