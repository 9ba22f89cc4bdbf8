package merge

import (
	"errors"
	"testing"

	"github.com/lshigami/Bandicoot/internal/model"
)

func TestApplyResolutions_MergesUnionOfBothSets(t *testing.T) {
	persisted := map[string]model.QuestionItem{
		"kept":   item("Kept?", "kept", "2025-01-01T00:00:00Z"),
		"shared": item("Shared?", "old", "2025-01-01T00:00:00Z"),
	}
	candidate := map[string]model.QuestionItem{
		"shared": item("Shared?", "new", "2025-02-01T00:00:00Z"),
		"added":  item("Added?", "added", "2025-02-01T00:00:00Z"),
	}
	duplicates := DetectDuplicates(candidate, persisted)

	merged, err := ApplyResolutions(persisted, candidate, duplicates, nil)
	if err != nil {
		t.Fatalf("ApplyResolutions failed: %v", err)
	}

	if len(merged) != 3 {
		t.Fatalf("Expected the union of both key sets (3 entries), got %d", len(merged))
	}
	for _, id := range []string{"kept", "shared", "added"} {
		if _, ok := merged[id]; !ok {
			t.Errorf("Expected %q in the merged set", id)
		}
	}
}

func TestApplyResolutions_KeepOldAndKeepNew(t *testing.T) {
	persisted := map[string]model.QuestionItem{
		"q1": item("One?", "v_old", "2025-01-01T00:00:00Z"),
		"q2": item("Two?", "v_old2", "2025-01-01T00:00:00Z"),
	}
	candidate := map[string]model.QuestionItem{
		"q1": item("One?", "v_new", "2025-02-01T00:00:00Z"),
		"q2": item("Two?", "v_new2", "2025-02-01T00:00:00Z"),
	}
	duplicates := DetectDuplicates(candidate, persisted)

	merged, err := ApplyResolutions(persisted, candidate, duplicates, model.Resolutions{
		"q1": model.ResolutionKeepOld,
		"q2": model.ResolutionKeepNew,
	})
	if err != nil {
		t.Fatalf("ApplyResolutions failed: %v", err)
	}

	if merged["q1"].RawAnswer != "v_old" {
		t.Errorf("keep_old must retain the persisted version, got %q", merged["q1"].RawAnswer)
	}
	if merged["q2"].RawAnswer != "v_new2" {
		t.Errorf("keep_new must take the candidate version, got %q", merged["q2"].RawAnswer)
	}
}

func TestApplyResolutions_DefaultsToKeepNew(t *testing.T) {
	persisted := map[string]model.QuestionItem{
		"q1": item("One?", "v_old", "2025-01-01T00:00:00Z"),
	}
	candidate := map[string]model.QuestionItem{
		"q1": item("One?", "v_new", "2025-02-01T00:00:00Z"),
		"q2": item("Two?", "v_new2", "2025-02-01T00:00:00Z"),
	}
	duplicates := DetectDuplicates(candidate, persisted)

	merged, err := ApplyResolutions(persisted, candidate, duplicates, model.Resolutions{})
	if err != nil {
		t.Fatalf("ApplyResolutions failed: %v", err)
	}

	if merged["q1"].RawAnswer != "v_new" {
		t.Errorf("Unresolved duplicates default to keep_new, got %q", merged["q1"].RawAnswer)
	}
	if merged["q2"].RawAnswer != "v_new2" {
		t.Errorf("Candidate-only questions are inserted as-is, got %q", merged["q2"].RawAnswer)
	}
}

func TestApplyResolutions_PersistedOnlySurvive(t *testing.T) {
	persisted := map[string]model.QuestionItem{
		"legacy": item("Legacy?", "legacy", "2024-01-01T00:00:00Z"),
	}
	candidate := map[string]model.QuestionItem{
		"fresh": item("Fresh?", "fresh", "2025-01-01T00:00:00Z"),
	}

	merged, err := ApplyResolutions(persisted, candidate, nil, nil)
	if err != nil {
		t.Fatalf("ApplyResolutions failed: %v", err)
	}

	if merged["legacy"].RawAnswer != "legacy" {
		t.Error("Merging must never implicitly delete persisted-only questions")
	}
	if len(merged) != 2 {
		t.Errorf("Expected 2 entries, got %d", len(merged))
	}
}

// A resolution for an ID not in the duplicate list is a no-op, not an error.
func TestApplyResolutions_IgnoresUnknownResolutionIDs(t *testing.T) {
	persisted := map[string]model.QuestionItem{
		"q1": item("One?", "v_old", "2025-01-01T00:00:00Z"),
	}
	candidate := map[string]model.QuestionItem{
		"q1": item("One?", "v_new", "2025-02-01T00:00:00Z"),
	}

	// "ghost" is not a duplicate; q1 is, but the duplicate list is empty so
	// even its keep_old has nothing to bind to.
	merged, err := ApplyResolutions(persisted, candidate, nil, model.Resolutions{
		"ghost": model.ResolutionKeepOld,
		"q1":    model.ResolutionKeepOld,
	})
	if err != nil {
		t.Fatalf("ApplyResolutions failed: %v", err)
	}
	if merged["q1"].RawAnswer != "v_new" {
		t.Errorf("Resolutions outside the duplicate list must be ignored, got %q", merged["q1"].RawAnswer)
	}
}

func TestApplyResolutions_RepeatedDuplicateIDFails(t *testing.T) {
	duplicates := []model.DuplicateQuestionInfo{
		{QuestionID: "q1"},
		{QuestionID: "q1"},
	}

	_, err := ApplyResolutions(nil, nil, duplicates, nil)
	if err == nil {
		t.Fatal("Expected an error for a repeated duplicate ID")
	}
	if !errors.Is(err, ErrDuplicateConflict) {
		t.Errorf("Expected ErrDuplicateConflict, got %v", err)
	}
}

func TestApplyResolutions_DoesNotMutateInputs(t *testing.T) {
	persisted := map[string]model.QuestionItem{
		"q1": item("One?", "v_old", "2025-01-01T00:00:00Z"),
	}
	candidate := map[string]model.QuestionItem{
		"q1": item("One?", "v_new", "2025-02-01T00:00:00Z"),
	}
	duplicates := DetectDuplicates(candidate, persisted)

	merged, err := ApplyResolutions(persisted, candidate, duplicates, nil)
	if err != nil {
		t.Fatalf("ApplyResolutions failed: %v", err)
	}

	merged["q1"] = item("One?", "mutated", "2025-03-01T00:00:00Z")
	if persisted["q1"].RawAnswer != "v_old" || candidate["q1"].RawAnswer != "v_new" {
		t.Error("The merged map must be independent of both inputs")
	}
}
