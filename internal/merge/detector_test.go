package merge

import (
	"testing"

	"github.com/lshigami/Bandicoot/internal/model"
)

func item(question, answer, modified string) model.QuestionItem {
	return model.QuestionItem{
		Question:     question,
		RawAnswer:    answer,
		LastModified: modified,
	}
}

func TestDetectDuplicates_ReportsEveryOverlap(t *testing.T) {
	candidate := map[string]model.QuestionItem{
		"q1": item("One?", "1", "2025-02-01T00:00:00Z"),
		"q2": item("Two?", "2-edited", "2025-02-01T00:00:00Z"),
		"q3": item("Three?", "3", "2025-02-01T00:00:00Z"),
	}
	persisted := map[string]model.QuestionItem{
		"q2": item("Two?", "2", "2025-01-01T00:00:00Z"),
		"q3": item("Three?", "3", "2025-01-01T00:00:00Z"),
		"q4": item("Four?", "4", "2025-01-01T00:00:00Z"),
	}

	duplicates := DetectDuplicates(candidate, persisted)

	if len(duplicates) != 2 {
		t.Fatalf("Expected 2 duplicates, got %d", len(duplicates))
	}
	if duplicates[0].QuestionID != "q2" || duplicates[1].QuestionID != "q3" {
		t.Errorf("Expected duplicates ordered by ID, got %q, %q", duplicates[0].QuestionID, duplicates[1].QuestionID)
	}
}

// Identical content is still a duplicate: the criterion is ID presence in
// both sets, never content comparison.
func TestDetectDuplicates_IdenticalContentStillReported(t *testing.T) {
	same := item("Same?", "Same", "2025-01-01T00:00:00Z")
	candidate := map[string]model.QuestionItem{"q1": same}
	persisted := map[string]model.QuestionItem{"q1": same}

	duplicates := DetectDuplicates(candidate, persisted)

	if len(duplicates) != 1 {
		t.Fatalf("Expected 1 duplicate for identical content, got %d", len(duplicates))
	}
}

func TestDetectDuplicates_NoOverlap(t *testing.T) {
	candidate := map[string]model.QuestionItem{"a": item("A?", "A", "2025-01-01T00:00:00Z")}
	persisted := map[string]model.QuestionItem{"b": item("B?", "B", "2025-01-01T00:00:00Z")}

	if duplicates := DetectDuplicates(candidate, persisted); len(duplicates) != 0 {
		t.Errorf("Expected no duplicates, got %d", len(duplicates))
	}
}

func TestDetectDuplicates_SnapshotsCarryBothVersions(t *testing.T) {
	candidate := map[string]model.QuestionItem{
		"q1": item("One?", "new answer", "2025-02-01T00:00:00Z"),
	}
	persisted := map[string]model.QuestionItem{
		"q1": item("One?", "old answer", "2025-01-01T00:00:00Z"),
	}

	duplicates := DetectDuplicates(candidate, persisted)

	if len(duplicates) != 1 {
		t.Fatalf("Expected 1 duplicate, got %d", len(duplicates))
	}
	dup := duplicates[0]
	if dup.QuestionText != "One?" {
		t.Errorf("Expected question text from the candidate, got %q", dup.QuestionText)
	}
	if dup.OldVersion.RawAnswer != "old answer" || dup.NewVersion.RawAnswer != "new answer" {
		t.Errorf("Expected full snapshots of both versions, got old=%q new=%q",
			dup.OldVersion.RawAnswer, dup.NewVersion.RawAnswer)
	}
	if dup.OldVersion.LastModified != "2025-01-01T00:00:00Z" || dup.NewVersion.LastModified != "2025-02-01T00:00:00Z" {
		t.Errorf("Expected snapshot timestamps for both versions, got old=%q new=%q",
			dup.OldVersion.LastModified, dup.NewVersion.LastModified)
	}
}

func TestDetectDuplicates_DoesNotMutateInputs(t *testing.T) {
	candidate := map[string]model.QuestionItem{"q1": item("One?", "new", "2025-02-01T00:00:00Z")}
	persisted := map[string]model.QuestionItem{"q1": item("One?", "old", "2025-01-01T00:00:00Z")}

	DetectDuplicates(candidate, persisted)

	if candidate["q1"].RawAnswer != "new" || persisted["q1"].RawAnswer != "old" {
		t.Error("Detection must not mutate either input set")
	}
	if len(candidate) != 1 || len(persisted) != 1 {
		t.Error("Detection must not add or remove entries")
	}
}

func TestSnapshot_DropsPersistenceOnlyFields(t *testing.T) {
	full := model.QuestionItem{
		Question:               "Q?",
		RawAnswer:              "A",
		AnswerTemplate:         "class Answer(BaseModel): ...",
		OriginalAnswerTemplate: "class Answer(BaseModel): pass",
		LastModified:           "2025-01-01T00:00:00Z",
		DateCreated:            "2024-01-01T00:00:00Z",
		Finished:               true,
	}

	snap := Snapshot(full)

	if snap.Question != "Q?" || snap.RawAnswer != "A" || !snap.Finished {
		t.Errorf("Expected comparison fields copied, got %+v", snap)
	}
	if snap.AnswerTemplate != full.AnswerTemplate {
		t.Errorf("Expected current template in snapshot, got %q", snap.AnswerTemplate)
	}
	if snap.LastModified != full.LastModified {
		t.Errorf("Expected last_modified in snapshot, got %q", snap.LastModified)
	}
}
