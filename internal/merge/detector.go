// Package merge implements the duplicate-detection and resolution protocol
// used when an in-memory question set is saved over an already-persisted
// benchmark.
package merge

import (
	"sort"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Bandicoot/internal/model"
)

// DetectDuplicates reports every question ID present in both the candidate
// and the persisted set. Presence in both sets is the whole criterion: a
// duplicate is reported even when the two versions are textually identical,
// and both snapshots are emitted in full rather than as a diff. Neither input
// is mutated. Results are ordered by question ID.
func DetectDuplicates(candidate, persisted map[string]model.QuestionItem) []model.DuplicateQuestionInfo {
	ids := make([]string, 0)
	for id := range candidate {
		if _, ok := persisted[id]; ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	duplicates := make([]model.DuplicateQuestionInfo, 0, len(ids))
	for _, id := range ids {
		newItem := candidate[id]
		oldItem := persisted[id]
		duplicates = append(duplicates, model.DuplicateQuestionInfo{
			QuestionID:   id,
			QuestionText: newItem.Question,
			OldVersion:   Snapshot(oldItem),
			NewVersion:   Snapshot(newItem),
		})
	}
	return duplicates
}

// Snapshot copies the comparison-relevant fields of an item into a transient
// snapshot. The snapshot type narrows the item (no original template, no
// creation date), so a plain field-name copy does the projection.
func Snapshot(item model.QuestionItem) model.QuestionSnapshot {
	var snap model.QuestionSnapshot
	copier.Copy(&snap, &item)
	return snap
}
