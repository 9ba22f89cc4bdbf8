package merge

import (
	"errors"
	"fmt"

	"github.com/lshigami/Bandicoot/internal/model"
)

// ErrDuplicateConflict signals a corrupted duplicate list: the same question
// ID reported more than once. That only happens on a caller bug upstream, so
// it is surfaced as a hard failure instead of being tolerated.
var ErrDuplicateConflict = errors.New("duplicate list contains a repeated question ID")

// ApplyResolutions merges a candidate question set into the persisted one.
//
// For every ID in the duplicates list, keep_old retains the persisted item
// verbatim and keep_new the candidate item verbatim; keep_new is the default
// when the resolutions map has no entry for the ID, since the common intent
// is overwriting with freshly edited content. Candidate-only IDs are inserted
// as-is. Persisted-only IDs survive untouched: deletion is an explicit
// operation elsewhere, never a side effect of merging. The result holds
// exactly one entry per ID in the union of both inputs.
//
// Resolutions referencing IDs outside the duplicate list are ignored.
func ApplyResolutions(persisted, candidate map[string]model.QuestionItem, duplicates []model.DuplicateQuestionInfo, resolutions model.Resolutions) (map[string]model.QuestionItem, error) {
	dupIDs := make(map[string]bool, len(duplicates))
	for _, dup := range duplicates {
		if dupIDs[dup.QuestionID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateConflict, dup.QuestionID)
		}
		dupIDs[dup.QuestionID] = true
	}

	merged := make(map[string]model.QuestionItem, len(persisted)+len(candidate))
	for id, item := range persisted {
		merged[id] = item
	}
	for id, item := range candidate {
		if dupIDs[id] && resolutions[id] == model.ResolutionKeepOld {
			continue // persisted version already in place
		}
		merged[id] = item
	}
	return merged, nil
}
