package model

// QuestionSnapshot carries the comparison-relevant fields of one version of a
// question. Snapshots are transient: produced by a duplicate check, consumed
// by the resolution applier, never persisted.
type QuestionSnapshot struct {
	Question        string          `json:"question"`
	RawAnswer       string          `json:"raw_answer"`
	AnswerTemplate  string          `json:"answer_template"`
	Finished        bool            `json:"finished"`
	Tags            StringSlice     `json:"tags,omitempty"`
	Keywords        StringSlice     `json:"keywords,omitempty"`
	FewShotExamples FewShotExamples `json:"few_shot_examples,omitempty"`
	QuestionRubric  *Rubric         `json:"question_rubric,omitempty"`
	LastModified    string          `json:"last_modified"`
}

// DuplicateQuestionInfo pairs the persisted and candidate versions of a
// question whose ID exists in both sets. Both snapshots are complete, not
// diffs; which fields actually differ is the caller's concern.
type DuplicateQuestionInfo struct {
	QuestionID   string           `json:"question_id"`
	QuestionText string           `json:"question_text"`
	OldVersion   QuestionSnapshot `json:"old_version"`
	NewVersion   QuestionSnapshot `json:"new_version"`
}

// Resolution decides which version of a duplicated question wins a merge.
type Resolution string

const (
	ResolutionKeepOld Resolution = "keep_old"
	ResolutionKeepNew Resolution = "keep_new"
)

// Resolutions maps question IDs to merge decisions. IDs absent from the map
// default to keep_new.
type Resolutions map[string]Resolution
