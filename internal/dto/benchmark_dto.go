package dto

import "github.com/lshigami/Bandicoot/internal/model"

// BenchmarkInfo summarizes one persisted benchmark for listing.
type BenchmarkInfo struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Version       string `json:"version,omitempty"`
	QuestionCount int    `json:"question_count"`
	FinishedCount int    `json:"finished_count"`
	DateCreated   string `json:"date_created,omitempty"`
	DateModified  string `json:"date_modified,omitempty"`
}

// BenchmarkContent is the full payload of a benchmark: what a save accepts
// and a load returns. Questions are keyed by question ID.
type BenchmarkContent struct {
	DatasetMetadata *model.DatasetMetadata        `json:"dataset_metadata,omitempty"`
	Questions       map[string]model.QuestionItem `json:"questions" binding:"required"`
	GlobalRubric    *model.Rubric                 `json:"global_rubric,omitempty"`
}

// SaveBenchmarkResponse reports either a clean save or the duplicates that
// blocked it. When Duplicates is non-empty nothing was persisted; the caller
// resolves them and retries through the resolve endpoint.
type SaveBenchmarkResponse struct {
	OK         bool                          `json:"ok"`
	Duplicates []model.DuplicateQuestionInfo `json:"duplicates,omitempty"`
}

// ResolveDuplicatesRequest carries the candidate question set and the
// per-question decisions. IDs missing from Resolutions default to keep_new.
type ResolveDuplicatesRequest struct {
	Questions   map[string]model.QuestionItem `json:"questions" binding:"required"`
	Resolutions model.Resolutions             `json:"resolutions"`
}

type ResolveDuplicatesResponse struct {
	Message string `json:"message"`
}
