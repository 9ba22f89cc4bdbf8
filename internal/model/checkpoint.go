package model

// CheckpointFormatVersion tags the checkpoint layout and routes parsing of
// older documents. Bump only on incompatible layout changes.
const CheckpointFormatVersion = "2.0"

// Checkpoint is the canonical in-memory collection of benchmark questions,
// keyed by question ID. Ordering of the map carries no meaning.
type Checkpoint struct {
	Version         string                  `json:"version"`
	Checkpoint      map[string]QuestionItem `json:"checkpoint"`
	DatasetMetadata *DatasetMetadata        `json:"dataset_metadata,omitempty"`
	GlobalRubric    *Rubric                 `json:"global_rubric,omitempty"`
}

// QuestionItem is the full state of one benchmark question. LastModified is
// mandatory; DateCreated may be absent, in which case LastModified stands in
// for display purposes but is never persisted as the creation date.
type QuestionItem struct {
	Question               string          `json:"question"`
	RawAnswer              string          `json:"raw_answer"`
	OriginalAnswerTemplate string          `json:"original_answer_template"`
	AnswerTemplate         string          `json:"answer_template"`
	Finished               bool            `json:"finished"`
	LastModified           string          `json:"last_modified"`
	DateCreated            string          `json:"date_created,omitempty"`
	Tags                   StringSlice     `json:"tags,omitempty"`
	Keywords               StringSlice     `json:"keywords,omitempty"`
	FewShotExamples        FewShotExamples `json:"few_shot_examples,omitempty"`
	QuestionRubric         *Rubric         `json:"question_rubric,omitempty"`
}

// EffectiveDateCreated is the creation timestamp to show when DateCreated was
// never recorded. The fallback is display-only and must not be written back.
func (q QuestionItem) EffectiveDateCreated() string {
	if q.DateCreated != "" {
		return q.DateCreated
	}
	return q.LastModified
}

// FewShotExample is one worked question/answer pair attached to a question.
type FewShotExample struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Rubric is a set of evaluation traits, either question-specific or shared
// across a whole checkpoint.
type Rubric struct {
	Traits []RubricTrait `json:"traits"`
}

type RubricTrait struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Kind        string `json:"kind"` // "boolean" or "score"
	MinScore    *int   `json:"min_score,omitempty"`
	MaxScore    *int   `json:"max_score,omitempty"`
}

const (
	CreatorTypePerson       = "Person"
	CreatorTypeOrganization = "Organization"
)

// Creator is the schema.org Person/Organization variant attached to dataset
// metadata. Type discriminates the two; Email and Affiliation only apply to
// persons, Description only to organizations.
type Creator struct {
	Type        string `json:"@type,omitempty"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Affiliation string `json:"affiliation,omitempty"`
	Description string `json:"description,omitempty"`
}

// DatasetMetadata describes a checkpoint as a whole. DateCreated, once set
// for a checkpoint lineage, is never overwritten by later conversions;
// DateModified is regenerated only by conversions flagged as new edits.
// Empty string / nil means the field is absent.
type DatasetMetadata struct {
	Name             string      `json:"name,omitempty"`
	Description      string      `json:"description,omitempty"`
	Version          string      `json:"version,omitempty"`
	Creator          *Creator    `json:"creator,omitempty"`
	License          string      `json:"license,omitempty"`
	Keywords         StringSlice `json:"keywords,omitempty"`
	DateCreated      string      `json:"dateCreated,omitempty"`
	DateModified     string      `json:"dateModified,omitempty"`
	CustomProperties JSONMap     `json:"custom_properties,omitempty"`
}
