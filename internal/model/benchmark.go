package model

import (
	"time"

	"gorm.io/gorm"
)

// Benchmark is a named, persisted checkpoint. Dataset metadata is flattened
// into columns; DateCreated and DateModified keep the caller-supplied
// ISO-8601 strings verbatim (CreatedAt/UpdatedAt are the row timestamps and
// carry no checkpoint semantics).
type Benchmark struct {
	ID               uint                `gorm:"primarykey" json:"id"`
	Name             string              `json:"name" gorm:"not null;uniqueIndex"`
	Description      string              `json:"description,omitempty" gorm:"type:text"`
	Version          string              `json:"version,omitempty"`
	Creator          *Creator            `json:"creator,omitempty" gorm:"type:jsonb"`
	License          string              `json:"license,omitempty"`
	Keywords         StringSlice         `json:"keywords,omitempty" gorm:"type:jsonb"`
	DateCreated      string              `json:"date_created,omitempty"`
	DateModified     string              `json:"date_modified,omitempty"`
	CustomProperties JSONMap             `json:"custom_properties,omitempty" gorm:"type:jsonb"`
	GlobalRubric     *Rubric             `json:"global_rubric,omitempty" gorm:"type:jsonb"`
	Questions        []BenchmarkQuestion `json:"questions,omitempty" gorm:"foreignKey:BenchmarkID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
	DeletedAt        gorm.DeletedAt      `gorm:"index" json:"-"`
}

// BenchmarkQuestion is one persisted question of a benchmark. QuestionID is
// the checkpoint key and is unique per benchmark.
type BenchmarkQuestion struct {
	ID                     uint            `gorm:"primarykey" json:"id"`
	BenchmarkID            uint            `json:"benchmark_id" gorm:"not null;index;uniqueIndex:idx_benchmark_question"`
	QuestionID             string          `json:"question_id" gorm:"not null;uniqueIndex:idx_benchmark_question"`
	Question               string          `json:"question" gorm:"type:text;not null"`
	RawAnswer              string          `json:"raw_answer" gorm:"type:text"`
	OriginalAnswerTemplate string          `json:"original_answer_template" gorm:"type:text"`
	AnswerTemplate         string          `json:"answer_template" gorm:"type:text"`
	Finished               bool            `json:"finished"`
	LastModified           string          `json:"last_modified" gorm:"not null"`
	DateCreated            string          `json:"date_created,omitempty"`
	Tags                   StringSlice     `json:"tags,omitempty" gorm:"type:jsonb"`
	Keywords               StringSlice     `json:"keywords,omitempty" gorm:"type:jsonb"`
	FewShotExamples        FewShotExamples `json:"few_shot_examples,omitempty" gorm:"type:jsonb"`
	QuestionRubric         *Rubric         `json:"question_rubric,omitempty" gorm:"type:jsonb"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}
