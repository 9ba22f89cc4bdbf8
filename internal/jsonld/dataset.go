// Package jsonld converts checkpoints to and from their portable schema.org
// JSON-LD Dataset representation. Export and import are pure transforms; the
// only non-determinism is the wall-clock read behind default timestamps,
// isolated in Clock.
package jsonld

import "github.com/lshigami/Bandicoot/internal/model"

const (
	ContextSchemaOrg = "https://schema.org"

	TypeDataset            = "Dataset"
	TypeDataFeedItem       = "DataFeedItem"
	TypeQuestion           = "Question"
	TypeAnswer             = "Answer"
	TypeSoftwareSourceCode = "SoftwareSourceCode"

	// Answer templates are Pydantic class sources.
	TemplateLanguage = "python"
)

// Dataset is the root of the exported document. Creator is flattened to a
// display string: Organization creators lose their variant through a
// round-trip and come back as Person.
type Dataset struct {
	Context      string         `json:"@context"`
	Type         string         `json:"@type"`
	Name         string         `json:"name,omitempty"`
	Description  string         `json:"description,omitempty"`
	Version      string         `json:"version,omitempty"`
	Creator      string         `json:"creator,omitempty"`
	License      string         `json:"license,omitempty"`
	Keywords     []string       `json:"keywords,omitempty"`
	DateCreated  string         `json:"dateCreated,omitempty"`
	DateModified string         `json:"dateModified,omitempty"`
	Rubric       *model.Rubric  `json:"rubric,omitempty"`
	HasPart      []DataFeedItem `json:"hasPart"`
}

// DataFeedItem wraps one question with its per-item timestamps. ID carries
// the checkpoint question ID so identities survive a round-trip.
type DataFeedItem struct {
	Type         string   `json:"@type"`
	ID           string   `json:"@id,omitempty"`
	DateCreated  string   `json:"dateCreated,omitempty"`
	DateModified string   `json:"dateModified,omitempty"`
	Item         Question `json:"item"`
}

// Question is the schema.org Question extended with sibling keys for the
// fields schema.org has no vocabulary for. The importer reads back exactly
// what the exporter writes here; keys it does not know are ignored, so
// documents carrying a superset of these fields import cleanly.
type Question struct {
	Type           string      `json:"@type"`
	Text           string      `json:"text"`
	AcceptedAnswer *Answer     `json:"acceptedAnswer,omitempty"`
	HasPart        *SourceCode `json:"hasPart,omitempty"`

	Finished        bool                    `json:"finished,omitempty"`
	Tags            []string                `json:"tags,omitempty"`
	Keywords        []string                `json:"keywords,omitempty"`
	Rubric          *model.Rubric           `json:"rubric,omitempty"`
	FewShotExamples []model.FewShotExample  `json:"fewShotExamples,omitempty"`
}

type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// SourceCode holds the structured-answer template.
type SourceCode struct {
	Type                string `json:"@type"`
	Text                string `json:"text"`
	ProgrammingLanguage string `json:"programmingLanguage,omitempty"`
}
