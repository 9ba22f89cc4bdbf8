package jsonld

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/lshigami/Bandicoot/internal/model"
	"github.com/rs/zerolog/log"
)

// Import converts a JSON-LD Dataset document back into a checkpoint.
//
// Malformed hasPart entries (no question text or no accepted-answer text)
// are skipped with a warning instead of failing the whole import: one bad
// entry must not discard every valid one. The input document is not modified.
func (c *Converter) Import(ds *Dataset) (*model.Checkpoint, error) {
	if ds == nil {
		return nil, fmt.Errorf("cannot import a nil dataset")
	}

	cp := &model.Checkpoint{
		Version:         model.CheckpointFormatVersion,
		Checkpoint:      make(map[string]model.QuestionItem, len(ds.HasPart)),
		DatasetMetadata: importMetadata(ds),
		GlobalRubric:    ds.Rubric,
	}

	skipped := 0
	for i, part := range ds.HasPart {
		item, id, ok := c.importItem(part)
		if !ok {
			skipped++
			log.Warn().Int("index", i).Str("id", part.ID).
				Msg("Checkpoint import: skipping hasPart entry missing question or accepted answer text")
			continue
		}
		cp.Checkpoint[id] = item
	}
	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Int("imported", len(cp.Checkpoint)).
			Msg("Checkpoint import: document contained malformed entries")
	}
	return cp, nil
}

// importMetadata extracts dataset-level metadata only when the document
// carries at least one metadata field. A document with none of them yields a
// checkpoint without metadata, not a defaulted object: callers must not
// assume metadata exists after import.
func importMetadata(ds *Dataset) *model.DatasetMetadata {
	if ds.Name == "" && ds.Description == "" && ds.Version == "" &&
		ds.Creator == "" && ds.DateCreated == "" && ds.DateModified == "" {
		return nil
	}

	meta := &model.DatasetMetadata{
		Name:         ds.Name,
		Description:  ds.Description,
		Version:      ds.Version,
		License:      ds.License,
		Keywords:     model.StringSlice(ds.Keywords),
		DateCreated:  ds.DateCreated,
		DateModified: ds.DateModified,
	}
	if ds.Creator != "" {
		// Creators arrive as display strings, so every imported creator is a
		// Person. Organizations flattened on export come back as Person with
		// the same name; the accepted lossy edge of the format.
		meta.Creator = &model.Creator{Type: model.CreatorTypePerson, Name: ds.Creator}
	}
	return meta
}

func (c *Converter) importItem(part DataFeedItem) (model.QuestionItem, string, bool) {
	if part.Item.Text == "" || part.Item.AcceptedAnswer == nil || part.Item.AcceptedAnswer.Text == "" {
		return model.QuestionItem{}, "", false
	}

	item := model.QuestionItem{
		Question:        part.Item.Text,
		RawAnswer:       part.Item.AcceptedAnswer.Text,
		Finished:        part.Item.Finished,
		LastModified:    part.DateModified,
		DateCreated:     part.DateCreated,
		Tags:            model.StringSlice(part.Item.Tags),
		Keywords:        model.StringSlice(part.Item.Keywords),
		FewShotExamples: model.FewShotExamples(part.Item.FewShotExamples),
		QuestionRubric:  part.Item.Rubric,
	}
	if part.Item.HasPart != nil {
		item.AnswerTemplate = part.Item.HasPart.Text
		item.OriginalAnswerTemplate = part.Item.HasPart.Text
	}
	// LastModified is mandatory on every item; foreign documents without
	// per-item timestamps get the import time.
	if item.LastModified == "" {
		item.LastModified = Timestamp(c.clock.Now())
	}

	id := part.ID
	if id == "" {
		id = QuestionID(part.Item.Text)
	}
	return item, id, true
}

// QuestionID derives a stable, content-addressed identifier from the question
// text. Hashing keeps IDs identical across repeated imports of the same
// document, which duplicate detection depends on; a random UUID would not.
func QuestionID(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}
