package jsonld

import (
	"fmt"
	"sort"

	"github.com/lshigami/Bandicoot/internal/model"
)

// Converter maps checkpoints to schema.org JSON-LD datasets and back.
type Converter struct {
	clock    Clock
	resolver *Resolver
}

// NewConverter builds a converter. Pass nil to use the system clock.
func NewConverter(clock Clock) *Converter {
	if clock == nil {
		clock = SystemClock()
	}
	return &Converter{clock: clock, resolver: NewResolver(clock)}
}

// Export converts a checkpoint into a JSON-LD Dataset document. isCreation
// marks the conversion as a new edit: dateModified is regenerated even when
// the metadata already carries one. dateCreated, once present, always passes
// through untouched. The input checkpoint is not modified.
//
// hasPart entries are ordered by question ID so output is deterministic for
// a given checkpoint; callers must not rely on any particular order.
func (c *Converter) Export(cp *model.Checkpoint, isCreation bool) (*Dataset, error) {
	if cp == nil {
		return nil, fmt.Errorf("cannot export a nil checkpoint")
	}

	meta := c.resolver.Resolve(cp.DatasetMetadata, len(cp.Checkpoint), isCreation)

	ds := &Dataset{
		Context:      ContextSchemaOrg,
		Type:         TypeDataset,
		Name:         meta.Name,
		Description:  meta.Description,
		Version:      meta.Version,
		Creator:      meta.Creator.Name,
		License:      meta.License,
		Keywords:     []string(meta.Keywords),
		DateCreated:  meta.DateCreated,
		DateModified: meta.DateModified,
		Rubric:       cp.GlobalRubric,
		HasPart:      make([]DataFeedItem, 0, len(cp.Checkpoint)),
	}

	ids := make([]string, 0, len(cp.Checkpoint))
	for id := range cp.Checkpoint {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		ds.HasPart = append(ds.HasPart, exportItem(id, cp.Checkpoint[id]))
	}
	return ds, nil
}

func exportItem(id string, item model.QuestionItem) DataFeedItem {
	q := Question{
		Type:            TypeQuestion,
		Text:            item.Question,
		AcceptedAnswer:  &Answer{Type: TypeAnswer, Text: item.RawAnswer},
		Finished:        item.Finished,
		Tags:            []string(item.Tags),
		Keywords:        []string(item.Keywords),
		Rubric:          item.QuestionRubric,
		FewShotExamples: []model.FewShotExample(item.FewShotExamples),
	}
	if item.AnswerTemplate != "" {
		q.HasPart = &SourceCode{
			Type:                TypeSoftwareSourceCode,
			Text:                item.AnswerTemplate,
			ProgrammingLanguage: TemplateLanguage,
		}
	}

	return DataFeedItem{
		Type: TypeDataFeedItem,
		ID:   id,
		// Items without a recorded creation date fall back to their last
		// modification; the fallback lives in the document only, the
		// checkpoint item keeps DateCreated absent.
		DateCreated:  item.EffectiveDateCreated(),
		DateModified: item.LastModified,
		Item:         q,
	}
}
