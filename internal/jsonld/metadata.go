package jsonld

import (
	"fmt"

	"github.com/lshigami/Bandicoot/internal/model"
)

// Defaults applied when a checkpoint carries no explicit dataset metadata.
const (
	DefaultDatasetName    = "Untitled Benchmark"
	DefaultDatasetVersion = "0.1.0"
	DefaultCreatorName    = "Bandicoot Benchmarking System"
)

// Resolver produces fully-populated dataset metadata for export, filling
// missing fields with deterministic defaults and enforcing the timestamp
// invariants around dateCreated/dateModified.
type Resolver struct {
	clock Clock
}

func NewResolver(clock Clock) *Resolver {
	if clock == nil {
		clock = SystemClock()
	}
	return &Resolver{clock: clock}
}

// Resolve returns a populated copy of meta; the input is never mutated.
// Only absent fields are filled: every explicit value is authoritative, even
// one that happens to equal a default constant, so all checks here are
// presence checks and never comparisons against the defaults.
//
// Timestamp rules:
//   - dateCreated present: passed through untouched, always.
//   - dateCreated absent: generated as now.
//   - isCreation false: dateModified passed through if present, else now.
//   - isCreation true: dateModified regenerated as now unconditionally.
func (r *Resolver) Resolve(meta *model.DatasetMetadata, questionCount int, isCreation bool) model.DatasetMetadata {
	var resolved model.DatasetMetadata
	if meta != nil {
		resolved = *meta
	}

	if resolved.Name == "" {
		resolved.Name = DefaultDatasetName
	}
	if resolved.Description == "" {
		resolved.Description = fmt.Sprintf("Checkpoint containing %d benchmark questions with answer templates", questionCount)
	}
	if resolved.Version == "" {
		resolved.Version = DefaultDatasetVersion
	}
	if resolved.Creator == nil {
		resolved.Creator = &model.Creator{
			Type: model.CreatorTypeOrganization,
			Name: DefaultCreatorName,
		}
	}

	now := Timestamp(r.clock.Now())
	if resolved.DateCreated == "" {
		resolved.DateCreated = now
	}
	if isCreation || resolved.DateModified == "" {
		resolved.DateModified = now
	}
	return resolved
}
