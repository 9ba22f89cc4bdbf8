package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Bandicoot/internal/dto"
	"github.com/lshigami/Bandicoot/internal/jsonld"
	"github.com/lshigami/Bandicoot/internal/merge"
	"github.com/lshigami/Bandicoot/internal/model"
	"github.com/lshigami/Bandicoot/internal/repository"
	cache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type BenchmarkService interface {
	ListBenchmarks() ([]dto.BenchmarkInfo, error)
	LoadBenchmark(name string) (*dto.BenchmarkContent, error)
	SaveBenchmark(name string, content dto.BenchmarkContent, detectDuplicates bool) (*dto.SaveBenchmarkResponse, error)
	ResolveDuplicates(name string, req dto.ResolveDuplicatesRequest) (*dto.ResolveDuplicatesResponse, error)
	DeleteBenchmark(name string) error
}

const benchmarkListCacheKey = "benchmark_list"

type benchmarkService struct {
	repo  repository.BenchmarkRepository
	cache *cache.Cache
}

func NewBenchmarkService(repo repository.BenchmarkRepository) BenchmarkService {
	return &benchmarkService{
		repo:  repo,
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *benchmarkService) ListBenchmarks() ([]dto.BenchmarkInfo, error) {
	if cached, found := s.cache.Get(benchmarkListCacheKey); found {
		return cached.([]dto.BenchmarkInfo), nil
	}

	benchmarks, err := s.repo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("ListBenchmarks: repository error")
		return nil, fmt.Errorf("failed to list benchmarks: %w", err)
	}

	infos := make([]dto.BenchmarkInfo, 0, len(benchmarks))
	for _, b := range benchmarks {
		finished := 0
		for _, q := range b.Questions {
			if q.Finished {
				finished++
			}
		}
		infos = append(infos, dto.BenchmarkInfo{
			Name:          b.Name,
			Description:   b.Description,
			Version:       b.Version,
			QuestionCount: len(b.Questions),
			FinishedCount: finished,
			DateCreated:   b.DateCreated,
			DateModified:  b.DateModified,
		})
	}

	s.cache.Set(benchmarkListCacheKey, infos, cache.DefaultExpiration)
	return infos, nil
}

func (s *benchmarkService) LoadBenchmark(name string) (*dto.BenchmarkContent, error) {
	benchmark, err := s.repo.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("benchmark %q not found", name)
		}
		return nil, fmt.Errorf("failed to load benchmark %q: %w", name, err)
	}

	return &dto.BenchmarkContent{
		DatasetMetadata: metadataFromBenchmark(benchmark),
		Questions:       questionMap(benchmark.Questions),
		GlobalRubric:    benchmark.GlobalRubric,
	}, nil
}

// SaveBenchmark persists a question set under name. With detectDuplicates
// set and a benchmark of that name already stored, questions present in both
// sets block the save: nothing is written and the duplicate list is returned
// for the caller to resolve through ResolveDuplicates.
func (s *benchmarkService) SaveBenchmark(name string, content dto.BenchmarkContent, detectDuplicates bool) (*dto.SaveBenchmarkResponse, error) {
	existing, err := s.repo.FindByName(name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up benchmark %q: %w", name, err)
	}

	if existing != nil && detectDuplicates {
		duplicates := merge.DetectDuplicates(content.Questions, questionMap(existing.Questions))
		if len(duplicates) > 0 {
			log.Info().Str("benchmark", name).Int("duplicates", len(duplicates)).
				Msg("SaveBenchmark: duplicates detected, save withheld")
			return &dto.SaveBenchmarkResponse{Duplicates: duplicates}, nil
		}
	}

	if existing == nil {
		benchmark := &model.Benchmark{Name: name}
		applyMetadata(benchmark, content.DatasetMetadata)
		benchmark.GlobalRubric = content.GlobalRubric
		if benchmark.DateCreated == "" {
			benchmark.DateCreated = jsonld.Timestamp(time.Now())
		}
		benchmark.DateModified = jsonld.Timestamp(time.Now())
		benchmark.Questions = questionRecords(0, content.Questions)
		if err := s.repo.Create(benchmark); err != nil {
			log.Error().Err(err).Str("benchmark", name).Msg("SaveBenchmark: create failed")
			return nil, fmt.Errorf("failed to create benchmark %q: %w", name, err)
		}
	} else {
		applyMetadata(existing, content.DatasetMetadata)
		existing.GlobalRubric = content.GlobalRubric
		// DateCreated is immutable for the lineage; applyMetadata never
		// clears it and a save never regenerates it.
		existing.DateModified = jsonld.Timestamp(time.Now())
		if err := s.repo.Update(existing); err != nil {
			return nil, fmt.Errorf("failed to update benchmark %q: %w", name, err)
		}
		if err := s.repo.ReplaceQuestions(existing.ID, questionRecords(existing.ID, content.Questions)); err != nil {
			return nil, fmt.Errorf("failed to save questions for benchmark %q: %w", name, err)
		}
	}

	s.cache.Delete(benchmarkListCacheKey)
	log.Info().Str("benchmark", name).Int("questions", len(content.Questions)).Msg("SaveBenchmark: saved")
	return &dto.SaveBenchmarkResponse{OK: true}, nil
}

// ResolveDuplicates merges the candidate question set into the persisted
// benchmark according to the per-question resolutions, then persists the
// merged set.
func (s *benchmarkService) ResolveDuplicates(name string, req dto.ResolveDuplicatesRequest) (*dto.ResolveDuplicatesResponse, error) {
	benchmark, err := s.repo.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("benchmark %q not found", name)
		}
		return nil, fmt.Errorf("failed to load benchmark %q: %w", name, err)
	}

	persisted := questionMap(benchmark.Questions)
	duplicates := merge.DetectDuplicates(req.Questions, persisted)
	merged, err := merge.ApplyResolutions(persisted, req.Questions, duplicates, req.Resolutions)
	if err != nil {
		log.Error().Err(err).Str("benchmark", name).Msg("ResolveDuplicates: merge failed")
		return nil, err
	}

	if err := s.repo.ReplaceQuestions(benchmark.ID, questionRecords(benchmark.ID, merged)); err != nil {
		return nil, fmt.Errorf("failed to persist merged questions for %q: %w", name, err)
	}
	benchmark.DateModified = jsonld.Timestamp(time.Now())
	if err := s.repo.Update(benchmark); err != nil {
		return nil, fmt.Errorf("failed to update benchmark %q: %w", name, err)
	}

	s.cache.Delete(benchmarkListCacheKey)
	msg := fmt.Sprintf("Resolved %d duplicate question(s); benchmark %q now holds %d questions", len(duplicates), name, len(merged))
	log.Info().Str("benchmark", name).Int("duplicates", len(duplicates)).Int("questions", len(merged)).
		Msg("ResolveDuplicates: merged and saved")
	return &dto.ResolveDuplicatesResponse{Message: msg}, nil
}

func (s *benchmarkService) DeleteBenchmark(name string) error {
	if err := s.repo.DeleteByName(name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("benchmark %q not found", name)
		}
		return fmt.Errorf("failed to delete benchmark %q: %w", name, err)
	}
	s.cache.Delete(benchmarkListCacheKey)
	log.Info().Str("benchmark", name).Msg("DeleteBenchmark: deleted")
	return nil
}

// questionMap converts persisted question rows into the in-memory checkpoint
// mapping keyed by question ID.
func questionMap(records []model.BenchmarkQuestion) map[string]model.QuestionItem {
	items := make(map[string]model.QuestionItem, len(records))
	for _, rec := range records {
		var item model.QuestionItem
		copier.Copy(&item, &rec)
		items[rec.QuestionID] = item
	}
	return items
}

// questionRecords converts a checkpoint mapping into rows for benchmarkID,
// ordered by question ID so inserts are deterministic.
func questionRecords(benchmarkID uint, items map[string]model.QuestionItem) []model.BenchmarkQuestion {
	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	records := make([]model.BenchmarkQuestion, 0, len(items))
	for _, id := range ids {
		item := items[id]
		var rec model.BenchmarkQuestion
		copier.Copy(&rec, &item)
		rec.ID = 0
		rec.BenchmarkID = benchmarkID
		rec.QuestionID = id
		records = append(records, rec)
	}
	return records
}

// applyMetadata copies dataset metadata onto benchmark columns. DateCreated
// is only ever set when the benchmark has none yet; explicit presence wins
// over any value-based heuristics.
func applyMetadata(benchmark *model.Benchmark, meta *model.DatasetMetadata) {
	if meta == nil {
		return
	}
	if meta.Description != "" {
		benchmark.Description = meta.Description
	}
	if meta.Version != "" {
		benchmark.Version = meta.Version
	}
	if meta.Creator != nil {
		benchmark.Creator = meta.Creator
	}
	if meta.License != "" {
		benchmark.License = meta.License
	}
	if len(meta.Keywords) > 0 {
		benchmark.Keywords = meta.Keywords
	}
	if benchmark.DateCreated == "" && meta.DateCreated != "" {
		benchmark.DateCreated = meta.DateCreated
	}
	if len(meta.CustomProperties) > 0 {
		benchmark.CustomProperties = meta.CustomProperties
	}
}

// metadataFromBenchmark rebuilds dataset metadata from benchmark columns for
// a load response.
func metadataFromBenchmark(benchmark *model.Benchmark) *model.DatasetMetadata {
	return &model.DatasetMetadata{
		Name:             benchmark.Name,
		Description:      benchmark.Description,
		Version:          benchmark.Version,
		Creator:          benchmark.Creator,
		License:          benchmark.License,
		Keywords:         benchmark.Keywords,
		DateCreated:      benchmark.DateCreated,
		DateModified:     benchmark.DateModified,
		CustomProperties: benchmark.CustomProperties,
	}
}
