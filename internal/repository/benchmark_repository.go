package repository

import (
	"github.com/lshigami/Bandicoot/internal/model"
	"gorm.io/gorm"
)

type BenchmarkRepository interface {
	Create(benchmark *model.Benchmark) error
	Update(benchmark *model.Benchmark) error
	FindByName(name string) (*model.Benchmark, error)
	FindAll() ([]model.Benchmark, error)
	DeleteByName(name string) error
	ReplaceQuestions(benchmarkID uint, questions []model.BenchmarkQuestion) error
}

type benchmarkRepository struct {
	db *gorm.DB
}

func NewBenchmarkRepository(db *gorm.DB) BenchmarkRepository {
	return &benchmarkRepository{db: db}
}

func (r *benchmarkRepository) Create(benchmark *model.Benchmark) error {
	return r.db.Create(benchmark).Error
}

// Update saves benchmark-level fields only; question rows are managed through
// ReplaceQuestions so a metadata update never touches them.
func (r *benchmarkRepository) Update(benchmark *model.Benchmark) error {
	return r.db.Omit("Questions").Save(benchmark).Error
}

func (r *benchmarkRepository) FindByName(name string) (*model.Benchmark, error) {
	var benchmark model.Benchmark
	if err := r.db.Preload("Questions").Where("name = ?", name).First(&benchmark).Error; err != nil {
		return nil, err
	}
	return &benchmark, nil
}

func (r *benchmarkRepository) FindAll() ([]model.Benchmark, error) {
	var benchmarks []model.Benchmark
	if err := r.db.Preload("Questions").Order("created_at desc").Find(&benchmarks).Error; err != nil {
		return nil, err
	}
	return benchmarks, nil
}

func (r *benchmarkRepository) DeleteByName(name string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var benchmark model.Benchmark
		if err := tx.Where("name = ?", name).First(&benchmark).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.BenchmarkQuestion{}, "benchmark_id = ?", benchmark.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&benchmark).Error
	})
}

// ReplaceQuestions swaps the full question set of a benchmark in one
// transaction, the write path for both saves and duplicate resolutions.
func (r *benchmarkRepository) ReplaceQuestions(benchmarkID uint, questions []model.BenchmarkQuestion) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.BenchmarkQuestion{}, "benchmark_id = ?", benchmarkID).Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return nil
		}
		return tx.Create(&questions).Error
	})
}
