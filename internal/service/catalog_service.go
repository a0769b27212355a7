package service

import (
	"context"
	"fmt"
	"time"

	"myfragance/internal/cache"
	"myfragance/internal/catalog"
	"myfragance/internal/model"
	"myfragance/internal/repository"
)

// CatalogService serves read-only snapshots of the perfume catalog and the
// question definitions. Reads go cache-first; a miss loads from Mongo and
// refreshes the cache (and the last-sync timestamp with it).
type CatalogService struct {
	perfumeRepo  repository.PerfumeRepo
	questionRepo repository.QuestionRepo
	catalogCache cache.CatalogCache
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	perfumeRepo repository.PerfumeRepo,
	questionRepo repository.QuestionRepo,
	catalogCache cache.CatalogCache,
) *CatalogService {
	return &CatalogService{
		perfumeRepo:  perfumeRepo,
		questionRepo: questionRepo,
		catalogCache: catalogCache,
	}
}

// Snapshot returns an in-memory catalog index for this point in time.
func (s *CatalogService) Snapshot(ctx context.Context) (*catalog.Index, error) {
	perfumes, err := s.catalogCache.Get(ctx)
	if err != nil {
		// Cache trouble degrades to a direct repository read.
		perfumes = nil
	}
	if perfumes == nil {
		perfumes, err = s.perfumeRepo.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		if len(perfumes) > 0 {
			// Best effort: a failed cache write only costs the next reader
			// another repository round trip.
			_ = s.catalogCache.Put(ctx, perfumes)
		}
	}
	return catalog.NewIndex(perfumes), nil
}

// Questions returns the question snapshot for one flow type.
func (s *CatalogService) Questions(ctx context.Context, flowType string) (*catalog.QuestionSet, error) {
	questions, err := s.questionRepo.GetByFlowType(ctx, flowType)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	return catalog.NewQuestionSet(questions), nil
}

// GetPerfume looks up a single catalog item. Returns nil when absent.
func (s *CatalogService) GetPerfume(ctx context.Context, key string) (*model.Perfume, error) {
	return s.perfumeRepo.GetByKey(ctx, key)
}

// LastSync returns the timestamp of the last catalog cache refresh; zero
// when the cache is cold.
func (s *CatalogService) LastSync(ctx context.Context) (time.Time, error) {
	return s.catalogCache.LastSync(ctx)
}

// Invalidate drops the cached catalog so the next snapshot reloads from
// the repository.
func (s *CatalogService) Invalidate(ctx context.Context) error {
	return s.catalogCache.Invalidate(ctx)
}
