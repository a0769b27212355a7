package service

import (
	"context"
	"fmt"
	"log"

	"myfragance/internal/cache"
	"myfragance/internal/model"
	"myfragance/internal/recommend"
	"myfragance/internal/repository"
)

// RecommendationService serves ranked perfume lists. Completed sessions
// read from the Redis candidate buffer so hiding an item never triggers a
// re-rank; a cold buffer is rebuilt from the stored profile.
type RecommendationService struct {
	recCache    cache.RecommendationCache
	profileRepo repository.ProfileRepo
	catalogSvc  *CatalogService
	ranker      *recommend.Ranker
	bufferSize  int
}

// NewRecommendationService creates a new recommendation service.
func NewRecommendationService(
	recCache cache.RecommendationCache,
	profileRepo repository.ProfileRepo,
	catalogSvc *CatalogService,
	ranker *recommend.Ranker,
	bufferSize int,
) *RecommendationService {
	return &RecommendationService{
		recCache:    recCache,
		profileRepo: profileRepo,
		catalogSvc:  catalogSvc,
		ranker:      ranker,
		bufferSize:  bufferSize,
	}
}

// GetForSession returns up to limit recommendations for a completed
// session, skipping any the user has hidden.
func (s *RecommendationService) GetForSession(ctx context.Context, sessionID string, limit int) ([]model.Recommendation, error) {
	if limit <= 0 {
		limit = 10
	}

	buffer, err := s.recCache.GetBuffer(ctx, sessionID)
	if err != nil {
		log.Printf("Failed to read recommendation buffer for session %s: %v", sessionID, err)
	}
	if buffer == nil {
		buffer, err = s.rebuild(ctx, sessionID)
		if err != nil {
			return nil, err
		}
	}

	hidden, err := s.recCache.Hidden(ctx, sessionID)
	if err != nil {
		log.Printf("Failed to read hidden set for session %s: %v", sessionID, err)
		hidden = nil
	}

	results := make([]model.Recommendation, 0, limit)
	for _, rec := range buffer {
		if hidden[rec.PerfumeKey] {
			continue
		}
		results = append(results, rec)
		if len(results) == limit {
			break
		}
	}
	return results, nil
}

// Hide removes one perfume from the session's future results. The buffer
// is left untouched; hidden keys are filtered on every read.
func (s *RecommendationService) Hide(ctx context.Context, sessionID, perfumeKey string) error {
	if perfumeKey == "" {
		return fmt.Errorf("perfume key is required")
	}
	return s.recCache.Hide(ctx, sessionID, perfumeKey)
}

// Popular returns the catalog ranked by popularity alone, for clients
// without a completed session.
func (s *RecommendationService) Popular(ctx context.Context, limit int) ([]model.Recommendation, error) {
	index, err := s.catalogSvc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.ranker.Rank(nil, index, limit), nil
}

// rebuild recomputes the candidate buffer from the persisted profile.
// Sessions without a profile fall back to the popularity ranking so the
// endpoint still answers.
func (s *RecommendationService) rebuild(ctx context.Context, sessionID string) ([]model.Recommendation, error) {
	index, err := s.catalogSvc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		log.Printf("Failed to load profile for session %s: %v", sessionID, err)
		profile = nil
	}

	buffer := s.ranker.Rank(profile, index, s.bufferSize)
	if err := s.recCache.SetBuffer(ctx, sessionID, buffer); err != nil {
		log.Printf("Failed to cache recommendations for session %s: %v", sessionID, err)
	}
	return buffer, nil
}
