package service

import (
	"context"
	"log"

	"assessment-service/internal/cache"
	"assessment-service/internal/models"
	"assessment-service/internal/repository"
)

// ResultService reads and writes assessment results, fronting Mongo with an
// optional Redis cache. A nil cache disables caching without changing
// behavior.
type ResultService struct {
	Repo  *repository.ResultRepository
	Cache *cache.ResultCache
}

func NewResultService(repo *repository.ResultRepository, resultCache *cache.ResultCache) *ResultService {
	return &ResultService{Repo: repo, Cache: resultCache}
}

func (s *ResultService) GetByAssessment(ctx context.Context, assessmentID string) (*models.AssessmentResult, error) {
	if s.Cache != nil {
		if result, err := s.Cache.Get(ctx, assessmentID); err == nil {
			return result, nil
		}
	}

	result, err := s.Repo.FindByAssessment(ctx, assessmentID)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil && result.Final {
		if err := s.Cache.Set(ctx, result); err != nil {
			log.Printf("Error caching result for assessment %s: %v", assessmentID, err)
		}
	}
	return result, nil
}

func (s *ResultService) GetByUser(ctx context.Context, userID string) ([]models.AssessmentResult, error) {
	return s.Repo.FindByUser(ctx, userID)
}

// Save upserts the result and drops any stale cache entry. Upsert keeps
// recomputation idempotent: one result per assessment, replaced in place.
func (s *ResultService) Save(ctx context.Context, result *models.AssessmentResult) error {
	if err := s.Repo.Upsert(ctx, result); err != nil {
		return err
	}
	if s.Cache != nil {
		if err := s.Cache.Invalidate(ctx, result.AssessmentID); err != nil {
			log.Printf("Error invalidating cached result for assessment %s: %v", result.AssessmentID, err)
		}
	}
	return nil
}
