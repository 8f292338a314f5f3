package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"assessment-service/internal/models"

	"github.com/redis/go-redis/v9"
)

const resultTTL = 24 * time.Hour

// ResultCache fronts the results collection with a Redis JSON cache.
// Completed results are immutable, so a long TTL is safe.
type ResultCache struct {
	client *redis.Client
}

// NewResultCache connects to Redis and pings it. A failed ping is logged
// and returns nil so the caller can run without caching.
func NewResultCache(addr, password string, db int) *ResultCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Error connecting to Redis: %v", err)
		return nil
	}
	return &ResultCache{client: client}
}

func resultKey(assessmentID string) string {
	return fmt.Sprintf("assessment:result:%s", assessmentID)
}

func (c *ResultCache) Get(ctx context.Context, assessmentID string) (*models.AssessmentResult, error) {
	raw, err := c.client.Get(ctx, resultKey(assessmentID)).Bytes()
	if err != nil {
		return nil, err
	}
	var result models.AssessmentResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("error decoding cached result: %w", err)
	}
	return &result, nil
}

func (c *ResultCache) Set(ctx context.Context, result *models.AssessmentResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("error encoding result for cache: %w", err)
	}
	return c.client.Set(ctx, resultKey(result.AssessmentID), raw, resultTTL).Err()
}

// Invalidate drops the cached entry, used when a result is recomputed.
func (c *ResultCache) Invalidate(ctx context.Context, assessmentID string) error {
	return c.client.Del(ctx, resultKey(assessmentID)).Err()
}
