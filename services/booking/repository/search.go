package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/apperr"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

const searchKeyPrefix = "search:"

// StoreSearchResult caches a vehicle search session so a later booking can
// reference it by search ID
func (r *BookingRepo) StoreSearchResult(ctx context.Context, searchID string, resp *models.SearchResponse, ttl time.Duration) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal search result: %w", err)
	}
	if err := r.redis.Set(ctx, searchKeyPrefix+searchID, data, ttl); err != nil {
		return fmt.Errorf("failed to store search result: %w", err)
	}
	return nil
}

// GetSearchResult retrieves a cached search session. Expired or unknown
// sessions surface as not found.
func (r *BookingRepo) GetSearchResult(ctx context.Context, searchID string) (*models.SearchResponse, error) {
	data, err := r.redis.Get(ctx, searchKeyPrefix+searchID)
	if err != nil {
		if err == redis.Nil {
			return nil, apperr.NotFound("search session not found or expired")
		}
		return nil, fmt.Errorf("failed to get search result: %w", err)
	}

	var resp models.SearchResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal search result: %w", err)
	}
	return &resp, nil
}
