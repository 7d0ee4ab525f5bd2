package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/mmcloughlin/geohash"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/apperr"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/logger"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

const distanceKeyPrefix = "distance:"

// geohash precision 6 buckets routes to ~1.2km cells, coarse enough that
// nearby pickups share a cached distance
const distanceGeohashPrecision = 6

type distanceRequest struct {
	From models.Location   `json:"from"`
	To   models.Location   `json:"to"`
	Via  []models.Location `json:"via,omitempty"`
}

type distanceResponse struct {
	DistanceKm  float64 `json:"distance_km"`
	DurationMin int     `json:"duration_min"`
}

// GetDistance resolves the road distance between two locations via the
// geocoder service, with a Redis cache in front. A geocoder outage surfaces
// as service unavailable rather than a silently wrong fare.
func (g *BookingGW) GetDistance(ctx context.Context, pickup, drop *models.Location) (*models.DistanceResult, error) {
	cacheKey := distanceKeyPrefix + routeKey(pickup, drop)

	if cached, err := g.redis.Get(ctx, cacheKey); err == nil {
		var result models.DistanceResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return &result, nil
		}
	} else if err != redis.Nil {
		logger.Warn("distance cache read failed", logger.Err(err))
	}

	var result *models.DistanceResult
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		var callErr error
		result, callErr = g.fetchDistance(ctx, pickup, drop)
		return callErr
	})
	if err != nil {
		logger.Error("geocoder unreachable", logger.Err(err))
		return nil, apperr.Unavailable("distance service unavailable, try again shortly")
	}

	if data, err := json.Marshal(result); err == nil {
		ttl := time.Duration(g.cfg.Geocoder.CacheTTL) * time.Second
		if ttl == 0 {
			ttl = 6 * time.Hour
		}
		if err := g.redis.Set(ctx, cacheKey, data, ttl); err != nil {
			logger.Warn("distance cache write failed", logger.Err(err))
		}
	}
	return result, nil
}

func (g *BookingGW) fetchDistance(ctx context.Context, pickup, drop *models.Location) (*models.DistanceResult, error) {
	body, err := json.Marshal(distanceRequest{From: *pickup, To: *drop})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal distance request: %w", err)
	}

	url := strings.TrimRight(g.cfg.Geocoder.BaseURL, "/") + "/v1/distance"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build distance request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.cfg.Geocoder.APIKey != "" {
		req.Header.Set("X-API-Key", g.cfg.Geocoder.APIKey)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("distance request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("geocoder returned status %d: %s", resp.StatusCode, string(payload))
	}

	var dr distanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return nil, fmt.Errorf("failed to decode distance response: %w", err)
	}
	return &models.DistanceResult{
		DistanceKm:  dr.DistanceKm,
		DurationMin: dr.DurationMin,
	}, nil
}

// routeKey builds a cache key from geohashes when coordinates are present,
// falling back to normalized city names
func routeKey(pickup, drop *models.Location) string {
	return locationKey(pickup) + ":" + locationKey(drop)
}

func locationKey(loc *models.Location) string {
	if loc.HasCoordinates() {
		return geohash.EncodeWithPrecision(*loc.Latitude, *loc.Longitude, distanceGeohashPrecision)
	}
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(loc.City), " ", "_"))
}
