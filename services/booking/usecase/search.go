package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/apperr"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/fare"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/logger"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

const defaultSearchTTL = 15 * time.Minute

// SearchVehicles prices every vehicle class for a route and caches the
// result under a short-lived search ID
func (uc *bookingUC) SearchVehicles(ctx context.Context, req *models.SearchRequest) (*models.SearchResponse, error) {
	if req.From.City == "" || req.To.City == "" {
		return nil, apperr.BadRequest("from and to are required")
	}

	var (
		distance float64
		duration int
	)
	if req.TripType != models.TripTypeLocalPackage {
		result, err := uc.bookingGW.GetDistance(ctx, &req.From, &req.To)
		if err != nil {
			return nil, err
		}
		distance = result.DistanceKm
		duration = result.DurationMin
	}

	options, err := uc.calc.VehicleOptions(fare.Input{
		TripType:    req.TripType,
		DistanceKm:  distance,
		StartTime:   req.StartTime,
		PackageCode: req.PackageCode,
	})
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(uc.cfg.Pricing.SearchTTL) * time.Second
	if ttl == 0 {
		ttl = defaultSearchTTL
	}

	resp := &models.SearchResponse{
		SearchID:    uuid.NewString(),
		TripType:    req.TripType,
		DistanceKm:  distance,
		DurationMin: duration,
		Options:     options,
		ExpiresAt:   time.Now().Add(ttl),
	}

	if err := uc.bookingRepo.StoreSearchResult(ctx, resp.SearchID, resp, ttl); err != nil {
		logger.Warn("failed to cache search result", logger.Err(err))
	}
	return resp, nil
}

// EstimateFare prices a single trip type and vehicle class combination.
// Distance comes from the request when supplied, otherwise from the route.
func (uc *bookingUC) EstimateFare(ctx context.Context, req *models.EstimateFareRequest) (*models.FareBreakdown, error) {
	distance := 0.0
	switch {
	case req.DistanceKm != nil:
		distance = *req.DistanceKm
	case req.From != nil && req.To != nil:
		result, err := uc.bookingGW.GetDistance(ctx, req.From, req.To)
		if err != nil {
			return nil, err
		}
		distance = result.DistanceKm
	case req.TripType != models.TripTypeLocalPackage:
		return nil, apperr.BadRequest("either distance_km or a from/to route is required")
	}

	return uc.calc.Price(fare.Input{
		TripType:     req.TripType,
		VehicleClass: req.VehicleClass,
		DistanceKm:   distance,
		StartTime:    req.StartTime,
		PackageCode:  req.PackageCode,
		ExtraKm:      req.ExtraKm,
		ExtraHours:   req.ExtraHours,
	})
}
