package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/apperr"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

func TestSearchVehicles_PricesAndCachesOptions(t *testing.T) {
	f := newBookingUCFixture(t)

	req := &models.SearchRequest{
		TripType:  models.TripTypeOneWay,
		From:      models.Location{City: "Delhi"},
		To:        models.Location{City: "Jaipur"},
		StartTime: daytimeStart(),
	}

	f.gw.EXPECT().GetDistance(gomock.Any(), &req.From, &req.To).
		Return(&models.DistanceResult{DistanceKm: 230, DurationMin: 270}, nil)
	f.repo.EXPECT().StoreSearchResult(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	resp, err := f.uc.SearchVehicles(context.Background(), req)

	require.NoError(t, err)
	assert.NotEmpty(t, resp.SearchID)
	assert.Equal(t, 230.0, resp.DistanceKm)
	assert.Len(t, resp.Options, len(models.VehicleClasses))
	for i := 1; i < len(resp.Options); i++ {
		assert.LessOrEqual(t, resp.Options[i-1].Fare.FinalAmount, resp.Options[i].Fare.FinalAmount)
	}
}

func TestSearchVehicles_PackageSkipsTravellers(t *testing.T) {
	f := newBookingUCFixture(t)

	req := &models.SearchRequest{
		TripType:    models.TripTypeLocalPackage,
		From:        models.Location{City: "Delhi"},
		To:          models.Location{City: "Delhi"},
		StartTime:   daytimeStart(),
		PackageCode: "8hr_80km",
	}

	f.repo.EXPECT().StoreSearchResult(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	resp, err := f.uc.SearchVehicles(context.Background(), req)

	require.NoError(t, err)
	assert.Len(t, resp.Options, 5)
	for _, opt := range resp.Options {
		assert.NotContains(t, []models.VehicleClass{models.VehicleTraveller12, models.VehicleTraveller16}, opt.Vehicle.Class)
	}
}

func TestSearchVehicles_GeocoderOutage(t *testing.T) {
	f := newBookingUCFixture(t)

	req := &models.SearchRequest{
		TripType:  models.TripTypeOneWay,
		From:      models.Location{City: "Delhi"},
		To:        models.Location{City: "Jaipur"},
		StartTime: daytimeStart(),
	}

	f.gw.EXPECT().GetDistance(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperr.Unavailable("distance service unavailable, try again shortly"))

	_, err := f.uc.SearchVehicles(context.Background(), req)

	assert.True(t, apperr.IsCode(err, 503))
}

func TestEstimateFare_WithExplicitDistance(t *testing.T) {
	f := newBookingUCFixture(t)
	distance := 230.0

	breakdown, err := f.uc.EstimateFare(context.Background(), &models.EstimateFareRequest{
		TripType:     models.TripTypeOneWay,
		VehicleClass: models.VehicleSedan,
		DistanceKm:   &distance,
		StartTime:    daytimeStart(),
	})

	require.NoError(t, err)
	assert.Equal(t, 3450, breakdown.BaseFare)
	assert.Equal(t, 173, breakdown.GST)
	assert.Equal(t, 3623, breakdown.FinalAmount)
}

func TestEstimateFare_RouteRequiredWithoutDistance(t *testing.T) {
	f := newBookingUCFixture(t)

	_, err := f.uc.EstimateFare(context.Background(), &models.EstimateFareRequest{
		TripType:     models.TripTypeOneWay,
		VehicleClass: models.VehicleSedan,
		StartTime:    daytimeStart(),
	})

	assert.True(t, apperr.IsCode(err, 400))
}
