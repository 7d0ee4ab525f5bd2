package booking

import (
	"context"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

// BookingGW defines the interface for booking gateway operations
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/cabBazarApp/cabbazar-backend-sub000/services/booking BookingGW
type BookingGW interface {
	// Geocoding and routing
	GetDistance(ctx context.Context, pickup, drop *models.Location) (*models.DistanceResult, error)

	// Booking lifecycle events
	PublishBookingConfirmed(ctx context.Context, booking *models.Booking) error
	PublishBookingCancelled(ctx context.Context, booking *models.Booking) error
	PublishBookingCompleted(ctx context.Context, booking *models.Booking) error
	PublishBookingRejected(ctx context.Context, booking *models.Booking) error
}
