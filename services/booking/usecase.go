package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

// BookingUC defines the interface for booking business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/cabBazarApp/cabbazar-backend-sub000/services/booking BookingUC
type BookingUC interface {
	SearchVehicles(ctx context.Context, req *models.SearchRequest) (*models.SearchResponse, error)
	EstimateFare(ctx context.Context, req *models.EstimateFareRequest) (*models.FareBreakdown, error)
	CreateBooking(ctx context.Context, actor models.Actor, req *models.CreateBookingRequest) (*models.CreateBookingResponse, error)
	GetBooking(ctx context.Context, actor models.Actor, bookingID uuid.UUID) (*models.Booking, error)
	ListBookings(ctx context.Context, actor models.Actor) ([]*models.Booking, error)
	UpdateStatus(ctx context.Context, actor models.Actor, bookingID uuid.UUID, req *models.UpdateStatusRequest) (*models.Booking, error)
	CancellationCharges(ctx context.Context, actor models.Actor, bookingID uuid.UUID) (*models.CancellationQuote, error)
	CancelBooking(ctx context.Context, actor models.Actor, bookingID uuid.UUID, req *models.CancelBookingRequest) (*models.CancelBookingResponse, error)
	RateBooking(ctx context.Context, actor models.Actor, bookingID uuid.UUID, req *models.RatingRequest) (*models.Booking, error)
	ApplyDiscount(ctx context.Context, actor models.Actor, bookingID uuid.UUID, req *models.ApplyDiscountRequest) (*models.Booking, error)
}
